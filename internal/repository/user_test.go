//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"

	"student-hub-backend/internal/database/models"
	"student-hub-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	factories     *testutils.FactorySet
	ctx           context.Context
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
	suite.ctx = context.Background()
}

// TearDownSuite runs after all tests in the suite
func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new profile
func (suite *UserRepositoryTestSuite) TestCreate() {
	user := suite.factories.User.Create()

	err := suite.repo.Create(suite.ctx, user)

	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(suite.ctx, user.ID)
	suite.NoError(err)
	suite.Equal(user.DisplayName, retrieved.DisplayName)
	suite.Equal(user.Skills, retrieved.Skills)
	suite.Equal(models.UserRoleStudent, retrieved.Role)
}

// TestCreateDuplicate tests creating two profiles with the same identifier
func (suite *UserRepositoryTestSuite) TestCreateDuplicate() {
	user := suite.factories.User.WithID("dup-user")
	suite.NoError(suite.repo.Create(suite.ctx, user))

	err := suite.repo.Create(suite.ctx, suite.factories.User.WithID("dup-user"))

	suite.ErrorIs(err, gorm.ErrDuplicatedKey)
}

// TestGetByIDNotFound tests retrieving a non-existent profile
func (suite *UserRepositoryTestSuite) TestGetByIDNotFound() {
	retrieved, err := suite.repo.GetByID(suite.ctx, "ghost")

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(retrieved)
}

// TestExists tests the existence check
func (suite *UserRepositoryTestSuite) TestExists() {
	user := suite.factories.User.Create()
	suite.NoError(suite.repo.Create(suite.ctx, user))

	exists, err := suite.repo.Exists(suite.ctx, user.ID)
	suite.NoError(err)
	suite.True(exists)

	exists, err = suite.repo.Exists(suite.ctx, "ghost")
	suite.NoError(err)
	suite.False(exists)
}

// TestUpdate tests persisting profile edits
func (suite *UserRepositoryTestSuite) TestUpdate() {
	user := suite.factories.User.Create()
	suite.NoError(suite.repo.Create(suite.ctx, user))

	user.DisplayName = "Renamed User"
	user.Skills = models.StringList{"Rust"}
	suite.NoError(suite.repo.Update(suite.ctx, user))

	retrieved, err := suite.repo.GetByID(suite.ctx, user.ID)
	suite.NoError(err)
	suite.Equal("Renamed User", retrieved.DisplayName)
	suite.Equal(models.StringList{"Rust"}, retrieved.Skills)
}

// TestGetDisplayNames tests the batch name lookup
func (suite *UserRepositoryTestSuite) TestGetDisplayNames() {
	alice := suite.factories.User.WithDisplayName("Alice")
	bob := suite.factories.User.WithDisplayName("Bob")
	suite.NoError(suite.repo.Create(suite.ctx, alice))
	suite.NoError(suite.repo.Create(suite.ctx, bob))

	names, err := suite.repo.GetDisplayNames(suite.ctx, []string{alice.ID, bob.ID, "ghost"})

	suite.NoError(err)
	suite.Len(names, 2)
	suite.Equal("Alice", names[alice.ID])
	suite.Equal("Bob", names[bob.ID])
	suite.NotContains(names, "ghost")
}

// TestGetDisplayNamesEmptyInput tests the batch lookup with no identifiers
func (suite *UserRepositoryTestSuite) TestGetDisplayNamesEmptyInput() {
	names, err := suite.repo.GetDisplayNames(suite.ctx, nil)

	suite.NoError(err)
	suite.Empty(names)
}

func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}

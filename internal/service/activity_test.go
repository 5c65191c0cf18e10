package service_test

import (
	"context"
	"errors"
	"testing"

	"student-hub-backend/internal/database/models"
	apperrors "student-hub-backend/internal/errors"
	"student-hub-backend/internal/mocks"
	"student-hub-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type ActivityServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockActivityRepo *mocks.MockActivityRepositoryInterface
	mockNames        *mocks.MockNameResolver
	activityService  *service.ActivityService
	validator        *validator.Validate
}

func (suite *ActivityServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockActivityRepo = mocks.NewMockActivityRepositoryInterface(suite.ctrl)
	suite.mockNames = mocks.NewMockNameResolver(suite.ctrl)
	suite.validator = validator.New()
	suite.activityService = service.NewActivityService(suite.mockActivityRepo, suite.mockNames, suite.validator)
}

func (suite *ActivityServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func makeActivity(ownerID, snapshot string) models.Activity {
	return models.Activity{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Title:     "Campus App",
		OwnerID:   ownerID,
		OwnerDisplayName: snapshot,
		Roster:    models.Roster{{UserID: ownerID, Role: models.RoleOwner}},
	}
}

func (suite *ActivityServiceTestSuite) TestList_ReconcilesOwnerNames() {
	activities := []models.Activity{
		makeActivity("u1", "Old Name"),
		makeActivity("u2", "Bob"),
	}
	suite.mockActivityRepo.EXPECT().GetAll(gomock.Any()).Return(activities, nil)
	suite.mockNames.EXPECT().ResolveMany(gomock.Any(), []string{"u1", "u2"}).
		Return(map[string]string{"u1": "New Name", "u2": "Bob"})

	resp, err := suite.activityService.List(context.Background())

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, resp.Total)
	assert.Equal(suite.T(), "New Name", resp.Activities[0].OwnerDisplayName)
	assert.Equal(suite.T(), "Bob", resp.Activities[1].OwnerDisplayName)
}

func (suite *ActivityServiceTestSuite) TestList_DuplicateOwnersResolvedOnce() {
	activities := []models.Activity{
		makeActivity("u1", "Alice"),
		makeActivity("u1", "Alice"),
	}
	suite.mockActivityRepo.EXPECT().GetAll(gomock.Any()).Return(activities, nil)
	suite.mockNames.EXPECT().ResolveMany(gomock.Any(), []string{"u1"}).
		Return(map[string]string{"u1": "Alice"})

	resp, err := suite.activityService.List(context.Background())

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), resp.Activities, 2)
}

func (suite *ActivityServiceTestSuite) TestList_FallbackPrefersStoredSnapshot() {
	activities := []models.Activity{makeActivity("auth0|xyz1234", "Stored Snapshot")}
	suite.mockActivityRepo.EXPECT().GetAll(gomock.Any()).Return(activities, nil)
	// Resolver could not find a profile and degraded to its deterministic label
	suite.mockNames.EXPECT().ResolveMany(gomock.Any(), []string{"auth0|xyz1234"}).
		Return(map[string]string{"auth0|xyz1234": "User 1234"})

	resp, err := suite.activityService.List(context.Background())

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Stored Snapshot", resp.Activities[0].OwnerDisplayName)
}

func (suite *ActivityServiceTestSuite) TestList_UnknownOwnerWithoutSnapshot() {
	activities := []models.Activity{makeActivity("auth0|xyz1234", "")}
	suite.mockActivityRepo.EXPECT().GetAll(gomock.Any()).Return(activities, nil)
	suite.mockNames.EXPECT().ResolveMany(gomock.Any(), []string{"auth0|xyz1234"}).
		Return(map[string]string{"auth0|xyz1234": "User 1234"})

	resp, err := suite.activityService.List(context.Background())

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Unknown User", resp.Activities[0].OwnerDisplayName)
}

func (suite *ActivityServiceTestSuite) TestList_EmptyResult() {
	suite.mockActivityRepo.EXPECT().GetAll(gomock.Any()).Return([]models.Activity{}, nil)

	resp, err := suite.activityService.List(context.Background())

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, resp.Total)
	assert.NotNil(suite.T(), resp.Activities)
}

func (suite *ActivityServiceTestSuite) TestGetByID_NotFound() {
	id := uuid.New()
	suite.mockActivityRepo.EXPECT().GetByID(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.activityService.GetByID(context.Background(), id)

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrActivityNotFound)
}

func (suite *ActivityServiceTestSuite) TestListForUser_Success() {
	activities := []models.Activity{makeActivity("u1", "Alice")}
	suite.mockActivityRepo.EXPECT().GetByUserID(gomock.Any(), "u2").Return(activities, nil)
	suite.mockNames.EXPECT().ResolveMany(gomock.Any(), []string{"u1"}).
		Return(map[string]string{"u1": "Alice"})

	resp, err := suite.activityService.ListForUser(context.Background(), "u2")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 1, resp.Total)
}

func (suite *ActivityServiceTestSuite) TestCreate_SeedsOwnerRoster() {
	req := &service.CreateActivityRequest{
		Title:         "  Campus App  ",
		Description:   "An app",
		Links:         []string{"https://github.com/test/app", "team@example.edu"},
		OpenPositions: 3,
		Tags:          []string{"go"},
	}

	suite.mockActivityRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, activity *models.Activity) error {
			assert.Equal(suite.T(), "Campus App", activity.Title)
			assert.Equal(suite.T(), "u1", activity.OwnerID)
			assert.Equal(suite.T(), "Alice", activity.OwnerDisplayName)
			assert.Equal(suite.T(), models.Roster{{UserID: "u1", Role: models.RoleOwner}}, activity.Roster)
			return nil
		})

	resp, err := suite.activityService.Create(context.Background(), req, "u1", "Alice")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Campus App", resp.Title)
	assert.Equal(suite.T(), []string{"u1"}, resp.TeamIDs)
	assert.Equal(suite.T(), map[string]string{"u1": models.RoleOwner}, resp.TeamRoster)
	assert.Equal(suite.T(), "Alice", resp.OwnerDisplayName)
}

func (suite *ActivityServiceTestSuite) TestCreate_InvalidLinkRejectedBeforeWrite() {
	req := &service.CreateActivityRequest{
		Title: "Campus App",
		Links: []string{"not-a-url-or-email"},
	}

	resp, err := suite.activityService.Create(context.Background(), req, "u1", "Alice")

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *ActivityServiceTestSuite) TestCreate_MissingTitle() {
	req := &service.CreateActivityRequest{Title: ""}

	resp, err := suite.activityService.Create(context.Background(), req, "u1", "Alice")

	assert.Nil(suite.T(), resp)
	assert.Error(suite.T(), err)
}

func (suite *ActivityServiceTestSuite) TestCreate_BlankOwnerRejected() {
	req := &service.CreateActivityRequest{Title: "Campus App"}

	resp, err := suite.activityService.Create(context.Background(), req, "  ", "Alice")

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *ActivityServiceTestSuite) TestUpdate_NonOwnerForbidden() {
	id := uuid.New()
	activity := makeActivity("u1", "Alice")
	suite.mockActivityRepo.EXPECT().GetByID(gomock.Any(), id).Return(&activity, nil)

	title := "New Title"
	resp, err := suite.activityService.Update(context.Background(), id, "u2", &service.UpdateActivityRequest{Title: &title})

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotActivityOwner)
}

func (suite *ActivityServiceTestSuite) TestUpdate_PatchesOnlyProvidedFields() {
	id := uuid.New()
	activity := makeActivity("u1", "Alice")
	activity.BaseModel.ID = id

	title := "  New Title  "
	positions := 4

	suite.mockActivityRepo.EXPECT().GetByID(gomock.Any(), id).Return(&activity, nil)
	suite.mockActivityRepo.EXPECT().UpdateFields(gomock.Any(), id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, fields map[string]interface{}) error {
			assert.Equal(suite.T(), "New Title", fields["title"])
			assert.Equal(suite.T(), 4, fields["open_positions"])
			assert.NotContains(suite.T(), fields, "description")
			assert.NotContains(suite.T(), fields, "roster")
			return nil
		})

	updated := activity
	updated.Title = "New Title"
	updated.OpenPositions = 4
	suite.mockActivityRepo.EXPECT().GetByID(gomock.Any(), id).Return(&updated, nil)
	suite.mockNames.EXPECT().ResolveMany(gomock.Any(), []string{"u1"}).
		Return(map[string]string{"u1": "Alice"})

	resp, err := suite.activityService.Update(context.Background(), id, "u1", &service.UpdateActivityRequest{
		Title:         &title,
		OpenPositions: &positions,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "New Title", resp.Title)
	assert.Equal(suite.T(), 4, resp.OpenPositions)
}

func (suite *ActivityServiceTestSuite) TestUpdate_InvalidLinkRejected() {
	id := uuid.New()
	activity := makeActivity("u1", "Alice")
	suite.mockActivityRepo.EXPECT().GetByID(gomock.Any(), id).Return(&activity, nil)

	links := []string{"://broken"}
	resp, err := suite.activityService.Update(context.Background(), id, "u1", &service.UpdateActivityRequest{Links: &links})

	assert.Nil(suite.T(), resp)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

func (suite *ActivityServiceTestSuite) TestDelete_OwnerOnly() {
	id := uuid.New()
	activity := makeActivity("u1", "Alice")
	suite.mockActivityRepo.EXPECT().GetByID(gomock.Any(), id).Return(&activity, nil)

	err := suite.activityService.Delete(context.Background(), id, "u2")

	assert.ErrorIs(suite.T(), err, apperrors.ErrNotActivityOwner)
}

func (suite *ActivityServiceTestSuite) TestDelete_Success() {
	id := uuid.New()
	activity := makeActivity("u1", "Alice")
	suite.mockActivityRepo.EXPECT().GetByID(gomock.Any(), id).Return(&activity, nil)
	suite.mockActivityRepo.EXPECT().Delete(gomock.Any(), id).Return(nil)

	err := suite.activityService.Delete(context.Background(), id, "u1")

	assert.NoError(suite.T(), err)
}

func (suite *ActivityServiceTestSuite) TestJoin_Success() {
	id := uuid.New()
	joined := makeActivity("u1", "Alice")
	joined.Roster = append(joined.Roster, models.RosterEntry{UserID: "u2", Role: models.RoleMember})

	suite.mockActivityRepo.EXPECT().AddMember(gomock.Any(), id, models.RosterEntry{UserID: "u2", Role: models.RoleMember}).
		Return(&joined, nil)
	suite.mockNames.EXPECT().ResolveMany(gomock.Any(), []string{"u1"}).
		Return(map[string]string{"u1": "Alice"})

	resp, err := suite.activityService.Join(context.Background(), id, "u2")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"u1", "u2"}, resp.TeamIDs)
	assert.Equal(suite.T(), models.RoleMember, resp.TeamRoster["u2"])
}

func (suite *ActivityServiceTestSuite) TestJoin_DuplicateMember() {
	id := uuid.New()
	suite.mockActivityRepo.EXPECT().AddMember(gomock.Any(), id, gomock.Any()).
		Return(nil, apperrors.ErrMemberExists)

	resp, err := suite.activityService.Join(context.Background(), id, "u2")

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrMemberExists)
}

func (suite *ActivityServiceTestSuite) TestLeave_OwnerCannotLeave() {
	id := uuid.New()
	suite.mockActivityRepo.EXPECT().RemoveMember(gomock.Any(), id, "u1").
		Return(nil, apperrors.ErrOwnerCannotLeave)

	resp, err := suite.activityService.Leave(context.Background(), id, "u1")

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrOwnerCannotLeave)
}

func (suite *ActivityServiceTestSuite) TestLeave_NotAMember() {
	id := uuid.New()
	suite.mockActivityRepo.EXPECT().RemoveMember(gomock.Any(), id, "u3").
		Return(nil, apperrors.ErrNotTeamMember)

	resp, err := suite.activityService.Leave(context.Background(), id, "u3")

	assert.Nil(suite.T(), resp)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotTeamMember)
}

func (suite *ActivityServiceTestSuite) TestLeave_Success() {
	id := uuid.New()
	remaining := makeActivity("u1", "Alice")
	suite.mockActivityRepo.EXPECT().RemoveMember(gomock.Any(), id, "u2").Return(&remaining, nil)
	suite.mockNames.EXPECT().ResolveMany(gomock.Any(), []string{"u1"}).
		Return(map[string]string{"u1": "Alice"})

	resp, err := suite.activityService.Leave(context.Background(), id, "u2")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), []string{"u1"}, resp.TeamIDs)
}

func (suite *ActivityServiceTestSuite) TestList_RepositoryError() {
	suite.mockActivityRepo.EXPECT().GetAll(gomock.Any()).Return(nil, errors.New("db failed"))

	resp, err := suite.activityService.List(context.Background())

	assert.Nil(suite.T(), resp)
	assert.Error(suite.T(), err)
	assert.Contains(suite.T(), err.Error(), "failed to list activities")
}

func TestActivityServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ActivityServiceTestSuite))
}

package testutils

import (
	"time"

	"student-hub-backend/internal/database/models"

	"github.com/google/uuid"
)

// UserFactory provides methods to create test User data
type UserFactory struct{}

// NewUserFactory creates a new UserFactory
func NewUserFactory() *UserFactory {
	return &UserFactory{}
}

// Create creates a test User with default values
func (f *UserFactory) Create() *models.User {
	// Generate a unique provider-style identifier to avoid conflicts
	id := "auth0|" + uuid.New().String()[:18]

	return &models.User{
		ID:          id,
		DisplayName: "Jordan Lee",
		AvatarURL:   "https://avatars.test.com/jordan.png",
		Contacts:    models.StringList{"jordan.lee@campus.test"},
		Interests:   models.StringList{"robotics", "music"},
		Skills:      models.StringList{"Go", "React"},
		Experience:  "Two hackathons and a summer internship",
		Involved:    nil,
		Role:        models.UserRoleStudent,
		Seniority:   models.SeniorityJunior,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
}

// WithID sets a custom identifier for the user
func (f *UserFactory) WithID(id string) *models.User {
	user := f.Create()
	user.ID = id
	return user
}

// WithDisplayName sets a custom display name for the user
func (f *UserFactory) WithDisplayName(name string) *models.User {
	user := f.Create()
	user.DisplayName = name
	return user
}

// WithRole sets a custom role for the user
func (f *UserFactory) WithRole(role models.UserRole) *models.User {
	user := f.Create()
	user.Role = role
	return user
}

// ActivityFactory provides methods to create test Activity data
type ActivityFactory struct{}

// NewActivityFactory creates a new ActivityFactory
func NewActivityFactory() *ActivityFactory {
	return &ActivityFactory{}
}

// Create creates a test Activity with default values. The owner is the sole
// roster entry, matching the state a freshly created activity has.
func (f *ActivityFactory) Create() *models.Activity {
	ownerID := "auth0|" + uuid.New().String()[:18]

	return &models.Activity{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Title:            "Test Activity",
		Description:      "A test activity for testing purposes",
		Links:            models.StringList{"https://github.com/test/test-activity"},
		OpenPositions:    2,
		Tags:             models.StringList{"go", "backend"},
		OwnerID:          ownerID,
		OwnerDisplayName: "Jordan Lee",
		Roster:           models.Roster{{UserID: ownerID, Role: models.RoleOwner}},
	}
}

// WithOwner sets the owner for the activity, keeping the roster consistent
func (f *ActivityFactory) WithOwner(ownerID, displayName string) *models.Activity {
	activity := f.Create()
	activity.OwnerID = ownerID
	activity.OwnerDisplayName = displayName
	activity.Roster = models.Roster{{UserID: ownerID, Role: models.RoleOwner}}
	return activity
}

// WithTitle sets a custom title for the activity
func (f *ActivityFactory) WithTitle(title string) *models.Activity {
	activity := f.Create()
	activity.Title = title
	return activity
}

// WithMembers appends member roster entries after the owner entry
func (f *ActivityFactory) WithMembers(memberIDs ...string) *models.Activity {
	activity := f.Create()
	for _, id := range memberIDs {
		activity.Roster = append(activity.Roster, models.RosterEntry{UserID: id, Role: models.RoleMember})
	}
	return activity
}

// FactorySet provides access to all factories
type FactorySet struct {
	User     *UserFactory
	Activity *ActivityFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		User:     NewUserFactory(),
		Activity: NewActivityFactory(),
	}
}

// CreateOwnedActivity creates a user and an activity owned by that user
func (fs *FactorySet) CreateOwnedActivity() (*models.User, *models.Activity) {
	owner := fs.User.Create()
	activity := fs.Activity.WithOwner(owner.ID, owner.DisplayName)
	return owner, activity
}

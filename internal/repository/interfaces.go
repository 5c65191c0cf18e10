package repository

import (
	"context"

	"student-hub-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// ActivityRepositoryInterface defines the interface for activity repository operations
type ActivityRepositoryInterface interface {
	Create(ctx context.Context, activity *models.Activity) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Activity, error)
	GetAll(ctx context.Context) ([]models.Activity, error)
	GetByUserID(ctx context.Context, userID string) ([]models.Activity, error)
	Update(ctx context.Context, activity *models.Activity) error
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
	AddMember(ctx context.Context, id uuid.UUID, entry models.RosterEntry) (*models.Activity, error)
	RemoveMember(ctx context.Context, id uuid.UUID, userID string) (*models.Activity, error)
}

// UserRepositoryInterface defines the interface for user repository operations
type UserRepositoryInterface interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	Exists(ctx context.Context, id string) (bool, error)
	Update(ctx context.Context, user *models.User) error
	GetDisplayNames(ctx context.Context, ids []string) (map[string]string, error)
}

// EngagementRepositoryInterface defines the interface for saved/recently-viewed list operations
type EngagementRepositoryInterface interface {
	Save(ctx context.Context, userID string, activityID uuid.UUID) error
	Unsave(ctx context.Context, userID string, activityID uuid.UUID) error
	GetSaved(ctx context.Context, userID string) ([]models.Activity, error)
	ClearSaved(ctx context.Context, userID string) error
	RecordView(ctx context.Context, userID string, activityID uuid.UUID) error
	GetRecent(ctx context.Context, userID string) ([]models.Activity, error)
	ClearRecent(ctx context.Context, userID string) error
}

package service

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// NameResolver resolves user identifiers to current display names. Satisfied
// by namecache.Cache; an interface so services can be tested in isolation.
type NameResolver interface {
	ResolveOne(ctx context.Context, userID string) string
	ResolveMany(ctx context.Context, userIDs []string) map[string]string
	Invalidate(userID string)
	Clear()
}

// ActivityServiceInterface defines the interface for activity service
type ActivityServiceInterface interface {
	List(ctx context.Context) (*ActivityListResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (*ActivityResponse, error)
	ListForUser(ctx context.Context, userID string) (*ActivityListResponse, error)
	Create(ctx context.Context, req *CreateActivityRequest, ownerID, ownerDisplayName string) (*ActivityResponse, error)
	Update(ctx context.Context, id uuid.UUID, actorID string, req *UpdateActivityRequest) (*ActivityResponse, error)
	Delete(ctx context.Context, id uuid.UUID, actorID string) error
	Join(ctx context.Context, id uuid.UUID, userID string) (*ActivityResponse, error)
	Leave(ctx context.Context, id uuid.UUID, userID string) (*ActivityResponse, error)
}

// UserServiceInterface defines the interface for user service
type UserServiceInterface interface {
	EnsureProfile(ctx context.Context, id string, req *CreateProfileRequest) (*UserResponse, error)
	GetByID(ctx context.Context, id string) (*UserResponse, error)
	Exists(ctx context.Context, id string) (bool, error)
	Update(ctx context.Context, id string, req *UpdateProfileRequest) (*UserResponse, error)
}

// EngagementServiceInterface defines the interface for engagement service
type EngagementServiceInterface interface {
	Save(ctx context.Context, userID string, activityID uuid.UUID) error
	Unsave(ctx context.Context, userID string, activityID uuid.UUID) error
	GetSaved(ctx context.Context, userID string) (*ActivityListResponse, error)
	ClearSaved(ctx context.Context, userID string) error
	RecordView(ctx context.Context, userID string, activityID uuid.UUID) error
	GetRecent(ctx context.Context, userID string) (*ActivityListResponse, error)
	ClearRecent(ctx context.Context, userID string) error
}

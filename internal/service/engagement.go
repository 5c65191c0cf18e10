package service

import (
	"context"
	"errors"
	"fmt"

	"student-hub-backend/internal/database/models"
	apperrors "student-hub-backend/internal/errors"
	"student-hub-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EngagementService handles the per-user saved and recently-viewed lists
type EngagementService struct {
	repo         repository.EngagementRepositoryInterface
	activityRepo repository.ActivityRepositoryInterface
	names        NameResolver
}

// NewEngagementService creates a new engagement service
func NewEngagementService(repo repository.EngagementRepositoryInterface, activityRepo repository.ActivityRepositoryInterface, names NameResolver) *EngagementService {
	return &EngagementService{
		repo:         repo,
		activityRepo: activityRepo,
		names:        names,
	}
}

// Save bookmarks an activity for the user
func (s *EngagementService) Save(ctx context.Context, userID string, activityID uuid.UUID) error {
	if _, err := s.activityRepo.GetByID(ctx, activityID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrActivityNotFound
		}
		return fmt.Errorf("failed to verify activity: %w", err)
	}

	if err := s.repo.Save(ctx, userID, activityID); err != nil {
		if errors.Is(err, apperrors.ErrActivitySaved) {
			return err
		}
		return fmt.Errorf("failed to save activity: %w", err)
	}
	return nil
}

// Unsave removes a bookmark
func (s *EngagementService) Unsave(ctx context.Context, userID string, activityID uuid.UUID) error {
	err := s.repo.Unsave(ctx, userID, activityID)
	if err != nil {
		if errors.Is(err, apperrors.ErrSavedNotFound) {
			return err
		}
		return fmt.Errorf("failed to unsave activity: %w", err)
	}
	return nil
}

// GetSaved retrieves the user's bookmarked activities with owner names reconciled
func (s *EngagementService) GetSaved(ctx context.Context, userID string) (*ActivityListResponse, error) {
	activities, err := s.repo.GetSaved(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get saved activities: %w", err)
	}
	return s.toListResponse(ctx, activities), nil
}

// ClearSaved removes all bookmarks for the user
func (s *EngagementService) ClearSaved(ctx context.Context, userID string) error {
	if err := s.repo.ClearSaved(ctx, userID); err != nil {
		return fmt.Errorf("failed to clear saved activities: %w", err)
	}
	return nil
}

// RecordView records that the user opened an activity; the recents list is
// capped and older entries are evicted.
func (s *EngagementService) RecordView(ctx context.Context, userID string, activityID uuid.UUID) error {
	if _, err := s.activityRepo.GetByID(ctx, activityID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrActivityNotFound
		}
		return fmt.Errorf("failed to verify activity: %w", err)
	}

	if err := s.repo.RecordView(ctx, userID, activityID); err != nil {
		return fmt.Errorf("failed to record view: %w", err)
	}
	return nil
}

// GetRecent retrieves the user's recently-viewed activities, newest first
func (s *EngagementService) GetRecent(ctx context.Context, userID string) (*ActivityListResponse, error) {
	activities, err := s.repo.GetRecent(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get recently viewed activities: %w", err)
	}
	return s.toListResponse(ctx, activities), nil
}

// ClearRecent removes the user's recently-viewed list
func (s *EngagementService) ClearRecent(ctx context.Context, userID string) error {
	if err := s.repo.ClearRecent(ctx, userID); err != nil {
		return fmt.Errorf("failed to clear recently viewed activities: %w", err)
	}
	return nil
}

// toListResponse applies the same owner-name reconciliation used by the
// activity service to engagement-derived activity lists.
func (s *EngagementService) toListResponse(ctx context.Context, activities []models.Activity) *ActivityListResponse {
	responses := enrichActivities(ctx, s.names, activities)
	return &ActivityListResponse{
		Activities: responses,
		Total:      len(responses),
	}
}

package repository

import (
	"context"
	"errors"
	"time"

	"student-hub-backend/internal/database/models"
	apperrors "student-hub-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EngagementRepository handles the per-user saved and recently-viewed lists
type EngagementRepository struct {
	db *gorm.DB
}

// NewEngagementRepository creates a new engagement repository
func NewEngagementRepository(db *gorm.DB) *EngagementRepository {
	return &EngagementRepository{db: db}
}

// Save bookmarks an activity for a user
func (r *EngagementRepository) Save(ctx context.Context, userID string, activityID uuid.UUID) error {
	saved := &models.SavedActivity{
		UserID:     userID,
		ActivityID: activityID,
	}
	err := r.db.WithContext(ctx).Create(saved).Error
	if err != nil && errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperrors.ErrActivitySaved
	}
	return err
}

// Unsave removes a bookmark
func (r *EngagementRepository) Unsave(ctx context.Context, userID string, activityID uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND activity_id = ?", userID, activityID).
		Delete(&models.SavedActivity{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.ErrSavedNotFound
	}
	return nil
}

// GetSaved retrieves the activities a user has bookmarked, newest bookmark first
func (r *EngagementRepository) GetSaved(ctx context.Context, userID string) ([]models.Activity, error) {
	activities := []models.Activity{}
	err := r.db.WithContext(ctx).
		Joins("JOIN saved_activities ON saved_activities.activity_id = activities.id").
		Where("saved_activities.user_id = ?", userID).
		Order("saved_activities.created_at DESC").
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

// ClearSaved removes all bookmarks for a user
func (r *EngagementRepository) ClearSaved(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.SavedActivity{}).Error
}

// RecordView upserts a recently-viewed entry and evicts entries beyond the cap
func (r *EngagementRepository) RecordView(ctx context.Context, userID string, activityID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		entry := &models.RecentlyViewed{
			UserID:     userID,
			ActivityID: activityID,
			ViewedAt:   time.Now(),
		}
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "activity_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"viewed_at"}),
		}).Create(entry).Error
		if err != nil {
			return err
		}

		// Evict everything past the newest RecentsCap entries
		return tx.Exec(`
			DELETE FROM recently_viewed_activities
			WHERE user_id = ? AND id NOT IN (
				SELECT id FROM recently_viewed_activities
				WHERE user_id = ?
				ORDER BY viewed_at DESC
				LIMIT ?
			)
		`, userID, userID, models.RecentsCap).Error
	})
}

// GetRecent retrieves the activities a user viewed most recently, newest first
func (r *EngagementRepository) GetRecent(ctx context.Context, userID string) ([]models.Activity, error) {
	activities := []models.Activity{}
	err := r.db.WithContext(ctx).
		Joins("JOIN recently_viewed_activities ON recently_viewed_activities.activity_id = activities.id").
		Where("recently_viewed_activities.user_id = ?", userID).
		Order("recently_viewed_activities.viewed_at DESC").
		Limit(models.RecentsCap).
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

// ClearRecent removes the recently-viewed list for a user
func (r *EngagementRepository) ClearRecent(ctx context.Context, userID string) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.RecentlyViewed{}).Error
}

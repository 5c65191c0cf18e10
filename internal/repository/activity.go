package repository

import (
	"context"
	"encoding/json"

	"student-hub-backend/internal/database/models"
	apperrors "student-hub-backend/internal/errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ActivityRepository handles database operations for activities
type ActivityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Create creates a new activity
func (r *ActivityRepository) Create(ctx context.Context, activity *models.Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

// GetByID retrieves an activity by ID
func (r *ActivityRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Activity, error) {
	var activity models.Activity
	err := r.db.WithContext(ctx).First(&activity, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

// GetAll retrieves all activities ordered by creation time descending
func (r *ActivityRepository) GetAll(ctx context.Context) ([]models.Activity, error) {
	activities := []models.Activity{}
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

// GetByUserID retrieves activities where the user is the owner or a roster member
func (r *ActivityRepository) GetByUserID(ctx context.Context, userID string) ([]models.Activity, error) {
	member, err := json.Marshal([]map[string]string{{"user_id": userID}})
	if err != nil {
		return nil, err
	}

	activities := []models.Activity{}
	err = r.db.WithContext(ctx).
		Where("owner_id = ? OR roster @> ?", userID, string(member)).
		Order("created_at DESC").
		Find(&activities).Error
	if err != nil {
		return nil, err
	}
	return activities, nil
}

// Update persists a full activity record
func (r *ActivityRepository) Update(ctx context.Context, activity *models.Activity) error {
	return r.db.WithContext(ctx).Save(activity).Error
}

// UpdateFields persists a partial-field patch against an activity
func (r *ActivityRepository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	result := r.db.WithContext(ctx).Model(&models.Activity{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete deletes an activity
func (r *ActivityRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Activity{}, "id = ?", id).Error
}

// AddMember appends a roster entry as a single read-modify-write. The row is
// locked for the duration of the transaction so concurrent joins against the
// same activity serialize instead of silently discarding each other.
func (r *ActivityRepository) AddMember(ctx context.Context, id uuid.UUID, entry models.RosterEntry) (*models.Activity, error) {
	var activity models.Activity
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&activity, "id = ?", id).Error; err != nil {
			return err
		}
		if activity.Roster.Contains(entry.UserID) {
			return apperrors.ErrMemberExists
		}
		activity.Roster = append(activity.Roster, entry)
		return tx.Model(&activity).Update("roster", activity.Roster).Error
	})
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

// RemoveMember removes a roster entry as a single read-modify-write under a
// row lock. The owner entry can never be removed.
func (r *ActivityRepository) RemoveMember(ctx context.Context, id uuid.UUID, userID string) (*models.Activity, error) {
	var activity models.Activity
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&activity, "id = ?", id).Error; err != nil {
			return err
		}
		if activity.OwnerID == userID {
			return apperrors.ErrOwnerCannotLeave
		}
		if !activity.Roster.Contains(userID) {
			return apperrors.ErrNotTeamMember
		}
		roster := make(models.Roster, 0, len(activity.Roster)-1)
		for _, e := range activity.Roster {
			if e.UserID != userID {
				roster = append(roster, e)
			}
		}
		activity.Roster = roster
		return tx.Model(&activity).Update("roster", activity.Roster).Error
	})
	if err != nil {
		return nil, err
	}
	return &activity, nil
}

package models

import (
	"time"

	"github.com/google/uuid"
)

// RecentsCap bounds the per-user recently-viewed list; older entries are evicted.
const RecentsCap = 10

// SavedActivity is a user's bookmark of an activity
type SavedActivity struct {
	BaseModel
	UserID     string    `json:"user_id" gorm:"not null;size:64;uniqueIndex:idx_saved_user_activity" validate:"required"`
	ActivityID uuid.UUID `json:"activity_id" gorm:"type:uuid;not null;uniqueIndex:idx_saved_user_activity" validate:"required"`

	// Relationships
	Activity Activity `json:"activity,omitempty" gorm:"foreignKey:ActivityID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for SavedActivity
func (SavedActivity) TableName() string {
	return "saved_activities"
}

// RecentlyViewed records that a user opened an activity detail view
type RecentlyViewed struct {
	BaseModel
	UserID     string    `json:"user_id" gorm:"not null;size:64;uniqueIndex:idx_recent_user_activity;index" validate:"required"`
	ActivityID uuid.UUID `json:"activity_id" gorm:"type:uuid;not null;uniqueIndex:idx_recent_user_activity" validate:"required"`
	ViewedAt   time.Time `json:"viewed_at" gorm:"not null;index"`

	// Relationships
	Activity Activity `json:"activity,omitempty" gorm:"foreignKey:ActivityID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for RecentlyViewed
func (RecentlyViewed) TableName() string {
	return "recently_viewed_activities"
}

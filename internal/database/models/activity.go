package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// RoleOwner is the roster role held by the user who created an activity.
const RoleOwner = "Owner"

// RoleMember is the default roster role for users who join an activity.
const RoleMember = "Member"

// RosterEntry is a single team membership: who is on the team and what role
// they hold. Order within the roster is the display order.
type RosterEntry struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

// Roster is the ordered team membership of an activity, stored as a single
// JSONB column. The plain member-id list is derived via MemberIDs rather than
// stored redundantly.
type Roster []RosterEntry

// Value implements driver.Valuer for JSONB storage
func (r Roster) Value() (driver.Value, error) {
	if r == nil {
		r = Roster{}
	}
	return json.Marshal(r)
}

// Scan implements sql.Scanner for JSONB storage
func (r *Roster) Scan(value interface{}) error {
	if value == nil {
		*r = Roster{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, r)
	case string:
		return json.Unmarshal([]byte(v), r)
	default:
		return fmt.Errorf("unsupported type for Roster: %T", value)
	}
}

// GormDataType tells GORM which column type to use
func (Roster) GormDataType() string {
	return "jsonb"
}

// Contains reports whether the given user is on the roster
func (r Roster) Contains(userID string) bool {
	for _, e := range r {
		if e.UserID == userID {
			return true
		}
	}
	return false
}

// RoleOf returns the role held by the given user, or "" if not a member
func (r Roster) RoleOf(userID string) string {
	for _, e := range r {
		if e.UserID == userID {
			return e.Role
		}
	}
	return ""
}

// MemberIDs returns the ordered list of member identifiers
func (r Roster) MemberIDs() []string {
	ids := make([]string, len(r))
	for i, e := range r {
		ids[i] = e.UserID
	}
	return ids
}

// RoleMap returns the roster as a member-id to role mapping
func (r Roster) RoleMap() map[string]string {
	m := make(map[string]string, len(r))
	for _, e := range r {
		m[e.UserID] = e.Role
	}
	return m
}

// Activity represents a collaborative project listing posted by a student
type Activity struct {
	BaseModel
	Title            string     `json:"title" gorm:"not null;size:100" validate:"required,min=1,max=100"`
	Description      string     `json:"description" gorm:"size:500" validate:"max=500"`
	Links            StringList `json:"links" gorm:"type:jsonb"`
	OpenPositions    int        `json:"open_positions" gorm:"not null;default:0" validate:"gte=0"`
	Tags             StringList `json:"tags" gorm:"type:jsonb"`
	OwnerID          string     `json:"owner_id" gorm:"not null;size:64;index" validate:"required"`
	OwnerDisplayName string     `json:"owner_display_name" gorm:"size:200"` // denormalized snapshot, reconciled at read time
	Roster           Roster     `json:"roster" gorm:"type:jsonb;not null"`
}

// TableName returns the table name for Activity
func (Activity) TableName() string {
	return "activities"
}

// IsOwner reports whether the given user created this activity
func (a *Activity) IsOwner(userID string) bool {
	return a.OwnerID == userID
}

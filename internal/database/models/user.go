package models

import (
	"time"
)

// UserRole classifies an account profile
type UserRole string

const (
	UserRoleStudent      UserRole = "student"
	UserRoleFaculty      UserRole = "faculty"
	UserRoleOrganization UserRole = "organization"
)

// Seniority represents a student's year of study
type Seniority string

const (
	SeniorityFreshman  Seniority = "freshman"
	SenioritySophomore Seniority = "sophomore"
	SeniorityJunior    Seniority = "junior"
	SenioritySenior    Seniority = "senior"
	SeniorityGraduate  Seniority = "graduate"
)

// User represents an account profile. The primary key is the identifier
// issued by the authentication provider, not a locally generated UUID.
type User struct {
	ID          string     `json:"id" gorm:"primaryKey;size:64" validate:"required,max=64"`
	DisplayName string     `json:"display_name" gorm:"not null;size:200" validate:"required,min=1,max=200"` // authoritative name of record
	AvatarURL   string     `json:"avatar_url" gorm:"size:500"`
	Contacts    StringList `json:"contacts" gorm:"type:jsonb"`
	Interests   StringList `json:"interests" gorm:"type:jsonb"`
	Skills      StringList `json:"skills" gorm:"type:jsonb"`
	Experience  string     `json:"experience" gorm:"type:text"`
	Involved    StringList `json:"involved" gorm:"type:jsonb"` // labels of activities the user lists on their profile
	Role        UserRole   `json:"role" gorm:"type:varchar(50);not null;default:'student'" validate:"required"`
	Seniority   Seniority  `json:"seniority,omitempty" gorm:"type:varchar(50)"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// TableName returns the table name for User
func (User) TableName() string {
	return "users"
}

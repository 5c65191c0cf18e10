package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"student-hub-backend/internal/database/models"
	apperrors "student-hub-backend/internal/errors"
	"student-hub-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// UserService handles business logic for account profiles
type UserService struct {
	repo      repository.UserRepositoryInterface
	names     NameResolver
	validator *validator.Validate
}

// NewUserService creates a new user service
func NewUserService(repo repository.UserRepositoryInterface, names NameResolver, validator *validator.Validate) *UserService {
	return &UserService{
		repo:      repo,
		names:     names,
		validator: validator,
	}
}

// CreateProfileRequest represents the data needed to create a profile on
// first sign-in. The identifier comes from the auth provider's claims.
type CreateProfileRequest struct {
	DisplayName string   `json:"display_name" validate:"required,min=1,max=200"`
	AvatarURL   string   `json:"avatar_url,omitempty" validate:"omitempty,max=500"`
	Contacts    []string `json:"contacts,omitempty"`
	Interests   []string `json:"interests,omitempty"`
	Skills      []string `json:"skills,omitempty"`
	Experience  string   `json:"experience,omitempty"`
	Involved    []string `json:"involved,omitempty"`
	Role        string   `json:"role,omitempty" validate:"omitempty,oneof=student faculty organization"`
	Seniority   string   `json:"seniority,omitempty" validate:"omitempty,oneof=freshman sophomore junior senior graduate"`
}

// UpdateProfileRequest represents a partial profile edit
type UpdateProfileRequest struct {
	DisplayName *string   `json:"display_name,omitempty" validate:"omitempty,min=1,max=200"`
	AvatarURL   *string   `json:"avatar_url,omitempty" validate:"omitempty,max=500"`
	Contacts    *[]string `json:"contacts,omitempty"`
	Interests   *[]string `json:"interests,omitempty"`
	Skills      *[]string `json:"skills,omitempty"`
	Experience  *string   `json:"experience,omitempty"`
	Involved    *[]string `json:"involved,omitempty"`
	Role        *string   `json:"role,omitempty" validate:"omitempty,oneof=student faculty organization"`
	Seniority   *string   `json:"seniority,omitempty" validate:"omitempty,oneof=freshman sophomore junior senior graduate"`
}

// UserResponse represents the response data for a profile
type UserResponse struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"display_name"`
	AvatarURL   string    `json:"avatar_url"`
	Contacts    []string  `json:"contacts"`
	Interests   []string  `json:"interests"`
	Skills      []string  `json:"skills"`
	Experience  string    `json:"experience"`
	Involved    []string  `json:"involved"`
	Role        string    `json:"role"`
	Seniority   string    `json:"seniority,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// EnsureProfile creates a profile on first sign-in. If a profile already
// exists for the identifier it is returned unchanged.
func (s *UserService) EnsureProfile(ctx context.Context, id string, req *CreateProfileRequest) (*UserResponse, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperrors.NewValidationError("id", "user identifier is required")
	}
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err == nil {
		return s.toResponse(existing), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing profile: %w", err)
	}

	role := models.UserRole(req.Role)
	if role == "" {
		role = models.UserRoleStudent
	}

	user := &models.User{
		ID:          id,
		DisplayName: strings.TrimSpace(req.DisplayName),
		AvatarURL:   req.AvatarURL,
		Contacts:    req.Contacts,
		Interests:   req.Interests,
		Skills:      req.Skills,
		Experience:  req.Experience,
		Involved:    req.Involved,
		Role:        role,
		Seniority:   models.Seniority(req.Seniority),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrUserExists
		}
		return nil, fmt.Errorf("failed to create profile: %w", err)
	}

	return s.toResponse(user), nil
}

// GetByID retrieves a profile
func (s *UserService) GetByID(ctx context.Context, id string) (*UserResponse, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return s.toResponse(user), nil
}

// Exists reports whether a profile exists for the identifier
func (s *UserService) Exists(ctx context.Context, id string) (bool, error) {
	exists, err := s.repo.Exists(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to check profile existence: %w", err)
	}
	return exists, nil
}

// Update applies a partial profile edit. A display-name change invalidates
// the cached name so the next activity listing reflects it immediately.
func (s *UserService) Update(ctx context.Context, id string, req *UpdateProfileRequest) (*UserResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	renamed := false
	if req.DisplayName != nil {
		name := strings.TrimSpace(*req.DisplayName)
		if name == "" {
			return nil, apperrors.NewValidationError("display_name", "display name is required")
		}
		if name != user.DisplayName {
			user.DisplayName = name
			renamed = true
		}
	}
	if req.AvatarURL != nil {
		user.AvatarURL = *req.AvatarURL
	}
	if req.Contacts != nil {
		user.Contacts = *req.Contacts
	}
	if req.Interests != nil {
		user.Interests = *req.Interests
	}
	if req.Skills != nil {
		user.Skills = *req.Skills
	}
	if req.Experience != nil {
		user.Experience = *req.Experience
	}
	if req.Involved != nil {
		user.Involved = *req.Involved
	}
	if req.Role != nil {
		user.Role = models.UserRole(*req.Role)
	}
	if req.Seniority != nil {
		user.Seniority = models.Seniority(*req.Seniority)
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	if renamed {
		s.names.Invalidate(id)
	}

	return s.toResponse(user), nil
}

func (s *UserService) toResponse(user *models.User) *UserResponse {
	orEmpty := func(l models.StringList) []string {
		if l == nil {
			return []string{}
		}
		return l
	}
	return &UserResponse{
		ID:          user.ID,
		DisplayName: user.DisplayName,
		AvatarURL:   user.AvatarURL,
		Contacts:    orEmpty(user.Contacts),
		Interests:   orEmpty(user.Interests),
		Skills:      orEmpty(user.Skills),
		Experience:  user.Experience,
		Involved:    orEmpty(user.Involved),
		Role:        string(user.Role),
		Seniority:   string(user.Seniority),
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}

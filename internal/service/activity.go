package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"strings"
	"time"

	"student-hub-backend/internal/database/models"
	apperrors "student-hub-backend/internal/errors"
	"student-hub-backend/internal/namecache"
	"student-hub-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UnknownOwnerName is rendered when neither the current profile nor the stored
// snapshot yields a usable owner name.
const UnknownOwnerName = "Unknown User"

// ActivityService handles business logic for activities, including owner-name
// reconciliation: the stored owner_display_name is a snapshot taken at write
// time and is replaced with the owner's current name on every read.
type ActivityService struct {
	repo      repository.ActivityRepositoryInterface
	names     NameResolver
	validator *validator.Validate
}

// NewActivityService creates a new activity service
func NewActivityService(repo repository.ActivityRepositoryInterface, names NameResolver, validator *validator.Validate) *ActivityService {
	return &ActivityService{
		repo:      repo,
		names:     names,
		validator: validator,
	}
}

// CreateActivityRequest represents the request to create an activity
type CreateActivityRequest struct {
	Title         string   `json:"title" validate:"required,min=1,max=100"`
	Description   string   `json:"description,omitempty" validate:"max=500"`
	Links         []string `json:"links,omitempty"`
	OpenPositions int      `json:"open_positions,omitempty" validate:"gte=0"`
	Tags          []string `json:"tags,omitempty"`
}

// UpdateActivityRequest represents a partial-field patch to an activity.
// Membership is not patchable through this path; join/leave operations are
// the only writers of the roster.
type UpdateActivityRequest struct {
	Title         *string   `json:"title,omitempty" validate:"omitempty,min=1,max=100"`
	Description   *string   `json:"description,omitempty" validate:"omitempty,max=500"`
	Links         *[]string `json:"links,omitempty"`
	OpenPositions *int      `json:"open_positions,omitempty" validate:"omitempty,gte=0"`
	Tags          *[]string `json:"tags,omitempty"`
}

// ActivityResponse represents the response for activity operations
type ActivityResponse struct {
	ID               uuid.UUID         `json:"id"`
	Title            string            `json:"title"`
	Description      string            `json:"description"`
	Links            []string          `json:"links"`
	OpenPositions    int               `json:"open_positions"`
	Tags             []string          `json:"tags"`
	OwnerID          string            `json:"owner_id"`
	OwnerDisplayName string            `json:"owner_display_name"`
	TeamRoster       map[string]string `json:"team_roster"`
	TeamIDs          []string          `json:"team_ids"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// ActivityListResponse represents a list of activities
type ActivityListResponse struct {
	Activities []ActivityResponse `json:"activities"`
	Total      int                `json:"total"`
}

// List retrieves all activities, newest first, with owner names reconciled
func (s *ActivityService) List(ctx context.Context) (*ActivityListResponse, error) {
	activities, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	return s.toListResponse(ctx, activities), nil
}

// GetByID retrieves a single activity with its owner name reconciled
func (s *ActivityService) GetByID(ctx context.Context, id uuid.UUID) (*ActivityResponse, error) {
	activity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrActivityNotFound
		}
		return nil, fmt.Errorf("failed to get activity: %w", err)
	}

	responses := s.enrich(ctx, []models.Activity{*activity})
	return &responses[0], nil
}

// ListForUser retrieves activities where the user is owner or team member
func (s *ActivityService) ListForUser(ctx context.Context, userID string) (*ActivityListResponse, error) {
	activities, err := s.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities for user: %w", err)
	}
	return s.toListResponse(ctx, activities), nil
}

// Create creates a new activity owned by the given user. The caller-supplied
// display name is stored as the initial denormalized snapshot.
func (s *ActivityService) Create(ctx context.Context, req *CreateActivityRequest, ownerID, ownerDisplayName string) (*ActivityResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperrors.NewValidationError("title", "title is required")
	}
	if strings.TrimSpace(ownerID) == "" {
		return nil, apperrors.NewValidationError("owner_id", "owner is required")
	}
	if err := validateLinks(req.Links); err != nil {
		return nil, err
	}

	activity := &models.Activity{
		Title:            strings.TrimSpace(req.Title),
		Description:      req.Description,
		Links:            req.Links,
		OpenPositions:    req.OpenPositions,
		Tags:             req.Tags,
		OwnerID:          ownerID,
		OwnerDisplayName: ownerDisplayName,
		Roster:           models.Roster{{UserID: ownerID, Role: models.RoleOwner}},
	}

	if err := s.repo.Create(ctx, activity); err != nil {
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}

	response := s.toResponse(activity, activity.OwnerDisplayName)
	return &response, nil
}

// Update applies a partial-field patch. Only the owner may edit an activity.
func (s *ActivityService) Update(ctx context.Context, id uuid.UUID, actorID string, req *UpdateActivityRequest) (*ActivityResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	activity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrActivityNotFound
		}
		return nil, fmt.Errorf("failed to get activity: %w", err)
	}
	if !activity.IsOwner(actorID) {
		return nil, apperrors.ErrNotActivityOwner
	}

	fields := map[string]interface{}{}
	if req.Title != nil {
		if strings.TrimSpace(*req.Title) == "" {
			return nil, apperrors.NewValidationError("title", "title is required")
		}
		fields["title"] = strings.TrimSpace(*req.Title)
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Links != nil {
		if err := validateLinks(*req.Links); err != nil {
			return nil, err
		}
		fields["links"] = models.StringList(*req.Links)
	}
	if req.OpenPositions != nil {
		fields["open_positions"] = *req.OpenPositions
	}
	if req.Tags != nil {
		fields["tags"] = models.StringList(*req.Tags)
	}

	if len(fields) > 0 {
		if err := s.repo.UpdateFields(ctx, id, fields); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrActivityNotFound
			}
			return nil, fmt.Errorf("failed to update activity: %w", err)
		}
	}

	return s.GetByID(ctx, id)
}

// Delete removes an activity. Only the owner may delete it.
func (s *ActivityService) Delete(ctx context.Context, id uuid.UUID, actorID string) error {
	activity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrActivityNotFound
		}
		return fmt.Errorf("failed to get activity: %w", err)
	}
	if !activity.IsOwner(actorID) {
		return apperrors.ErrNotActivityOwner
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete activity: %w", err)
	}
	return nil
}

// Join adds the user to the activity's team roster
func (s *ActivityService) Join(ctx context.Context, id uuid.UUID, userID string) (*ActivityResponse, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, apperrors.NewValidationError("user_id", "user is required")
	}

	activity, err := s.repo.AddMember(ctx, id, models.RosterEntry{UserID: userID, Role: models.RoleMember})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrActivityNotFound
		}
		if errors.Is(err, apperrors.ErrMemberExists) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to join activity: %w", err)
	}

	responses := s.enrich(ctx, []models.Activity{*activity})
	return &responses[0], nil
}

// Leave removes the user from the activity's team roster
func (s *ActivityService) Leave(ctx context.Context, id uuid.UUID, userID string) (*ActivityResponse, error) {
	activity, err := s.repo.RemoveMember(ctx, id, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrActivityNotFound
		}
		if errors.Is(err, apperrors.ErrOwnerCannotLeave) || errors.Is(err, apperrors.ErrNotTeamMember) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to leave activity: %w", err)
	}

	responses := s.enrich(ctx, []models.Activity{*activity})
	return &responses[0], nil
}

// enrich applies the shared owner-name reconciliation to a fetched batch
func (s *ActivityService) enrich(ctx context.Context, activities []models.Activity) []ActivityResponse {
	return enrichActivities(ctx, s.names, activities)
}

func (s *ActivityService) toListResponse(ctx context.Context, activities []models.Activity) *ActivityListResponse {
	responses := s.enrich(ctx, activities)
	return &ActivityListResponse{
		Activities: responses,
		Total:      len(responses),
	}
}

func (s *ActivityService) toResponse(activity *models.Activity, ownerDisplayName string) ActivityResponse {
	return toActivityResponse(activity, ownerDisplayName)
}

// enrichActivities replaces each activity's stored owner-name snapshot with
// the owner's current display name, resolving the distinct owner set in one
// batch. Priority: resolved current name, then the stored snapshot, then
// UnknownOwnerName. Applied uniformly to single-row and collection fetches.
func enrichActivities(ctx context.Context, names NameResolver, activities []models.Activity) []ActivityResponse {
	ownerIDs := make([]string, 0, len(activities))
	seen := make(map[string]struct{}, len(activities))
	for _, a := range activities {
		if _, ok := seen[a.OwnerID]; !ok {
			seen[a.OwnerID] = struct{}{}
			ownerIDs = append(ownerIDs, a.OwnerID)
		}
	}

	resolved := map[string]string{}
	if len(ownerIDs) > 0 {
		resolved = names.ResolveMany(ctx, ownerIDs)
	}

	responses := make([]ActivityResponse, len(activities))
	for i, a := range activities {
		name := resolved[a.OwnerID]
		if name == "" || name == namecache.FallbackName(a.OwnerID) {
			// Resolution degraded to the fallback label; prefer the stored
			// snapshot when one exists.
			if a.OwnerDisplayName != "" {
				name = a.OwnerDisplayName
			} else {
				name = UnknownOwnerName
			}
		}
		responses[i] = toActivityResponse(&a, name)
	}
	return responses
}

func toActivityResponse(activity *models.Activity, ownerDisplayName string) ActivityResponse {
	links := activity.Links
	if links == nil {
		links = models.StringList{}
	}
	tags := activity.Tags
	if tags == nil {
		tags = models.StringList{}
	}
	return ActivityResponse{
		ID:               activity.ID,
		Title:            activity.Title,
		Description:      activity.Description,
		Links:            links,
		OpenPositions:    activity.OpenPositions,
		Tags:             tags,
		OwnerID:          activity.OwnerID,
		OwnerDisplayName: ownerDisplayName,
		TeamRoster:       activity.Roster.RoleMap(),
		TeamIDs:          activity.Roster.MemberIDs(),
		CreatedAt:        activity.CreatedAt,
		UpdatedAt:        activity.UpdatedAt,
	}
}

// validateLinks requires every reference link to be a well-formed absolute URL
// or a syntactically valid email address, rejected before any write.
func validateLinks(links []string) error {
	for _, link := range links {
		if !isValidLink(link) {
			return apperrors.NewValidationError("links", fmt.Sprintf("%q is not a valid URL or email address", link))
		}
	}
	return nil
}

func isValidLink(link string) bool {
	link = strings.TrimSpace(link)
	if link == "" {
		return false
	}
	if u, err := url.Parse(link); err == nil && u.IsAbs() && u.Host != "" {
		return true
	}
	if addr, err := mail.ParseAddress(link); err == nil && addr.Address == link {
		return true
	}
	return false
}

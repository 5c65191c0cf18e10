package handlers

import (
	"errors"
	"net/http"

	"student-hub-backend/internal/auth"
	apperrors "student-hub-backend/internal/errors"
	"student-hub-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ActivityHandler handles HTTP requests for activity operations
type ActivityHandler struct {
	activityService service.ActivityServiceInterface
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activityService service.ActivityServiceInterface) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
	}
}

// ListActivities handles GET /activities
// @Summary List activities
// @Description List all activities, newest first, with owner display names reconciled against current profiles
// @Tags activities
// @Accept json
// @Produce json
// @Success 200 {object} service.ActivityListResponse "Successfully retrieved activities"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /activities [get]
func (h *ActivityHandler) ListActivities(c *gin.Context) {
	list, err := h.activityService.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, list)
}

// GetActivity handles GET /activities/:id
// @Summary Get activity by ID
// @Description Get a specific activity by its UUID
// @Tags activities
// @Accept json
// @Produce json
// @Param id path string true "Activity ID (UUID)"
// @Success 200 {object} service.ActivityResponse "Successfully retrieved activity"
// @Failure 400 {object} ErrorResponse "Invalid activity ID"
// @Failure 404 {object} ErrorResponse "Activity not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /activities/{id} [get]
func (h *ActivityHandler) GetActivity(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid activity ID"})
		return
	}

	activity, err := h.activityService.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, apperrors.ErrActivityNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, activity)
}

// ListActivitiesForUser handles GET /users/:id/activities
// @Summary List activities for a user
// @Description List activities where the user is the owner or a team member
// @Tags activities
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} service.ActivityListResponse "Successfully retrieved activities"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /users/{id}/activities [get]
func (h *ActivityHandler) ListActivitiesForUser(c *gin.Context) {
	userID := c.Param("id")

	list, err := h.activityService.ListForUser(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, list)
}

// CreateActivity handles POST /activities
// @Summary Create a new activity
// @Description Create a new activity owned by the signed-in user; the user becomes the sole team member with role Owner
// @Tags activities
// @Accept json
// @Produce json
// @Param activity body service.CreateActivityRequest true "Activity data"
// @Success 201 {object} service.ActivityResponse "Successfully created activity"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Not signed in"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /activities [post]
func (h *ActivityHandler) CreateActivity(c *gin.Context) {
	claims, ok := auth.CurrentClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	var req service.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	activity, err := h.activityService.Create(c.Request.Context(), &req, claims.UserID, claims.DisplayName)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, activity)
}

// UpdateActivity handles PATCH /activities/:id
// @Summary Update activity
// @Description Apply a partial-field patch to an activity; owner only
// @Tags activities
// @Accept json
// @Produce json
// @Param id path string true "Activity ID (UUID)"
// @Param activity body service.UpdateActivityRequest true "Fields to update"
// @Success 200 {object} service.ActivityResponse "Successfully updated activity"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 403 {object} ErrorResponse "Not the activity owner"
// @Failure 404 {object} ErrorResponse "Activity not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /activities/{id} [patch]
func (h *ActivityHandler) UpdateActivity(c *gin.Context) {
	claims, ok := auth.CurrentClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid activity ID"})
		return
	}

	var req service.UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	activity, err := h.activityService.Update(c.Request.Context(), id, claims.UserID, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrActivityNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsAuthorization(err):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		case apperrors.IsValidation(err):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, activity)
}

// DeleteActivity handles DELETE /activities/:id
// @Summary Delete activity
// @Description Delete an activity; owner only
// @Tags activities
// @Accept json
// @Produce json
// @Param id path string true "Activity ID (UUID)"
// @Success 204 "Successfully deleted activity"
// @Failure 400 {object} ErrorResponse "Invalid activity ID"
// @Failure 403 {object} ErrorResponse "Not the activity owner"
// @Failure 404 {object} ErrorResponse "Activity not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /activities/{id} [delete]
func (h *ActivityHandler) DeleteActivity(c *gin.Context) {
	claims, ok := auth.CurrentClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid activity ID"})
		return
	}

	err = h.activityService.Delete(c.Request.Context(), id, claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrActivityNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsAuthorization(err):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// JoinActivity handles POST /activities/:id/members
// @Summary Join an activity
// @Description Add the signed-in user to the activity's team roster
// @Tags activities
// @Accept json
// @Produce json
// @Param id path string true "Activity ID (UUID)"
// @Success 200 {object} service.ActivityResponse "Successfully joined activity"
// @Failure 400 {object} ErrorResponse "Invalid activity ID"
// @Failure 404 {object} ErrorResponse "Activity not found"
// @Failure 409 {object} ErrorResponse "Already a team member"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /activities/{id}/members [post]
func (h *ActivityHandler) JoinActivity(c *gin.Context) {
	claims, ok := auth.CurrentClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid activity ID"})
		return
	}

	activity, err := h.activityService.Join(c.Request.Context(), id, claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrActivityNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case apperrors.IsAlreadyExists(err):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, activity)
}

// LeaveActivity handles DELETE /activities/:id/members
// @Summary Leave an activity
// @Description Remove the signed-in user from the activity's team roster; the owner cannot leave
// @Tags activities
// @Accept json
// @Produce json
// @Param id path string true "Activity ID (UUID)"
// @Success 200 {object} service.ActivityResponse "Successfully left activity"
// @Failure 400 {object} ErrorResponse "Invalid activity ID or owner leaving"
// @Failure 404 {object} ErrorResponse "Activity not found or not a member"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /activities/{id}/members [delete]
func (h *ActivityHandler) LeaveActivity(c *gin.Context) {
	claims, ok := auth.CurrentClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid activity ID"})
		return
	}

	activity, err := h.activityService.Leave(c.Request.Context(), id, claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrActivityNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrOwnerCannotLeave):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotTeamMember):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, activity)
}

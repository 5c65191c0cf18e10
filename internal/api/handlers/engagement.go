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

// EngagementHandler handles the signed-in user's saved and recently-viewed lists
type EngagementHandler struct {
	engagementService service.EngagementServiceInterface
}

// NewEngagementHandler creates a new engagement handler
func NewEngagementHandler(engagementService service.EngagementServiceInterface) *EngagementHandler {
	return &EngagementHandler{
		engagementService: engagementService,
	}
}

func (h *EngagementHandler) currentUser(c *gin.Context) (string, bool) {
	claims, ok := auth.CurrentClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return "", false
	}
	return claims.UserID, true
}

// GetSaved handles GET /users/me/saved
// @Summary List saved activities
// @Tags engagement
// @Produce json
// @Success 200 {object} service.ActivityListResponse "Saved activities"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /users/me/saved [get]
func (h *EngagementHandler) GetSaved(c *gin.Context) {
	userID, ok := h.currentUser(c)
	if !ok {
		return
	}

	list, err := h.engagementService.GetSaved(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, list)
}

// SaveActivity handles PUT /users/me/saved/:id
// @Summary Save an activity
// @Tags engagement
// @Produce json
// @Param id path string true "Activity ID (UUID)"
// @Success 204 "Saved"
// @Failure 404 {object} ErrorResponse "Activity not found"
// @Failure 409 {object} ErrorResponse "Already saved"
// @Security BearerAuth
// @Router /users/me/saved/{id} [put]
func (h *EngagementHandler) SaveActivity(c *gin.Context) {
	userID, ok := h.currentUser(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid activity ID"})
		return
	}

	err = h.engagementService.Save(c.Request.Context(), userID, id)
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

	c.Status(http.StatusNoContent)
}

// UnsaveActivity handles DELETE /users/me/saved/:id
// @Summary Remove a saved activity
// @Tags engagement
// @Produce json
// @Param id path string true "Activity ID (UUID)"
// @Success 204 "Removed"
// @Failure 404 {object} ErrorResponse "Not saved"
// @Security BearerAuth
// @Router /users/me/saved/{id} [delete]
func (h *EngagementHandler) UnsaveActivity(c *gin.Context) {
	userID, ok := h.currentUser(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid activity ID"})
		return
	}

	err = h.engagementService.Unsave(c.Request.Context(), userID, id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// ClearSaved handles DELETE /users/me/saved
// @Summary Clear all saved activities
// @Tags engagement
// @Produce json
// @Success 204 "Cleared"
// @Security BearerAuth
// @Router /users/me/saved [delete]
func (h *EngagementHandler) ClearSaved(c *gin.Context) {
	userID, ok := h.currentUser(c)
	if !ok {
		return
	}

	if err := h.engagementService.ClearSaved(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// GetRecent handles GET /users/me/recent
// @Summary List recently viewed activities
// @Tags engagement
// @Produce json
// @Success 200 {object} service.ActivityListResponse "Recently viewed activities, newest first"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /users/me/recent [get]
func (h *EngagementHandler) GetRecent(c *gin.Context) {
	userID, ok := h.currentUser(c)
	if !ok {
		return
	}

	list, err := h.engagementService.GetRecent(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, list)
}

// RecordView handles PUT /users/me/recent/:id
// @Summary Record an activity view
// @Description Prepends the activity to the recently-viewed list, evicting entries beyond the cap
// @Tags engagement
// @Produce json
// @Param id path string true "Activity ID (UUID)"
// @Success 204 "Recorded"
// @Failure 404 {object} ErrorResponse "Activity not found"
// @Security BearerAuth
// @Router /users/me/recent/{id} [put]
func (h *EngagementHandler) RecordView(c *gin.Context) {
	userID, ok := h.currentUser(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid activity ID"})
		return
	}

	err = h.engagementService.RecordView(c.Request.Context(), userID, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrActivityNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// ClearRecent handles DELETE /users/me/recent
// @Summary Clear the recently-viewed list
// @Tags engagement
// @Produce json
// @Success 204 "Cleared"
// @Security BearerAuth
// @Router /users/me/recent [delete]
func (h *EngagementHandler) ClearRecent(c *gin.Context) {
	userID, ok := h.currentUser(c)
	if !ok {
		return
	}

	if err := h.engagementService.ClearRecent(c.Request.Context(), userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

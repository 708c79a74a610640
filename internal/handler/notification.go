package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bharaths07/sportsv1.1-sub000/internal/model"
	"github.com/bharaths07/sportsv1.1-sub000/internal/service"
	"github.com/bharaths07/sportsv1.1-sub000/pkg/response"
)

const defaultNotificationLimit = 50

// NotificationHandler exposes the notification inbox and preference toggles.
type NotificationHandler struct {
	svc service.NotificationService
}

func NewNotificationHandler(svc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

func (h *NotificationHandler) Register(r *gin.RouterGroup) {
	g := r.Group(notificationsGroup)
	g.GET("", h.List)
	g.GET("/preferences", h.Preferences)
	g.PUT("/preferences", h.UpdatePreferences)
	g.POST("/:id/read", h.MarkRead)
}

func (h *NotificationHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context(), queryInt(c, "limit", defaultNotificationLimit))
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, gin.H{"items": items})
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	if err := h.svc.MarkRead(c.Request.Context(), c.Param("id")); err != nil {
		response.WriteError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *NotificationHandler) Preferences(c *gin.Context) {
	p, err := h.svc.Preferences(c.Request.Context())
	if err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, p)
}

// preferencesRequest requires every toggle so a partial body can't silently
// switch the others off.
type preferencesRequest struct {
	Enabled     *bool `json:"enabled" binding:"required"`
	MatchStart  *bool `json:"match_start" binding:"required"`
	MatchResult *bool `json:"match_result" binding:"required"`
	Tournament  *bool `json:"tournament" binding:"required"`
}

func (h *NotificationHandler) UpdatePreferences(c *gin.Context) {
	var req preferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.WriteError(c, bindError(err))
		return
	}
	p := model.NotificationPreferences{
		Enabled:     *req.Enabled,
		MatchStart:  *req.MatchStart,
		MatchResult: *req.MatchResult,
		Tournament:  *req.Tournament,
	}
	if err := h.svc.UpdatePreferences(c.Request.Context(), p); err != nil {
		response.WriteError(c, err)
		return
	}
	response.WriteData(c, http.StatusOK, p)
}

package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/serviflow/serviflow-api/internal/application/service"
	"github.com/serviflow/serviflow-api/internal/presentation/http/dto/request"
	"github.com/serviflow/serviflow-api/internal/presentation/http/dto/response"
)

// PreferencesHandler handles user preference HTTP requests
type PreferencesHandler struct {
	preferencesService *service.PreferencesService
}

// NewPreferencesHandler creates a new preferences handler
func NewPreferencesHandler(preferencesService *service.PreferencesService) *PreferencesHandler {
	return &PreferencesHandler{preferencesService: preferencesService}
}

// Get returns the authenticated user's preferences
// @Summary Get Preferences
// @Tags preferences
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /preferences [get]
func (h *PreferencesHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	prefs, err := h.preferencesService.GetPreferences(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Preferences retrieved successfully", prefs)
}

// Update applies a partial update to the user's preferences
// @Summary Update Preferences
// @Tags preferences
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.UpdatePreferencesRequest true "Preference fields"
// @Success 200 {object} response.APIResponse
// @Router /preferences [patch]
func (h *PreferencesHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	prefs, err := h.preferencesService.UpdatePreferences(c.Request.Context(), &service.UpdatePreferencesInput{
		UserID:             *userID,
		Language:           req.Language,
		Timezone:           req.Timezone,
		Currency:           req.Currency,
		DateFormat:         req.DateFormat,
		Theme:              req.Theme,
		AccentColor:        req.AccentColor,
		CompactMode:        req.CompactMode,
		SidebarPins:        req.SidebarPins,
		EmailNotifications: req.EmailNotifications,
		TaskReminders:      req.TaskReminders,
		QuotationAlerts:    req.QuotationAlerts,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Preferences updated successfully", prefs)
}

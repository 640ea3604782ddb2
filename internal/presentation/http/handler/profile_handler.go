package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/serviflow/serviflow-api/internal/application/service"
	"github.com/serviflow/serviflow-api/internal/presentation/http/dto/request"
	"github.com/serviflow/serviflow-api/internal/presentation/http/dto/response"
)

// ProfileHandler handles company profile HTTP requests
type ProfileHandler struct {
	profileService *service.ProfileService
}

// NewProfileHandler creates a new profile handler
func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// Get returns the company profile, or null when not yet configured
// @Summary Get Company Profile
// @Tags company
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /company/profile [get]
func (h *ProfileHandler) Get(c *gin.Context) {
	profile, err := h.profileService.GetProfile(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Company profile retrieved successfully", profile)
}

// Update creates or replaces the company profile
// @Summary Update Company Profile
// @Tags company
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.UpdateCompanyProfileRequest true "Profile data"
// @Success 200 {object} response.APIResponse
// @Router /company/profile [put]
func (h *ProfileHandler) Update(c *gin.Context) {
	var req request.UpdateCompanyProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	profile, err := h.profileService.UpdateProfile(c.Request.Context(), &service.UpdateProfileInput{
		Name:    req.Name,
		TaxID:   req.TaxID,
		Phone:   req.Phone,
		Address: req.Address,
		Email:   req.Email,
		LogoRef: req.LogoRef,
		Website: req.Website,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Company profile updated successfully", profile)
}

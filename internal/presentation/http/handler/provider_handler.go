package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/serviflow/serviflow-api/internal/application/service"
	"github.com/serviflow/serviflow-api/internal/domain/enum"
	"github.com/serviflow/serviflow-api/internal/presentation/http/dto/request"
	"github.com/serviflow/serviflow-api/internal/presentation/http/dto/response"
)

// ProviderHandler handles provider HTTP requests
type ProviderHandler struct {
	providerService *service.ProviderService
}

// NewProviderHandler creates a new provider handler
func NewProviderHandler(providerService *service.ProviderService) *ProviderHandler {
	return &ProviderHandler{providerService: providerService}
}

// List handles listing providers
// @Summary List Providers
// @Tags providers
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /providers [get]
func (h *ProviderHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.ProviderFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}

	result, err := h.providerService.ListProviders(c.Request.Context(), *userID,
		getPagination(req.Page, req.PerPage), req.Search, IsSuperAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Providers retrieved successfully", result)
}

// Get handles getting a single provider
// @Summary Get Provider
// @Tags providers
// @Security BearerAuth
// @Produce json
// @Param id path string true "Provider ID"
// @Success 200 {object} response.APIResponse
// @Router /providers/{id} [get]
func (h *ProviderHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid provider ID")
		return
	}

	provider, err := h.providerService.GetProvider(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Provider retrieved successfully", provider)
}

// Create handles creating a provider
// @Summary Create Provider
// @Tags providers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CreateProviderRequest true "Provider data"
// @Success 201 {object} response.APIResponse
// @Router /providers [post]
func (h *ProviderHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	provider, err := h.providerService.CreateProvider(c.Request.Context(), &service.CreateProviderInput{
		UserID:        *userID,
		Name:          req.Name,
		TaxID:         req.TaxID,
		Type:          enum.ProviderType(req.Type),
		Contact:       req.Contact,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		AccountHolder: req.AccountHolder,
		AccountNumber: req.AccountNumber,
		BankName:      req.BankName,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Provider created successfully", provider)
}

// Update handles updating a provider
// @Summary Update Provider
// @Tags providers
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Provider ID"
// @Param request body request.UpdateProviderRequest true "Provider data"
// @Success 200 {object} response.APIResponse
// @Router /providers/{id} [put]
func (h *ProviderHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid provider ID")
		return
	}

	var req request.UpdateProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	var providerType *enum.ProviderType
	if req.Type != nil {
		pt := enum.ProviderType(*req.Type)
		providerType = &pt
	}

	provider, err := h.providerService.UpdateProvider(c.Request.Context(), &service.UpdateProviderInput{
		UserID:        *userID,
		ID:            id,
		IsSuperAdmin:  IsSuperAdmin(c),
		Name:          req.Name,
		TaxID:         req.TaxID,
		Type:          providerType,
		Contact:       req.Contact,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		AccountHolder: req.AccountHolder,
		AccountNumber: req.AccountNumber,
		BankName:      req.BankName,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Provider updated successfully", provider)
}

// Delete handles deleting a provider
// @Summary Delete Provider
// @Tags providers
// @Security BearerAuth
// @Param id path string true "Provider ID"
// @Success 204
// @Router /providers/{id} [delete]
func (h *ProviderHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid provider ID")
		return
	}

	if err := h.providerService.DeleteProvider(c.Request.Context(), *userID, id, IsSuperAdmin(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

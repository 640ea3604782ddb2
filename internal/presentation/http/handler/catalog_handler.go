package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/serviflow/serviflow-api/internal/application/service"
	"github.com/serviflow/serviflow-api/internal/presentation/http/dto/request"
	"github.com/serviflow/serviflow-api/internal/presentation/http/dto/response"
)

// CatalogHandler handles catalog item HTTP requests
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// List handles listing catalog items
// @Summary List Catalog Items
// @Tags catalog
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /catalog [get]
func (h *CatalogHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CatalogFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}

	result, err := h.catalogService.ListCatalogItems(c.Request.Context(), *userID,
		getPagination(req.Page, req.PerPage), req.Search, IsSuperAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Catalog items retrieved successfully", result)
}

// Get handles getting a single catalog item
// @Summary Get Catalog Item
// @Tags catalog
// @Security BearerAuth
// @Produce json
// @Param id path string true "Item ID"
// @Success 200 {object} response.APIResponse
// @Router /catalog/{id} [get]
func (h *CatalogHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid catalog item ID")
		return
	}

	item, err := h.catalogService.GetCatalogItem(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Catalog item retrieved successfully", item)
}

// Create handles creating a catalog item
// @Summary Create Catalog Item
// @Tags catalog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CreateCatalogItemRequest true "Item data"
// @Success 201 {object} response.APIResponse
// @Router /catalog [post]
func (h *CatalogHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateCatalogItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	item, err := h.catalogService.CreateCatalogItem(c.Request.Context(), &service.CreateCatalogItemInput{
		UserID:         *userID,
		Code:           req.Code,
		Description:    req.Description,
		UnitPrice:      req.UnitPrice,
		TaxRatePercent: req.TaxRatePercent,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Catalog item created successfully", item)
}

// Update handles updating a catalog item
// @Summary Update Catalog Item
// @Tags catalog
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Item ID"
// @Param request body request.UpdateCatalogItemRequest true "Item data"
// @Success 200 {object} response.APIResponse
// @Router /catalog/{id} [put]
func (h *CatalogHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid catalog item ID")
		return
	}

	var req request.UpdateCatalogItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	item, err := h.catalogService.UpdateCatalogItem(c.Request.Context(), &service.UpdateCatalogItemInput{
		UserID:         *userID,
		ID:             id,
		IsSuperAdmin:   IsSuperAdmin(c),
		Code:           req.Code,
		Description:    req.Description,
		UnitPrice:      req.UnitPrice,
		TaxRatePercent: req.TaxRatePercent,
		Active:         req.Active,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Catalog item updated successfully", item)
}

// Delete handles deleting a catalog item
// @Summary Delete Catalog Item
// @Tags catalog
// @Security BearerAuth
// @Param id path string true "Item ID"
// @Success 204
// @Router /catalog/{id} [delete]
func (h *CatalogHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid catalog item ID")
		return
	}

	if err := h.catalogService.DeleteCatalogItem(c.Request.Context(), *userID, id, IsSuperAdmin(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

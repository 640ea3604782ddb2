package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/serviflow/serviflow-api/internal/application/service"
	"github.com/serviflow/serviflow-api/internal/domain/enum"
	"github.com/serviflow/serviflow-api/internal/presentation/http/dto/request"
	"github.com/serviflow/serviflow-api/internal/presentation/http/dto/response"
	"github.com/serviflow/serviflow-api/pkg/pagination"
)

// CollectionHandler handles collection document HTTP requests
type CollectionHandler struct {
	collectionService *service.CollectionService
}

// NewCollectionHandler creates a new collection handler
func NewCollectionHandler(collectionService *service.CollectionService) *CollectionHandler {
	return &CollectionHandler{collectionService: collectionService}
}

func collectionItems(items []request.CollectionItemRequest) []service.CollectionItemInput {
	out := make([]service.CollectionItemInput, len(items))
	for i, item := range items {
		out[i] = service.CollectionItemInput{
			Description:    item.Description,
			Quantity:       item.Quantity,
			UnitPrice:      item.UnitPrice,
			TaxRatePercent: item.TaxRatePercent,
		}
	}
	return out
}

// List handles listing collections
// @Summary List Collections
// @Tags collections
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /collections [get]
func (h *CollectionHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CollectionFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}

	var status *enum.CollectionStatus
	if req.Status != "" {
		st, _ := enum.ParseCollectionStatus(req.Status)
		status = &st
	}

	var clientID *uuid.UUID
	if req.ClientID != "" {
		parsed, err := uuid.Parse(req.ClientID)
		if err != nil {
			response.BadRequest(c, "Invalid client ID")
			return
		}
		clientID = &parsed
	}

	result, err := h.collectionService.ListCollections(c.Request.Context(), &service.ListCollectionsInput{
		UserID:       *userID,
		IsSuperAdmin: IsSuperAdmin(c),
		Pagination: &pagination.PaginationParams{
			Page:    req.Page,
			PerPage: req.PerPage,
		},
		Search:   req.Search,
		Status:   status,
		ClientID: clientID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Collections retrieved successfully", result)
}

// Get handles getting a single collection
// @Summary Get Collection
// @Tags collections
// @Security BearerAuth
// @Produce json
// @Param id path string true "Collection ID"
// @Success 200 {object} response.APIResponse
// @Router /collections/{id} [get]
func (h *CollectionHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid collection ID")
		return
	}

	collection, err := h.collectionService.GetCollection(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Collection retrieved successfully", collection)
}

// Create handles creating a collection
// @Summary Create Collection
// @Tags collections
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CreateCollectionRequest true "Collection data"
// @Success 201 {object} response.APIResponse
// @Router /collections [post]
func (h *CollectionHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		response.BadRequest(c, "Invalid date format. Use YYYY-MM-DD")
		return
	}

	clientID, err := parseOptionalUUID(req.ClientID)
	if err != nil {
		response.BadRequest(c, "Invalid client ID")
		return
	}

	collection, err := h.collectionService.CreateCollection(c.Request.Context(), &service.CreateCollectionInput{
		UserID:   *userID,
		ClientID: clientID,
		Date:     date,
		Notes:    req.Notes,
		Items:    collectionItems(req.Items),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Collection created successfully", collection)
}

// CreateFromQuotation derives a collection from an approved quotation
// @Summary Create Collection From Quotation
// @Tags collections
// @Security BearerAuth
// @Produce json
// @Param id path string true "Quotation ID"
// @Success 201 {object} response.APIResponse
// @Router /collections/from-quotation/{id} [post]
func (h *CollectionHandler) CreateFromQuotation(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	quotationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quotation ID")
		return
	}

	collection, err := h.collectionService.CreateFromQuotation(c.Request.Context(), *userID, quotationID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Collection created successfully", collection)
}

// RegisterPayment records a payment against a collection
// @Summary Register Payment
// @Tags collections
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Collection ID"
// @Param request body request.RegisterPaymentRequest true "Payment amount"
// @Success 200 {object} response.APIResponse
// @Router /collections/{id}/payments [post]
func (h *CollectionHandler) RegisterPayment(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid collection ID")
		return
	}

	var req request.RegisterPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	collection, err := h.collectionService.RegisterPayment(c.Request.Context(), *userID, id, req.Amount, IsSuperAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Payment registered successfully", collection)
}

// Cancel cancels a collection
// @Summary Cancel Collection
// @Tags collections
// @Security BearerAuth
// @Produce json
// @Param id path string true "Collection ID"
// @Success 200 {object} response.APIResponse
// @Router /collections/{id}/cancel [post]
func (h *CollectionHandler) Cancel(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid collection ID")
		return
	}

	collection, err := h.collectionService.CancelCollection(c.Request.Context(), *userID, id, IsSuperAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Collection canceled successfully", collection)
}

// Delete handles deleting a collection
// @Summary Delete Collection
// @Tags collections
// @Security BearerAuth
// @Param id path string true "Collection ID"
// @Success 204
// @Router /collections/{id} [delete]
func (h *CollectionHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid collection ID")
		return
	}

	if err := h.collectionService.DeleteCollection(c.Request.Context(), *userID, id, IsSuperAdmin(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

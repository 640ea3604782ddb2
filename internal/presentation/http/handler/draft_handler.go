package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/serviflow/serviflow-api/internal/application/service"
	"github.com/serviflow/serviflow-api/internal/domain/draft"
	"github.com/serviflow/serviflow-api/internal/presentation/http/dto/request"
	"github.com/serviflow/serviflow-api/internal/presentation/http/dto/response"
)

// DraftHandler exposes the quotation wizard. Each draft lives in an
// in-memory session owned by the user who started it.
type DraftHandler struct {
	draftService *service.DraftService
}

// NewDraftHandler creates a new draft handler
func NewDraftHandler(draftService *service.DraftService) *DraftHandler {
	return &DraftHandler{draftService: draftService}
}

func (h *DraftHandler) sessionID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid draft session ID")
		return uuid.Nil, false
	}
	return id, true
}

// Start opens a new draft session
// @Summary Start Draft
// @Description Open a quotation wizard session prefilled from the company profile
// @Tags drafts
// @Security BearerAuth
// @Produce json
// @Success 201 {object} response.APIResponse
// @Router /quotations/drafts [post]
func (h *DraftHandler) Start(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	state, err := h.draftService.StartDraft(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Draft started successfully", state)
}

// Get returns the current draft state
// @Summary Get Draft
// @Tags drafts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Draft session ID"
// @Success 200 {object} response.APIResponse
// @Router /quotations/drafts/{id} [get]
func (h *DraftHandler) Get(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	state, err := h.draftService.GetDraft(c.Request.Context(), id, *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Draft retrieved successfully", state)
}

// Discard drops a draft session without saving
// @Summary Discard Draft
// @Tags drafts
// @Security BearerAuth
// @Param id path string true "Draft session ID"
// @Success 204
// @Router /quotations/drafts/{id} [delete]
func (h *DraftHandler) Discard(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	if err := h.draftService.DiscardDraft(c.Request.Context(), id, *userID); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// UpdateIssuer applies a partial update to the issuer block
// @Summary Update Draft Issuer
// @Tags drafts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Draft session ID"
// @Param request body request.UpdateDraftIssuerRequest true "Issuer fields"
// @Success 200 {object} response.APIResponse
// @Router /quotations/drafts/{id}/issuer [patch]
func (h *DraftHandler) UpdateIssuer(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req request.UpdateDraftIssuerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	state, err := h.draftService.UpdateIssuer(c.Request.Context(), id, *userID, draft.IssuerUpdate{
		Name:    req.Name,
		TaxID:   req.TaxID,
		Phone:   req.Phone,
		Address: req.Address,
		LogoRef: req.LogoRef,
		Email:   req.Email,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Issuer updated successfully", state)
}

// UpdateClient applies a partial update to the client block
// @Summary Update Draft Client
// @Tags drafts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Draft session ID"
// @Param request body request.UpdateDraftClientRequest true "Client fields"
// @Success 200 {object} response.APIResponse
// @Router /quotations/drafts/{id}/client [patch]
func (h *DraftHandler) UpdateClient(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req request.UpdateDraftClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	countryRef, err := parseOptionalUUID(req.CountryRef)
	if err != nil {
		response.BadRequest(c, "Invalid country reference")
		return
	}
	cityRef, err := parseOptionalUUID(req.CityRef)
	if err != nil {
		response.BadRequest(c, "Invalid city reference")
		return
	}
	sectorRef, err := parseOptionalUUID(req.SectorRef)
	if err != nil {
		response.BadRequest(c, "Invalid sector reference")
		return
	}

	state, err := h.draftService.UpdateClient(c.Request.Context(), id, *userID, draft.ClientUpdate{
		Name:       req.Name,
		TaxID:      req.TaxID,
		Phone:      req.Phone,
		Contact:    req.Contact,
		Address:    req.Address,
		Email:      req.Email,
		CountryRef: countryRef,
		CityRef:    cityRef,
		SectorRef:  sectorRef,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Client updated successfully", state)
}

// SelectClient fills the client block from a saved client
// @Summary Select Draft Client
// @Tags drafts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Draft session ID"
// @Param request body request.SelectDraftClientRequest true "Client reference"
// @Success 200 {object} response.APIResponse
// @Router /quotations/drafts/{id}/client/select [post]
func (h *DraftHandler) SelectClient(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req request.SelectDraftClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		response.BadRequest(c, "Invalid client ID")
		return
	}

	state, err := h.draftService.SelectClient(c.Request.Context(), id, *userID, clientID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Client selected successfully", state)
}

// SearchClients looks up saved clients for the wizard's client step
// @Summary Search Clients
// @Tags drafts
// @Security BearerAuth
// @Produce json
// @Param q query string false "Search term"
// @Param limit query int false "Maximum results"
// @Success 200 {object} response.APIResponse
// @Router /quotations/drafts/clients [get]
func (h *DraftHandler) SearchClients(c *gin.Context) {
	var req request.DraftClientSearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}

	clients, err := h.draftService.SearchClients(c.Request.Context(), req.Query, req.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Clients retrieved successfully", clients)
}

// AddItem adds a free-form line item to the draft
// @Summary Add Draft Line Item
// @Tags drafts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Draft session ID"
// @Param request body request.AddDraftLineItemRequest true "Line item"
// @Success 200 {object} response.APIResponse
// @Router /quotations/drafts/{id}/items [post]
func (h *DraftHandler) AddItem(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req request.AddDraftLineItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	state, err := h.draftService.AddLineItem(c.Request.Context(), id, *userID, draft.LineItemInput{
		Description:    req.Description,
		Quantity:       req.Quantity,
		UnitPrice:      req.UnitPrice,
		TaxRatePercent: req.TaxRatePercent,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Line item added successfully", state)
}

// AddCatalogItem adds a catalog item to the draft at its listed price
// @Summary Add Catalog Item To Draft
// @Tags drafts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Draft session ID"
// @Param request body request.AddDraftCatalogItemRequest true "Catalog reference"
// @Success 200 {object} response.APIResponse
// @Router /quotations/drafts/{id}/items/catalog [post]
func (h *DraftHandler) AddCatalogItem(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req request.AddDraftCatalogItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	itemID, err := uuid.Parse(req.ItemID)
	if err != nil {
		response.BadRequest(c, "Invalid catalog item ID")
		return
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	state, err := h.draftService.AddItemFromCatalog(c.Request.Context(), id, *userID, itemID, quantity)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Catalog item added successfully", state)
}

// UpdateItem applies a partial update to a draft line item
// @Summary Update Draft Line Item
// @Tags drafts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Draft session ID"
// @Param itemId path string true "Line item ID"
// @Param request body request.UpdateDraftLineItemRequest true "Line item fields"
// @Success 200 {object} response.APIResponse
// @Router /quotations/drafts/{id}/items/{itemId} [patch]
func (h *DraftHandler) UpdateItem(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		response.BadRequest(c, "Invalid line item ID")
		return
	}

	var req request.UpdateDraftLineItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	state, err := h.draftService.UpdateLineItem(c.Request.Context(), id, *userID, itemID, draft.LineItemUpdate{
		Description:    req.Description,
		Quantity:       req.Quantity,
		UnitPrice:      req.UnitPrice,
		TaxRatePercent: req.TaxRatePercent,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Line item updated successfully", state)
}

// RemoveItem removes a line item from the draft
// @Summary Remove Draft Line Item
// @Tags drafts
// @Security BearerAuth
// @Param id path string true "Draft session ID"
// @Param itemId path string true "Line item ID"
// @Success 200 {object} response.APIResponse
// @Router /quotations/drafts/{id}/items/{itemId} [delete]
func (h *DraftHandler) RemoveItem(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	itemID, err := uuid.Parse(c.Param("itemId"))
	if err != nil {
		response.BadRequest(c, "Invalid line item ID")
		return
	}

	state, err := h.draftService.RemoveLineItem(c.Request.Context(), id, *userID, itemID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Line item removed successfully", state)
}

// SetExpiry sets the quotation expiry date
// @Summary Set Draft Expiry
// @Tags drafts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Draft session ID"
// @Param request body request.SetDraftExpiryRequest true "Expiry date"
// @Success 200 {object} response.APIResponse
// @Router /quotations/drafts/{id}/expiry [put]
func (h *DraftHandler) SetExpiry(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req request.SetDraftExpiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	date, err := parseDate(req.ExpiryDate)
	if err != nil {
		response.BadRequest(c, "Invalid date format. Use YYYY-MM-DD")
		return
	}

	state, err := h.draftService.SetExpiryDate(c.Request.Context(), id, *userID, date)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Expiry date set successfully", state)
}

// Next advances the wizard one step
// @Summary Advance Draft Step
// @Tags drafts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Draft session ID"
// @Success 200 {object} response.APIResponse
// @Router /quotations/drafts/{id}/next [post]
func (h *DraftHandler) Next(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	state, err := h.draftService.NextStep(c.Request.Context(), id, *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Step advanced successfully", state)
}

// Previous moves the wizard one step back
// @Summary Rewind Draft Step
// @Tags drafts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Draft session ID"
// @Success 200 {object} response.APIResponse
// @Router /quotations/drafts/{id}/previous [post]
func (h *DraftHandler) Previous(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	state, err := h.draftService.PreviousStep(c.Request.Context(), id, *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Step rewound successfully", state)
}

// GoToStep jumps the wizard to a named step, revalidating on the way forward
// @Summary Jump To Draft Step
// @Tags drafts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Draft session ID"
// @Param request body request.GoToStepRequest true "Target step"
// @Success 200 {object} response.APIResponse
// @Router /quotations/drafts/{id}/step [put]
func (h *DraftHandler) GoToStep(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	var req request.GoToStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	state, err := h.draftService.GoToStep(c.Request.Context(), id, *userID, req.Step)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Step changed successfully", state)
}

// Save persists the draft as a quotation and closes the session
// @Summary Save Draft
// @Tags drafts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Draft session ID"
// @Success 201 {object} response.APIResponse
// @Router /quotations/drafts/{id}/save [post]
func (h *DraftHandler) Save(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	quotation, err := h.draftService.SaveDraft(c.Request.Context(), id, *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Quotation saved successfully", quotation)
}

// Send persists the draft and emails it to the client
// @Summary Send Draft
// @Tags drafts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Draft session ID"
// @Success 201 {object} response.APIResponse
// @Router /quotations/drafts/{id}/send [post]
func (h *DraftHandler) Send(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, ok := h.sessionID(c)
	if !ok {
		return
	}

	quotation, err := h.draftService.SendDraft(c.Request.Context(), id, *userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Quotation sent successfully", quotation)
}

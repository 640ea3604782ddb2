package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/serviflow/serviflow-api/internal/application/service"
	"github.com/serviflow/serviflow-api/internal/presentation/http/dto/request"
	"github.com/serviflow/serviflow-api/internal/presentation/http/dto/response"
)

// ClientHandler handles client HTTP requests
type ClientHandler struct {
	clientService *service.ClientService
}

// NewClientHandler creates a new client handler
func NewClientHandler(clientService *service.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// List handles listing clients
// @Summary List Clients
// @Tags clients
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param search query string false "Search term"
// @Success 200 {object} response.APIResponse
// @Router /clients [get]
func (h *ClientHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.ClientFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}

	result, err := h.clientService.ListClients(c.Request.Context(), *userID,
		getPagination(req.Page, req.PerPage), req.Search, IsSuperAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Clients retrieved successfully", result)
}

// Get handles getting a single client
// @Summary Get Client
// @Tags clients
// @Security BearerAuth
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} response.APIResponse
// @Router /clients/{id} [get]
func (h *ClientHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid client ID")
		return
	}

	client, err := h.clientService.GetClient(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Client retrieved successfully", client)
}

// Create handles creating a client
// @Summary Create Client
// @Tags clients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CreateClientRequest true "Client data"
// @Success 201 {object} response.APIResponse
// @Router /clients [post]
func (h *ClientHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	countryID, err := parseOptionalUUID(req.CountryID)
	if err != nil {
		response.BadRequest(c, "Invalid country ID")
		return
	}
	cityID, err := parseOptionalUUID(req.CityID)
	if err != nil {
		response.BadRequest(c, "Invalid city ID")
		return
	}
	sectorID, err := parseOptionalUUID(req.SectorID)
	if err != nil {
		response.BadRequest(c, "Invalid sector ID")
		return
	}

	client, err := h.clientService.CreateClient(c.Request.Context(), &service.CreateClientInput{
		UserID:    *userID,
		Name:      req.Name,
		TaxID:     req.TaxID,
		Contact:   req.Contact,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		CountryID: countryID,
		CityID:    cityID,
		SectorID:  sectorID,
		Notes:     req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Client created successfully", client)
}

// Update handles updating a client
// @Summary Update Client
// @Tags clients
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Client ID"
// @Param request body request.UpdateClientRequest true "Client data"
// @Success 200 {object} response.APIResponse
// @Router /clients/{id} [put]
func (h *ClientHandler) Update(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid client ID")
		return
	}

	var req request.UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	countryID, err := parseOptionalUUID(req.CountryID)
	if err != nil {
		response.BadRequest(c, "Invalid country ID")
		return
	}
	cityID, err := parseOptionalUUID(req.CityID)
	if err != nil {
		response.BadRequest(c, "Invalid city ID")
		return
	}
	sectorID, err := parseOptionalUUID(req.SectorID)
	if err != nil {
		response.BadRequest(c, "Invalid sector ID")
		return
	}

	client, err := h.clientService.UpdateClient(c.Request.Context(), &service.UpdateClientInput{
		UserID:       *userID,
		ID:           id,
		IsSuperAdmin: IsSuperAdmin(c),
		Name:         req.Name,
		TaxID:        req.TaxID,
		Contact:      req.Contact,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		CountryID:    countryID,
		CityID:       cityID,
		SectorID:     sectorID,
		Notes:        req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Client updated successfully", client)
}

// Delete handles deleting a client
// @Summary Delete Client
// @Tags clients
// @Security BearerAuth
// @Param id path string true "Client ID"
// @Success 204
// @Router /clients/{id} [delete]
func (h *ClientHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid client ID")
		return
	}

	if err := h.clientService.DeleteClient(c.Request.Context(), *userID, id, IsSuperAdmin(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

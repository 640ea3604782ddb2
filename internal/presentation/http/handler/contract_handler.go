package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/serviflow/serviflow-api/internal/application/service"
	"github.com/serviflow/serviflow-api/internal/domain/enum"
	"github.com/serviflow/serviflow-api/internal/presentation/http/dto/request"
	"github.com/serviflow/serviflow-api/internal/presentation/http/dto/response"
)

// ContractHandler handles contract and clause template HTTP requests
type ContractHandler struct {
	contractService *service.ContractService
}

// NewContractHandler creates a new contract handler
func NewContractHandler(contractService *service.ContractService) *ContractHandler {
	return &ContractHandler{contractService: contractService}
}

// ListTemplates handles listing clause templates
// @Summary List Clause Templates
// @Tags contracts
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /contracts/templates [get]
func (h *ContractHandler) ListTemplates(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.ClauseTemplateFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}

	result, err := h.contractService.ListClauseTemplates(c.Request.Context(), *userID,
		getPagination(req.Page, req.PerPage), req.Search, IsSuperAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Clause templates retrieved successfully", result)
}

// GetTemplate handles getting a single clause template
// @Summary Get Clause Template
// @Tags contracts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Template ID"
// @Success 200 {object} response.APIResponse
// @Router /contracts/templates/{id} [get]
func (h *ContractHandler) GetTemplate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid template ID")
		return
	}

	template, err := h.contractService.GetClauseTemplate(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Clause template retrieved successfully", template)
}

// CreateTemplate handles creating a clause template
// @Summary Create Clause Template
// @Tags contracts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CreateClauseTemplateRequest true "Template data"
// @Success 201 {object} response.APIResponse
// @Router /contracts/templates [post]
func (h *ContractHandler) CreateTemplate(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateClauseTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	template, err := h.contractService.CreateClauseTemplate(c.Request.Context(), &service.CreateClauseTemplateInput{
		UserID: *userID,
		Title:  req.Title,
		Body:   req.Body,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Clause template created successfully", template)
}

// UpdateTemplate handles updating a clause template
// @Summary Update Clause Template
// @Tags contracts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Template ID"
// @Param request body request.UpdateClauseTemplateRequest true "Template data"
// @Success 200 {object} response.APIResponse
// @Router /contracts/templates/{id} [put]
func (h *ContractHandler) UpdateTemplate(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid template ID")
		return
	}

	var req request.UpdateClauseTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	template, err := h.contractService.UpdateClauseTemplate(c.Request.Context(), &service.UpdateClauseTemplateInput{
		UserID:       *userID,
		ID:           id,
		IsSuperAdmin: IsSuperAdmin(c),
		Title:        req.Title,
		Body:         req.Body,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Clause template updated successfully", template)
}

// DeleteTemplate handles deleting a clause template
// @Summary Delete Clause Template
// @Tags contracts
// @Security BearerAuth
// @Param id path string true "Template ID"
// @Success 204
// @Router /contracts/templates/{id} [delete]
func (h *ContractHandler) DeleteTemplate(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid template ID")
		return
	}

	if err := h.contractService.DeleteClauseTemplate(c.Request.Context(), *userID, id, IsSuperAdmin(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// List handles listing contracts
// @Summary List Contracts
// @Tags contracts
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /contracts [get]
func (h *ContractHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.ContractFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}

	var status *enum.ContractStatus
	if req.Status != "" {
		st, _ := enum.ParseContractStatus(req.Status)
		status = &st
	}

	result, err := h.contractService.ListContracts(c.Request.Context(), *userID,
		getPagination(req.Page, req.PerPage), req.Search, status, IsSuperAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Contracts retrieved successfully", result)
}

// Get handles getting a single contract with its clauses
// @Summary Get Contract
// @Tags contracts
// @Security BearerAuth
// @Produce json
// @Param id path string true "Contract ID"
// @Success 200 {object} response.APIResponse
// @Router /contracts/{id} [get]
func (h *ContractHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid contract ID")
		return
	}

	contract, err := h.contractService.GetContract(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Contract retrieved successfully", contract)
}

// Create assembles a contract from clause templates
// @Summary Create Contract
// @Tags contracts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CreateContractRequest true "Contract data"
// @Success 201 {object} response.APIResponse
// @Router /contracts [post]
func (h *ContractHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		response.BadRequest(c, "Invalid start date. Use YYYY-MM-DD")
		return
	}

	var endDate *time.Time
	if req.EndDate != nil {
		parsed, err := parseDate(*req.EndDate)
		if err != nil {
			response.BadRequest(c, "Invalid end date. Use YYYY-MM-DD")
			return
		}
		endDate = &parsed
	}

	clientID, err := parseOptionalUUID(req.ClientID)
	if err != nil {
		response.BadRequest(c, "Invalid client ID")
		return
	}

	templateIDs := make([]uuid.UUID, len(req.TemplateIDs))
	for i, tid := range req.TemplateIDs {
		parsed, err := uuid.Parse(tid)
		if err != nil {
			response.BadRequest(c, "Invalid template ID")
			return
		}
		templateIDs[i] = parsed
	}

	contract, err := h.contractService.CreateContract(c.Request.Context(), &service.CreateContractInput{
		UserID:       *userID,
		ClientID:     clientID,
		Title:        req.Title,
		StartDate:    startDate,
		EndDate:      endDate,
		Amount:       req.Amount,
		TemplateIDs:  templateIDs,
		Placeholders: req.Placeholders,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Contract created successfully", contract)
}

// ChangeStatus handles contract status changes
// @Summary Change Contract Status
// @Tags contracts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Contract ID"
// @Param request body request.ChangeContractStatusRequest true "New status"
// @Success 200 {object} response.APIResponse
// @Router /contracts/{id}/status [put]
func (h *ContractHandler) ChangeStatus(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid contract ID")
		return
	}

	var req request.ChangeContractStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	st, _ := enum.ParseContractStatus(req.Status)
	contract, err := h.contractService.ChangeContractStatus(c.Request.Context(), *userID, id,
		st, IsSuperAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Contract status updated successfully", contract)
}

// Delete handles deleting a contract
// @Summary Delete Contract
// @Tags contracts
// @Security BearerAuth
// @Param id path string true "Contract ID"
// @Success 204
// @Router /contracts/{id} [delete]
func (h *ContractHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid contract ID")
		return
	}

	if err := h.contractService.DeleteContract(c.Request.Context(), *userID, id, IsSuperAdmin(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

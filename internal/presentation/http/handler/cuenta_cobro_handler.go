package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/serviflow/serviflow-api/internal/application/service"
	"github.com/serviflow/serviflow-api/internal/presentation/http/dto/request"
	"github.com/serviflow/serviflow-api/internal/presentation/http/dto/response"
)

// CuentaCobroHandler handles cuenta de cobro HTTP requests
type CuentaCobroHandler struct {
	cuentaService *service.CuentaCobroService
}

// NewCuentaCobroHandler creates a new cuenta de cobro handler
func NewCuentaCobroHandler(cuentaService *service.CuentaCobroService) *CuentaCobroHandler {
	return &CuentaCobroHandler{cuentaService: cuentaService}
}

// List handles listing cuentas de cobro
// @Summary List Cuentas de Cobro
// @Tags cuentas-cobro
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /cuentas-cobro [get]
func (h *CuentaCobroHandler) List(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CuentaCobroFilterRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters: "+err.Error())
		return
	}

	result, err := h.cuentaService.ListCuentasCobro(c.Request.Context(), *userID,
		getPagination(req.Page, req.PerPage), req.Search, IsSuperAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Cuentas de cobro retrieved successfully", result)
}

// Get handles getting a single cuenta de cobro
// @Summary Get Cuenta de Cobro
// @Tags cuentas-cobro
// @Security BearerAuth
// @Produce json
// @Param id path string true "Cuenta de cobro ID"
// @Success 200 {object} response.APIResponse
// @Router /cuentas-cobro/{id} [get]
func (h *CuentaCobroHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid cuenta de cobro ID")
		return
	}

	cuenta, err := h.cuentaService.GetCuentaCobro(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cuenta de cobro retrieved successfully", cuenta)
}

// Create handles creating a cuenta de cobro
// @Summary Create Cuenta de Cobro
// @Tags cuentas-cobro
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CreateCuentaCobroRequest true "Cuenta de cobro data"
// @Success 201 {object} response.APIResponse
// @Router /cuentas-cobro [post]
func (h *CuentaCobroHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateCuentaCobroRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		response.BadRequest(c, "Invalid date format. Use YYYY-MM-DD")
		return
	}
	periodStart, err := parseDate(req.PeriodStart)
	if err != nil {
		response.BadRequest(c, "Invalid period start. Use YYYY-MM-DD")
		return
	}
	periodEnd, err := parseDate(req.PeriodEnd)
	if err != nil {
		response.BadRequest(c, "Invalid period end. Use YYYY-MM-DD")
		return
	}

	clientID, err := parseOptionalUUID(req.ClientID)
	if err != nil {
		response.BadRequest(c, "Invalid client ID")
		return
	}

	cuenta, err := h.cuentaService.CreateCuentaCobro(c.Request.Context(), &service.CreateCuentaCobroInput{
		UserID:      *userID,
		ClientID:    clientID,
		Date:        date,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		Concept:     req.Concept,
		Items:       collectionItems(req.Items),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Cuenta de cobro created successfully", cuenta)
}

// MarkPaid toggles the paid flag on a cuenta de cobro
// @Summary Mark Cuenta de Cobro Paid
// @Tags cuentas-cobro
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Cuenta de cobro ID"
// @Param request body request.MarkCuentaCobroPaidRequest true "Paid flag"
// @Success 200 {object} response.APIResponse
// @Router /cuentas-cobro/{id}/paid [put]
func (h *CuentaCobroHandler) MarkPaid(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid cuenta de cobro ID")
		return
	}

	var req request.MarkCuentaCobroPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	cuenta, err := h.cuentaService.MarkPaid(c.Request.Context(), *userID, id, *req.Paid, IsSuperAdmin(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cuenta de cobro updated successfully", cuenta)
}

// Delete handles deleting a cuenta de cobro
// @Summary Delete Cuenta de Cobro
// @Tags cuentas-cobro
// @Security BearerAuth
// @Param id path string true "Cuenta de cobro ID"
// @Success 204
// @Router /cuentas-cobro/{id} [delete]
func (h *CuentaCobroHandler) Delete(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid cuenta de cobro ID")
		return
	}

	if err := h.cuentaService.DeleteCuentaCobro(c.Request.Context(), *userID, id, IsSuperAdmin(c)); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

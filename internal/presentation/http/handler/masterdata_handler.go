package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/serviflow/serviflow-api/internal/application/service"
	"github.com/serviflow/serviflow-api/internal/presentation/http/dto/request"
	"github.com/serviflow/serviflow-api/internal/presentation/http/dto/response"
)

// MasterDataHandler handles country, city and sector HTTP requests
type MasterDataHandler struct {
	masterDataService *service.MasterDataService
}

// NewMasterDataHandler creates a new master data handler
func NewMasterDataHandler(masterDataService *service.MasterDataService) *MasterDataHandler {
	return &MasterDataHandler{masterDataService: masterDataService}
}

// ListCountries handles listing countries
// @Summary List Countries
// @Tags masterdata
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /masterdata/countries [get]
func (h *MasterDataHandler) ListCountries(c *gin.Context) {
	countries, err := h.masterDataService.ListCountries(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Countries retrieved successfully", countries)
}

// CreateCountry handles creating a country
// @Summary Create Country
// @Tags masterdata
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CreateCountryRequest true "Country data"
// @Success 201 {object} response.APIResponse
// @Router /masterdata/countries [post]
func (h *MasterDataHandler) CreateCountry(c *gin.Context) {
	var req request.CreateCountryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	country, err := h.masterDataService.CreateCountry(c.Request.Context(), req.Name, req.Code)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Country created successfully", country)
}

// DeleteCountry handles deleting a country
// @Summary Delete Country
// @Tags masterdata
// @Security BearerAuth
// @Param id path string true "Country ID"
// @Success 204
// @Router /masterdata/countries/{id} [delete]
func (h *MasterDataHandler) DeleteCountry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid country ID")
		return
	}

	if err := h.masterDataService.DeleteCountry(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// ListCities handles listing cities for a country
// @Summary List Cities
// @Tags masterdata
// @Security BearerAuth
// @Produce json
// @Param countryId path string true "Country ID"
// @Success 200 {object} response.APIResponse
// @Router /masterdata/countries/{countryId}/cities [get]
func (h *MasterDataHandler) ListCities(c *gin.Context) {
	countryID, err := uuid.Parse(c.Param("countryId"))
	if err != nil {
		response.BadRequest(c, "Invalid country ID")
		return
	}

	cities, err := h.masterDataService.ListCities(c.Request.Context(), countryID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cities retrieved successfully", cities)
}

// CreateCity handles creating a city
// @Summary Create City
// @Tags masterdata
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CreateCityRequest true "City data"
// @Success 201 {object} response.APIResponse
// @Router /masterdata/cities [post]
func (h *MasterDataHandler) CreateCity(c *gin.Context) {
	var req request.CreateCityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	countryID, err := uuid.Parse(req.CountryID)
	if err != nil {
		response.BadRequest(c, "Invalid country ID")
		return
	}

	city, err := h.masterDataService.CreateCity(c.Request.Context(), countryID, req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "City created successfully", city)
}

// DeleteCity handles deleting a city
// @Summary Delete City
// @Tags masterdata
// @Security BearerAuth
// @Param id path string true "City ID"
// @Success 204
// @Router /masterdata/cities/{id} [delete]
func (h *MasterDataHandler) DeleteCity(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid city ID")
		return
	}

	if err := h.masterDataService.DeleteCity(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// ListSectors handles listing business sectors
// @Summary List Sectors
// @Tags masterdata
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /masterdata/sectors [get]
func (h *MasterDataHandler) ListSectors(c *gin.Context) {
	sectors, err := h.masterDataService.ListSectors(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sectors retrieved successfully", sectors)
}

// CreateSector handles creating a sector
// @Summary Create Sector
// @Tags masterdata
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body request.CreateSectorRequest true "Sector data"
// @Success 201 {object} response.APIResponse
// @Router /masterdata/sectors [post]
func (h *MasterDataHandler) CreateSector(c *gin.Context) {
	var req request.CreateSectorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	sector, err := h.masterDataService.CreateSector(c.Request.Context(), req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Sector created successfully", sector)
}

// DeleteSector handles deleting a sector
// @Summary Delete Sector
// @Tags masterdata
// @Security BearerAuth
// @Param id path string true "Sector ID"
// @Success 204
// @Router /masterdata/sectors/{id} [delete]
func (h *MasterDataHandler) DeleteSector(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sector ID")
		return
	}

	if err := h.masterDataService.DeleteSector(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

package request

// CreateCountryRequest represents a country creation request
type CreateCountryRequest struct {
	Name string `json:"name" binding:"required,min=2,max=255"`
	Code string `json:"code" binding:"required,len=2,alpha"`
}

// CreateCityRequest represents a city creation request
type CreateCityRequest struct {
	CountryID string `json:"country_id" binding:"required,uuid"`
	Name      string `json:"name" binding:"required,min=2,max=255"`
}

// CreateSectorRequest represents a sector creation request
type CreateSectorRequest struct {
	Name string `json:"name" binding:"required,min=2,max=255"`
}

package request

// CreateClientRequest represents a client creation request
type CreateClientRequest struct {
	Name      string  `json:"name" binding:"required,min=2,max=255"`
	TaxID     string  `json:"tax_id" binding:"required,min=3,max=50"`
	Contact   *string `json:"contact" binding:"omitempty,max=255"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Phone     *string `json:"phone" binding:"omitempty,max=50"`
	Address   *string `json:"address" binding:"omitempty,max=500"`
	CountryID *string `json:"country_id" binding:"omitempty,uuid"`
	CityID    *string `json:"city_id" binding:"omitempty,uuid"`
	SectorID  *string `json:"sector_id" binding:"omitempty,uuid"`
	Notes     *string `json:"notes" binding:"omitempty,max=2000"`
}

// UpdateClientRequest represents a client update request
type UpdateClientRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=2,max=255"`
	TaxID     *string `json:"tax_id" binding:"omitempty,min=3,max=50"`
	Contact   *string `json:"contact" binding:"omitempty,max=255"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Phone     *string `json:"phone" binding:"omitempty,max=50"`
	Address   *string `json:"address" binding:"omitempty,max=500"`
	CountryID *string `json:"country_id" binding:"omitempty,uuid"`
	CityID    *string `json:"city_id" binding:"omitempty,uuid"`
	SectorID  *string `json:"sector_id" binding:"omitempty,uuid"`
	Notes     *string `json:"notes" binding:"omitempty,max=2000"`
}

// ClientFilterRequest represents client list filters
type ClientFilterRequest struct {
	Search  string `form:"search" binding:"omitempty,max=255"`
	Page    int    `form:"page" binding:"omitempty,min=1"`
	PerPage int    `form:"per_page" binding:"omitempty,min=1,max=100"`
}

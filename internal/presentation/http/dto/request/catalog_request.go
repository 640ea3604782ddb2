package request

// CreateCatalogItemRequest represents a catalog item creation request
type CreateCatalogItemRequest struct {
	Code           string  `json:"code" binding:"required,min=1,max=50"`
	Description    string  `json:"description" binding:"required,min=2,max=500"`
	UnitPrice      float64 `json:"unit_price" binding:"omitempty,min=0"`
	TaxRatePercent float64 `json:"tax_rate_percent" binding:"omitempty,min=0,max=100"`
}

// UpdateCatalogItemRequest represents a catalog item update request
type UpdateCatalogItemRequest struct {
	Code           *string  `json:"code" binding:"omitempty,min=1,max=50"`
	Description    *string  `json:"description" binding:"omitempty,min=2,max=500"`
	UnitPrice      *float64 `json:"unit_price" binding:"omitempty,min=0"`
	TaxRatePercent *float64 `json:"tax_rate_percent" binding:"omitempty,min=0,max=100"`
	Active         *bool    `json:"active"`
}

// CatalogFilterRequest represents catalog list filters
type CatalogFilterRequest struct {
	Search  string `form:"search" binding:"omitempty,max=255"`
	Page    int    `form:"page" binding:"omitempty,min=1"`
	PerPage int    `form:"per_page" binding:"omitempty,min=1,max=100"`
}

package request

// UpdateDraftIssuerRequest represents a partial update of the issuer block
type UpdateDraftIssuerRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=2,max=255"`
	TaxID   *string `json:"tax_id" binding:"omitempty,min=3,max=50"`
	Phone   *string `json:"phone" binding:"omitempty,max=50"`
	Address *string `json:"address" binding:"omitempty,max=500"`
	LogoRef *string `json:"logo_ref" binding:"omitempty,max=500"`
	Email   *string `json:"email" binding:"omitempty,email"`
}

// UpdateDraftClientRequest represents a partial update of the client block
type UpdateDraftClientRequest struct {
	Name       *string `json:"name" binding:"omitempty,min=2,max=255"`
	TaxID      *string `json:"tax_id" binding:"omitempty,min=3,max=50"`
	Phone      *string `json:"phone" binding:"omitempty,max=50"`
	Contact    *string `json:"contact" binding:"omitempty,max=255"`
	Address    *string `json:"address" binding:"omitempty,max=500"`
	Email      *string `json:"email" binding:"omitempty,email"`
	CountryRef *string `json:"country_ref" binding:"omitempty,uuid"`
	CityRef    *string `json:"city_ref" binding:"omitempty,uuid"`
	SectorRef  *string `json:"sector_ref" binding:"omitempty,uuid"`
}

// SelectDraftClientRequest selects a saved client into the draft
type SelectDraftClientRequest struct {
	ClientID string `json:"client_id" binding:"required,uuid"`
}

// AddDraftLineItemRequest represents a new draft line item
type AddDraftLineItemRequest struct {
	Description    string  `json:"description" binding:"required,min=1,max=500"`
	Quantity       int     `json:"quantity" binding:"required,min=1"`
	UnitPrice      float64 `json:"unit_price" binding:"omitempty,min=0"`
	TaxRatePercent float64 `json:"tax_rate_percent" binding:"omitempty,min=0,max=100"`
}

// AddDraftCatalogItemRequest adds a catalog item to the draft
type AddDraftCatalogItemRequest struct {
	ItemID   string `json:"item_id" binding:"required,uuid"`
	Quantity int    `json:"quantity" binding:"omitempty,min=1"`
}

// UpdateDraftLineItemRequest represents a partial update of a draft line item
type UpdateDraftLineItemRequest struct {
	Description    *string  `json:"description" binding:"omitempty,min=1,max=500"`
	Quantity       *int     `json:"quantity" binding:"omitempty,min=1"`
	UnitPrice      *float64 `json:"unit_price" binding:"omitempty,min=0"`
	TaxRatePercent *float64 `json:"tax_rate_percent" binding:"omitempty,min=0,max=100"`
}

// SetDraftExpiryRequest sets the quotation expiry date
type SetDraftExpiryRequest struct {
	ExpiryDate string `json:"expiry_date" binding:"required,datetime=2006-01-02"`
}

// GoToStepRequest jumps the wizard to a named step
type GoToStepRequest struct {
	Step string `json:"step" binding:"required,oneof=company client products preview"`
}

// DraftClientSearchRequest represents a client lookup query
type DraftClientSearchRequest struct {
	Query string `form:"q" binding:"omitempty,max=255"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=25"`
}

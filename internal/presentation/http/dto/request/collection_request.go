package request

// CollectionItemRequest represents a collection line item
type CollectionItemRequest struct {
	Description    string  `json:"description" binding:"required,min=1,max=500"`
	Quantity       int     `json:"quantity" binding:"required,min=1"`
	UnitPrice      float64 `json:"unit_price" binding:"omitempty,min=0"`
	TaxRatePercent float64 `json:"tax_rate_percent" binding:"omitempty,min=0,max=100"`
}

// CreateCollectionRequest represents a collection creation request
type CreateCollectionRequest struct {
	ClientID *string                 `json:"client_id" binding:"omitempty,uuid"`
	Date     string                  `json:"date" binding:"required,datetime=2006-01-02"`
	Notes    *string                 `json:"notes" binding:"omitempty,max=2000"`
	Items    []CollectionItemRequest `json:"items" binding:"required,min=1,dive"`
}

// CollectionFilterRequest represents collection list filters
type CollectionFilterRequest struct {
	Search   string `form:"search" binding:"omitempty,max=255"`
	Status   string `form:"status" binding:"omitempty,oneof=pending partial collected canceled"`
	ClientID string `form:"client_id" binding:"omitempty,uuid"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PerPage  int    `form:"per_page" binding:"omitempty,min=1,max=100"`
}

// RegisterPaymentRequest records a payment against a collection
type RegisterPaymentRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
}

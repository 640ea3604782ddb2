package request

// CreateCuentaCobroRequest represents a cuenta de cobro creation request
type CreateCuentaCobroRequest struct {
	ClientID    *string                 `json:"client_id" binding:"omitempty,uuid"`
	Date        string                  `json:"date" binding:"required,datetime=2006-01-02"`
	PeriodStart string                  `json:"period_start" binding:"required,datetime=2006-01-02"`
	PeriodEnd   string                  `json:"period_end" binding:"required,datetime=2006-01-02"`
	Concept     string                  `json:"concept" binding:"required,min=2,max=500"`
	Items       []CollectionItemRequest `json:"items" binding:"required,min=1,dive"`
}

// CuentaCobroFilterRequest represents cuenta de cobro list filters
type CuentaCobroFilterRequest struct {
	Search  string `form:"search" binding:"omitempty,max=255"`
	Page    int    `form:"page" binding:"omitempty,min=1"`
	PerPage int    `form:"per_page" binding:"omitempty,min=1,max=100"`
}

// MarkCuentaCobroPaidRequest toggles the paid flag
type MarkCuentaCobroPaidRequest struct {
	Paid *bool `json:"paid" binding:"required"`
}

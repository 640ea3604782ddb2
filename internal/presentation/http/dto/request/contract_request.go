package request

// CreateClauseTemplateRequest represents a clause template creation request
type CreateClauseTemplateRequest struct {
	Title string `json:"title" binding:"required,min=2,max=255"`
	Body  string `json:"body" binding:"required,min=2"`
}

// UpdateClauseTemplateRequest represents a clause template update request
type UpdateClauseTemplateRequest struct {
	Title *string `json:"title" binding:"omitempty,min=2,max=255"`
	Body  *string `json:"body" binding:"omitempty,min=2"`
}

// ClauseTemplateFilterRequest represents clause template list filters
type ClauseTemplateFilterRequest struct {
	Search  string `form:"search" binding:"omitempty,max=255"`
	Page    int    `form:"page" binding:"omitempty,min=1"`
	PerPage int    `form:"per_page" binding:"omitempty,min=1,max=100"`
}

// CreateContractRequest represents a contract creation request
type CreateContractRequest struct {
	ClientID     *string           `json:"client_id" binding:"omitempty,uuid"`
	Title        string            `json:"title" binding:"required,min=2,max=255"`
	StartDate    string            `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate      *string           `json:"end_date" binding:"omitempty,datetime=2006-01-02"`
	Amount       float64           `json:"amount" binding:"omitempty,min=0"`
	TemplateIDs  []string          `json:"template_ids" binding:"required,min=1,dive,uuid"`
	Placeholders map[string]string `json:"placeholders"`
}

// ContractFilterRequest represents contract list filters
type ContractFilterRequest struct {
	Search  string `form:"search" binding:"omitempty,max=255"`
	Status  string `form:"status" binding:"omitempty,oneof=draft active terminated"`
	Page    int    `form:"page" binding:"omitempty,min=1"`
	PerPage int    `form:"per_page" binding:"omitempty,min=1,max=100"`
}

// ChangeContractStatusRequest represents a contract status change request
type ChangeContractStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=draft active terminated"`
}

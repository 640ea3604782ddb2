package request

// CreateProviderRequest represents a provider creation request
type CreateProviderRequest struct {
	Name          string  `json:"name" binding:"required,min=2,max=255"`
	TaxID         string  `json:"tax_id" binding:"required,min=3,max=50"`
	Type          string  `json:"type" binding:"omitempty,oneof=services goods mixed"`
	Contact       *string `json:"contact" binding:"omitempty,max=255"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Phone         *string `json:"phone" binding:"omitempty,max=50"`
	Address       *string `json:"address" binding:"omitempty,max=500"`
	AccountHolder *string `json:"account_holder" binding:"omitempty,max=255"`
	AccountNumber *string `json:"account_number" binding:"omitempty,max=50"`
	BankName      *string `json:"bank_name" binding:"omitempty,max=255"`
}

// UpdateProviderRequest represents a provider update request
type UpdateProviderRequest struct {
	Name          *string `json:"name" binding:"omitempty,min=2,max=255"`
	TaxID         *string `json:"tax_id" binding:"omitempty,min=3,max=50"`
	Type          *string `json:"type" binding:"omitempty,oneof=services goods mixed"`
	Contact       *string `json:"contact" binding:"omitempty,max=255"`
	Email         *string `json:"email" binding:"omitempty,email"`
	Phone         *string `json:"phone" binding:"omitempty,max=50"`
	Address       *string `json:"address" binding:"omitempty,max=500"`
	AccountHolder *string `json:"account_holder" binding:"omitempty,max=255"`
	AccountNumber *string `json:"account_number" binding:"omitempty,max=50"`
	BankName      *string `json:"bank_name" binding:"omitempty,max=255"`
}

// ProviderFilterRequest represents provider list filters
type ProviderFilterRequest struct {
	Search  string `form:"search" binding:"omitempty,max=255"`
	Page    int    `form:"page" binding:"omitempty,min=1"`
	PerPage int    `form:"per_page" binding:"omitempty,min=1,max=100"`
}

package request

// UpdateCompanyProfileRequest represents the issuer profile update request
type UpdateCompanyProfileRequest struct {
	Name    string  `json:"name" binding:"required,min=2,max=255"`
	TaxID   string  `json:"tax_id" binding:"required,min=3,max=50"`
	Phone   string  `json:"phone" binding:"omitempty,max=50"`
	Address string  `json:"address" binding:"omitempty,max=500"`
	Email   *string `json:"email" binding:"omitempty,email"`
	LogoRef *string `json:"logo_ref" binding:"omitempty,max=500"`
	Website *string `json:"website" binding:"omitempty,max=255"`
}

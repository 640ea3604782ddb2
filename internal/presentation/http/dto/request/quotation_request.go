package request

// QuotationFilterRequest represents quotation list filters
type QuotationFilterRequest struct {
	Search    string `form:"search" binding:"omitempty,max=255"`
	Status    string `form:"status" binding:"omitempty,oneof=draft sent approved rejected expired"`
	ClientID  string `form:"client_id" binding:"omitempty,uuid"`
	Page      int    `form:"page" binding:"omitempty,min=1"`
	PerPage   int    `form:"per_page" binding:"omitempty,min=1,max=100"`
	SortBy    string `form:"sort_by" binding:"omitempty,oneof=number issue_date expiry_date grand_total status created_at"`
	SortOrder string `form:"sort_order" binding:"omitempty,oneof=asc desc"`
}

// ChangeQuotationStatusRequest represents a status change request
type ChangeQuotationStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=draft sent approved rejected expired"`
}

// SendQuotationRequest represents a send request for a saved quotation.
// The recipient defaults to the stored client email when omitted.
type SendQuotationRequest struct {
	Email *string `json:"email" binding:"omitempty,email"`
}

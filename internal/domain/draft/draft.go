package draft

import (
	"time"

	"github.com/google/uuid"
	"github.com/serviflow/serviflow-api/internal/domain/enum"
)

// DefaultValidity is how long a new draft remains valid before it expires.
const DefaultValidity = 30 * 24 * time.Hour

// Issuer is the company issuing the quotation. It is loaded once from the
// company profile and treated as read-only by the UI afterwards.
type Issuer struct {
	Name    string `json:"name"`
	TaxID   string `json:"tax_id"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
	LogoRef string `json:"logo_ref,omitempty"`
	Email   string `json:"email,omitempty"`
}

// Client is the receiving party of the quotation. It may be filled wholesale
// from a client search result or field by field.
type Client struct {
	ID         *uuid.UUID `json:"id,omitempty"`
	Name       string     `json:"name"`
	TaxID      string     `json:"tax_id"`
	Phone      string     `json:"phone"`
	Contact    string     `json:"contact"`
	Address    string     `json:"address"`
	Email      string     `json:"email,omitempty"`
	CountryRef *uuid.UUID `json:"country_ref,omitempty"`
	CityRef    *uuid.UUID `json:"city_ref,omitempty"`
	SectorRef  *uuid.UUID `json:"sector_ref,omitempty"`
}

// LineItem is one product/service row on the draft. LineTotal is always
// derived from the other fields, never set directly.
type LineItem struct {
	ID             uuid.UUID `json:"id"`
	Description    string    `json:"description"`
	Quantity       int       `json:"quantity"`
	UnitPrice      float64   `json:"unit_price"`
	TaxRatePercent float64   `json:"tax_rate_percent"`
	LineTotal      float64   `json:"line_total"`
}

// Draft is an in-progress, not-yet-persisted quotation.
type Draft struct {
	Number     string               `json:"number"`
	IssueDate  time.Time            `json:"issue_date"`
	ExpiryDate time.Time            `json:"expiry_date"`
	Issuer     Issuer               `json:"issuer"`
	Client     Client               `json:"client"`
	LineItems  []LineItem           `json:"line_items"`
	Subtotal   float64              `json:"subtotal"`
	TaxTotal   float64              `json:"tax_total"`
	GrandTotal float64              `json:"grand_total"`
	Status     enum.QuotationStatus `json:"status"`
}

// CanSend reports whether the draft can be emailed to the client. A missing
// issuer email only disables sending; it never blocks wizard progress.
func (d Draft) CanSend() bool {
	return d.Issuer.Email != "" && d.Client.Email != ""
}

// IssuerUpdate is a typed partial update for the issuer. Nil fields are left
// untouched.
type IssuerUpdate struct {
	Name    *string `json:"name"`
	TaxID   *string `json:"tax_id"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`
	LogoRef *string `json:"logo_ref"`
	Email   *string `json:"email"`
}

// ClientUpdate is a typed partial update for the client. Nil fields are left
// untouched.
type ClientUpdate struct {
	ID         *uuid.UUID `json:"id"`
	Name       *string    `json:"name"`
	TaxID      *string    `json:"tax_id"`
	Phone      *string    `json:"phone"`
	Contact    *string    `json:"contact"`
	Address    *string    `json:"address"`
	Email      *string    `json:"email"`
	CountryRef *uuid.UUID `json:"country_ref"`
	CityRef    *uuid.UUID `json:"city_ref"`
	SectorRef  *uuid.UUID `json:"sector_ref"`
}

// LineItemInput is the payload for adding a new line item.
type LineItemInput struct {
	Description    string  `json:"description"`
	Quantity       int     `json:"quantity"`
	UnitPrice      float64 `json:"unit_price"`
	TaxRatePercent float64 `json:"tax_rate_percent"`
}

// LineItemUpdate is a typed partial update for an existing line item.
type LineItemUpdate struct {
	Description    *string  `json:"description"`
	Quantity       *int     `json:"quantity"`
	UnitPrice      *float64 `json:"unit_price"`
	TaxRatePercent *float64 `json:"tax_rate_percent"`
}

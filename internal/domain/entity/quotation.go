package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/serviflow/serviflow-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Quotation represents a persisted sales quotation assembled through the
// draft wizard. Totals are always recomputed server-side from the line
// items, never trusted from the request.
type Quotation struct {
	ID         uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	UserID     uuid.UUID            `gorm:"type:uuid;not null;index" json:"user_id"`
	ClientID   *uuid.UUID           `gorm:"type:uuid;index" json:"client_id,omitempty"`
	Number     string               `gorm:"size:100;unique;not null" json:"number"`
	IssueDate  time.Time            `gorm:"type:date;not null" json:"issue_date"`
	ExpiryDate time.Time            `gorm:"type:date;not null" json:"expiry_date"`
	ClientName string               `gorm:"size:255" json:"client_name"`
	ClientTax  string               `gorm:"size:50;column:client_tax_id" json:"client_tax_id"`
	Subtotal   float64              `gorm:"type:decimal(15,2);default:0" json:"subtotal"`
	TaxTotal   float64              `gorm:"type:decimal(15,2);default:0" json:"tax_total"`
	GrandTotal float64              `gorm:"type:decimal(15,2);default:0" json:"grand_total"`
	Status     enum.QuotationStatus `gorm:"default:0" json:"status"`
	Notes      *string              `gorm:"type:text" json:"notes,omitempty"`
	SentAt     *time.Time           `json:"sent_at,omitempty"`
	CreatedAt  time.Time            `json:"created_at"`
	UpdatedAt  time.Time            `json:"updated_at"`
	DeletedAt  gorm.DeletedAt       `gorm:"index" json:"-"`

	// Relationships
	User   User                `gorm:"foreignKey:UserID" json:"-"`
	Client *Client             `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Items  []QuotationLineItem `gorm:"foreignKey:QuotationID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new quotation
func (q *Quotation) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Quotation model
func (Quotation) TableName() string {
	return "quotations"
}

// QuotationLineItem represents one product/service row on a quotation.
// Position preserves the wizard's insertion order for display.
type QuotationLineItem struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	QuotationID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"quotation_id"`
	Position       int            `gorm:"not null" json:"position"`
	Description    string         `gorm:"size:255;not null" json:"description"`
	Quantity       int            `gorm:"not null" json:"quantity"`
	UnitPrice      float64        `gorm:"type:decimal(15,2);not null" json:"unit_price"`
	TaxRatePercent float64        `gorm:"type:decimal(5,2);default:0" json:"tax_rate_percent"`
	LineTotal      float64        `gorm:"type:decimal(15,2);not null" json:"line_total"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Quotation Quotation `gorm:"foreignKey:QuotationID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new line item
func (q *QuotationLineItem) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the QuotationLineItem model
func (QuotationLineItem) TableName() string {
	return "quotation_line_items"
}

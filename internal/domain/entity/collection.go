package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/serviflow/serviflow-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Collection represents a recaudo: a payment-collection document raised
// against a client, usually derived from an approved quotation.
type Collection struct {
	ID          uuid.UUID             `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID             `gorm:"type:uuid;not null;index" json:"user_id"`
	ClientID    *uuid.UUID            `gorm:"type:uuid;index" json:"client_id,omitempty"`
	QuotationID *uuid.UUID            `gorm:"type:uuid;index" json:"quotation_id,omitempty"`
	Number      string                `gorm:"size:100;unique;not null" json:"number"`
	Date        time.Time             `gorm:"type:date;not null" json:"date"`
	ClientName  string                `gorm:"size:255" json:"client_name"`
	Subtotal    float64               `gorm:"type:decimal(15,2);default:0" json:"subtotal"`
	TaxTotal    float64               `gorm:"type:decimal(15,2);default:0" json:"tax_total"`
	GrandTotal  float64               `gorm:"type:decimal(15,2);default:0" json:"grand_total"`
	Collected   float64               `gorm:"type:decimal(15,2);default:0" json:"collected"`
	Status      enum.CollectionStatus `gorm:"default:0" json:"status"`
	Notes       *string               `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt   time.Time             `json:"created_at"`
	UpdatedAt   time.Time             `json:"updated_at"`
	DeletedAt   gorm.DeletedAt        `gorm:"index" json:"-"`

	// Relationships
	User      User                 `gorm:"foreignKey:UserID" json:"-"`
	Client    *Client              `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Quotation *Quotation           `gorm:"foreignKey:QuotationID" json:"quotation,omitempty"`
	Items     []CollectionLineItem `gorm:"foreignKey:CollectionID" json:"items,omitempty"`
}

// Outstanding returns the amount still to collect.
func (c *Collection) Outstanding() float64 {
	return c.GrandTotal - c.Collected
}

// BeforeCreate generates a UUID before creating a new collection
func (c *Collection) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Collection model
func (Collection) TableName() string {
	return "collections"
}

// CollectionLineItem represents one row on a collection document
type CollectionLineItem struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CollectionID   uuid.UUID      `gorm:"type:uuid;not null;index" json:"collection_id"`
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
	Collection Collection `gorm:"foreignKey:CollectionID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new line item
func (c *CollectionLineItem) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CollectionLineItem model
func (CollectionLineItem) TableName() string {
	return "collection_line_items"
}

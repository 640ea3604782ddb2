package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CatalogItem is a reusable service/product row used to prefill quotation
// and collection line items with a default price and tax rate.
type CatalogItem struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID         uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Code           string         `gorm:"size:100;unique;not null" json:"code"`
	Description    string         `gorm:"size:255;not null" json:"description"`
	UnitPrice      float64        `gorm:"type:decimal(15,2);not null" json:"unit_price"`
	TaxRatePercent float64        `gorm:"type:decimal(5,2);default:0" json:"tax_rate_percent"`
	Active         bool           `gorm:"default:true" json:"active"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new catalog item
func (c *CatalogItem) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CatalogItem model
func (CatalogItem) TableName() string {
	return "catalog_items"
}

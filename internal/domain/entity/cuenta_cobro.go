package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CuentaCobro represents a cuenta de cobro: a simple charge account issued
// to a client for services rendered over a period.
type CuentaCobro struct {
	ID          uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID           `gorm:"type:uuid;not null;index" json:"user_id"`
	ClientID    *uuid.UUID          `gorm:"type:uuid;index" json:"client_id,omitempty"`
	Number      string              `gorm:"size:100;unique;not null" json:"number"`
	Date        time.Time           `gorm:"type:date;not null" json:"date"`
	PeriodStart time.Time           `gorm:"type:date;not null" json:"period_start"`
	PeriodEnd   time.Time           `gorm:"type:date;not null" json:"period_end"`
	ClientName  string              `gorm:"size:255" json:"client_name"`
	Concept     string              `gorm:"size:255" json:"concept"`
	Subtotal    float64             `gorm:"type:decimal(15,2);default:0" json:"subtotal"`
	TaxTotal    float64             `gorm:"type:decimal(15,2);default:0" json:"tax_total"`
	GrandTotal  float64             `gorm:"type:decimal(15,2);default:0" json:"grand_total"`
	Paid        bool                `gorm:"default:false" json:"paid"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
	DeletedAt   gorm.DeletedAt      `gorm:"index" json:"-"`

	// Relationships
	User   User                  `gorm:"foreignKey:UserID" json:"-"`
	Client *Client               `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Items  []CuentaCobroLineItem `gorm:"foreignKey:CuentaCobroID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new cuenta de cobro
func (c *CuentaCobro) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CuentaCobro model
func (CuentaCobro) TableName() string {
	return "cuentas_cobro"
}

// CuentaCobroLineItem represents one row on a cuenta de cobro
type CuentaCobroLineItem struct {
	ID             uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CuentaCobroID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"cuenta_cobro_id"`
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
	CuentaCobro CuentaCobro `gorm:"foreignKey:CuentaCobroID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new line item
func (c *CuentaCobroLineItem) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CuentaCobroLineItem model
func (CuentaCobroLineItem) TableName() string {
	return "cuenta_cobro_line_items"
}

package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/serviflow/serviflow-api/internal/domain/enum"
	"gorm.io/gorm"
)

// Provider represents a provider (proveedor) the company buys from
type Provider struct {
	ID            uuid.UUID         `gorm:"type:uuid;primary_key" json:"id"`
	UserID        uuid.UUID         `gorm:"type:uuid;not null;index" json:"user_id"`
	Name          string            `gorm:"size:255;not null" json:"name"`
	TaxID         string            `gorm:"size:50;not null;column:tax_id" json:"tax_id"`
	Type          enum.ProviderType `gorm:"size:50;default:'services'" json:"type"`
	Contact       *string           `gorm:"size:255" json:"contact,omitempty"`
	Email         *string           `gorm:"size:255" json:"email,omitempty"`
	Phone         *string           `gorm:"size:50" json:"phone,omitempty"`
	Address       *string           `gorm:"type:text" json:"address,omitempty"`
	AccountHolder *string           `gorm:"size:255" json:"account_holder,omitempty"`
	AccountNumber *string           `gorm:"size:100" json:"account_number,omitempty"`
	BankName      *string           `gorm:"size:255" json:"bank_name,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
	DeletedAt     gorm.DeletedAt    `gorm:"index" json:"-"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new provider
func (p *Provider) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Provider model
func (Provider) TableName() string {
	return "providers"
}

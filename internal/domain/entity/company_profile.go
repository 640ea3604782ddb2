package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompanyProfile holds the issuer data shown on quotations, contracts and
// cuentas de cobro. The deployment is single-company, so at most one row
// exists; the wizard's company step is pre-filled from it.
type CompanyProfile struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	TaxID     string         `gorm:"size:50;not null;column:tax_id" json:"tax_id"`
	Phone     string         `gorm:"size:50" json:"phone"`
	Address   string         `gorm:"type:text" json:"address"`
	Email     *string        `gorm:"size:255" json:"email,omitempty"`
	LogoRef   *string        `gorm:"size:255" json:"logo_ref,omitempty"`
	Website   *string        `gorm:"size:255" json:"website,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new company profile
func (c *CompanyProfile) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the CompanyProfile model
func (CompanyProfile) TableName() string {
	return "company_profiles"
}

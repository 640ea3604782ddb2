package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Client represents a client (customer) of the services company
type Client struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	TaxID     string         `gorm:"size:50;not null;column:tax_id" json:"tax_id"`
	Contact   *string        `gorm:"size:255" json:"contact,omitempty"`
	Email     *string        `gorm:"size:255" json:"email,omitempty"`
	Phone     *string        `gorm:"size:50" json:"phone,omitempty"`
	Address   *string        `gorm:"type:text" json:"address,omitempty"`
	CountryID *uuid.UUID     `gorm:"type:uuid;index" json:"country_id,omitempty"`
	CityID    *uuid.UUID     `gorm:"type:uuid;index" json:"city_id,omitempty"`
	SectorID  *uuid.UUID     `gorm:"type:uuid;index" json:"sector_id,omitempty"`
	Notes     *string        `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User        User         `gorm:"foreignKey:UserID" json:"-"`
	Country     *Country     `gorm:"foreignKey:CountryID" json:"country,omitempty"`
	City        *City        `gorm:"foreignKey:CityID" json:"city,omitempty"`
	Sector      *Sector      `gorm:"foreignKey:SectorID" json:"sector,omitempty"`
	Quotations  []Quotation  `gorm:"foreignKey:ClientID" json:"-"`
	Collections []Collection `gorm:"foreignKey:ClientID" json:"-"`
	Contracts   []Contract   `gorm:"foreignKey:ClientID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new client
func (c *Client) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Client model
func (Client) TableName() string {
	return "clients"
}

package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Country is a master-data reference row
type Country struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;unique;not null" json:"name"`
	Code      string         `gorm:"size:10;unique;not null" json:"code"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Cities []City `gorm:"foreignKey:CountryID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new country
func (c *Country) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Country model
func (Country) TableName() string {
	return "countries"
}

// City is a master-data reference row belonging to a country
type City struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	CountryID uuid.UUID      `gorm:"type:uuid;not null;index" json:"country_id"`
	Name      string         `gorm:"size:255;not null" json:"name"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Country Country `gorm:"foreignKey:CountryID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new city
func (c *City) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the City model
func (City) TableName() string {
	return "cities"
}

// Sector is a master-data business-sector row used to classify clients
type Sector struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	Name      string         `gorm:"size:255;unique;not null" json:"name"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new sector
func (s *Sector) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Sector model
func (Sector) TableName() string {
	return "sectors"
}

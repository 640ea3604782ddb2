package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/serviflow/serviflow-api/internal/domain/enum"
	"gorm.io/gorm"
)

// ClauseTemplate is a reusable contract clause. Its body may contain
// {{placeholder}} tokens that are substituted at assembly time.
type ClauseTemplate struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Title     string         `gorm:"size:255;not null" json:"title"`
	Body      string         `gorm:"type:text;not null" json:"body"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new clause template
func (c *ClauseTemplate) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ClauseTemplate model
func (ClauseTemplate) TableName() string {
	return "clause_templates"
}

// Contract represents a service contract assembled from ordered clauses
type Contract struct {
	ID         uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	UserID     uuid.UUID           `gorm:"type:uuid;not null;index" json:"user_id"`
	ClientID   *uuid.UUID          `gorm:"type:uuid;index" json:"client_id,omitempty"`
	Number     string              `gorm:"size:100;unique;not null" json:"number"`
	Title      string              `gorm:"size:255;not null" json:"title"`
	ClientName string              `gorm:"size:255" json:"client_name"`
	StartDate  time.Time           `gorm:"type:date;not null" json:"start_date"`
	EndDate    *time.Time          `gorm:"type:date" json:"end_date,omitempty"`
	Amount     float64             `gorm:"type:decimal(15,2);default:0" json:"amount"`
	Body       string              `gorm:"type:text" json:"body"`
	Status     enum.ContractStatus `gorm:"default:0" json:"status"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
	DeletedAt  gorm.DeletedAt      `gorm:"index" json:"-"`

	// Relationships
	User    User             `gorm:"foreignKey:UserID" json:"-"`
	Client  *Client          `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Clauses []ContractClause `gorm:"foreignKey:ContractID" json:"clauses,omitempty"`
}

// BeforeCreate generates a UUID before creating a new contract
func (c *Contract) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Contract model
func (Contract) TableName() string {
	return "contracts"
}

// ContractClause is one clause placed on a contract in a fixed position.
// The text is a copy of the template body at the time it was added, so later
// template edits do not rewrite existing contracts.
type ContractClause struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	ContractID uuid.UUID      `gorm:"type:uuid;not null;index" json:"contract_id"`
	TemplateID *uuid.UUID     `gorm:"type:uuid;index" json:"template_id,omitempty"`
	Position   int            `gorm:"not null" json:"position"`
	Title      string         `gorm:"size:255;not null" json:"title"`
	Body       string         `gorm:"type:text;not null" json:"body"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Contract Contract        `gorm:"foreignKey:ContractID" json:"-"`
	Template *ClauseTemplate `gorm:"foreignKey:TemplateID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new contract clause
func (c *ContractClause) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the ContractClause model
func (ContractClause) TableName() string {
	return "contract_clauses"
}

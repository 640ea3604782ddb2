package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Task represents a calendar task or appointment
type Task struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	ClientID    *uuid.UUID     `gorm:"type:uuid;index" json:"client_id,omitempty"`
	Title       string         `gorm:"size:255;not null" json:"title"`
	Description *string        `gorm:"type:text" json:"description,omitempty"`
	DueAt       time.Time      `gorm:"not null;index" json:"due_at"`
	AllDay      bool           `gorm:"default:false" json:"all_day"`
	Remind      bool           `gorm:"default:false" json:"remind"`
	Done        bool           `gorm:"default:false" json:"done"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	User   User    `gorm:"foreignKey:UserID" json:"-"`
	Client *Client `gorm:"foreignKey:ClientID" json:"client,omitempty"`
}

// BeforeCreate generates a UUID before creating a new task
func (t *Task) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Task model
func (Task) TableName() string {
	return "tasks"
}

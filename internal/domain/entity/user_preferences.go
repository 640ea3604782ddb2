package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserPreferences holds per-user cosmetic and locale settings
type UserPreferences struct {
	ID        uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID      `gorm:"type:uuid;not null;uniqueIndex" json:"user_id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Locale settings
	Language   string `gorm:"size:10;default:'es'" json:"language"`
	Timezone   string `gorm:"size:50;default:'America/Bogota'" json:"timezone"`
	Currency   string `gorm:"size:10;default:'COP'" json:"currency"`
	DateFormat string `gorm:"size:20;default:'DD/MM/YYYY'" json:"date_format"`

	// Appearance settings
	Theme        string `gorm:"size:20;default:'light'" json:"theme"`
	AccentColor  string `gorm:"size:20;default:'#1e6f5c'" json:"accent_color"`
	CompactMode  bool   `gorm:"default:false" json:"compact_mode"`
	SidebarPins  string `gorm:"type:text" json:"sidebar_pins"`

	// Notification settings
	EmailNotifications bool `gorm:"default:true" json:"email_notifications"`
	TaskReminders      bool `gorm:"default:true" json:"task_reminders"`
	QuotationAlerts    bool `gorm:"default:true" json:"quotation_alerts"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating new preferences
func (p *UserPreferences) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the UserPreferences model
func (UserPreferences) TableName() string {
	return "user_preferences"
}

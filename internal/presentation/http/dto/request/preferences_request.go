package request

// UpdatePreferencesRequest represents a partial preferences update
type UpdatePreferencesRequest struct {
	Language           *string `json:"language" binding:"omitempty,min=2,max=10"`
	Timezone           *string `json:"timezone" binding:"omitempty,max=64"`
	Currency           *string `json:"currency" binding:"omitempty,len=3"`
	DateFormat         *string `json:"date_format" binding:"omitempty,max=20"`
	Theme              *string `json:"theme" binding:"omitempty,oneof=light dark system"`
	AccentColor        *string `json:"accent_color" binding:"omitempty,max=20"`
	CompactMode        *bool   `json:"compact_mode"`
	SidebarPins        *string `json:"sidebar_pins" binding:"omitempty,max=1000"`
	EmailNotifications *bool   `json:"email_notifications"`
	TaskReminders      *bool   `json:"task_reminders"`
	QuotationAlerts    *bool   `json:"quotation_alerts"`
}

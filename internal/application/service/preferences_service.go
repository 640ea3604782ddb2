package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/serviflow/serviflow-api/internal/domain/entity"
	"github.com/serviflow/serviflow-api/internal/domain/repository"
	"github.com/serviflow/serviflow-api/pkg/apperror"
)

var validThemes = map[string]bool{
	"light":  true,
	"dark":   true,
	"system": true,
}

// PreferencesService handles per-user locale, appearance and notification
// settings. Missing rows are materialized with defaults on first read.
type PreferencesService struct {
	prefsRepo repository.PreferencesRepository
}

// NewPreferencesService creates a new preferences service
func NewPreferencesService(prefsRepo repository.PreferencesRepository) *PreferencesService {
	return &PreferencesService{prefsRepo: prefsRepo}
}

// GetPreferences returns the user's preferences, creating the row with
// defaults when it does not exist yet.
func (s *PreferencesService) GetPreferences(ctx context.Context, userID uuid.UUID) (*entity.UserPreferences, error) {
	prefs, err := s.prefsRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if prefs != nil {
		return prefs, nil
	}

	prefs = defaultPreferences(userID)
	if err := s.prefsRepo.Create(ctx, prefs); err != nil {
		return nil, err
	}
	return prefs, nil
}

func defaultPreferences(userID uuid.UUID) *entity.UserPreferences {
	return &entity.UserPreferences{
		UserID:             userID,
		Language:           "es",
		Timezone:           "America/Bogota",
		Currency:           "COP",
		DateFormat:         "DD/MM/YYYY",
		Theme:              "light",
		AccentColor:        "#1e6f5c",
		EmailNotifications: true,
		TaskReminders:      true,
		QuotationAlerts:    true,
	}
}

// UpdatePreferencesInput represents a partial preferences update
type UpdatePreferencesInput struct {
	UserID             uuid.UUID
	Language           *string
	Timezone           *string
	Currency           *string
	DateFormat         *string
	Theme              *string
	AccentColor        *string
	CompactMode        *bool
	SidebarPins        *string
	EmailNotifications *bool
	TaskReminders      *bool
	QuotationAlerts    *bool
}

// UpdatePreferences applies a partial update to the user's preferences
func (s *PreferencesService) UpdatePreferences(ctx context.Context, input *UpdatePreferencesInput) (*entity.UserPreferences, error) {
	prefs, err := s.GetPreferences(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Theme != nil {
		if !validThemes[*input.Theme] {
			return nil, apperror.NewValidationError("theme must be light, dark or system")
		}
		prefs.Theme = *input.Theme
	}
	if input.Language != nil {
		prefs.Language = *input.Language
	}
	if input.Timezone != nil {
		prefs.Timezone = *input.Timezone
	}
	if input.Currency != nil {
		prefs.Currency = *input.Currency
	}
	if input.DateFormat != nil {
		prefs.DateFormat = *input.DateFormat
	}
	if input.AccentColor != nil {
		prefs.AccentColor = *input.AccentColor
	}
	if input.CompactMode != nil {
		prefs.CompactMode = *input.CompactMode
	}
	if input.SidebarPins != nil {
		prefs.SidebarPins = *input.SidebarPins
	}
	if input.EmailNotifications != nil {
		prefs.EmailNotifications = *input.EmailNotifications
	}
	if input.TaskReminders != nil {
		prefs.TaskReminders = *input.TaskReminders
	}
	if input.QuotationAlerts != nil {
		prefs.QuotationAlerts = *input.QuotationAlerts
	}

	if err := s.prefsRepo.Update(ctx, prefs); err != nil {
		return nil, err
	}
	return prefs, nil
}

package services

import (
	"context"

	"github.com/globopersona/marketing-dashboard/internal/models"
	"github.com/globopersona/marketing-dashboard/internal/repositories"
)

// SettingsService handles the platform preference toggles
type SettingsService struct {
	settingsRepo repositories.SettingsRepository
}

// NewSettingsService creates a new SettingsService
func NewSettingsService(settingsRepo repositories.SettingsRepository) *SettingsService {
	return &SettingsService{
		settingsRepo: settingsRepo,
	}
}

// GetSettings retrieves all settings with the dark-mode toggle reflecting
// the mirrored darkMode key
func (s *SettingsService) GetSettings(ctx context.Context) ([]models.Setting, error) {
	settings, err := s.settingsRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	dark, err := s.settingsRepo.GetDarkMode(ctx)
	if err != nil {
		return nil, err
	}
	for i := range settings {
		if settings[i].Title == models.SettingDarkMode {
			settings[i].Enabled = dark
		}
	}
	return settings, nil
}

// ToggleSetting flips a setting and returns its new state, (nil, nil) when
// the ID is unknown
func (s *SettingsService) ToggleSetting(ctx context.Context, id int64) (*models.Setting, error) {
	return s.settingsRepo.Toggle(ctx, id)
}

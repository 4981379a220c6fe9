package localstore

import (
	"context"

	"github.com/globopersona/marketing-dashboard/internal/models"
	"github.com/globopersona/marketing-dashboard/internal/repositories"
	"github.com/globopersona/marketing-dashboard/internal/store"
)

// SettingsRepository implements repositories.SettingsRepository. The five
// toggles live under the settings key; the dark-mode flag is additionally
// mirrored into the darkMode key as the string "true"/"false", matching the
// original persisted layout.
type SettingsRepository struct {
	st  store.Store
	col *collection[models.Setting]
}

// NewSettingsRepository creates a new SettingsRepository
func NewSettingsRepository(st store.Store) repositories.SettingsRepository {
	return &SettingsRepository{
		st:  st,
		col: newCollection(st, store.KeySettings, seedSettings()),
	}
}

// FindAll returns all settings
func (r *SettingsRepository) FindAll(ctx context.Context) ([]models.Setting, error) {
	return r.col.all()
}

// Toggle flips the matching setting and returns its new state
func (r *SettingsRepository) Toggle(ctx context.Context, id int64) (*models.Setting, error) {
	var toggled *models.Setting
	err := r.col.mutate(func(settings []models.Setting) []models.Setting {
		for i := range settings {
			if settings[i].ID == id {
				settings[i].Enabled = !settings[i].Enabled
				cp := settings[i]
				toggled = &cp
				break
			}
		}
		return settings
	})
	if err != nil {
		return nil, err
	}
	if toggled != nil && toggled.Title == models.SettingDarkMode {
		if err := r.SetDarkMode(ctx, toggled.Enabled); err != nil {
			return nil, err
		}
	}
	return toggled, nil
}

// GetDarkMode reads the mirrored dark-mode flag
func (r *SettingsRepository) GetDarkMode(ctx context.Context) (bool, error) {
	doc, found, err := r.st.Get(store.KeyDarkMode)
	if err != nil {
		return false, err
	}
	return found && string(doc) == "true", nil
}

// SetDarkMode writes the mirrored dark-mode flag
func (r *SettingsRepository) SetDarkMode(ctx context.Context, enabled bool) error {
	if enabled {
		return r.st.Set(store.KeyDarkMode, []byte("true"))
	}
	return r.st.Set(store.KeyDarkMode, []byte("false"))
}

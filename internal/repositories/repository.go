package repositories

import (
	"context"

	"github.com/globopersona/marketing-dashboard/internal/models"
)

// UserRepository defines the interface for user account data operations
type UserRepository interface {
	FindAll(ctx context.Context) ([]models.User, error)
	// FindByEmail returns (nil, nil) when no account has the email.
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	// Save replaces the stored record holding the same email.
	Save(ctx context.Context, user *models.User) error
}

// SessionRepository persists the single current-user session document
type SessionRepository interface {
	// Get returns (nil, nil) when no session is persisted.
	Get(ctx context.Context) (*models.User, error)
	Set(ctx context.Context, user *models.User) error
	Clear(ctx context.Context) error
}

// CampaignRepository defines the interface for campaign data operations
type CampaignRepository interface {
	FindAll(ctx context.Context) ([]models.Campaign, error)
	// FindByID returns (nil, nil) when the ID is not present.
	FindByID(ctx context.Context, id int64) (*models.Campaign, error)
	Create(ctx context.Context, campaign *models.Campaign) error
	// Update merges the patch into the matching record. A missing ID is a
	// silent no-op returning (nil, nil); the sequence is still rewritten.
	Update(ctx context.Context, id int64, patch models.CampaignPatch) (*models.Campaign, error)
	// Delete removes the matching record; absent IDs leave the collection
	// unchanged.
	Delete(ctx context.Context, id int64) error
}

// ContactRepository defines the interface for contact data operations.
// Contacts have no update operation.
type ContactRepository interface {
	FindAll(ctx context.Context) ([]models.Contact, error)
	Create(ctx context.Context, contact *models.Contact) error
	Delete(ctx context.Context, id int64) error
}

// SettingsRepository defines the interface for the settings toggles and the
// mirrored dark-mode flag
type SettingsRepository interface {
	FindAll(ctx context.Context) ([]models.Setting, error)
	// Toggle flips the named setting and returns its new state, or
	// (nil, nil) when the ID is unknown.
	Toggle(ctx context.Context, id int64) (*models.Setting, error)
	GetDarkMode(ctx context.Context) (bool, error)
	SetDarkMode(ctx context.Context, enabled bool) error
}

package localstore

import (
	"context"

	"github.com/globopersona/marketing-dashboard/internal/models"
	"github.com/globopersona/marketing-dashboard/internal/repositories"
	"github.com/globopersona/marketing-dashboard/internal/store"
)

// ContactRepository implements repositories.ContactRepository over the
// contacts store key
type ContactRepository struct {
	col *collection[models.Contact]
}

// NewContactRepository creates a new ContactRepository
func NewContactRepository(st store.Store) repositories.ContactRepository {
	return &ContactRepository{
		col: newCollection(st, store.KeyContacts, seedContacts()),
	}
}

// FindAll returns all contacts, newest-first
func (r *ContactRepository) FindAll(ctx context.Context) ([]models.Contact, error) {
	return r.col.all()
}

// Create prepends a new contact
func (r *ContactRepository) Create(ctx context.Context, contact *models.Contact) error {
	return r.col.mutate(func(contacts []models.Contact) []models.Contact {
		return append([]models.Contact{*contact}, contacts...)
	})
}

// Delete removes the matching contact
func (r *ContactRepository) Delete(ctx context.Context, id int64) error {
	return r.col.mutate(func(contacts []models.Contact) []models.Contact {
		filtered := contacts[:0]
		for _, c := range contacts {
			if c.ID != id {
				filtered = append(filtered, c)
			}
		}
		return filtered
	})
}

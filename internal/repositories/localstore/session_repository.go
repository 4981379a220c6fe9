package localstore

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/globopersona/marketing-dashboard/internal/models"
	"github.com/globopersona/marketing-dashboard/internal/repositories"
	"github.com/globopersona/marketing-dashboard/internal/store"
)

// SessionRepository persists the single current-user document under the
// currentUser store key
type SessionRepository struct {
	st store.Store
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository(st store.Store) repositories.SessionRepository {
	return &SessionRepository{st: st}
}

// Get returns the persisted session user, or (nil, nil) when logged out
func (r *SessionRepository) Get(ctx context.Context) (*models.User, error) {
	doc, found, err := r.st.Get(store.KeyCurrentUser)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, nil
	}
	var user models.User
	if err := json.Unmarshal(doc, &user); err != nil {
		return nil, fmt.Errorf("decode %s: %w", store.KeyCurrentUser, err)
	}
	return &user, nil
}

// Set persists the session user
func (r *SessionRepository) Set(ctx context.Context, user *models.User) error {
	doc, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode %s: %w", store.KeyCurrentUser, err)
	}
	return r.st.Set(store.KeyCurrentUser, doc)
}

// Clear removes the session
func (r *SessionRepository) Clear(ctx context.Context) error {
	return r.st.Remove(store.KeyCurrentUser)
}

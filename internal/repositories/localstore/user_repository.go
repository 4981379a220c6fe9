package localstore

import (
	"context"

	"github.com/globopersona/marketing-dashboard/internal/models"
	"github.com/globopersona/marketing-dashboard/internal/repositories"
	"github.com/globopersona/marketing-dashboard/internal/store"
)

// UserRepository implements repositories.UserRepository over the users
// store key. The users collection has no sample dataset; it starts empty.
type UserRepository struct {
	col *collection[models.User]
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(st store.Store) repositories.UserRepository {
	return &UserRepository{
		col: newCollection(st, store.KeyUsers, []models.User{}),
	}
}

// FindAll returns all registered users
func (r *UserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	return r.col.all()
}

// FindByEmail finds a user by exact email. Email is the natural unique key;
// lookup is case-sensitive as stored.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	users, err := r.col.all()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], nil
		}
	}
	return nil, nil
}

// Create appends a new user
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	return r.col.mutate(func(users []models.User) []models.User {
		return append(users, *user)
	})
}

// Save replaces the stored record holding the same email, persisting login
// stamps and backfilled fields.
func (r *UserRepository) Save(ctx context.Context, user *models.User) error {
	return r.col.mutate(func(users []models.User) []models.User {
		for i := range users {
			if users[i].Email == user.Email {
				users[i] = *user
			}
		}
		return users
	})
}

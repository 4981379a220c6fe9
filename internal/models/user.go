package models

import "time"

// User represents a dashboard account
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Password     string    `json:"password"` // stored as entered; no hashing in the offline core
	RegisteredAt time.Time `json:"registeredAt"`
	LastLogin    time.Time `json:"lastLogin"`
}

// Sanitized returns a copy safe to hand to API responses.
func (u User) Sanitized() User {
	u.Password = ""
	return u
}

// Package store provides the flat key-value persistence substrate backing
// every collection in the dashboard. Keys are plain names ("users",
// "campaigns", ...), values are JSON documents. A missing key is a defined
// empty state, not an error.
package store

// Store defines the key-value store contract
type Store interface {
	// Get returns the raw document for key. The second return value is
	// false when the key has never been written.
	Get(key string) ([]byte, bool, error)
	// Set overwrites the document for key.
	Set(key string, doc []byte) error
	// Remove deletes the key. Removing an absent key is not an error.
	Remove(key string) error
}

// Well-known store keys. The persisted layout matches the original
// dashboard: one top-level document per collection.
const (
	KeyUsers       = "users"
	KeyCampaigns   = "campaigns"
	KeyContacts    = "contacts"
	KeyCurrentUser = "currentUser"
	KeySettings    = "settings"
	KeyDarkMode    = "darkMode"
)

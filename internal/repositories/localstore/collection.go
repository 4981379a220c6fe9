// Package localstore implements the repository interfaces on top of the
// flat key-value store, mirroring each collection in memory and writing
// through on every mutation.
package localstore

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/globopersona/marketing-dashboard/internal/store"
)

// collection is a typed view over one store key holding an ordered array of
// records. The first load seeds the key with a sample dataset when the key
// has never been written; an existing empty array is left alone.
type collection[T any] struct {
	st   store.Store
	key  string
	seed []T

	mu      sync.RWMutex
	records []T
	loaded  bool
}

func newCollection[T any](st store.Store, key string, seed []T) *collection[T] {
	return &collection[T]{st: st, key: key, seed: seed}
}

// all returns a copy of the current record sequence, loading it first if
// needed.
func (c *collection[T]) all() ([]T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ensureLoaded(); err != nil {
		return nil, err
	}
	out := make([]T, len(c.records))
	copy(out, c.records)
	return out, nil
}

// mutate applies fn to the current sequence under the write lock and
// persists the result, so every read-modify-write is atomic per collection.
func (c *collection[T]) mutate(fn func([]T) []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ensureLoaded(); err != nil {
		return err
	}
	c.records = fn(c.records)
	return c.persist()
}

// ensureLoaded reads the store key into the mirror. Callers must hold the
// write lock.
func (c *collection[T]) ensureLoaded() error {
	if c.loaded {
		return nil
	}
	doc, found, err := c.st.Get(c.key)
	if err != nil {
		return err
	}
	if !found {
		c.records = append([]T(nil), c.seed...)
		c.loaded = true
		return c.persist()
	}
	var records []T
	if err := json.Unmarshal(doc, &records); err != nil {
		return fmt.Errorf("decode %s: %w", c.key, err)
	}
	c.records = records
	c.loaded = true
	return nil
}

func (c *collection[T]) persist() error {
	doc, err := json.Marshal(c.records)
	if err != nil {
		return fmt.Errorf("encode %s: %w", c.key, err)
	}
	return c.st.Set(c.key, doc)
}

package utils

import (
	"sync"
	"time"
)

// IDGenerator issues unique int64 IDs derived from the current time in
// milliseconds. Records created in the same millisecond get strictly
// increasing values instead of colliding.
type IDGenerator struct {
	mu   sync.Mutex
	last int64
}

// NewIDGenerator creates an IDGenerator.
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{}
}

// Next returns the next unique ID.
func (g *IDGenerator) Next() int64 {
	g.mu.Lock()
	defer g.mu.Unlock()
	id := time.Now().UnixMilli()
	if id <= g.last {
		id = g.last + 1
	}
	g.last = id
	return id
}

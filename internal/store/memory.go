// internal/store/memory.go
//
// In-memory implementation of the session Store interface.
// Active games live here while being played; SQLite keeps the
// ownership/result rows. State is lost when the process restarts.
//
// Characteristics:
//   - Stores sessions keyed by ID in a map.
//   - Concurrency-safe via RWMutex (the engine itself is pure; only the
//     map needs guarding).
//   - Save replaces the whole session value — the engine produces a new
//     immutable Game per move, so replacement is the commit.

package store

import (
	"context"
	"errors"
	"sync"

	"scrabble/internal/game"
)

// ErrNotFound is returned by Get for unknown session IDs.
var ErrNotFound = errors.New("session not found")

// Session pairs a server-side identifier with the latest committed
// game value.
type Session struct {
	ID   string
	Game *game.Game
}

// Store defines the persistence interface for active game sessions.
// Implementations may be backed by memory (this package), Redis, SQL, etc.
type Store interface {
	// Save persists or replaces a session.
	Save(ctx context.Context, s *Session) error

	// Get retrieves a session by ID. Returns ErrNotFound if missing.
	Get(ctx context.Context, id string) (*Session, error)

	// Delete removes a session. Deleting an unknown ID is a no-op.
	Delete(ctx context.Context, id string) error
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{sessions: make(map[string]*Session)}
}

// Save adds or replaces the session in the map.
func (m *memory) Save(ctx context.Context, s *Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[s.ID] = s
	return nil
}

// Get looks up a session by ID.
func (m *memory) Get(ctx context.Context, id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.sessions[id]; ok {
		return s, nil
	}
	return nil, ErrNotFound
}

// Delete removes the session from the map.
func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
	return nil
}

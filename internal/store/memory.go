// internal/store/memory.go
//
// In-memory storage for interactive game sessions.
//
// Characteristics:
//   - Stores *game.Game objects keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - Update runs a mutation under the write lock so two guesses on the same
//     game cannot interleave.
//   - State is lost when the process restarts.

package store

import (
	"context"
	"errors"
	"sync"

	"github.com/kellegous/wordle/internal/game"
)

// ErrNotFound is returned for unknown game IDs.
var ErrNotFound = errors.New("not found")

// Sessions defines the persistence interface for game sessions.
type Sessions interface {
	// Save persists or updates a game state.
	Save(ctx context.Context, g *game.Game) error

	// Get returns a copy of the game with the given ID.
	Get(ctx context.Context, id string) (*game.Game, error)

	// Update applies fn to the stored game. Changes made by fn are kept even
	// when it returns an error.
	Update(ctx context.Context, id string, fn func(*game.Game) error) error
}

type memory struct {
	mu    sync.RWMutex          // guards games
	games map[string]*game.Game // keyed by Game.ID
}

// NewMemory constructs an empty in-memory session store.
func NewMemory() Sessions {
	return &memory{games: make(map[string]*game.Game)}
}

func (m *memory) Save(ctx context.Context, g *game.Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.ID] = g
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*game.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *g
	cp.Guesses = append([]game.Guess(nil), g.Guesses...)
	return &cp, nil
}

func (m *memory) Update(ctx context.Context, id string, fn func(*game.Game) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	g, ok := m.games[id]
	if !ok {
		return ErrNotFound
	}
	return fn(g)
}

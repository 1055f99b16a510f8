// internal/store/memory.go
//
// In-memory implementation of the Store interface.
// Caches built games so repeated requests for the same ticket skip the
// placement search.
//
// Characteristics:
//   - Stores *game.Game objects keyed by ID in a map.
//   - Concurrency-safe via a single mutex; Get also refreshes last use.
//   - Entries idle for longer than ttl are dropped; when the cache is full
//     the least recently used game is evicted.
//   - State is lost on eviction or restart; tickets rebuild it on demand.
//   - ErrNotFound is returned for missing or expired game IDs on Get().

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/wordsearch/internal/game"
)

// ErrNotFound reports a cache miss.
var ErrNotFound = errors.New("store: not found")

// Store defines the cache interface for game sessions.
type Store interface {
	// Save adds or replaces a game.
	Save(ctx context.Context, g *game.Game) error

	// Get retrieves a game by ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*game.Game, error)

	// GetOrSave returns the cached game with g's ID if there is one,
	// otherwise stores g and returns it.
	GetOrSave(ctx context.Context, g *game.Game) (*game.Game, error)

	// Len reports how many games are cached.
	Len() int
}

type entry struct {
	g    *game.Game
	used time.Time
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu    sync.Mutex        // guards games
	games map[string]*entry // keyed by Game.ID
	ttl   time.Duration     // idle lifetime; 0 keeps games forever
	max   int               // capacity; 0 is unbounded
	now   func() time.Time
}

// NewMemoryStore constructs a new in-memory Store. Games unused for ttl are
// dropped, and at most maxGames are kept; zero disables either limit.
func NewMemoryStore(ttl time.Duration, maxGames int) Store {
	return &memory{
		games: make(map[string]*entry),
		ttl:   ttl,
		max:   maxGames,
		now:   time.Now,
	}
}

func (m *memory) Save(ctx context.Context, g *game.Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.put(g)
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*game.Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e := m.lookup(id); e != nil {
		return e.g, nil
	}
	return nil, ErrNotFound
}

func (m *memory) GetOrSave(ctx context.Context, g *game.Game) (*game.Game, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if e := m.lookup(g.ID); e != nil {
		return e.g, nil
	}
	m.put(g)
	return g, nil
}

func (m *memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.games)
}

// lookup returns the live entry for id and marks it used. Expired entries
// are removed. Caller holds mu.
func (m *memory) lookup(id string) *entry {
	e, ok := m.games[id]
	if !ok {
		return nil
	}
	now := m.now()
	if m.expired(e, now) {
		delete(m.games, id)
		return nil
	}
	e.used = now
	return e
}

// put stores g after dropping expired games and, if still full, the least
// recently used one. Caller holds mu.
func (m *memory) put(g *game.Game) {
	now := m.now()
	if _, ok := m.games[g.ID]; !ok {
		m.sweep(now)
		if m.max > 0 && len(m.games) >= m.max {
			m.evictOldest()
		}
	}
	m.games[g.ID] = &entry{g: g, used: now}
}

func (m *memory) expired(e *entry, now time.Time) bool {
	return m.ttl > 0 && now.Sub(e.used) > m.ttl
}

func (m *memory) sweep(now time.Time) {
	if m.ttl <= 0 {
		return
	}
	for id, e := range m.games {
		if m.expired(e, now) {
			delete(m.games, id)
		}
	}
}

func (m *memory) evictOldest() {
	var oldest string
	var at time.Time
	for id, e := range m.games {
		if oldest == "" || e.used.Before(at) {
			oldest, at = id, e.used
		}
	}
	if oldest != "" {
		delete(m.games, oldest)
	}
}

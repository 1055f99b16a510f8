package store

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/robalobadob/wordsearch/internal/game"
)

// fakeClock drives a memory store's notion of time.
type fakeClock struct{ t time.Time }

func (c *fakeClock) now() time.Time { return c.t }
func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newClockedStore(ttl time.Duration, maxGames int) (*memory, *fakeClock) {
	clock := &fakeClock{t: time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)}
	m := NewMemoryStore(ttl, maxGames).(*memory)
	m.now = clock.now
	return m, clock
}

func TestSaveAndGet(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(0, 0)

	_, err := s.Get(ctx, "missing")
	require.ErrorIs(t, err, ErrNotFound)

	g := &game.Game{ID: "abc"}
	require.NoError(t, s.Save(ctx, g))
	got, err := s.Get(ctx, "abc")
	require.NoError(t, err)
	require.Same(t, g, got)
	require.Equal(t, 1, s.Len())
}

func TestIdleGamesExpire(t *testing.T) {
	ctx := context.Background()
	s, clock := newClockedStore(time.Hour, 0)

	require.NoError(t, s.Save(ctx, &game.Game{ID: "old"}))
	require.NoError(t, s.Save(ctx, &game.Game{ID: "busy"}))

	clock.advance(40 * time.Minute)
	_, err := s.Get(ctx, "busy") // refreshes last use
	require.NoError(t, err)

	clock.advance(40 * time.Minute)
	_, err = s.Get(ctx, "old")
	require.ErrorIs(t, err, ErrNotFound)
	_, err = s.Get(ctx, "busy")
	require.NoError(t, err)

	// Saving sweeps everything idle past the ttl.
	clock.advance(2 * time.Hour)
	require.NoError(t, s.Save(ctx, &game.Game{ID: "new"}))
	require.Equal(t, 1, s.Len())
}

func TestFullCacheEvictsLeastRecentlyUsed(t *testing.T) {
	ctx := context.Background()
	s, clock := newClockedStore(0, 2)

	require.NoError(t, s.Save(ctx, &game.Game{ID: "a"}))
	clock.advance(time.Second)
	require.NoError(t, s.Save(ctx, &game.Game{ID: "b"}))
	clock.advance(time.Second)
	_, err := s.Get(ctx, "a")
	require.NoError(t, err)
	clock.advance(time.Second)

	require.NoError(t, s.Save(ctx, &game.Game{ID: "c"}))
	require.Equal(t, 2, s.Len())
	_, err = s.Get(ctx, "b")
	require.ErrorIs(t, err, ErrNotFound)
	_, err = s.Get(ctx, "a")
	require.NoError(t, err)

	// Replacing an existing ID never evicts.
	require.NoError(t, s.Save(ctx, &game.Game{ID: "c"}))
	require.Equal(t, 2, s.Len())
}

func TestGetOrSaveKeepsFirst(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(0, 0)

	first := &game.Game{ID: "g"}
	var wg sync.WaitGroup
	results := make([]*game.Game, 50)
	require.NoError(t, s.Save(ctx, first))
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = s.GetOrSave(ctx, &game.Game{ID: "g"})
		}(i)
	}
	wg.Wait()
	for _, got := range results {
		require.Same(t, first, got)
	}

	fresh := &game.Game{ID: "other"}
	got, err := s.GetOrSave(ctx, fresh)
	require.NoError(t, err)
	require.Same(t, fresh, got)
}

func TestGetOrSaveRacesAgree(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(0, 0)

	var wg sync.WaitGroup
	results := make([]*game.Game, 50)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = s.GetOrSave(ctx, &game.Game{ID: "shared"})
		}(i)
	}
	wg.Wait()
	for _, got := range results {
		require.Same(t, results[0], got)
	}
	require.Equal(t, 1, s.Len())
}

func TestConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(time.Hour, 0)

	var wg sync.WaitGroup
	for i := range 100 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("g%d", i%10)
			_ = s.Save(ctx, &game.Game{ID: id})
			_, _ = s.Get(ctx, id)
		}(i)
	}
	wg.Wait()
	require.Equal(t, 10, s.Len())
}

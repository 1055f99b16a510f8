// internal/puzzle/engine.go
//
// Puzzle construction.
// Responsibilities:
//   - Validate the word list against the grid size (fail fast, no partial grid).
//   - Place each word in list order with randomized retry search.
//   - Fill every remaining Empty cell with a uniform random letter.
//
// Notes:
//   - All randomness comes from one PCG source seeded by Options.Seed, so the
//     same words and options always produce the same grid.
//   - Retries are capped per word; exceeding the cap fails the whole build.
package puzzle

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand/v2"
)

const (
	DefaultSize        = 10
	MaxSize            = 64 // largest accepted grid edge
	DefaultMaxAttempts = 50000
)

// Options controls a single Build.
type Options struct {
	Size        int    // grid edge N
	Seed        uint64 // random source seed
	MaxAttempts int    // per-word retry cap; 0 means DefaultMaxAttempts
}

// NewSeed draws a seed for callers that did not supply one.
func NewSeed() uint64 {
	var b [8]byte
	_, _ = crand.Read(b[:])
	return binary.LittleEndian.Uint64(b[:])
}

// Build places every word into a fresh grid and fills the rest with noise.
// Errors wrap ErrInvalidSize, ErrInvalidWord or ErrPlacementExhausted.
func Build(words []string, opts Options) (*Puzzle, error) {
	if opts.Size < 1 || opts.Size > MaxSize {
		return nil, fmt.Errorf("puzzle: %w: %d", ErrInvalidSize, opts.Size)
	}
	for _, w := range words {
		if !validWord(w, opts.Size) {
			return nil, &WordError{Word: w, Err: ErrInvalidWord}
		}
	}
	maxAttempts := opts.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}

	rng := newRand(opts.Seed)
	g := NewGrid(opts.Size)
	placements := make([]Placement, 0, len(words))
	for _, w := range words {
		p, ok := place(g, rng, w, maxAttempts)
		if !ok {
			return nil, &WordError{Word: w, Err: ErrPlacementExhausted}
		}
		placements = append(placements, p)
	}
	fillNoise(g, rng)

	return &Puzzle{
		Grid:       g,
		Seed:       opts.Seed,
		words:      append([]string(nil), words...),
		placements: placements,
	}, nil
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// place draws random starts and directions until the word fits or the cap
// is reached.
func place(g *Grid, rng *rand.Rand, word string, maxAttempts int) (Placement, bool) {
	n := g.Size()
	for range maxAttempts {
		p := Placement{
			Word:  word,
			Start: Cell{Row: rng.IntN(n), Col: rng.IntN(n)},
			Dir:   Directions[rng.IntN(len(Directions))],
		}
		if !canPlace(g, p) {
			continue
		}
		for i, c := range p.Cells() {
			g.set(c, word[i])
		}
		return p, true
	}
	return Placement{}, false
}

// canPlace checks every cell of the run is in bounds and either Empty or
// already holding the same letter.
func canPlace(g *Grid, p Placement) bool {
	for i := 0; i < len(p.Word); i++ {
		b, ok := g.At(p.Start.Add(p.Dir, i))
		if !ok {
			return false
		}
		if b != Empty && b != p.Word[i] {
			return false
		}
	}
	return true
}

func fillNoise(g *Grid, rng *rand.Rand) {
	for i, row := range g.cells {
		for j, b := range row {
			if b == Empty {
				g.cells[i][j] = byte('A' + rng.IntN(26))
			}
		}
	}
}

func validWord(w string, size int) bool {
	if len(w) == 0 || len(w) > size {
		return false
	}
	for i := 0; i < len(w); i++ {
		if !isUpper(w[i]) {
			return false
		}
	}
	return true
}

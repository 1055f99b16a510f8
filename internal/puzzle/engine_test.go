package puzzle

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

var defaultWords = []string{
	"ANTOLIN", "ANTZARA", "MUSIKA", "TXALUPA",
	"PORTUA", "ANTZARRRAK", "KIROLA", "DANTZAK",
}

func TestBuildPlacesEveryWord(t *testing.T) {
	for _, seed := range []uint64{1, 2, 3, 42, 1 << 40} {
		p, err := Build(defaultWords, Options{Size: 12, Seed: seed})
		require.NoError(t, err)

		placements := p.Placements()
		require.Len(t, placements, len(defaultWords))
		for i, pl := range placements {
			require.Equal(t, defaultWords[i], pl.Word)
			got := make([]byte, 0, len(pl.Word))
			for _, c := range pl.Cells() {
				b, ok := p.Grid.At(c)
				require.True(t, ok, "seed %d: %s runs out of bounds at %v", seed, pl.Word, c)
				got = append(got, b)
			}
			require.Equal(t, pl.Word, string(got), "seed %d", seed)
		}
	}
}

func TestBuildFillsEveryCell(t *testing.T) {
	p, err := Build(defaultWords, Options{Size: 12, Seed: 7})
	require.NoError(t, err)
	require.True(t, p.Grid.Filled())
	for _, row := range p.Grid.Rows() {
		for i := 0; i < len(row); i++ {
			require.True(t, row[i] >= 'A' && row[i] <= 'Z', "unexpected cell %q", row[i])
		}
	}
}

func TestBuildOverlapsAgree(t *testing.T) {
	words := []string{"ABCDE", "EDCBA", "CAB", "BEAD"}
	for seed := uint64(0); seed < 20; seed++ {
		p, err := Build(words, Options{Size: 6, Seed: seed})
		require.NoError(t, err)

		owner := map[Cell]byte{}
		for _, pl := range p.Placements() {
			for i, c := range pl.Cells() {
				if prev, ok := owner[c]; ok {
					require.Equal(t, prev, pl.Word[i], "seed %d: conflict at %v", seed, c)
				}
				owner[c] = pl.Word[i]
			}
		}
	}
}

func TestBuildDeterministic(t *testing.T) {
	a, err := Build(defaultWords, Options{Size: 12, Seed: 99})
	require.NoError(t, err)
	b, err := Build(defaultWords, Options{Size: 12, Seed: 99})
	require.NoError(t, err)

	if diff := cmp.Diff(a.Grid.Rows(), b.Grid.Rows()); diff != "" {
		t.Fatalf("grids differ for the same seed (-a +b):\n%s", diff)
	}
	if diff := cmp.Diff(a.Placements(), b.Placements()); diff != "" {
		t.Fatalf("placements differ for the same seed (-a +b):\n%s", diff)
	}

	c, err := Build(defaultWords, Options{Size: 12, Seed: 100})
	require.NoError(t, err)
	require.NotEqual(t, a.Grid.Rows(), c.Grid.Rows())
}

func TestBuildRejectsInvalidWords(t *testing.T) {
	tests := []struct {
		name  string
		words []string
	}{
		{"too long", []string{"CAT", "ELEPHANT"}},
		{"empty", []string{""}},
		{"lowercase", []string{"cat"}},
		{"digit", []string{"C4T"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Build(tt.words, Options{Size: 5, Seed: 1})
			require.Nil(t, p)
			require.ErrorIs(t, err, ErrInvalidWord)

			var we *WordError
			require.True(t, errors.As(err, &we))
		})
	}
}

func TestBuildRejectsInvalidSize(t *testing.T) {
	for _, size := range []int{0, -3, MaxSize + 1, 1 << 62} {
		p, err := Build([]string{"A"}, Options{Size: size})
		require.Nil(t, p)
		require.ErrorIs(t, err, ErrInvalidSize, "size %d", size)
	}

	p, err := Build([]string{"A"}, Options{Size: MaxSize, Seed: 1})
	require.NoError(t, err)
	require.Equal(t, MaxSize, p.Grid.Size())
}

func TestBuildPlacementExhausted(t *testing.T) {
	// A 1×1 grid holds "A"; "B" can never overlap it.
	p, err := Build([]string{"A", "B"}, Options{Size: 1, Seed: 5, MaxAttempts: 50})
	require.Nil(t, p)
	require.ErrorIs(t, err, ErrPlacementExhausted)

	var we *WordError
	require.True(t, errors.As(err, &we))
	require.Equal(t, "B", we.Word)
}

func TestBuildEmptyWordList(t *testing.T) {
	p, err := Build(nil, Options{Size: 4, Seed: 3})
	require.NoError(t, err)
	require.True(t, p.Grid.Filled())
	require.Empty(t, p.Placements())
}

func TestPuzzleWordsIsCopy(t *testing.T) {
	p, err := Build([]string{"CAT"}, Options{Size: 5, Seed: 1})
	require.NoError(t, err)
	w := p.Words()
	w[0] = "DOG"
	require.Equal(t, []string{"CAT"}, p.Words())
}

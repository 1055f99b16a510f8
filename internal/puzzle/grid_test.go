package puzzle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGridEmpty(t *testing.T) {
	g := NewGrid(3)
	require.Equal(t, 3, g.Size())
	require.False(t, g.Filled())
	require.Equal(t, []string{"...", "...", "..."}, g.Rows())
}

func TestGridBounds(t *testing.T) {
	g := NewGrid(4)
	tests := []struct {
		c    Cell
		want bool
	}{
		{Cell{0, 0}, true},
		{Cell{3, 3}, true},
		{Cell{-1, 0}, false},
		{Cell{0, 4}, false},
		{Cell{4, 0}, false},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, g.InBounds(tt.c), "cell %v", tt.c)
		_, ok := g.At(tt.c)
		require.Equal(t, tt.want, ok, "cell %v", tt.c)
	}
}

func TestGridFromRows(t *testing.T) {
	g, err := GridFromRows([]string{"CA.", "...", "..T"})
	require.NoError(t, err)
	b, _ := g.At(Cell{0, 1})
	require.Equal(t, byte('A'), b)
	b, _ = g.At(Cell{1, 1})
	require.Equal(t, Empty, b)
	require.Equal(t, "C A .\n. . .\n. . T\n", g.String())

	_, err = GridFromRows([]string{"AB", "C"})
	require.Error(t, err)
	_, err = GridFromRows([]string{"ab", "cd"})
	require.Error(t, err)
	_, err = GridFromRows(nil)
	require.Error(t, err)
}

func TestPlacementCells(t *testing.T) {
	p := Placement{Word: "CAT", Start: Cell{2, 5}, Dir: Left}
	require.Equal(t, []Cell{{2, 5}, {2, 4}, {2, 3}}, p.Cells())
	require.Equal(t, "left", p.Dir.String())
}

package puzzle

import (
	"errors"
	"fmt"
	"strings"
)

// Grid is a square N×N letter matrix. Cells start as Empty; only the
// placement engine and the noise filler write to it.
type Grid struct {
	n     int
	cells [][]byte
}

// NewGrid returns an n×n grid with every cell set to Empty.
func NewGrid(n int) *Grid {
	cells := make([][]byte, n)
	for i := range cells {
		row := make([]byte, n)
		for j := range row {
			row[j] = Empty
		}
		cells[i] = row
	}
	return &Grid{n: n, cells: cells}
}

// GridFromRows builds a fixed grid from n strings of length n. Each byte must
// be an uppercase letter or Empty.
func GridFromRows(rows []string) (*Grid, error) {
	n := len(rows)
	if n == 0 {
		return nil, errors.New("puzzle: no rows")
	}
	g := NewGrid(n)
	for i, row := range rows {
		if len(row) != n {
			return nil, fmt.Errorf("puzzle: row %d has %d cells, want %d", i, len(row), n)
		}
		for j := 0; j < n; j++ {
			b := row[j]
			if b != Empty && !isUpper(b) {
				return nil, fmt.Errorf("puzzle: row %d col %d: invalid cell %q", i, j, b)
			}
			g.cells[i][j] = b
		}
	}
	return g, nil
}

// Size reports N.
func (g *Grid) Size() int { return g.n }

// InBounds reports whether c lies in [0,N) on both axes.
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.n && c.Col >= 0 && c.Col < g.n
}

// At returns the letter at c. ok is false when c is out of bounds.
func (g *Grid) At(c Cell) (b byte, ok bool) {
	if !g.InBounds(c) {
		return 0, false
	}
	return g.cells[c.Row][c.Col], true
}

func (g *Grid) set(c Cell, b byte) {
	g.cells[c.Row][c.Col] = b
}

// Filled reports whether no cell holds Empty.
func (g *Grid) Filled() bool {
	for _, row := range g.cells {
		for _, b := range row {
			if b == Empty {
				return false
			}
		}
	}
	return true
}

// Rows returns the grid as N strings, top row first.
func (g *Grid) Rows() []string {
	out := make([]string, g.n)
	for i, row := range g.cells {
		out[i] = string(row)
	}
	return out
}

func (g *Grid) String() string {
	var sb strings.Builder
	for _, row := range g.cells {
		for j, b := range row {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(b)
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func isUpper(b byte) bool { return b >= 'A' && b <= 'Z' }

// internal/puzzle/types.go
//
// Core type definitions for the word-search puzzle.
// Defines:
//   - Cell: an explicit (row, col) coordinate.
//   - Direction: a unit step along one axis.
//   - Placement: where a word ended up in the grid.
//   - Puzzle: a fully populated grid plus its word list.

package puzzle

// Empty marks a cell that no placement has written yet.
const Empty byte = '.'

// Cell is a grid coordinate. Rows grow downwards, columns to the right.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Add returns c moved n steps along d.
func (c Cell) Add(d Direction, n int) Cell {
	return Cell{Row: c.Row + n*d.DRow, Col: c.Col + n*d.DCol}
}

// Direction is a unit vector along a single axis.
type Direction struct {
	DRow int `json:"dRow"`
	DCol int `json:"dCol"`
}

var (
	Right = Direction{DCol: +1}
	Left  = Direction{DCol: -1}
	Down  = Direction{DRow: +1}
	Up    = Direction{DRow: -1}
)

// Directions is the placement direction set. Diagonals are not used.
var Directions = [4]Direction{Right, Left, Down, Up}

// String names the direction for logs and JSON views.
func (d Direction) String() string {
	switch d {
	case Right:
		return "right"
	case Left:
		return "left"
	case Down:
		return "down"
	case Up:
		return "up"
	}
	return "none"
}

// Placement records the run of cells a word was written into.
type Placement struct {
	Word  string    `json:"word"`
	Start Cell      `json:"start"`
	Dir   Direction `json:"dir"`
}

// Cells expands the placement into its cell run, first letter first.
func (p Placement) Cells() []Cell {
	out := make([]Cell, len(p.Word))
	for i := range out {
		out[i] = p.Start.Add(p.Dir, i)
	}
	return out
}

// Puzzle is the result of Build: a filled grid and the words hidden in it.
type Puzzle struct {
	Grid       *Grid
	Seed       uint64
	words      []string
	placements []Placement
}

// Words returns a copy of the word list in placement order.
func (p *Puzzle) Words() []string {
	return append([]string(nil), p.words...)
}

// Placements returns a copy of the answer key, one entry per word.
func (p *Puzzle) Placements() []Placement {
	return append([]Placement(nil), p.placements...)
}

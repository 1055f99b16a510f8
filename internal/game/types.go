// internal/game/types.go
//
// Session-level types for one word-search puzzle.
// Defines:
//   - Game: a built puzzle plus the gesture tracker driving it.
//   - View: the renderer snapshot of a game.
//   - Batch: directives and outcomes produced by a run of events.

package game

import (
	"sync"

	"github.com/robalobadob/wordsearch/internal/puzzle"
	"github.com/robalobadob/wordsearch/internal/selection"
	"github.com/robalobadob/wordsearch/internal/ticket"
)

// Game holds the state of a single puzzle session.
type Game struct {
	ID     string             // ticket ID
	Spec   ticket.Spec        // inputs the puzzle was built from
	Puzzle *puzzle.Puzzle     // read-only after New
	mu     sync.Mutex         // serializes gesture events
	track  *selection.Tracker // owns the in-progress gesture
}

// View is what a renderer needs to draw the board.
type View struct {
	ID    string   `json:"id"`
	List  string   `json:"list,omitempty"`
	Size  int      `json:"size"`
	Rows  []string `json:"rows"`
	Words []string `json:"words"`
}

// Batch is the ordered output of Apply.
type Batch struct {
	Directives []selection.Directive `json:"directives"`
	Outcomes   []selection.Outcome   `json:"outcomes"`
}

// internal/selection/types.go
//
// Types exchanged with the rendering/input layer.
// Defines:
//   - Highlight: per-cell display state (unselected/selected/matched/reverted).
//   - Directive: one (cell, highlight) instruction for the renderer.
//   - Event: a discrete start/continue/end input with a resolved cell.
//   - Outcome: the result of validating one completed gesture.

package selection

import "github.com/robalobadob/wordsearch/internal/puzzle"

// Highlight is the display state of a single cell.
type Highlight string

const (
	HighlightUnselected Highlight = "unselected"
	HighlightSelected   Highlight = "selected" // in progress
	HighlightMatched    Highlight = "matched"  // confirmed match
	HighlightReverted   Highlight = "reverted" // mismatch, back to plain
)

// Directive tells the renderer how to paint one cell.
type Directive struct {
	Cell      puzzle.Cell `json:"cell"`
	Highlight Highlight   `json:"highlight"`
}

// EventKind is the gesture phase carried by an Event.
type EventKind string

const (
	EventStart    EventKind = "start"
	EventContinue EventKind = "continue"
	EventEnd      EventKind = "end"
)

// Event is one input from the pointer layer. Cell is ignored for EventEnd.
type Event struct {
	Kind EventKind   `json:"type"`
	Cell puzzle.Cell `json:"cell"`
}

// Outcome describes a completed gesture.
type Outcome struct {
	Path       []puzzle.Cell `json:"path"`
	Selected   string        `json:"selected"`       // letters in selection order
	Word       string        `json:"word,omitempty"` // listed spelling when matched
	Matched    bool          `json:"matched"`
	Directives []Directive   `json:"-"`
}

func paint(cells []puzzle.Cell, h Highlight) []Directive {
	out := make([]Directive, len(cells))
	for i, c := range cells {
		out[i] = Directive{Cell: c, Highlight: h}
	}
	return out
}

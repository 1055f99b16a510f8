// internal/selection/tracker.go
//
// Gesture state machine.
// Responsibilities:
//   - Idle → Active on start: the path becomes [first cell].
//   - Active → Active on continue: append cells that share the first cell's
//     row or column; drop repeats and off-line cells silently.
//   - Active → Idle on end: hand the path to the Validator, then clear it.
//
// Notes:
//   - The line check is against the first cell only, never the previous one,
//     so a path may skip cells or turn back along the same row/column.
//   - Cells outside the grid are stray events and are ignored.
//   - A start while a gesture is still active abandons the old path, even
//     when the new start falls outside the grid.
package selection

import (
	"slices"

	"github.com/robalobadob/wordsearch/internal/puzzle"
)

// Tracker owns the path of the gesture in progress. It is not safe for
// concurrent use; callers deliver events one at a time.
type Tracker struct {
	v    *Validator
	path []puzzle.Cell
}

// NewTracker returns an idle tracker validating against v.
func NewTracker(v *Validator) *Tracker {
	return &Tracker{v: v}
}

// Active reports whether a gesture is in progress.
func (t *Tracker) Active() bool { return len(t.path) > 0 }

// Path returns a copy of the current path.
func (t *Tracker) Path() []puzzle.Cell { return slices.Clone(t.path) }

// Start begins a gesture at c. If a gesture was active, it is dropped and
// the cells it had highlighted are returned as unselected. A start outside
// the grid still drops the old gesture but leaves the tracker idle.
func (t *Tracker) Start(c puzzle.Cell) []Directive {
	var out []Directive
	if len(t.path) > 1 {
		out = paint(t.path[1:], HighlightUnselected)
	}
	t.path = t.path[:0]
	if t.v.grid.InBounds(c) {
		t.path = append(t.path, c)
	}
	return out
}

// Continue offers c to the active gesture. An idle tracker treats it as the
// first cell.
func (t *Tracker) Continue(c puzzle.Cell) []Directive {
	if !t.v.grid.InBounds(c) {
		return nil
	}
	if len(t.path) == 0 {
		t.path = append(t.path, c)
		return nil
	}
	if slices.Contains(t.path, c) {
		return nil
	}
	first := t.path[0]
	if c.Row != first.Row && c.Col != first.Col {
		return nil
	}
	t.path = append(t.path, c)
	return []Directive{{Cell: c, Highlight: HighlightSelected}}
}

// End closes the gesture. ok is false when no gesture was active.
func (t *Tracker) End() (out Outcome, ok bool) {
	if len(t.path) == 0 {
		return Outcome{}, false
	}
	out = t.v.Validate(t.path)
	t.path = t.path[:0]
	return out, true
}

// Result is what a single Apply produced.
type Result struct {
	Directives []Directive
	Outcome    *Outcome
}

// Apply dispatches ev to Start, Continue or End. Unknown kinds are ignored.
func (t *Tracker) Apply(ev Event) Result {
	switch ev.Kind {
	case EventStart:
		return Result{Directives: t.Start(ev.Cell)}
	case EventContinue:
		return Result{Directives: t.Continue(ev.Cell)}
	case EventEnd:
		out, ok := t.End()
		if !ok {
			return Result{}
		}
		return Result{Directives: out.Directives, Outcome: &out}
	}
	return Result{}
}

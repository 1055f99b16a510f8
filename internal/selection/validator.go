package selection

import "github.com/robalobadob/wordsearch/internal/puzzle"

// Options tunes word matching.
type Options struct {
	// MatchBothDirections also accepts a path whose reversed letters spell a
	// listed word. Off by default: a word selected back to front does not match.
	MatchBothDirections bool
}

// Validator resolves selection paths against a grid and word list. It never
// writes to either.
type Validator struct {
	grid  *puzzle.Grid
	words map[string]struct{}
	opts  Options
}

// NewValidator indexes words for exact, case-sensitive lookups.
func NewValidator(g *puzzle.Grid, words []string, opts Options) *Validator {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return &Validator{grid: g, words: set, opts: opts}
}

// Resolve concatenates the letters under path in path order. Cells outside
// the grid contribute nothing.
func (v *Validator) Resolve(path []puzzle.Cell) string {
	buf := make([]byte, 0, len(path))
	for _, c := range path {
		if b, ok := v.grid.At(c); ok {
			buf = append(buf, b)
		}
	}
	return string(buf)
}

// Validate checks the resolved path against the word list and paints every
// path cell matched or reverted.
func (v *Validator) Validate(path []puzzle.Cell) Outcome {
	selected := v.Resolve(path)
	out := Outcome{
		Path:     append([]puzzle.Cell(nil), path...),
		Selected: selected,
	}
	if len(selected) == len(path) && len(path) > 0 {
		if v.has(selected) {
			out.Word, out.Matched = selected, true
		} else if v.opts.MatchBothDirections {
			if rev := reverse(selected); v.has(rev) {
				out.Word, out.Matched = rev, true
			}
		}
	}
	if out.Matched {
		out.Directives = paint(path, HighlightMatched)
	} else {
		out.Directives = paint(path, HighlightReverted)
	}
	return out
}

func (v *Validator) has(w string) bool {
	_, ok := v.words[w]
	return ok
}

func reverse(s string) string {
	b := []byte(s)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return string(b)
}

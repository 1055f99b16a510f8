package puzzle

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidWord: empty, non A–Z, or longer than the grid.
	ErrInvalidWord = errors.New("invalid word")
	// ErrPlacementExhausted: a word found no compatible run within the retry cap.
	ErrPlacementExhausted = errors.New("placement exhausted")
	// ErrInvalidSize: grid edge outside [1, MaxSize].
	ErrInvalidSize = errors.New("invalid grid size")
)

// WordError ties a construction failure to the word that caused it.
type WordError struct {
	Word string
	Err  error
}

func (e *WordError) Error() string {
	return fmt.Sprintf("puzzle: %s: %q", e.Err, e.Word)
}

func (e *WordError) Unwrap() error { return e.Err }

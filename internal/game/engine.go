// internal/game/engine.go
//
// Game session wiring.
// Responsibilities:
//   - Build a puzzle from a ticket spec (deterministic for a given seed).
//   - Own one selection tracker per game and feed it events in order.
//
// Notes:
//   - Events from HTTP and WebSocket clients share the same tracker, so
//     Apply holds the game mutex for the whole run of events.
package game

import (
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordsearch/internal/puzzle"
	"github.com/robalobadob/wordsearch/internal/selection"
	"github.com/robalobadob/wordsearch/internal/ticket"
)

// New builds the puzzle described by spec. maxAttempts caps placement
// retries per word (0 selects the default).
func New(spec ticket.Spec, maxAttempts int) (*Game, error) {
	p, err := puzzle.Build(spec.Words, puzzle.Options{
		Size:        spec.Size,
		Seed:        spec.Seed,
		MaxAttempts: maxAttempts,
	})
	if err != nil {
		return nil, err
	}
	v := selection.NewValidator(p.Grid, p.Words(), selection.Options{
		MatchBothDirections: spec.MatchBothDirections,
	})
	return &Game{
		ID:     spec.ID,
		Spec:   spec,
		Puzzle: p,
		track:  selection.NewTracker(v),
	}, nil
}

// View returns the renderer snapshot.
func (g *Game) View() View {
	return View{
		ID:    g.ID,
		List:  g.Spec.List,
		Size:  g.Puzzle.Grid.Size(),
		Rows:  g.Puzzle.Grid.Rows(),
		Words: g.Puzzle.Words(),
	}
}

// Apply feeds events to the tracker in order and collects everything they
// produced.
func (g *Game) Apply(events ...selection.Event) Batch {
	g.mu.Lock()
	defer g.mu.Unlock()

	b := Batch{Directives: []selection.Directive{}, Outcomes: []selection.Outcome{}}
	for _, ev := range events {
		res := g.track.Apply(ev)
		b.Directives = append(b.Directives, res.Directives...)
		if res.Outcome != nil {
			b.Outcomes = append(b.Outcomes, *res.Outcome)
			log.Debug().
				Str("gameId", g.ID).
				Str("selected", res.Outcome.Selected).
				Bool("matched", res.Outcome.Matched).
				Msg("gesture ended")
		}
	}
	return b
}

// internal/httpserver/routes_puzzle.go
//
// Puzzle routes.
//   - GET  /lists                    → stored word lists and their sizes
//   - POST /puzzles                  → build a puzzle, return ticket + board
//   - GET  /puzzles/{ticket}         → board for an existing ticket
//   - POST /puzzles/{ticket}/events  → run gesture events, return highlights

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordsearch/internal/catalog"
	"github.com/robalobadob/wordsearch/internal/game"
	"github.com/robalobadob/wordsearch/internal/puzzle"
	"github.com/robalobadob/wordsearch/internal/selection"
	"github.com/robalobadob/wordsearch/internal/ticket"
	"github.com/robalobadob/wordsearch/internal/words"
)

func (s *Server) handleLists(w http.ResponseWriter, r *http.Request) {
	lists, err := s.lists.Lists(r.Context())
	if err != nil {
		log.Error().Err(err).Msg("list word lists")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	_ = json.NewEncoder(w).Encode(lists)
}

// newPuzzleReq is the POST /puzzles payload. Every field is optional.
type newPuzzleReq struct {
	List                string   `json:"list"`  // catalog list, default "default"
	Words               []string `json:"words"` // explicit words; overrides List
	Size                *int     `json:"size"`  // default: config grid size, grown to the longest word
	Seed                *uint64  `json:"seed"`
	MatchBothDirections *bool    `json:"matchBothDirections"`
}

// puzzleRes carries a ticket and the board it describes.
type puzzleRes struct {
	Ticket string    `json:"ticket"`
	Date   string    `json:"date,omitempty"`
	Puzzle game.View `json:"puzzle"`
}

// handleNewPuzzle resolves the word list, builds the puzzle, caches it, and
// returns a ticket that can rebuild it later.
func (s *Server) handleNewPuzzle(w http.ResponseWriter, r *http.Request) {
	var req newPuzzleReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	spec := ticket.Spec{
		Size:                s.cfg.GridSize,
		Seed:                puzzle.NewSeed(),
		MatchBothDirections: s.cfg.MatchBothDirections,
	}
	if req.Seed != nil {
		spec.Seed = *req.Seed
	}
	if req.MatchBothDirections != nil {
		spec.MatchBothDirections = *req.MatchBothDirections
	}

	if len(req.Words) > 0 {
		list, err := words.Normalize(req.Words)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_word")
			return
		}
		spec.Words = list
	} else {
		spec.List = req.List
		if spec.List == "" {
			spec.List = words.DefaultList
		}
		list, ok := s.listWords(w, r, spec.List)
		if !ok {
			return
		}
		spec.Words = list
	}

	// Without an explicit size the grid grows to fit the longest word.
	if req.Size != nil {
		spec.Size = *req.Size
	} else {
		spec.Size = min(max(spec.Size, words.Longest(spec.Words)), puzzle.MaxSize)
	}

	res, ok := s.issue(w, r, spec)
	if !ok {
		return
	}
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(res)
}

// listWords loads a catalog list, writing the error response on failure.
func (s *Server) listWords(w http.ResponseWriter, r *http.Request, name string) ([]string, bool) {
	list, err := s.lists.Words(r.Context(), name)
	if errors.Is(err, catalog.ErrListNotFound) {
		writeError(w, http.StatusNotFound, "list_not_found")
		return nil, false
	}
	if err != nil {
		log.Error().Err(err).Str("list", name).Msg("load word list")
		writeError(w, http.StatusInternalServerError, "db_error")
		return nil, false
	}
	return list, true
}

// issue signs spec, builds and caches the game, and returns the response body.
func (s *Server) issue(w http.ResponseWriter, r *http.Request, spec ticket.Spec) (puzzleRes, bool) {
	tok, spec, err := ticket.Issue(s.cfg.JWTSecret, spec, s.cfg.TicketTTL())
	if err != nil {
		log.Error().Err(err).Msg("issue ticket")
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return puzzleRes{}, false
	}
	g, err := game.New(spec, s.cfg.MaxAttempts)
	if err != nil {
		writeBuildError(w, err)
		return puzzleRes{}, false
	}
	if err := s.store.Save(r.Context(), g); err != nil {
		log.Warn().Err(err).Str("gameId", g.ID).Msg("save game")
	}
	log.Info().
		Str("gameId", g.ID).
		Str("list", spec.List).
		Int("size", spec.Size).
		Int("words", len(spec.Words)).
		Msg("puzzle built")
	return puzzleRes{Ticket: tok, Puzzle: g.View()}, true
}

func (s *Server) handleGetPuzzle(w http.ResponseWriter, r *http.Request) {
	g, ok := s.loadGame(w, r)
	if !ok {
		return
	}
	_ = json.NewEncoder(w).Encode(g.View())
}

// eventsReq is the POST /puzzles/{ticket}/events payload.
type eventsReq struct {
	Events []selection.Event `json:"events"`
}

// handleEvents applies a run of gesture events in order. A run may span
// several gestures or stop mid-gesture; the tracker keeps its state between
// requests.
func (s *Server) handleEvents(w http.ResponseWriter, r *http.Request) {
	var req eventsReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	g, ok := s.loadGame(w, r)
	if !ok {
		return
	}
	_ = json.NewEncoder(w).Encode(g.Apply(req.Events...))
}

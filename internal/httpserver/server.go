// internal/httpserver/server.go
//
// HTTP server wiring for the word-search backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/lists".
//   - Puzzle endpoints: POST /puzzles, GET /puzzles/{ticket},
//     POST /puzzles/{ticket}/events, GET /puzzles/{ticket}/ws.
//   - Daily puzzle: GET /daily.
//
// Notes:
//   - A ticket is a signed JWT holding the puzzle's build inputs. Games are
//     cached in memory by ticket ID and rebuilt from the ticket on a miss.
//   - The WebSocket route is mounted outside the timeout group; a gesture
//     stream outlives any single request deadline.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/wordsearch/internal/catalog"
	"github.com/robalobadob/wordsearch/internal/config"
	"github.com/robalobadob/wordsearch/internal/game"
	"github.com/robalobadob/wordsearch/internal/puzzle"
	"github.com/robalobadob/wordsearch/internal/store"
	"github.com/robalobadob/wordsearch/internal/ticket"
)

// WordLists is the read side of the catalog the server needs.
type WordLists interface {
	Words(ctx context.Context, name string) ([]string, error)
	Lists(ctx context.Context) ([]catalog.ListInfo, error)
}

// Server bundles router, config, game cache, and word-list catalog.
type Server struct {
	r     *chi.Mux
	cfg   config.Config
	store store.Store
	lists WordLists
	now   func() time.Time
}

// New constructs a Server, installs middleware, and registers routes.
func New(cfg config.Config, st store.Store, lists WordLists) *Server {
	s := &Server{r: chi.NewRouter(), cfg: cfg, store: st, lists: lists, now: time.Now}

	// --- middleware ---
	s.r.Use(chimw.RequestID) // add X-Request-ID
	s.r.Use(chimw.RealIP)    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer) // recover from panics
	s.r.Use(corsFromOrigin(cfg.ClientOrigin))

	// Gesture stream (no request timeout)
	s.r.Get("/puzzles/{ticket}/ws", s.handleGestureSocket)

	s.r.Group(func(r chi.Router) {
		r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
		r.Use(jsonContentType)                 // default JSON responses

		// --- diagnostics ---
		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write([]byte(`{"service":"wordsearch-go","endpoints":["/health","/lists","POST /puzzles","GET /puzzles/{ticket}","POST /puzzles/{ticket}/events","/puzzles/{ticket}/ws","/daily"]}`))
		})
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewEncoder(w).Encode(map[string]any{"ok": true, "games": s.store.Len()})
		})

		r.Get("/lists", s.handleLists)

		r.Post("/puzzles", s.handleNewPuzzle)
		r.Get("/puzzles/{ticket}", s.handleGetPuzzle)
		r.Post("/puzzles/{ticket}/events", s.handleEvents)

		r.Get("/daily", s.handleDaily)
	})

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsFromOrigin enables credentialed CORS for a single origin.
func corsFromOrigin(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ------------------------------- games -------------------------------------

// loadGame resolves the {ticket} URL param to a cached or rebuilt game.
// On failure it has already written the error response.
func (s *Server) loadGame(w http.ResponseWriter, r *http.Request) (*game.Game, bool) {
	spec, err := ticket.Parse(s.cfg.JWTSecret, chi.URLParam(r, "ticket"))
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid_ticket")
		return nil, false
	}
	if g, err := s.store.Get(r.Context(), spec.ID); err == nil {
		return g, true
	}

	g, err := game.New(spec, s.cfg.MaxAttempts)
	if err != nil {
		writeBuildError(w, err)
		return nil, false
	}
	// Concurrent misses on one ticket must end up sharing a single game.
	cached, err := s.store.GetOrSave(r.Context(), g)
	if err != nil {
		log.Warn().Err(err).Str("gameId", g.ID).Msg("cache rebuilt game")
		return g, true
	}
	if cached == g {
		log.Debug().Str("gameId", g.ID).Msg("rebuilt game from ticket")
	}
	return cached, true
}

// ------------------------------- helpers -----------------------------------

// writeError writes {"error": code} with the given status.
func writeError(w http.ResponseWriter, status int, code string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": code})
}

// writeBuildError maps puzzle construction failures to HTTP responses.
func writeBuildError(w http.ResponseWriter, err error) {
	body := map[string]string{}
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, puzzle.ErrInvalidWord):
		status, body["error"] = http.StatusBadRequest, "invalid_word"
	case errors.Is(err, puzzle.ErrInvalidSize):
		status, body["error"] = http.StatusBadRequest, "invalid_size"
	case errors.Is(err, puzzle.ErrPlacementExhausted):
		status, body["error"] = http.StatusUnprocessableEntity, "placement_exhausted"
	default:
		body["error"] = "build_failed"
		log.Error().Err(err).Msg("build puzzle")
	}
	var we *puzzle.WordError
	if errors.As(err, &we) {
		body["word"] = we.Word
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/rs/zerolog/log"
	"golang.org/x/net/websocket"

	"github.com/robalobadob/wordsearch/internal/game"
	"github.com/robalobadob/wordsearch/internal/selection"
)

// socketFrame is sent back for every event frame received.
type socketFrame struct {
	Directives []selection.Directive `json:"directives"`
	Outcome    *selection.Outcome    `json:"outcome,omitempty"`
	Error      string                `json:"error,omitempty"`
}

// handleGestureSocket upgrades to a WebSocket that carries one selection
// Event per client frame and answers each with a socketFrame.
func (s *Server) handleGestureSocket(w http.ResponseWriter, r *http.Request) {
	g, ok := s.loadGame(w, r)
	if !ok {
		return
	}
	websocket.Handler(func(conn *websocket.Conn) {
		defer conn.Close()
		log.Debug().Str("gameId", g.ID).Msg("gesture socket opened")
		serveGestures(conn, g)
		log.Debug().Str("gameId", g.ID).Msg("gesture socket closed")
	}).ServeHTTP(w, r)
}

func serveGestures(conn *websocket.Conn, g *game.Game) {
	for {
		var ev selection.Event
		err := websocket.JSON.Receive(conn, &ev)
		if errors.Is(err, io.EOF) {
			return
		}
		var frame socketFrame
		if err != nil {
			if !isDecodeError(err) {
				log.Debug().Err(err).Str("gameId", g.ID).Msg("gesture socket receive")
				return
			}
			frame = socketFrame{Directives: []selection.Directive{}, Error: "bad_event"}
		} else {
			b := g.Apply(ev)
			frame.Directives = b.Directives
			if len(b.Outcomes) > 0 {
				frame.Outcome = &b.Outcomes[0]
			}
		}
		if err := websocket.JSON.Send(conn, frame); err != nil {
			log.Debug().Err(err).Str("gameId", g.ID).Msg("gesture socket send")
			return
		}
	}
}

// isDecodeError reports whether err came from a malformed frame rather than
// the connection.
func isDecodeError(err error) bool {
	var syn *json.SyntaxError
	var typ *json.UnmarshalTypeError
	return errors.As(err, &syn) || errors.As(err, &typ)
}

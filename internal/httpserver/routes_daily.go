// internal/httpserver/routes_daily.go
//
// Daily puzzle route.
//   - GET /daily → a fresh ticket for today's puzzle.
//
// Every ticket issued on the same UTC day shares the list and seed, so all
// players see the same board, but each ticket gets its own ID and therefore
// its own gesture tracker.

package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/robalobadob/wordsearch/internal/daily"
	"github.com/robalobadob/wordsearch/internal/ticket"
)

func (s *Server) handleDaily(w http.ResponseWriter, r *http.Request) {
	now := s.now()
	list, ok := s.listWords(w, r, s.cfg.DailyList)
	if !ok {
		return
	}
	res, ok := s.issue(w, r, ticket.Spec{
		List:                s.cfg.DailyList,
		Words:               list,
		Size:                s.cfg.GridSize,
		Seed:                daily.Seed(now, s.cfg.DailySalt),
		MatchBothDirections: s.cfg.MatchBothDirections,
	})
	if !ok {
		return
	}
	res.Date = daily.DateKey(now)
	_ = json.NewEncoder(w).Encode(res)
}

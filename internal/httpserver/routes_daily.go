// internal/httpserver/routes_daily.go
//
// Daily puzzle endpoints under /daily:
//   - POST /daily/new  → start a game on today's solution.
//   - GET  /daily/stats → distribution of finished daily games for a date
//     (default today). Requires a database.
//
// Daily games are ordinary sessions that carry their puzzle number, so their
// outcome can be recorded when they finish.

package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/kellegous/wordle/internal/daily"
	"github.com/kellegous/wordle/internal/game"
	"github.com/kellegous/wordle/internal/store"
)

func (s *Server) mountDaily() {
	s.r.Route("/daily", func(r chi.Router) {
		r.Post("/new", s.handleDailyNew)
		r.Get("/stats", s.handleDailyStats)
	})
}

type dailyNewRes struct {
	GameID string `json:"gameId"`
	Number int    `json:"number"`
	Date   string `json:"date"`
}

func (s *Server) handleDailyNew(w http.ResponseWriter, r *http.Request) {
	now := s.opts.Now()
	num := daily.Number(now)
	answer, ok := daily.Pick(s.opts.Lists.Solutions, num)
	if !ok {
		writeError(w, http.StatusServiceUnavailable, "no_solutions")
		return
	}

	g := game.NewDaily(answer, num)
	if err := s.opts.Sessions.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Msg("save daily game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}

	writeJSON(w, http.StatusOK, dailyNewRes{GameID: g.ID, Number: num, Date: daily.DateKey(daily.Date(num))})
}

// recordDaily persists a finished daily game. Failures are logged only.
func (s *Server) recordDaily(r *http.Request, g *game.Game) {
	if !g.Daily || s.opts.DB == nil {
		return
	}
	num := g.Puzzle

	err := s.opts.DB.RecordDaily(r.Context(), store.DailyResult{
		GameID:  g.ID,
		Date:    daily.DateKey(daily.Date(num)),
		Number:  num,
		Guesses: len(g.Guesses),
		Won:     g.Won,
	})
	if err != nil {
		log.Warn().Err(err).Str("gameId", g.ID).Msg("record daily result")
	}
}

func (s *Server) handleDailyStats(w http.ResponseWriter, r *http.Request) {
	if s.opts.DB == nil {
		writeError(w, http.StatusServiceUnavailable, "no_database")
		return
	}
	date := r.URL.Query().Get("date")
	if date == "" {
		date = daily.DateKey(daily.Date(daily.Number(s.opts.Now())))
	}
	st, err := s.opts.DB.Daily(r.Context(), date)
	if err != nil {
		log.Error().Err(err).Str("date", date).Msg("daily stats")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	writeJSON(w, http.StatusOK, st)
}

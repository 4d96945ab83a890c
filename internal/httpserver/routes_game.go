// internal/httpserver/routes_game.go
//
// Interactive game endpoints:
//   - POST /game/new   → start a game, optionally with a fixed answer.
//   - POST /game/guess → score a guess against the game's answer.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/kellegous/wordle/internal/game"
	"github.com/kellegous/wordle/internal/store"
	"github.com/kellegous/wordle/internal/words"
)

func (s *Server) mountGame() {
	s.r.Post("/game/new", s.handleNewGame)
	s.r.Post("/game/guess", s.handleGuess)
}

type newGameReq struct {
	Answer string `json:"answer"` // optional fixed answer (testing)
}

type newGameRes struct {
	GameID string `json:"gameId"`
}

// handleNewGame creates a game with a random answer unless one is given.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	_ = json.NewDecoder(r.Body).Decode(&req)

	answer := words.Random(s.opts.Lists.Solutions)
	if req.Answer != "" {
		a, err := words.Parse(strings.ToLower(strings.TrimSpace(req.Answer)))
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_word")
			return
		}
		answer = a
	}

	g := game.New(answer)
	if err := s.opts.Sessions.Save(r.Context(), g); err != nil {
		log.Error().Err(err).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	writeJSON(w, http.StatusOK, newGameRes{GameID: g.ID})
}

type guessReq struct {
	GameID string `json:"gameId"`
	Guess  string `json:"guess"`
}

type guessRes struct {
	Feedback string `json:"feedback"`
	Emoji    string `json:"emoji"`
	State    string `json:"state"` // "playing" | "won" | "lost"
}

// handleGuess validates the guess against the allowed list and applies it.
func (s *Server) handleGuess(w http.ResponseWriter, r *http.Request) {
	var req guessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	word, err := words.Parse(strings.ToLower(strings.TrimSpace(req.Guess)))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_word")
		return
	}
	if !s.opts.Lists.IsAllowed(word) {
		writeError(w, http.StatusBadRequest, "word_not_allowed")
		return
	}

	var (
		fb       game.Feedback
		state    string
		finished *game.Game
	)
	err = s.opts.Sessions.Update(r.Context(), req.GameID, func(g *game.Game) error {
		var err error
		fb, state, err = g.ApplyGuess(word)
		if err == nil && g.Finished {
			cp := *g
			finished = &cp
		}
		return err
	})
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
		return
	case errors.Is(err, game.ErrGameFinished):
		writeError(w, http.StatusConflict, "game_finished")
		return
	case err != nil:
		log.Error().Err(err).Str("gameId", req.GameID).Msg("apply guess")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}

	if finished != nil {
		s.recordDaily(r, finished)
	}
	writeJSON(w, http.StatusOK, guessRes{Feedback: fb.String(), Emoji: fb.Emoji(), State: state})
}

// guessView is the wire form of a scored guess.
type guessView struct {
	Word     string `json:"word"`
	Feedback string `json:"feedback"`
	Emoji    string `json:"emoji"`
}

func transcriptView(sol game.Solution) []guessView {
	out := make([]guessView, 0, len(sol))
	for _, g := range sol {
		out = append(out, guessView{
			Word:     g.Word.String(),
			Feedback: g.Feedback.String(),
			Emoji:    g.Feedback.Emoji(),
		})
	}
	return out
}

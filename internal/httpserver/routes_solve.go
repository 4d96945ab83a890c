// internal/httpserver/routes_solve.go
//
// POST /solve runs a named solver strategy against a given solution using
// the loaded guess list.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/kellegous/wordle/internal/solver"
	"github.com/kellegous/wordle/internal/words"
)

func (s *Server) mountSolve() {
	s.r.Post("/solve", s.handleSolve)
}

type solveReq struct {
	Solution string `json:"solution"`
	Strategy string `json:"strategy"` // default "greedy"
}

type solveRes struct {
	Solution string      `json:"solution"`
	Strategy string      `json:"strategy"`
	Guesses  []guessView `json:"guesses"`
	Solved   bool        `json:"solved"`
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	var req solveReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	sol, err := words.Parse(strings.ToLower(strings.TrimSpace(req.Solution)))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_word")
		return
	}
	if req.Strategy == "" {
		req.Strategy = "greedy"
	}
	strategy, err := solver.Lookup(req.Strategy)
	if err != nil {
		writeError(w, http.StatusBadRequest, "unknown_strategy")
		return
	}

	guesses, err := strategy(s.opts.Lists.Guesses, sol)
	if errors.Is(err, solver.ErrNoCandidate) {
		writeError(w, http.StatusUnprocessableEntity, "no_candidate")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "solve_failed")
		return
	}
	writeJSON(w, http.StatusOK, solveRes{
		Solution: sol.String(),
		Strategy: req.Strategy,
		Guesses:  transcriptView(guesses),
		Solved:   true,
	})
}

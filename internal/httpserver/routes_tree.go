// internal/httpserver/routes_tree.go
//
// Decision-tree endpoints:
//   - GET /tree/next?feedback=... → next guess after the given feedback
//     sequence (repeat the parameter once per round).
//   - GET /tree/play?solution=... → full replay against a solution.
//   - PUT /tree (admin)           → replace the served tree with a JSON tree
//     or, for text/plain bodies, a strategy listing.

package httpserver

import (
	"errors"
	"mime"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/kellegous/wordle/internal/dtree"
	"github.com/kellegous/wordle/internal/game"
	"github.com/kellegous/wordle/internal/words"
)

// maxTreeBody bounds uploaded trees.
const maxTreeBody = 32 << 20

func (s *Server) mountTree() {
	s.r.Get("/tree/next", s.handleTreeNext)
	s.r.Get("/tree/play", s.handleTreePlay)
	s.r.With(s.requireAdmin()).Put("/tree", s.handleTreePut)
}

type treeNextRes struct {
	Word string `json:"word"`
	Leaf bool   `json:"leaf"`
}

func (s *Server) handleTreeNext(w http.ResponseWriter, r *http.Request) {
	root := s.Tree()
	if root == nil {
		writeError(w, http.StatusServiceUnavailable, "no_tree")
		return
	}

	var fbs []game.Feedback
	for _, v := range r.URL.Query()["feedback"] {
		fb, err := game.ParseFeedback(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_feedback")
			return
		}
		fbs = append(fbs, fb)
	}

	n, err := dtree.Walk(root, fbs)
	if errors.Is(err, dtree.ErrTreeLookupMiss) {
		writeError(w, http.StatusNotFound, "lookup_miss")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "walk_failed")
		return
	}
	writeJSON(w, http.StatusOK, treeNextRes{Word: n.Word.String(), Leaf: n.IsLeaf()})
}

type treePlayRes struct {
	Solution string      `json:"solution"`
	Guesses  []guessView `json:"guesses"`
}

func (s *Server) handleTreePlay(w http.ResponseWriter, r *http.Request) {
	root := s.Tree()
	if root == nil {
		writeError(w, http.StatusServiceUnavailable, "no_tree")
		return
	}
	sol, err := words.Parse(strings.ToLower(r.URL.Query().Get("solution")))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_word")
		return
	}

	guesses, err := dtree.Play(root, sol)
	if errors.Is(err, dtree.ErrTreeLookupMiss) {
		writeError(w, http.StatusNotFound, "lookup_miss")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "play_failed")
		return
	}
	writeJSON(w, http.StatusOK, treePlayRes{Solution: sol.String(), Guesses: transcriptView(guesses)})
}

type treePutRes struct {
	Word      string `json:"word"`
	Nodes     int    `json:"nodes"`
	Depth     int    `json:"depth"`
	Persisted bool   `json:"persisted"`
}

func (s *Server) handleTreePut(w http.ResponseWriter, r *http.Request) {
	body := http.MaxBytesReader(w, r.Body, maxTreeBody)

	var (
		root *dtree.Node
		err  error
	)
	if mt, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type")); mt == "text/plain" {
		root, err = dtree.ReadStrategy(body)
	} else {
		root, err = dtree.ReadJSON(body)
	}
	if err != nil {
		log.Info().Err(err).Msg("rejected tree upload")
		writeError(w, http.StatusBadRequest, "invalid_tree")
		return
	}

	res := treePutRes{Word: root.Word.String(), Nodes: root.Size(), Depth: root.Depth()}
	if s.opts.DB != nil {
		if err := s.opts.DB.SaveTree(r.Context(), DefaultTreeName, root); err != nil {
			log.Error().Err(err).Msg("save tree")
			writeError(w, http.StatusInternalServerError, "save_failed")
			return
		}
		res.Persisted = true
	}
	s.setTree(root)

	log.Info().Str("root", res.Word).Int("nodes", res.Nodes).Msg("tree replaced")
	writeJSON(w, http.StatusOK, res)
}

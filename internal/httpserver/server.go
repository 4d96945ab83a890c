// internal/httpserver/server.go
//
// HTTP server wiring for the wordle service.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health", "/debug/words".
//   - Game endpoints: POST /game/new, POST /game/guess.
//   - Daily endpoints: mounted under /daily.
//   - Solver and decision-tree endpoints: POST /solve, /tree/*.
//   - Admin token issue and the bearer-token guard for tree uploads.
//
// Notes:
//   - The served tree is swapped atomically under an RWMutex; readers walk
//     a tree that is never mutated after it is installed.
//   - The database is optional. Without one, uploads are kept in memory and
//     daily stats are unavailable.

package httpserver

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"github.com/kellegous/wordle/internal/dtree"
	"github.com/kellegous/wordle/internal/store"
	"github.com/kellegous/wordle/internal/words"
)

// DefaultTreeName is the name the served tree is persisted under.
const DefaultTreeName = "default"

// Options are the dependencies of a Server. Lists and Sessions are required.
type Options struct {
	Lists        *words.Lists
	Sessions     store.Sessions
	DB           *store.DB   // optional
	Tree         *dtree.Node // optional initial tree
	ClientOrigin string
	Auth         AuthOptions
	Now          func() time.Time
}

// AuthOptions configure admin tokens. With an empty PasswordHash no token
// can be issued and tree uploads are rejected.
type AuthOptions struct {
	Secret       string
	PasswordHash string
	TTL          time.Duration
}

// Server bundles the router and the state shared by handlers.
type Server struct {
	r    *chi.Mux
	opts Options

	treeMu sync.RWMutex
	tree   *dtree.Node
}

// New constructs a Server, installs middleware, and registers routes.
func New(opts Options) *Server {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.ClientOrigin == "" {
		opts.ClientOrigin = "http://localhost:5173"
	}
	if opts.Auth.Secret == "" {
		opts.Auth.Secret = "dev_secret_change_me"
	}
	if opts.Auth.TTL <= 0 {
		opts.Auth.TTL = 7 * 24 * time.Hour
	}

	s := &Server{
		r:    chi.NewRouter(),
		opts: opts,
		tree: opts.Tree,
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(cors(opts.ClientOrigin))

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"service": "wordle",
			"endpoints": []string{
				"/health", "POST /game/new", "POST /game/guess", "POST /daily/new",
				"POST /solve", "/tree/next", "/tree/play", "PUT /tree", "POST /auth/token",
			},
		})
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	})
	s.r.Get("/debug/words", func(w http.ResponseWriter, r *http.Request) {
		a, g := opts.Lists.Stats()
		writeJSON(w, http.StatusOK, map[string]int{"answers": a, "allowed": g})
	})

	s.mountGame()
	s.mountDaily()
	s.mountSolve()
	s.mountTree()
	s.mountAuth()

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

// Tree returns the served tree, or nil.
func (s *Server) Tree() *dtree.Node {
	s.treeMu.RLock()
	defer s.treeMu.RUnlock()
	return s.tree
}

func (s *Server) setTree(n *dtree.Node) {
	s.treeMu.Lock()
	s.tree = n
	s.treeMu.Unlock()
}

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ------------------------------- small util --------------------------------

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("write response")
	}
}

// writeError writes {"error":code}. Codes are fixed identifiers, never
// user input.
func writeError(w http.ResponseWriter, status int, code string) {
	http.Error(w, `{"error":"`+code+`"}`, status)
}

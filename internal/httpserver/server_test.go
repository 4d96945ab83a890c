package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/kellegous/wordle/internal/dtree"
	"github.com/kellegous/wordle/internal/store"
	"github.com/kellegous/wordle/internal/words"
)

var (
	answers = words.MustParseAll("crane", "nymph", "abide", "fresh", "crust", "helix", "croak")
	extra   = words.MustParseAll("abcde", "fghij", "klmno", "pqrst", "uvwxy")

	// 2022-01-01 is puzzle 196; 196 % 7 == 0.
	today = time.Date(2022, time.January, 1, 9, 30, 0, 0, time.UTC)
)

type fixture struct {
	srv      *Server
	db       *store.DB
	sessions store.Sessions
	now      time.Time
}

func newFixture(t *testing.T, withDB bool) *fixture {
	t.Helper()
	f := &fixture{now: today, sessions: store.NewMemory()}

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)

	if withDB {
		f.db, err = store.Open(filepath.Join(t.TempDir(), "wordle.db"))
		require.NoError(t, err)
		t.Cleanup(func() { f.db.Close() })
	}

	tree, err := dtree.NewBuilder(extra).Build(context.Background(), extra)
	require.NoError(t, err)

	f.srv = New(Options{
		Lists:    words.NewLists(answers, extra),
		Sessions: f.sessions,
		DB:       f.db,
		Tree:     tree,
		Auth: AuthOptions{
			Secret:       "test-secret",
			PasswordHash: string(hash),
			TTL:          time.Hour,
		},
		Now: func() time.Time { return f.now },
	})
	return f
}

func (f *fixture) do(t *testing.T, method, path, body string, hdr ...string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for i := 0; i+1 < len(hdr); i += 2 {
		req.Header.Set(hdr[i], hdr[i+1])
	}
	rec := httptest.NewRecorder()
	f.srv.Router().ServeHTTP(rec, req)

	var out map[string]any
	if rec.Body.Len() > 0 {
		require.NoError(t, json.NewDecoder(bytes.NewReader(rec.Body.Bytes())).Decode(&out), rec.Body.String())
	}
	return rec.Code, out
}

func (f *fixture) token(t *testing.T) string {
	t.Helper()
	code, res := f.do(t, http.MethodPost, "/auth/token", `{"password":"hunter22"}`)
	require.Equal(t, http.StatusOK, code)
	return res["token"].(string)
}

func TestDiagnostics(t *testing.T) {
	f := newFixture(t, false)

	code, res := f.do(t, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, true, res["ok"])

	code, res = f.do(t, http.MethodGet, "/debug/words", "")
	assert.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, len(answers), res["answers"])
	assert.EqualValues(t, len(answers)+len(extra), res["allowed"])

	code, res = f.do(t, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "not_found", res["error"])

	req := httptest.NewRequest(http.MethodOptions, "/game/new", nil)
	rec := httptest.NewRecorder()
	f.srv.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestGameFlow(t *testing.T) {
	f := newFixture(t, false)

	code, res := f.do(t, http.MethodPost, "/game/new", `{"answer":"NYMPH"}`)
	require.Equal(t, http.StatusOK, code)
	id := res["gameId"].(string)
	require.NotEmpty(t, id)

	guess := func(w string) (int, map[string]any) {
		return f.do(t, http.MethodPost, "/game/guess", `{"gameId":"`+id+`","guess":"`+w+`"}`)
	}

	code, res = guess("crane")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "xxxyx", res["feedback"])
	assert.Equal(t, "⬛⬛⬛🟨⬛", res["emoji"])
	assert.Equal(t, "playing", res["state"])

	code, res = guess("zzzzz")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "word_not_allowed", res["error"])

	code, res = guess("cr4ne")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "invalid_word", res["error"])

	code, res = guess("nymph")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ggggg", res["feedback"])
	assert.Equal(t, "won", res["state"])

	code, res = guess("crane")
	assert.Equal(t, http.StatusConflict, code)
	assert.Equal(t, "game_finished", res["error"])

	code, _ = f.do(t, http.MethodPost, "/game/guess", `{"gameId":"missing","guess":"crane"}`)
	assert.Equal(t, http.StatusNotFound, code)

	code, _ = f.do(t, http.MethodPost, "/game/guess", `{`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = f.do(t, http.MethodPost, "/game/new", `{"answer":"toolong"}`)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestDaily(t *testing.T) {
	f := newFixture(t, true)

	code, res := f.do(t, http.MethodPost, "/daily/new", "")
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 196, res["number"])
	assert.Equal(t, "2022-01-01", res["date"])
	id := res["gameId"].(string)

	g, err := f.sessions.Get(context.Background(), id)
	require.NoError(t, err)
	assert.True(t, g.Daily)
	assert.Equal(t, 196, g.Puzzle)

	code, res = f.do(t, http.MethodPost, "/game/guess", `{"gameId":"`+id+`","guess":"crane"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "won", res["state"])

	// A free game with the same answer is not a daily result.
	code, res = f.do(t, http.MethodPost, "/game/new", `{"answer":"crane"}`)
	require.Equal(t, http.StatusOK, code)
	code, _ = f.do(t, http.MethodPost, "/game/guess", `{"gameId":"`+res["gameId"].(string)+`","guess":"crane"}`)
	require.Equal(t, http.StatusOK, code)

	code, res = f.do(t, http.MethodGet, "/daily/stats", "")
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 1, res["played"])
	assert.EqualValues(t, 1, res["won"])
	assert.Equal(t, map[string]any{"1": float64(1)}, res["histogram"])

	code, res = f.do(t, http.MethodGet, "/daily/stats?date=2021-06-19", "")
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 0, res["played"])

	nodb := newFixture(t, false)
	code, _ = nodb.do(t, http.MethodGet, "/daily/stats", "")
	assert.Equal(t, http.StatusServiceUnavailable, code)
}

func TestSolve(t *testing.T) {
	f := newFixture(t, false)

	code, res := f.do(t, http.MethodPost, "/solve", `{"solution":"fghij"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "greedy", res["strategy"])
	guesses := res["guesses"].([]any)
	require.Len(t, guesses, 2)
	assert.Equal(t, "abcde", guesses[0].(map[string]any)["word"])
	assert.Equal(t, "ggggg", guesses[1].(map[string]any)["feedback"])

	code, res = f.do(t, http.MethodPost, "/solve", `{"solution":"uvwxy","strategy":"matching"}`)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, res["guesses"], 5)

	code, res = f.do(t, http.MethodPost, "/solve", `{"solution":"nymph"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, "no_candidate", res["error"])

	code, res = f.do(t, http.MethodPost, "/solve", `{"solution":"fghij","strategy":"optimal"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "unknown_strategy", res["error"])
}

func TestTreeNextAndPlay(t *testing.T) {
	f := newFixture(t, false)

	code, res := f.do(t, http.MethodGet, "/tree/next", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "abcde", res["word"])
	assert.Equal(t, false, res["leaf"])

	code, res = f.do(t, http.MethodGet, "/tree/next?feedback=XXXXX&feedback=bbbbb&feedback=xxxxx&feedback=xxxxx", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "uvwxy", res["word"])
	assert.Equal(t, true, res["leaf"])

	code, res = f.do(t, http.MethodGet, "/tree/next?feedback=gxxxx", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "lookup_miss", res["error"])

	code, res = f.do(t, http.MethodGet, "/tree/next?feedback=xx", "")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "invalid_feedback", res["error"])

	code, res = f.do(t, http.MethodGet, "/tree/play?solution=klmno", "")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, res["guesses"], 3)

	code, _ = f.do(t, http.MethodGet, "/tree/play?solution=zzzzz", "")
	assert.Equal(t, http.StatusNotFound, code)

	f.srv.setTree(nil)
	code, _ = f.do(t, http.MethodGet, "/tree/next", "")
	assert.Equal(t, http.StatusServiceUnavailable, code)
}

func TestAuth(t *testing.T) {
	f := newFixture(t, false)

	code, res := f.do(t, http.MethodPost, "/auth/token", `{"password":"wrong"}`)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, "invalid_credentials", res["error"])

	code, _ = f.do(t, http.MethodPut, "/tree", `{"word":"salet"}`)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, _ = f.do(t, http.MethodPut, "/tree", `{"word":"salet"}`, "Authorization", "Bearer nonsense")
	assert.Equal(t, http.StatusUnauthorized, code)

	tok := f.token(t)
	f.now = f.now.Add(2 * time.Hour)
	code, res = f.do(t, http.MethodPut, "/tree", `{"word":"salet"}`, "Authorization", "Bearer "+tok)
	assert.Equal(t, http.StatusUnauthorized, code, "expired")
	assert.Equal(t, "invalid_token", res["error"])

	disabled := New(Options{Lists: words.NewLists(answers, extra), Sessions: store.NewMemory()})
	req := httptest.NewRequest(http.MethodPost, "/auth/token", strings.NewReader(`{"password":""}`))
	rec := httptest.NewRecorder()
	disabled.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestTreePut(t *testing.T) {
	f := newFixture(t, true)
	auth := "Bearer " + f.token(t)

	code, res := f.do(t, http.MethodPut, "/tree",
		`{"word":"salet","next":{"xxxxx":{"word":"courd"}}}`,
		"Authorization", auth, "Content-Type", "application/json")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "salet", res["word"])
	assert.EqualValues(t, 2, res["nodes"])
	assert.Equal(t, true, res["persisted"])

	code, res = f.do(t, http.MethodGet, "/tree/next?feedback=bbbbb", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "courd", res["word"])

	saved, err := f.db.LoadTree(context.Background(), DefaultTreeName)
	require.NoError(t, err)
	assert.Equal(t, "salet", saved.Word.String())

	strategy := "salet BBBBB1 courd BBBYB2 nymph GGGGG3\n                   GGGGG2\n"
	code, res = f.do(t, http.MethodPut, "/tree", strategy,
		"Authorization", auth, "Content-Type", "text/plain; charset=utf-8")
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 3, res["nodes"])
	assert.EqualValues(t, 3, res["depth"])

	code, res = f.do(t, http.MethodPut, "/tree", "garbage", "Authorization", auth, "Content-Type", "text/plain")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "invalid_tree", res["error"])

	code, res = f.do(t, http.MethodPut, "/tree", `{"word":"salet","next":{"xxxxx":null}}`,
		"Authorization", auth, "Content-Type", "application/json")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "invalid_tree", res["error"])

	code, res = f.do(t, http.MethodGet, "/tree/next?feedback=bbbbb&feedback=bbbyb", "")
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "nymph", res["word"], "failed upload keeps the previous tree")
}

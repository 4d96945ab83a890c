// internal/words/words.go
//
// Word list management for the solvers and the tree builder.
//
// Responsibilities:
//   - Load the solution and guess lists from files or fall back to embedded defaults.
//   - Keep an allowed-guess set (solutions ∪ guesses) for quick lookups.
//   - Supply helpers like Random and IsAllowed.
//
// Load behavior:
//   1. If both an answers path and an allowed path are given,
//      solutions come from the first and guesses from the second.
//   2. If only the allowed path is given, that list serves as both.
//   3. If only the answers path is given, that list serves as both.
//   4. Otherwise the embedded defaults from the assets package are used.
//
// List format: one word per line, trimmed and lowercased; blank lines and
// lines starting with '#' are skipped. Any other line must parse as a Word.

package words

import (
	"bufio"
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/kellegous/wordle/assets"
)

// Lists holds the loaded word lists. Order is preserved from the source
// since solvers and the tree builder are order-sensitive.
type Lists struct {
	Solutions []Word
	Guesses   []Word

	allowed map[Word]struct{}
}

// NewLists builds Lists from in-memory slices.
func NewLists(solutions, guesses []Word) *Lists {
	l := &Lists{Solutions: solutions, Guesses: guesses}
	l.allowed = toSet(solutions)
	for _, w := range guesses {
		l.allowed[w] = struct{}{}
	}
	return l
}

// Load reads the word lists following the rules in the file header.
func Load(answersPath, allowedPath string) (*Lists, error) {
	var sols, guesses []Word
	var err error

	switch {
	case answersPath != "" && allowedPath != "":
		if sols, err = ReadFile(answersPath); err != nil {
			return nil, err
		}
		if guesses, err = ReadFile(allowedPath); err != nil {
			return nil, err
		}

	case allowedPath != "":
		if guesses, err = ReadFile(allowedPath); err != nil {
			return nil, err
		}
		sols = guesses

	case answersPath != "":
		if sols, err = ReadFile(answersPath); err != nil {
			return nil, err
		}
		guesses = sols

	default:
		if sols, err = readEmbedded(assets.AnswersFile); err != nil {
			return nil, err
		}
		if guesses, err = readEmbedded(assets.AllowedFile); err != nil {
			return nil, err
		}
	}

	if len(sols) == 0 {
		return nil, errors.New("words: solutions list is empty")
	}
	return NewLists(sols, guesses), nil
}

// ReadFile loads a word list from path.
func ReadFile(path string) ([]Word, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	ws, err := ReadList(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ws, nil
}

// ReadList parses one word per line from r.
func ReadList(r io.Reader) ([]Word, error) {
	var out []Word
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		s := strings.TrimSpace(strings.ToLower(sc.Text()))
		if s == "" || strings.HasPrefix(s, "#") {
			continue
		}
		w, err := Parse(s)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		out = append(out, w)
	}
	return out, sc.Err()
}

// ReadDictionary extracts candidate words from a general dictionary such as
// /usr/share/dict/words. Unlike ReadList it skips every entry that is not
// exactly five letters a-z after lowercasing, and keeps only the first
// occurrence of each word.
func ReadDictionary(r io.Reader) ([]Word, error) {
	seen := mapset.NewThreadUnsafeSet[Word]()
	var out []Word
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		w, err := Parse(strings.TrimSpace(strings.ToLower(sc.Text())))
		if err != nil || !seen.Add(w) {
			continue
		}
		out = append(out, w)
	}
	return out, sc.Err()
}

func readEmbedded(name string) ([]Word, error) {
	f, err := assets.FS.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadList(f)
}

// toSet converts a list of words into a lookup set.
func toSet(list []Word) map[Word]struct{} {
	m := make(map[Word]struct{}, len(list))
	for _, w := range list {
		m[w] = struct{}{}
	}
	return m
}

// IsAllowed reports whether w may be guessed (solutions ∪ guesses).
func (l *Lists) IsAllowed(w Word) bool {
	_, ok := l.allowed[w]
	return ok
}

// Stats returns counts of loaded words: (solutions, allowed).
func (l *Lists) Stats() (solutions int, allowed int) {
	return len(l.Solutions), len(l.allowed)
}

// Random returns a cryptographically random word from list.
// The zero Word is returned for an empty list.
func Random(list []Word) Word {
	if len(list) == 0 {
		return Word{}
	}
	n, _ := rand.Int(rand.Reader, big.NewInt(int64(len(list))))
	return list[n.Int64()]
}

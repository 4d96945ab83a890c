package dtree

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kellegous/wordle/internal/game"
	"github.com/kellegous/wordle/internal/words"
)

// ErrMalformedStrategy is returned for strategy text that cannot be parsed.
var ErrMalformedStrategy = errors.New("malformed strategy")

const (
	rootWidth   = 6  // "salet "
	tailWidth   = 7  // " GGGGG3"
	recordWidth = 13 // "BBBYB2 nymph "
)

// ReadStrategy parses a published strategy listing into a tree.
//
// Each line is one solution's path: the root word, then records of feedback,
// a guess count and the next word, ending in the final all-green feedback:
//
//	salet BBBBB1 courd BBBYB2 nymph GGGGG3
//
// Lines after the first may omit a prefix shared with the line above by
// blanking it out; the blanked columns are taken from the previous line.
func ReadStrategy(r io.Reader) (*Node, error) {
	sc := bufio.NewScanner(r)

	var (
		root *Node
		prev string
		num  int
	)
	for sc.Scan() {
		num++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		if root == nil {
			if len(line) < words.Size {
				return nil, fmt.Errorf("%w: line %d: too short", ErrMalformedStrategy, num)
			}
			w, err := words.Parse(strings.ToLower(line[:words.Size]))
			if err != nil {
				return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedStrategy, num, err)
			}
			root = Leaf(w)
		} else {
			line = splice(prev, line)
		}

		path, err := parsePath(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedStrategy, num, err)
		}
		root.AddGuesses(path)
		prev = line
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if root == nil {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedStrategy)
	}
	return root, nil
}

// splice fills the leading blank columns of curr from prev.
func splice(prev, curr string) string {
	n := strings.IndexFunc(curr, func(r rune) bool {
		return r != ' ' && r != '\t'
	})
	if n < 0 {
		n = len(prev)
	}
	if n > len(prev) {
		n = len(prev)
	}
	if n > len(curr) {
		return prev[:n]
	}
	return prev[:n] + curr[n:]
}

// parsePath reads the records between the root word and the final feedback.
func parsePath(line string) ([]game.Guess, error) {
	end := len(line) - tailWidth
	switch {
	case end < words.Size:
		return nil, errors.New("too short")
	case end <= rootWidth:
		// The root word is the solution.
		return nil, nil
	}
	s := line[rootWidth:end]

	n := (len(s) + 1) / recordWidth
	path := make([]game.Guess, 0, n)
	for i := 0; i < n; i++ {
		off := recordWidth * i
		if off+12 > len(s) {
			return nil, fmt.Errorf("record %d truncated", i+1)
		}
		fb, err := game.ParseFeedback(s[off : off+words.Size])
		if err != nil {
			return nil, err
		}
		w, err := words.Parse(strings.ToLower(s[off+7 : off+12]))
		if err != nil {
			return nil, err
		}
		path = append(path, game.Guess{Word: w, Feedback: fb})
	}
	return path, nil
}

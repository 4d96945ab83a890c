// Package solver plays a puzzle against a known solution by narrowing a
// candidate pool with the feedback from each guess.
//
// Two strategies are provided:
//   - Greedy:   constraint model plus ranking by the least resolved position.
//   - Matching: filter-only, keeping words consistent with each guess.
//
// Both guess the first word of the pool each round, so the order of the
// input list matters.
package solver

import (
	"errors"
	"fmt"
	"sort"

	"github.com/kellegous/wordle/internal/charset"
	"github.com/kellegous/wordle/internal/game"
	"github.com/kellegous/wordle/internal/words"
)

// ErrNoCandidate means the pool emptied before the solution was guessed.
var ErrNoCandidate = errors.New("no candidate left")

// Strategy solves one puzzle. On failure the partial transcript is returned
// along with the error.
type Strategy func(candidates []words.Word, solution words.Word) (game.Solution, error)

// Strategies maps strategy names to implementations.
var Strategies = map[string]Strategy{
	"greedy":   Greedy,
	"matching": Matching,
}

// Lookup returns the named strategy.
func Lookup(name string) (Strategy, error) {
	s, ok := Strategies[name]
	if !ok {
		names := make([]string, 0, len(Strategies))
		for n := range Strategies {
			names = append(names, n)
		}
		sort.Strings(names)
		return nil, fmt.Errorf("unknown strategy %q (want one of %v)", name, names)
	}
	return s, nil
}

// Greedy guesses the pool's top word, tightens the constraints with the
// feedback, re-ranks the pool by Score against the least resolved position
// and keeps only words that satisfy the constraints.
func Greedy(candidates []words.Word, solution words.Word) (game.Solution, error) {
	var transcript game.Solution
	cons := NewConstraints()
	pool := NewPool(candidates)

	for {
		w, ok := pool.First()
		if !ok {
			return transcript, fmt.Errorf("%s: %w", solution, ErrNoCandidate)
		}

		guess := game.NewGuess(w, solution)
		transcript = append(transcript, guess)
		if guess.IsAllGreen() {
			return transcript, nil
		}

		cons.Add(guess)
		chars := cons.UniqueChars()
		pool.Rank(func(w words.Word) int { return Score(w, chars) })
		pool = pool.Filter(cons.IsSatisfiedBy)
	}
}

// Score counts the distinct letters of w that are in chars.
func Score(w words.Word, chars charset.Set) int {
	return charset.FromWord(w).Intersect(chars).Len()
}

// Matching guesses the pool's top word and keeps the words consistent with
// that guess's feedback, without any ranking.
func Matching(candidates []words.Word, solution words.Word) (game.Solution, error) {
	var transcript game.Solution
	pool := NewPool(candidates)

	for {
		w, ok := pool.First()
		if !ok {
			return transcript, fmt.Errorf("%s: %w", solution, ErrNoCandidate)
		}

		guess := game.NewGuess(w, solution)
		transcript = append(transcript, guess)
		if guess.IsAllGreen() {
			return transcript, nil
		}

		pool.FilterInPlace(guess.Matches)
	}
}

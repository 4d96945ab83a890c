package solver

import (
	"sort"

	"golang.org/x/exp/constraints"

	"github.com/kellegous/wordle/internal/game"
	"github.com/kellegous/wordle/internal/words"
)

// MaxGuesses is the number of guesses a real game allows. Solutions that need
// more count as failures in Stats.
const MaxGuesses = 6

// Result is the outcome for one solution in a batch.
type Result struct {
	Solution words.Word
	Guesses  game.Solution
	Err      error
}

// Solved reports whether the strategy reached the solution, in any number
// of guesses.
func (r Result) Solved() bool { return r.Err == nil }

// Stats summarizes guess counts over a batch. Only solved results contribute
// to the guess distribution; errored results are counted in Errors.
type Stats struct {
	Total     int
	Solved    int
	Errors    int
	Failed    int // errors plus solves needing more than MaxGuesses
	Median    int
	Max       int
	Mean      float64
	Histogram map[int]int
}

// SolveAll runs s for every solution using candidates as the guess list.
// A failure on one solution is recorded in its Result and does not stop the
// batch. done, when non-nil, is called after each solution.
func SolveAll(candidates, solutions []words.Word, s Strategy, done func(Result)) ([]Result, Stats) {
	results := make([]Result, 0, len(solutions))
	for _, sol := range solutions {
		guesses, err := s(candidates, sol)
		r := Result{Solution: sol, Guesses: guesses, Err: err}
		results = append(results, r)
		if done != nil {
			done(r)
		}
	}
	return results, Summarize(results)
}

// Summarize computes Stats for results.
func Summarize(results []Result) Stats {
	st := Stats{Total: len(results), Histogram: map[int]int{}}
	var counts []int
	for _, r := range results {
		if !r.Solved() {
			st.Errors++
			st.Failed++
			continue
		}
		n := len(r.Guesses)
		st.Solved++
		st.Histogram[n]++
		if n > MaxGuesses {
			st.Failed++
		}
		counts = append(counts, n)
	}
	if len(counts) == 0 {
		return st
	}
	sort.Ints(counts)
	st.Median = counts[len(counts)/2]
	st.Max = counts[len(counts)-1]
	st.Mean = mean(counts)
	return st
}

func mean[T constraints.Integer | constraints.Float](xs []T) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum T
	for _, x := range xs {
		sum += x
	}
	return float64(sum) / float64(len(xs))
}

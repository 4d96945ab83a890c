package solver

import (
	"fmt"
	"slices"
	"sort"

	"github.com/kellegous/wordle/internal/charset"
	"github.com/kellegous/wordle/internal/game"
	"github.com/kellegous/wordle/internal/words"
)

// Ranked is a word with the score it was ordered by.
type Ranked struct {
	Word  words.Word
	Score float64
}

// Ranker orders a word list for use as a guess list. Greedy and the tree
// builder both take the first workable word, so this order decides their
// output.
type Ranker func([]words.Word) []Ranked

// Rankers maps ranker names to implementations.
var Rankers = map[string]Ranker{
	"frequency": RankByFrequency,
	"partition": RankByPartition,
}

// LookupRanker returns the ranker registered under name.
func LookupRanker(name string) (Ranker, error) {
	r, ok := Rankers[name]
	if !ok {
		names := make([]string, 0, len(Rankers))
		for n := range Rankers {
			names = append(names, n)
		}
		sort.Strings(names)
		return nil, fmt.Errorf("unknown ranker %q (want one of %v)", name, names)
	}
	return r, nil
}

// RankByFrequency scores each word by summing, over its distinct letters,
// how often that letter occurs across the whole list. Higher scores come
// first; ties are alphabetical.
func RankByFrequency(ws []words.Word) []Ranked {
	var freq [words.AlphabetSize]int
	for _, w := range ws {
		for _, c := range w {
			freq[c]++
		}
	}

	out := make([]Ranked, len(ws))
	for i, w := range ws {
		score := 0
		for _, c := range charset.FromWord(w).Symbols() {
			score += freq[c]
		}
		out[i] = Ranked{Word: w, Score: float64(score)}
	}
	slices.SortFunc(out, func(a, b Ranked) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		}
		return a.Word.Compare(b.Word)
	})
	return out
}

// RankByPartition scores each word w by the mean size of the classes the
// rest of the list falls into, where another word g lands in the class of
// Score(g, w). Smaller means finer classes, and those words come first.
// Equal scores keep list order.
func RankByPartition(ws []words.Word) []Ranked {
	out := make([]Ranked, len(ws))
	for i, w := range ws {
		classes := map[game.Feedback]int{}
		for _, g := range ws {
			if g == w {
				continue
			}
			classes[game.Score(g, w)]++
		}
		sizes := make([]int, 0, len(classes))
		for _, n := range classes {
			sizes = append(sizes, n)
		}
		out[i] = Ranked{Word: w, Score: mean(sizes)}
	}
	slices.SortStableFunc(out, func(a, b Ranked) int {
		switch {
		case a.Score < b.Score:
			return -1
		case a.Score > b.Score:
			return 1
		}
		return 0
	})
	return out
}

// Words returns the words of rs in order.
func Words(rs []Ranked) []words.Word {
	out := make([]words.Word, len(rs))
	for i, r := range rs {
		out[i] = r.Word
	}
	return out
}

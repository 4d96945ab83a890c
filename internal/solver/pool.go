package solver

import (
	"sort"

	"github.com/kellegous/wordle/internal/words"
)

// Pool is an ordered collection of candidate words. It owns its storage; the
// first word is the current best candidate.
type Pool struct {
	words []words.Word
}

// NewPool copies ws into a new pool.
func NewPool(ws []words.Word) *Pool {
	return &Pool{words: append([]words.Word(nil), ws...)}
}

// Len is the number of candidates left.
func (p *Pool) Len() int { return len(p.words) }

// First returns the top-ranked candidate.
func (p *Pool) First() (words.Word, bool) {
	if len(p.words) == 0 {
		return words.Word{}, false
	}
	return p.words[0], true
}

// Words returns a copy of the candidates in order.
func (p *Pool) Words() []words.Word {
	return append([]words.Word(nil), p.words...)
}

// Contains reports whether w is still a candidate.
func (p *Pool) Contains(w words.Word) bool {
	for _, x := range p.words {
		if x == w {
			return true
		}
	}
	return false
}

// Filter returns a new pool with the words for which keep is true, in order.
func (p *Pool) Filter(keep func(words.Word) bool) *Pool {
	out := make([]words.Word, 0, len(p.words))
	for _, w := range p.words {
		if keep(w) {
			out = append(out, w)
		}
	}
	return &Pool{words: out}
}

// FilterInPlace drops the words for which keep is false, reusing storage.
func (p *Pool) FilterInPlace(keep func(words.Word) bool) {
	n := 0
	for _, w := range p.words {
		if keep(w) {
			p.words[n] = w
			n++
		}
	}
	p.words = p.words[:n]
}

// Rank orders the pool by descending score. Equal scores keep their relative
// order.
func (p *Pool) Rank(score func(words.Word) int) {
	scores := make(map[words.Word]int, len(p.words))
	for _, w := range p.words {
		scores[w] = score(w)
	}
	sort.SliceStable(p.words, func(i, j int) bool {
		return scores[p.words[i]] > scores[p.words[j]]
	})
}

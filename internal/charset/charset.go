// Package charset is a 26-bit set of alphabet symbols packed into a uint32.
// It is the unit the constraint model is built from.
package charset

import (
	"math/bits"
	"strings"

	"github.com/kellegous/wordle/internal/words"
)

// Set is a bitmask over the alphabet; bit i is symbol i.
type Set uint32

const (
	// Empty contains no symbols.
	Empty Set = 0

	// Full contains every symbol of the alphabet.
	Full Set = 1<<words.AlphabetSize - 1
)

// Of returns the set holding exactly the given symbols.
func Of(symbols ...words.Symbol) Set {
	var s Set
	for _, c := range symbols {
		s.Insert(c)
	}
	return s
}

// FromWord returns the distinct symbols of w.
func FromWord(w words.Word) Set {
	return Of(w[:]...)
}

// Insert adds c and reports whether the set changed.
func (s *Set) Insert(c words.Symbol) bool {
	prev := *s
	*s |= 1 << c
	return prev != *s
}

// Remove deletes c and reports whether the set changed.
func (s *Set) Remove(c words.Symbol) bool {
	prev := *s
	*s &^= 1 << c
	return prev != *s
}

// Clear removes every symbol.
func (s *Set) Clear() { *s = Empty }

// Contains reports whether c is in the set.
func (s Set) Contains(c words.Symbol) bool {
	return s&(1<<c) != 0
}

// Len is the number of symbols in the set.
func (s Set) Len() int {
	return bits.OnesCount32(uint32(s))
}

// Intersect returns the symbols in both s and o.
func (s Set) Intersect(o Set) Set { return s & o }

// IsSubsetOf reports whether every symbol of s is also in o.
func (s Set) IsSubsetOf(o Set) bool { return s&^o == 0 }

// Symbols lists the members in alphabet order.
func (s Set) Symbols() []words.Symbol {
	out := make([]words.Symbol, 0, s.Len())
	for c := words.Symbol(0); c < words.AlphabetSize; c++ {
		if s.Contains(c) {
			out = append(out, c)
		}
	}
	return out
}

func (s Set) String() string {
	var b strings.Builder
	for _, c := range s.Symbols() {
		b.WriteByte(c.Byte())
	}
	return b.String()
}

// internal/words/word.go
//
// Alphabet symbols and fixed-size words.
// Defines:
//   - Symbol: one letter a–z encoded as 0..25.
//   - Word:   exactly Size symbols; comparable, so it works as a map key.
//
// Words are immutable values. Text form is always lowercase ASCII.

package words

import (
	"errors"
	"fmt"
	"strings"
)

const (
	// Size is the number of letters in every word.
	Size = 5

	// AlphabetSize is the number of distinct symbols.
	AlphabetSize = 26
)

var (
	ErrInvalidSymbol = errors.New("invalid symbol")
	ErrInvalidLength = errors.New("invalid word length")
)

// Symbol is a single lowercase letter stored as 0..25.
type Symbol uint8

// SymbolFromByte converts an ASCII letter in 'a'..'z' to a Symbol.
func SymbolFromByte(c byte) (Symbol, error) {
	if c < 'a' || c > 'z' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidSymbol, c)
	}
	return Symbol(c - 'a'), nil
}

// Byte returns the ASCII letter for s.
func (s Symbol) Byte() byte { return byte(s) + 'a' }

func (s Symbol) String() string { return string(s.Byte()) }

// Word is a fixed sequence of Size symbols.
type Word [Size]Symbol

// Parse converts a 5-letter lowercase string into a Word.
// Callers are expected to normalize case before parsing.
func Parse(s string) (Word, error) {
	var w Word
	if len(s) != Size {
		return w, fmt.Errorf("%w: %q has %d chars, want %d", ErrInvalidLength, s, len(s), Size)
	}
	for i := 0; i < Size; i++ {
		c, err := SymbolFromByte(s[i])
		if err != nil {
			return w, fmt.Errorf("parse %q: %w", s, err)
		}
		w[i] = c
	}
	return w, nil
}

// MustParse is Parse for literals; it panics on invalid input.
func MustParse(s string) Word {
	w, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return w
}

// MustParseAll parses every string with MustParse.
func MustParseAll(ss ...string) []Word {
	out := make([]Word, 0, len(ss))
	for _, s := range ss {
		out = append(out, MustParse(s))
	}
	return out
}

// Contains reports whether c occurs anywhere in w.
func (w Word) Contains(c Symbol) bool {
	for _, x := range w {
		if x == c {
			return true
		}
	}
	return false
}

// Count returns the number of occurrences of c in w.
func (w Word) Count(c Symbol) int {
	n := 0
	for _, x := range w {
		if x == c {
			n++
		}
	}
	return n
}

// Compare orders words alphabetically, returning -1, 0 or +1.
func (w Word) Compare(o Word) int {
	for i := range w {
		switch {
		case w[i] < o[i]:
			return -1
		case w[i] > o[i]:
			return 1
		}
	}
	return 0
}

func (w Word) String() string {
	var b strings.Builder
	b.Grow(Size)
	for _, c := range w {
		b.WriteByte(c.Byte())
	}
	return b.String()
}

// MarshalText renders w as its lowercase letters.
func (w Word) MarshalText() ([]byte, error) {
	return []byte(w.String()), nil
}

// UnmarshalText parses a lowercase word.
func (w *Word) UnmarshalText(b []byte) error {
	v, err := Parse(string(b))
	if err != nil {
		return err
	}
	*w = v
	return nil
}

package solver

import (
	"strings"

	"github.com/kellegous/wordle/internal/charset"
	"github.com/kellegous/wordle/internal/game"
	"github.com/kellegous/wordle/internal/words"
)

// Constraints accumulates what the feedback so far says about the solution:
// the symbols still allowed at each position, and the symbols known to occur
// somewhere. Positions only shrink and mustHave only grows across Add calls.
type Constraints struct {
	positions [words.Size]charset.Set
	mustHave  charset.Set
}

// NewConstraints returns constraints that every word satisfies.
func NewConstraints() *Constraints {
	c := &Constraints{}
	for i := range c.positions {
		c.positions[i] = charset.Full
	}
	return c
}

// Add applies one guess's feedback, position by position:
//   - Green:  the position becomes exactly that symbol.
//   - Yellow: the symbol is removed from the position and must appear elsewhere.
//   - Gray:   the symbol is removed from every position.
//
// Directives are applied in position order with no reconciliation between
// repeats of a letter, so a gray repeat also removes the letter where it was
// green or yellow ("sassy" against "silly" rules out 's' everywhere).
func (c *Constraints) Add(g game.Guess) {
	for i, d := range g.Feedback {
		s := g.Word[i]
		switch d {
		case game.Green:
			c.positions[i].Clear()
			c.positions[i].Insert(s)
		case game.Yellow:
			c.positions[i].Remove(s)
			c.mustHave.Insert(s)
		case game.Gray:
			for p := range c.positions {
				c.positions[p].Remove(s)
			}
		}
	}
}

// IsSatisfiedBy reports whether w fits every position set and contains every
// required symbol.
func (c *Constraints) IsSatisfiedBy(w words.Word) bool {
	for i, s := range w {
		if !c.positions[i].Contains(s) {
			return false
		}
	}
	return c.mustHave.IsSubsetOf(charset.FromWord(w))
}

// UniqueChars returns the allowed set of the least resolved position (largest
// cardinality). Ties go to the later position.
func (c *Constraints) UniqueChars() charset.Set {
	best := 0
	for i := range c.positions {
		if c.positions[i].Len() >= c.positions[best].Len() {
			best = i
		}
	}
	return c.positions[best]
}

// Position returns the allowed symbols at position i.
func (c *Constraints) Position(i int) charset.Set { return c.positions[i] }

// MustHave returns the symbols known to occur in the solution.
func (c *Constraints) MustHave() charset.Set { return c.mustHave }

func (c *Constraints) String() string {
	parts := make([]string, len(c.positions))
	for i, p := range c.positions {
		parts[i] = p.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

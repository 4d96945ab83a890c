// internal/game/feedback.go
//
// Feedback engine: scoring a guess against a solution, parsing feedback codes,
// and checking whether a candidate is consistent with an observed guess.
//
// Feedback codes are 5 ASCII characters, case-insensitive on input:
//   g = green, y = yellow, b or x = gray.
// Rendering always uses lowercase g/y/x.

package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kellegous/wordle/internal/words"
)

var (
	ErrInvalidFeedbackLength = errors.New("invalid feedback length")
	ErrInvalidDirective      = errors.New("invalid directive code")
)

// Score implements the two-pass Wordle scoring algorithm.
//
// Pass 1:
//   - Mark exact matches Green and consume that solution position.
//
// Pass 2:
//   - For each non-green guess letter, take the first unconsumed solution
//     position holding the same letter (left to right): Yellow, and consume it.
//     Otherwise Gray.
//
// A repeated guess letter is credited at most as many times as it occurs in
// the solution.
func Score(guess, solution words.Word) Feedback {
	var fb Feedback
	var resolved [words.Size]bool

	for i := range guess {
		if guess[i] == solution[i] {
			fb[i] = Green
			resolved[i] = true
		} else {
			fb[i] = Gray
		}
	}

	for i, c := range guess {
		if fb[i] == Green {
			continue
		}
		for j, s := range solution {
			if !resolved[j] && s == c {
				fb[i] = Yellow
				resolved[j] = true
				break
			}
		}
	}
	return fb
}

// ParseFeedback parses a 5-character feedback code.
func ParseFeedback(s string) (Feedback, error) {
	var fb Feedback
	if len(s) != words.Size {
		return fb, fmt.Errorf("%w: %q has %d chars, want %d", ErrInvalidFeedbackLength, s, len(s), words.Size)
	}
	for i := 0; i < words.Size; i++ {
		switch s[i] {
		case 'g', 'G':
			fb[i] = Green
		case 'y', 'Y':
			fb[i] = Yellow
		case 'b', 'B', 'x', 'X':
			fb[i] = Gray
		default:
			return fb, fmt.Errorf("%w: %q in %q", ErrInvalidDirective, s[i], s)
		}
	}
	return fb, nil
}

// MustParseFeedback is ParseFeedback for literals.
func MustParseFeedback(s string) Feedback {
	fb, err := ParseFeedback(s)
	if err != nil {
		panic(err)
	}
	return fb
}

// IsAllGreen reports whether every position is Green.
func (f Feedback) IsAllGreen() bool {
	return f == AllGreen
}

// String renders the ASCII code (g/y/x).
func (f Feedback) String() string {
	var b strings.Builder
	b.Grow(words.Size)
	for _, d := range f {
		b.WriteByte(d.code())
	}
	return b.String()
}

// Emoji renders the feedback as colored squares.
func (f Feedback) Emoji() string {
	var b strings.Builder
	for _, d := range f {
		switch d {
		case Green:
			b.WriteString("🟩")
		case Yellow:
			b.WriteString("🟨")
		default:
			b.WriteString("⬛")
		}
	}
	return b.String()
}

// MarshalText renders the ASCII code; Feedback can key JSON objects.
func (f Feedback) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText parses an ASCII code.
func (f *Feedback) UnmarshalText(b []byte) error {
	v, err := ParseFeedback(string(b))
	if err != nil {
		return err
	}
	*f = v
	return nil
}

func (d Directive) code() byte {
	switch d {
	case Green:
		return 'g'
	case Yellow:
		return 'y'
	default:
		return 'x'
	}
}

func (d Directive) String() string {
	switch d {
	case Green:
		return "green"
	case Yellow:
		return "yellow"
	default:
		return "gray"
	}
}

// matches reports whether candidate is consistent with directive d observed
// for guess at position i.
func (d Directive) matches(i int, guess, candidate words.Word) bool {
	switch d {
	case Green:
		return guess[i] == candidate[i]
	case Yellow:
		return guess[i] != candidate[i] && candidate.Contains(guess[i])
	default:
		return !candidate.Contains(guess[i])
	}
}

// NewGuess scores word against solution.
func NewGuess(word, solution words.Word) Guess {
	return Guess{Word: word, Feedback: Score(word, solution)}
}

// IsAllGreen reports whether the guess solved the puzzle.
func (g Guess) IsAllGreen() bool { return g.Feedback.IsAllGreen() }

// Matches re-derives, position by position, whether candidate could be the
// solution given this guess's feedback. It does not recompute full feedback,
// so a gray repeat of a letter that is green or yellow elsewhere in the guess
// rejects every candidate containing that letter.
func (g Guess) Matches(candidate words.Word) bool {
	for i, d := range g.Feedback {
		if !d.matches(i, g.Word, candidate) {
			return false
		}
	}
	return true
}

func (g Guess) String() string {
	return strings.ToUpper(g.Word.String()) + " " + g.Feedback.Emoji()
}

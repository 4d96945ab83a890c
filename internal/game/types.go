// internal/game/types.go
//
// Core type definitions for feedback and game transcripts.
// Defines:
//   - Directive: per-letter result of a guess (green/yellow/gray).
//   - Feedback:  the directives for a whole guess.
//   - Guess:     a word paired with the feedback it received.
//   - Solution:  the ordered guesses of one game.
//   - Game:      state for a single interactive session.

package game

import "github.com/kellegous/wordle/internal/words"

// Directive is the evaluation result for a single letter in a guess.
type Directive uint8

const (
	Green  Directive = iota // right letter, right position
	Yellow                  // letter present elsewhere
	Gray                    // letter absent (or already fully credited)
)

// Feedback holds one directive per word position.
type Feedback [words.Size]Directive

// AllGreen is the feedback of a correct guess.
var AllGreen = Feedback{Green, Green, Green, Green, Green}

// Guess is an attempted word with the feedback it received. Guesses are values
// and are never modified after construction.
type Guess struct {
	Word     words.Word
	Feedback Feedback
}

// Solution is the transcript of one game, in guess order.
type Solution []Guess

// Game holds the state of a single interactive session.
type Game struct {
	ID       string     // Unique game identifier (random hex string).
	Answer   words.Word // The secret word.
	Rows     int        // Maximum number of guesses allowed (typically 6).
	Guesses  []Guess    // Guesses made so far with their feedback.
	Finished bool       // True once the game is over (won or lost).
	Won      bool       // True if the game was finished with a win.
	Daily    bool       // True if Answer is a daily puzzle's solution.
	Puzzle   int        // Daily puzzle number; meaningful only when Daily.
}

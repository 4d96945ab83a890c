// internal/game/engine.go
//
// Game engine for a single interactive session.
// Responsibilities:
//   - Create new games with the standard 6 rows.
//   - Apply guesses, scoring them with Score.
//   - Track state transitions: playing → won/lost.
//
// Guess validation against a dictionary is the caller's job; the engine only
// sees parsed Words.
package game

import (
	"crypto/rand"
	"encoding/hex"
	"errors"

	"github.com/kellegous/wordle/internal/words"
)

// DefaultRows is the number of guesses in a standard game.
const DefaultRows = 6

var ErrGameFinished = errors.New("game finished")

const (
	StatePlaying = "playing"
	StateWon     = "won"
	StateLost    = "lost"
)

// New constructs a new game for answer.
func New(answer words.Word) *Game {
	return &Game{
		ID:      randomID(),
		Answer:  answer,
		Rows:    DefaultRows,
		Guesses: []Guess{},
	}
}

// NewDaily constructs a game for daily puzzle number n.
func NewDaily(answer words.Word, n int) *Game {
	g := New(answer)
	g.Daily, g.Puzzle = true, n
	return g
}

// ApplyGuess scores a guess and records it.
// Returns the feedback and the new state, or ErrGameFinished.
//
// State transitions:
//   - All green → Finished, Won.
//   - Else if the number of guesses reaches g.Rows → Finished (loss).
func (g *Game) ApplyGuess(word words.Word) (Feedback, string, error) {
	if g.Finished {
		return Feedback{}, g.State(), ErrGameFinished
	}

	guess := NewGuess(word, g.Answer)
	g.Guesses = append(g.Guesses, guess)

	if guess.IsAllGreen() {
		g.Finished, g.Won = true, true
	} else if len(g.Guesses) >= g.Rows {
		g.Finished = true
	}
	return guess.Feedback, g.State(), nil
}

// State reports the current game state.
func (g *Game) State() string {
	if g.Finished {
		if g.Won {
			return StateWon
		}
		return StateLost
	}
	return StatePlaying
}

// Transcript returns the guesses made so far.
func (g *Game) Transcript() Solution {
	return Solution(append([]Guess(nil), g.Guesses...))
}

// randomID returns a compact 16-hex-char identifier.
func randomID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}

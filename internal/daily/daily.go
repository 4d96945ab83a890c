// internal/daily/daily.go
//
// Daily puzzle calendar.
// Responsibilities:
//   - Numbering days from the first puzzle (2021-06-19).
//   - Picking a day's solution from an ordered answer list.
//   - Listing upcoming puzzles and formatting a solved game for sharing.

package daily

import (
	"fmt"
	"strings"
	"time"

	"github.com/kellegous/wordle/internal/game"
	"github.com/kellegous/wordle/internal/words"
)

// Epoch is the date of puzzle number 0.
var Epoch = time.Date(2021, time.June, 19, 0, 0, 0, 0, time.UTC)

// MaxGuesses is shown as the denominator of a share line.
const MaxGuesses = 6

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// Number returns the puzzle number for the calendar date of t in its own
// location.
func Number(t time.Time) int {
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return int(day.Sub(Epoch).Hours() / 24)
}

// Date returns the day puzzle n is played.
func Date(n int) time.Time {
	return Epoch.AddDate(0, 0, n)
}

// Pick returns the solution for puzzle n. The list repeats once exhausted.
func Pick(list []words.Word, n int) (words.Word, bool) {
	if len(list) == 0 {
		return words.Word{}, false
	}
	i := n % len(list)
	if i < 0 {
		i += len(list)
	}
	return list[i], true
}

// Entry is one scheduled puzzle.
type Entry struct {
	Number int
	Date   time.Time
	Word   words.Word
}

// Schedule lists n puzzles starting with the one for from.
func Schedule(list []words.Word, from time.Time, n int) []Entry {
	if len(list) == 0 || n <= 0 {
		return nil
	}
	first := Number(from)
	out := make([]Entry, 0, n)
	for i := 0; i < n; i++ {
		num := first + i
		w, _ := Pick(list, num)
		out = append(out, Entry{Number: num, Date: Date(num), Word: w})
	}
	return out
}

// Share renders a solved puzzle the way players post it: a header with
// the guess count followed by one row of squares per guess.
func Share(n int, s game.Solution) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Wordle %d %d/%d*\n", n, len(s), MaxGuesses)
	for _, g := range s {
		b.WriteString(g.Feedback.Emoji())
		b.WriteByte('\n')
	}
	return b.String()
}

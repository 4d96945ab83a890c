package dtree

import (
	"github.com/kellegous/wordle/internal/game"
	"github.com/kellegous/wordle/internal/words"
)

// Walk follows feedback from root and returns the node reached, whose Word
// is the next guess.
func Walk(root *Node, feedback []game.Feedback) (*Node, error) {
	n := root
	for _, fb := range feedback {
		next, err := n.Lookup(fb)
		if err != nil {
			return nil, err
		}
		n = next
	}
	return n, nil
}

// Play replays the tree against solution until a guess comes back all green.
// The transcript so far is returned with the error on a lookup miss.
func Play(root *Node, solution words.Word) (game.Solution, error) {
	var transcript game.Solution
	n := root
	for {
		g := game.NewGuess(n.Word, solution)
		transcript = append(transcript, g)
		if g.IsAllGreen() {
			return transcript, nil
		}

		next, err := n.Lookup(g.Feedback)
		if err != nil {
			return transcript, err
		}
		n = next
	}
}

// Package dtree builds, stores and replays decision trees: each node names
// the word to guess and maps the feedback it can receive to the next node.
// A node without children is a leaf, the guess expected to be the solution.
package dtree

import (
	"errors"
	"fmt"

	"github.com/kellegous/wordle/internal/game"
	"github.com/kellegous/wordle/internal/words"
)

var (
	ErrTreeBuildInfeasible = errors.New("no decision tree fits the depth budget")
	ErrTreeLookupMiss      = errors.New("feedback not in decision tree")
)

// Node is one guess in a decision tree. Each child is owned by exactly one
// parent; trees never share nodes.
type Node struct {
	Word words.Word              `json:"word"`
	Next map[game.Feedback]*Node `json:"next,omitempty"`
}

// Leaf returns a node without children.
func Leaf(w words.Word) *Node {
	return &Node{Word: w}
}

// IsLeaf reports whether n has no children.
func (n *Node) IsLeaf() bool { return len(n.Next) == 0 }

// Child returns the node to visit after fb, or nil.
func (n *Node) Child(fb game.Feedback) *Node {
	return n.Next[fb]
}

// Lookup is the play-time step from n. It fails with ErrTreeLookupMiss when
// fb was never produced by a solution while the tree was built.
func (n *Node) Lookup(fb game.Feedback) (*Node, error) {
	c := n.Child(fb)
	if c == nil {
		return nil, fmt.Errorf("%w: %s after %s", ErrTreeLookupMiss, fb, n.Word)
	}
	return c, nil
}

func (n *Node) set(fb game.Feedback, child *Node) {
	if n.Next == nil {
		n.Next = make(map[game.Feedback]*Node)
	}
	n.Next[fb] = child
}

// AddGuesses inserts a path of guesses below n. Each guess's feedback selects
// the child (created with the guess's word when missing) and the rest of the
// path continues from there.
func (n *Node) AddGuesses(path []game.Guess) {
	node := n
	for _, g := range path {
		c := node.Child(g.Feedback)
		if c == nil {
			c = Leaf(g.Word)
			node.set(g.Feedback, c)
		}
		node = c
	}
}

// Size counts the nodes in the tree rooted at n.
func (n *Node) Size() int {
	total := 1
	for _, c := range n.Next {
		total += c.Size()
	}
	return total
}

// Depth is the number of guesses on the longest root-to-leaf path.
func (n *Node) Depth() int {
	d := 0
	for _, c := range n.Next {
		if cd := c.Depth(); cd > d {
			d = cd
		}
	}
	return d + 1
}

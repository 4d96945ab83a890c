package dtree

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/kellegous/wordle/internal/game"
	"github.com/kellegous/wordle/internal/words"
)

var ErrInvalidTree = errors.New("invalid decision tree")

// wireNode mirrors Node with a pointer word so a missing "word" can be told
// apart from "aaaaa".
type wireNode struct {
	Word *words.Word                 `json:"word"`
	Next map[game.Feedback]*wireNode `json:"next,omitempty"`
}

// ReadJSON decodes a tree written by WriteJSON. Every node must name a word
// and every child must be an object.
func ReadJSON(r io.Reader) (*Node, error) {
	var w wireNode
	if err := json.NewDecoder(r).Decode(&w); err != nil {
		return nil, fmt.Errorf("decode tree: %w", err)
	}
	return w.node("root")
}

func (w *wireNode) node(path string) (*Node, error) {
	if w.Word == nil {
		return nil, fmt.Errorf("%w: %s: missing word", ErrInvalidTree, path)
	}
	n := Leaf(*w.Word)
	for fb, c := range w.Next {
		at := path + "/" + fb.String()
		if c == nil {
			return nil, fmt.Errorf("%w: %s: null child", ErrInvalidTree, at)
		}
		child, err := c.node(at)
		if err != nil {
			return nil, err
		}
		n.set(fb, child)
	}
	return n, nil
}

// WriteJSON encodes the tree rooted at n. Children are keyed by feedback
// code and emitted in sorted order.
func WriteJSON(w io.Writer, n *Node) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(n)
}

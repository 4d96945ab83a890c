package dtree

import (
	"context"
	"fmt"
	"slices"
	"sort"
	"sync/atomic"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/kellegous/wordle/internal/game"
	"github.com/kellegous/wordle/internal/words"
)

// DefaultDepth is the number of rounds a tree may use below the root call:
// the root is guess one of a six-guess game.
const DefaultDepth = 5

// Builder searches for a decision tree that resolves every solution within
// the depth budget. The search is exhaustive backtracking: at each node the
// first guess, in pool order, whose feedback classes can all be resolved in
// the remaining rounds is accepted. It does not look for the best guess.
type Builder struct {
	solutions mapset.Set[words.Word]
	depth     int
	workers   int
	progress  func(done, total int)
}

// Option configures a Builder.
type Option func(*Builder)

// WithDepth sets the depth budget.
func WithDepth(d int) Option {
	return func(b *Builder) { b.depth = d }
}

// WithWorkers evaluates root candidates on up to n goroutines. The result is
// the same tree the sequential search finds.
func WithWorkers(n int) Option {
	return func(b *Builder) { b.workers = n }
}

// WithProgress registers a callback invoked after each root candidate. With
// more than one worker it is called from several goroutines.
func WithProgress(fn func(done, total int)) Option {
	return func(b *Builder) { b.progress = fn }
}

// NewBuilder returns a builder for the given solution set.
func NewBuilder(solutions []words.Word, opts ...Option) *Builder {
	b := &Builder{
		solutions: mapset.NewThreadUnsafeSet(solutions...),
		depth:     DefaultDepth,
		workers:   1,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build returns a tree whose root is drawn from pool. The pool is copied;
// its order decides which feasible guess wins at every node.
func (b *Builder) Build(ctx context.Context, pool []words.Word) (*Node, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	pool = slices.Clone(pool)

	var (
		n   *Node
		err error
	)
	if b.workers > 1 && b.depth > 0 && len(pool) > 1 {
		n, err = b.buildRoot(ctx, pool)
	} else {
		n, err = b.build(ctx, pool, 0)
	}
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, fmt.Errorf("%w: %d guesses, %d solutions, depth %d",
			ErrTreeBuildInfeasible, len(pool), b.solutions.Cardinality(), b.depth)
	}
	return n, nil
}

// build returns nil without error when pool cannot be resolved at depth.
// Entries of pool are swapped during the scan and restored before returning.
func (b *Builder) build(ctx context.Context, pool []words.Word, depth int) (*Node, error) {
	if depth >= b.depth {
		return nil, nil
	}
	if len(pool) == 1 {
		return Leaf(pool[0]), nil
	}

	for i := range pool {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		pool[0], pool[i] = pool[i], pool[0]
		n, err := b.try(ctx, pool[0], pool[1:], depth)
		pool[0], pool[i] = pool[i], pool[0]

		if depth == 0 {
			b.report(i+1, len(pool))
			if n == nil && err == nil {
				log.Debug().Str("guess", pool[i].String()).Msg("root candidate rejected")
			}
		}
		if err != nil || n != nil {
			return n, err
		}
	}
	return nil, nil
}

// buildRoot runs the root scan concurrently. Candidates after the lowest
// feasible index found so far are skipped, and the lowest feasible index is
// returned, matching build.
func (b *Builder) buildRoot(ctx context.Context, pool []words.Word) (*Node, error) {
	results := make([]*Node, len(pool))
	var best atomic.Int64
	best.Store(int64(len(pool)))
	var done atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.workers)
	for i := range pool {
		if int64(i) > best.Load() {
			break
		}
		i := i
		g.Go(func() error {
			defer func() { b.report(int(done.Add(1)), len(pool)) }()
			if int64(i) > best.Load() {
				return nil
			}

			local := slices.Clone(pool)
			local[0], local[i] = local[i], local[0]
			n, err := b.try(ctx, local[0], local[1:], 0)
			if err != nil || n == nil {
				return err
			}

			results[i] = n
			for {
				cur := best.Load()
				if int64(i) >= cur || best.CompareAndSwap(cur, int64(i)) {
					break
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, n := range results {
		if n != nil {
			return n, nil
		}
	}
	return nil, nil
}

// try resolves every feedback class of guess over rest. It returns nil when
// any class cannot be resolved.
func (b *Builder) try(ctx context.Context, guess words.Word, rest []words.Word, depth int) (*Node, error) {
	node := Leaf(guess)
	for _, grp := range b.partition(guess, rest) {
		child, err := b.build(ctx, grp.words, depth+1)
		if err != nil || child == nil {
			return nil, err
		}
		node.set(grp.feedback, child)
	}
	return node, nil
}

type group struct {
	feedback game.Feedback
	words    []words.Word
}

// partition groups rest by the feedback guess would receive if each were the
// solution. Groups with no member in the solution set are dropped since that
// feedback never occurs in play. The rest are ordered smallest first, with
// equal sizes in first-seen order.
func (b *Builder) partition(guess words.Word, rest []words.Word) []group {
	index := map[game.Feedback]int{}
	var groups []group
	for _, w := range rest {
		fb := game.Score(guess, w)
		i, ok := index[fb]
		if !ok {
			i = len(groups)
			index[fb] = i
			groups = append(groups, group{feedback: fb})
		}
		groups[i].words = append(groups[i].words, w)
	}

	kept := groups[:0]
	for _, g := range groups {
		if b.anySolution(g.words) {
			kept = append(kept, g)
		}
	}
	sort.SliceStable(kept, func(i, j int) bool {
		return len(kept[i].words) < len(kept[j].words)
	})
	return kept
}

func (b *Builder) anySolution(ws []words.Word) bool {
	for _, w := range ws {
		if b.solutions.Contains(w) {
			return true
		}
	}
	return false
}

func (b *Builder) report(done, total int) {
	if b.progress != nil {
		b.progress(done, total)
	}
}

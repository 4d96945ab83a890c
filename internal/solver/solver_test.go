package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kellegous/wordle/internal/charset"
	"github.com/kellegous/wordle/internal/game"
	"github.com/kellegous/wordle/internal/words"
)

// distinctLetters holds words without repeated letters. For such guesses the
// constraint update is exact, so the solution can never be filtered out.
var distinctLetters = words.MustParseAll(
	"crane", "slate", "nymph", "abide", "fresh", "crust", "helix", "croak",
	"whelp", "trawl", "ghost", "sower", "repay", "light", "spike", "pound",
	"major", "death", "model", "jumbo", "grade", "quiet", "bench", "feign",
	"focal", "blush", "dwarf", "stink", "react", "pride", "unfed", "crate",
)

func sym(c byte) words.Symbol {
	s, err := words.SymbolFromByte(c)
	if err != nil {
		panic(err)
	}
	return s
}

func TestConstraintsAdd(t *testing.T) {
	c := NewConstraints()
	c.Add(game.NewGuess(words.MustParse("crane"), words.MustParse("nymph")))

	for i := 0; i < words.Size; i++ {
		for _, gray := range "crae" {
			assert.False(t, c.Position(i).Contains(sym(byte(gray))), "pos %d letter %c", i, gray)
		}
	}
	assert.False(t, c.Position(3).Contains(sym('n')))
	assert.True(t, c.Position(0).Contains(sym('n')))
	assert.Equal(t, charset.Of(sym('n')), c.MustHave())

	assert.True(t, c.IsSatisfiedBy(words.MustParse("nymph")))
	assert.False(t, c.IsSatisfiedBy(words.MustParse("pound")), "'n' at a yellow position")
	assert.False(t, c.IsSatisfiedBy(words.MustParse("build")), "missing required 'n'")

	c.Add(game.NewGuess(words.MustParse("nymph"), words.MustParse("nymph")))
	for i, s := range words.MustParse("nymph") {
		assert.Equal(t, charset.Of(s), c.Position(i))
	}
}

func TestConstraintsMonotonic(t *testing.T) {
	for _, sol := range distinctLetters[:8] {
		c := NewConstraints()
		for _, g := range distinctLetters {
			var prev [words.Size]charset.Set
			for i := range prev {
				prev[i] = c.Position(i)
			}
			prevMust := c.MustHave()

			c.Add(game.NewGuess(g, sol))

			for i := range prev {
				assert.True(t, c.Position(i).IsSubsetOf(prev[i]), "position %d grew", i)
			}
			assert.True(t, prevMust.IsSubsetOf(c.MustHave()), "mustHave shrank")
		}
	}
}

func TestConstraintsDuplicateGrayRemovesGreen(t *testing.T) {
	c := NewConstraints()
	c.Add(game.NewGuess(words.MustParse("sassy"), words.MustParse("silly")))
	assert.Equal(t, charset.Empty, c.Position(0), "gray 's' also clears the green position")
	assert.False(t, c.IsSatisfiedBy(words.MustParse("silly")))
}

func TestUniqueCharsPrefersLaterPositionOnTie(t *testing.T) {
	c := NewConstraints()
	assert.Equal(t, charset.Full, c.UniqueChars())

	c.Add(game.Guess{
		Word:     words.MustParse("abcde"),
		Feedback: game.MustParseFeedback("yyggg"),
	})
	u := c.UniqueChars()
	assert.Equal(t, 25, u.Len())
	assert.True(t, u.Contains(sym('a')))
	assert.False(t, u.Contains(sym('b')))
}

func TestPool(t *testing.T) {
	p := NewPool(words.MustParseAll("aaaaa", "bbbbb", "abcde", "ccccc"))
	first, ok := p.First()
	require.True(t, ok)
	assert.Equal(t, words.MustParse("aaaaa"), first)

	p.Rank(func(w words.Word) int { return charset.FromWord(w).Len() })
	assert.Equal(t, words.MustParseAll("abcde", "aaaaa", "bbbbb", "ccccc"), p.Words())

	q := p.Filter(func(w words.Word) bool { return w.Contains(sym('a')) })
	assert.Equal(t, words.MustParseAll("abcde", "aaaaa"), q.Words())
	assert.Equal(t, 4, p.Len(), "Filter leaves the source untouched")

	p.FilterInPlace(func(w words.Word) bool { return w.Contains(sym('c')) })
	assert.Equal(t, words.MustParseAll("abcde", "ccccc"), p.Words())
	assert.True(t, p.Contains(words.MustParse("ccccc")))
	assert.False(t, p.Contains(words.MustParse("aaaaa")))

	empty := NewPool(nil)
	_, ok = empty.First()
	assert.False(t, ok)
}

func TestScore(t *testing.T) {
	chars := charset.Of(sym('s'), sym('a'), sym('z'))
	assert.Equal(t, 2, Score(words.MustParse("sassy"), chars))
	assert.Equal(t, 0, Score(words.MustParse("nymph"), chars))
}

func TestGreedyTwoWords(t *testing.T) {
	list := words.MustParseAll("abcde", "fghij")
	sol, err := Greedy(list, words.MustParse("fghij"))
	require.NoError(t, err)
	require.Len(t, sol, 2)
	assert.Equal(t, words.MustParse("abcde"), sol[0].Word)
	assert.Equal(t, "xxxxx", sol[0].Feedback.String())
	assert.Equal(t, words.MustParse("fghij"), sol[1].Word)
	assert.True(t, sol[1].IsAllGreen())
}

func TestGreedyKeepsSolutionInPool(t *testing.T) {
	for _, sol := range distinctLetters {
		cons := NewConstraints()
		pool := NewPool(distinctLetters)
		for round := 0; ; round++ {
			require.True(t, pool.Contains(sol), "%s dropped after round %d", sol, round)
			w, _ := pool.First()
			g := game.NewGuess(w, sol)
			if g.IsAllGreen() {
				break
			}
			cons.Add(g)
			chars := cons.UniqueChars()
			pool.Rank(func(w words.Word) int { return Score(w, chars) })
			pool = pool.Filter(cons.IsSatisfiedBy)
		}

		got, err := Greedy(distinctLetters, sol)
		require.NoError(t, err)
		assert.Equal(t, sol, got[len(got)-1].Word)
	}
}

func TestGreedyNoCandidate(t *testing.T) {
	sol, err := Greedy(words.MustParseAll("sassy", "silly"), words.MustParse("silly"))
	assert.ErrorIs(t, err, ErrNoCandidate)
	assert.Len(t, sol, 1)

	_, err = Greedy(nil, words.MustParse("silly"))
	assert.ErrorIs(t, err, ErrNoCandidate)
}

func TestMatching(t *testing.T) {
	sol, err := Matching(words.MustParseAll("abcde", "fghij"), words.MustParse("fghij"))
	require.NoError(t, err)
	assert.Len(t, sol, 2)

	for _, w := range distinctLetters {
		got, err := Matching(distinctLetters, w)
		require.NoError(t, err)
		assert.True(t, got[len(got)-1].IsAllGreen())
	}
}

func TestSolveAllIsolatesFailures(t *testing.T) {
	list := words.MustParseAll("sassy", "silly")
	var seen int
	results, st := SolveAll(list, list, Greedy, func(Result) { seen++ })
	require.Len(t, results, 2)
	assert.Equal(t, 2, seen)

	assert.True(t, results[0].Solved())
	assert.Len(t, results[0].Guesses, 1)
	assert.ErrorIs(t, results[1].Err, ErrNoCandidate)

	assert.Equal(t, 2, st.Total)
	assert.Equal(t, 1, st.Solved)
	assert.Equal(t, 1, st.Errors)
	assert.Equal(t, 1, st.Failed)
	assert.Equal(t, 1, st.Max)
	assert.Equal(t, map[int]int{1: 1}, st.Histogram)
}

func TestSummarize(t *testing.T) {
	mk := func(n int) Result {
		return Result{Guesses: make(game.Solution, n)}
	}
	st := Summarize([]Result{mk(3), mk(4), mk(4), mk(7)})
	assert.Equal(t, 4, st.Solved)
	assert.Equal(t, 1, st.Failed)
	assert.Equal(t, 4, st.Median)
	assert.Equal(t, 7, st.Max)
	assert.InDelta(t, 4.5, st.Mean, 1e-9)

	empty := Summarize(nil)
	assert.Zero(t, empty.Total)
	assert.Zero(t, empty.Mean)
}

func TestLookup(t *testing.T) {
	s, err := Lookup("greedy")
	require.NoError(t, err)
	assert.NotNil(t, s)
	_, err = Lookup("optimal")
	assert.Error(t, err)
}

func TestRankByFrequency(t *testing.T) {
	// a and b occur four times, c three times, d and e twice, f-j once.
	ranked := RankByFrequency(words.MustParseAll("aabbc", "abcde", "fghij", "edcba"))
	assert.Equal(t, words.MustParseAll("abcde", "edcba", "aabbc", "fghij"), Words(ranked))
	assert.Equal(t, []float64{15, 15, 11, 5}, []float64{
		ranked[0].Score, ranked[1].Score, ranked[2].Score, ranked[3].Score,
	})

	assert.Empty(t, RankByFrequency(nil))
}

func TestRankByPartition(t *testing.T) {
	list := words.MustParseAll("abcde", "abcdf", "fghij", "klmno")
	ranked := RankByPartition(list)

	// abcdf splits the others into three singletons. abcde and fghij tie at
	// 1.5 and keep list order.
	assert.Equal(t, words.MustParseAll("abcdf", "abcde", "fghij", "klmno"), Words(ranked))
	assert.InDelta(t, 1.0, ranked[0].Score, 1e-9)
	assert.InDelta(t, 1.5, ranked[1].Score, 1e-9)
	assert.InDelta(t, 3.0, ranked[3].Score, 1e-9)
	assert.Equal(t, words.MustParseAll("abcde", "abcdf", "fghij", "klmno"), list, "input untouched")

	single := RankByPartition(words.MustParseAll("crane"))
	require.Len(t, single, 1)
	assert.Zero(t, single[0].Score)
}

func TestLookupRanker(t *testing.T) {
	for name := range Rankers {
		r, err := LookupRanker(name)
		require.NoError(t, err)
		assert.NotNil(t, r)
	}
	_, err := LookupRanker("entropy")
	assert.Error(t, err)
}

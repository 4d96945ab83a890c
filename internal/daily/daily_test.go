package daily

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kellegous/wordle/internal/game"
	"github.com/kellegous/wordle/internal/words"
)

func TestNumber(t *testing.T) {
	assert.Equal(t, 0, Number(Epoch))
	assert.Equal(t, 1, Number(time.Date(2021, time.June, 20, 23, 59, 0, 0, time.UTC)))
	assert.Equal(t, 196, Number(time.Date(2022, time.January, 1, 8, 0, 0, 0, time.UTC)))
	assert.Equal(t, -1, Number(time.Date(2021, time.June, 18, 12, 0, 0, 0, time.UTC)))

	// The local calendar date counts, not the UTC instant.
	nz := time.FixedZone("NZST", 12*60*60)
	assert.Equal(t, 1, Number(time.Date(2021, time.June, 20, 1, 0, 0, 0, nz)))

	assert.Equal(t, "2022-01-01", DateKey(Date(196)))
}

func TestPick(t *testing.T) {
	list := words.MustParseAll("cigar", "rebut", "sissy")
	for n, want := range map[int]string{0: "cigar", 2: "sissy", 3: "cigar", 7: "rebut", -1: "sissy"} {
		w, ok := Pick(list, n)
		require.True(t, ok)
		assert.Equal(t, want, w.String(), "n=%d", n)
	}
	_, ok := Pick(nil, 0)
	assert.False(t, ok)
}

func TestSchedule(t *testing.T) {
	list := words.MustParseAll("cigar", "rebut", "sissy")
	got := Schedule(list, time.Date(2021, time.June, 20, 0, 0, 0, 0, time.UTC), 3)
	require.Len(t, got, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{got[0].Number, got[1].Number, got[2].Number})
	assert.Equal(t, "rebut", got[0].Word.String())
	assert.Equal(t, "cigar", got[2].Word.String())
	assert.Equal(t, "2021-06-22", DateKey(got[2].Date))

	assert.Nil(t, Schedule(nil, Epoch, 3))
}

func TestShare(t *testing.T) {
	answer := words.MustParse("nymph")
	s := game.Solution{
		game.NewGuess(words.MustParse("crane"), answer),
		game.NewGuess(answer, answer),
	}
	assert.Equal(t, "Wordle 12 2/6*\n⬛⬛⬛🟨⬛\n🟩🟩🟩🟩🟩\n", Share(12, s))
}

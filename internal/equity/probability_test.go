package equity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/showdown/internal/deck"
)

func TestBinomial(t *testing.T) {
	tests := []struct {
		n, k     int
		expected int
	}{
		{47, 2, 1081},
		{38, 2, 703},
		{46, 1, 46},
		{52, 5, 2598960},
		{45, 2, 990},
		{5, 0, 1},
		{5, 5, 1},
		{5, 6, 0},
		{5, -1, 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Binomial(tt.n, tt.k), "C(%d,%d)", tt.n, tt.k)
	}
}

func TestBinomialBounded(t *testing.T) {
	// Largest value the deck can produce stays exact.
	assert.Equal(t, 495918532948104, Binomial(52, 26))
	assert.Panics(t, func() { Binomial(100, 50) })

	_, err := HitProbability(4, 60, 2)
	assert.ErrorContains(t, err, "at most 52")
}

func TestHitProbability(t *testing.T) {
	t.Run("flush draw with two to come", func(t *testing.T) {
		p, err := HitProbability(9, 47, 2)
		require.NoError(t, err)
		assert.InDelta(t, 1-703.0/1081.0, p, 1e-12)
		assert.InDelta(t, 0.3497, p, 1e-4)
	})

	t.Run("one to come", func(t *testing.T) {
		p, err := HitProbability(8, 46, 1)
		require.NoError(t, err)
		assert.InDelta(t, 8.0/46.0, p, 1e-12)
	})

	t.Run("no outs", func(t *testing.T) {
		p, err := HitProbability(0, 47, 2)
		require.NoError(t, err)
		assert.Zero(t, p)
	})

	t.Run("every card an out", func(t *testing.T) {
		p, err := HitProbability(46, 46, 1)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, p, 1e-12)
	})

	t.Run("more outs never hurts", func(t *testing.T) {
		prev := 0.0
		for outs := 0; outs <= 21; outs++ {
			p, err := HitProbability(outs, 47, 2)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, p, prev)
			prev = p
		}
	})
}

func TestHitProbabilityErrors(t *testing.T) {
	for _, draws := range []int{-1, 0, 3, 5} {
		_, err := HitProbability(9, 47, draws)
		assert.ErrorIs(t, err, ErrUnsupportedDraws, "draws=%d", draws)

		var drawsErr *UnsupportedDrawsError
		require.ErrorAs(t, err, &drawsErr)
		assert.Equal(t, draws, drawsErr.Draws)
	}

	_, err := HitProbability(48, 47, 2)
	assert.Error(t, err)
	_, err = HitProbability(-1, 47, 2)
	assert.Error(t, err)
	_, err = HitProbability(1, 1, 2)
	assert.Error(t, err)
}

func TestPotOdds(t *testing.T) {
	odds, err := PotOdds(50, 150)
	require.NoError(t, err)
	assert.InDelta(t, 25.0, odds, 1e-9)

	odds, err = PotOdds(0, 100)
	require.NoError(t, err)
	assert.Zero(t, odds)

	odds, err = PotOdds(0, 0)
	require.NoError(t, err)
	assert.Zero(t, odds)

	_, err = PotOdds(-10, 100)
	assert.Error(t, err)
}

func TestSnapshot(t *testing.T) {
	s := NewSnapshot(deck.MustParseCards("KsKh"), deck.MustParseCards("Kd9c9s2h"))

	assert.Equal(t, 46, s.Unseen())
	assert.Equal(t, 3, s.RankCounts[deck.King])
	assert.Equal(t, 2, s.SuitCounts[deck.Spades])
	assert.Equal(t, []deck.Rank{deck.King}, s.ByCount[3])
	assert.Equal(t, []deck.Rank{deck.Nine}, s.ByCount[2])
	assert.Equal(t, []deck.Rank{deck.Two}, s.ByCount[1])
	assert.Len(t, s.ByCount[0], 10)
	assert.True(t, s.HasRank(deck.Two))
	assert.False(t, s.HasRank(1))
}

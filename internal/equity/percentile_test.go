package equity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/showdown/internal/deck"
	"github.com/lox/showdown/internal/evaluator"
)

func TestRiverPercentile(t *testing.T) {
	t.Run("nuts", func(t *testing.T) {
		p, err := RiverPercentile(deck.MustParseCards("AsKs"), deck.MustParseCards("QsJsTs2c3d"))
		require.NoError(t, err)
		assert.Equal(t, evaluator.RoyalFlush, p.Hand.Category)
		assert.Equal(t, 990, p.Opponents)
		assert.Zero(t, p.Stronger)
		assert.Zero(t, p.Ties)
		assert.InDelta(t, 1.0, p.Value, 1e-12)
	})

	t.Run("board plays", func(t *testing.T) {
		p, err := RiverPercentile(deck.MustParseCards("2c3d"), deck.MustParseCards("AsKsQsJsTs"))
		require.NoError(t, err)
		assert.Equal(t, 990, p.Ties)
		assert.InDelta(t, 1.0, p.Value, 1e-12)
	})

	t.Run("weak hand", func(t *testing.T) {
		p, err := RiverPercentile(deck.MustParseCards("7c2d"), deck.MustParseCards("AhKhQh9s4c"))
		require.NoError(t, err)
		assert.Greater(t, p.Stronger, p.Opponents/2)
		assert.Less(t, p.Value, 0.5)
		assert.InDelta(t, 1-float64(p.Stronger)/float64(p.Opponents), p.Value, 1e-12)
	})

	t.Run("needs full board", func(t *testing.T) {
		_, err := RiverPercentile(deck.MustParseCards("AsKs"), deck.MustParseCards("QsJsTs"))
		assert.ErrorIs(t, err, evaluator.ErrMalformedHand)
	})
}

func TestPreflopPercentile(t *testing.T) {
	tests := []struct {
		hole     string
		key      string
		expected float64
	}{
		{"AsAh", "AA", 1.0},
		{"KsAs", "AKs", 0.982},
		{"AdKc", "AKo", 0.940},
		{"9cTd", "T9o", 0.568},
		{"7c2d", "72o", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			hole := deck.MustParseCards(tt.hole)
			key, err := StartingHandKey(hole)
			require.NoError(t, err)
			assert.Equal(t, tt.key, key)

			p, err := PreflopPercentile(hole)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, p, 1e-9)
		})
	}

	_, err := PreflopPercentile(deck.MustParseCards("As"))
	assert.Error(t, err)
	_, err = PreflopPercentile(deck.MustParseCards("AsAs"))
	assert.Error(t, err)
}

func TestStartingHandsComplete(t *testing.T) {
	assert.Len(t, startingHands, 169)
}

package equity

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/showdown/internal/deck"
	"github.com/lox/showdown/internal/evaluator"
)

func mustOuts(t *testing.T, hole, community string) *Report {
	t.Helper()
	r, err := OutsByCategory(deck.MustParseCards(hole), deck.MustParseCards(community))
	require.NoError(t, err)
	return r
}

func outsCount(t *testing.T, r *Report, c evaluator.Category) int {
	t.Helper()
	o, ok := r.Get(c)
	require.True(t, ok, "category %s missing", c)
	return o.Count
}

func TestOutsFlushDraw(t *testing.T) {
	r := mustOuts(t, "AhKh", "7h2h9c")

	assert.Equal(t, evaluator.HighCard, r.Hand.Category)
	assert.Equal(t, 2, r.Draws)
	assert.Equal(t, 47, r.Unseen)

	flush, ok := r.Get(evaluator.Flush)
	require.True(t, ok)
	assert.Equal(t, 9, flush.Count)
	assert.Len(t, flush.Cards, 9)
	for _, c := range flush.Cards {
		assert.Equal(t, deck.Hearts, c.Suit)
	}
	expected := 1 - float64(Binomial(38, 2))/float64(Binomial(47, 2))
	assert.InDelta(t, expected, flush.Probability, 1e-12)

	assert.Equal(t, 0, outsCount(t, r, evaluator.Straight))
	// 9h is already credited to the flush.
	assert.Equal(t, 14, outsCount(t, r, evaluator.OnePair))
	assert.Equal(t, 23, r.Total())
}

func TestOutsFlushDrawOnTurn(t *testing.T) {
	r := mustOuts(t, "AhKh", "7h2h9cQd")

	assert.Equal(t, 1, r.Draws)
	assert.Equal(t, 46, r.Unseen)

	flush, ok := r.Get(evaluator.Flush)
	require.True(t, ok)
	assert.Equal(t, 9, flush.Count)
	assert.InDelta(t, 9.0/46.0, flush.Probability, 1e-12)
}

func TestOutsStraightDraws(t *testing.T) {
	t.Run("open ended", func(t *testing.T) {
		r := mustOuts(t, "9c8d", "7h6s2c")
		assert.Equal(t, 8, outsCount(t, r, evaluator.Straight))
	})

	t.Run("gutshot", func(t *testing.T) {
		r := mustOuts(t, "9c8d", "6h5s2c")
		assert.Equal(t, 4, outsCount(t, r, evaluator.Straight))
	})

	t.Run("wheel", func(t *testing.T) {
		r := mustOuts(t, "Ac2d", "3h4s9c")
		o, ok := r.Get(evaluator.Straight)
		require.True(t, ok)
		assert.Equal(t, 4, o.Count)
		for _, c := range o.Cards {
			assert.Equal(t, deck.Five, c.Rank)
		}
	})

	t.Run("broadway", func(t *testing.T) {
		r := mustOuts(t, "AcKd", "QhJs3c")
		assert.Equal(t, 4, outsCount(t, r, evaluator.Straight))
	})
}

func TestOutsSet(t *testing.T) {
	r := mustOuts(t, "7s7h", "7dKc2s")

	assert.Equal(t, evaluator.ThreeOfAKind, r.Hand.Category)
	assert.Equal(t, 1, outsCount(t, r, evaluator.FourOfAKind))
	assert.Equal(t, 6, outsCount(t, r, evaluator.FullHouse))

	// Only strictly stronger categories are reported.
	_, ok := r.Get(evaluator.ThreeOfAKind)
	assert.False(t, ok)
	_, ok = r.Get(evaluator.OnePair)
	assert.False(t, ok)
	assert.Len(t, r.Outs, 6)
	assert.Equal(t, evaluator.RoyalFlush, r.Outs[0].Category)
}

func TestOutsTwoPairToFullHouse(t *testing.T) {
	r := mustOuts(t, "KsKh", "9d9c4s")

	assert.Equal(t, evaluator.TwoPair, r.Hand.Category)
	// Remaining kings and nines.
	assert.Equal(t, 4, outsCount(t, r, evaluator.FullHouse))
	assert.Equal(t, 0, outsCount(t, r, evaluator.FourOfAKind))
}

func TestOutsPairImprovements(t *testing.T) {
	r := mustOuts(t, "QsQh", "8d5c2s")

	assert.Equal(t, evaluator.OnePair, r.Hand.Category)
	assert.Equal(t, 2, outsCount(t, r, evaluator.ThreeOfAKind))
	assert.Equal(t, 9, outsCount(t, r, evaluator.TwoPair))
}

func TestOutsRoyalAndStraightFlush(t *testing.T) {
	r := mustOuts(t, "AhKh", "QhJh2c")

	royal, ok := r.Get(evaluator.RoyalFlush)
	require.True(t, ok)
	assert.Equal(t, []deck.Card{deck.NewCard(deck.Ten, deck.Hearts)}, royal.Cards)

	// Th is claimed by the royal flush.
	flush, ok := r.Get(evaluator.Flush)
	require.True(t, ok)
	assert.Equal(t, 8, flush.Count)
	assert.Equal(t, 3, outsCount(t, r, evaluator.Straight))
}

func TestOutsDeduplicated(t *testing.T) {
	r := mustOuts(t, "9h8h", "7h6h2c")

	assert.Equal(t, 2, outsCount(t, r, evaluator.StraightFlush))
	assert.Equal(t, 7, outsCount(t, r, evaluator.Flush))
	assert.Equal(t, 6, outsCount(t, r, evaluator.Straight))

	var seen deck.CardSet
	total := 0
	for _, o := range r.Outs {
		assert.Equal(t, len(o.Cards), o.Count)
		for _, c := range o.Cards {
			assert.False(t, seen.Contains(c), "%s credited twice", c)
			seen.Add(c)
		}
		total += o.Count
	}
	assert.Equal(t, total, r.Total())
}

func TestOutsNeverIncludeKnownCards(t *testing.T) {
	hole := deck.MustParseCards("Td9d")
	community := deck.MustParseCards("8d7c2d")
	r, err := OutsByCategory(hole, community)
	require.NoError(t, err)

	known := deck.NewCardSet(hole, community)
	for _, o := range r.Outs {
		for _, c := range o.Cards {
			assert.False(t, known.Contains(c), "%s is visible", c)
		}
	}
}

func TestOutsPreconditions(t *testing.T) {
	tests := []struct {
		name      string
		hole      string
		community string
	}{
		{"preflop", "AsKs", ""},
		{"river", "AsKs", "2c3c4c5c6c"},
		{"one hole card", "As", "2c3c4c"},
		{"duplicate", "AsKs", "As3c4c"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := OutsByCategory(deck.MustParseCards(tt.hole), deck.MustParseCards(tt.community))
			assert.ErrorIs(t, err, evaluator.ErrMalformedHand)
		})
	}
}

func TestReportJSON(t *testing.T) {
	r := mustOuts(t, "AhKh", "7h2h9c")

	data, err := json.Marshal(r)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), `{"royal_flush":`), string(data))

	var decoded map[string]struct {
		Cards       []string `json:"cards"`
		Outs        int      `json:"outs"`
		Probability float64  `json:"probability"`
	}
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Len(t, decoded, len(r.Outs))
	flush := decoded["flush"]
	assert.Equal(t, 9, flush.Outs)
	assert.Len(t, flush.Cards, 9)
	assert.Contains(t, flush.Cards, "Q♥")
	assert.InDelta(t, 1-703.0/1081.0, flush.Probability, 1e-12)
	assert.NotContains(t, decoded, "high_card")
}

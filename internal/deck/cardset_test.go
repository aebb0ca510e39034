package deck

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCardSet(t *testing.T) {
	hole := MustParseCards("AsKs")
	board := MustParseCards("Qs2h7d")

	cs := NewCardSet(hole, board)
	assert.Equal(t, 5, cs.Count())
	assert.True(t, cs.Contains(NewCard(Queen, Spades)))
	assert.False(t, cs.Contains(NewCard(Queen, Hearts)))
	assert.False(t, cs.Contains(Card{}))

	cs.Remove(NewCard(Two, Hearts))
	assert.Equal(t, 4, cs.Count())
	assert.Len(t, cs.Unseen(), 48)

	// Cards come back in canonical order regardless of insertion order.
	assert.Equal(t, MustParseCards("7dQsKsAs"), cs.Cards())
}

func TestCardSetAlgebra(t *testing.T) {
	a := NewCardSet(MustParseCards("AsKs"))
	b := NewCardSet(MustParseCards("KsQs"))

	assert.Equal(t, 3, a.Union(b).Count())
	assert.Equal(t, MustParseCards("As"), a.Without(b).Cards())
}

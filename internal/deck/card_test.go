package deck

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCards(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Card
		wantErr  bool
	}{
		{
			name:  "royal flush",
			input: "AsKsQsJsTs",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Spades, Rank: King},
				{Suit: Spades, Rank: Queen},
				{Suit: Spades, Rank: Jack},
				{Suit: Spades, Rank: Ten},
			},
		},
		{
			name:  "symbols with ten spelled out",
			input: "A♥ 10♦, 9♣",
			expected: []Card{
				{Suit: Hearts, Rank: Ace},
				{Suit: Diamonds, Rank: Ten},
				{Suit: Clubs, Rank: Nine},
			},
		},
		{
			name:  "case insensitive",
			input: "asKHqDjc",
			expected: []Card{
				{Suit: Spades, Rank: Ace},
				{Suit: Hearts, Rank: King},
				{Suit: Diamonds, Rank: Queen},
				{Suit: Clubs, Rank: Jack},
			},
		},
		{
			name:    "invalid rank",
			input:   "XsKs",
			wantErr: true,
		},
		{
			name:    "invalid suit",
			input:   "AsKx",
			wantErr: true,
		},
		{
			name:    "dangling rank",
			input:   "AsK",
			wantErr: true,
		},
		{
			name:     "empty string",
			input:    "",
			expected: []Card{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCards(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseCardList(t *testing.T) {
	cards, err := ParseCardList([]string{"A♣", "10♠", "2d"})
	require.NoError(t, err)
	assert.Equal(t, []Card{
		NewCard(Ace, Clubs),
		NewCard(Ten, Spades),
		NewCard(Two, Diamonds),
	}, cards)

	_, err = ParseCardList([]string{"A♣", "11♠"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "card 2")
}

func TestMustParseCardsPanics(t *testing.T) {
	assert.Panics(t, func() { MustParseCards("invalid") })
}

func TestCardString(t *testing.T) {
	assert.Equal(t, "A♠", NewCard(Ace, Spades).String())
	assert.Equal(t, "T♥", NewCard(Ten, Hearts).String())
	assert.Equal(t, "2♣", NewCard(Two, Clubs).String())
	assert.Equal(t, "?", Rank(1).String())
}

func TestCardTextRoundTrip(t *testing.T) {
	in := []Card{NewCard(Queen, Diamonds), NewCard(Five, Clubs)}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `["Q♦","5♣"]`, string(data))

	var out []Card
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)

	_, err = json.Marshal(Card{})
	assert.Error(t, err)
}

func TestSortByRank(t *testing.T) {
	cards := MustParseCards("2c Ah 9d As")
	SortByRank(cards)
	assert.Equal(t, MustParseCards("As Ah 9d 2c"), cards)
}

func TestFullDeck(t *testing.T) {
	cards := FullDeck()
	require.Len(t, cards, 52)
	seen := NewCardSet(cards)
	assert.Equal(t, 52, seen.Count())
	assert.Equal(t, NewCard(Two, Clubs), cards[0])
	assert.Equal(t, NewCard(Ace, Spades), cards[51])
}

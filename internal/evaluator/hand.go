package evaluator

import (
	"fmt"
	"strings"

	"github.com/lox/showdown/internal/deck"
)

// Hand represents an evaluated poker hand: its category and the ranks that
// break ties inside that category.
type Hand struct {
	Category Category
	Tiebreak []deck.Rank // Compared lexicographically, most significant first
	Cards    []deck.Card // The cards that make up the hand (display only)
}

// String returns a string representation of the hand
func (h Hand) String() string {
	ranks := make([]string, len(h.Tiebreak))
	for i, r := range h.Tiebreak {
		ranks[i] = tiebreakRankString(r)
	}
	return fmt.Sprintf("%s [%s]", h.Category, strings.Join(ranks, " "))
}

// Compare compares two hands and returns:
// -1 if h1 is weaker than h2
//
//	0 if h1 equals h2
//	1 if h1 is stronger than h2
func (h1 Hand) Compare(h2 Hand) int {
	if h1.Category < h2.Category {
		return -1
	}
	if h1.Category > h2.Category {
		return 1
	}

	for i := 0; i < len(h1.Tiebreak) && i < len(h2.Tiebreak); i++ {
		if h1.Tiebreak[i] < h2.Tiebreak[i] {
			return -1
		}
		if h1.Tiebreak[i] > h2.Tiebreak[i] {
			return 1
		}
	}

	// A longer key only happens when one side saw fewer cards; the extra
	// kicker makes it stronger.
	switch {
	case len(h1.Tiebreak) < len(h2.Tiebreak):
		return -1
	case len(h1.Tiebreak) > len(h2.Tiebreak):
		return 1
	}
	return 0
}

// Beats returns true if this hand beats the other hand
func (h1 Hand) Beats(h2 Hand) bool {
	return h1.Compare(h2) > 0
}

// Ties returns true if both hands are equal in strength
func (h1 Hand) Ties(h2 Hand) bool {
	return h1.Compare(h2) == 0
}

// tiebreakRankString renders the low ace of a wheel as "A".
func tiebreakRankString(r deck.Rank) string {
	if r == lowAce {
		return deck.Ace.String()
	}
	return r.String()
}

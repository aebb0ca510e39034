// Package equity turns a partially revealed hand into advisory numbers: the
// unseen cards that upgrade it to each stronger category, exact hit
// probabilities for the remaining draws, river percentiles and pot odds.
package equity

import "github.com/lox/showdown/internal/deck"

// Snapshot holds frequency tables derived once from the visible cards. It is
// never mutated after construction and every outs rule reads from it.
type Snapshot struct {
	Known      deck.CardSet
	RankCounts [deck.Ace + 1]int
	SuitCounts [len(deck.Suits)]int
	// ByCount lists ranks holding exactly n visible copies, highest rank first.
	ByCount [5][]deck.Rank
}

// NewSnapshot builds the tables for the given visible cards.
func NewSnapshot(cards ...[]deck.Card) *Snapshot {
	s := &Snapshot{Known: deck.NewCardSet(cards...)}
	for _, c := range s.Known.Cards() {
		s.RankCounts[c.Rank]++
		s.SuitCounts[c.Suit]++
	}
	for r := deck.Ace; r >= deck.Two; r-- {
		n := s.RankCounts[r]
		s.ByCount[n] = append(s.ByCount[n], r)
	}
	return s
}

// Unseen is the number of cards not visible to this player.
func (s *Snapshot) Unseen() int {
	return 52 - s.Known.Count()
}

// HasRank reports whether any visible card carries rank r. A rank of 1 is
// treated as the low ace.
func (s *Snapshot) HasRank(r deck.Rank) bool {
	if r == 1 {
		r = deck.Ace
	}
	return s.RankCounts[r] > 0
}

// remaining returns the unseen copies of every rank in ranks.
func (s *Snapshot) remaining(ranks []deck.Rank) deck.CardSet {
	var out deck.CardSet
	for _, r := range ranks {
		for _, suit := range deck.Suits {
			out.Add(deck.NewCard(r, suit))
		}
	}
	return out.Without(s.Known)
}

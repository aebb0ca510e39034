package deck

import "math/bits"

// CardSet represents a set of cards using a bitset for fast operations.
// Each valid card maps to one of the low 52 bits.
type CardSet uint64

// NewCardSet creates a CardSet from a slice of cards
func NewCardSet(cards ...[]Card) CardSet {
	var cs CardSet
	for _, group := range cards {
		for _, card := range group {
			cs.Add(card)
		}
	}
	return cs
}

// Add adds a card to the set
func (cs *CardSet) Add(card Card) {
	*cs |= 1 << card.index()
}

// Remove removes a card from the set
func (cs *CardSet) Remove(card Card) {
	*cs &^= 1 << card.index()
}

// Contains checks if a card is in the set
func (cs CardSet) Contains(card Card) bool {
	return card.Valid() && cs&(1<<card.index()) != 0
}

// Count returns the number of cards in the set
func (cs CardSet) Count() int {
	return bits.OnesCount64(uint64(cs))
}

// Union returns the cards present in either set
func (cs CardSet) Union(other CardSet) CardSet {
	return cs | other
}

// Without returns the cards of cs that are not in other
func (cs CardSet) Without(other CardSet) CardSet {
	return cs &^ other
}

// Cards lists the set in canonical order
func (cs CardSet) Cards() []Card {
	cards := make([]Card, 0, cs.Count())
	for rest := uint64(cs); rest != 0; rest &= rest - 1 {
		idx := bits.TrailingZeros64(rest)
		cards = append(cards, NewCard(Two+Rank(idx%13), Suit(idx/13)))
	}
	return cards
}

// Unseen lists every card not in the set, in canonical order.
func (cs CardSet) Unseen() []Card {
	const full = CardSet(1<<52 - 1)
	return full.Without(cs).Cards()
}

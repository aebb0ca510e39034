// Package evaluator ranks poker hands built from any 2 to 7 known cards.
//
// Every 5-card subset of the supplied cards is scored with a single scoring
// function and the strongest one wins. Seven cards give 21 subsets.
package evaluator

import (
	"sort"

	"github.com/lox/showdown/internal/deck"
)

const (
	maxHoleCards      = 2
	maxCommunityCards = 5
	minCards          = 2
	maxCards          = maxHoleCards + maxCommunityCards
	handSize          = 5
)

// lowAce is the effective rank of an ace playing low in a wheel.
const lowAce = deck.Rank(1)

// Evaluate returns the best hand that can be made from hole and community.
// Between 2 and 7 distinct valid cards must be supplied in total; anything
// else is a *MalformedHandError.
func Evaluate(hole, community []deck.Card) (Hand, error) {
	if err := validate(hole, community); err != nil {
		return Hand{}, err
	}

	cards := make([]deck.Card, 0, len(hole)+len(community))
	cards = append(cards, hole...)
	cards = append(cards, community...)
	return best(cards), nil
}

// EvaluateCards evaluates a flat slice of cards as if they were all community cards.
func EvaluateCards(cards []deck.Card) (Hand, error) {
	if len(cards) > maxCards {
		return Hand{}, malformed(nil, cards, "%d cards supplied, at most %d allowed", len(cards), maxCards)
	}
	if len(cards) <= maxCommunityCards {
		return Evaluate(nil, cards)
	}
	return Evaluate(cards[:len(cards)-maxCommunityCards], cards[len(cards)-maxCommunityCards:])
}

func validate(hole, community []deck.Card) error {
	switch total := len(hole) + len(community); {
	case len(hole) > maxHoleCards:
		return malformed(hole, community, "%d hole cards, at most %d allowed", len(hole), maxHoleCards)
	case len(community) > maxCommunityCards:
		return malformed(hole, community, "%d community cards, at most %d allowed", len(community), maxCommunityCards)
	case total < minCards || total > maxCards:
		return malformed(hole, community, "%d cards supplied, need %d to %d", total, minCards, maxCards)
	}

	var seen deck.CardSet
	for _, group := range [][]deck.Card{hole, community} {
		for _, card := range group {
			if !card.Valid() {
				return malformed(hole, community, "invalid card rank=%d suit=%d", card.Rank, card.Suit)
			}
			if seen.Contains(card) {
				return malformed(hole, community, "duplicate card %s", card)
			}
			seen.Add(card)
		}
	}
	return nil
}

// best scores every 5-card subset and keeps the strongest. Fewer than five
// cards are scored as a whole.
func best(cards []deck.Card) Hand {
	n := len(cards)
	if n <= handSize {
		return score(cards)
	}

	var subset [handSize]deck.Card
	var top Hand
	found := false
	for a := 0; a < n-4; a++ {
		for b := a + 1; b < n-3; b++ {
			for c := b + 1; c < n-2; c++ {
				for d := c + 1; d < n-1; d++ {
					for e := d + 1; e < n; e++ {
						subset = [handSize]deck.Card{cards[a], cards[b], cards[c], cards[d], cards[e]}
						candidate := score(subset[:])
						if !found || candidate.Beats(top) {
							top = candidate
							found = true
						}
					}
				}
			}
		}
	}
	return top
}

type rankGroup struct {
	rank  deck.Rank
	count int
}

// score classifies a single hand of at most five cards. Flushes and straights
// need all five cards.
func score(cards []deck.Card) Hand {
	var counts [deck.Ace + 1]int
	for _, c := range cards {
		counts[c.Rank]++
	}

	// Groups ordered by multiplicity, then rank, both descending. Flattening
	// their ranks yields the tiebreak key for every category except straights.
	groups := make([]rankGroup, 0, len(cards))
	for r := deck.Ace; r >= deck.Two; r-- {
		if counts[r] > 0 {
			groups = append(groups, rankGroup{rank: r, count: counts[r]})
		}
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].count > groups[j].count
	})

	keys := make([]deck.Rank, len(groups))
	for i, g := range groups {
		keys[i] = g.rank
	}

	hand := Hand{Cards: append([]deck.Card(nil), cards...)}
	deck.SortByRank(hand.Cards)

	flush := isFlush(cards)
	high, straight := straightHigh(groups, len(cards))

	switch {
	case flush && straight && high == deck.Ace:
		hand.Category, hand.Tiebreak = RoyalFlush, straightKey(high)
	case flush && straight:
		hand.Category, hand.Tiebreak = StraightFlush, straightKey(high)
	case groups[0].count == 4:
		hand.Category, hand.Tiebreak = FourOfAKind, keys
	case groups[0].count == 3 && len(groups) > 1 && groups[1].count >= 2:
		hand.Category, hand.Tiebreak = FullHouse, keys
	case flush:
		hand.Category, hand.Tiebreak = Flush, keys
	case straight:
		hand.Category, hand.Tiebreak = Straight, straightKey(high)
	case groups[0].count == 3:
		hand.Category, hand.Tiebreak = ThreeOfAKind, keys
	case groups[0].count == 2 && len(groups) > 1 && groups[1].count == 2:
		hand.Category, hand.Tiebreak = TwoPair, keys
	case groups[0].count == 2:
		hand.Category, hand.Tiebreak = OnePair, keys
	default:
		hand.Category, hand.Tiebreak = HighCard, keys
	}
	return hand
}

func isFlush(cards []deck.Card) bool {
	if len(cards) != handSize {
		return false
	}
	for _, c := range cards[1:] {
		if c.Suit != cards[0].Suit {
			return false
		}
	}
	return true
}

// straightHigh reports the effective high card of a five card straight.
// groups must be ordered by rank descending when all counts are one.
func straightHigh(groups []rankGroup, n int) (deck.Rank, bool) {
	if n != handSize || len(groups) != handSize {
		return 0, false
	}
	top, bottom := groups[0].rank, groups[handSize-1].rank
	if top-bottom == handSize-1 {
		return top, true
	}
	// Wheel: A-5-4-3-2 with the ace playing low.
	if top == deck.Ace && groups[1].rank == deck.Five && bottom == deck.Two {
		return deck.Five, true
	}
	return 0, false
}

// straightKey lists the five ranks of a straight topped by high, descending.
func straightKey(high deck.Rank) []deck.Rank {
	key := make([]deck.Rank, handSize)
	for i := range key {
		key[i] = high - deck.Rank(i)
	}
	return key
}

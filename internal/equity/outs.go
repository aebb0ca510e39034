package equity

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/lox/showdown/internal/deck"
	"github.com/lox/showdown/internal/evaluator"
)

// Outs describes the unseen cards that would lift a hand into Category.
type Outs struct {
	Category    evaluator.Category
	Cards       []deck.Card
	Count       int
	Probability float64 // Chance of hitting at least one out, 0..1
}

// Report is the full outs breakdown for one player.
type Report struct {
	Hand   evaluator.Hand
	Draws  int
	Unseen int
	Outs   []Outs // Strictly stronger categories, strongest first
}

// Get returns the outs for category c, if it was considered.
func (r *Report) Get(c evaluator.Category) (Outs, bool) {
	for _, o := range r.Outs {
		if o.Category == c {
			return o, true
		}
	}
	return Outs{}, false
}

// Total is the number of distinct cards that improve the hand at all.
func (r *Report) Total() int {
	var all deck.CardSet
	for _, o := range r.Outs {
		all = all.Union(deck.NewCardSet(o.Cards))
	}
	return all.Count()
}

type outsJSON struct {
	Cards       []deck.Card `json:"cards"`
	Outs        int         `json:"outs"`
	Probability float64     `json:"probability"`
}

// MarshalJSON renders the report as an object keyed by category, strongest
// first, e.g. {"flush": {"cards": ["2♥", ...], "outs": 9, "probability": 0.35}}.
func (r *Report) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, o := range r.Outs {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(o.Category.Key())
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(outsJSON{Cards: o.Cards, Outs: o.Count, Probability: o.Probability})
		if err != nil {
			return nil, fmt.Errorf("outs for %s: %w", o.Category, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// OutsByCategory lists, for every category stronger than the current hand,
// the unseen cards that would complete it. A card is only credited to the
// strongest category it completes. Exactly two hole cards and three or four
// community cards are required.
func OutsByCategory(hole, community []deck.Card) (*Report, error) {
	if len(hole) != 2 || (len(community) != 3 && len(community) != 4) {
		return nil, &evaluator.MalformedHandError{
			Reason:    fmt.Sprintf("outs need 2 hole and 3 or 4 community cards, got %d and %d", len(hole), len(community)),
			Hole:      append([]deck.Card(nil), hole...),
			Community: append([]deck.Card(nil), community...),
		}
	}

	hand, err := evaluator.Evaluate(hole, community)
	if err != nil {
		return nil, err
	}

	snap := NewSnapshot(hole, community)
	report := &Report{
		Hand:   hand,
		Draws:  5 - len(community),
		Unseen: snap.Unseen(),
	}

	var claimed deck.CardSet
	for _, category := range evaluator.Categories {
		if category <= hand.Category {
			continue
		}
		cards := categoryOuts(category, snap).Without(claimed)
		claimed = claimed.Union(cards)

		p, err := HitProbability(cards.Count(), report.Unseen, report.Draws)
		if err != nil {
			return nil, err
		}
		report.Outs = append(report.Outs, Outs{
			Category:    category,
			Cards:       cards.Cards(),
			Count:       cards.Count(),
			Probability: p,
		})
	}
	return report, nil
}

func categoryOuts(c evaluator.Category, s *Snapshot) deck.CardSet {
	switch c {
	case evaluator.RoyalFlush:
		return royalFlushOuts(s)
	case evaluator.StraightFlush:
		return straightFlushOuts(s)
	case evaluator.FourOfAKind:
		return s.remaining(s.ByCount[3])
	case evaluator.FullHouse:
		return fullHouseOuts(s)
	case evaluator.Flush:
		return flushOuts(s)
	case evaluator.Straight:
		return straightOuts(s)
	case evaluator.ThreeOfAKind:
		return s.remaining(s.ByCount[2])
	case evaluator.TwoPair:
		if len(s.ByCount[2]) == 0 {
			return 0
		}
		return s.remaining(s.ByCount[1])
	case evaluator.OnePair:
		return s.remaining(s.ByCount[1])
	case evaluator.HighCard:
		return 0
	}
	panic(fmt.Sprintf("unknown hand category %d", int(c)))
}

// runCard maps a straight position onto a real card; 1 is the low ace.
func runCard(r deck.Rank, suit deck.Suit) deck.Card {
	if r == 1 {
		r = deck.Ace
	}
	return deck.NewCard(r, suit)
}

// missingInRun returns the cards of the five-card run starting at low in suit
// that are not yet visible.
func missingInRun(s *Snapshot, low deck.Rank, suit deck.Suit) deck.CardSet {
	var need deck.CardSet
	for r := low; r < low+5; r++ {
		need.Add(runCard(r, suit))
	}
	return need.Without(s.Known)
}

func royalFlushOuts(s *Snapshot) deck.CardSet {
	var outs deck.CardSet
	for _, suit := range deck.Suits {
		if need := missingInRun(s, deck.Ten, suit); need.Count() <= 1 {
			outs = outs.Union(need)
		}
	}
	return outs
}

// straightFlushOuts covers the wheel through the king-high run.
func straightFlushOuts(s *Snapshot) deck.CardSet {
	var outs deck.CardSet
	for _, suit := range deck.Suits {
		for low := deck.Rank(1); low < deck.Ten; low++ {
			if need := missingInRun(s, low, suit); need.Count() <= 1 {
				outs = outs.Union(need)
			}
		}
	}
	return outs
}

func fullHouseOuts(s *Snapshot) deck.CardSet {
	switch {
	case len(s.ByCount[3]) > 0:
		return s.remaining(s.ByCount[1])
	case len(s.ByCount[2]) >= 2:
		return s.remaining(s.ByCount[2])
	}
	return 0
}

func flushOuts(s *Snapshot) deck.CardSet {
	var outs deck.CardSet
	for _, suit := range deck.Suits {
		if s.SuitCounts[suit] < 4 {
			continue
		}
		for r := deck.Two; r <= deck.Ace; r++ {
			outs.Add(deck.NewCard(r, suit))
		}
	}
	return outs.Without(s.Known)
}

// straightOuts finds every run with exactly one rank missing, ace low or high.
func straightOuts(s *Snapshot) deck.CardSet {
	var outs deck.CardSet
	for low := deck.Rank(1); low <= deck.Ten; low++ {
		missing := deck.Rank(0)
		gaps := 0
		for r := low; r < low+5; r++ {
			if !s.HasRank(r) {
				missing = r
				gaps++
			}
		}
		if gaps != 1 {
			continue
		}
		for _, suit := range deck.Suits {
			outs.Add(runCard(missing, suit))
		}
	}
	return outs.Without(s.Known)
}

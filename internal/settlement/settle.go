// Package settlement pays out a finished hand: it slices the pot into side-pot
// layers by contribution level and splits each layer among the best eligible
// hands.
package settlement

import (
	"io"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/lox/showdown/internal/deck"
	"github.com/lox/showdown/internal/evaluator"
)

// LayerPayout records who won one layer and how much each winner received.
type LayerPayout struct {
	Layer   PotLayer
	Winners []int // Ascending ID
	Amounts []int // Aligned with Winners
}

// Result is the outcome of settling one hand.
type Result struct {
	Total       int
	Layers      []PotLayer
	Payouts     []LayerPayout
	Winnings    map[int]int // Every participant, zero for losers
	Hands       map[int]evaluator.Hand
	Uncontested bool
}

// WinningsFor returns the chips awarded to participant id.
func (r *Result) WinningsFor(id int) int {
	return r.Winnings[id]
}

// Net returns winnings minus chips committed for each participant.
func (r *Result) Net(participants []Participant) map[int]int {
	net := make(map[int]int, len(participants))
	for _, p := range participants {
		net[p.ID] = r.Winnings[p.ID] - p.Committed
	}
	return net
}

// Engine settles hands. It holds no per-hand state and is safe for
// concurrent use.
type Engine struct {
	logger *log.Logger
}

// New creates an engine. A nil logger discards output.
func New(logger *log.Logger) *Engine {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Engine{logger: logger.WithPrefix("settlement")}
}

// Settle distributes the pot among participants given the final community
// cards. Every chip committed is paid to exactly one contending participant;
// anything else is an *UnderdeterminedSettlementError.
func (e *Engine) Settle(participants []Participant, community []deck.Card) (*Result, error) {
	sorted := sortedByID(participants)
	total, err := validate(sorted)
	if err != nil {
		return nil, err
	}

	result := &Result{
		Total:    total,
		Winnings: make(map[int]int, len(sorted)),
		Hands:    make(map[int]evaluator.Hand),
	}
	for _, p := range sorted {
		result.Winnings[p.ID] = 0
	}

	var contenders []Participant
	for _, p := range sorted {
		if p.Status.Contending() {
			contenders = append(contenders, p)
		}
	}

	if len(contenders) == 1 {
		e.settleUncontested(result, sorted, contenders[0])
		if err := check(result, sorted); err != nil {
			return nil, err
		}
		return result, nil
	}

	layers, err := BuildLayers(sorted)
	if err != nil {
		return nil, err
	}
	result.Layers = layers

	for _, p := range contenders {
		hand, err := evaluator.Evaluate(p.Hole, community)
		if err != nil {
			return nil, wrapParticipant(p.ID, err)
		}
		result.Hands[p.ID] = hand
		e.logger.Debug("evaluated hand", "participant", p.ID, "hand", hand)
	}

	for _, layer := range layers {
		winners := bestHands(layer.Eligible, result.Hands)
		payout := split(layer, winners)
		for i, id := range payout.Winners {
			result.Winnings[id] += payout.Amounts[i]
		}
		result.Payouts = append(result.Payouts, payout)
		e.logger.Debug("awarded layer",
			"threshold", layer.Threshold,
			"amount", layer.Amount,
			"eligible", layer.Eligible,
			"winners", payout.Winners,
			"amounts", payout.Amounts)
	}

	if err := check(result, sorted); err != nil {
		return nil, err
	}
	return result, nil
}

func (e *Engine) settleUncontested(result *Result, sorted []Participant, winner Participant) {
	layer := PotLayer{Eligible: []int{winner.ID}}
	for _, p := range sorted {
		if p.Committed > 0 {
			layer.Contributors = append(layer.Contributors, p.ID)
		}
		if p.Committed > layer.Threshold {
			layer.Threshold = p.Committed
		}
	}
	layer.Amount = result.Total

	result.Uncontested = true
	result.Layers = []PotLayer{layer}
	result.Payouts = []LayerPayout{{Layer: layer, Winners: []int{winner.ID}, Amounts: []int{result.Total}}}
	result.Winnings[winner.ID] = result.Total
	e.logger.Debug("uncontested pot", "participant", winner.ID, "amount", result.Total)
}

func validate(sorted []Participant) (int, error) {
	if len(sorted) == 0 {
		return 0, underdetermined(sorted, 0, 0, "no participants")
	}

	total := 0
	contenders := 0
	for i, p := range sorted {
		if i > 0 && sorted[i-1].ID == p.ID {
			return 0, underdetermined(sorted, total, 0, "duplicate participant id %d", p.ID)
		}
		switch {
		case p.Committed < 0:
			return 0, underdetermined(sorted, total, 0, "participant %d committed %d chips", p.ID, p.Committed)
		case p.RoundBet < 0:
			return 0, underdetermined(sorted, total, 0, "participant %d has round bet %d", p.ID, p.RoundBet)
		case p.RoundBet > p.Committed:
			return 0, underdetermined(sorted, total, 0,
				"participant %d round bet %d exceeds committed %d", p.ID, p.RoundBet, p.Committed)
		case p.Status != Active && p.Status != Folded && p.Status != AllIn:
			return 0, underdetermined(sorted, total, 0, "participant %d has unknown status %d", p.ID, int(p.Status))
		}
		total += p.Committed
		if p.Status.Contending() {
			contenders++
		}
	}

	if contenders == 0 {
		return 0, underdetermined(sorted, total, 0, "every participant folded")
	}
	return total, nil
}

// bestHands returns the eligible IDs holding the strongest hand, in the order given.
func bestHands(eligible []int, hands map[int]evaluator.Hand) []int {
	var winners []int
	var best evaluator.Hand
	for _, id := range eligible {
		hand := hands[id]
		switch {
		case len(winners) == 0 || hand.Beats(best):
			winners = []int{id}
			best = hand
		case hand.Ties(best):
			winners = append(winners, id)
		}
	}
	return winners
}

// split divides a layer among winners. The odd chips go one each to the
// lowest IDs.
func split(layer PotLayer, winners []int) LayerPayout {
	ordered := append([]int(nil), winners...)
	sort.Ints(ordered)

	base := layer.Amount / len(ordered)
	remainder := layer.Amount % len(ordered)

	payout := LayerPayout{Layer: layer, Winners: ordered, Amounts: make([]int, len(ordered))}
	for i := range ordered {
		payout.Amounts[i] = base
		if i < remainder {
			payout.Amounts[i]++
		}
	}
	return payout
}

// check verifies that the pot was emptied exactly and only to contenders.
func check(result *Result, sorted []Participant) error {
	paid := 0
	for _, p := range sorted {
		won := result.Winnings[p.ID]
		if won != 0 && !p.Status.Contending() {
			return underdetermined(sorted, result.Total, paid, "folded participant %d awarded %d", p.ID, won)
		}
		paid += won
	}
	if paid != result.Total {
		return underdetermined(sorted, result.Total, paid, "paid %d of %d", paid, result.Total)
	}
	return nil
}

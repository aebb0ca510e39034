package equity

import (
	"fmt"

	"github.com/lox/showdown/internal/deck"
	"github.com/lox/showdown/internal/evaluator"
)

// Percentile ranks a complete hand against every holding an opponent could
// have on the same board.
type Percentile struct {
	Hand      evaluator.Hand
	Opponents int // Distinct opponent holdings enumerated
	Stronger  int
	Ties      int
	Value     float64 // 1 - Stronger/Opponents; 1.0 is the nuts
}

// RiverPercentile enumerates all C(unseen, 2) opponent holdings once the
// board is complete and reports how many beat hole.
func RiverPercentile(hole, community []deck.Card) (Percentile, error) {
	if len(hole) != 2 || len(community) != 5 {
		return Percentile{}, &evaluator.MalformedHandError{
			Reason:    fmt.Sprintf("river percentile needs 2 hole and 5 community cards, got %d and %d", len(hole), len(community)),
			Hole:      append([]deck.Card(nil), hole...),
			Community: append([]deck.Card(nil), community...),
		}
	}

	mine, err := evaluator.Evaluate(hole, community)
	if err != nil {
		return Percentile{}, err
	}

	result := Percentile{Hand: mine}
	unseen := deck.NewCardSet(hole, community).Unseen()
	opp := make([]deck.Card, 2)
	for i := 0; i < len(unseen); i++ {
		for j := i + 1; j < len(unseen); j++ {
			opp[0], opp[1] = unseen[i], unseen[j]
			theirs, err := evaluator.Evaluate(opp, community)
			if err != nil {
				return Percentile{}, err
			}
			result.Opponents++
			switch theirs.Compare(mine) {
			case 1:
				result.Stronger++
			case 0:
				result.Ties++
			}
		}
	}

	result.Value = 1 - float64(result.Stronger)/float64(result.Opponents)
	return result, nil
}

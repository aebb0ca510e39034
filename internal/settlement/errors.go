package settlement

import (
	"errors"
	"fmt"
)

// ErrUnderdetermined matches every *UnderdeterminedSettlementError via errors.Is.
var ErrUnderdetermined = errors.New("underdetermined settlement")

// UnderdeterminedSettlementError is returned when the pot cannot be paid out
// exactly. Chips are never dropped or guessed at.
type UnderdeterminedSettlementError struct {
	Reason       string
	TotalPot     int
	LayerTotal   int
	Participants []int
}

func (e *UnderdeterminedSettlementError) Error() string {
	return fmt.Sprintf("underdetermined settlement: %s (pot %d, layers %d, participants %v)",
		e.Reason, e.TotalPot, e.LayerTotal, e.Participants)
}

func (e *UnderdeterminedSettlementError) Is(target error) bool {
	return target == ErrUnderdetermined
}

func underdetermined(participants []Participant, total, layerTotal int, format string, args ...any) error {
	ids := make([]int, len(participants))
	for i, p := range participants {
		ids[i] = p.ID
	}
	return &UnderdeterminedSettlementError{
		Reason:       fmt.Sprintf(format, args...),
		TotalPot:     total,
		LayerTotal:   layerTotal,
		Participants: ids,
	}
}

func wrapParticipant(id int, err error) error {
	return fmt.Errorf("participant %d: %w", id, err)
}

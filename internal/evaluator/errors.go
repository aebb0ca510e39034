package evaluator

import (
	"errors"
	"fmt"

	"github.com/lox/showdown/internal/deck"
)

// ErrMalformedHand matches every *MalformedHandError via errors.Is.
var ErrMalformedHand = errors.New("malformed hand")

// MalformedHandError reports cards that violate the evaluator's input contract:
// duplicates, invalid cards or a card count outside the supported range. It
// points at broken deck management upstream and is never normalized away.
type MalformedHandError struct {
	Reason    string
	Hole      []deck.Card
	Community []deck.Card
}

func (e *MalformedHandError) Error() string {
	return fmt.Sprintf("malformed hand: %s (hole %v, community %v)", e.Reason, e.Hole, e.Community)
}

func (e *MalformedHandError) Is(target error) bool {
	return target == ErrMalformedHand
}

func malformed(hole, community []deck.Card, format string, args ...any) error {
	return &MalformedHandError{
		Reason:    fmt.Sprintf(format, args...),
		Hole:      append([]deck.Card(nil), hole...),
		Community: append([]deck.Card(nil), community...),
	}
}

package settlement

import (
	"fmt"

	"github.com/lox/showdown/internal/deck"
)

// Status is a participant's standing at showdown.
type Status int

const (
	Active Status = iota
	Folded
	AllIn
)

// String returns the canonical name used in hand files.
func (s Status) String() string {
	switch s {
	case Active:
		return "active"
	case Folded:
		return "folded"
	case AllIn:
		return "all_in"
	default:
		return "unknown"
	}
}

// Contending reports whether the participant can still win chips.
func (s Status) Contending() bool {
	return s == Active || s == AllIn
}

// ParseStatus is the inverse of String.
func ParseStatus(s string) (Status, error) {
	switch s {
	case "active":
		return Active, nil
	case "folded":
		return Folded, nil
	case "all_in", "allin", "all-in":
		return AllIn, nil
	default:
		return Active, fmt.Errorf("unknown participant status %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Participant is one player's state once betting is complete.
type Participant struct {
	ID        int // Unique; ascending ID breaks odd-chip ties
	Hole      []deck.Card
	Status    Status
	Committed int // Chips put in the pot this hand
	RoundBet  int // Portion of Committed from the current betting round
}

func (p Participant) String() string {
	return fmt.Sprintf("P%d(%s, %d)", p.ID, p.Status, p.Committed)
}

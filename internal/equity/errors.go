package equity

import (
	"errors"
	"fmt"
)

// ErrUnsupportedDraws matches every *UnsupportedDrawsError via errors.Is.
var ErrUnsupportedDraws = errors.New("unsupported number of draws")

// UnsupportedDrawsError reports a probability request outside the one or two
// remaining community cards the calculator supports.
type UnsupportedDrawsError struct {
	Draws int
}

func (e *UnsupportedDrawsError) Error() string {
	return fmt.Sprintf("unsupported number of draws: %d (want 1 or 2)", e.Draws)
}

func (e *UnsupportedDrawsError) Is(target error) bool {
	return target == ErrUnsupportedDraws
}

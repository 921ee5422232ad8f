package schematic

import (
	"errors"
	"fmt"
)

// ErrOverflow is the sentinel wrapped by OverflowError.
var ErrOverflow = errors.New("number does not fit in 64 bits")

// OverflowError reports a digit run too long to be held as a uint64.
type OverflowError struct {
	Row    int    // Zero-based row index, -1 when scanning a lone row
	Start  int    // Zero-based column of the first digit
	Digits string // The offending digits
}

// Error implements the error interface for OverflowError. Positions are
// printed one-based.
func (e *OverflowError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("column %d: %q: %v", e.Start+1, e.Digits, ErrOverflow)
	}
	return fmt.Sprintf("row %d, column %d: %q: %v", e.Row+1, e.Start+1, e.Digits, ErrOverflow)
}

// Unwrap returns ErrOverflow so callers can use errors.Is.
func (e *OverflowError) Unwrap() error {
	return ErrOverflow
}

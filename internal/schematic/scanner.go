package schematic

import "math"

// separator marks an empty cell.
const separator = '.'

// Run is a maximal sequence of digits on one row.
type Run struct {
	Value uint64
	Start int // inclusive
	End   int // inclusive
}

// RunScanner yields the digit runs of a single row from left to right.
// It holds a cursor into the row and is not safe for concurrent use.
// Once Next reports exhaustion the scanner stays exhausted.
type RunScanner struct {
	row    []rune
	cursor int
}

// NewRunScanner creates a scanner positioned at the first column of row.
func NewRunScanner(row []rune) *RunScanner {
	return &RunScanner{row: row}
}

// Next returns the next digit run, or false once the row holds no more digits.
// The cursor resumes right after the end of the previous run.
//
// A run whose value exceeds math.MaxUint64 yields an *OverflowError. The
// cursor still moves past that run, so scanning may continue.
func (s *RunScanner) Next() (Run, bool, error) {
	start := -1
	overflow := false
	var value uint64

	i := s.cursor
	for ; i < len(s.row); i++ {
		c := s.row[i]
		if !isDigit(c) {
			if start >= 0 {
				break
			}
			continue
		}

		if start < 0 {
			start = i
		}
		d := uint64(c - '0')
		if value > (math.MaxUint64-d)/10 {
			overflow = true
		}
		value = value*10 + d
	}
	s.cursor = i

	if start < 0 {
		return Run{}, false, nil
	}
	if overflow {
		return Run{}, false, &OverflowError{Row: -1, Start: start, Digits: string(s.row[start:i])}
	}

	return Run{Value: value, Start: start, End: i - 1}, true, nil
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

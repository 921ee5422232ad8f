package schematic

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"
)

// FindPartNumbers returns the value of every digit run in text that touches
// a symbol, in row-major order. Equal values found in different runs are
// all reported.
func FindPartNumbers(text string) ([]uint64, error) {
	rows := Rows(text)
	values := []uint64{}

	for i, row := range rows {
		var above, below []rune
		if i > 0 {
			above = rows[i-1]
		}
		if i < len(rows)-1 {
			below = rows[i+1]
		}

		found, err := partNumbersOnRow(row, above, below)
		if err != nil {
			var overflow *OverflowError
			if errors.As(err, &overflow) {
				overflow.Row = i
			}
			return nil, err
		}
		values = append(values, found...)
	}

	return values, nil
}

// partNumbersOnRow collects the qualifying runs of a single row.
func partNumbersOnRow(row, above, below []rune) ([]uint64, error) {
	var values []uint64

	scanner := NewRunScanner(row)
	for {
		run, ok, err := scanner.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return values, nil
		}
		if run.Qualifies(row, above, below) {
			values = append(values, run.Value)
		}
	}
}

// Rows splits text into grid rows. Lines end at '\n' with an optional
// preceding '\r'; a final line terminator does not start another row.
func Rows(text string) [][]rune {
	if text == "" {
		return nil
	}

	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	rows := make([][]rune, len(lines))
	for i, line := range lines {
		rows[i] = []rune(strings.TrimSuffix(line, "\r"))
	}
	return rows
}

// Ragged reports whether the rows of text differ in length.
func Ragged(text string) bool {
	rows := Rows(text)
	for _, row := range rows {
		if len(row) != len(rows[0]) {
			return true
		}
	}
	return false
}

// Sum adds up the values found by FindPartNumbers. A total above
// math.MaxUint64 is reported as ErrOverflow instead of wrapping.
func Sum(values []uint64) (uint64, error) {
	var total, carry uint64
	for i, v := range values {
		total, carry = bits.Add64(total, v, 0)
		if carry != 0 {
			return 0, fmt.Errorf("sum of the first %d part numbers: %w", i+1, ErrOverflow)
		}
	}
	return total, nil
}

// Package calibration recovers calibration values from lines of text.
//
// Each line's value combines the first and the last number found on it into
// a two-digit number. What counts as a number is decided by a NumberProvider:
// DigitProvider only sees decimal digits, TextProvider also understands the
// spelled-out words "one" through "nine".
package calibration

import (
	"errors"
	"fmt"
)

// ErrUnknownPart is returned by ProviderForPart for anything but 1 or 2.
var ErrUnknownPart = errors.New("unknown part, choose 1 or 2")

// NumberProvider extracts the single-digit numbers of every line of text,
// in reading order. The outer slice has one entry per line.
type NumberProvider interface {
	ExtractNumbers(text string) [][]uint32
}

// Calibrate returns first*10+last for every line that holds at least one
// number. Lines without numbers are skipped.
func Calibrate(text string, provider NumberProvider) []uint32 {
	var values []uint32
	for _, line := range provider.ExtractNumbers(text) {
		if len(line) == 0 {
			continue
		}
		values = append(values, line[0]*10+line[len(line)-1])
	}
	return values
}

// ProviderForPart picks the provider used by each part of the puzzle.
func ProviderForPart(part int) (NumberProvider, error) {
	switch part {
	case 1:
		return DigitProvider{}, nil
	case 2:
		return TextProvider{}, nil
	default:
		return nil, fmt.Errorf("part %d: %w", part, ErrUnknownPart)
	}
}

// Sum adds up calibration values.
func Sum(values []uint32) uint64 {
	var total uint64
	for _, v := range values {
		total += uint64(v)
	}
	return total
}

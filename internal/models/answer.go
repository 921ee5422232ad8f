package models

import (
	"fmt"
	"time"
)

// Puzzle days
const (
	DayOne   = 1 // Calibration values
	DayTwo   = 2 // Cube games
	DayThree = 3 // Engine schematic
)

// DayName returns the spelled-out name used by the CLI ("one", "two", ...).
func DayName(day int) string {
	switch day {
	case DayOne:
		return "one"
	case DayTwo:
		return "two"
	case DayThree:
		return "three"
	default:
		return fmt.Sprintf("day%d", day)
	}
}

// Answer is the outcome of solving one part of a puzzle for one input.
type Answer struct {
	RunID     string        `yaml:"run_id"`
	Day       int           `yaml:"day"`
	Part      int           `yaml:"part"`
	InputPath string        `yaml:"input"`
	Values    []uint64      `yaml:"values,omitempty"` // Per-item results, in discovery order
	Result    uint64        `yaml:"result"`           // The reported answer
	Duration  time.Duration `yaml:"-"`
	SolvedAt  time.Time     `yaml:"solved_at"`
}

// Count returns the number of items that contributed to Result.
func (a Answer) Count() int {
	return len(a.Values)
}

// Label formats the answer's day and part, e.g. "day three part 1".
func (a Answer) Label() string {
	return fmt.Sprintf("day %s part %d", DayName(a.Day), a.Part)
}

// Package cubes evaluates the cube games of day two.
//
// Each input line records one game:
//
//	Game 3: 8 green, 6 blue, 20 red; 5 blue, 4 red, 13 green; 5 green, 1 red
//
// Sets are separated by "; " and colored counts within a set by ", ".
package cubes

import (
	"fmt"
	"strconv"
	"strings"
)

// Set is the number of cubes of each color revealed at once.
type Set struct {
	Red   int `yaml:"red"`
	Green int `yaml:"green"`
	Blue  int `yaml:"blue"`
}

// DefaultLimits is the bag content used by part one.
var DefaultLimits = Set{Red: 12, Green: 13, Blue: 14}

// Power multiplies the three counts.
func (s Set) Power() int {
	return s.Red * s.Green * s.Blue
}

// Game is one parsed input line.
type Game struct {
	ID   int
	Sets []Set
}

// Possible reports whether every set fits within limits.
func (g Game) Possible(limits Set) bool {
	for _, s := range g.Sets {
		if s.Red > limits.Red || s.Green > limits.Green || s.Blue > limits.Blue {
			return false
		}
	}
	return true
}

// Least returns the fewest cubes of each color that make the game possible.
func (g Game) Least() Set {
	var least Set
	for _, s := range g.Sets {
		least.Red = max(least.Red, s.Red)
		least.Green = max(least.Green, s.Green)
		least.Blue = max(least.Blue, s.Blue)
	}
	return least
}

// ParseError describes a line that is not a valid game record.
type ParseError struct {
	Line   int // 1-based, 0 when unknown
	Reason string
}

// Error implements the error interface for ParseError.
func (e *ParseError) Error() string {
	if e.Line == 0 {
		return "invalid game: " + e.Reason
	}
	return fmt.Sprintf("line %d: invalid game: %s", e.Line, e.Reason)
}

// ParseGame parses a single game record.
func ParseGame(line string) (Game, error) {
	head, body, ok := strings.Cut(line, ": ")
	if !ok {
		return Game{}, &ParseError{Reason: "missing \": \" after game id"}
	}

	idText, ok := strings.CutPrefix(head, "Game ")
	if !ok {
		return Game{}, &ParseError{Reason: fmt.Sprintf("expected \"Game <id>\", got %q", head)}
	}
	id, err := strconv.Atoi(idText)
	if err != nil {
		return Game{}, &ParseError{Reason: fmt.Sprintf("game id %q is not a number", idText)}
	}

	game := Game{ID: id}
	for _, setText := range strings.Split(body, "; ") {
		set, err := parseSet(setText)
		if err != nil {
			return Game{}, err
		}
		game.Sets = append(game.Sets, set)
	}
	return game, nil
}

func parseSet(text string) (Set, error) {
	var set Set
	for _, part := range strings.Split(text, ", ") {
		countText, color, ok := strings.Cut(part, " ")
		if !ok {
			return Set{}, &ParseError{Reason: fmt.Sprintf("expected \"<count> <color>\", got %q", part)}
		}
		count, err := strconv.Atoi(countText)
		if err != nil || count < 0 {
			return Set{}, &ParseError{Reason: fmt.Sprintf("count %q is not a number", countText)}
		}

		switch color {
		case "red":
			set.Red = count
		case "green":
			set.Green = count
		case "blue":
			set.Blue = count
		default:
			return Set{}, &ParseError{Reason: fmt.Sprintf("unexpected color %q", color)}
		}
	}
	return set, nil
}

// ParseGames parses every non-empty line of text.
func ParseGames(text string) ([]Game, error) {
	var games []Game
	for i, line := range strings.Split(text, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}
		game, err := ParseGame(line)
		if err != nil {
			if pe, ok := err.(*ParseError); ok {
				pe.Line = i + 1
			}
			return nil, err
		}
		games = append(games, game)
	}
	return games, nil
}

// PossibleGames returns the games that fit within limits, in input order.
func PossibleGames(text string, limits Set) ([]Game, error) {
	games, err := ParseGames(text)
	if err != nil {
		return nil, err
	}

	var possible []Game
	for _, g := range games {
		if g.Possible(limits) {
			possible = append(possible, g)
		}
	}
	return possible, nil
}

// LeastCubes returns the minimal set of every game, in input order.
func LeastCubes(text string) ([]Set, error) {
	games, err := ParseGames(text)
	if err != nil {
		return nil, err
	}

	sets := make([]Set, 0, len(games))
	for _, g := range games {
		sets = append(sets, g.Least())
	}
	return sets, nil
}

// SumIDs adds up the ids of games.
func SumIDs(games []Game) int {
	total := 0
	for _, g := range games {
		total += g.ID
	}
	return total
}

// SumPowers adds up the power of every set.
func SumPowers(sets []Set) int {
	total := 0
	for _, s := range sets {
		total += s.Power()
	}
	return total
}

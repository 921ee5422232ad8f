package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/harrison/aoc/internal/cubes"
	"github.com/harrison/aoc/internal/models"
)

// NewDayTwoCommand creates the cube game solver
func NewDayTwoCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "two",
		Short: "Analyze cube games",
		Long: `Analyze games of cubes drawn from a bag.

Part 1 sums the IDs of the games possible with the bag content, taken from
--red/--green/--blue, then the cubes section of the config, then 12 red,
13 green and 14 blue. Part 2 sums the powers of the fewest cubes each game
needs. --part 0 solves both parts from a single read of the input.`,
		Args: cobra.NoArgs,
		RunE: runDayTwo,
	}

	addInputFlags(cmd)
	addPartFlag(cmd)
	cmd.Flags().Bool("full-output", false, "Print every game ID or power before the sum")
	cmd.Flags().Int("red", -1, "Red cubes in the bag (-1 = use config)")
	cmd.Flags().Int("green", -1, "Green cubes in the bag (-1 = use config)")
	cmd.Flags().Int("blue", -1, "Blue cubes in the bag (-1 = use config)")

	return cmd
}

func runDayTwo(cmd *cobra.Command, args []string) error {
	parts, err := partsFlag(cmd)
	if err != nil {
		return err
	}

	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	path, _ := cmd.Flags().GetString("path")
	full, _ := cmd.Flags().GetBool("full-output")
	for _, part := range parts {
		if err := solveDayTwo(cmd, s, path, part, full); err != nil {
			return s.fail(err)
		}
	}
	return nil
}

func solveDayTwo(cmd *cobra.Command, s *session, path string, part int, full bool) error {
	started := time.Now()

	text, err := s.load(path)
	if err != nil {
		return err
	}

	answer := models.Answer{Day: models.DayTwo, Part: part, InputPath: path}

	if part == 1 {
		limits := bagLimits(cmd, s.cfg.Cubes.Limits())
		s.log.LogDebug(fmt.Sprintf("Bag: %d red, %d green, %d blue", limits.Red, limits.Green, limits.Blue))

		games, err := cubes.PossibleGames(text, limits)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
		for _, g := range games {
			answer.Values = append(answer.Values, uint64(g.ID))
		}
		answer.Result = uint64(cubes.SumIDs(games))
	} else {
		sets, err := cubes.LeastCubes(text)
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", path, err)
		}
		for _, set := range sets {
			answer.Values = append(answer.Values, uint64(set.Power()))
		}
		answer.Result = uint64(cubes.SumPowers(sets))
	}

	return s.publish(cmd.Context(), cmd, answer, full, started)
}

// bagLimits applies the color flags that were given on top of limits.
func bagLimits(cmd *cobra.Command, limits cubes.Set) cubes.Set {
	if v, _ := cmd.Flags().GetInt("red"); v >= 0 {
		limits.Red = v
	}
	if v, _ := cmd.Flags().GetInt("green"); v >= 0 {
		limits.Green = v
	}
	if v, _ := cmd.Flags().GetInt("blue"); v >= 0 {
		limits.Blue = v
	}
	return limits
}

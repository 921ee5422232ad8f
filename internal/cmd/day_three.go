package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/harrison/aoc/internal/display"
	"github.com/harrison/aoc/internal/models"
	"github.com/harrison/aoc/internal/schematic"
)

// NewDayThreeCommand creates the engine schematic solver
func NewDayThreeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "three",
		Short: "Sum engine part numbers",
		Long: `Find every number in the engine schematic that touches a symbol,
diagonals included, and sum them. '.' is empty space; any character that
is neither a digit nor '.' is a symbol.`,
		Args: cobra.NoArgs,
		RunE: runDayThree,
	}

	addInputFlags(cmd)
	cmd.Flags().Bool("full-output", false, "Print every part number before the sum")

	return cmd
}

func runDayThree(cmd *cobra.Command, args []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}
	defer s.Close()

	path, _ := cmd.Flags().GetString("path")
	full, _ := cmd.Flags().GetBool("full-output")
	if err := solveDayThree(cmd, s, path, full); err != nil {
		return s.fail(err)
	}
	return nil
}

func solveDayThree(cmd *cobra.Command, s *session, path string, full bool) error {
	started := time.Now()

	text, err := s.load(path)
	if err != nil {
		return err
	}

	if schematic.Ragged(text) {
		display.WarnRaggedSchematic(path).Display(cmd.ErrOrStderr())
	}

	values, err := schematic.FindPartNumbers(text)
	if err != nil {
		return fmt.Errorf("failed to scan %s: %w", path, err)
	}
	s.log.LogDebug(fmt.Sprintf("Found %d part numbers", len(values)))

	total, err := schematic.Sum(values)
	if err != nil {
		return fmt.Errorf("failed to sum part numbers of %s: %w", path, err)
	}

	answer := models.Answer{
		Day:       models.DayThree,
		Part:      1,
		InputPath: path,
		Values:    values,
		Result:    total,
	}

	return s.publish(cmd.Context(), cmd, answer, full, started)
}

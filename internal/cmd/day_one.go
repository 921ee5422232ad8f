package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/harrison/aoc/internal/calibration"
	"github.com/harrison/aoc/internal/models"
)

// NewDayOneCommand creates the calibration solver
func NewDayOneCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "one",
		Short: "Sum calibration values",
		Long: `Combine the first and last number of every line into a two-digit
calibration value and sum them.

Part 1 only counts digits. Part 2 also counts spelled-out numbers
("one" to "nine"), including overlapping ones such as "eightwo".
--part 0 solves both parts from a single read of the input.`,
		Args: cobra.NoArgs,
		RunE: runDayOne,
	}

	addInputFlags(cmd)
	addPartFlag(cmd)
	cmd.Flags().Bool("full-output", false, "Print every calibration value before the sum")

	return cmd
}

func runDayOne(cmd *cobra.Command, args []string) error {
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
		if err := solveDayOne(cmd, s, path, part, full); err != nil {
			return s.fail(err)
		}
	}
	return nil
}

func solveDayOne(cmd *cobra.Command, s *session, path string, part int, full bool) error {
	started := time.Now()

	provider, err := calibration.ProviderForPart(part)
	if err != nil {
		return err
	}
	text, err := s.load(path)
	if err != nil {
		return err
	}

	values := calibration.Calibrate(text, provider)
	s.log.LogDebug(fmt.Sprintf("Found %d calibration values", len(values)))

	answer := models.Answer{
		Day:       models.DayOne,
		Part:      part,
		InputPath: path,
		Values:    make([]uint64, len(values)),
		Result:    calibration.Sum(values),
	}
	for i, v := range values {
		answer.Values[i] = uint64(v)
	}

	return s.publish(cmd.Context(), cmd, answer, full, started)
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewDayCommand creates the day command grouping the puzzle solvers
func NewDayCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "day",
		Short: "Solve the puzzle of one day",
		Long: `Solve the puzzle of one day for the input file given with -p.

Inputs may be plain text or Markdown notes; for Markdown the first fenced
code block is used as the puzzle input.

Examples:
  aoc day one -p input.txt --part 2
  aoc day one -p input.txt --part 0      # both parts, input read once
  aoc day two -p input.txt --red 12 --green 13 --blue 14
  aoc day three -p notes.md --full-output`,
	}

	cmd.AddCommand(NewDayOneCommand())
	cmd.AddCommand(NewDayTwoCommand())
	cmd.AddCommand(NewDayThreeCommand())

	return cmd
}

// addInputFlags registers the flags shared by every day.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("path", "p", "", "Path to the puzzle input")
	cmd.MarkFlagRequired("path")
}

// addPartFlag registers --part for days with two parts.
func addPartFlag(cmd *cobra.Command) {
	cmd.Flags().Int("part", 1, "Puzzle part (1 or 2, 0 = both)")
}

// partsFlag reads --part and returns the parts to solve. 0 selects both.
func partsFlag(cmd *cobra.Command) ([]int, error) {
	part, _ := cmd.Flags().GetInt("part")
	switch part {
	case 0:
		return []int{1, 2}, nil
	case 1, 2:
		return []int{part}, nil
	default:
		return nil, fmt.Errorf("unexpected part %d, choose 1 or 2 (0 for both)", part)
	}
}

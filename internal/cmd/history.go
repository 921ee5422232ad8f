package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrison/aoc/internal/display"
	"github.com/harrison/aoc/internal/history"
)

// NewHistoryCommand creates the history command
func NewHistoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show previously computed answers",
		Long: `Show answers recorded by earlier runs, newest first.

Examples:
  aoc history
  aoc history --day 3
  aoc history --limit 5`,
		Args: cobra.NoArgs,
		RunE: runHistory,
	}

	cmd.Flags().Int("day", 0, "Only show answers for this day")
	cmd.Flags().Int("limit", 20, "Maximum number of answers to show (0 = all)")

	return cmd
}

func runHistory(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if !cfg.History.Enabled {
		return fmt.Errorf("history is disabled")
	}

	store, err := history.NewStore(cfg.History.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer store.Close()

	day, _ := cmd.Flags().GetInt("day")
	limit, _ := cmd.Flags().GetInt("limit")

	var entries []history.Entry
	if day > 0 {
		entries, err = store.ForDay(cmd.Context(), day, limit)
	} else {
		entries, err = store.Recent(cmd.Context(), limit)
	}
	if err != nil {
		return fmt.Errorf("failed to read history: %w", err)
	}

	display.PrintHistory(cmd.OutOrStdout(), entries)
	return nil
}

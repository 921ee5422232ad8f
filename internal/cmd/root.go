package cmd

import (
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for aoc
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "aoc",
		Short: "Advent of Code puzzle solver",
		Long: `aoc solves Advent of Code puzzles from input files.

Each day is a subcommand of "aoc day". Answers are printed to stdout,
logs go to stderr. Every answer is recorded in a local history database
and can be appended to a shared YAML export file.

Configuration is loaded from .aoc/config.yaml if present, then .env and
AOC_* environment variables, then command-line flags.`,
		Version: Version,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.String("config", "", "Path to config file (default: .aoc/config.yaml)")
	flags.String("log-level", "", "Log level: trace, debug, info, warn, error")
	flags.String("log-dir", "", "Write a run log to this directory")
	flags.Bool("no-history", false, "Do not record answers in the history database")
	flags.Bool("no-color", false, "Disable colored output")
	flags.BoolP("quiet", "q", false, "Do not write logs to stderr")
	flags.String("export", "", "Append answers to this YAML file")

	cmd.AddCommand(NewDayCommand())
	cmd.AddCommand(NewHistoryCommand())

	return cmd
}

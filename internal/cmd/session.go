package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/harrison/aoc/internal/config"
	"github.com/harrison/aoc/internal/display"
	"github.com/harrison/aoc/internal/export"
	"github.com/harrison/aoc/internal/history"
	"github.com/harrison/aoc/internal/input"
	"github.com/harrison/aoc/internal/logger"
	"github.com/harrison/aoc/internal/models"
)

// session holds everything a solving command needs for one invocation.
type session struct {
	cfg        *config.Config
	log        logger.Logger
	loader     *input.Loader
	store      *history.Store // nil when history is disabled
	fileLog    *logger.FileLogger
	exportPath string
}

// loadConfig resolves configuration from file, environment and flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")

	var cfg *config.Config
	var err error
	if configPath != "" {
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
	} else {
		cfg, err = config.LoadConfig(config.DefaultConfigPath())
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if err := cfg.ApplyEnv(config.DefaultEnvFile()); err != nil {
		return nil, err
	}

	// Only flags given on the command line override config values
	var logLevel, logDir *string
	var noHistory, noColor *bool
	if cmd.Flags().Changed("log-level") {
		v, _ := cmd.Flags().GetString("log-level")
		logLevel = &v
	}
	if cmd.Flags().Changed("log-dir") {
		v, _ := cmd.Flags().GetString("log-dir")
		logDir = &v
	}
	if cmd.Flags().Changed("no-history") {
		v, _ := cmd.Flags().GetBool("no-history")
		noHistory = &v
	}
	if cmd.Flags().Changed("no-color") {
		v, _ := cmd.Flags().GetBool("no-color")
		noColor = &v
	}
	cfg.MergeWithFlags(logLevel, logDir, noHistory, noColor)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// newSession loads configuration and opens the loggers and history store.
// The caller must Close the session.
func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	if cfg.NoColor {
		color.NoColor = true
	}

	s := &session{cfg: cfg, loader: input.NewLoader()}
	s.exportPath, _ = cmd.Flags().GetString("export")

	var console logger.Logger = logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		console = logger.NewNoOpLogger()
	}
	if cfg.LogToFile {
		s.fileLog, err = logger.NewFileLogger(cfg.LogDir, cfg.LogLevel)
		if err != nil {
			return nil, fmt.Errorf("failed to create file logger: %w", err)
		}
		s.log = logger.NewMultiLogger(console, s.fileLog)
	} else {
		s.log = console
	}

	if cfg.History.Enabled {
		s.store, err = history.NewStore(cfg.History.DBPath)
		if err != nil {
			s.Close()
			return nil, fmt.Errorf("failed to open history database: %w", err)
		}
		s.log.LogDebug(fmt.Sprintf("History database: %s", cfg.History.DBPath))
	}

	return s, nil
}

// Close releases the history store and the run log.
func (s *session) Close() {
	hits, reads := s.loader.Stats()
	s.log.LogDebug(fmt.Sprintf("Input cache: %d hits, %d reads", hits, reads))

	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.log.LogWarn(fmt.Sprintf("Failed to close history database: %v", err))
		}
	}
	if s.fileLog != nil {
		s.fileLog.Close()
	}
}

// load reads the puzzle input at path. Solving several parts in one run
// reads the file once.
func (s *session) load(path string) (string, error) {
	before, _ := s.loader.Stats()
	text, err := s.loader.Load(path)
	if err != nil {
		return "", err
	}

	if hits, _ := s.loader.Stats(); hits > before {
		s.log.LogDebug(fmt.Sprintf("Using cached input for %s", path))
	} else {
		s.log.LogDebug(fmt.Sprintf("Loaded %d bytes from %s (%d inputs cached)", len(text), path, s.loader.Cached()))
	}
	return text, nil
}

// fail logs err and returns it, so the failure also reaches the run log.
func (s *session) fail(err error) error {
	s.log.LogError(err.Error())
	return err
}

// publish prints answer and stores it in history and the export file.
// A history failure is only logged since the answer is already printed.
func (s *session) publish(ctx context.Context, cmd *cobra.Command, answer models.Answer, full bool, started time.Time) error {
	answer.RunID = uuid.New().String()
	answer.Duration = time.Since(started)
	answer.SolvedAt = time.Now().UTC()

	display.PrintAnswer(cmd.OutOrStdout(), answer, full)

	if s.store != nil {
		if err := s.store.Record(ctx, &answer); err != nil {
			s.log.LogWarn(fmt.Sprintf("Failed to record answer: %v", err))
		}
	}
	s.log.LogAnswer(answer)

	if s.exportPath != "" {
		if err := export.Append(ctx, s.exportPath, answer); err != nil {
			return fmt.Errorf("failed to export answer: %w", err)
		}
		s.log.LogInfo(fmt.Sprintf("Exported answer to %s", s.exportPath))
	}
	return nil
}

package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harrison/aoc/internal/models"
)

func readRunLog(t *testing.T, fl *FileLogger) string {
	t.Helper()
	if err := fl.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	data, err := os.ReadFile(fl.RunFile())
	if err != nil {
		t.Fatalf("failed to read run log: %v", err)
	}
	return string(data)
}

// TestNewFileLogger verifies the run log and latest.log symlink are created.
func TestNewFileLogger(t *testing.T) {
	logDir := filepath.Join(t.TempDir(), "logs")

	fl, err := NewFileLogger(logDir, "info")
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}
	defer fl.Close()

	if !strings.HasPrefix(filepath.Base(fl.RunFile()), "run-") {
		t.Errorf("unexpected run file name %q", fl.RunFile())
	}

	target, err := os.Readlink(filepath.Join(logDir, "latest.log"))
	if err != nil {
		t.Fatalf("latest.log symlink missing: %v", err)
	}
	if target != filepath.Base(fl.RunFile()) {
		t.Errorf("latest.log -> %q, want %q", target, filepath.Base(fl.RunFile()))
	}
}

// TestNewFileLoggerReplacesSymlink verifies an existing latest.log is replaced.
func TestNewFileLoggerReplacesSymlink(t *testing.T) {
	logDir := t.TempDir()
	if err := os.Symlink("old.log", filepath.Join(logDir, "latest.log")); err != nil {
		t.Fatalf("failed to create symlink: %v", err)
	}

	fl, err := NewFileLogger(logDir, "info")
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}
	defer fl.Close()

	target, _ := os.Readlink(filepath.Join(logDir, "latest.log"))
	if target == "old.log" {
		t.Error("latest.log was not replaced")
	}
}

// TestFileLoggerLevels verifies filtering and the header.
func TestFileLoggerLevels(t *testing.T) {
	fl, err := NewFileLogger(t.TempDir(), "warn")
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}

	fl.LogDebug("hidden debug")
	fl.LogInfo("hidden info")
	fl.LogWarn("shown warn")
	fl.LogError("shown error")

	content := readRunLog(t, fl)
	if !strings.Contains(content, "=== aoc Run Log ===") {
		t.Error("missing run log header")
	}
	if strings.Contains(content, "hidden") {
		t.Errorf("filtered messages written:\n%s", content)
	}
	if !strings.Contains(content, "[WARN] shown warn") || !strings.Contains(content, "[ERROR] shown error") {
		t.Errorf("expected messages missing:\n%s", content)
	}
}

// TestFileLoggerLogAnswer verifies values are listed at debug level only.
func TestFileLoggerLogAnswer(t *testing.T) {
	answer := models.Answer{
		RunID:     "run-1",
		Day:       models.DayThree,
		Part:      1,
		InputPath: "input.txt",
		Values:    []uint64{467, 35},
		Result:    502,
	}

	debug, err := NewFileLogger(t.TempDir(), "debug")
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}
	debug.LogAnswer(answer)
	content := readRunLog(t, debug)
	for _, want := range []string{"[ANSWER] day three part 1: 502", "run: run-1", "values: 467, 35"} {
		if !strings.Contains(content, want) {
			t.Errorf("expected %q in:\n%s", want, content)
		}
	}

	info, err := NewFileLogger(t.TempDir(), "info")
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}
	info.LogAnswer(answer)
	content = readRunLog(t, info)
	if strings.Contains(content, "values:") {
		t.Errorf("values should be omitted at info level:\n%s", content)
	}
}

// TestFileLoggerCloseTwice verifies Close is idempotent.
func TestFileLoggerCloseTwice(t *testing.T) {
	fl, err := NewFileLogger(t.TempDir(), "info")
	if err != nil {
		t.Fatalf("NewFileLogger() error = %v", err)
	}
	if err := fl.Close(); err != nil {
		t.Fatalf("first Close() error = %v", err)
	}
	if err := fl.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
	fl.LogError("after close is dropped")
}

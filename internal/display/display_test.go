package display

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"github.com/harrison/aoc/internal/history"
	"github.com/harrison/aoc/internal/models"
)

func withoutColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func TestDisplayWarning_TitleOnly(t *testing.T) {
	withoutColor(t)
	var buf bytes.Buffer

	Warning{Title: "Configuration Missing"}.Display(&buf)

	if buf.String() != "Warning: Configuration Missing\n" {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestDisplayWarning_AllFields(t *testing.T) {
	withoutColor(t)
	var buf bytes.Buffer

	Warning{
		Title:      "Title",
		Message:    "Details",
		Files:      []string{"a.txt", "b.txt"},
		Suggestion: "Do something",
	}.Display(&buf)

	output := buf.String()
	for _, want := range []string{"Warning: Title\n", "    Details\n", "Affected files:", "1. a.txt", "2. b.txt", "Suggestion:\n    Do something\n"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output:\n%s", want, output)
		}
	}
}

func TestDisplayWarning_SingleFile(t *testing.T) {
	withoutColor(t)
	var buf bytes.Buffer

	WarnRaggedSchematic("input.txt").Display(&buf)

	output := buf.String()
	if !strings.Contains(output, "Affected file:\n") {
		t.Errorf("expected singular file header, got:\n%s", output)
	}
	if !strings.Contains(output, "1. input.txt") {
		t.Errorf("expected file name, got:\n%s", output)
	}
}

func TestDisplayWarning_Colored(t *testing.T) {
	prev := color.NoColor
	color.NoColor = false
	defer func() { color.NoColor = prev }()

	var buf bytes.Buffer
	Warning{Title: "Colored"}.Display(&buf)

	if !strings.Contains(buf.String(), "\x1b[33m") {
		t.Errorf("expected yellow ANSI code, got %q", buf.String())
	}
}

func TestPrintAnswer(t *testing.T) {
	answer := models.Answer{Values: []uint64{467, 35}, Result: 502}

	var short bytes.Buffer
	PrintAnswer(&short, answer, false)
	if short.String() != "The result for your input is: 502\n" {
		t.Errorf("unexpected output %q", short.String())
	}

	var full bytes.Buffer
	PrintAnswer(&full, answer, true)
	if full.String() != "467\n35\nThe result for your input is: 502\n" {
		t.Errorf("unexpected full output %q", full.String())
	}
}

func TestPrintHistory(t *testing.T) {
	var empty bytes.Buffer
	PrintHistory(&empty, nil)
	if !strings.Contains(empty.String(), "No answers") {
		t.Errorf("unexpected output %q", empty.String())
	}

	var buf bytes.Buffer
	PrintHistory(&buf, []history.Entry{
		{Day: 3, Part: 1, Result: 4361, ValueCount: 8, InputPath: "day3.txt", SolvedAt: time.Now()},
	})
	output := buf.String()
	for _, want := range []string{"SOLVED", "three", "4361", "day3.txt"} {
		if !strings.Contains(output, want) {
			t.Errorf("expected %q in output:\n%s", want, output)
		}
	}
}

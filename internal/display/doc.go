// Package display renders user-facing output of the aoc CLI.
//
// Answers go to stdout in a fixed format so that scripts can read them:
//
//	display.PrintAnswer(os.Stdout, answer, fullOutput)
//
// Warnings are yellow when the writer is a terminal:
//
//	warning := display.Warning{
//	    Title:      "Schematic rows differ in length",
//	    Files:      []string{"input.txt"},
//	    Suggestion: "Missing cells are treated as '.'",
//	}
//	warning.Display(os.Stderr)
//
// All functions accept io.Writer interfaces for testability.
package display

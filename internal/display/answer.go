package display

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/harrison/aoc/internal/history"
	"github.com/harrison/aoc/internal/models"
)

// PrintAnswer writes the puzzle answer line. With full set, every
// contributing value is printed first, one per line.
func PrintAnswer(out io.Writer, answer models.Answer, full bool) {
	if full {
		for _, v := range answer.Values {
			fmt.Fprintln(out, v)
		}
	}
	fmt.Fprintf(out, "The result for your input is: %d\n", answer.Result)
}

// PrintHistory writes history entries as an aligned table.
func PrintHistory(out io.Writer, entries []history.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(out, "No answers recorded yet.")
		return
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SOLVED\tDAY\tPART\tRESULT\tVALUES\tINPUT")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%d\t%s\n",
			e.SolvedAt.Local().Format(time.DateTime),
			models.DayName(e.Day),
			e.Part,
			e.Result,
			e.ValueCount,
			e.InputPath,
		)
	}
	tw.Flush()
}

// Package presentation renders harness output for the terminal.
package presentation

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/muesli/termenv"

	"github.com/asloane/aoc2024/pkg/bench"
)

// WriteBenchReport renders one row per benchmarked puzzle.
// ANSI styling is kept out of the table body so tabwriter's column widths
// stay correct.
func WriteBenchReport(w io.Writer, results []bench.Result) error {
	if len(results) == 0 {
		_, err := fmt.Fprintln(w, "no benchmark results")
		return err
	}

	title := termenv.String("benchmark results").Bold()
	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "PUZZLE\tSAMPLES\tMEAN\tMEDIAN\tSTDDEV\tMIN\tMAX")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t%s\t%s\t%s\n",
			r.Key, r.Samples, r.Mean, r.Median, r.StdDev, r.Min, r.Max)
	}
	return tw.Flush()
}

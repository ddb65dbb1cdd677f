// Package report renders benchmark output: the two result lines on stdout and
// an optional per-round summary table.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/eugenenazirov/fib-bench/internal/storage"
)

// WriteResult writes the label line for n followed by the computed value.
func WriteResult(w io.Writer, n int, value string) error {
	if _, err := fmt.Fprintf(w, "fib_iter( %d ) => \n%s\n", n, value); err != nil {
		return fmt.Errorf("write result: %w", err)
	}
	return nil
}

// WriteSummary renders one row per sample and a footer with min, mean and max
// round durations.
func WriteSummary(w io.Writer, name string, stats storage.Stats, samples []storage.Sample) {
	table := tablewriter.NewWriter(w)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Round", "Kernel", "Count", "Duration"})

	for _, sample := range samples {
		table.Append([]string{
			strconv.Itoa(sample.Round),
			name,
			strconv.Itoa(sample.Count),
			sample.Duration.String(),
		})
	}

	table.SetFooter([]string{
		strconv.Itoa(stats.Rounds) + " rounds",
		"min " + stats.Min.String(),
		"mean " + stats.Mean.String(),
		"max " + stats.Max.String(),
	})
	table.Render()
}

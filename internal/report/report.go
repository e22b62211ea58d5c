// Package report renders benchmark results as a markdown table. Column
// layout and formats match the reference harnesses so result tables can be
// diffed across engines.
package report

import (
	"fmt"
	"io"

	"skirmish/internal/stats"
)

// WriteHeader writes the table header and separator rows.
func WriteHeader(w io.Writer) {
	fmt.Fprintln(w, "| Entities | Avg   | P50   | P95   | P99   | Max   | StdDev | @60fps | @30fps | Jank |")
	fmt.Fprintln(w, "|----------|-------|-------|-------|-------|-------|--------|--------|--------|------|")
}

// WriteRow writes one population-size row.
func WriteRow(w io.Writer, entities int, m stats.Metrics) {
	fmt.Fprintf(w, "| %8d | %5.2fms | %5.2fms | %5.2fms | %5.2fms | %5.2fms | %6.2fms | %5.0f%% | %5.0f%% | %4d |\n",
		entities, m.Avg, m.P50, m.P95, m.P99, m.Max, m.StdDev, m.Percent60, m.Percent30, m.Jank)
}

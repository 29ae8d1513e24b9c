package display

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/moguls753/kvbench/internal/benchmark"
	"github.com/moguls753/kvbench/internal/benchmark/statistics"
)

type groupKey struct {
	shape    benchmark.Shape
	elements int
}

// Summary prints, for every shape and element count, the trial statistics of each
// container and how each one compares with the baseline container.
func Summary(w io.Writer, rows []Row, baseline string) {
	var order []groupKey
	groups := make(map[groupKey][]Row)
	for _, row := range rows {
		k := groupKey{row.Shape, row.Result.Elements}
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], row)
	}

	fmt.Fprintln(w, "\n"+strings.Repeat("=", 100))
	fmt.Fprintln(w, "Lookup Duration - Statistical Summary (msec per trial)")
	fmt.Fprintln(w, strings.Repeat("=", 100))

	for _, k := range order {
		group := groups[k]
		trials := 0
		if len(group) > 0 {
			trials = len(group[0].Result.Durations)
		}
		fmt.Fprintf(w, "\nShape %s, %d elements (%d trials)\n", k.shape, k.elements, trials)
		displayMetricTable(w, group)
		if baseline != "" {
			displayComparisons(w, group, baseline)
		}
	}
}

func millis(values []float64) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = v / 1e6
	}
	return out
}

func displayMetricTable(w io.Writer, rows []Row) {
	const format = "%8.3f"

	fmt.Fprintln(w, "┌─────────────┬──────────┬──────────┬──────────┬──────────┬──────────┬───────┐")
	fmt.Fprintln(w, "│ Container   │ Median   │ Mean     │ StdDev   │ Min      │ Max      │ CV %  │")
	fmt.Fprintln(w, "├─────────────┼──────────┼──────────┼──────────┼──────────┼──────────┼───────┤")

	for _, row := range rows {
		stats := statistics.Calculate(millis(row.Result.Durations))

		fmt.Fprintf(w, "│ %-11s │ "+format+" │ "+format+" │ "+format+" │ "+format+" │ "+format+" │ %5.1f │\n",
			row.Container,
			stats.Median,
			stats.Mean,
			stats.StdDev,
			stats.Min,
			stats.Max,
			stats.CV,
		)
	}

	fmt.Fprintln(w, "└─────────────┴──────────┴──────────┴──────────┴──────────┴──────────┴───────┘")
}

func displayComparisons(w io.Writer, rows []Row, baseline string) {
	idx := slices.IndexFunc(rows, func(r Row) bool { return r.Container == baseline })
	if idx < 0 {
		return
	}
	base := statistics.Calculate(rows[idx].Result.Durations)

	fmt.Fprintf(w, "\nStatistical Comparisons (vs %s):\n", baseline)
	fmt.Fprintln(w, "┌─────────────────────────┬─────────────┬──────────┬───────────┬──────────────┐")
	fmt.Fprintln(w, "│ Comparison              │ Median Diff │ p-value  │ Overlap?  │ Significant? │")
	fmt.Fprintln(w, "├─────────────────────────┼─────────────┼──────────┼───────────┼──────────────┤")

	for _, row := range rows {
		if row.Container == baseline {
			continue
		}

		comp := statistics.Compare(base, statistics.Calculate(row.Result.Durations))

		overlap := "No"
		if comp.HasOverlap {
			overlap = "Yes"
		}

		fmt.Fprintf(w, "│ %-23s │ %+10.1f%% │ %8.4f │ %-9s │ %-12s │\n",
			baseline+" vs "+row.Container,
			comp.MedianDiffPct,
			comp.PValue,
			overlap,
			comp.Verdict(),
		)
	}

	fmt.Fprintln(w, "└─────────────────────────┴─────────────┴──────────┴───────────┴──────────────┘")
}

package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/moguls753/kvbench/internal/benchmark/statistics"
	"github.com/moguls753/kvbench/internal/display"
)

func formatMillis(ns float64) string {
	return fmt.Sprintf("%.4f", ns/1e6)
}

// StatsToCSV writes one row of trial statistics (milliseconds) per result, for plotting
func StatsToCSV(w io.Writer, rows []display.Row) error {
	writer := csv.NewWriter(w)

	header := []string{"Container", "KeySize", "ValueSize", "Workload", "Iterations", "Elements",
		"Mean", "StdDev", "Median", "Min", "Max", "CV_Percent"}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, row := range rows {
		r := row.Result
		stats := statistics.Calculate(r.Durations)
		record := []string{
			row.Container,
			strconv.Itoa(row.Shape.KeySize),
			strconv.Itoa(row.Shape.ValSize),
			r.Request.Type.String(),
			strconv.FormatUint(r.Request.Iterations, 10),
			strconv.Itoa(r.Elements),
			formatMillis(r.DurationAvg),
			formatMillis(r.DurationDev),
			formatMillis(stats.Median),
			formatMillis(stats.Min),
			formatMillis(stats.Max),
			fmt.Sprintf("%.2f", stats.CV),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// RawRunsToCSV writes every individual trial duration (milliseconds) for detailed analysis
func RawRunsToCSV(w io.Writer, rows []display.Row) error {
	writer := csv.NewWriter(w)

	maxRuns := 0
	for _, row := range rows {
		maxRuns = max(maxRuns, len(row.Result.Durations))
	}

	// Container, KeySize, ValueSize, Elements, Run1, Run2, ..., RunN
	header := []string{"Container", "KeySize", "ValueSize", "Elements"}
	for i := 1; i <= maxRuns; i++ {
		header = append(header, fmt.Sprintf("Run%d", i))
	}
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.Container,
			strconv.Itoa(row.Shape.KeySize),
			strconv.Itoa(row.Shape.ValSize),
			strconv.Itoa(row.Result.Elements),
		}
		for _, d := range row.Result.Durations {
			record = append(record, formatMillis(d))
		}

		// pad results that ran fewer trials
		for len(record) < len(header) {
			record = append(record, "")
		}

		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

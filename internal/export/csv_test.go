package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moguls753/kvbench/internal/benchmark"
	"github.com/moguls753/kvbench/internal/display"
)

func rows() []display.Row {
	shape := benchmark.Shape{KeySize: 8, ValSize: 8}
	req := benchmark.Request{Type: benchmark.ShuffledWithMisses, Iterations: 1000000}
	return []display.Row{
		{Container: "hashmap", Shape: shape, Result: &benchmark.Result{
			Request: req, Elements: 100, DurationAvg: 2e6, DurationDev: 1e5,
			Durations: []float64{1.9e6, 2e6, 2.1e6},
		}},
		{Container: "treemap", Shape: shape, Result: &benchmark.Result{
			Request: req, Elements: 100, DurationAvg: 5e6,
			Durations: []float64{5e6, 5e6},
		}},
	}
}

func parse(t *testing.T, data []byte) [][]string {
	t.Helper()
	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	return records
}

func TestStatsToCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, StatsToCSV(&buf, rows()))

	records := parse(t, buf.Bytes())
	require.Len(t, records, 3)
	assert.Equal(t, "Container", records[0][0])
	assert.Equal(t, []string{"hashmap", "8", "8", "shuffled-with-misses", "1000000", "100", "2.0000", "0.1000", "2.0000", "1.9000", "2.1000"},
		records[1][:11])
	assert.Equal(t, "0.00", records[2][11])
}

func TestRawRunsToCSVPadsShortRows(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RawRunsToCSV(&buf, rows()))

	records := parse(t, buf.Bytes())
	require.Len(t, records, 3)
	assert.Equal(t, []string{"Container", "KeySize", "ValueSize", "Elements", "Run1", "Run2", "Run3"}, records[0])
	assert.Equal(t, []string{"treemap", "8", "8", "100", "5.0000", "5.0000", ""}, records[2])
}

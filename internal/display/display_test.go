package display

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/moguls753/kvbench/internal/benchmark"
	"github.com/moguls753/kvbench/internal/benchmark/statistics"
	"github.com/moguls753/kvbench/internal/host"
)

func result(elements int, durations ...float64) *benchmark.Result {
	mean, dev := statistics.MeanAndStdDev(durations)
	return &benchmark.Result{
		Request: benchmark.Request{
			Target:     benchmark.TargetLookup,
			Type:       benchmark.ShuffledWithMisses,
			Trials:     len(durations),
			Elements:   elements,
			Iterations: 1000000,
		},
		Elements:    elements,
		DurationAvg: mean,
		DurationDev: dev,
		Durations:   durations,
	}
}

func TestResultLine(t *testing.T) {
	r := &benchmark.Result{
		Request:     benchmark.Request{Iterations: 1000000, Elements: 100},
		Elements:    100,
		DurationAvg: 12345678,
		DurationDev: 123456.7,
	}

	line := ResultLine("hashmap", benchmark.Shape{KeySize: 8, ValSize: 8}, r)

	assert.Equal(t, "hashmap<8    , 8> iter:1000000 elem:100     12.35   msec dev=0.1235", line)
}

func TestResultLineUsesClampedElements(t *testing.T) {
	r := &benchmark.Result{
		Request:  benchmark.Request{Iterations: 10, Elements: 10000},
		Elements: 256,
	}

	line := ResultLine("treemap", benchmark.Shape{KeySize: 1, ValSize: 8}, r)

	assert.Contains(t, line, "elem:256 ")
	assert.True(t, strings.HasPrefix(line, "treemap<1    , 8> iter:10 "))
}

func TestSummary(t *testing.T) {
	shape := benchmark.Shape{KeySize: 8, ValSize: 8}
	rows := []Row{
		{Container: "treemap", Shape: shape, Result: result(100, 10e6, 10e6, 11e6, 11e6, 10e6)},
		{Container: "hashmap", Shape: shape, Result: result(100, 2e6, 2e6, 3e6, 3e6, 2e6)},
		{Container: "treemap", Shape: shape, Result: result(200, 20e6, 21e6)},
		{Container: "hashmap", Shape: shape, Result: result(200, 4e6, 5e6)},
	}

	var buf bytes.Buffer
	Summary(&buf, rows, "treemap")
	out := buf.String()

	assert.Contains(t, out, "Shape <8, 8>, 100 elements (5 trials)")
	assert.Contains(t, out, "Shape <8, 8>, 200 elements (2 trials)")
	assert.Contains(t, out, "│ hashmap     │")
	assert.Contains(t, out, "treemap vs hashmap")
	assert.Contains(t, out, "No overlap")
	assert.Equal(t, 2, strings.Count(out, "Statistical Comparisons (vs treemap)"))
}

func TestSummaryWithoutBaseline(t *testing.T) {
	shape := benchmark.Shape{KeySize: 4, ValSize: 8}
	rows := []Row{{Container: "swiss", Shape: shape, Result: result(10, 1e6, 2e6)}}

	var buf bytes.Buffer
	Summary(&buf, rows, "")

	assert.Contains(t, buf.String(), "│ swiss       │")
	assert.NotContains(t, buf.String(), "Statistical Comparisons")
}

func TestPrintHeader(t *testing.T) {
	var buf bytes.Buffer
	PrintHeader(&buf, Header{
		RunID:      "run-1",
		Host:       host.Info{GoVersion: "go1.25.3", OS: "linux", Arch: "amd64", NumCPU: 8, GOMAXPROCS: 8, TotalMemory: 16 << 30},
		Containers: []string{"hashmap", "treemap"},
		Baseline:   "treemap",
		Workload:   benchmark.ShuffledWithMisses.String(),
		Misses:     0.05,
		Iterations: 1000000,
		Trials:     10,
		KeyPattern: "random",
		Seed:       42,
	})
	out := buf.String()

	assert.Contains(t, out, "Run:          run-1")
	assert.Contains(t, out, "Containers:   hashmap, treemap")
	assert.Contains(t, out, "shuffled-with-misses (5.0% misses)")
	assert.Contains(t, out, "16.0 GB total")
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "512 B", FormatBytes(512))
	assert.Equal(t, "1.5 KB", FormatBytes(1536))
	assert.Equal(t, "2.0 MB", FormatBytes(2<<20))
}

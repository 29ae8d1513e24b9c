package runner

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moguls753/kvbench/internal/benchmark"
	"github.com/moguls753/kvbench/internal/config"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func smallConfig() config.Config {
	cfg := config.DefaultConfig()
	cfg.Containers = []string{"hashmap", "treemap"}
	cfg.Baseline = "treemap"
	cfg.KeySizes = []int{1, 4}
	cfg.Elements = []int{1, 10, 300}
	cfg.Iterations = 2000
	cfg.Trials = 3
	cfg.Seed = 42
	return cfg
}

func TestSweepRunsEveryCombination(t *testing.T) {
	var out bytes.Buffer
	s, err := New(smallConfig(), &out, discardLogger())
	require.NoError(t, err)

	rows, err := s.Run(context.Background())
	require.NoError(t, err)

	require.Len(t, rows, 2*2*3)
	lines := 0
	for _, line := range strings.Split(out.String(), "\n") {
		if strings.Contains(line, "msec dev=") {
			lines++
		}
	}
	assert.Equal(t, len(rows), lines)
	assert.Contains(t, out.String(), "hashmap<1    , 8> iter:2000 elem:1 ")
	// one-byte keys cannot hold 300 distinct keys
	assert.Contains(t, out.String(), "treemap<1    , 8> iter:2000 elem:256 ")
	assert.Contains(t, out.String(), "Run:          "+s.RunID())

	for _, row := range rows {
		assert.Equal(t, benchmark.TargetLookup, row.Result.Request.Target)
		assert.Equal(t, benchmark.ShuffledWithMisses, row.Result.Request.Type)
		assert.Len(t, row.Result.Durations, 3)
	}
}

func TestSweepSummary(t *testing.T) {
	cfg := smallConfig()
	cfg.Summary = true

	var out bytes.Buffer
	s, err := New(cfg, &out, discardLogger())
	require.NoError(t, err)
	_, err = s.Run(context.Background())
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Statistical Summary")
	assert.Contains(t, out.String(), "treemap vs hashmap")
}

func TestSeedForSharesDatasetsAcrossContainers(t *testing.T) {
	s, err := New(smallConfig(), io.Discard, discardLogger())
	require.NoError(t, err)

	shape := benchmark.Shape{KeySize: 4, ValSize: 8}
	assert.Equal(t, s.seedFor(shape, 10), s.seedFor(shape, 10))
	assert.NotEqual(t, s.seedFor(shape, 10), s.seedFor(shape, 12))
	assert.NotEqual(t, s.seedFor(shape, 10), s.seedFor(benchmark.Shape{KeySize: 8, ValSize: 8}, 10))
}

func TestSweepClockSeed(t *testing.T) {
	cfg := smallConfig()
	cfg.Seed = 0

	s, err := New(cfg, io.Discard, discardLogger())
	require.NoError(t, err)
	assert.NotZero(t, s.Seed())
}

func TestSweepScenario(t *testing.T) {
	cfg := smallConfig()
	cfg.Scenario = "lookup-sequential"

	s, err := New(cfg, io.Discard, discardLogger())
	require.NoError(t, err)
	assert.Equal(t, benchmark.AllUniqueNonShuffled, s.workload)
	assert.Zero(t, s.cfg.MissFraction)

	cfg.Scenario = "lookup-everything"
	_, err = New(cfg, io.Discard, discardLogger())
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestSweepRejectsInvalidConfig(t *testing.T) {
	cfg := smallConfig()
	cfg.Containers = []string{"skiplist"}

	_, err := New(cfg, io.Discard, discardLogger())
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestSweepStopsWhenCanceled(t *testing.T) {
	s, err := New(smallConfig(), io.Discard, discardLogger())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rows, err := s.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, rows)
}

func TestScenarios(t *testing.T) {
	for _, sc := range Scenarios {
		got, err := LookupScenario(sc.Name)
		require.NoError(t, err)
		assert.Equal(t, sc, got)

		cfg := config.DefaultConfig()
		sc.Apply(&cfg)
		require.NoError(t, cfg.Validate(), sc.Name)
	}
}

func TestSweepCSVOutput(t *testing.T) {
	cfg := smallConfig()
	cfg.Format = config.FormatCSV

	var out bytes.Buffer
	s, err := New(cfg, &out, discardLogger())
	require.NoError(t, err)
	rows, err := s.Run(context.Background())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, len(rows)+1)
	assert.True(t, strings.HasPrefix(lines[0], "Container,KeySize,ValueSize"))
	assert.NotContains(t, out.String(), "msec dev=")
}

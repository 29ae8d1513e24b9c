package runner

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/moguls753/kvbench/internal/benchmark"
	"github.com/moguls753/kvbench/internal/config"
	"github.com/moguls753/kvbench/internal/container"
	"github.com/moguls753/kvbench/internal/display"
	"github.com/moguls753/kvbench/internal/export"
	"github.com/moguls753/kvbench/internal/host"
)

// Sweep runs every selected container over every shape and element count of a
// config, printing one result line per request.
type Sweep struct {
	cfg      config.Config
	workload benchmark.WorkloadType
	pattern  benchmark.KeyPattern
	entries  []container.Entry
	seed     uint64
	runID    string
	// ULID keys of every request share this start time
	epoch time.Time

	out    io.Writer
	logger *slog.Logger
	now    func() time.Time
}

// New validates cfg (after applying its scenario, if any) and resolves the
// containers it names.
func New(cfg config.Config, out io.Writer, logger *slog.Logger) (*Sweep, error) {
	if cfg.Scenario != "" {
		sc, err := LookupScenario(cfg.Scenario)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", config.ErrInvalidConfig, err)
		}
		sc.Apply(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Validate has already checked these parse
	workload, _ := benchmark.ParseWorkloadType(cfg.Workload)
	pattern, _ := benchmark.ParseKeyPattern(cfg.KeyPattern)

	s := &Sweep{
		cfg:      cfg,
		workload: workload,
		pattern:  pattern,
		seed:     cfg.Seed,
		runID:    uuid.NewString(),
		epoch:    time.Now(),
		out:      out,
		logger:   logger,
		now:      time.Now,
	}
	if s.seed == 0 {
		s.seed = uint64(time.Now().UnixNano())
	}
	for _, name := range cfg.Containers {
		e, err := container.Lookup(name)
		if err != nil {
			return nil, err
		}
		s.entries = append(s.entries, e)
	}
	return s, nil
}

func (s *Sweep) RunID() string {
	return s.runID
}

func (s *Sweep) Seed() uint64 {
	return s.seed
}

// seedFor gives every (shape, elements) pair its own seed, identical across
// containers, so all containers are probed with the same dataset.
func (s *Sweep) seedFor(shape benchmark.Shape, elements int) uint64 {
	return s.seed ^ uint64(shape.KeySize)<<48 ^ uint64(shape.ValSize)<<32 ^ uint64(elements)
}

func (s *Sweep) request(elements int) benchmark.Request {
	return benchmark.Request{
		Target:       benchmark.TargetLookup,
		Type:         s.workload,
		MissFraction: s.cfg.MissFraction,
		Trials:       s.cfg.Trials,
		Elements:     elements,
		Iterations:   s.cfg.Iterations,
	}
}

// Run executes the whole matrix. Each request runs to completion; ctx is only
// checked between requests.
func (s *Sweep) Run(ctx context.Context) ([]display.Row, error) {
	text := s.cfg.Format == config.FormatText
	if text {
		s.printHeader()
	}

	var rows []display.Row
	start := s.now()

	for _, e := range s.entries {
		for _, shape := range s.cfg.Shapes() {
			s.logger.Debug("benchmarking container",
				"run_id", s.runID,
				"container", e.Name,
				"shape", shape.String(),
			)
			for _, elements := range s.cfg.Elements {
				if err := ctx.Err(); err != nil {
					return rows, err
				}

				gen := benchmark.NewGenerator(shape, s.seedFor(shape, elements),
					benchmark.WithKeyPattern(s.pattern), benchmark.WithClock(s.epoch))

				res, err := e.Run(gen, s.request(elements))
				if err != nil {
					return rows, fmt.Errorf("%s%s elem:%d: %w", e.Name, shape, elements, err)
				}

				row := display.Row{Container: e.Name, Shape: shape, Result: res}
				if text {
					display.PrintResult(s.out, row)
				}
				rows = append(rows, row)
			}
		}
	}

	s.logger.Info("sweep complete",
		"run_id", s.runID,
		"requests", len(rows),
		"elapsed", s.now().Sub(start).Round(time.Millisecond),
	)

	switch s.cfg.Format {
	case config.FormatCSV:
		return rows, export.StatsToCSV(s.out, rows)
	case config.FormatCSVRaw:
		return rows, export.RawRunsToCSV(s.out, rows)
	}
	if s.cfg.Summary {
		display.Summary(s.out, rows, s.cfg.Baseline)
	}
	return rows, nil
}

func (s *Sweep) printHeader() {
	display.PrintHeader(s.out, display.Header{
		RunID:      s.runID,
		Started:    s.now(),
		Host:       host.Describe(),
		Containers: s.cfg.Containers,
		Baseline:   s.cfg.Baseline,
		Workload:   s.workload.String(),
		Misses:     s.cfg.MissFraction,
		Iterations: s.cfg.Iterations,
		Trials:     s.cfg.Trials,
		KeyPattern: string(s.pattern),
		Seed:       s.seed,
	})
}

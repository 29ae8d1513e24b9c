package benchmark

import (
	"fmt"
	"time"

	"github.com/moguls753/kvbench/internal/benchmark/statistics"
)

// Benchmark drives one container through prepared lookups. The container type is a
// type parameter so each adapter is bound when the benchmark is instantiated.
//
// A Benchmark owns its container for the lifetime of one request; create a fresh
// one (with a fresh container) for every configuration.
type Benchmark[C Container] struct {
	gen       *Generator
	container C
}

func New[C Container](container C, gen *Generator) *Benchmark[C] {
	return &Benchmark[C]{
		gen:       gen,
		container: container,
	}
}

// Run prepares the dataset once, then times req.Trials sequential executions over
// the same dataset and container.
//
// Workflow:
//  1. Validate the request
//  2. Generate keys, populate the container, shuffle
//  3. Repeat Trials times: start timer, execute, stop timer
//  4. Aggregate trial durations into mean and standard deviation
func (b *Benchmark[C]) Run(req Request) (*Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if req.Target != TargetLookup {
		return nil, fmt.Errorf("%s: %w", req.Target, ErrTargetNotImplemented)
	}

	ds := b.prepare(req)

	samples := make([]IterationSample, 0, req.Trials)
	for i := 0; i < req.Trials; i++ {
		var s IterationSample
		s.Start = time.Now()
		b.execute(req, ds)
		s.Finish = time.Now()
		samples = append(samples, s)
	}

	return report(req, ds, samples), nil
}

func report(req Request, ds *Dataset, samples []IterationSample) *Result {
	durations := make([]float64, len(samples))
	for i, s := range samples {
		durations[i] = float64(s.Duration().Nanoseconds())
	}
	mean, dev := statistics.MeanAndStdDev(durations)

	return &Result{
		Request:     req,
		Elements:    ds.Len(),
		DurationAvg: mean,
		DurationDev: dev,
		Memory:      0,
		Durations:   durations,
	}
}

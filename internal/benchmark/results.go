package benchmark

import "time"

// IterationSample brackets one timed trial
type IterationSample struct {
	Start  time.Time
	Finish time.Time
	Memory uint64 // not measured yet, always zero
}

func (s IterationSample) Duration() time.Duration {
	return s.Finish.Sub(s.Start)
}

// Result is the aggregated outcome of one request
type Result struct {
	Request     Request
	Elements    int     // element count after clamping to the key/value space
	DurationAvg float64 // nanoseconds
	DurationDev float64 // nanoseconds, population standard deviation
	Memory      uint64
	Durations   []float64 // per-trial nanoseconds
}

// MeanMillis returns the average trial duration in milliseconds
func (r *Result) MeanMillis() float64 {
	return r.DurationAvg / 1e6
}

// DevMillis returns the trial standard deviation in milliseconds
func (r *Result) DevMillis() float64 {
	return r.DurationDev / 1e6
}

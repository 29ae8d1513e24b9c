package statistics

import (
	"math"
	"slices"
)

// Stats summarizes the trial durations of one result
type Stats struct {
	Median float64
	Mean   float64
	StdDev float64 // population
	Min    float64
	Max    float64
	CV     float64 // Coefficient of Variation (%)
	Values []float64
}

// Median returns the middle sample, or the mean of the two middle samples
func Median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return middle(slices.Sorted(slices.Values(values)))
}

func middle(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

func Mean(values []float64) float64 {
	mean, _ := MeanAndStdDev(values)
	return mean
}

// squaredDeviation returns the mean of values and the sum of squared deviations from it
func squaredDeviation(values []float64) (mean, sq float64) {
	for _, v := range values {
		mean += v
	}
	mean /= float64(len(values))
	for _, v := range values {
		sq += (v - mean) * (v - mean)
	}
	return mean, sq
}

// MeanAndStdDev returns the mean and the population standard deviation
// (square root of the mean squared deviation, dividing by N)
func MeanAndStdDev(values []float64) (mean, stddev float64) {
	if len(values) == 0 {
		return 0, 0
	}
	mean, sq := squaredDeviation(values)
	return mean, math.Sqrt(sq / float64(len(values)))
}

func StdDev(values []float64) float64 {
	_, stddev := MeanAndStdDev(values)
	return stddev
}

// SampleStdDev divides by N-1; it is zero for fewer than two samples
func SampleStdDev(values []float64) float64 {
	if len(values) < 2 {
		return 0
	}
	_, sq := squaredDeviation(values)
	return math.Sqrt(sq / float64(len(values)-1))
}

// CV calculates the coefficient of variation (stddev/mean * 100)
func CV(values []float64) float64 {
	return cv(MeanAndStdDev(values))
}

func cv(mean, stddev float64) float64 {
	if mean == 0 {
		return 0
	}
	return stddev / math.Abs(mean) * 100
}

// Calculate computes every measure in one pass over a sorted copy.
// Values keeps the trial order for rank tests against another container.
func Calculate(values []float64) Stats {
	if len(values) == 0 {
		return Stats{}
	}

	sorted := slices.Sorted(slices.Values(values))
	mean, stddev := MeanAndStdDev(values)

	return Stats{
		Median: middle(sorted),
		Mean:   mean,
		StdDev: stddev,
		Min:    sorted[0],
		Max:    sorted[len(sorted)-1],
		CV:     cv(mean, stddev),
		Values: slices.Clone(values),
	}
}

// HasOverlap reports whether the [Min, Max] ranges of a and b intersect
func HasOverlap(a, b Stats) bool {
	return a.Min <= b.Max && b.Min <= a.Max
}

package statistics

import (
	"math"
	"sort"
)

// SignificanceLevel is the p-value below which two containers are reported as different
const SignificanceLevel = 0.05

// MannWhitneyU returns the two-tailed p-value of a Mann-Whitney U test using the
// normal approximation. H0: both duration series come from the same distribution.
func MannWhitneyU(a, b []float64) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 1.0
	}

	n1, n2 := float64(len(a)), float64(len(b))

	u1 := rankSum(a, b) - n1*(n1+1)/2.0
	u := math.Min(u1, n1*n2-u1)

	meanU := n1 * n2 / 2.0
	stdU := math.Sqrt(n1 * n2 * (n1 + n2 + 1) / 12.0)
	if stdU == 0 {
		return 1.0
	}

	z := (u - meanU) / stdU
	return 2.0 * normalCDF(-math.Abs(z))
}

// rankSum ranks a and b together (ties get their average rank) and returns the
// sum of the ranks that belong to a
func rankSum(a, b []float64) float64 {
	type ranked struct {
		value float64
		fromA bool
	}

	all := make([]ranked, 0, len(a)+len(b))
	for _, v := range a {
		all = append(all, ranked{v, true})
	}
	for _, v := range b {
		all = append(all, ranked{v, false})
	}
	sort.Slice(all, func(i, j int) bool {
		return all[i].value < all[j].value
	})

	sum := 0.0
	for i := 0; i < len(all); {
		j := i
		for j < len(all) && all[j].value == all[i].value {
			j++
		}
		rank := float64(i+j+1) / 2.0
		for k := i; k < j; k++ {
			if all[k].fromA {
				sum += rank
			}
		}
		i = j
	}
	return sum
}

func normalCDF(z float64) float64 {
	return 0.5 * (1.0 + math.Erf(z/math.Sqrt2))
}

// Comparison describes a candidate container's durations relative to the baseline
type Comparison struct {
	MedianDiffPct float64 // negative means the candidate is faster
	PValue        float64
	HasOverlap    bool
	Significant   bool
}

// Compare tests candidate durations against baseline durations
func Compare(baseline, candidate Stats) Comparison {
	diff := 0.0
	if baseline.Median != 0 {
		diff = (candidate.Median - baseline.Median) / baseline.Median * 100
	}

	p := MannWhitneyU(baseline.Values, candidate.Values)

	return Comparison{
		MedianDiffPct: diff,
		PValue:        p,
		HasOverlap:    HasOverlap(baseline, candidate),
		Significant:   p < SignificanceLevel,
	}
}

// Verdict is a short significance label for tables
func (c Comparison) Verdict() string {
	switch {
	case !c.HasOverlap:
		return "No overlap"
	case c.PValue < 0.001:
		return "*** (p<0.001)"
	case c.PValue < 0.01:
		return "** (p<0.01)"
	case c.PValue < SignificanceLevel:
		return "* (p<0.05)"
	default:
		return "n.s."
	}
}

package stats

import (
	"math"

	mstats "github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

// Mean returns the arithmetic mean of values, or NaN for an empty slice.
// The NaN convention matches the conditional-mean reporting rule: an
// undefined mean must stay representable without crashing aggregation.
func Mean(values []float64) float64 {
	m, err := mstats.Mean(values)
	if err != nil {
		return math.NaN()
	}
	return m
}

// Percentile returns the given percentile of values, or NaN for an empty
// slice.
func Percentile(values []float64, pct float64) float64 {
	p, err := mstats.Percentile(values, pct)
	if err != nil {
		return math.NaN()
	}
	return p
}

// Proportion returns hits/total, or 0 for an empty batch.
func Proportion(hits, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(hits) / float64(total)
}

// ProportionCI95 returns the normal-approximation 95% confidence interval
// for a sampled proportion, clamped to [0,1].
func ProportionCI95(p float64, n int) (lo, hi float64) {
	if n == 0 {
		return 0, 1
	}
	z := distuv.UnitNormal.Quantile(0.975)
	se := math.Sqrt(p * (1 - p) / float64(n))
	lo = math.Max(0, p-z*se)
	hi = math.Min(1, p+z*se)
	return lo, hi
}

// CountByBin tallies 1-based integer observations into bins 1..maxBin.
// The returned slice has maxBin entries; index i holds the count for
// observation value i+1. Out-of-range observations are dropped.
func CountByBin(observations []int, maxBin int) []int {
	counts := make([]int, maxBin)
	for _, v := range observations {
		if v >= 1 && v <= maxBin {
			counts[v-1]++
		}
	}
	return counts
}

package simulation

import (
	"cmp"
	"slices"
)

// Sweep runs the aggregator once at the base severity with the full path
// count and once per grid value with the (usually reduced) grid path
// count, returning all summaries ordered by ascending severity. Grid
// points are independent; there is no stateful coupling between runs.
func (e *Engine) Sweep(baseSeverity float64, baseN int, grid []float64, gridN int) []Summary {
	summaries := make([]Summary, 0, len(grid)+1)

	_, base := e.RunMonteCarlo(baseSeverity, baseN)
	summaries = append(summaries, base)

	for _, severity := range grid {
		_, s := e.RunMonteCarlo(severity, gridN)
		summaries = append(summaries, s)
	}

	slices.SortStableFunc(summaries, func(a, b Summary) int {
		return cmp.Compare(a.Severity, b.Severity)
	})
	return summaries
}

// SeverityGrid builds an evenly spaced severity grid from start to end
// inclusive. steps below 2 collapse to the single start value.
func SeverityGrid(start, end float64, steps int) []float64 {
	if steps < 2 {
		return []float64{start}
	}
	grid := make([]float64, steps)
	width := (end - start) / float64(steps-1)
	for i := range grid {
		grid[i] = start + float64(i)*width
	}
	return grid
}

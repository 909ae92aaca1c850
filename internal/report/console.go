package report

import (
	"fmt"
	"io"
	"math"

	"drs-mcp/internal/simulation"
)

// Headline writes the base-case summary metrics in a compact,
// human-readable block.
func Headline(w io.Writer, s simulation.Summary) {
	fmt.Fprintf(w, "Severity:                        %.4f\n", s.Severity)
	fmt.Fprintf(w, "Paths:                           %d\n", s.Paths)
	fmt.Fprintf(w, "P(downgrade, any time):          %.4f  [%.4f, %.4f]\n",
		s.ProbDowngradedAny, s.ProbDowngradedAnyCI95[0], s.ProbDowngradedAnyCI95[1])
	fmt.Fprintf(w, "P(downgrade, within window):     %.4f\n", s.ProbDowngradedWithinWindow)
	if math.IsNaN(s.AvgTimeToDowngradeIfDG) {
		fmt.Fprintf(w, "Avg time to downgrade (cond.):   n/a (no path downgraded)\n")
	} else {
		fmt.Fprintf(w, "Avg time to downgrade (cond.):   %.2f years\n", s.AvgTimeToDowngradeIfDG)
		fmt.Fprintf(w, "Median time to downgrade (cond.): %.1f years\n", s.MedianTimeToDowngradeIfDG)
	}
	fmt.Fprintf(w, "Share of paths with a leak:      %.4f\n", s.SharePathsWithLeak)
}

// SweepTable writes the ordered sweep summaries as a fixed-width table.
func SweepTable(w io.Writer, summaries []simulation.Summary) {
	fmt.Fprintf(w, "%-10s %-8s %-10s %-12s %-12s %-10s\n",
		"severity", "paths", "p_any", "p_window", "avg_year", "leak_share")
	for _, s := range summaries {
		avg := "n/a"
		if !math.IsNaN(s.AvgTimeToDowngradeIfDG) {
			avg = fmt.Sprintf("%.2f", s.AvgTimeToDowngradeIfDG)
		}
		fmt.Fprintf(w, "%-10.4f %-8d %-10.4f %-12.4f %-12s %-10.4f\n",
			s.Severity, s.Paths, s.ProbDowngradedAny, s.ProbDowngradedWithinWindow, avg, s.SharePathsWithLeak)
	}
}

package simulation

import (
	"encoding/json"
	"math"

	"drs-mcp/internal/stats"
)

// Summary holds the aggregate reductions over one batch of paths at a
// single severity. It is derived state: recomputed from the batch, never
// mutated afterwards.
type Summary struct {
	Severity                   float64    `json:"severity"`
	Paths                      int        `json:"paths"`
	ProbDowngradedAny          float64    `json:"prob_downgraded_any"`
	ProbDowngradedAnyCI95      [2]float64 `json:"prob_downgraded_any_ci95"`
	ProbDowngradedWithinWindow float64    `json:"prob_downgraded_within_window"`
	// AvgTimeToDowngradeIfDG and MedianTimeToDowngradeIfDG are NaN when no
	// path in the batch downgraded. They marshal as JSON null in that case.
	AvgTimeToDowngradeIfDG    float64 `json:"avg_time_to_downgrade_if_dg"`
	MedianTimeToDowngradeIfDG float64 `json:"median_time_to_downgrade_if_dg"`
	SharePathsWithLeak        float64 `json:"share_paths_with_leak"`
	// TriggerYearCounts[i] is the number of paths first triggered in year
	// i+1. Always HorizonYears entries.
	TriggerYearCounts []int `json:"trigger_year_counts"`
}

// MarshalJSON renders the undefined conditional statistics as null instead
// of tripping encoding/json on NaN.
func (s Summary) MarshalJSON() ([]byte, error) {
	type alias Summary
	aux := struct {
		alias
		AvgTimeToDowngradeIfDG    *float64 `json:"avg_time_to_downgrade_if_dg"`
		MedianTimeToDowngradeIfDG *float64 `json:"median_time_to_downgrade_if_dg"`
	}{alias: alias(s)}
	if !math.IsNaN(s.AvgTimeToDowngradeIfDG) {
		v := s.AvgTimeToDowngradeIfDG
		aux.AvgTimeToDowngradeIfDG = &v
	}
	if !math.IsNaN(s.MedianTimeToDowngradeIfDG) {
		v := s.MedianTimeToDowngradeIfDG
		aux.MedianTimeToDowngradeIfDG = &v
	}
	return json.Marshal(aux)
}

// Summarize reduces a batch of paths into a Summary. The four headline
// metrics are independent reductions over the same batch; path order is
// irrelevant.
func Summarize(p Params, severity float64, results []PathResult) Summary {
	total := len(results)

	downgraded := 0
	withinWindow := 0
	leaked := 0
	var triggerYears []float64
	var triggerYearInts []int

	for _, r := range results {
		if r.Downgraded {
			downgraded++
			triggerYears = append(triggerYears, float64(r.DowngradeYear))
			triggerYearInts = append(triggerYearInts, r.DowngradeYear)
			if r.DowngradeYear <= p.DowngradeWindow {
				withinWindow++
			}
		}
		if r.LeakEver() {
			leaked++
		}
	}

	probAny := stats.Proportion(downgraded, total)
	lo, hi := stats.ProportionCI95(probAny, total)

	return Summary{
		Severity:                   severity,
		Paths:                      total,
		ProbDowngradedAny:          probAny,
		ProbDowngradedAnyCI95:      [2]float64{lo, hi},
		ProbDowngradedWithinWindow: stats.Proportion(withinWindow, total),
		AvgTimeToDowngradeIfDG:     stats.Mean(triggerYears),
		MedianTimeToDowngradeIfDG:  stats.Percentile(triggerYears, 50),
		SharePathsWithLeak:         stats.Proportion(leaked, total),
		TriggerYearCounts:          stats.CountByBin(triggerYearInts, p.HorizonYears),
	}
}

package report

import (
	"encoding/csv"
	"math"
	"os"
	"strconv"

	"drs-mcp/internal/simulation"
)

// SummaryFileName is the default name of the sweep CSV under DATA_PATH.
const SummaryFileName = "risk_simulation_summary.csv"

var csvHeader = []string{
	"severity",
	"paths",
	"prob_downgraded_any",
	"prob_downgraded_within_window",
	"avg_time_to_downgrade_if_dg",
	"median_time_to_downgrade_if_dg",
	"share_paths_with_leak",
}

// WriteSummaryCSV persists an ordered sweep table for documentation. The
// undefined conditional statistics are written as empty fields.
func WriteSummaryCSV(path string, summaries []simulation.Summary) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return err
	}
	for _, s := range summaries {
		avg := ""
		if !math.IsNaN(s.AvgTimeToDowngradeIfDG) {
			avg = formatFloat(s.AvgTimeToDowngradeIfDG)
		}
		median := ""
		if !math.IsNaN(s.MedianTimeToDowngradeIfDG) {
			median = formatFloat(s.MedianTimeToDowngradeIfDG)
		}
		record := []string{
			formatFloat(s.Severity),
			strconv.Itoa(s.Paths),
			formatFloat(s.ProbDowngradedAny),
			formatFloat(s.ProbDowngradedWithinWindow),
			avg,
			median,
			formatFloat(s.SharePathsWithLeak),
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

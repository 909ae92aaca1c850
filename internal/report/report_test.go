package report

import (
	"bytes"
	"encoding/csv"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"drs-mcp/internal/simulation"
)

func sampleSummaries() []simulation.Summary {
	return []simulation.Summary{
		{
			Severity:                   0.05,
			Paths:                      1500,
			ProbDowngradedAny:          0.0,
			ProbDowngradedAnyCI95:      [2]float64{0, 0},
			ProbDowngradedWithinWindow: 0.0,
			AvgTimeToDowngradeIfDG:     math.NaN(),
			MedianTimeToDowngradeIfDG:  math.NaN(),
			SharePathsWithLeak:         0.148,
			TriggerYearCounts:          []int{0, 0, 0, 0, 0},
		},
		{
			Severity:                   0.35,
			Paths:                      1500,
			ProbDowngradedAny:          0.1213,
			ProbDowngradedAnyCI95:      [2]float64{0.1048, 0.1378},
			ProbDowngradedWithinWindow: 0.0987,
			AvgTimeToDowngradeIfDG:     2.47,
			MedianTimeToDowngradeIfDG:  2.0,
			SharePathsWithLeak:         0.151,
			TriggerYearCounts:          []int{10, 80, 50, 30, 12},
		},
	}
}

func TestWriteSummaryCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), SummaryFileName)

	if err := WriteSummaryCSV(path, sampleSummaries()); err != nil {
		t.Fatalf("Failed to write CSV: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to reopen CSV: %v", err)
	}
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse CSV: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("Expected header plus 2 rows, got %d records", len(records))
	}
	if records[0][0] != "severity" || records[0][4] != "avg_time_to_downgrade_if_dg" {
		t.Errorf("Unexpected header: %v", records[0])
	}

	// NaN conditional statistics become empty fields.
	if records[1][4] != "" || records[1][5] != "" {
		t.Errorf("Expected empty conditional mean and median for the no-downgrade row, got %q and %q",
			records[1][4], records[1][5])
	}
	if records[2][4] != "2.4700" {
		t.Errorf("Expected conditional mean 2.4700, got %q", records[2][4])
	}
	if records[2][5] != "2.0000" {
		t.Errorf("Expected conditional median 2.0000, got %q", records[2][5])
	}
	if records[2][0] != "0.3500" || records[2][1] != "1500" {
		t.Errorf("Unexpected severity/paths row: %v", records[2])
	}
}

func TestWriteSummaryCSV_BadPath(t *testing.T) {
	err := WriteSummaryCSV(filepath.Join(t.TempDir(), "missing", "out.csv"), sampleSummaries())
	if err == nil {
		t.Fatal("Expected an error for an uncreatable path")
	}
}

func TestHeadline(t *testing.T) {
	var buf bytes.Buffer
	Headline(&buf, sampleSummaries()[1])
	out := buf.String()

	for _, want := range []string{"0.3500", "1500", "0.1213", "2.47 years", "2.0 years", "0.1510"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected headline to contain %q, got:\n%s", want, out)
		}
	}
}

func TestHeadline_NaNRendersAsNA(t *testing.T) {
	var buf bytes.Buffer
	Headline(&buf, sampleSummaries()[0])

	if !strings.Contains(buf.String(), "n/a") {
		t.Errorf("Expected n/a for the undefined conditional mean, got:\n%s", buf.String())
	}
}

func TestSweepTable(t *testing.T) {
	var buf bytes.Buffer
	SweepTable(&buf, sampleSummaries())
	out := buf.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected header plus 2 rows, got %d lines", len(lines))
	}
	if !strings.HasPrefix(lines[0], "severity") {
		t.Errorf("Unexpected table header: %q", lines[0])
	}
	if !strings.Contains(lines[1], "n/a") {
		t.Errorf("Expected n/a in the no-downgrade row, got: %q", lines[1])
	}
	if !strings.Contains(lines[2], "0.3500") || !strings.Contains(lines[2], "2.47") {
		t.Errorf("Unexpected sweep row: %q", lines[2])
	}
}

package mcp

import (
	"context"
	"errors"
	"testing"

	"drs-mcp/internal/config"
	"drs-mcp/internal/simulation"
)

func testServer(charts bool) *Server {
	cfg := &config.AppConfig{
		Model: simulation.DefaultParams(),
		Sim: config.SimDefaults{
			BaseSeverity: 0.20,
			Paths:        200,
			SweepStart:   0.05,
			SweepEnd:     0.35,
			SweepSteps:   4,
			SweepPaths:   100,
			Seed:         42,
		},
		EnableMermaidCharts: charts,
	}
	return NewServer(cfg, "test")
}

func ptr[T any](v T) *T { return &v }

func TestHandleGetModelParameters(t *testing.T) {
	s := testServer(false)

	_, out, err := s.handleGetModelParameters(context.Background(), nil, struct{}{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if out.Model != simulation.DefaultParams() {
		t.Errorf("Expected the configured calibration, got %+v", out.Model)
	}
	if out.BaseSeverity != 0.20 || out.Paths != 200 || out.Seed != 42 {
		t.Errorf("Unexpected run defaults: %+v", out)
	}
	if len(out.SweepGrid) != 4 || out.SweepGrid[0] != 0.05 || out.SweepGrid[3] != 0.35 {
		t.Errorf("Expected a 4-point grid from 0.05 to 0.35, got %v", out.SweepGrid)
	}
}

func TestHandleRunMonteCarlo_Defaults(t *testing.T) {
	s := testServer(false)

	_, out, err := s.handleRunMonteCarlo(context.Background(), nil, RunMonteCarloInput{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if out.Summary.Severity != 0.20 {
		t.Errorf("Expected the base severity, got %g", out.Summary.Severity)
	}
	if out.Summary.Paths != 200 {
		t.Errorf("Expected the default path count, got %d", out.Summary.Paths)
	}
	if out.DowngradeYearChart != "" {
		t.Error("Expected no chart when mermaid charts are disabled")
	}
}

func TestHandleRunMonteCarlo_OverridesAndReproducibility(t *testing.T) {
	s := testServer(false)
	in := RunMonteCarloInput{Severity: ptr(0.35), Paths: ptr(100), Seed: ptr(int64(7))}

	_, a, err := s.handleRunMonteCarlo(context.Background(), nil, in)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	_, b, err := s.handleRunMonteCarlo(context.Background(), nil, in)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if a.Summary.Severity != 0.35 || a.Summary.Paths != 100 {
		t.Errorf("Expected overrides applied, got %+v", a.Summary)
	}
	if a.Summary.ProbDowngradedAny != b.Summary.ProbDowngradedAny {
		t.Error("Expected identical results for the same seed")
	}
}

func TestHandleRunMonteCarlo_RejectsInvalidSeverity(t *testing.T) {
	s := testServer(false)

	_, _, err := s.handleRunMonteCarlo(context.Background(), nil, RunMonteCarloInput{Severity: ptr(1.5)})
	if !errors.Is(err, simulation.ErrInvalidParams) {
		t.Fatalf("Expected ErrInvalidParams, got: %v", err)
	}
}

func TestHandleRunSeveritySweep(t *testing.T) {
	s := testServer(true)

	_, out, err := s.handleRunSeveritySweep(context.Background(), nil, RunSeveritySweepInput{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// 4 grid points plus the base run.
	if len(out.Summaries) != 5 {
		t.Fatalf("Expected 5 summaries, got %d", len(out.Summaries))
	}
	for i := 1; i < len(out.Summaries); i++ {
		if out.Summaries[i].Severity < out.Summaries[i-1].Severity {
			t.Errorf("Expected summaries ordered by severity, got %g before %g",
				out.Summaries[i-1].Severity, out.Summaries[i].Severity)
		}
	}
	if out.SeverityChart == "" {
		t.Error("Expected a severity chart when mermaid charts are enabled")
	}
}

func TestHandleRunSeveritySweep_RejectsBadGrid(t *testing.T) {
	s := testServer(false)

	_, _, err := s.handleRunSeveritySweep(context.Background(), nil, RunSeveritySweepInput{Grid: []float64{0.1, -0.2}})
	if !errors.Is(err, simulation.ErrInvalidParams) {
		t.Fatalf("Expected ErrInvalidParams for a negative grid severity, got: %v", err)
	}
}

func TestHandleSimulatePath(t *testing.T) {
	s := testServer(true)

	_, out, err := s.handleSimulatePath(context.Background(), nil, SimulatePathInput{Seed: ptr(int64(3))})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	horizon := s.cfg.Model.HorizonYears
	if len(out.Path.Coverage) != horizon || len(out.Path.Leverage) != horizon {
		t.Errorf("Expected %d-year sequences, got coverage=%d leverage=%d",
			horizon, len(out.Path.Coverage), len(out.Path.Leverage))
	}
	if out.CoverageChart == "" || out.LeverageChart == "" {
		t.Error("Expected path charts when mermaid charts are enabled")
	}
}

func TestValueOr(t *testing.T) {
	if got := valueOr(nil, 5); got != 5 {
		t.Errorf("Expected fallback 5, got %d", got)
	}
	if got := valueOr(ptr(9), 5); got != 9 {
		t.Errorf("Expected override 9, got %d", got)
	}
}

package config

import (
	"errors"
	"testing"

	"drs-mcp/internal/simulation"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATA_PATH", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected defaults to load, got: %v", err)
	}

	if cfg.Model != simulation.DefaultParams() {
		t.Errorf("Expected default model calibration, got %+v", cfg.Model)
	}
	if cfg.Sim.Paths != 3000 {
		t.Errorf("Expected 3000 base paths, got %d", cfg.Sim.Paths)
	}
	if cfg.Sim.SweepPaths != 1500 {
		t.Errorf("Expected sweep paths to default to half the base count, got %d", cfg.Sim.SweepPaths)
	}
	if cfg.Sim.SweepSteps != 7 || cfg.Sim.SweepStart != 0.05 || cfg.Sim.SweepEnd != 0.35 {
		t.Errorf("Unexpected sweep grid defaults: %+v", cfg.Sim)
	}
	if cfg.Sim.Seed != 42 {
		t.Errorf("Expected default seed 42, got %d", cfg.Sim.Seed)
	}
	if cfg.EnableMermaidCharts {
		t.Error("Expected mermaid charts disabled by default")
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DATA_PATH", t.TempDir())
	t.Setenv("MODEL_HORIZON_YEARS", "8")
	t.Setenv("MODEL_LEAK_PROBABILITY", "0.30")
	t.Setenv("SIM_PATHS", "500")
	t.Setenv("SIM_SEED", "7")
	t.Setenv("ENABLE_MERMAID_CHARTS", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected overridden config to load, got: %v", err)
	}

	if cfg.Model.HorizonYears != 8 {
		t.Errorf("Expected horizon 8, got %d", cfg.Model.HorizonYears)
	}
	if cfg.Model.LeakProb != 0.30 {
		t.Errorf("Expected leak probability 0.30, got %g", cfg.Model.LeakProb)
	}
	if cfg.Sim.Paths != 500 {
		t.Errorf("Expected 500 base paths, got %d", cfg.Sim.Paths)
	}
	if cfg.Sim.SweepPaths != 250 {
		t.Errorf("Expected sweep paths to follow the override, got %d", cfg.Sim.SweepPaths)
	}
	if cfg.Sim.Seed != 7 {
		t.Errorf("Expected seed 7, got %d", cfg.Sim.Seed)
	}
	if !cfg.EnableMermaidCharts {
		t.Error("Expected mermaid charts enabled")
	}
}

func TestLoad_RejectsInvalidModel(t *testing.T) {
	t.Setenv("DATA_PATH", t.TempDir())
	t.Setenv("MODEL_GROWTH_VOL", "-0.1")

	_, err := Load()
	if !errors.Is(err, simulation.ErrInvalidParams) {
		t.Fatalf("Expected ErrInvalidParams for negative volatility, got: %v", err)
	}
}

func TestLoad_RejectsInvalidBaseSeverity(t *testing.T) {
	t.Setenv("DATA_PATH", t.TempDir())
	t.Setenv("SIM_BASE_SEVERITY", "1.5")

	_, err := Load()
	if !errors.Is(err, simulation.ErrInvalidParams) {
		t.Fatalf("Expected ErrInvalidParams for severity above 1, got: %v", err)
	}
}

func TestEnvHelpers_FallBackOnGarbage(t *testing.T) {
	t.Setenv("DRS_TEST_INT", "not-a-number")
	t.Setenv("DRS_TEST_FLOAT", "nope")
	t.Setenv("DRS_TEST_BOOL", "maybe")

	if got := getEnvInt("DRS_TEST_INT", 11); got != 11 {
		t.Errorf("Expected int fallback 11, got %d", got)
	}
	if got := getEnvFloat("DRS_TEST_FLOAT", 0.5); got != 0.5 {
		t.Errorf("Expected float fallback 0.5, got %g", got)
	}
	if got := getEnvBool("DRS_TEST_BOOL", true); !got {
		t.Error("Expected bool fallback true")
	}
}

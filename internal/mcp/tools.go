package mcp

import (
	"drs-mcp/internal/simulation"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// GetModelParametersOutput reports the active calibration and run defaults.
type GetModelParametersOutput struct {
	Model        simulation.Params `json:"model"`
	BaseSeverity float64           `json:"base_severity"`
	Paths        int               `json:"paths"`
	SweepGrid    []float64         `json:"sweep_grid"`
	SweepPaths   int               `json:"sweep_paths"`
	Seed         int64             `json:"seed"`
}

// RunMonteCarloInput selects the severity and batch size for one aggregation.
type RunMonteCarloInput struct {
	Severity *float64 `json:"severity,omitempty" jsonschema:"leakage severity fraction in [0,1]; defaults to the configured base severity"`
	Paths    *int     `json:"paths,omitempty" jsonschema:"number of Monte Carlo paths; defaults to SIM_PATHS"`
	Seed     *int64   `json:"seed,omitempty" jsonschema:"base RNG seed for a reproducible run; defaults to SIM_SEED"`
}

// RunMonteCarloOutput is the aggregate summary for one severity.
type RunMonteCarloOutput struct {
	Summary            simulation.Summary `json:"summary"`
	DowngradeYearChart string             `json:"downgrade_year_chart,omitempty"`
}

// RunSeveritySweepInput shapes the sweep: a base severity at full path
// count plus a grid at reduced count.
type RunSeveritySweepInput struct {
	BaseSeverity *float64  `json:"base_severity,omitempty" jsonschema:"severity for the full-size base run; defaults to SIM_BASE_SEVERITY"`
	BasePaths    *int      `json:"base_paths,omitempty" jsonschema:"paths for the base run; defaults to SIM_PATHS"`
	Grid         []float64 `json:"grid,omitempty" jsonschema:"explicit severity grid; defaults to the configured linear sweep"`
	GridPaths    *int      `json:"grid_paths,omitempty" jsonschema:"paths per grid point; defaults to SIM_SWEEP_PATHS"`
	Seed         *int64    `json:"seed,omitempty" jsonschema:"base RNG seed for a reproducible sweep; defaults to SIM_SEED"`
}

// RunSeveritySweepOutput is the ordered summary table plus an optional chart.
type RunSeveritySweepOutput struct {
	Summaries     []simulation.Summary `json:"summaries"`
	SeverityChart string               `json:"severity_chart,omitempty"`
}

// SimulatePathInput selects the severity and draw stream for one trajectory.
type SimulatePathInput struct {
	Severity *float64 `json:"severity,omitempty" jsonschema:"leakage severity fraction in [0,1]; defaults to the configured base severity"`
	Seed     *int64   `json:"seed,omitempty" jsonschema:"RNG seed for the path's draw stream; defaults to SIM_SEED"`
}

// SimulatePathOutput is one full trajectory plus optional path charts.
type SimulatePathOutput struct {
	Path          simulation.PathResult `json:"path"`
	CoverageChart string                `json:"coverage_chart,omitempty"`
	LeverageChart string                `json:"leverage_chart,omitempty"`
}

func getModelParametersTool() *sdk.Tool {
	return &sdk.Tool{
		Name: "get_model_parameters",
		Description: "Return the active model calibration (growth, margin, capital structure, leak mechanism, trigger rules) " +
			"and the simulation run defaults. Call this first to anchor on the scenario before running simulations.",
	}
}

func runMonteCarloTool() *sdk.Tool {
	return &sdk.Tool{
		Name: "run_monte_carlo",
		Description: "Run a Monte-Carlo batch of firm trajectories at one leakage severity and return the aggregate downgrade risk: " +
			"probability of downgrade at any time, probability within the headline window, the conditional mean time-to-downgrade " +
			"(null when no path downgraded), and the share of paths with a realized leak.\n\n" +
			"This is a stylized policy/strategy model, NOT a valuation or a calibrated rating model. " +
			"DO NOT extrapolate probabilities beyond what the tool returns.",
	}
}

func runSeveritySweepTool() *sdk.Tool {
	return &sdk.Tool{
		Name: "run_severity_sweep",
		Description: "Run the Monte-Carlo aggregation across a grid of leakage severities (plus the base severity at full path count) " +
			"and return the summary table ordered by ascending severity. Use this to show how downgrade probability responds to " +
			"severity under the current mitigation and capital-intensity assumptions.",
	}
}

func simulatePathTool() *sdk.Tool {
	return &sdk.Tool{
		Name: "simulate_path",
		Description: "Simulate a single firm trajectory at one severity and return the full per-year coverage, leverage, revenue and " +
			"EBITDA sequences together with the downgrade trigger year. Intended for inspecting example paths, not for estimating " +
			"probabilities: use run_monte_carlo for aggregates.",
	}
}

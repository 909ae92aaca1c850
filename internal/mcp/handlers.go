package mcp

import (
	"context"

	"drs-mcp/internal/simulation"
	"drs-mcp/internal/visuals"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"
)

func (s *Server) handleGetModelParameters(_ context.Context, _ *sdk.CallToolRequest, _ struct{}) (*sdk.CallToolResult, GetModelParametersOutput, error) {
	sim := s.cfg.Sim
	out := GetModelParametersOutput{
		Model:        s.cfg.Model,
		BaseSeverity: sim.BaseSeverity,
		Paths:        sim.Paths,
		SweepGrid:    simulation.SeverityGrid(sim.SweepStart, sim.SweepEnd, sim.SweepSteps),
		SweepPaths:   sim.SweepPaths,
		Seed:         sim.Seed,
	}
	return nil, out, nil
}

func (s *Server) handleRunMonteCarlo(_ context.Context, _ *sdk.CallToolRequest, in RunMonteCarloInput) (*sdk.CallToolResult, RunMonteCarloOutput, error) {
	severity := valueOr(in.Severity, s.cfg.Sim.BaseSeverity)
	paths := valueOr(in.Paths, s.cfg.Sim.Paths)
	seed := valueOr(in.Seed, s.cfg.Sim.Seed)

	if err := simulation.ValidateSeverity(severity); err != nil {
		return nil, RunMonteCarloOutput{}, err
	}

	engine := simulation.NewEngine(s.cfg.Model)
	engine.SetSeed(seed)

	log.Debug().Float64("severity", severity).Int("paths", paths).Int64("seed", seed).Msg("Running Monte Carlo batch")
	_, summary := engine.RunMonteCarlo(severity, paths)

	out := RunMonteCarloOutput{Summary: summary}
	if s.cfg.EnableMermaidCharts {
		out.DowngradeYearChart = visuals.GenerateDowngradeYearHistogram(summary.TriggerYearCounts)
	}
	return nil, out, nil
}

func (s *Server) handleRunSeveritySweep(_ context.Context, _ *sdk.CallToolRequest, in RunSeveritySweepInput) (*sdk.CallToolResult, RunSeveritySweepOutput, error) {
	sim := s.cfg.Sim
	baseSeverity := valueOr(in.BaseSeverity, sim.BaseSeverity)
	basePaths := valueOr(in.BasePaths, sim.Paths)
	gridPaths := valueOr(in.GridPaths, sim.SweepPaths)
	seed := valueOr(in.Seed, sim.Seed)

	grid := in.Grid
	if len(grid) == 0 {
		grid = simulation.SeverityGrid(sim.SweepStart, sim.SweepEnd, sim.SweepSteps)
	}

	if err := simulation.ValidateSeverity(baseSeverity); err != nil {
		return nil, RunSeveritySweepOutput{}, err
	}
	for _, severity := range grid {
		if err := simulation.ValidateSeverity(severity); err != nil {
			return nil, RunSeveritySweepOutput{}, err
		}
	}

	engine := simulation.NewEngine(s.cfg.Model)
	engine.SetSeed(seed)

	log.Debug().Float64("baseSeverity", baseSeverity).Int("gridPoints", len(grid)).Int64("seed", seed).Msg("Running severity sweep")
	summaries := engine.Sweep(baseSeverity, basePaths, grid, gridPaths)

	out := RunSeveritySweepOutput{Summaries: summaries}
	if s.cfg.EnableMermaidCharts {
		out.SeverityChart = visuals.GenerateSeverityCurve(summaries, s.cfg.Model.DowngradeWindow)
	}
	return nil, out, nil
}

func (s *Server) handleSimulatePath(_ context.Context, _ *sdk.CallToolRequest, in SimulatePathInput) (*sdk.CallToolResult, SimulatePathOutput, error) {
	severity := valueOr(in.Severity, s.cfg.Sim.BaseSeverity)
	seed := valueOr(in.Seed, s.cfg.Sim.Seed)

	if err := simulation.ValidateSeverity(severity); err != nil {
		return nil, SimulatePathOutput{}, err
	}

	path := simulation.SimulatePath(s.cfg.Model, severity, simulation.NewSource(seed))

	out := SimulatePathOutput{Path: path}
	if s.cfg.EnableMermaidCharts {
		out.CoverageChart = visuals.GenerateCoverageChart(path, s.cfg.Model.CoverageThreshold)
		out.LeverageChart = visuals.GenerateLeverageChart(path, s.cfg.Model.LeverageThreshold)
	}
	return nil, out, nil
}

func valueOr[T any](v *T, fallback T) T {
	if v != nil {
		return *v
	}
	return fallback
}

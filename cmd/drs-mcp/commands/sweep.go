package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"drs-mcp/internal/report"
	"drs-mcp/internal/simulation"
	"drs-mcp/internal/visuals"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var sweepNoCSV bool

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Run the severity sweep, print the summary table, and write the CSV",
	Run: func(cmd *cobra.Command, args []string) {
		sim := cfg.Sim
		grid := simulation.SeverityGrid(sim.SweepStart, sim.SweepEnd, sim.SweepSteps)

		engine := simulation.NewEngine(cfg.Model)
		engine.SetSeed(sim.Seed)

		log.Info().
			Float64("baseSeverity", sim.BaseSeverity).
			Int("gridPoints", len(grid)).
			Int("basePaths", sim.Paths).
			Int("gridPaths", sim.SweepPaths).
			Msg("Running severity sweep")

		summaries := engine.Sweep(sim.BaseSeverity, sim.Paths, grid, sim.SweepPaths)

		report.SweepTable(os.Stdout, summaries)

		if !sweepNoCSV {
			csvPath := filepath.Join(cfg.DataPath, report.SummaryFileName)
			if err := report.WriteSummaryCSV(csvPath, summaries); err != nil {
				log.Fatal().Err(err).Str("path", csvPath).Msg("Failed to write summary CSV")
			}
			fmt.Fprintf(os.Stdout, "\nCSV saved to: %s\n", csvPath)
		}

		if cfg.EnableMermaidCharts {
			fmt.Fprintln(os.Stdout)
			fmt.Fprintln(os.Stdout, visuals.GenerateSeverityCurve(summaries, cfg.Model.DowngradeWindow))
		}
	},
}

func init() {
	sweepCmd.Flags().BoolVar(&sweepNoCSV, "no-csv", false, "skip writing the summary CSV")
	rootCmd.AddCommand(sweepCmd)
}

package commands

import (
	"os"

	"drs-mcp/internal/report"
	"drs-mcp/internal/simulation"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	runSeverity float64
	runPaths    int
	runSeed     int64
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the base-case Monte Carlo batch and print headline metrics",
	Run: func(cmd *cobra.Command, args []string) {
		severity := cfg.Sim.BaseSeverity
		if cmd.Flags().Changed("severity") {
			severity = runSeverity
		}
		paths := cfg.Sim.Paths
		if cmd.Flags().Changed("paths") {
			paths = runPaths
		}
		seed := cfg.Sim.Seed
		if cmd.Flags().Changed("seed") {
			seed = runSeed
		}

		if err := simulation.ValidateSeverity(severity); err != nil {
			log.Fatal().Err(err).Msg("Invalid severity")
		}

		engine := simulation.NewEngine(cfg.Model)
		engine.SetSeed(seed)

		log.Info().Float64("severity", severity).Int("paths", paths).Int64("seed", seed).Msg("Running base case")
		_, summary := engine.RunMonteCarlo(severity, paths)

		report.Headline(os.Stdout, summary)
	},
}

func init() {
	runCmd.Flags().Float64Var(&runSeverity, "severity", 0.20, "leakage severity fraction in [0,1]")
	runCmd.Flags().IntVar(&runPaths, "paths", 3000, "number of Monte Carlo paths")
	runCmd.Flags().Int64Var(&runSeed, "seed", 42, "base RNG seed")
	rootCmd.AddCommand(runCmd)
}

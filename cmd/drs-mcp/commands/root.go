package commands

import (
	"drs-mcp/internal/config"
	"drs-mcp/internal/logging"
	"drs-mcp/internal/mcp"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	// Version, Commit, and BuildDate are set at build time via ldflags.
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"

	verbose bool
	cfg     *config.AppConfig
)

var rootCmd = &cobra.Command{
	Use:   "drs-mcp",
	Short: "DRS-MCP is a downgrade-risk simulation MCP server",
	Long: `A specialized MCP server that estimates the probability and timing of a rating
downgrade after an information-leakage shock, using Monte-Carlo simulation of a
stylized firm (revenue growth, EBITDA margin, interest coverage, leverage).`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Init(verbose)

		// Load configuration
		var err error
		cfg, err = config.Load()
		if err != nil {
			log.Fatal().Err(err).Msg("Failed to load configuration")
		}

		log.Info().
			Str("version", Version).
			Str("commit", Commit).
			Str("buildDate", BuildDate).
			Msg("DRS-MCP starting")
	},
	Run: func(cmd *cobra.Command, args []string) {
		server := mcp.NewServer(cfg, Version)
		if err := server.Start(); err != nil {
			log.Fatal().Err(err).Msg("MCP server stopped with error")
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

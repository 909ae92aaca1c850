// Package mcp exposes the downgrade-risk simulation engine as MCP tools
// over stdio.
package mcp

import (
	"context"

	"drs-mcp/internal/config"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"
)

// Server holds the state for the MCP server.
type Server struct {
	cfg     *config.AppConfig
	version string
}

// NewServer creates a new MCP server bound to the loaded configuration.
func NewServer(cfg *config.AppConfig, version string) *Server {
	return &Server{cfg: cfg, version: version}
}

// Start registers the simulation tools and serves the stdio transport
// until the client disconnects.
func (s *Server) Start() error {
	srv := sdk.NewServer(&sdk.Implementation{Name: "drs-mcp", Version: s.version}, nil)

	sdk.AddTool(srv, getModelParametersTool(), s.handleGetModelParameters)
	sdk.AddTool(srv, runMonteCarloTool(), s.handleRunMonteCarlo)
	sdk.AddTool(srv, runSeveritySweepTool(), s.handleRunSeveritySweep)
	sdk.AddTool(srv, simulatePathTool(), s.handleSimulatePath)

	log.Info().Msg("MCP Server starting stdio loop")
	return srv.Run(context.Background(), &sdk.StdioTransport{})
}

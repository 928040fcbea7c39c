package cmd

import (
	"github.com/spf13/cobra"

	"github.com/stencilhq/cli/internal/output"
	"github.com/stencilhq/cli/internal/server"
)

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the scaffolder as an MCP server over stdio",
		Long: `Serve the scaffolder as a Model Context Protocol server speaking
JSON-RPC over stdio. Clients get two tools: scaffold_project, which
creates a project tree, and list_frameworks, which enumerates the
registered identifiers.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			output.Debug("starting MCP server", "transport", "stdio")
			return server.Serve(server.New(registry))
		},
	}
}

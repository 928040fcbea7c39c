// Package server wires the scaffolding core into an MCP server. It is a
// composition root: the registry is injected, tools are registered, and
// no scaffolding logic lives here.
package server

import (
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/stencilhq/cli/internal/scaffold"
	"github.com/stencilhq/cli/internal/version"
)

// New creates the MCP server with the scaffold and discovery tools
// registered against the given registry.
func New(reg *scaffold.Registry) *mcpserver.MCPServer {
	s := mcpserver.NewMCPServer(
		"stencil",
		version.Version,
		mcpserver.WithToolCapabilities(true),
		mcpserver.WithRecovery(),
		mcpserver.WithInstructions(instructions),
	)

	scaffoldTool := NewScaffoldTool(reg)
	s.AddTool(scaffoldTool.Definition(), scaffoldTool.Handle)

	listTool := NewListTool(reg)
	s.AddTool(listTool.Definition(), listTool.Handle)

	return s
}

// Serve runs the server over stdio until the client disconnects.
func Serve(s *mcpserver.MCPServer) error {
	return mcpserver.ServeStdio(s)
}

const instructions = `stencil scaffolds starter projects for common backend and
frontend frameworks. Call list_frameworks to discover the registered
identifiers and the options each family accepts, then scaffold_project to
create a project tree on disk. Every invocation produces a fresh tree;
re-running with different options overwrites the generated files.`

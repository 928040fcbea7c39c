// Package cmd provides CLI command implementations.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stencilhq/cli/internal/config"
	"github.com/stencilhq/cli/internal/frameworks"
	"github.com/stencilhq/cli/internal/output"
	"github.com/stencilhq/cli/internal/scaffold"
)

var (
	// Global flags
	configFlag  string
	verboseFlag bool

	// Resolved during PersistentPreRunE
	appConfig *config.Config
	registry  *scaffold.Registry
)

// NewRootCmd creates the root command for the stencil CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "stencil",
		Short:         "Framework project scaffolding",
		Long:          `stencil generates starter source trees for backend and frontend frameworks from a single registry of framework blueprints.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Path to config file (env: STENCIL_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(NewNewCmd())
	rootCmd.AddCommand(NewListCmd())
	rootCmd.AddCommand(NewServeCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging, loads configuration, and builds the
// framework registry. An identifier collision during registration is a
// startup fault and aborts the command.
func initializeGlobals(_ *cobra.Command) error {
	cfg, err := config.NewLoader().Load(configFlag)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	appConfig = cfg

	output.SetupLogging(verboseFlag || cfg.Verbose)

	reg := scaffold.NewRegistry(scaffold.OSWriter{})
	if err := frameworks.RegisterAll(reg); err != nil {
		return fmt.Errorf("registering frameworks: %w", err)
	}
	registry = reg

	output.Debug("stencil started", "frameworks", len(registry.Identifiers()))
	return nil
}

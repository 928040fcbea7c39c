package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stencilhq/cli/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), version.GetInfo().String())
			return nil
		},
	}
}

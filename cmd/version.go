package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/exascience/primesearch/internal/build"
)

// NewVersionCommand returns the command to get the primesearch version
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Return the primesearch version",
		Long:  "Return the primesearch version.",
		RunE:  version,
		Args:  cobra.NoArgs,
	}
}

// print out the built version
func version(cmd *cobra.Command, _ []string) error {
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "primesearch version %s date %s commit id %s\n", build.Version, build.Date, build.Commit)
	return err
}

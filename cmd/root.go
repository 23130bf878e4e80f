// Package cmd contains all the commands included in the binary file.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// NewRootCommand enables all children commands to read flags from CLI flags, environment variables prefixed with PRIMESEARCH, or primesearch.yaml (in that order).
func NewRootCommand() *cobra.Command {
	viper.SetConfigName("primesearch")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("PRIMESEARCH")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	configPaths := []string{"/etc/primesearch", "$HOME/.primesearch", "."}
	for _, path := range configPaths {
		viper.AddConfigPath(path)
	}

	// a missing config file is fine
	_ = viper.ReadInConfig()

	return &cobra.Command{
		Use:   "primesearch",
		Short: "Search a range of numbers for primes in parallel",
		Long: `Search a range of numbers for primes in parallel.

The range is divided into contiguous partitions of near-equal size, and each
partition is checked by its own worker.`,
		SilenceUsage: true,
	}
}

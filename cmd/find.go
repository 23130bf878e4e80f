package cmd

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/exascience/primesearch"
	"github.com/exascience/primesearch/cmd/util"
	"github.com/exascience/primesearch/finder"
	"github.com/exascience/primesearch/internal/metrics"
	"github.com/exascience/primesearch/pkg/logger"
	"github.com/exascience/primesearch/report"
)

const (
	partitionsFlag = "partitions"
	lowerFlag      = "lower"
	upperFlag      = "upper"
	strategyFlag   = "strategy"
	poolSizeFlag   = "pool-size"
	sortedFlag     = "sorted"
	colorFlag      = "color"
	summaryFlag    = "summary"
	metricsFlag    = "metrics"
	logFormatFlag  = "log-format"
	logLevelFlag   = "log-level"
)

// NewFindCommand returns the command that runs one search and prints its
// results.
func NewFindCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find",
		Short: "Check every number of a range for primality",
		Long: `Check every number from --lower to --upper (both included) for primality,
using --partitions workers. If --partitions is not given, one partition per
available CPU is used.`,
		RunE: runFind,
		Args: cobra.NoArgs,
		PreRun: func(cmd *cobra.Command, args []string) {
			flags := cmd.Flags()

			util.MustBindPFlag(partitionsFlag, flags.Lookup(partitionsFlag))
			util.MustBindEnv(partitionsFlag, "PRIMESEARCH_PARTITIONS")
			util.MustBindPFlag(lowerFlag, flags.Lookup(lowerFlag))
			util.MustBindEnv(lowerFlag, "PRIMESEARCH_LOWER")
			util.MustBindPFlag(upperFlag, flags.Lookup(upperFlag))
			util.MustBindEnv(upperFlag, "PRIMESEARCH_UPPER")
			util.MustBindPFlag(strategyFlag, flags.Lookup(strategyFlag))
			util.MustBindEnv(strategyFlag, "PRIMESEARCH_STRATEGY")
			util.MustBindPFlag(poolSizeFlag, flags.Lookup(poolSizeFlag))
			util.MustBindEnv(poolSizeFlag, "PRIMESEARCH_POOL_SIZE")
			util.MustBindPFlag(sortedFlag, flags.Lookup(sortedFlag))
			util.MustBindEnv(sortedFlag, "PRIMESEARCH_SORTED")
			util.MustBindPFlag(colorFlag, flags.Lookup(colorFlag))
			util.MustBindEnv(colorFlag, "PRIMESEARCH_COLOR")
			util.MustBindPFlag(summaryFlag, flags.Lookup(summaryFlag))
			util.MustBindEnv(summaryFlag, "PRIMESEARCH_SUMMARY")
			util.MustBindPFlag(metricsFlag, flags.Lookup(metricsFlag))
			util.MustBindEnv(metricsFlag, "PRIMESEARCH_METRICS")
			util.MustBindPFlag(logFormatFlag, flags.Lookup(logFormatFlag))
			util.MustBindEnv(logFormatFlag, "PRIMESEARCH_LOG_FORMAT")
			util.MustBindPFlag(logLevelFlag, flags.Lookup(logLevelFlag))
			util.MustBindEnv(logLevelFlag, "PRIMESEARCH_LOG_LEVEL")
		},
	}

	flags := cmd.Flags()

	flags.Uint64P(partitionsFlag, "p", 0, "the number of partitions, each checked by its own worker")
	flags.Uint64(lowerFlag, 1, "the first number of the search range")
	flags.Uint64(upperFlag, 100, "the last number of the search range")
	flags.String(strategyFlag, string(finder.Batch), "how workers are dispatched: batch, stream, pool or sequential")
	flags.Int(poolSizeFlag, 0, "the number of workers of the pool strategy (0 uses one per CPU)")
	flags.Bool(sortedFlag, false, "sort the output of the stream strategy")
	flags.Bool(colorFlag, false, "highlight primes in color")
	flags.Bool(summaryFlag, false, "print a summary after the results")
	flags.Bool(metricsFlag, false, "print the collected metrics to stderr")
	flags.String(logFormatFlag, "text", "the log format: text or json")
	flags.String(logLevelFlag, "warn", "the log level: none, debug, info, warn or error")

	// NOTE: if you add a new flag here, add the bindings in PreRun

	return cmd
}

func runFind(cmd *cobra.Command, _ []string) error {
	strategy, err := finder.ParseStrategy(viper.GetString(strategyFlag))
	if err != nil {
		return err
	}
	log, err := logger.NewLogger(viper.GetString(logFormatFlag), viper.GetString(logLevelFlag))
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	r := primesearch.NewSearchRange(viper.GetUint64(lowerFlag), viper.GetUint64(upperFlag))
	count := viper.GetUint64(partitionsFlag)
	if !viper.IsSet(partitionsFlag) {
		count = primesearch.DefaultPartitions(r)
	}

	reg := prometheus.NewRegistry()
	f := finder.New(
		finder.WithStrategy(strategy),
		finder.WithPoolSize(viper.GetInt(poolSizeFlag)),
		finder.WithSorted(viper.GetBool(sortedFlag)),
		finder.WithLogger(log),
		finder.WithMetrics(metrics.New(reg)),
	)

	values, err := f.Find(count, r.Start, r.End)
	if viper.GetBool(metricsFlag) {
		if derr := metrics.Dump(cmd.ErrOrStderr(), reg); derr != nil {
			return derr
		}
	}
	if err != nil {
		return err
	}

	printer := report.NewPrinter(cmd.OutOrStdout(), viper.GetBool(colorFlag))
	if err := printer.Print(values); err != nil {
		return err
	}
	if viper.GetBool(summaryFlag) {
		// the search succeeded, so partitioning cannot fail
		partitions, _ := primesearch.Partitions(r, count)
		return printer.PrintSummary(report.Summarize(values, partitions))
	}
	return nil
}

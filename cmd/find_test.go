package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"

	"github.com/exascience/primesearch"
	"github.com/exascience/primesearch/cmd/util"
)

func executeFind(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	root := NewRootCommand()
	root.AddCommand(NewFindCommand())
	var stdout, stderr bytes.Buffer
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"find"}, args...))
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestFindCommand(t *testing.T) {
	util.PrepareTempConfigDir(t)

	stdout, _, err := executeFind(t, "--partitions", "2", "--lower", "1", "--upper", "20", "--log-level", "none")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 20)
	require.Equal(t, "1 is not prime.", lines[0])
	require.Equal(t, "2 is prime.", lines[1])
	require.Equal(t, "4 is not prime.", lines[3])
	require.Equal(t, "19 is prime.", lines[18])
	require.Equal(t, "20 is not prime.", lines[19])
}

func TestFindCommandStrategies(t *testing.T) {
	for _, strategy := range []string{"batch", "stream", "pool", "sequential"} {
		t.Run(strategy, func(t *testing.T) {
			util.PrepareTempConfigDir(t)

			stdout, _, err := executeFind(t, "-p", "3", "--upper", "30", "--strategy", strategy, "--sorted", "--log-level", "none")
			require.NoError(t, err)
			lines := strings.Split(strings.TrimSpace(stdout), "\n")
			require.Len(t, lines, 30)
			require.Equal(t, "29 is prime.", lines[28])
		})
	}
}

func TestFindCommandSummaryAndMetrics(t *testing.T) {
	util.PrepareTempConfigDir(t)

	stdout, stderr, err := executeFind(t, "-p", "4", "--lower", "1", "--upper", "101", "--summary", "--metrics", "--log-level", "none")
	require.NoError(t, err)
	require.Contains(t, stdout, "101 values checked, 26 primes")
	require.Contains(t, stdout, "4 partitions, size mean 25.25")
	require.Contains(t, stderr, "# TYPE primesearch_searches_total counter")
	require.Contains(t, stderr, `primesearch_searches_total{outcome="ok",strategy="batch"} 1`)
	require.Contains(t, stderr, `primesearch_search_duration_seconds_count{strategy="batch"} 1`)
}

func TestFindCommandErrors(t *testing.T) {
	for _, tc := range []struct {
		name          string
		args          []string
		errorExpected error
		message       string
	}{
		{
			name:          "zero_partitions",
			args:          []string{"--partitions", "0", "--log-level", "none"},
			errorExpected: primesearch.ErrZeroPartitions,
		},
		{
			name:          "empty_range",
			args:          []string{"-p", "2", "--lower", "5", "--upper", "5", "--log-level", "none"},
			errorExpected: primesearch.ErrEmptyRange,
		},
		{
			name:          "inverted_range",
			args:          []string{"-p", "2", "--lower", "9", "--upper", "5", "--log-level", "none"},
			errorExpected: primesearch.ErrInvertedRange,
		},
		{
			name:          "too_many_partitions",
			args:          []string{"-p", "11", "--lower", "1", "--upper", "10", "--log-level", "none"},
			errorExpected: primesearch.ErrPartitionCountExceedsRange,
		},
		{
			name:    "unknown_strategy",
			args:    []string{"--strategy", "threads"},
			message: "unknown strategy",
		},
		{
			name:    "unknown_log_level",
			args:    []string{"--log-level", "chatty"},
			message: "unknown log level",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			util.PrepareTempConfigDir(t)

			stdout, stderr, err := executeFind(t, tc.args...)
			if tc.errorExpected != nil {
				require.ErrorIs(t, err, tc.errorExpected)
			} else {
				require.ErrorContains(t, err, tc.message)
			}
			require.Empty(t, stdout)
			require.Contains(t, stderr, "Error: ")
		})
	}
}

func TestFindCommandConfigFileValuesAreParsed(t *testing.T) {
	config := `partitions: 3
lower: 10
upper: 15
log-level: none
`
	util.PrepareTempConfigFile(t, config)

	findCmd := NewFindCommand()
	findCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		require.Equal(t, uint64(3), viper.GetUint64(partitionsFlag))
		require.True(t, viper.IsSet(partitionsFlag))
		require.Equal(t, uint64(10), viper.GetUint64(lowerFlag))
		require.Equal(t, uint64(15), viper.GetUint64(upperFlag))
		require.Equal(t, "none", viper.GetString(logLevelFlag))
		return nil
	}

	root := NewRootCommand()
	root.AddCommand(findCmd)
	root.SetArgs([]string{"find"})
	require.NoError(t, root.Execute())
}

func TestFindCommandEnvValuesAreParsed(t *testing.T) {
	util.PrepareTempConfigDir(t)
	t.Setenv("PRIMESEARCH_STRATEGY", "stream")
	t.Setenv("PRIMESEARCH_POOL_SIZE", "7")

	findCmd := NewFindCommand()
	findCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		require.Equal(t, "stream", viper.GetString(strategyFlag))
		require.Equal(t, 7, viper.GetInt(poolSizeFlag))
		require.False(t, viper.IsSet(partitionsFlag))
		return nil
	}

	root := NewRootCommand()
	root.AddCommand(findCmd)
	root.SetArgs([]string{"find"})
	require.NoError(t, root.Execute())
}

func TestFindCommandExplicitEnvBindings(t *testing.T) {
	util.PrepareTempConfigDir(t)
	t.Setenv("PRIMESEARCH_PARTITIONS", "3")
	t.Setenv("PRIMESEARCH_LOWER", "10")
	t.Setenv("PRIMESEARCH_UPPER", "15")
	t.Setenv("PRIMESEARCH_POOL_SIZE", "2")
	t.Setenv("PRIMESEARCH_SORTED", "true")
	t.Setenv("PRIMESEARCH_LOG_FORMAT", "json")
	t.Setenv("PRIMESEARCH_LOG_LEVEL", "none")

	// without the root command no env prefix or automatic env is set up,
	// so only the bindings made by the find command apply
	findCmd := NewFindCommand()
	findCmd.RunE = func(cmd *cobra.Command, _ []string) error {
		require.True(t, viper.IsSet(partitionsFlag))
		require.Equal(t, uint64(3), viper.GetUint64(partitionsFlag))
		require.Equal(t, uint64(10), viper.GetUint64(lowerFlag))
		require.Equal(t, uint64(15), viper.GetUint64(upperFlag))
		require.Equal(t, 2, viper.GetInt(poolSizeFlag))
		require.True(t, viper.GetBool(sortedFlag))
		require.Equal(t, "json", viper.GetString(logFormatFlag))
		require.Equal(t, "none", viper.GetString(logLevelFlag))
		require.Equal(t, "batch", viper.GetString(strategyFlag))
		return nil
	}
	findCmd.SetArgs([]string{})
	require.NoError(t, findCmd.Execute())
}

func TestVersionCommand(t *testing.T) {
	util.PrepareTempConfigDir(t)

	root := NewRootCommand()
	root.AddCommand(NewVersionCommand())
	var stdout bytes.Buffer
	root.SetOut(&stdout)
	root.SetArgs([]string{"version"})
	require.NoError(t, root.Execute())
	require.Contains(t, stdout.String(), "primesearch version dev")
}

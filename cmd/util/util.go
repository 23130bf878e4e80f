// Package util provides common utilities for spf13/cobra CLI utilities
// that can be used for various commands within this project.
package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

// MustBindPFlag attempts to bind a specific key to a pflag (as used by cobra) and panics
// if the binding fails with a non-nil error.
func MustBindPFlag(key string, flag *pflag.Flag) {
	if err := viper.BindPFlag(key, flag); err != nil {
		panic("failed to bind pflag: " + err.Error())
	}
}

// MustBindEnv binds a viper key to one or more environment variables and
// panics if the binding fails with a non-nil error.
func MustBindEnv(input ...string) {
	if err := viper.BindEnv(input...); err != nil {
		panic("failed to bind env key: " + err.Error())
	}
}

// PrepareTempConfigDir resets viper and points HOME at a temporary
// directory, so that no config file of the developer machine is picked up.
func PrepareTempConfigDir(t *testing.T) string {
	t.Helper()
	viper.Reset()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Chdir(dir)
	t.Cleanup(viper.Reset)
	return dir
}

// PrepareTempConfigFile writes config as $HOME/.primesearch/primesearch.yaml.
func PrepareTempConfigFile(t *testing.T, config string) {
	t.Helper()
	home := PrepareTempConfigDir(t)
	configDir := filepath.Join(home, ".primesearch")
	require.NoError(t, os.Mkdir(configDir, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "primesearch.yaml"), []byte(config), 0o600))
}

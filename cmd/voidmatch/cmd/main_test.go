package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExecute(t *testing.T) {
	// Execute() calls os.Exit(1) on error, so the error path is not
	// testable here. This is primarily a compile-time check.
	assert.NotNil(t, Execute)
}

func TestVersionVariables(t *testing.T) {
	assert.NotEmpty(t, Version, "Version should not be empty")
	assert.NotEmpty(t, Commit, "Commit should not be empty")
}

func TestCLIFlagsVariables(t *testing.T) {
	// Package-level variables set by cobra flags.

	// cfgFile defaults to "voidmatch.yaml" via init()
	assert.Equal(t, "voidmatch.yaml", cfgFile, "cfgFile should default to voidmatch.yaml")
	assert.Equal(t, "", logLevel)
	assert.Equal(t, "", logFormat)

	// Numeric override flags default to 0 so config values win
	assert.Equal(t, float64(0), threshold)
	assert.Equal(t, float64(0), zMin)
	assert.Equal(t, float64(0), zMax)
	assert.Equal(t, 0, workers)
}

func TestCLIOverrideStruct(t *testing.T) {
	overrides := CLIOverrides{
		LogLevel:  "debug",
		LogFormat: "json",
		Threshold: 25.0,
		ZMin:      0.02,
		ZMax:      0.14,
		Workers:   4,
	}

	assert.Equal(t, "debug", overrides.LogLevel)
	assert.Equal(t, "json", overrides.LogFormat)
	assert.Equal(t, 25.0, overrides.Threshold)
	assert.Equal(t, 0.02, overrides.ZMin)
	assert.Equal(t, 0.14, overrides.ZMax)
	assert.Equal(t, 4, overrides.Workers)
}

func TestRootCommandStructure(t *testing.T) {
	assert.Equal(t, "voidmatch", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)

	for _, name := range []string{"config", "log-level", "log-format", "threshold", "zmin", "zmax", "workers"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), "missing persistent flag %s", name)
	}
}

func TestSubcommandsRegistered(t *testing.T) {
	names := make(map[string]bool)
	for _, cmd := range rootCmd.Commands() {
		names[cmd.Name()] = true
	}
	for _, want := range []string{"validate", "analyze", "sweep", "version"} {
		assert.True(t, names[want], "%s command should be added to root command", want)
	}
}

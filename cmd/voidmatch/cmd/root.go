package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

// CLI flags that override config file values
var (
	cfgFile   string
	logLevel  string
	logFormat string
	threshold float64
	zMin      float64
	zMax      float64
	workers   int
)

var rootCmd = &cobra.Command{
	Use:   "voidmatch",
	Short: "Supernova / cosmic-void environmental analysis",
	Long: `A CLI tool for cross-matching supernova catalogs against cosmic-void
catalogs and testing for environmental correlations in cosmological
observables.

Pipeline:
  - Catalog loading with flexible column aliasing and validation reports
  - Flat-LCDM distance moduli and distance-implied redshifts
  - Nearest-void cross-matching and void/wall/cluster classification
  - Welch's two-sample t-test with Cohen's d effect size
  - Parameter sweeps over threshold and redshift-range grids`,
	Version: Version,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "voidmatch.yaml",
		"Path to configuration file")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	// Classification overrides
	rootCmd.PersistentFlags().Float64Var(&threshold, "threshold", 0,
		"Override void distance threshold in Mpc")
	rootCmd.PersistentFlags().Float64Var(&zMin, "zmin", 0,
		"Override minimum analysis redshift")
	rootCmd.PersistentFlags().Float64Var(&zMax, "zmax", 0,
		"Override maximum analysis redshift")

	// Sweep overrides
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 0,
		"Override number of parallel sweep workers")
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// ConfigFileExplicit reports whether the user set --config on the
// command line rather than relying on the default.
func ConfigFileExplicit() bool {
	return rootCmd.PersistentFlags().Changed("config")
}

// CLIOverrides contains flag values that override config file settings
type CLIOverrides struct {
	LogLevel  string
	LogFormat string
	Threshold float64
	ZMin      float64
	ZMax      float64
	Workers   int
}

// GetCLIOverrides returns the CLI flag override values
func GetCLIOverrides() CLIOverrides {
	return CLIOverrides{
		LogLevel:  logLevel,
		LogFormat: logFormat,
		Threshold: threshold,
		ZMin:      zMin,
		ZMax:      zMax,
		Workers:   workers,
	}
}

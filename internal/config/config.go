// Package config provides configuration structures and loading for voidmatch.
package config

// Config represents the complete application configuration.
type Config struct {
	Cosmology      CosmologyConfig      `yaml:"cosmology" mapstructure:"cosmology"`
	Classification ClassificationConfig `yaml:"classification" mapstructure:"classification"`
	Catalogs       CatalogConfig        `yaml:"catalogs" mapstructure:"catalogs"`
	Sweep          SweepConfig          `yaml:"sweep" mapstructure:"sweep"`
	Output         OutputConfig         `yaml:"output" mapstructure:"output"`
	Logging        LoggingConfig        `yaml:"logging" mapstructure:"logging"`
}

// CosmologyConfig holds the flat-LCDM parameter set used for every
// distance computation. Values are threaded explicitly through the
// pipeline; nothing reads them from package state.
type CosmologyConfig struct {
	HubbleConstant float64 `yaml:"hubble_constant" mapstructure:"hubble_constant"` // km/s/Mpc
	MatterDensity  float64 `yaml:"matter_density" mapstructure:"matter_density"`   // Omega_m
}

// ClassificationConfig controls the environmental classification step.
type ClassificationConfig struct {
	VoidThresholdMpc float64 `yaml:"void_threshold_mpc" mapstructure:"void_threshold_mpc"`
	RedshiftMin      float64 `yaml:"redshift_min" mapstructure:"redshift_min"`
	RedshiftMax      float64 `yaml:"redshift_max" mapstructure:"redshift_max"`
}

// CatalogConfig controls catalog loading and row validation.
type CatalogConfig struct {
	// MaxSkipFraction is the tolerated fraction of malformed or
	// out-of-range rows before a load becomes fatal.
	MaxSkipFraction float64 `yaml:"max_skip_fraction" mapstructure:"max_skip_fraction"`

	// SupernovaAliases and VoidAliases extend the built-in column alias
	// tables: canonical column name -> additional accepted header names.
	SupernovaAliases map[string][]string `yaml:"supernova_aliases" mapstructure:"supernova_aliases"`
	VoidAliases      map[string][]string `yaml:"void_aliases" mapstructure:"void_aliases"`
}

// SweepConfig defines the parameter grid for the sweep command.
type SweepConfig struct {
	Thresholds    []float64 `yaml:"thresholds" mapstructure:"thresholds"` // Mpc
	RedshiftMaxes []float64 `yaml:"redshift_maxes" mapstructure:"redshift_maxes"`
	Observables   []string  `yaml:"observables" mapstructure:"observables"`
	MinGroupSize  int       `yaml:"min_group_size" mapstructure:"min_group_size"`
	Workers       int       `yaml:"workers" mapstructure:"workers"`
}

// OutputConfig controls where and how results tables are written.
type OutputConfig struct {
	Format string `yaml:"format" mapstructure:"format"` // table, tsv, or csv
	Path   string `yaml:"path" mapstructure:"path"`     // empty or "-" for stdout
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// Observables accepted by the statistical tester.
const (
	ObservableDistanceResidual = "distance_residual"
	ObservableRawRedshift      = "raw_redshift"
	ObservableImpliedRedshift  = "implied_redshift"
	ObservableRedshiftResidual = "redshift_residual"
)

// KnownObservables lists every observable the tester understands.
var KnownObservables = []string{
	ObservableDistanceResidual,
	ObservableRawRedshift,
	ObservableImpliedRedshift,
	ObservableRedshiftResidual,
}

// DefaultConfig returns a Config with sensible default values.
// Cosmology defaults are the Planck 2018 flat-LCDM parameters.
func DefaultConfig() *Config {
	return &Config{
		Cosmology: CosmologyConfig{
			HubbleConstant: 67.4,
			MatterDensity:  0.315,
		},
		Classification: ClassificationConfig{
			VoidThresholdMpc: 20.0,
			RedshiftMin:      0.01,
			RedshiftMax:      0.12,
		},
		Catalogs: CatalogConfig{
			MaxSkipFraction: 0.2,
		},
		Sweep: SweepConfig{
			Thresholds:    []float64{10, 15, 20, 25, 30},
			RedshiftMaxes: []float64{0.10, 0.11, 0.12, 0.13, 0.14, 0.15},
			Observables:   []string{ObservableDistanceResidual},
			MinGroupSize:  2,
			Workers:       1,
		},
		Output: OutputConfig{
			Format: "table",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}

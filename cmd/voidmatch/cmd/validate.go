package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vchlab/voidmatch/internal/catalog"
	"github.com/vchlab/voidmatch/internal/config"
	"github.com/vchlab/voidmatch/internal/cosmology"
	"github.com/vchlab/voidmatch/internal/logger"
)

var validateCmd = &cobra.Command{
	Use:   "validate <catalog-path>...",
	Short: "Validate catalog files and print load diagnostics",
	Long: `Validate loads each named catalog file against the expected schema and
prints a validation report.

Checks performed:
  - Configuration syntax and parameter ranges
  - Required column detection (with alias resolution)
  - Per-row numeric parsing and physical plausibility
  - Skipped-row accounting against the configured tolerance

The catalog kind (supernova or void) is detected from the header row.

Example:
  voidmatch validate pantheon.dat voids.dat`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfigAndLogger()
	if err != nil {
		return err
	}

	log.Info("Starting catalog validation...")

	cosmo := cosmology.Params{H0: cfg.Cosmology.HubbleConstant, OmegaM: cfg.Cosmology.MatterDensity}

	fmt.Printf("\n=== Catalog Validation ===\n")
	fmt.Printf("Config file: %s\n", GetConfigFile())
	fmt.Printf("Catalogs: %d\n\n", len(args))

	hasErrors := false
	for _, path := range args {
		fmt.Printf("--- Catalog: %s ---\n", path)

		report, err := catalog.Inspect(path, catalog.Options{
			MaxSkipFraction: cfg.Catalogs.MaxSkipFraction,
			ExtraAliases:    mergedAliases(cfg),
			LittleH:         cosmo.LittleH(),
		})
		if err != nil {
			fmt.Printf("❌ Validation failed: %v\n\n", err)
			hasErrors = true
			continue
		}

		printLoadReport(report)
		fmt.Printf("✅ Catalog valid\n\n")
	}

	if hasErrors {
		return fmt.Errorf("validation failed for one or more catalogs")
	}

	fmt.Println("=== Validation Complete ===")
	fmt.Println("✅ All catalogs validated successfully")
	return nil
}

func printLoadReport(r *catalog.LoadReport) {
	fmt.Printf("Kind: %s\n", r.Kind)
	fmt.Printf("Rows read: %d\n", r.RowsRead)
	fmt.Printf("Records kept: %d\n", r.Kept)
	if r.SkippedTotal() > 0 {
		fmt.Printf("Rows skipped: %d (%.1f%%)\n", r.SkippedTotal(), 100*r.SkipFraction())
		reasons := make([]string, 0, len(r.Skipped))
		for reason := range r.Skipped {
			reasons = append(reasons, reason)
		}
		sort.Strings(reasons)
		for _, reason := range reasons {
			fmt.Printf("  - %s: %d\n", reason, r.Skipped[reason])
		}
	}
	if r.Kept > 0 {
		fmt.Printf("Redshift range: %.4f - %.4f\n", r.RedshiftMin, r.RedshiftMax)
		fmt.Printf("RA coverage: %.2f° - %.2f°\n", r.RAMin, r.RAMax)
		fmt.Printf("Dec coverage: %.2f° - %.2f°\n", r.DecMin, r.DecMax)
	}
}

// mergedAliases combines both configured alias tables for kind
// detection. Schema.Extend ignores canonical columns a schema does not
// know, so supernova and void aliases can share one map.
func mergedAliases(cfg *config.Config) map[string][]string {
	if len(cfg.Catalogs.SupernovaAliases) == 0 && len(cfg.Catalogs.VoidAliases) == 0 {
		return nil
	}
	merged := make(map[string][]string)
	for canonical, names := range cfg.Catalogs.SupernovaAliases {
		merged[canonical] = append(merged[canonical], names...)
	}
	for canonical, names := range cfg.Catalogs.VoidAliases {
		merged[canonical] = append(merged[canonical], names...)
	}
	return merged
}

// loadConfigAndLogger loads and validates the configuration, applies CLI
// overrides, and builds the logger. Shared by every command.
func loadConfigAndLogger() (*config.Config, *logger.Logger, error) {
	// The implicit default config file may be absent, but a path the
	// user named on the command line must exist.
	if ConfigFileExplicit() {
		if _, err := os.Stat(GetConfigFile()); os.IsNotExist(err) {
			return nil, nil, fmt.Errorf("config file %s does not exist", GetConfigFile())
		}
	}

	cfg, err := config.Load(GetConfigFile())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	overrides := GetCLIOverrides()
	cfg.ApplyOverrides(overrides.LogLevel, overrides.LogFormat,
		overrides.Threshold, overrides.ZMin, overrides.ZMax, overrides.Workers)

	if err := cfg.Validate(); err != nil {
		return nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, log, nil
}

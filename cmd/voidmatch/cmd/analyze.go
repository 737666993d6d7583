package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vchlab/voidmatch/internal/catalog"
	"github.com/vchlab/voidmatch/internal/classify"
	"github.com/vchlab/voidmatch/internal/config"
	"github.com/vchlab/voidmatch/internal/cosmology"
	"github.com/vchlab/voidmatch/internal/logger"
	"github.com/vchlab/voidmatch/internal/stats"
)

var (
	analyzeObservable string
	analyzeGroupA     string
	analyzeGroupB     string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze <sn-catalog> <void-catalog>",
	Short: "Run a single classification and significance test",
	Long: `Analyze cross-matches the supernova catalog against the void catalog,
classifies every supernova as void, wall, or cluster, and runs Welch's
two-sample t-test on the chosen observable between the two comparison
groups.

Any load or configuration error is fatal. Observables:
  distance_residual   observed minus predicted distance modulus
  raw_redshift        observed redshift
  implied_redshift    redshift implied by the observed distance modulus
  redshift_residual   observed minus implied redshift

Example:
  voidmatch analyze --threshold 25 --zmax 0.12 pantheon.dat voids.dat`,
	Args: cobra.ExactArgs(2),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeObservable, "observable", config.ObservableDistanceResidual,
		"Observable to test")
	analyzeCmd.Flags().StringVar(&analyzeGroupA, "group-a", "void",
		"First comparison group (void, wall, cluster)")
	analyzeCmd.Flags().StringVar(&analyzeGroupB, "group-b", "cluster",
		"Second comparison group (void, wall, cluster)")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfigAndLogger()
	if err != nil {
		return err
	}

	if !knownObservable(analyzeObservable) {
		return fmt.Errorf("unknown observable %q", analyzeObservable)
	}
	groupA, err := classify.ParseEnvironment(analyzeGroupA)
	if err != nil {
		return err
	}
	groupB, err := classify.ParseEnvironment(analyzeGroupB)
	if err != nil {
		return err
	}
	if groupA == groupB {
		return fmt.Errorf("comparison groups must differ (both are %q)", groupA)
	}

	cosmo := cosmology.Params{H0: cfg.Cosmology.HubbleConstant, OmegaM: cfg.Cosmology.MatterDensity}

	sns, voids, err := loadCatalogs(cfg, cosmo, args[0], args[1], log)
	if err != nil {
		return err
	}

	classifier := classify.New(cosmo, classify.Config{
		ThresholdMpc: cfg.Classification.VoidThresholdMpc,
		RedshiftMin:  cfg.Classification.RedshiftMin,
		RedshiftMax:  cfg.Classification.RedshiftMax,
	})

	result, err := classifier.Run(sns, voids)
	if err != nil {
		return fmt.Errorf("classification failed: %w", err)
	}

	printClassification(cfg, result)

	test, err := stats.WelchTTest(
		stats.Group{Name: groupA.String(), Values: result.ObservableValues(analyzeObservable, groupA)},
		stats.Group{Name: groupB.String(), Values: result.ObservableValues(analyzeObservable, groupB)},
	)
	if err != nil {
		return fmt.Errorf("significance test failed: %w", err)
	}

	printTestResult(analyzeObservable, test)

	log.Infow("Analysis complete",
		"observable", analyzeObservable,
		"p_value", test.PValue,
		"significant", test.Significant(),
	)
	return nil
}

func printClassification(cfg *config.Config, result *classify.Result) {
	fmt.Printf("\n=== Environmental Classification ===\n")
	fmt.Printf("Analysis sample: %d supernovae, %d voids\n",
		result.SupernovaeMatched, result.VoidsUsed)
	if result.Excluded > 0 {
		fmt.Printf("Outside redshift window: %d supernovae\n", result.Excluded)
	}
	fmt.Printf("Redshift range: %.3f - %.3f\n",
		cfg.Classification.RedshiftMin, cfg.Classification.RedshiftMax)
	fmt.Printf("Void threshold: %.1f Mpc\n\n", cfg.Classification.VoidThresholdMpc)

	for _, env := range classify.Environments {
		count := result.Counts[env]
		pct := 100 * float64(count) / float64(result.SupernovaeMatched)
		fmt.Printf("  %-8s %4d (%.1f%%)\n", env.String()+":", count, pct)
	}

	fmt.Printf("\nCross-match diagnostics:\n")
	fmt.Printf("  Median angular separation: %.2f°\n", result.MedianAngularSepDeg)
	fmt.Printf("  Median physical separation: %.1f Mpc\n", result.MedianSeparationMpc)
	fmt.Printf("  Median redshift difference: %.4f\n", result.MedianRedshiftDiff)
	if result.ImpliedZFailures > 0 {
		fmt.Printf("  Records without implied redshift: %d\n", result.ImpliedZFailures)
	}
}

func printTestResult(observable string, r *stats.TestResult) {
	fmt.Printf("\n=== Hypothesis Test (%s) ===\n", observable)
	fmt.Printf("%s: %.4f ± %.4f (n=%d)\n",
		r.GroupA.Name, r.GroupA.Mean, r.GroupA.SEM, r.GroupA.N)
	fmt.Printf("%s: %.4f ± %.4f (n=%d)\n",
		r.GroupB.Name, r.GroupB.Mean, r.GroupB.SEM, r.GroupB.N)
	fmt.Printf("Mean difference: %.4f\n", r.MeanDiff)
	fmt.Printf("t-statistic: %.3f (df=%.1f)\n", r.TStatistic, r.DF)
	fmt.Printf("p-value: %.6f %s\n", r.PValue, r.Significance())
	fmt.Printf("Effect size (Cohen's d): %.3f\n", r.CohensD)
	if r.Degenerate {
		fmt.Printf("⚠️  Degenerate input: both groups are constant\n")
	}

	if r.Significant() {
		fmt.Printf("\n✅ Significant environmental correlation detected\n")
	} else {
		fmt.Printf("\n❌ No significant environmental correlation found\n")
	}
}

// loadCatalogs reads both input catalogs with the configured options.
func loadCatalogs(cfg *config.Config, cosmo cosmology.Params, snPath, voidPath string, log *logger.Logger) ([]catalog.Supernova, []catalog.Void, error) {
	sns, snReport, err := catalog.LoadSupernovae(snPath, catalog.Options{
		MaxSkipFraction: cfg.Catalogs.MaxSkipFraction,
		ExtraAliases:    cfg.Catalogs.SupernovaAliases,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load supernova catalog: %w", err)
	}
	log.WithCatalog(snPath).Infow("Loaded supernova catalog",
		"kept", snReport.Kept, "skipped", snReport.SkippedTotal())

	voids, voidReport, err := catalog.LoadVoids(voidPath, catalog.Options{
		MaxSkipFraction: cfg.Catalogs.MaxSkipFraction,
		ExtraAliases:    cfg.Catalogs.VoidAliases,
		LittleH:         cosmo.LittleH(),
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load void catalog: %w", err)
	}
	log.WithCatalog(voidPath).Infow("Loaded void catalog",
		"kept", voidReport.Kept, "skipped", voidReport.SkippedTotal())

	return sns, voids, nil
}

func knownObservable(name string) bool {
	for _, known := range config.KnownObservables {
		if name == known {
			return true
		}
	}
	return false
}

package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vchlab/voidmatch/internal/classify"
	"github.com/vchlab/voidmatch/internal/cosmology"
	"github.com/vchlab/voidmatch/internal/report"
	"github.com/vchlab/voidmatch/internal/sweep"
)

var (
	sweepGroupA string
	sweepGroupB string
	sweepOutput string
	sweepFormat string
)

var sweepCmd = &cobra.Command{
	Use:   "sweep <sn-catalog> <void-catalog>",
	Short: "Sweep the parameter grid and rank results by significance",
	Long: `Sweep runs classification and testing across the configured grid of
(void threshold, max redshift) combinations and ranks the outcomes by
ascending p-value.

A combination that cannot produce a test (empty sample, insufficient
group size) is recorded as a failed entry rather than aborting the
sweep. Combinations are independent and run on parallel workers when
--workers is above 1.

Example:
  voidmatch sweep --workers 4 pantheon.dat voids.dat`,
	Args: cobra.ExactArgs(2),
	RunE: runSweep,
}

func init() {
	sweepCmd.Flags().StringVar(&sweepGroupA, "group-a", "void",
		"First comparison group (void, wall, cluster)")
	sweepCmd.Flags().StringVar(&sweepGroupB, "group-b", "cluster",
		"Second comparison group (void, wall, cluster)")
	sweepCmd.Flags().StringVarP(&sweepOutput, "output", "o", "",
		"Write results to a file instead of stdout")
	sweepCmd.Flags().StringVar(&sweepFormat, "format", "",
		"Override output format (table, tsv, csv)")

	rootCmd.AddCommand(sweepCmd)
}

func runSweep(cmd *cobra.Command, args []string) error {
	cfg, log, err := loadConfigAndLogger()
	if err != nil {
		return err
	}

	if sweepOutput != "" {
		cfg.Output.Path = sweepOutput
	}
	if sweepFormat != "" {
		cfg.Output.Format = sweepFormat
	}

	groupA, err := classify.ParseEnvironment(sweepGroupA)
	if err != nil {
		return err
	}
	groupB, err := classify.ParseEnvironment(sweepGroupB)
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

	driver := sweep.NewDriver(cosmo, cfg.Sweep, cfg.Classification.RedshiftMin, groupA, groupB, log)

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Warn("Received shutdown signal - cancelling sweep...")
		cancel()
	}()

	result, err := driver.Run(ctx, sns, voids)
	if err != nil {
		if err == context.Canceled {
			log.Warn("Sweep cancelled by user")
			return nil
		}
		return fmt.Errorf("sweep failed: %w", err)
	}

	ranked := result.Ranked()

	if cfg.Output.Format == "table" || cfg.Output.Format == "" {
		fmt.Printf("\n=== Sweep Results ===\n")
		fmt.Printf("Combinations: %d, entries: %d, valid: %d\n",
			len(driver.Grid()), len(result.Entries), result.ValidCount())
		fmt.Printf("Duration: %s\n\n", result.Duration)

		if err := report.WriteTable(os.Stdout, cfg.Output.Path, ranked); err != nil {
			return fmt.Errorf("failed to write results: %w", err)
		}
	} else if err := report.WriteDelimited(os.Stdout, cfg.Output.Path, cfg.Output.Format, ranked); err != nil {
		return fmt.Errorf("failed to write results: %w", err)
	}

	if cfg.Output.Path != "" && cfg.Output.Path != "-" {
		log.Infow("Results written", "path", cfg.Output.Path, "format", cfg.Output.Format)
	}
	return nil
}

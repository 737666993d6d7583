// Package sweep runs the classification and significance test across a
// grid of parameter combinations and ranks the outcomes.
package sweep

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/vchlab/voidmatch/internal/catalog"
	"github.com/vchlab/voidmatch/internal/classify"
	"github.com/vchlab/voidmatch/internal/config"
	"github.com/vchlab/voidmatch/internal/cosmology"
	"github.com/vchlab/voidmatch/internal/logger"
	"github.com/vchlab/voidmatch/internal/stats"
)

// Combination is one point of the parameter grid.
type Combination struct {
	ThresholdMpc float64
	RedshiftMax  float64
}

// Entry is the outcome of testing one observable at one grid point. A
// combination that could not produce a test records its error instead of
// aborting the sweep.
type Entry struct {
	Combination
	Observable string

	Counts map[classify.Environment]int
	Result *stats.TestResult
	Err    error

	gridIndex int
}

// Valid reports whether the entry carries a usable test result with both
// groups at or above the minimum size.
func (e *Entry) Valid(minGroupSize int) bool {
	if e.Err != nil || e.Result == nil {
		return false
	}
	if e.Result.GroupA.N < minGroupSize || e.Result.GroupB.N < minGroupSize {
		return false
	}
	return !math.IsNaN(e.Result.PValue)
}

// Result aggregates a completed sweep.
type Result struct {
	Entries  []Entry // grid order
	Duration time.Duration

	minGroupSize int
}

// Ranked returns the entries ordered for reporting: valid entries by
// ascending p-value first, then everything else in grid order.
func (r *Result) Ranked() []Entry {
	ranked := append([]Entry(nil), r.Entries...)
	sort.SliceStable(ranked, func(i, j int) bool {
		vi := ranked[i].Valid(r.minGroupSize)
		vj := ranked[j].Valid(r.minGroupSize)
		if vi != vj {
			return vi
		}
		if !vi {
			return ranked[i].gridIndex < ranked[j].gridIndex
		}
		return ranked[i].Result.PValue < ranked[j].Result.PValue
	})
	return ranked
}

// ValidCount returns how many entries carry a usable result.
func (r *Result) ValidCount() int {
	n := 0
	for i := range r.Entries {
		if r.Entries[i].Valid(r.minGroupSize) {
			n++
		}
	}
	return n
}

// Driver runs the sweep. Iterations share only the immutable input
// catalogs, so they may run on parallel workers without coordination.
type Driver struct {
	cosmo       cosmology.Params
	sweepCfg    config.SweepConfig
	redshiftMin float64
	groupA      classify.Environment
	groupB      classify.Environment
	log         *logger.Logger
}

// NewDriver creates a sweep driver. groupA and groupB are the two
// environment labels compared at every grid point.
func NewDriver(cosmo cosmology.Params, sweepCfg config.SweepConfig, redshiftMin float64, groupA, groupB classify.Environment, log *logger.Logger) *Driver {
	if log == nil {
		log = logger.NewDefault()
	}
	return &Driver{
		cosmo:       cosmo,
		sweepCfg:    sweepCfg,
		redshiftMin: redshiftMin,
		groupA:      groupA,
		groupB:      groupB,
		log:         log,
	}
}

// Grid returns the cartesian product of the configured thresholds and
// redshift maxima, in configuration order.
func (d *Driver) Grid() []Combination {
	grid := make([]Combination, 0, len(d.sweepCfg.Thresholds)*len(d.sweepCfg.RedshiftMaxes))
	for _, th := range d.sweepCfg.Thresholds {
		for _, zMax := range d.sweepCfg.RedshiftMaxes {
			grid = append(grid, Combination{ThresholdMpc: th, RedshiftMax: zMax})
		}
	}
	return grid
}

// Run executes the whole grid. Individual combination failures are
// recorded in their entries; Run itself fails only on cancellation.
func (d *Driver) Run(ctx context.Context, sns []catalog.Supernova, voids []catalog.Void) (*Result, error) {
	start := time.Now()
	grid := d.Grid()

	d.log.Infow("Starting parameter sweep",
		"combinations", len(grid),
		"observables", d.sweepCfg.Observables,
		"workers", d.sweepCfg.Workers,
	)

	entries := make([][]Entry, len(grid))

	workers := d.sweepCfg.Workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(grid) {
		workers = len(grid)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				entries[idx] = d.runCombination(grid[idx], idx, sns, voids)
			}
		}()
	}

	dispatch := func() error {
		defer close(jobs)
		for idx := range grid {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case jobs <- idx:
			}
		}
		return nil
	}
	dispatchErr := dispatch()
	wg.Wait()

	if dispatchErr != nil {
		return nil, dispatchErr
	}

	result := &Result{minGroupSize: d.sweepCfg.MinGroupSize}
	for _, group := range entries {
		result.Entries = append(result.Entries, group...)
	}
	result.Duration = time.Since(start)

	d.log.Infow("Parameter sweep completed",
		"entries", len(result.Entries),
		"valid", result.ValidCount(),
		"duration", result.Duration,
	)

	return result, nil
}

// runCombination classifies under one grid point and tests every
// configured observable. One entry per observable.
func (d *Driver) runCombination(combo Combination, gridIndex int, sns []catalog.Supernova, voids []catalog.Void) []Entry {
	log := d.log.WithCombination(combo.ThresholdMpc, combo.RedshiftMax)

	classifier := classify.New(d.cosmo, classify.Config{
		ThresholdMpc: combo.ThresholdMpc,
		RedshiftMin:  d.redshiftMin,
		RedshiftMax:  combo.RedshiftMax,
	})

	clsResult, err := classifier.Run(sns, voids)
	if err != nil {
		log.Warnw("Classification failed", "error", err)
		entries := make([]Entry, 0, len(d.sweepCfg.Observables))
		for _, obs := range d.sweepCfg.Observables {
			entries = append(entries, Entry{
				Combination: combo,
				Observable:  obs,
				Err:         fmt.Errorf("classification failed: %w", err),
				gridIndex:   gridIndex,
			})
		}
		return entries
	}

	entries := make([]Entry, 0, len(d.sweepCfg.Observables))
	for _, obs := range d.sweepCfg.Observables {
		entry := Entry{
			Combination: combo,
			Observable:  obs,
			Counts:      clsResult.Counts,
			gridIndex:   gridIndex,
		}

		testResult, err := stats.WelchTTest(
			stats.Group{Name: d.groupA.String(), Values: clsResult.ObservableValues(obs, d.groupA)},
			stats.Group{Name: d.groupB.String(), Values: clsResult.ObservableValues(obs, d.groupB)},
		)
		if err != nil {
			log.Debugw("Test not possible", "observable", obs, "error", err)
			entry.Err = err
		} else {
			entry.Result = testResult
		}
		entries = append(entries, entry)
	}
	return entries
}

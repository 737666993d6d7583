// Package stats implements the two-sample significance test used to
// compare observables between environment groups.
//
// The test is Welch's unequal-variance t-test with Welch-Satterthwaite
// degrees of freedom. Welch is used instead of the pooled-variance
// Student's test because the compared environment groups routinely have
// very different sizes and spreads.
package stats

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Group is a named sample of scalar observable values.
type Group struct {
	Name   string
	Values []float64
}

// GroupStats summarizes one group within a TestResult.
type GroupStats struct {
	Name   string
	N      int
	Mean   float64
	StdDev float64
	SEM    float64
}

// TestResult holds the outcome of a two-sample comparison. CohensD is the
// signed standardized mean difference using the pooled standard
// deviation. Degenerate marks results produced without a meaningful
// variance estimate (both groups constant).
type TestResult struct {
	GroupA     GroupStats
	GroupB     GroupStats
	MeanDiff   float64
	TStatistic float64
	DF         float64
	PValue     float64
	CohensD    float64
	Degenerate bool
}

// Significance returns the conventional star notation for the p-value.
func (r *TestResult) Significance() string {
	switch {
	case r.PValue < 0.001:
		return "***"
	case r.PValue < 0.01:
		return "**"
	case r.PValue < 0.05:
		return "*"
	default:
		return "ns"
	}
}

// Significant reports whether the result clears the conventional p < 0.05
// threshold.
func (r *TestResult) Significant() bool {
	return r.PValue < 0.05
}

// InsufficientSampleError reports a group too small to test.
type InsufficientSampleError struct {
	Group string
	N     int
}

func (e *InsufficientSampleError) Error() string {
	return fmt.Sprintf("group %q has %d observations, need at least 2", e.Group, e.N)
}

// WelchTTest compares the means of two groups.
//
// Two groups of identical constant values produce a degenerate result
// with p = 1 rather than an error; two constant groups with different
// means produce a degenerate result with p = 0. Groups with fewer than
// two observations fail with InsufficientSampleError.
func WelchTTest(a, b Group) (*TestResult, error) {
	if len(a.Values) < 2 {
		return nil, &InsufficientSampleError{Group: a.Name, N: len(a.Values)}
	}
	if len(b.Values) < 2 {
		return nil, &InsufficientSampleError{Group: b.Name, N: len(b.Values)}
	}

	n1 := float64(len(a.Values))
	n2 := float64(len(b.Values))
	mean1 := stat.Mean(a.Values, nil)
	mean2 := stat.Mean(b.Values, nil)
	var1 := stat.Variance(a.Values, nil)
	var2 := stat.Variance(b.Values, nil)

	result := &TestResult{
		GroupA:   groupStats(a.Name, a.Values, mean1, var1),
		GroupB:   groupStats(b.Name, b.Values, mean2, var2),
		MeanDiff: mean1 - mean2,
	}

	if var1 == 0 && var2 == 0 {
		// No variance anywhere: the t statistic is undefined. Identical
		// constants are trivially indistinguishable; distinct constants
		// are trivially distinct.
		result.Degenerate = true
		if result.MeanDiff == 0 {
			result.PValue = 1.0
			return result, nil
		}
		result.TStatistic = math.Inf(sign(result.MeanDiff))
		result.CohensD = math.Inf(sign(result.MeanDiff))
		result.PValue = 0.0
		return result, nil
	}

	se := math.Sqrt(var1/n1 + var2/n2)
	result.TStatistic = result.MeanDiff / se

	// Welch-Satterthwaite degrees of freedom.
	num := math.Pow(var1/n1+var2/n2, 2)
	den := math.Pow(var1/n1, 2)/(n1-1) + math.Pow(var2/n2, 2)/(n2-1)
	result.DF = num / den

	dist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: result.DF}
	result.PValue = 2 * dist.CDF(-math.Abs(result.TStatistic))

	pooledSD := math.Sqrt(((n1-1)*var1 + (n2-1)*var2) / (n1 + n2 - 2))
	result.CohensD = result.MeanDiff / pooledSD

	return result, nil
}

func groupStats(name string, values []float64, mean, variance float64) GroupStats {
	sd := math.Sqrt(variance)
	return GroupStats{
		Name:   name,
		N:      len(values),
		Mean:   mean,
		StdDev: sd,
		SEM:    sd / math.Sqrt(float64(len(values))),
	}
}

func sign(v float64) int {
	if v < 0 {
		return -1
	}
	return 1
}

// Package classify cross-matches supernovae against a void catalog and
// assigns each one an environmental label.
//
// For every supernova the classifier computes the great-circle angular
// separation to every void, converts it to a transverse physical distance
// using the angular-diameter distance at the mean of the two redshifts,
// and keeps the void minimizing that physical separation. The label then
// follows from a single distance threshold:
//
//	separation <  radius              -> void
//	radius <= separation < radius+th  -> wall
//	separation >= radius+th           -> cluster
//
// The three predicates are exhaustive and mutually exclusive, so every
// matched supernova gets exactly one label.
package classify

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/vchlab/voidmatch/internal/catalog"
	"github.com/vchlab/voidmatch/internal/config"
	"github.com/vchlab/voidmatch/internal/cosmology"
)

// ErrNoVoids means the void catalog is empty after the redshift window is
// applied; classification cannot proceed.
var ErrNoVoids = errors.New("no voids in the analysis redshift range")

// ErrEmptySample means no supernova survived the redshift window.
var ErrEmptySample = errors.New("no supernovae in the analysis redshift range")

// Config holds the classification parameters for one run.
type Config struct {
	ThresholdMpc float64
	RedshiftMin  float64
	RedshiftMax  float64
}

// Sample is one classified supernova with its match and derived
// quantities. Samples are immutable; every parameter configuration
// produces a fresh set.
type Sample struct {
	Supernova catalog.Supernova
	Env       Environment

	NearestVoidID string
	SeparationMpc float64
	AngularSepDeg float64
	VoidRadiusMpc float64
	RedshiftDiff  float64

	// Residual is observed minus predicted distance modulus.
	Residual float64

	// ImpliedZ is the redshift implied by the observed distance modulus
	// under the configured cosmology. ImpliedZValid is false when the
	// numeric inversion did not converge for this record; such records
	// are excluded from implied-redshift observables and counted in the
	// run result.
	ImpliedZ      float64
	ImpliedZValid bool
}

// Result is the outcome of one classification run.
type Result struct {
	Samples []Sample
	Counts  map[Environment]int

	SupernovaeMatched int
	// Excluded counts supernovae dropped by the redshift window.
	Excluded         int
	VoidsUsed        int
	ImpliedZFailures int

	MedianAngularSepDeg float64
	MedianSeparationMpc float64
	MedianRedshiftDiff  float64
}

// Classifier assigns environments under a fixed cosmology and
// configuration. It holds no mutable state; runs are independent.
type Classifier struct {
	cosmo cosmology.Params
	cfg   Config
}

// New creates a Classifier.
func New(cosmo cosmology.Params, cfg Config) *Classifier {
	return &Classifier{cosmo: cosmo, cfg: cfg}
}

// Run classifies every supernova whose redshift falls inside the
// configured window against the voids inside the same window.
func (c *Classifier) Run(sns []catalog.Supernova, voids []catalog.Void) (*Result, error) {
	inWindow := func(z float64) bool {
		return z >= c.cfg.RedshiftMin && z <= c.cfg.RedshiftMax
	}

	var windowVoids []catalog.Void
	for _, v := range voids {
		if inWindow(v.Redshift) {
			windowVoids = append(windowVoids, v)
		}
	}
	if len(windowVoids) == 0 {
		return nil, ErrNoVoids
	}

	var windowSNe []catalog.Supernova
	for _, sn := range sns {
		if inWindow(sn.Redshift) {
			windowSNe = append(windowSNe, sn)
		}
	}
	if len(windowSNe) == 0 {
		return nil, ErrEmptySample
	}

	result := &Result{
		Counts:    make(map[Environment]int),
		Excluded:  len(sns) - len(windowSNe),
		VoidsUsed: len(windowVoids),
	}

	for _, sn := range windowSNe {
		sample, err := c.match(sn, windowVoids)
		if err != nil {
			return nil, err
		}
		if !sample.ImpliedZValid {
			result.ImpliedZFailures++
		}
		result.Samples = append(result.Samples, sample)
		result.Counts[sample.Env]++
	}
	result.SupernovaeMatched = len(result.Samples)

	result.MedianAngularSepDeg = median(collect(result.Samples, func(s Sample) float64 { return s.AngularSepDeg }))
	result.MedianSeparationMpc = median(collect(result.Samples, func(s Sample) float64 { return s.SeparationMpc }))
	result.MedianRedshiftDiff = median(collect(result.Samples, func(s Sample) float64 { return s.RedshiftDiff }))

	return result, nil
}

// match finds the void minimizing the physical separation and derives the
// per-record quantities. Ties keep the first minimum.
func (c *Classifier) match(sn catalog.Supernova, voids []catalog.Void) (Sample, error) {
	best := -1
	bestSep := math.Inf(1)
	bestAngular := 0.0

	for i, v := range voids {
		angular := angularSeparationRad(sn.RA, sn.Dec, v.RA, v.Dec)
		avgZ := (sn.Redshift + v.Redshift) / 2
		da, err := c.cosmo.AngularDiameterDistanceMpc(avgZ)
		if err != nil {
			return Sample{}, err
		}
		sep := angular * da
		if sep < bestSep {
			best = i
			bestSep = sep
			bestAngular = angular
		}
	}

	nearest := voids[best]
	sample := Sample{
		Supernova:     sn,
		NearestVoidID: nearest.ID,
		SeparationMpc: bestSep,
		AngularSepDeg: bestAngular * 180.0 / math.Pi,
		VoidRadiusMpc: nearest.RadiusMpc,
		RedshiftDiff:  math.Abs(sn.Redshift - nearest.Redshift),
	}

	switch {
	case bestSep < nearest.RadiusMpc:
		sample.Env = EnvVoid
	case bestSep < nearest.RadiusMpc+c.cfg.ThresholdMpc:
		sample.Env = EnvWall
	default:
		sample.Env = EnvCluster
	}

	predicted, err := c.cosmo.DistanceModulus(sn.Redshift)
	if err != nil {
		return Sample{}, err
	}
	sample.Residual = sn.DistanceModulus - predicted

	impliedZ, err := c.cosmo.ImpliedRedshift(sn.DistanceModulus)
	if err != nil {
		var convErr *cosmology.ConvergenceError
		if !errors.As(err, &convErr) {
			return Sample{}, err
		}
		// Record excluded from implied-redshift observables only.
	} else {
		sample.ImpliedZ = impliedZ
		sample.ImpliedZValid = true
	}

	return sample, nil
}

// ObservableValues extracts the named observable for all samples carrying
// the given environment label. Records without a valid implied redshift
// are excluded from the implied-redshift observables.
func (r *Result) ObservableValues(observable string, env Environment) []float64 {
	var values []float64
	for _, s := range r.Samples {
		if s.Env != env {
			continue
		}
		switch observable {
		case config.ObservableDistanceResidual:
			values = append(values, s.Residual)
		case config.ObservableRawRedshift:
			values = append(values, s.Supernova.Redshift)
		case config.ObservableImpliedRedshift:
			if s.ImpliedZValid {
				values = append(values, s.ImpliedZ)
			}
		case config.ObservableRedshiftResidual:
			if s.ImpliedZValid {
				values = append(values, s.Supernova.Redshift-s.ImpliedZ)
			}
		}
	}
	return values
}

// angularSeparationRad returns the great-circle separation between two
// sky positions (degrees in, radians out) using the haversine formula.
func angularSeparationRad(ra1, dec1, ra2, dec2 float64) float64 {
	const degToRad = math.Pi / 180.0
	phi1 := dec1 * degToRad
	phi2 := dec2 * degToRad
	dPhi := (dec2 - dec1) * degToRad
	dLambda := (ra2 - ra1) * degToRad

	sinPhi := math.Sin(dPhi / 2)
	sinLambda := math.Sin(dLambda / 2)
	a := sinPhi*sinPhi + math.Cos(phi1)*math.Cos(phi2)*sinLambda*sinLambda
	return 2 * math.Asin(math.Min(1, math.Sqrt(a)))
}

func collect(samples []Sample, f func(Sample) float64) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = f(s)
	}
	return out
}

func median(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)
	return stat.Quantile(0.5, stat.Empirical, sorted, nil)
}

package cosmology

import "math"

// Supported redshift range for the numeric inversion.
const (
	InvertZMin = 1e-6
	InvertZMax = 3.0
)

// invertTol is the bisection interval width at which the inversion stops.
// It is chosen so that the round trip
// ImpliedRedshift(DistanceModulus(z)) agrees with z to within 1e-6.
const invertTol = 1e-10

// ImpliedRedshift numerically inverts DistanceModulus: it returns the
// redshift at which the flat-LCDM prediction equals the observed distance
// modulus. The search uses bisection over (InvertZMin, InvertZMax]; the
// modulus is strictly increasing in z, so a bracketed root is unique.
func (p Params) ImpliedRedshift(mu float64) (float64, error) {
	lo, hi := InvertZMin, InvertZMax

	muLo, err := p.DistanceModulus(lo)
	if err != nil {
		return 0, err
	}
	muHi, err := p.DistanceModulus(hi)
	if err != nil {
		return 0, err
	}

	if mu < muLo || mu > muHi {
		return 0, &ConvergenceError{
			DistanceModulus: mu,
			ZMin:            lo,
			ZMax:            hi,
			Reason:          "modulus outside bracketed range",
		}
	}

	for hi-lo > invertTol {
		mid := 0.5 * (lo + hi)
		muMid, err := p.DistanceModulus(mid)
		if err != nil {
			return 0, err
		}
		if muMid < mu {
			lo = mid
		} else {
			hi = mid
		}
	}

	z := 0.5 * (lo + hi)
	if math.IsNaN(z) || math.IsInf(z, 0) {
		return 0, &ConvergenceError{
			DistanceModulus: mu,
			ZMin:            InvertZMin,
			ZMax:            InvertZMax,
			Reason:          "bisection produced a non-finite midpoint",
		}
	}
	return z, nil
}

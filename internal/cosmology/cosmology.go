// Package cosmology implements flat-LCDM distance measures used to compare
// observed supernova distances against the standard-model prediction.
//
// All functions are pure and parameterized by an explicit Params value;
// there is no package-level cosmology state.
package cosmology

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// SpeedOfLightKmS is the speed of light in km/s.
const SpeedOfLightKmS = 299792.458

// quadNodes is the Gauss-Legendre node count for the comoving-distance
// integral. The integrand is smooth over the supported redshift range, so
// this keeps the quadrature error well below the inversion tolerance.
const quadNodes = 40

// Params is a flat-LCDM parameter set. OmegaLambda is derived as
// 1 - OmegaM (flatness).
type Params struct {
	H0     float64 // Hubble constant, km/s/Mpc
	OmegaM float64 // matter density fraction
}

// HubbleDistanceMpc returns c/H0 in Mpc.
func (p Params) HubbleDistanceMpc() float64 {
	return SpeedOfLightKmS / p.H0
}

// LittleH returns the dimensionless Hubble parameter h = H0/100, used to
// convert catalog quantities expressed in h^-1 Mpc.
func (p Params) LittleH() float64 {
	return p.H0 / 100.0
}

// efunc is the dimensionless Hubble function E(z) for a flat cosmology.
func (p Params) efunc(z float64) float64 {
	omegaLambda := 1.0 - p.OmegaM
	zp1 := 1.0 + z
	return math.Sqrt(p.OmegaM*zp1*zp1*zp1 + omegaLambda)
}

// ComovingDistanceMpc returns the line-of-sight comoving distance to
// redshift z in Mpc.
func (p Params) ComovingDistanceMpc(z float64) (float64, error) {
	if z <= 0 {
		return 0, &DomainError{Func: "ComovingDistanceMpc", Value: z}
	}
	integral := quad.Fixed(func(zp float64) float64 {
		return 1.0 / p.efunc(zp)
	}, 0, z, quadNodes, nil, 0)
	return p.HubbleDistanceMpc() * integral, nil
}

// LuminosityDistanceMpc returns the luminosity distance to redshift z in
// Mpc. In a flat cosmology D_L = (1+z) * D_C.
func (p Params) LuminosityDistanceMpc(z float64) (float64, error) {
	dc, err := p.ComovingDistanceMpc(z)
	if err != nil {
		return 0, &DomainError{Func: "LuminosityDistanceMpc", Value: z}
	}
	return (1.0 + z) * dc, nil
}

// AngularDiameterDistanceMpc returns the angular-diameter distance to
// redshift z in Mpc: D_A = D_C / (1+z) for a flat cosmology.
func (p Params) AngularDiameterDistanceMpc(z float64) (float64, error) {
	dc, err := p.ComovingDistanceMpc(z)
	if err != nil {
		return 0, &DomainError{Func: "AngularDiameterDistanceMpc", Value: z}
	}
	return dc / (1.0 + z), nil
}

// DistanceModulus returns the predicted distance modulus at redshift z:
// mu = 5*log10(D_L/Mpc) + 25. Monotonically increasing in z.
func (p Params) DistanceModulus(z float64) (float64, error) {
	dl, err := p.LuminosityDistanceMpc(z)
	if err != nil {
		return 0, &DomainError{Func: "DistanceModulus", Value: z}
	}
	return 5.0*math.Log10(dl) + 25.0, nil
}

// LuminosityDistanceFromModulus converts an observed distance modulus to a
// luminosity distance in Mpc: D_L = 10^((mu-25)/5).
func LuminosityDistanceFromModulus(mu float64) float64 {
	return math.Pow(10, (mu-25.0)/5.0)
}

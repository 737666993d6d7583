package cosmology

import (
	"errors"
	"math"
	"testing"
)

var planck = Params{H0: 67.4, OmegaM: 0.315}

func TestHubbleDistance(t *testing.T) {
	got := planck.HubbleDistanceMpc()
	want := SpeedOfLightKmS / 67.4
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("HubbleDistanceMpc() = %g, want %g", got, want)
	}
}

func TestLittleH(t *testing.T) {
	if got := planck.LittleH(); math.Abs(got-0.674) > 1e-12 {
		t.Errorf("LittleH() = %g, want 0.674", got)
	}
}

func TestDistanceModulusMonotonic(t *testing.T) {
	prev := math.Inf(-1)
	for z := 0.01; z <= 3.0; z += 0.01 {
		mu, err := planck.DistanceModulus(z)
		if err != nil {
			t.Fatalf("DistanceModulus(%g) returned error: %v", z, err)
		}
		if mu <= prev {
			t.Fatalf("DistanceModulus not increasing at z=%g: mu=%g, prev=%g", z, mu, prev)
		}
		prev = mu
	}
}

func TestDistanceModulusLowRedshiftLimit(t *testing.T) {
	// At very low z the Hubble law holds: D_L ~ c*z/H0.
	z := 0.001
	mu, err := planck.DistanceModulus(z)
	if err != nil {
		t.Fatalf("DistanceModulus(%g) returned error: %v", z, err)
	}
	approx := 5.0*math.Log10(SpeedOfLightKmS*z/planck.H0) + 25.0
	if math.Abs(mu-approx) > 0.01 {
		t.Errorf("DistanceModulus(%g) = %g, Hubble-law approximation %g", z, mu, approx)
	}
}

func TestDistanceModulusDomainError(t *testing.T) {
	for _, z := range []float64{0, -0.1} {
		_, err := planck.DistanceModulus(z)
		var domainErr *DomainError
		if !errors.As(err, &domainErr) {
			t.Errorf("DistanceModulus(%g): expected DomainError, got %v", z, err)
		}
	}
}

func TestAngularDiameterDistance(t *testing.T) {
	z := 0.1
	dc, err := planck.ComovingDistanceMpc(z)
	if err != nil {
		t.Fatalf("ComovingDistanceMpc: %v", err)
	}
	da, err := planck.AngularDiameterDistanceMpc(z)
	if err != nil {
		t.Fatalf("AngularDiameterDistanceMpc: %v", err)
	}
	if math.Abs(da-dc/1.1) > 1e-9 {
		t.Errorf("AngularDiameterDistanceMpc(%g) = %g, want D_C/(1+z) = %g", z, da, dc/1.1)
	}
	dl, err := planck.LuminosityDistanceMpc(z)
	if err != nil {
		t.Fatalf("LuminosityDistanceMpc: %v", err)
	}
	// Etherington relation: D_L = (1+z)^2 * D_A.
	if math.Abs(dl-da*1.1*1.1) > 1e-9 {
		t.Errorf("duality broken: D_L=%g, (1+z)^2*D_A=%g", dl, da*1.1*1.1)
	}
}

func TestLuminosityDistanceFromModulusRoundTrip(t *testing.T) {
	for _, z := range []float64{0.01, 0.05, 0.12, 0.5} {
		mu, err := planck.DistanceModulus(z)
		if err != nil {
			t.Fatalf("DistanceModulus(%g): %v", z, err)
		}
		dl, err := planck.LuminosityDistanceMpc(z)
		if err != nil {
			t.Fatalf("LuminosityDistanceMpc(%g): %v", z, err)
		}
		got := LuminosityDistanceFromModulus(mu)
		if math.Abs(got-dl)/dl > 1e-10 {
			t.Errorf("LuminosityDistanceFromModulus(%g) = %g, want %g", mu, got, dl)
		}
	}
}

func TestImpliedRedshiftRoundTrip(t *testing.T) {
	for _, z := range []float64{1e-4, 0.01, 0.05, 0.1, 0.15, 0.5, 1.0, 2.0, 2.9} {
		mu, err := planck.DistanceModulus(z)
		if err != nil {
			t.Fatalf("DistanceModulus(%g): %v", z, err)
		}
		got, err := planck.ImpliedRedshift(mu)
		if err != nil {
			t.Fatalf("ImpliedRedshift(%g): %v", mu, err)
		}
		if math.Abs(got-z) > 1e-6 {
			t.Errorf("round trip at z=%g drifted to %g (|diff|=%g)", z, got, math.Abs(got-z))
		}
	}
}

func TestImpliedRedshiftOutsideBracket(t *testing.T) {
	muHi, err := planck.DistanceModulus(InvertZMax)
	if err != nil {
		t.Fatalf("DistanceModulus(%g): %v", InvertZMax, err)
	}
	for _, mu := range []float64{-5.0, muHi + 1.0} {
		_, err := planck.ImpliedRedshift(mu)
		var convErr *ConvergenceError
		if !errors.As(err, &convErr) {
			t.Errorf("ImpliedRedshift(%g): expected ConvergenceError, got %v", mu, err)
		}
	}
}

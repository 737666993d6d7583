package cosmology

import "fmt"

// DomainError reports an input outside the physically valid domain of a
// cosmology function.
type DomainError struct {
	Func  string
	Value float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: value %g outside valid domain", e.Func, e.Value)
}

// ConvergenceError reports a failed numeric inversion.
type ConvergenceError struct {
	DistanceModulus float64
	ZMin, ZMax      float64
	Reason          string
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("implied redshift for mu=%.4f did not converge in z range (%g, %g]: %s",
		e.DistanceModulus, e.ZMin, e.ZMax, e.Reason)
}

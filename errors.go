package airfoil

import "fmt"

// ValidationError reports a rejected write: a parameter value outside its
// declared bounds, or an airfoil designation that does not parse. The write
// is refused before any state changes, so the previous value stays in
// effect and the caller may retry with a corrected one.
type ValidationError struct {
	Param  string // parameter or field name
	Value  string // the offending value, formatted
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("airfoil: invalid %s %s: %s", e.Param, e.Value, e.Reason)
}

// NumericalError reports that the linear system defining one surface of a
// PARSEC airfoil is singular or ill-conditioned, typically because the
// boundary conditions are degenerate (for example a crest at the trailing
// edge). The previously published coefficients and coordinates are kept;
// the caller must adjust parameters and retry.
type NumericalError struct {
	Surface string // "upper" or "lower"
	Err     error
}

func (e *NumericalError) Error() string {
	return fmt.Sprintf("airfoil: cannot solve %s surface: %v", e.Surface, e.Err)
}

func (e *NumericalError) Unwrap() error {
	return e.Err
}

func outOfRange(f Field, value float64) *ValidationError {
	return &ValidationError{
		Param:  f.Name,
		Value:  fmt.Sprintf("%g", value),
		Reason: fmt.Sprintf("outside [%g, %g]", f.Min, f.Max),
	}
}

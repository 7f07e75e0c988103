// Package airfoil generates two-dimensional airfoil surface geometry from a
// small set of physically meaningful shape parameters.
//
// # Families
//
// Three parameterizations are supported:
//
//   - [NacaAirfoil], the closed-form NACA four-digit series, generated
//     analytically from its MPTT designation.
//   - [ParsecAirfoil], the PARametric SECtion family of Sobieczky, where
//     each surface y(x) = Σ kᵢ·x^(i+1/2) is the solution of a 6×6 linear
//     system enforcing geometric boundary conditions: leading-edge radius,
//     crest location and curvature, and trailing-edge position, thickness,
//     direction and wedge angle.
//   - [SimplifiedParsecAirfoil], the same family driven by three intuitive
//     parameters (camber, crest position, thickness) that are mapped onto
//     the full PARSEC parameter set before the same solve.
//
// # Parameters and propagation
//
// Every parameter is declared once as a [Field] with bounds, a default and
// help text, and held in a [Store]. Writes are range-checked up front: an
// out-of-range value is rejected with a [ValidationError] and nothing
// changes. A committed write propagates through a static dependency graph
// ([Graph]) that recomputes the affected derived quantities eagerly, in
// dependency order (coefficients first, then coordinates) before the write
// returns, so the published geometry is never stale. A PARSEC system
// whose boundary conditions are degenerate fails the solve with a
// [NumericalError] and keeps the previous geometry published.
//
// All computation is synchronous and in-process. Airfoil values are not
// safe for concurrent use; an embedding application that shares one across
// goroutines must serialize writes and coordinate reads with a single lock.
//
// # Literature
//
//   - [Parametric Airfoils and Wings] by Helmut Sobieczky
//   - [NACA Report 460], "The characteristics of 78 related airfoil
//     sections from tests in the variable-density wind tunnel"
//
// [Parametric Airfoils and Wings]: http://www.as.dlr.de/hs/h-pdf/H141.pdf
// [NACA Report 460]: https://ntrs.nasa.gov/citations/19930091108
package airfoil

package airfoil

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Derived quantity and parameter names used in the PARSEC dependency
// tables.
const (
	quantUpperCoefficients = "upper_coefficients"
	quantLowerCoefficients = "lower_coefficients"
	quantCoordinates       = "coordinates"
)

var parsecFields = []Field{
	{Name: "upper_x", Min: 0.01, Max: 1.0, Default: 0.400, Help: "Upper crest location horizontal coordinate"},
	{Name: "upper_z", Min: -1.0, Max: 1.0, Default: 0.075, Help: "Upper crest location vertical coordinate"},
	{Name: "upper_c", Min: -1.0, Max: 1.0, Default: -0.100, Help: "Upper crest location curvature"},
	{Name: "lower_x", Min: 0.01, Max: 1.0, Default: 0.400, Help: "Lower crest location horizontal coordinate"},
	{Name: "lower_z", Min: -1.0, Max: 1.0, Default: -0.075, Help: "Lower crest location vertical coordinate"},
	{Name: "lower_c", Min: -1.0, Max: 1.0, Default: 0.100, Help: "Lower crest location curvature"},
	{Name: "le_radius", Min: 0.0, Max: 1.0, Default: 0.01, Help: "Leading edge radius"},
	{Name: "te_z", Min: 0.0, Max: 1.0, Default: 0.0, Help: "Trailing edge vertical coordinate"},
	{Name: "te_alpha", Min: -math.Pi, Max: math.Pi, Default: 0.0, Help: "Trailing edge direction angle"},
	{Name: "te_beta", Min: -math.Pi, Max: math.Pi, Default: 20 * math.Pi / 180, Help: "Trailing edge wedge angle"},
	{Name: "te_thickness", Min: 0.0, Max: 1.0, Default: 0.0, Help: "Trailing edge thickness, max=1.0 equates to a thickness of 1% chord"},
	{Name: "num_points", Min: 50, Max: 1000, Default: 200, Integer: true, Help: "The number of horizontally distributed points to use"},
}

// SurfaceCoefficients are the six coefficients k of one airfoil surface
// y(x) = Σ kᵢ·x^(i+1/2), the solution of the PARSEC boundary condition
// system for that surface.
type SurfaceCoefficients [6]float64

// Eval evaluates the surface at chordwise position x ∈ [0, 1].
func (k SurfaceCoefficients) Eval(x float64) float64 {
	var y float64
	for i, ki := range k {
		y += ki * math.Pow(x, 0.5+float64(i))
	}
	return y
}

// Deriv evaluates the surface slope dy/dx at x.
func (k SurfaceCoefficients) Deriv(x float64) float64 {
	var y float64
	for i, ki := range k {
		e := 0.5 + float64(i)
		y += ki * e * math.Pow(x, e-1)
	}
	return y
}

// Deriv2 evaluates the surface curvature term d²y/dx² at x.
func (k SurfaceCoefficients) Deriv2(x float64) float64 {
	var y float64
	for i, ki := range k {
		e := 0.5 + float64(i)
		y += ki * e * (e - 1) * math.Pow(x, e-2)
	}
	return y
}

// updateStrategy selects how a committed parameter write is propagated to
// the derived geometry: through the per-field dependency graph, or as one
// whole-airfoil recompute. The one-shot strategy is used by
// [SimplifiedParsecAirfoil], whose every write touches both surfaces at
// once.
type updateStrategy int

const (
	updateGraph updateStrategy = iota
	updateOneShot
)

// A ParsecAirfoil is a PARametric SECtion (PARSEC) airfoil: each surface is
// y(x) = Σ kᵢ·x^(i+1/2), where the coefficients k solve a 6×6 linear system
// enforcing the declared geometric boundary conditions (leading-edge
// radius, crest location and curvature, trailing-edge position, thickness,
// direction and wedge angle).
//
// The airfoil is constructed with documented defaults; parameters are
// written by name with [ParsecAirfoil.Set] or in a batch with
// [ParsecAirfoil.Update]. Every write that commits recomputes the affected
// coefficients and then the coordinates before returning, so the published
// geometry is never stale.
//
// See Sobieczky, "Parametric Airfoils and Wings" for the formulation.
type ParsecAirfoil struct {
	name     string
	params   *Store
	graph    *Graph
	strategy updateStrategy

	upper  SurfaceCoefficients
	lower  SurfaceCoefficients
	coords []Point
}

// NewParsecAirfoil returns a PARSEC airfoil with the default parameters:
// crests at x = 0.4, z = ±0.075 with curvature ∓0.1, leading-edge radius
// 0.01, a sharp trailing edge on the chord line with a 20° wedge angle, and
// 200 chordwise stations.
func NewParsecAirfoil() *ParsecAirfoil {
	a := &ParsecAirfoil{
		name:   "PARSEC",
		params: NewStore(parsecFields),
	}
	a.graph = NewGraph([]Derived{
		{
			Name:    quantUpperCoefficients,
			Deps:    []string{"upper_x", "upper_z", "upper_c", "le_radius", "te_z", "te_alpha", "te_beta", "te_thickness"},
			Compute: a.computeUpperCoefficients,
		},
		{
			Name:    quantLowerCoefficients,
			Deps:    []string{"lower_x", "lower_z", "lower_c", "le_radius", "te_z", "te_alpha", "te_beta", "te_thickness"},
			Compute: a.computeLowerCoefficients,
		},
		{
			Name:    quantCoordinates,
			Deps:    []string{"num_points", quantUpperCoefficients, quantLowerCoefficients},
			Compute: a.computeCoordinates,
		},
	})
	if err := a.graph.RecomputeAll(); err != nil {
		// The defaults describe a well-posed airfoil.
		panic("airfoil: default PARSEC parameters do not solve: " + err.Error())
	}
	return a
}

// Name returns the airfoil's label.
func (a *ParsecAirfoil) Name() string {
	return a.name
}

// SetName sets the airfoil's label.
func (a *ParsecAirfoil) SetName(name string) {
	a.name = name
}

// Description returns a human-readable description of the airfoil family.
func (a *ParsecAirfoil) Description() string {
	return "A PARametric SECtion (PARSEC) airfoil, after Sobieczky's 'Parametric Airfoils and Wings'."
}

// Params returns the airfoil's parameter declarations, in declaration
// order.
func (a *ParsecAirfoil) Params() []Field {
	return a.params.Fields()
}

// Get returns the current value of the named parameter.
func (a *ParsecAirfoil) Get(name string) float64 {
	return a.params.Get(name)
}

// Set writes one parameter by name and synchronously recomputes the
// affected coefficients and coordinates. An out-of-range value is rejected
// with a *ValidationError before any state changes. If the write commits
// but the resulting system cannot be solved, Set returns a *NumericalError
// and the previous geometry stays published.
func (a *ParsecAirfoil) Set(name string, value float64) error {
	if err := a.params.Set(name, value); err != nil {
		return err
	}
	return a.propagate(name)
}

// Update writes a batch of parameters and recomputes the affected derived
// quantities once. All values are validated before any of them commits.
func (a *ParsecAirfoil) Update(values map[string]float64) error {
	changed, err := a.params.Update(values)
	if err != nil {
		return err
	}
	return a.propagate(changed...)
}

func (a *ParsecAirfoil) propagate(changed ...string) error {
	if a.strategy == updateOneShot {
		return a.graph.RecomputeAll()
	}
	return a.graph.Recompute(changed...)
}

// Coordinates returns the airfoil outline: the upper surface from the
// leading edge to the trailing edge, then the lower surface back, clockwise
// with shared edge samples deduplicated. Its length is 2·num_points − 2.
// The slice is replaced wholesale on recomputation; it is valid until the
// next committed write.
func (a *ParsecAirfoil) Coordinates() []Point {
	return a.coords
}

// UpperCoefficients returns the coefficients of the upper surface.
func (a *ParsecAirfoil) UpperCoefficients() SurfaceCoefficients {
	return a.upper
}

// LowerCoefficients returns the coefficients of the lower surface.
func (a *ParsecAirfoil) LowerCoefficients() SurfaceCoefficients {
	return a.lower
}

// UpperSurface returns the upper surface sampled at num_points cosine
// spaced stations from the leading edge to the trailing edge.
func (a *ParsecAirfoil) UpperSurface() []Point {
	return sampleSurface(a.upper, cosineSpacing(a.params.GetInt("num_points")))
}

// LowerSurface returns the lower surface sampled like
// [ParsecAirfoil.UpperSurface].
func (a *ParsecAirfoil) LowerSurface() []Point {
	return sampleSurface(a.lower, cosineSpacing(a.params.GetInt("num_points")))
}

// BoundingBox returns the smallest rectangle enclosing the outline.
func (a *ParsecAirfoil) BoundingBox() Rect {
	return boundingBox(a.coords)
}

func (a *ParsecAirfoil) computeUpperCoefficients() error {
	k, err := a.solveSurface(true)
	if err != nil {
		return err
	}
	a.upper = k
	return nil
}

func (a *ParsecAirfoil) computeLowerCoefficients() error {
	k, err := a.solveSurface(false)
	if err != nil {
		return err
	}
	a.lower = k
	return nil
}

func (a *ParsecAirfoil) computeCoordinates() error {
	xs := cosineSpacing(a.params.GetInt("num_points"))
	upper := sampleSurface(a.upper, xs)
	lower := sampleSurface(a.lower, xs)

	// Clockwise outline starting at the leading edge: the whole upper
	// surface, then the lower surface reversed without its edge samples,
	// which duplicate the shared leading-edge point and the trailing-edge
	// station already emitted. 2·num_points − 2 points in total, with the
	// trailing edge at the midpoint of the sequence.
	coords := make([]Point, 0, 2*len(xs)-2)
	coords = append(coords, upper...)
	for i := len(lower) - 2; i >= 1; i-- {
		coords = append(coords, lower[i])
	}
	a.coords = coords
	return nil
}

// solveSurface builds and solves the 6×6 boundary condition system
// A·k = B for one surface.
func (a *ParsecAirfoil) solveSurface(upper bool) (SurfaceCoefficients, error) {
	side, crestX := "lower", a.params.Get("lower_x")
	if upper {
		side, crestX = "upper", a.params.Get("upper_x")
	}

	var k mat.VecDense
	if err := k.SolveVec(basisConditions(crestX), a.boundaryConditions(upper)); err != nil {
		return SurfaceCoefficients{}, &NumericalError{Surface: side, Err: err}
	}
	var out SurfaceCoefficients
	for i := range out {
		out[i] = k.AtVec(i)
	}
	return out, nil
}

// basisConditions returns the matrix A of the PARSEC system for a surface
// with its crest at x. Row by row: the basis functions at the trailing edge
// (x = 1), the basis functions at the crest, the first derivative at the
// trailing edge, the first derivative at the crest, the second derivative
// at the crest, and a unit coefficient on the leading x^(1/2) term.
func basisConditions(x float64) *mat.Dense {
	m := mat.NewDense(6, 6, nil)
	for i := 0; i < 6; i++ {
		e := 0.5 + float64(i)
		m.Set(0, i, 1)
		m.Set(1, i, math.Pow(x, e))
		m.Set(2, i, e)
		m.Set(3, i, e*math.Pow(x, e-1))
		m.Set(4, i, e*(e-1)*math.Pow(x, e-2))
	}
	m.Set(5, 0, 1)
	for i := 1; i < 6; i++ {
		m.Set(5, i, 0)
	}
	return m
}

// boundaryConditions returns the vector B of the PARSEC system: the
// trailing-edge position offset by half the trailing-edge thickness, the
// crest vertical position, the trailing-edge tangent adjusted by half the
// wedge angle, a zero slope at the crest, the crest curvature, and the
// leading-edge radius term ±√(2·le_radius). The signs flip between the
// upper and lower surface.
func (a *ParsecAirfoil) boundaryConditions(upper bool) *mat.VecDense {
	sign := -1.0
	crestZ, crestC := a.params.Get("lower_z"), a.params.Get("lower_c")
	if upper {
		sign = 1.0
		crestZ, crestC = a.params.Get("upper_z"), a.params.Get("upper_c")
	}
	return mat.NewVecDense(6, []float64{
		a.params.Get("te_z") + 0.005*sign*a.params.Get("te_thickness"),
		crestZ,
		math.Tan(a.params.Get("te_alpha") - sign*0.5*a.params.Get("te_beta")),
		0,
		crestC,
		sign * math.Sqrt(2*a.params.Get("le_radius")),
	})
}

// cosineSpacing returns n chordwise stations on [0, 1], clustered toward
// both the leading and the trailing edge: xᵢ = (1 + cos(π·(1 − i/(n−1))))/2.
func cosineSpacing(n int) []float64 {
	xs := make([]float64, n)
	for i := range xs {
		xs[i] = 0.5 * (1 + math.Cos(math.Pi*(1-float64(i)/float64(n-1))))
	}
	return xs
}

func sampleSurface(k SurfaceCoefficients, xs []float64) []Point {
	pts := make([]Point, len(xs))
	for i, x := range xs {
		pts[i] = Pt(x, k.Eval(x))
	}
	return pts
}

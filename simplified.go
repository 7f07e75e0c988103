package airfoil

import "fmt"

var simplifiedFields = []Field{
	{Name: "camber", Min: -1.0, Max: 1.0, Default: 0.0, Help: "Camber of the airfoil"},
	{Name: "crest_x", Min: 0.01, Max: 0.99, Default: 0.400, Help: "Horizontal position of both crests"},
	{Name: "thickness", Min: 0.01, Max: 0.30, Default: 0.15, Help: "Thickness of the airfoil"},
}

// The PARSEC parameters derived from the simplified ones. They cannot be
// written directly on a SimplifiedParsecAirfoil.
var simplifiedDerived = map[string]bool{
	"upper_x": true,
	"upper_z": true,
	"lower_x": true,
	"lower_z": true,
}

// A SimplifiedParsecAirfoil is a PARSEC airfoil driven by three intuitive
// parameters: camber, crest position and thickness. Each write maps them
// deterministically onto the full PARSEC crest parameters
//
//	upper_z = thickness/2 + camber/100
//	lower_z = −thickness/2 + camber/100
//	upper_x = lower_x = crest_x
//
// and then recomputes both surfaces and the coordinates in one step,
// instead of propagating the four underlying writes through the per-field
// graph. The remaining PARSEC parameters (curvatures, leading and trailing
// edge, num_points) are shared and written through by name.
type SimplifiedParsecAirfoil struct {
	parsec *ParsecAirfoil
	params *Store
}

// NewSimplifiedParsecAirfoil returns a simplified PARSEC airfoil with no
// camber, crests at x = 0.4 and a thickness of 0.15, matching the plain
// PARSEC defaults.
func NewSimplifiedParsecAirfoil() *SimplifiedParsecAirfoil {
	p := NewParsecAirfoil()
	p.SetName("Simplified PARSEC")
	p.strategy = updateOneShot
	a := &SimplifiedParsecAirfoil{
		parsec: p,
		params: NewStore(simplifiedFields),
	}
	if err := a.apply(); err != nil {
		panic("airfoil: default simplified PARSEC parameters do not solve: " + err.Error())
	}
	return a
}

// Name returns the airfoil's label.
func (a *SimplifiedParsecAirfoil) Name() string {
	return a.parsec.Name()
}

// SetName sets the airfoil's label.
func (a *SimplifiedParsecAirfoil) SetName(name string) {
	a.parsec.SetName(name)
}

// Description returns a human-readable description of the airfoil family.
func (a *SimplifiedParsecAirfoil) Description() string {
	return "A PARSEC airfoil driven by camber, crest position and thickness."
}

// Params returns the simplified parameter declarations followed by the
// shared PARSEC ones.
func (a *SimplifiedParsecAirfoil) Params() []Field {
	fields := a.params.Fields()
	for _, f := range a.parsec.Params() {
		if !simplifiedDerived[f.Name] {
			fields = append(fields, f)
		}
	}
	return fields
}

// Get returns the current value of a simplified or shared PARSEC
// parameter, or of one of the derived crest parameters.
func (a *SimplifiedParsecAirfoil) Get(name string) float64 {
	if a.params.Has(name) {
		return a.params.Get(name)
	}
	return a.parsec.Get(name)
}

// Set writes one parameter by name. Writes to camber, crest_x or thickness
// remap the crest parameters and recompute the whole airfoil atomically;
// writes to shared PARSEC parameters are validated and applied the same
// way. The derived crest parameters themselves cannot be written.
func (a *SimplifiedParsecAirfoil) Set(name string, value float64) error {
	if simplifiedDerived[name] {
		return &ValidationError{
			Param:  name,
			Value:  fmt.Sprintf("%g", value),
			Reason: "derived from camber, crest_x and thickness",
		}
	}
	if !a.params.Has(name) {
		return a.parsec.Set(name, value)
	}
	if err := a.params.Set(name, value); err != nil {
		return err
	}
	return a.apply()
}

// Coordinates returns the airfoil outline, as [ParsecAirfoil.Coordinates].
func (a *SimplifiedParsecAirfoil) Coordinates() []Point {
	return a.parsec.Coordinates()
}

// UpperCoefficients returns the coefficients of the upper surface.
func (a *SimplifiedParsecAirfoil) UpperCoefficients() SurfaceCoefficients {
	return a.parsec.UpperCoefficients()
}

// LowerCoefficients returns the coefficients of the lower surface.
func (a *SimplifiedParsecAirfoil) LowerCoefficients() SurfaceCoefficients {
	return a.parsec.LowerCoefficients()
}

// BoundingBox returns the smallest rectangle enclosing the outline.
func (a *SimplifiedParsecAirfoil) BoundingBox() Rect {
	return a.parsec.BoundingBox()
}

// apply maps the simplified parameters onto the PARSEC crest parameters
// and recomputes both coefficient sets and the coordinates in one step.
// The write-throughs go through normal bounds validation.
func (a *SimplifiedParsecAirfoil) apply() error {
	camber := a.params.Get("camber")
	crestX := a.params.Get("crest_x")
	thickness := a.params.Get("thickness")

	_, err := a.parsec.params.Update(map[string]float64{
		"upper_x": crestX,
		"lower_x": crestX,
		"upper_z": 0.5*thickness + 0.01*camber,
		"lower_z": -0.5*thickness + 0.01*camber,
	})
	if err != nil {
		return err
	}
	return a.parsec.graph.RecomputeAll()
}

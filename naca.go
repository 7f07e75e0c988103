package airfoil

import (
	"math"
	"regexp"
	"strconv"
)

var nacaDesignation = regexp.MustCompile(`^[0-9][0-9][0-9]{2}$`)

// Thickness distribution coefficients of the NACA four-digit series. The
// x⁴ coefficient depends on the trailing edge: −0.1015 leaves the classic
// blunt (finite thickness) trailing edge, −0.1036 closes it.
const (
	nacaA0 = 0.2969
	nacaA1 = -0.1260
	nacaA2 = -0.3516
	nacaA3 = 0.2843

	nacaA4Blunt = -0.1015
	nacaA4Sharp = -0.1036
)

var nacaFields = []Field{
	{Name: "num_points", Min: 50, Max: 1000, Default: 200, Integer: true, Help: "The number of horizontally distributed points to use"},
}

// A NacaAirfoil is a NACA four-digit series airfoil, generated in closed
// form from its designation MPTT: maximum camber M (percent chord), camber
// position P (tenths of chord), and thickness TT (percent chord). For
// example, 2412 is 2% camber at 0.4 chord, 12% thick.
type NacaAirfoil struct {
	designation string
	camberMax   float64
	camberPos   float64
	thickness   float64
	sharpTE     bool

	params *Store
	graph  *Graph
	coords []Point
}

// NewNacaAirfoil returns the airfoil described by the four-digit
// designation, with the classic blunt trailing edge and 200 chordwise
// stations. A designation that is not exactly four digits is rejected with
// a *ValidationError.
func NewNacaAirfoil(designation string) (*NacaAirfoil, error) {
	a := &NacaAirfoil{
		params: NewStore(nacaFields),
	}
	a.graph = NewGraph([]Derived{
		{
			Name:    quantCoordinates,
			Deps:    []string{"num_points", "designation", "trailing_edge"},
			Compute: a.computeCoordinates,
		},
	})
	if err := a.SetDesignation(designation); err != nil {
		return nil, err
	}
	return a, nil
}

// Name returns the validated four-digit designation.
func (a *NacaAirfoil) Name() string {
	return a.designation
}

// Description returns a human-readable description of the airfoil family.
func (a *NacaAirfoil) Description() string {
	return "A NACA four-digit series airfoil."
}

// SetDesignation validates and applies a new four-digit designation,
// recomputing the coordinates. On rejection the previous designation and
// geometry stay in effect.
func (a *NacaAirfoil) SetDesignation(designation string) error {
	if !nacaDesignation.MatchString(designation) {
		return &ValidationError{
			Param:  "designation",
			Value:  strconv.Quote(designation),
			Reason: "not a four-digit NACA designation",
		}
	}
	a.designation = designation
	a.camberMax = float64(designation[0]-'0') / 100
	a.camberPos = float64(designation[1]-'0') / 10
	tt := 10*int(designation[2]-'0') + int(designation[3]-'0')
	a.thickness = float64(tt) / 100
	return a.graph.Recompute("designation")
}

// SetSharpTrailingEdge selects between the blunt trailing edge of the
// published thickness distribution (false, the default) and the modified
// x⁴ coefficient that closes the section at x = 1 (true).
func (a *NacaAirfoil) SetSharpTrailingEdge(sharp bool) {
	a.sharpTE = sharp
	// The closed-form generator cannot fail.
	if err := a.graph.Recompute("trailing_edge"); err != nil {
		panic("airfoil: NACA recompute failed: " + err.Error())
	}
}

// Params returns the airfoil's parameter declarations.
func (a *NacaAirfoil) Params() []Field {
	return a.params.Fields()
}

// Get returns the current value of the named parameter.
func (a *NacaAirfoil) Get(name string) float64 {
	return a.params.Get(name)
}

// Set writes one parameter by name and synchronously recomputes the
// coordinates.
func (a *NacaAirfoil) Set(name string, value float64) error {
	if err := a.params.Set(name, value); err != nil {
		return err
	}
	return a.graph.Recompute(name)
}

// Coordinates returns the airfoil outline: the upper surface from the
// trailing edge to the leading edge, then the lower surface onward to the
// trailing edge, without duplicating the shared leading-edge point. Its
// length is 2·num_points − 1.
func (a *NacaAirfoil) Coordinates() []Point {
	return a.coords
}

// BoundingBox returns the smallest rectangle enclosing the outline.
func (a *NacaAirfoil) BoundingBox() Rect {
	return boundingBox(a.coords)
}

// MeanCamber returns the mean camber line ordinate at chordwise position
// x ∈ [0, 1]. It is identically zero for symmetric sections (camber
// position digit 0).
func (a *NacaAirfoil) MeanCamber(x float64) float64 {
	yc, _ := a.camber(x)
	return yc
}

// HalfThickness returns the half thickness of the section at chordwise
// position x ∈ [0, 1], measured perpendicular to the camber line.
func (a *NacaAirfoil) HalfThickness(x float64) float64 {
	a4 := nacaA4Blunt
	if a.sharpTE {
		a4 = nacaA4Sharp
	}
	return 5 * a.thickness * (nacaA0*math.Sqrt(x) + x*(nacaA1+x*(nacaA2+x*(nacaA3+x*a4))))
}

// camber returns the camber line ordinate and slope at x. The camber line
// is quadratic on each side of the camber position. A camber position of
// zero yields a symmetric section regardless of the camber digit, matching
// the published equations for designations like 00TT.
func (a *NacaAirfoil) camber(x float64) (yc, slope float64) {
	m, p := a.camberMax, a.camberPos
	switch {
	case p == 0:
		return 0, 0
	case x < p:
		return m / (p * p) * (2*p*x - x*x), 2 * m / (p * p) * (p - x)
	default:
		q := 1 - p
		return m / (q * q) * ((1 - 2*p) + 2*p*x - x*x), 2 * m / (q * q) * (p - x)
	}
}

func (a *NacaAirfoil) computeCoordinates() error {
	n := a.params.GetInt("num_points")
	upper := make([]Point, n)
	lower := make([]Point, n)
	for i := range upper {
		// Half-cosine spacing, clustered toward the leading edge where
		// the surface curvature is highest.
		x := 0.5 * (1 - math.Cos(math.Pi*float64(i)/float64(n-1)))
		t := a.HalfThickness(x)
		yc, slope := a.camber(x)
		sin, cos := math.Sincos(math.Atan(slope))
		upper[i] = Pt(x-t*sin, yc+t*cos)
		lower[i] = Pt(x+t*sin, yc-t*cos)
	}

	coords := make([]Point, 0, 2*n-1)
	for i := n - 1; i >= 0; i-- {
		coords = append(coords, upper[i])
	}
	coords = append(coords, lower[1:]...)
	a.coords = coords
	return nil
}

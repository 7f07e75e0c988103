package airfoil

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"gonum.org/v1/gonum/floats/scalar"
)

// checkBoundaryConditions verifies that the solved coefficients reproduce
// the boundary conditions they were built from: surface position, slope and
// curvature at the crest, the trailing-edge position, and the leading-edge
// radius term.
func checkBoundaryConditions(t *testing.T, a *ParsecAirfoil) {
	t.Helper()
	const tol = 1e-8

	for _, side := range []struct {
		name string
		k    SurfaceCoefficients
		sign float64
	}{
		{"upper", a.UpperCoefficients(), 1},
		{"lower", a.LowerCoefficients(), -1},
	} {
		crestX := a.Get(side.name + "_x")
		crestZ := a.Get(side.name + "_z")
		crestC := a.Get(side.name + "_c")

		if got := side.k.Eval(crestX); !scalar.EqualWithinAbs(got, crestZ, tol) {
			t.Errorf("%s surface at crest: got z = %v, expected %v", side.name, got, crestZ)
		}
		if got := side.k.Deriv(crestX); !scalar.EqualWithinAbs(got, 0, tol) {
			t.Errorf("%s surface slope at crest: got %v, expected 0", side.name, got)
		}
		if got := side.k.Deriv2(crestX); !scalar.EqualWithinAbs(got, crestC, tol) {
			t.Errorf("%s surface curvature at crest: got %v, expected %v", side.name, got, crestC)
		}

		te := a.Get("te_z") + 0.005*side.sign*a.Get("te_thickness")
		if got := side.k.Eval(1); !scalar.EqualWithinAbs(got, te, tol) {
			t.Errorf("%s surface at trailing edge: got %v, expected %v", side.name, got, te)
		}

		le := side.sign * math.Sqrt(2*a.Get("le_radius"))
		if got := side.k[0]; !scalar.EqualWithinAbs(got, le, tol) {
			t.Errorf("%s leading coefficient: got %v, expected %v", side.name, got, le)
		}
	}
}

func TestParsecBoundaryConditionRoundTrip(t *testing.T) {
	a := NewParsecAirfoil()
	checkBoundaryConditions(t, a)

	err := a.Update(map[string]float64{
		"upper_x":      0.35,
		"upper_z":      0.11,
		"upper_c":      -0.25,
		"lower_x":      0.45,
		"lower_z":      -0.02,
		"lower_c":      0.05,
		"le_radius":    0.02,
		"te_z":         0.01,
		"te_alpha":     -0.1,
		"te_beta":      0.3,
		"te_thickness": 0.4,
	})
	if err != nil {
		t.Fatal(err)
	}
	checkBoundaryConditions(t, a)
}

func TestParsecTrailingEdgeSplit(t *testing.T) {
	a := NewParsecAirfoil()

	// With zero trailing-edge thickness both surfaces end at te_z.
	if err := a.Set("te_z", 0.01); err != nil {
		t.Fatal(err)
	}
	upper := a.UpperSurface()
	lower := a.LowerSurface()
	diff(t, upper[len(upper)-1].Y, lower[len(lower)-1].Y, cmpopts.EquateApprox(0, 1e-9))

	// A finite thickness splits the trailing edge symmetrically around
	// te_z.
	if err := a.Set("te_thickness", 0.4); err != nil {
		t.Fatal(err)
	}
	upper = a.UpperSurface()
	lower = a.LowerSurface()
	diff(t, 0.012, upper[len(upper)-1].Y, cmpopts.EquateApprox(0, 1e-9))
	diff(t, 0.008, lower[len(lower)-1].Y, cmpopts.EquateApprox(0, 1e-9))
}

func TestParsecCoordinates(t *testing.T) {
	a := NewParsecAirfoil()
	coords := a.Coordinates()

	n := a.params.GetInt("num_points")
	diff(t, 2*n-2, len(coords))

	// The outline starts at the leading edge and has the trailing edge at
	// its midpoint.
	diff(t, Pt(0, 0), coords[0])
	diff(t, 1.0, coords[n-1].X, cmpopts.EquateApprox(0, 1e-12))
	if last := coords[len(coords)-1]; last.Distance(Pt(0, 0)) > 0.01 {
		t.Errorf("outline ends at %v, expected a point near the leading edge", last)
	}

	for i, pt := range coords {
		if pt.IsNaN() {
			t.Fatalf("coordinate %d is NaN", i)
		}
		if pt.X < 0 || pt.X > 1 {
			t.Errorf("coordinate %d has x = %v outside the chord", i, pt.X)
		}
	}
}

func TestParsecNumPointsOnlyResamples(t *testing.T) {
	a := NewParsecAirfoil()
	upper, lower := a.UpperCoefficients(), a.LowerCoefficients()

	if err := a.Set("num_points", 100); err != nil {
		t.Fatal(err)
	}
	diff(t, upper, a.UpperCoefficients())
	diff(t, lower, a.LowerCoefficients())
	diff(t, 198, len(a.Coordinates()))
}

func TestParsecRejectsOutOfRange(t *testing.T) {
	a := NewParsecAirfoil()
	coords := a.Coordinates()

	var verr *ValidationError
	if err := a.Set("upper_x", 0.005); !errors.As(err, &verr) {
		t.Fatalf("got %v, expected a *ValidationError", err)
	}
	diff(t, 0.400, a.Get("upper_x"))
	diff(t, coords, a.Coordinates())
}

func TestParsecSingularSystem(t *testing.T) {
	a := NewParsecAirfoil()
	upper := a.UpperCoefficients()
	coords := a.Coordinates()

	// A crest at the trailing edge makes the first two boundary condition
	// rows identical, so the system has no unique solution.
	err := a.Set("upper_x", 1.0)
	var nerr *NumericalError
	if !errors.As(err, &nerr) {
		t.Fatalf("got %v, expected a *NumericalError", err)
	}
	diff(t, "upper", nerr.Surface)

	// The write itself committed, but the previous geometry stays
	// published rather than corrupt coefficients.
	diff(t, 1.0, a.Get("upper_x"))
	diff(t, upper, a.UpperCoefficients())
	diff(t, coords, a.Coordinates())

	// Moving the crest back off the trailing edge recovers.
	if err := a.Set("upper_x", 0.4); err != nil {
		t.Fatal(err)
	}
	checkBoundaryConditions(t, a)
}

func TestParsecMetadata(t *testing.T) {
	a := NewParsecAirfoil()
	diff(t, "PARSEC", a.Name())
	a.SetName("wing root section")
	diff(t, "wing root section", a.Name())
	if a.Description() == "" {
		t.Error("expected a non-empty description")
	}
	diff(t, len(parsecFields), len(a.Params()))
}

func TestParsecBoundingBox(t *testing.T) {
	a := NewParsecAirfoil()
	bb := a.BoundingBox()
	diff(t, 1.0, bb.Width(), cmpopts.EquateApprox(0, 1e-6))
	if bb.Height() <= 0 || bb.Height() > 0.5 {
		t.Errorf("got bounding box height %v, expected a plausible section thickness", bb.Height())
	}
}

package airfoil_test

import (
	"fmt"

	"github.com/airshape/airfoil"
)

func ExampleParsecAirfoil() {
	a := airfoil.NewParsecAirfoil()
	fmt.Println(a.Name())

	// The default geometry is available immediately; every committed
	// write keeps it up to date.
	fmt.Println(len(a.Coordinates()))
	fmt.Println(a.Coordinates()[0])

	// Output:
	// PARSEC
	// 398
	// (0, 0)
}

func ExampleNacaAirfoil() {
	a, err := airfoil.NewNacaAirfoil("2412")
	if err != nil {
		panic(err)
	}
	fmt.Println(a.Name())
	fmt.Printf("%.3f\n", a.MeanCamber(0.4))
	fmt.Println(len(a.Coordinates()))

	// Output:
	// 2412
	// 0.020
	// 399
}

func ExampleSimplifiedParsecAirfoil() {
	a := airfoil.NewSimplifiedParsecAirfoil()
	if err := a.Set("thickness", 0.12); err != nil {
		panic(err)
	}

	// The three simplified parameters drive the full PARSEC crest set.
	x, y := airfoil.Pt(a.Get("upper_x"), a.Get("upper_z")).Splat()
	fmt.Printf("upper crest at (%.2f, %.2f)\n", x, y)
	fmt.Printf("lower crest z %.2f\n", a.Get("lower_z"))

	// Output:
	// upper crest at (0.40, 0.06)
	// lower crest z -0.06
}

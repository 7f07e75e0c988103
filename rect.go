package airfoil

// Rect is an axis-aligned rectangle, used for airfoil bounding boxes.
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// NewRectFromPoints returns a rectangle with the extents of p0 and p1,
// ensuring that width and height are non-negative.
func NewRectFromPoints(p0, p1 Point) Rect {
	return Rect{
		X0: min(p0.X, p1.X),
		Y0: min(p0.Y, p1.Y),
		X1: max(p0.X, p1.X),
		Y1: max(p0.Y, p1.Y),
	}
}

// Width returns the rectangle's width.
func (r Rect) Width() float64 {
	return r.X1 - r.X0
}

// Height returns the rectangle's height.
func (r Rect) Height() float64 {
	return r.Y1 - r.Y0
}

// boundingBox returns the smallest rectangle enclosing all of pts. It
// returns the zero rectangle for an empty slice.
func boundingBox(pts []Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	r := NewRectFromPoints(pts[0], pts[0])
	for _, pt := range pts[1:] {
		r.X0 = min(r.X0, pt.X)
		r.Y0 = min(r.Y0, pt.Y)
		r.X1 = max(r.X1, pt.X)
		r.Y1 = max(r.Y1, pt.Y)
	}
	return r
}

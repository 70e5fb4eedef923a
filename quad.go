package geom

import "fmt"

// Quad is a quadrilateral described by four independently positioned corner
// points: the general image of a rectangle under an affine transform. A
// Quad built from a Rect captures the rect's corners at that instant; the
// corners keep no relationship to any rect afterwards and may be moved
// freely.
type Quad[T Scalar] struct {
	TopLeft, TopRight, BottomRight, BottomLeft Point[T]
}

// NewQuad creates a Quad from its four corners.
func NewQuad[T Scalar](tl, tr, br, bl Point[T]) Quad[T] {
	return Quad[T]{TopLeft: tl, TopRight: tr, BottomRight: br, BottomLeft: bl}
}

// QuadFromRect captures the four corners of r.
func QuadFromRect[T Scalar](r Rect[T]) Quad[T] {
	return Quad[T]{
		TopLeft:     r.TopLeft(),
		TopRight:    r.TopRight(),
		BottomRight: r.BottomRight(),
		BottomLeft:  r.BottomLeft(),
	}
}

// Eq reports whether two quads have equal corners, using Point.Eq (tolerant
// for floating-point instantiations).
func (q Quad[T]) Eq(o Quad[T]) bool {
	return q.TopLeft.Eq(o.TopLeft) && q.TopRight.Eq(o.TopRight) &&
		q.BottomRight.Eq(o.BottomRight) && q.BottomLeft.Eq(o.BottomLeft)
}

// String renders the quad as [{tl}, {tr}, {br}, {bl}] with each corner in
// its own braces.
func (q Quad[T]) String() string {
	return fmt.Sprintf("[{%v}, {%v}, {%v}, {%v}]",
		q.TopLeft, q.TopRight, q.BottomRight, q.BottomLeft)
}

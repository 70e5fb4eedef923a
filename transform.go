package geom

import (
	"fmt"
	"math"
)

// Transform is a 2D affine transform stored as the six coefficients of the
// augmented matrix
//
//	[ a  b  tx ]
//	[ c  d  ty ]
//	[ 0  0  1  ]
//
// applied to a point as
//
//	out.x = a*x + c*y + tx
//	out.y = b*x + d*y + ty
//
// Note the coefficient-to-axis mapping: a and c feed the output x. Callers
// relying on a conventional row-major reading will get transposed results.
type Transform[T Float] struct {
	A, B, C, D, TX, TY T
}

// Identity returns the identity transform (1,0,0,1,0,0).
func Identity[T Float]() Transform[T] {
	return Transform[T]{A: 1, D: 1}
}

// Translation returns a transform that moves points by p.
func Translation[T Float](p Point[T]) Transform[T] {
	return Transform[T]{A: 1, D: 1, TX: p.X, TY: p.Y}
}

// Scaling returns a transform that scales x by s.Width and y by s.Height.
func Scaling[T Float](s Size[T]) Transform[T] {
	return Transform[T]{A: s.Width, D: s.Height}
}

// Rotation returns a transform that rotates by angle radians.
func Rotation[T Float](angle T) Transform[T] {
	ca := T(math.Cos(float64(angle)))
	sa := T(math.Sin(float64(angle)))
	return Transform[T]{A: ca, B: -sa, C: sa, D: ca}
}

// RotationAround returns a transform that rotates by angle radians about an
// arbitrary pivot, by conjugation:
//
//	Translation(pivot) * Rotation(angle) * Translation(-pivot)
func RotationAround[T Float](angle T, pivot Point[T]) Transform[T] {
	return Translation(pivot).Mul(Rotation(angle)).Mul(Translation(pivot.Neg()))
}

// Mul returns the matrix product t*o, the transform that applies o first
// and then t:
//
//	t.Mul(o).Apply(p) == t.Apply(o.Apply(p))
//
// The product is not commutative; reversing the order silently breaks
// every caller that chains transforms.
func (t Transform[T]) Mul(o Transform[T]) Transform[T] {
	return Transform[T]{
		A:  t.A*o.A + t.C*o.B,
		B:  t.B*o.A + t.D*o.B,
		C:  t.A*o.C + t.C*o.D,
		D:  t.B*o.C + t.D*o.D,
		TX: t.A*o.TX + t.C*o.TY + t.TX,
		TY: t.B*o.TX + t.D*o.TY + t.TY,
	}
}

// MulSize scales the linear part only: the x column by s.Width and the y
// column by s.Height, leaving the translation untouched. Equivalent to
// pre-composing with Scaling(s):
//
//	t.MulSize(s).Apply(p) == t.Apply(p.Mul(Pt(s.Width, s.Height)))
func (t Transform[T]) MulSize(s Size[T]) Transform[T] {
	return Transform[T]{
		A:  t.A * s.Width,
		B:  t.B * s.Width,
		C:  t.C * s.Height,
		D:  t.D * s.Height,
		TX: t.TX,
		TY: t.TY,
	}
}

// AddTranslation pre-composes t with a translation by p: the translation
// column absorbs the transformed offset rather than being shifted
// directly.
//
//	t.AddTranslation(p).Apply(q) == t.Apply(q.Add(p))
func (t Transform[T]) AddTranslation(p Point[T]) Transform[T] {
	return Transform[T]{
		A:  t.A,
		B:  t.B,
		C:  t.C,
		D:  t.D,
		TX: t.TX + t.A*p.X + t.C*p.Y,
		TY: t.TY + t.B*p.X + t.D*p.Y,
	}
}

// SubTranslation pre-composes t with a translation by -p.
func (t Transform[T]) SubTranslation(p Point[T]) Transform[T] {
	return t.AddTranslation(p.Neg())
}

// WithTranslation returns a copy pre-composed with a translation by p.
// Same as AddTranslation.
func (t Transform[T]) WithTranslation(p Point[T]) Transform[T] {
	return t.AddTranslation(p)
}

// WithScale returns a copy pre-composed with a scale by s. Same as MulSize.
func (t Transform[T]) WithScale(s Size[T]) Transform[T] {
	return t.MulSize(s)
}

// WithRotation returns a copy pre-composed with a rotation by angle
// radians.
func (t Transform[T]) WithRotation(angle T) Transform[T] {
	return t.Mul(Rotation(angle))
}

// Translate pre-composes a translation by p in place and returns the
// transform for chaining.
func (t *Transform[T]) Translate(p Point[T]) *Transform[T] {
	*t = t.AddTranslation(p)
	return t
}

// ScaleBy pre-composes a scale by s in place.
func (t *Transform[T]) ScaleBy(s Size[T]) *Transform[T] {
	*t = t.MulSize(s)
	return t
}

// Rotate pre-composes a rotation by angle radians in place.
func (t *Transform[T]) Rotate(angle T) *Transform[T] {
	*t = t.Mul(Rotation(angle))
	return t
}

// Apply maps a point through the transform.
func (t Transform[T]) Apply(p Point[T]) Point[T] {
	return Point[T]{
		X: t.A*p.X + t.C*p.Y + t.TX,
		Y: t.B*p.X + t.D*p.Y + t.TY,
	}
}

// ApplyRect maps all four corners of r individually and returns the
// resulting Quad: an affine transform may turn a rectangle into a
// non-axis-aligned quadrilateral.
func (t Transform[T]) ApplyRect(r Rect[T]) Quad[T] {
	return Quad[T]{
		TopLeft:     t.Apply(r.TopLeft()),
		TopRight:    t.Apply(r.TopRight()),
		BottomRight: t.Apply(r.BottomRight()),
		BottomLeft:  t.Apply(r.BottomLeft()),
	}
}

// ApplyQuad maps all four corners of q.
func (t Transform[T]) ApplyQuad(q Quad[T]) Quad[T] {
	return Quad[T]{
		TopLeft:     t.Apply(q.TopLeft),
		TopRight:    t.Apply(q.TopRight),
		BottomRight: t.Apply(q.BottomRight),
		BottomLeft:  t.Apply(q.BottomLeft),
	}
}

// Eq reports whether two transforms have equal coefficients within
// tolerance.
func (t Transform[T]) Eq(o Transform[T]) bool {
	return Near(t.A, o.A) && Near(t.B, o.B) && Near(t.C, o.C) &&
		Near(t.D, o.D) && Near(t.TX, o.TX) && Near(t.TY, o.TY)
}

// String renders the transform as {a,b,c,d,tx,ty}.
func (t Transform[T]) String() string {
	return fmt.Sprintf("{%v,%v,%v,%v,%v,%v}", t.A, t.B, t.C, t.D, t.TX, t.TY)
}

// TransformPoint maps p through t. The transform is always the right
// operand when used as a mapping function; this is the p * t spelling of
// t.Apply(p).
func TransformPoint[T Float](p Point[T], t Transform[T]) Point[T] {
	return t.Apply(p)
}

// TransformRect maps r through t, the r * t spelling of t.ApplyRect(r).
func TransformRect[T Float](r Rect[T], t Transform[T]) Quad[T] {
	return t.ApplyRect(r)
}

// TransformQuad maps q through t, the q * t spelling of t.ApplyQuad(q).
func TransformQuad[T Float](q Quad[T], t Transform[T]) Quad[T] {
	return t.ApplyQuad(q)
}

package geom

import "fmt"

// Size represents 2D dimensions. Negative sizes are permitted and meaningful
// for some operations (expanding by a negative delta shrinks).
type Size[T Scalar] struct {
	Width, Height T
}

// Sz is a convenience function to create a Size.
func Sz[T Scalar](width, height T) Size[T] {
	return Size[T]{Width: width, Height: height}
}

// ZeroSize returns the size {0,0}.
func ZeroSize[T Scalar]() Size[T] {
	return Size[T]{}
}

// FullScale returns the maximum representable value in both dimensions,
// used as a sentinel for "unconstrained".
func FullScale[T Scalar]() Size[T] {
	m := maxScalar[T]()
	return Size[T]{Width: m, Height: m}
}

// Add returns the component-wise sum of two sizes.
func (s Size[T]) Add(o Size[T]) Size[T] {
	return Size[T]{Width: s.Width + o.Width, Height: s.Height + o.Height}
}

// Sub returns the component-wise difference of two sizes.
func (s Size[T]) Sub(o Size[T]) Size[T] {
	return Size[T]{Width: s.Width - o.Width, Height: s.Height - o.Height}
}

// Mul returns the component-wise product of two sizes.
func (s Size[T]) Mul(o Size[T]) Size[T] {
	return Size[T]{Width: s.Width * o.Width, Height: s.Height * o.Height}
}

// Div returns the component-wise quotient of two sizes.
func (s Size[T]) Div(o Size[T]) Size[T] {
	return Size[T]{Width: s.Width / o.Width, Height: s.Height / o.Height}
}

// AddScalar returns the size with v added to both dimensions.
func (s Size[T]) AddScalar(v T) Size[T] {
	return Size[T]{Width: s.Width + v, Height: s.Height + v}
}

// SubScalar returns the size with v subtracted from both dimensions.
func (s Size[T]) SubScalar(v T) Size[T] {
	return Size[T]{Width: s.Width - v, Height: s.Height - v}
}

// MulScalar returns the size scaled by v.
func (s Size[T]) MulScalar(v T) Size[T] {
	return Size[T]{Width: s.Width * v, Height: s.Height * v}
}

// DivScalar returns the size divided by v.
func (s Size[T]) DivScalar(v T) Size[T] {
	return Size[T]{Width: s.Width / v, Height: s.Height / v}
}

// Neg returns the size with both dimensions negated.
func (s Size[T]) Neg() Size[T] {
	return Size[T]{Width: -s.Width, Height: -s.Height}
}

// Eq reports whether two sizes are equal, tolerant for floating-point
// instantiations.
func (s Size[T]) Eq(o Size[T]) bool {
	return Near(s.Width, o.Width) && Near(s.Height, o.Height)
}

// Less reports whether s is strictly smaller than o in both dimensions.
// Like Point.Less this is a partial order.
func (s Size[T]) Less(o Size[T]) bool {
	return s.Width < o.Width && s.Height < o.Height
}

// LessEq reports whether s is smaller than or equal to o in both dimensions.
func (s Size[T]) LessEq(o Size[T]) bool {
	return s.Width <= o.Width && s.Height <= o.Height
}

// Greater reports whether s is strictly larger than o in both dimensions.
func (s Size[T]) Greater(o Size[T]) bool {
	return s.Width > o.Width && s.Height > o.Height
}

// GreaterEq reports whether s is larger than or equal to o in both
// dimensions.
func (s Size[T]) GreaterEq(o Size[T]) bool {
	return s.Width >= o.Width && s.Height >= o.Height
}

// Empty reports whether both dimensions are exactly zero. A size like (5,0)
// has zero area but is NOT empty under this definition.
func (s Size[T]) Empty() bool {
	return s.Width == 0 && s.Height == 0
}

// WithWidth returns a copy of the size with its width replaced.
func (s Size[T]) WithWidth(w T) Size[T] {
	return Size[T]{Width: w, Height: s.Height}
}

// WithHeight returns a copy of the size with its height replaced.
func (s Size[T]) WithHeight(h T) Size[T] {
	return Size[T]{Width: s.Width, Height: h}
}

// WithAddWidth returns a copy of the size with dw added to its width.
func (s Size[T]) WithAddWidth(dw T) Size[T] {
	return Size[T]{Width: s.Width + dw, Height: s.Height}
}

// WithAddHeight returns a copy of the size with dh added to its height.
func (s Size[T]) WithAddHeight(dh T) Size[T] {
	return Size[T]{Width: s.Width, Height: s.Height + dh}
}

// SetWidth sets the width in place and returns the size for chaining.
func (s *Size[T]) SetWidth(w T) *Size[T] {
	s.Width = w
	return s
}

// SetHeight sets the height in place and returns the size for chaining.
func (s *Size[T]) SetHeight(h T) *Size[T] {
	s.Height = h
	return s
}

// AddWidth adds dw to the width in place and returns the size.
func (s *Size[T]) AddWidth(dw T) *Size[T] {
	s.Width += dw
	return s
}

// AddHeight adds dh to the height in place and returns the size.
func (s *Size[T]) AddHeight(dh T) *Size[T] {
	s.Height += dh
	return s
}

// String renders the size as {width,height}.
func (s Size[T]) String() string {
	return fmt.Sprintf("{%v,%v}", s.Width, s.Height)
}

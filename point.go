package geom

import "fmt"

// Point represents a 2D point or vector.
type Point[T Scalar] struct {
	X, Y T
}

// Pt is a convenience function to create a Point.
func Pt[T Scalar](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// Add returns the component-wise sum of two points (vector addition).
func (p Point[T]) Add(q Point[T]) Point[T] {
	return Point[T]{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the component-wise difference of two points.
func (p Point[T]) Sub(q Point[T]) Point[T] {
	return Point[T]{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the component-wise product of two points.
func (p Point[T]) Mul(q Point[T]) Point[T] {
	return Point[T]{X: p.X * q.X, Y: p.Y * q.Y}
}

// Div returns the component-wise quotient of two points.
// Division by zero follows the scalar type's own behavior.
func (p Point[T]) Div(q Point[T]) Point[T] {
	return Point[T]{X: p.X / q.X, Y: p.Y / q.Y}
}

// AddScalar returns the point with v added to both components.
func (p Point[T]) AddScalar(v T) Point[T] {
	return Point[T]{X: p.X + v, Y: p.Y + v}
}

// SubScalar returns the point with v subtracted from both components.
func (p Point[T]) SubScalar(v T) Point[T] {
	return Point[T]{X: p.X - v, Y: p.Y - v}
}

// MulScalar returns the point scaled by v.
func (p Point[T]) MulScalar(v T) Point[T] {
	return Point[T]{X: p.X * v, Y: p.Y * v}
}

// DivScalar returns the point divided by v.
func (p Point[T]) DivScalar(v T) Point[T] {
	return Point[T]{X: p.X / v, Y: p.Y / v}
}

// Neg returns the point with both components negated.
func (p Point[T]) Neg() Point[T] {
	return Point[T]{X: -p.X, Y: -p.Y}
}

// Eq reports whether two points are equal. Floating-point instantiations
// compare each component with Near; integer instantiations compare exactly.
func (p Point[T]) Eq(q Point[T]) bool {
	return Near(p.X, q.X) && Near(p.Y, q.Y)
}

// Less reports whether p is strictly less than q in BOTH components.
// This is a partial order: two points can be mutually non-ordered.
func (p Point[T]) Less(q Point[T]) bool {
	return p.X < q.X && p.Y < q.Y
}

// LessEq reports whether p is less than or equal to q in both components.
func (p Point[T]) LessEq(q Point[T]) bool {
	return p.X <= q.X && p.Y <= q.Y
}

// Greater reports whether p is strictly greater than q in both components.
func (p Point[T]) Greater(q Point[T]) bool {
	return p.X > q.X && p.Y > q.Y
}

// GreaterEq reports whether p is greater than or equal to q in both
// components.
func (p Point[T]) GreaterEq(q Point[T]) bool {
	return p.X >= q.X && p.Y >= q.Y
}

// WithX returns a copy of the point with its x component replaced.
func (p Point[T]) WithX(x T) Point[T] {
	return Point[T]{X: x, Y: p.Y}
}

// WithY returns a copy of the point with its y component replaced.
func (p Point[T]) WithY(y T) Point[T] {
	return Point[T]{X: p.X, Y: y}
}

// WithAddX returns a copy of the point with dx added to its x component.
func (p Point[T]) WithAddX(dx T) Point[T] {
	return Point[T]{X: p.X + dx, Y: p.Y}
}

// WithAddY returns a copy of the point with dy added to its y component.
func (p Point[T]) WithAddY(dy T) Point[T] {
	return Point[T]{X: p.X, Y: p.Y + dy}
}

// SetX sets the x component in place and returns the point for chaining.
func (p *Point[T]) SetX(x T) *Point[T] {
	p.X = x
	return p
}

// SetY sets the y component in place and returns the point for chaining.
func (p *Point[T]) SetY(y T) *Point[T] {
	p.Y = y
	return p
}

// AddX adds dx to the x component in place and returns the point.
func (p *Point[T]) AddX(dx T) *Point[T] {
	p.X += dx
	return p
}

// AddY adds dy to the y component in place and returns the point.
func (p *Point[T]) AddY(dy T) *Point[T] {
	p.Y += dy
	return p
}

// String renders the point as {x,y}.
func (p Point[T]) String() string {
	return fmt.Sprintf("{%v,%v}", p.X, p.Y)
}

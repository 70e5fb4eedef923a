package geom

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Scalar is the constraint for the component types geom's value types can
// carry: any integer or floating-point type.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Float is the constraint for Transform, which is only meaningful over
// floating-point components.
type Float interface {
	constraints.Float
}

// Kept as variables rather than constants: converting an untyped float
// constant to an integer type parameter does not compile, converting a
// float64 variable does (and truncates, which is what the probes rely on).
var (
	half  = 0.5
	eps64 = math.Nextafter(1, 2) - 1
	eps32 = float64(math.Nextafter32(1, 2) - 1)
)

// isFloat reports whether T is a floating-point type. 0.5 truncates to 0 in
// every integer type and survives in every float type, so the branch is
// constant after instantiation.
func isFloat[T Scalar]() bool {
	return T(half) != T(0)
}

// epsilon returns the machine epsilon of T as a float64, or 0 for integer
// types. float32 cannot represent 1+eps64, which is how the two float widths
// are told apart without reflection.
func epsilon[T Scalar]() float64 {
	if !isFloat[T]() {
		return 0
	}
	if T(1)+T(eps64) != T(1) {
		return eps64
	}
	return eps32
}

// Near reports whether a and b are equal within the machine epsilon of T,
// using a relative-or-absolute tolerance:
//
//	|a-b| <= eps || |a-b| < max(|a|,|b|) * eps
//
// Integer instantiations compare exactly. Every floating-point equality in
// this package (Point.Eq, Rect.Eq, ...) goes through Near so that
// accumulated arithmetic error does not break equality checks.
func Near[T Scalar](a, b T) bool {
	if !isFloat[T]() {
		return a == b
	}
	fa := float64(a)
	fb := float64(b)
	t := epsilon[T]()
	dt := math.Abs(fa - fb)
	return dt <= t || dt < math.Max(math.Abs(fa), math.Abs(fb))*t
}

// maxScalar returns the largest representable value of T.
func maxScalar[T Scalar]() T {
	if isFloat[T]() {
		if T(1)+T(eps64) != T(1) {
			f := math.MaxFloat64
			return T(f)
		}
		f := math.MaxFloat32
		return T(f)
	}
	var zero T
	if zero-1 > zero {
		// Unsigned: wraps to the maximum.
		return zero - 1
	}
	// Signed: find the largest representable power of two (doubling wraps
	// negative past it), then fill in the low bits.
	m := T(1)
	for m*2 > m {
		m *= 2
	}
	return m - 1 + m
}

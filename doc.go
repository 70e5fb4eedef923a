// Package geom provides generic 2D value types for the GoGPU ecosystem.
//
// # Overview
//
// geom is a small numeric geometry toolkit: points, sizes, rectangles,
// paddings, 1D ranges, quadrilaterals and 2x3 affine transforms, all
// parameterized over any integer or floating-point scalar type. Every type
// is a plain value aggregate with no owned resources; all operations are
// pure O(1) arithmetic.
//
// # Quick Start
//
//	import "github.com/gogpu/geom"
//
//	r := geom.NewRect(0.0, 0.0, 10.0, 10.0)
//	t := geom.RotationAround(math.Pi, r.BottomRight())
//	q := t.ApplyRect(r) // a Quad: transforms may bend rects
//
// # Scalars and Equality
//
// All types use a single Scalar constraint (integers and floats). Equality
// on floating-point instantiations is tolerant: components compare equal
// within the machine epsilon of the scalar type, so accumulated arithmetic
// error does not break == style checks. Integer instantiations compare
// exactly. See Near.
//
// # Structural Conversion
//
// Foreign aggregate types that follow one of the recognized field-layout
// conventions (X/Y points, Width/Height or W/H sizes, Origin+Size,
// X/Y/Width/Height, X/Y/W/H or Left/Top/Right/Bottom rects) convert to and
// from geom types without adapters, checked entirely at compile time via
// structural generic constraints. image.Point, for example, satisfies the
// point convention as-is.
//
// # Coordinate System
//
// Uses standard computer graphics coordinates:
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - Angles in radians
//
// # Degenerate Inputs
//
// Negative sizes, unsorted ranges and zero-area intersections are accepted
// silently and produce well-defined (if sometimes unintuitive) results;
// nothing here panics or returns errors. Division by zero follows the
// scalar type's own behavior.
package geom

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)

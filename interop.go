package geom

import (
	"image"
	"math"

	"golang.org/x/image/math/f32"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
)

// Bridges to the image ecosystem. image.Point needs no bridge: it satisfies
// the PointXY convention and flows through PointFrom / PointAs directly.
// image.Rectangle and the x/image fixed-point types store corners rather
// than origin+size, so they get explicit helpers here.

// RectFromImage converts an image.Rectangle (min/max corners) to a Rect.
func RectFromImage(r image.Rectangle) Rect[int] {
	return Rect[int]{
		X:      r.Min.X,
		Y:      r.Min.Y,
		Width:  r.Max.X - r.Min.X,
		Height: r.Max.Y - r.Min.Y,
	}
}

// ImageRect converts a Rect to an image.Rectangle. The result is not
// canonicalized; a negative-size rect yields an empty image.Rectangle by
// that package's definition.
func ImageRect(r Rect[int]) image.Rectangle {
	return image.Rectangle{
		Min: image.Point{X: r.X, Y: r.Y},
		Max: image.Point{X: r.X + r.Width, Y: r.Y + r.Height},
	}
}

// PointFromFixed converts a 26.6 fixed-point point to a float64 Point.
func PointFromFixed(p fixed.Point26_6) Point[float64] {
	return Point[float64]{
		X: float64(p.X) / 64,
		Y: float64(p.Y) / 64,
	}
}

// PointToFixed converts a float64 Point to 26.6 fixed point, rounding to
// the nearest 1/64.
func PointToFixed(p Point[float64]) fixed.Point26_6 {
	return fixed.Point26_6{
		X: fixed.Int26_6(math.Round(p.X * 64)),
		Y: fixed.Int26_6(math.Round(p.Y * 64)),
	}
}

// RectFromFixed converts a 26.6 fixed-point rectangle (min/max corners) to
// a float64 Rect.
func RectFromFixed(r fixed.Rectangle26_6) Rect[float64] {
	minPt := PointFromFixed(r.Min)
	maxPt := PointFromFixed(r.Max)
	return RectFromCorners(minPt, maxPt)
}

// RectToFixed converts a float64 Rect to a 26.6 fixed-point rectangle.
func RectToFixed(r Rect[float64]) fixed.Rectangle26_6 {
	return fixed.Rectangle26_6{
		Min: PointToFixed(r.TopLeft()),
		Max: PointToFixed(r.BottomRight()),
	}
}

// PointFromVec2 converts an f32.Vec2 to a float32 Point.
func PointFromVec2(v f32.Vec2) Point[float32] {
	return Point[float32]{X: v[0], Y: v[1]}
}

// PointToVec2 converts a float32 Point to an f32.Vec2.
func PointToVec2(p Point[float32]) f32.Vec2 {
	return f32.Vec2{p.X, p.Y}
}

// Aff3 returns the transform in the row-major [a b c; d e f] layout that
// x/image/draw consumes (out.x = m[0]*x + m[1]*y + m[2]). geom stores its
// x-row as (A, C, TX), so the coefficients are reshuffled, not copied in
// order.
func (t Transform[T]) Aff3() f64.Aff3 {
	return f64.Aff3{
		float64(t.A), float64(t.C), float64(t.TX),
		float64(t.B), float64(t.D), float64(t.TY),
	}
}

// TransformFromAff3 converts an x/image row-major affine matrix to a
// Transform.
func TransformFromAff3(m f64.Aff3) Transform[float64] {
	return Transform[float64]{
		A: m[0], C: m[1], TX: m[2],
		B: m[3], D: m[4], TY: m[5],
	}
}

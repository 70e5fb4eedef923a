package geom

import (
	"fmt"
	"math"
)

// Rect is a rectangle described by its top-left corner and size. The four
// scalar fields are the single source of truth; Origin and Size are
// computed views over the same storage, so the two spellings can never
// diverge.
//
// Width and Height are not forced to be non-negative; degenerate rects are
// accepted and flow through the algebra unchanged.
type Rect[T Scalar] struct {
	X, Y, Width, Height T
}

// NewRect creates a Rect from its top-left corner and dimensions.
func NewRect[T Scalar](x, y, width, height T) Rect[T] {
	return Rect[T]{X: x, Y: y, Width: width, Height: height}
}

// RectAt creates a Rect from an origin point and a size.
func RectAt[T Scalar](origin Point[T], size Size[T]) Rect[T] {
	return Rect[T]{X: origin.X, Y: origin.Y, Width: size.Width, Height: size.Height}
}

// RectFromCorners creates a Rect spanning from topLeft to bottomRight.
func RectFromCorners[T Scalar](topLeft, bottomRight Point[T]) Rect[T] {
	return Rect[T]{
		X:      topLeft.X,
		Y:      topLeft.Y,
		Width:  bottomRight.X - topLeft.X,
		Height: bottomRight.Y - topLeft.Y,
	}
}

// RectFromTopLeft creates a Rect whose top-left corner is p.
func RectFromTopLeft[T Scalar](p Point[T], s Size[T]) Rect[T] {
	return Rect[T]{X: p.X, Y: p.Y, Width: s.Width, Height: s.Height}
}

// RectFromTopRight creates a Rect whose top-right corner is p. The result
// is normalized to canonical top-left + size storage.
func RectFromTopRight[T Scalar](p Point[T], s Size[T]) Rect[T] {
	return Rect[T]{X: p.X - s.Width, Y: p.Y, Width: s.Width, Height: s.Height}
}

// RectFromBottomLeft creates a Rect whose bottom-left corner is p: the
// stored origin is (p.X, p.Y - s.Height).
func RectFromBottomLeft[T Scalar](p Point[T], s Size[T]) Rect[T] {
	return Rect[T]{X: p.X, Y: p.Y - s.Height, Width: s.Width, Height: s.Height}
}

// RectFromBottomRight creates a Rect whose bottom-right corner is p.
func RectFromBottomRight[T Scalar](p Point[T], s Size[T]) Rect[T] {
	return Rect[T]{X: p.X - s.Width, Y: p.Y - s.Height, Width: s.Width, Height: s.Height}
}

// Origin returns the top-left corner as a Point view over the rect's
// storage.
func (r Rect[T]) Origin() Point[T] {
	return Point[T]{X: r.X, Y: r.Y}
}

// Size returns the dimensions as a Size view over the rect's storage.
func (r Rect[T]) Size() Size[T] {
	return Size[T]{Width: r.Width, Height: r.Height}
}

// SetOrigin writes the origin through to the rect's storage and returns the
// rect for chaining.
func (r *Rect[T]) SetOrigin(p Point[T]) *Rect[T] {
	r.X, r.Y = p.X, p.Y
	return r
}

// SetSize writes the size through to the rect's storage and returns the
// rect for chaining.
func (r *Rect[T]) SetSize(s Size[T]) *Rect[T] {
	r.Width, r.Height = s.Width, s.Height
	return r
}

// Left returns the x coordinate of the left edge.
func (r Rect[T]) Left() T { return r.X }

// Right returns the x coordinate of the right edge (x + width).
func (r Rect[T]) Right() T { return r.X + r.Width }

// Top returns the y coordinate of the top edge.
func (r Rect[T]) Top() T { return r.Y }

// Bottom returns the y coordinate of the bottom edge (y + height).
func (r Rect[T]) Bottom() T { return r.Y + r.Height }

// TopLeft returns the top-left corner (the origin).
func (r Rect[T]) TopLeft() Point[T] {
	return Point[T]{X: r.X, Y: r.Y}
}

// TopRight returns the top-right corner.
func (r Rect[T]) TopRight() Point[T] {
	return Point[T]{X: r.X + r.Width, Y: r.Y}
}

// BottomLeft returns the bottom-left corner.
func (r Rect[T]) BottomLeft() Point[T] {
	return Point[T]{X: r.X, Y: r.Y + r.Height}
}

// BottomRight returns the bottom-right corner.
func (r Rect[T]) BottomRight() Point[T] {
	return Point[T]{X: r.X + r.Width, Y: r.Y + r.Height}
}

// Middle returns the center of the rect.
func (r Rect[T]) Middle() Point[T] {
	return Point[T]{
		X: T(float64(r.X) + float64(r.Width)*half),
		Y: T(float64(r.Y) + float64(r.Height)*half),
	}
}

// MiddleLeft returns the midpoint of the left edge.
func (r Rect[T]) MiddleLeft() Point[T] {
	return Point[T]{X: r.X, Y: T(float64(r.Y) + float64(r.Height)*half)}
}

// MiddleRight returns the midpoint of the right edge.
func (r Rect[T]) MiddleRight() Point[T] {
	return Point[T]{X: r.X + r.Width, Y: T(float64(r.Y) + float64(r.Height)*half)}
}

// MiddleTop returns the midpoint of the top edge.
func (r Rect[T]) MiddleTop() Point[T] {
	return Point[T]{X: T(float64(r.X) + float64(r.Width)*half), Y: r.Y}
}

// MiddleBottom returns the midpoint of the bottom edge.
func (r Rect[T]) MiddleBottom() Point[T] {
	return Point[T]{X: T(float64(r.X) + float64(r.Width)*half), Y: r.Y + r.Height}
}

// NextLeft returns the point delta to the left of the rect, on its top edge.
func (r Rect[T]) NextLeft(delta T) Point[T] {
	return Point[T]{X: r.X - delta, Y: r.Y}
}

// NextRight returns the point delta to the right of the rect, on its top
// edge.
func (r Rect[T]) NextRight(delta T) Point[T] {
	return Point[T]{X: r.X + r.Width + delta, Y: r.Y}
}

// NextDown returns the point delta below the rect, on its left edge.
func (r Rect[T]) NextDown(delta T) Point[T] {
	return Point[T]{X: r.X, Y: r.Y + r.Height + delta}
}

// NextUp returns the point delta above the rect, on its left edge.
func (r Rect[T]) NextUp(delta T) Point[T] {
	return Point[T]{X: r.X, Y: r.Y - delta}
}

// WithX returns a copy with a new x position.
func (r Rect[T]) WithX(x T) Rect[T] {
	return Rect[T]{X: x, Y: r.Y, Width: r.Width, Height: r.Height}
}

// WithY returns a copy with a new y position.
func (r Rect[T]) WithY(y T) Rect[T] {
	return Rect[T]{X: r.X, Y: y, Width: r.Width, Height: r.Height}
}

// WithWidth returns a copy with a new width.
func (r Rect[T]) WithWidth(w T) Rect[T] {
	return Rect[T]{X: r.X, Y: r.Y, Width: w, Height: r.Height}
}

// WithHeight returns a copy with a new height.
func (r Rect[T]) WithHeight(h T) Rect[T] {
	return Rect[T]{X: r.X, Y: r.Y, Width: r.Width, Height: h}
}

// WithOrigin returns a copy with a new origin.
func (r Rect[T]) WithOrigin(p Point[T]) Rect[T] {
	return Rect[T]{X: p.X, Y: p.Y, Width: r.Width, Height: r.Height}
}

// WithSize returns a copy with a new size.
func (r Rect[T]) WithSize(s Size[T]) Rect[T] {
	return Rect[T]{X: r.X, Y: r.Y, Width: s.Width, Height: s.Height}
}

// WithTopLeft returns a copy repositioned so p is the top-left corner.
func (r Rect[T]) WithTopLeft(p Point[T]) Rect[T] {
	return r.WithOrigin(p)
}

// WithTopRight returns a copy repositioned so p is the top-right corner.
func (r Rect[T]) WithTopRight(p Point[T]) Rect[T] {
	return r.WithOrigin(Point[T]{X: p.X - r.Width, Y: p.Y})
}

// WithBottomLeft returns a copy repositioned so p is the bottom-left corner.
func (r Rect[T]) WithBottomLeft(p Point[T]) Rect[T] {
	return r.WithOrigin(Point[T]{X: p.X, Y: p.Y - r.Height})
}

// WithBottomRight returns a copy repositioned so p is the bottom-right
// corner.
func (r Rect[T]) WithBottomRight(p Point[T]) Rect[T] {
	return r.WithOrigin(Point[T]{X: p.X - r.Width, Y: p.Y - r.Height})
}

// WithMiddle returns a copy centered on p.
func (r Rect[T]) WithMiddle(p Point[T]) Rect[T] {
	return r.WithOrigin(Point[T]{
		X: T(float64(p.X) - float64(r.Width)*half),
		Y: T(float64(p.Y) - float64(r.Height)*half),
	})
}

// WithMiddleLeft returns a copy positioned so p is the midpoint of its left
// edge.
func (r Rect[T]) WithMiddleLeft(p Point[T]) Rect[T] {
	return r.WithOrigin(Point[T]{X: p.X, Y: T(float64(p.Y) - float64(r.Height)*half)})
}

// WithMiddleRight returns a copy positioned so p is the midpoint of its
// right edge.
func (r Rect[T]) WithMiddleRight(p Point[T]) Rect[T] {
	return r.WithOrigin(Point[T]{X: p.X - r.Width, Y: T(float64(p.Y) - float64(r.Height)*half)})
}

// WithMiddleTop returns a copy positioned so p is the midpoint of its top
// edge.
func (r Rect[T]) WithMiddleTop(p Point[T]) Rect[T] {
	return r.WithOrigin(Point[T]{X: T(float64(p.X) - float64(r.Width)*half), Y: p.Y})
}

// WithMiddleBottom returns a copy positioned so p is the midpoint of its
// bottom edge.
func (r Rect[T]) WithMiddleBottom(p Point[T]) Rect[T] {
	return r.WithOrigin(Point[T]{X: T(float64(p.X) - float64(r.Width)*half), Y: p.Y - r.Height})
}

// SetX sets the x position in place and returns the rect for chaining.
func (r *Rect[T]) SetX(x T) *Rect[T] {
	r.X = x
	return r
}

// SetY sets the y position in place and returns the rect for chaining.
func (r *Rect[T]) SetY(y T) *Rect[T] {
	r.Y = y
	return r
}

// SetWidth sets the width in place and returns the rect for chaining.
func (r *Rect[T]) SetWidth(w T) *Rect[T] {
	r.Width = w
	return r
}

// SetHeight sets the height in place and returns the rect for chaining.
func (r *Rect[T]) SetHeight(h T) *Rect[T] {
	r.Height = h
	return r
}

// AddX adds dx to the x position in place.
func (r *Rect[T]) AddX(dx T) *Rect[T] {
	r.X += dx
	return r
}

// AddY adds dy to the y position in place.
func (r *Rect[T]) AddY(dy T) *Rect[T] {
	r.Y += dy
	return r
}

// AddWidth adds dw to the width in place.
func (r *Rect[T]) AddWidth(dw T) *Rect[T] {
	r.Width += dw
	return r
}

// AddHeight adds dh to the height in place.
func (r *Rect[T]) AddHeight(dh T) *Rect[T] {
	r.Height += dh
	return r
}

// AddPoint translates the origin by p in place.
func (r *Rect[T]) AddPoint(p Point[T]) *Rect[T] {
	r.X += p.X
	r.Y += p.Y
	return r
}

// AddSize grows the size by s in place.
func (r *Rect[T]) AddSize(s Size[T]) *Rect[T] {
	r.Width += s.Width
	r.Height += s.Height
	return r
}

// MulX multiplies the x position in place.
func (r *Rect[T]) MulX(x T) *Rect[T] {
	r.X *= x
	return r
}

// MulY multiplies the y position in place.
func (r *Rect[T]) MulY(y T) *Rect[T] {
	r.Y *= y
	return r
}

// MulWidth multiplies the width in place.
func (r *Rect[T]) MulWidth(w T) *Rect[T] {
	r.Width *= w
	return r
}

// MulHeight multiplies the height in place.
func (r *Rect[T]) MulHeight(h T) *Rect[T] {
	r.Height *= h
	return r
}

// Add returns the rect translated by p. The size is unchanged.
func (r Rect[T]) Add(p Point[T]) Rect[T] {
	return Rect[T]{X: r.X + p.X, Y: r.Y + p.Y, Width: r.Width, Height: r.Height}
}

// Sub returns the rect translated by -p.
func (r Rect[T]) Sub(p Point[T]) Rect[T] {
	return Rect[T]{X: r.X - p.X, Y: r.Y - p.Y, Width: r.Width, Height: r.Height}
}

// Eq reports whether two rects are equal, tolerant for floating-point
// instantiations.
func (r Rect[T]) Eq(o Rect[T]) bool {
	return Near(r.X, o.X) && Near(r.Y, o.Y) &&
		Near(r.Width, o.Width) && Near(r.Height, o.Height)
}

// Contains reports whether p lies inside the rect, inclusive of all four
// edges (closed interval on both axes).
func (r Rect[T]) Contains(p Point[T]) bool {
	return p.X >= r.X && p.X <= r.X+r.Width && p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Reduce insets the rect by pt per side in place: each axis shrinks by
// twice the delta, once per side.
func (r *Rect[T]) Reduce(pt Point[T]) *Rect[T] {
	r.X += pt.X
	r.Y += pt.Y
	r.Width -= 2 * pt.X
	r.Height -= 2 * pt.Y
	return r
}

// Reduced returns a copy inset by pt per side.
func (r Rect[T]) Reduced(pt Point[T]) Rect[T] {
	return Rect[T]{
		X:      r.X + pt.X,
		Y:      r.Y + pt.Y,
		Width:  r.Width - 2*pt.X,
		Height: r.Height - 2*pt.Y,
	}
}

// Expand outsets the rect by pt per side in place; the inverse of Reduce.
func (r *Rect[T]) Expand(pt Point[T]) *Rect[T] {
	r.X -= pt.X
	r.Y -= pt.Y
	r.Width += 2 * pt.X
	r.Height += 2 * pt.Y
	return r
}

// Expanded returns a copy outset by pt per side.
func (r Rect[T]) Expanded(pt Point[T]) Rect[T] {
	return Rect[T]{
		X:      r.X - pt.X,
		Y:      r.Y - pt.Y,
		Width:  r.Width + 2*pt.X,
		Height: r.Height + 2*pt.Y,
	}
}

// Intersects reports whether the overlap of the two rects has strictly
// positive width and height. Touching edges (zero overlap) do NOT count as
// intersecting.
func (r Rect[T]) Intersects(o Rect[T]) bool {
	return min(r.Right(), o.Right())-max(r.X, o.X) > 0 &&
		min(r.Bottom(), o.Bottom())-max(r.Y, o.Y) > 0
}

// IntersectsPoint reports whether p touches the rect, inclusive of the
// right and bottom edges with the scalar type's epsilon as slack on the
// upper bound (zero for integer types). Note the asymmetry with Intersects,
// which is strict.
func (r Rect[T]) IntersectsPoint(p Point[T]) bool {
	e := epsilon[T]()
	px, py := float64(p.X), float64(p.Y)
	return math.Min(float64(r.Right()), px+e)-math.Max(float64(r.X), px) >= 0 &&
		math.Min(float64(r.Bottom()), py+e)-math.Max(float64(r.Y), py) >= 0
}

// Area returns width*height. It may be negative for improper rects; no
// fix-up is applied.
func (r Rect[T]) Area() T {
	return r.Width * r.Height
}

// Union returns the bounding box covering both rects.
func (r Rect[T]) Union(o Rect[T]) Rect[T] {
	nx := min(r.X, o.X)
	ny := min(r.Y, o.Y)
	return Rect[T]{
		X:      nx,
		Y:      ny,
		Width:  max(r.Right(), o.Right()) - nx,
		Height: max(r.Bottom(), o.Bottom()) - ny,
	}
}

// Merge grows the rect in place to the bounding box of itself and o, and
// returns it for chaining.
func (r *Rect[T]) Merge(o Rect[T]) *Rect[T] {
	*r = r.Union(o)
	return r
}

// Merged returns the bounding box of the rect and o. Same as Union.
func (r Rect[T]) Merged(o Rect[T]) Rect[T] {
	return r.Union(o)
}

// Intersection returns the overlap of the two rects. When the overlap width
// or height would be negative it returns the zero rect {0,0,0,0} — the same
// value as a zero-size overlap at the origin, so callers cannot tell the
// two apart from the result alone.
func (r Rect[T]) Intersection(o Rect[T]) Rect[T] {
	nx := max(r.X, o.X)
	nw := min(r.Right(), o.Right()) - nx
	if nw < 0 {
		return Rect[T]{}
	}
	ny := max(r.Y, o.Y)
	nh := min(r.Bottom(), o.Bottom()) - ny
	if nh < 0 {
		return Rect[T]{}
	}
	return Rect[T]{X: nx, Y: ny, Width: nw, Height: nh}
}

// FittedRect resizes o to this rect's limiting dimension while preserving
// o's aspect ratio, branching on whether this rect is taller than wide.
// This computes a same-aspect size, not a clamp: the result is positioned
// where o was, and is not guaranteed to fit inside o's bounds.
func (r Rect[T]) FittedRect(o Rect[T]) Rect[T] {
	if r.Width < r.Height {
		hRatio := float64(o.Height) / float64(o.Width)
		return o.WithSize(Size[T]{Width: r.Width, Height: T(hRatio * float64(r.Width))})
	}
	wRatio := float64(o.Width) / float64(o.Height)
	return o.WithSize(Size[T]{Width: T(wRatio * float64(r.Height)), Height: r.Height})
}

// Swap exchanges the contents of the two rects.
func (r *Rect[T]) Swap(o *Rect[T]) {
	*r, *o = *o, *r
}

// String renders the rect as {x,y,width,height}.
func (r Rect[T]) String() string {
	return fmt.Sprintf("{%v,%v,%v,%v}", r.X, r.Y, r.Width, r.Height)
}

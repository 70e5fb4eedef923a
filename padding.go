package geom

import "fmt"

// Padding is a 4-sided inset/outset applied to rectangles. The four fields
// are independent insets.
type Padding[T Scalar] struct {
	Top, Left, Bottom, Right T
}

// Pad is a convenience function to create a Padding.
func Pad[T Scalar](top, left, bottom, right T) Padding[T] {
	return Padding[T]{Top: top, Left: left, Bottom: bottom, Right: right}
}

// PadAll creates a Padding with the same inset on all four sides.
func PadAll[T Scalar](v T) Padding[T] {
	return Padding[T]{Top: v, Left: v, Bottom: v, Right: v}
}

// InsideRect shrinks r by the four insets: the origin moves by {left,top}
// and the size loses {left+right, top+bottom}.
func (p Padding[T]) InsideRect(r Rect[T]) Rect[T] {
	return Rect[T]{
		X:      r.X + p.Left,
		Y:      r.Y + p.Top,
		Width:  r.Width - (p.Left + p.Right),
		Height: r.Height - (p.Top + p.Bottom),
	}
}

// OutsideRect expands r by the four insets; the inverse of InsideRect.
func (p Padding[T]) OutsideRect(r Rect[T]) Rect[T] {
	return Rect[T]{
		X:      r.X - p.Left,
		Y:      r.Y - p.Top,
		Width:  r.Width + p.Left + p.Right,
		Height: r.Height + p.Top + p.Bottom,
	}
}

// Empty reports whether all four insets are exactly zero.
func (p Padding[T]) Empty() bool {
	return p.Top == 0 && p.Left == 0 && p.Bottom == 0 && p.Right == 0
}

// Eq reports whether two paddings are exactly equal.
func (p Padding[T]) Eq(o Padding[T]) bool {
	return p.Top == o.Top && p.Left == o.Left && p.Bottom == o.Bottom && p.Right == o.Right
}

// String renders the padding as {top,left,bottom,right}.
func (p Padding[T]) String() string {
	return fmt.Sprintf("{%v,%v,%v,%v}", p.Top, p.Left, p.Bottom, p.Right)
}

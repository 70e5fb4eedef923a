package geom

// Structural conversion.
//
// Foreign aggregate types are recognized by their exact field layout, not by
// methods or registration. Each recognized convention is a generic
// constraint whose type set is a single struct shape; a foreign type whose
// underlying type matches the shape satisfies the constraint and converts
// both ways, and a type matching no convention fails to compile as a
// conversion argument. Because constraints match the full field set
// exactly, the exclusion rules of the conventions are total: a type with
// the four-field rect layout can never be taken for a bare two-field point,
// and a type spelling its dimensions both ways (Width/Height and W/H) has a
// layout that matches neither convention and is rejected outright.
//
// Conversions cast no scalars: the foreign type's component type is carried
// through. Use ConvertPoint and friends to move between scalar types
// (silent truncation, per Go conversion semantics).

// PointXY is the layout convention for point-like types: two scalar fields
// X and Y. image.Point satisfies PointXY[int].
type PointXY[T Scalar] interface {
	~struct{ X, Y T }
}

// SizeWH is the layout convention for size-like types with long field
// names.
type SizeWH[T Scalar] interface {
	~struct{ Width, Height T }
}

// SizeWHShort is the layout convention for size-like types with short
// field names.
type SizeWHShort[T Scalar] interface {
	~struct{ W, H T }
}

// RectOriginSize is the layout convention for rect-like types composed of
// an origin point and a size, each an inline struct.
type RectOriginSize[T Scalar] interface {
	~struct {
		Origin struct{ X, Y T }
		Size   struct{ Width, Height T }
	}
}

// RectXYWH is the layout convention for rect-like types with position and
// dimensions as four flat fields. Rect itself has this layout.
type RectXYWH[T Scalar] interface {
	~struct{ X, Y, Width, Height T }
}

// RectXYWHShort is the four-flat-field convention with short dimension
// names.
type RectXYWHShort[T Scalar] interface {
	~struct{ X, Y, W, H T }
}

// RectLTRB is the layout convention for rect-like types stored as four
// edge coordinates. Width and height are derived as right-left and
// bottom-top; left <= right and top <= bottom are assumed, not enforced.
type RectLTRB[T Scalar] interface {
	~struct{ Left, Top, Right, Bottom T }
}

// PointFrom converts any point-shaped value to a Point.
func PointFrom[P PointXY[T], T Scalar](p P) Point[T] {
	v := (struct{ X, Y T })(p)
	return Point[T]{X: v.X, Y: v.Y}
}

// PointAs converts a Point to any point-shaped type:
//
//	ip := geom.PointAs[image.Point](geom.Pt(3, 4))
func PointAs[P PointXY[T], T Scalar](p Point[T]) P {
	return P(struct{ X, Y T }{p.X, p.Y})
}

// SizeFrom converts any size-shaped value with long field names to a Size.
func SizeFrom[S SizeWH[T], T Scalar](s S) Size[T] {
	v := (struct{ Width, Height T })(s)
	return Size[T]{Width: v.Width, Height: v.Height}
}

// SizeAs converts a Size to any size-shaped type with long field names.
func SizeAs[S SizeWH[T], T Scalar](s Size[T]) S {
	return S(struct{ Width, Height T }{s.Width, s.Height})
}

// SizeFromShort converts any size-shaped value with short field names to a
// Size.
func SizeFromShort[S SizeWHShort[T], T Scalar](s S) Size[T] {
	v := (struct{ W, H T })(s)
	return Size[T]{Width: v.W, Height: v.H}
}

// SizeAsShort converts a Size to any size-shaped type with short field
// names.
func SizeAsShort[S SizeWHShort[T], T Scalar](s Size[T]) S {
	return S(struct{ W, H T }{s.Width, s.Height})
}

// RectFromOriginSize converts any origin+size shaped value to a Rect.
func RectFromOriginSize[R RectOriginSize[T], T Scalar](r R) Rect[T] {
	v := (struct {
		Origin struct{ X, Y T }
		Size   struct{ Width, Height T }
	})(r)
	return Rect[T]{X: v.Origin.X, Y: v.Origin.Y, Width: v.Size.Width, Height: v.Size.Height}
}

// RectAsOriginSize converts a Rect to any origin+size shaped type.
func RectAsOriginSize[R RectOriginSize[T], T Scalar](r Rect[T]) R {
	return R(struct {
		Origin struct{ X, Y T }
		Size   struct{ Width, Height T }
	}{
		Origin: struct{ X, Y T }{r.X, r.Y},
		Size:   struct{ Width, Height T }{r.Width, r.Height},
	})
}

// RectFromXYWH converts any x/y/width/height shaped value to a Rect.
func RectFromXYWH[R RectXYWH[T], T Scalar](r R) Rect[T] {
	v := (struct{ X, Y, Width, Height T })(r)
	return Rect[T]{X: v.X, Y: v.Y, Width: v.Width, Height: v.Height}
}

// RectAsXYWH converts a Rect to any x/y/width/height shaped type.
func RectAsXYWH[R RectXYWH[T], T Scalar](r Rect[T]) R {
	return R(struct{ X, Y, Width, Height T }{r.X, r.Y, r.Width, r.Height})
}

// RectFromXYWHShort converts any x/y/w/h shaped value to a Rect.
func RectFromXYWHShort[R RectXYWHShort[T], T Scalar](r R) Rect[T] {
	v := (struct{ X, Y, W, H T })(r)
	return Rect[T]{X: v.X, Y: v.Y, Width: v.W, Height: v.H}
}

// RectAsXYWHShort converts a Rect to any x/y/w/h shaped type.
func RectAsXYWHShort[R RectXYWHShort[T], T Scalar](r Rect[T]) R {
	return R(struct{ X, Y, W, H T }{r.X, r.Y, r.Width, r.Height})
}

// RectFromLTRB converts any left/top/right/bottom shaped value to a Rect:
// width = right-left, height = bottom-top.
func RectFromLTRB[R RectLTRB[T], T Scalar](r R) Rect[T] {
	v := (struct{ Left, Top, Right, Bottom T })(r)
	return Rect[T]{X: v.Left, Y: v.Top, Width: v.Right - v.Left, Height: v.Bottom - v.Top}
}

// RectAsLTRB converts a Rect to any left/top/right/bottom shaped type.
func RectAsLTRB[R RectLTRB[T], T Scalar](r Rect[T]) R {
	return R(struct{ Left, Top, Right, Bottom T }{r.X, r.Y, r.X + r.Width, r.Y + r.Height})
}

// ConvertPoint converts a Point between scalar types. Narrowing truncates
// per Go conversion semantics; there is no bounds check.
func ConvertPoint[T, U Scalar](p Point[U]) Point[T] {
	return Point[T]{X: T(p.X), Y: T(p.Y)}
}

// ConvertSize converts a Size between scalar types.
func ConvertSize[T, U Scalar](s Size[U]) Size[T] {
	return Size[T]{Width: T(s.Width), Height: T(s.Height)}
}

// ConvertRect converts a Rect between scalar types.
func ConvertRect[T, U Scalar](r Rect[U]) Rect[T] {
	return Rect[T]{X: T(r.X), Y: T(r.Y), Width: T(r.Width), Height: T(r.Height)}
}

// ConvertRange converts a Range between scalar types.
func ConvertRange[T, U Scalar](r Range[U]) Range[T] {
	return Range[T]{Start: T(r.Start), End: T(r.End)}
}

// ConvertPadding converts a Padding between scalar types.
func ConvertPadding[T, U Scalar](p Padding[U]) Padding[T] {
	return Padding[T]{Top: T(p.Top), Left: T(p.Left), Bottom: T(p.Bottom), Right: T(p.Right)}
}

// ConvertQuad converts a Quad between scalar types.
func ConvertQuad[T, U Scalar](q Quad[U]) Quad[T] {
	return Quad[T]{
		TopLeft:     ConvertPoint[T](q.TopLeft),
		TopRight:    ConvertPoint[T](q.TopRight),
		BottomRight: ConvertPoint[T](q.BottomRight),
		BottomLeft:  ConvertPoint[T](q.BottomLeft),
	}
}

// ConvertTransform converts a Transform between floating-point types.
func ConvertTransform[T, U Float](t Transform[U]) Transform[T] {
	return Transform[T]{
		A: T(t.A), B: T(t.B), C: T(t.C),
		D: T(t.D), TX: T(t.TX), TY: T(t.TY),
	}
}

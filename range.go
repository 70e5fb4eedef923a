package geom

import "fmt"

// Range is a general-purpose 1D interval with a start and end value.
// Start <= End is not enforced; sortedness is a queryable property, and
// Length may be negative.
type Range[T Scalar] struct {
	Start, End T
}

// Rg is a convenience function to create a Range.
func Rg[T Scalar](start, end T) Range[T] {
	return Range[T]{Start: start, End: end}
}

// RangeWithLength creates a range from a start position and a length.
func RangeWithLength[T Scalar](start, length T) Range[T] {
	return Range[T]{Start: start, End: start + length}
}

// Length returns the signed length of the range (End - Start).
func (r Range[T]) Length() T {
	return r.End - r.Start
}

// Middle returns the midpoint of the range.
func (r Range[T]) Middle() T {
	return T(float64(r.Start) + float64(r.End-r.Start)*half)
}

// IsSorted reports whether Start <= End.
func (r Range[T]) IsSorted() bool {
	return r.Start <= r.End
}

// IsSymmetric reports whether the range is symmetric around zero
// (Start == -End), tolerant for floating-point instantiations.
func (r Range[T]) IsSymmetric() bool {
	return Near(r.Start, -r.End)
}

// Contains reports whether x lies inside the closed interval [Start, End].
func (r Range[T]) Contains(x T) bool {
	return x >= r.Start && x <= r.End
}

// ContainsClosed is the same as Contains.
func (r Range[T]) ContainsClosed(x T) bool {
	return x >= r.Start && x <= r.End
}

// ContainsOpened reports whether x lies inside the open interval
// (Start, End).
func (r Range[T]) ContainsOpened(x T) bool {
	return x > r.Start && x < r.End
}

// ContainsLeftOpened reports whether x lies inside (Start, End].
func (r Range[T]) ContainsLeftOpened(x T) bool {
	return x > r.Start && x <= r.End
}

// ContainsRightOpened reports whether x lies inside [Start, End).
func (r Range[T]) ContainsRightOpened(x T) bool {
	return x >= r.Start && x < r.End
}

// ContainsRange reports whether both endpoints of o lie inside this range
// (closed on both sides). This is endpoint containment, not interval-subset
// logic adjusted for sort order: if o is unsorted the result may be
// surprising.
func (r Range[T]) ContainsRange(o Range[T]) bool {
	return r.Contains(o.Start) && r.Contains(o.End)
}

// ClippedValue clamps x into [Start, End], assuming Start <= End. An
// unsorted range clamps with Start as the lower bound and End as the upper
// bound regardless of their numeric order.
func (r Range[T]) ClippedValue(x T) T {
	t := x
	if t < r.Start {
		t = r.Start
	}
	if t > r.End {
		return r.End
	}
	return t
}

// Sort swaps Start and End in place if the range is unsorted, and returns
// the range for chaining.
func (r *Range[T]) Sort() *Range[T] {
	if !r.IsSorted() {
		r.Start, r.End = r.End, r.Start
	}
	return r
}

// WithStart returns a copy of the range with a new start position.
func (r Range[T]) WithStart(s T) Range[T] {
	return Range[T]{Start: s, End: r.End}
}

// WithEnd returns a copy of the range with a new end position.
func (r Range[T]) WithEnd(e T) Range[T] {
	return Range[T]{Start: r.Start, End: e}
}

// WithShiftedStart returns a copy with the start position shifted by delta.
func (r Range[T]) WithShiftedStart(delta T) Range[T] {
	return Range[T]{Start: r.Start + delta, End: r.End}
}

// WithShiftedEnd returns a copy with the end position shifted by delta.
func (r Range[T]) WithShiftedEnd(delta T) Range[T] {
	return Range[T]{Start: r.Start, End: r.End + delta}
}

// WithLength returns a copy keeping Start with the given length.
func (r Range[T]) WithLength(length T) Range[T] {
	return Range[T]{Start: r.Start, End: r.Start + length}
}

// WithShift returns a copy with both endpoints shifted by delta
// (length preserved).
func (r Range[T]) WithShift(delta T) Range[T] {
	return Range[T]{Start: r.Start + delta, End: r.End + delta}
}

// WithMove returns a copy moved to a new start position, keeping length.
func (r Range[T]) WithMove(s T) Range[T] {
	return Range[T]{Start: s, End: s + r.Length()}
}

// SetStart moves the start position and returns the range for chaining.
func (r *Range[T]) SetStart(s T) *Range[T] {
	r.Start = s
	return r
}

// SetEnd moves the end position and returns the range for chaining.
func (r *Range[T]) SetEnd(e T) *Range[T] {
	r.End = e
	return r
}

// MoveTo moves the range to a new start position keeping its length.
func (r *Range[T]) MoveTo(s T) *Range[T] {
	length := r.Length()
	r.Start = s
	r.End = s + length
	return r
}

// Shift moves both endpoints by delta, keeping the length.
func (r *Range[T]) Shift(delta T) *Range[T] {
	r.Start += delta
	r.End += delta
	return r
}

// ShiftStart moves the start position by delta.
func (r *Range[T]) ShiftStart(delta T) *Range[T] {
	r.Start += delta
	return r
}

// ShiftEnd moves the end position by delta.
func (r *Range[T]) ShiftEnd(delta T) *Range[T] {
	r.End += delta
	return r
}

// SetLength changes the length of the range, keeping Start.
func (r *Range[T]) SetLength(length T) *Range[T] {
	r.End = r.Start + length
	return r
}

// Eq reports whether two ranges are equal, tolerant for floating-point
// instantiations.
func (r Range[T]) Eq(o Range[T]) bool {
	return Near(r.Start, o.Start) && Near(r.End, o.End)
}

// Less orders ranges by Start (tolerant compare for floats), tie-broken by
// length. The ordering assumes sorted ranges.
func (r Range[T]) Less(o Range[T]) bool {
	if Near(r.Start, o.Start) {
		return r.Length() < o.Length()
	}
	return r.Start < o.Start
}

// LessEq orders ranges by Start, tie-broken by length.
func (r Range[T]) LessEq(o Range[T]) bool {
	if Near(r.Start, o.Start) {
		return r.Length() <= o.Length()
	}
	return r.Start <= o.Start
}

// Greater orders ranges by Start, tie-broken by length.
func (r Range[T]) Greater(o Range[T]) bool {
	if Near(r.Start, o.Start) {
		return r.Length() > o.Length()
	}
	return r.Start > o.Start
}

// GreaterEq orders ranges by Start, tie-broken by length.
func (r Range[T]) GreaterEq(o Range[T]) bool {
	if Near(r.Start, o.Start) {
		return r.Length() >= o.Length()
	}
	return r.Start >= o.Start
}

// String renders the range as {start,end}.
func (r Range[T]) String() string {
	return fmt.Sprintf("{%v,%v}", r.Start, r.End)
}

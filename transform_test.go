package geom

import (
	"math"
	"testing"
)

// Composition tests accumulate a few ulps of error, so they compare with a
// fixed tolerance instead of Eq.
const transformTestEps = 1e-9

func pointsClose(a, b Point[float64]) bool {
	return math.Abs(a.X-b.X) < transformTestEps && math.Abs(a.Y-b.Y) < transformTestEps
}

func TestIdentity(t *testing.T) {
	id := Identity[float64]()
	points := []Point[float64]{Pt(0.0, 0.0), Pt(1.0, 2.0), Pt(-3.5, 4.25), Pt(1e6, -1e6)}
	for _, p := range points {
		if got := id.Apply(p); !got.Eq(p) {
			t.Errorf("Identity().Apply(%v) = %v", p, got)
		}
	}
}

func TestTranslation(t *testing.T) {
	tr := Translation(Pt(10.0, 10.0))
	if got := tr.Apply(Pt(0.0, 0.0)); !got.Eq(Pt(10.0, 10.0)) {
		t.Errorf("Translation({10,10}).Apply({0,0}) = %v", got)
	}
	if got := tr.Apply(Pt(-10.0, -10.0)); !got.Eq(Pt(0.0, 0.0)) {
		t.Errorf("Translation({10,10}).Apply({-10,-10}) = %v", got)
	}
}

func TestScaling(t *testing.T) {
	sc := Scaling(Sz(2.0, 3.0))
	if got := sc.Apply(Pt(5.0, 6.0)); !got.Eq(Pt(10.0, 18.0)) {
		t.Errorf("Scaling({2,3}).Apply({5,6}) = %v", got)
	}
	if got := sc.Apply(Pt(0.0, 0.0)); !got.Eq(Pt(0.0, 0.0)) {
		t.Errorf("scaling must fix the origin, got %v", got)
	}
}

func TestRotation(t *testing.T) {
	rot := Rotation(math.Pi / 2)
	if got := rot.Apply(Pt(1.0, 0.0)); !pointsClose(got, Pt(0.0, 1.0)) {
		t.Errorf("quarter turn of {1,0} = %v, want {0,1}", got)
	}
	if got := rot.Apply(Pt(0.0, 1.0)); !pointsClose(got, Pt(-1.0, 0.0)) {
		t.Errorf("quarter turn of {0,1} = %v, want {-1,0}", got)
	}
	if got := Rotation(0.0); !got.Eq(Identity[float64]()) {
		t.Errorf("Rotation(0) = %v, want identity", got)
	}
}

func TestRotationAround(t *testing.T) {
	pivot := Pt(10.0, 10.0)
	rot := RotationAround(math.Pi, pivot)
	if got := rot.Apply(pivot); !pointsClose(got, pivot) {
		t.Errorf("pivot must be fixed, got %v", got)
	}
	if got := rot.Apply(Pt(0.0, 0.0)); !pointsClose(got, Pt(20.0, 20.0)) {
		t.Errorf("half turn of {0,0} about {10,10} = %v, want {20,20}", got)
	}
	// The corners of {0,0,10,10} land on the opposite side of the pivot.
	q := rot.ApplyRect(NewRect(0.0, 0.0, 10.0, 10.0))
	if !pointsClose(q.TopLeft, Pt(20.0, 20.0)) {
		t.Errorf("rotated top-left = %v, want {20,20}", q.TopLeft)
	}
	if !pointsClose(q.BottomRight, pivot) {
		t.Errorf("rotated bottom-right = %v, want {10,10}", q.BottomRight)
	}
}

func TestMulComposes(t *testing.T) {
	transforms := []struct {
		name   string
		t1, t2 Transform[float64]
	}{
		{"translate then rotate", Rotation(0.7), Translation(Pt(3.0, -2.0))},
		{"rotate then translate", Translation(Pt(3.0, -2.0)), Rotation(0.7)},
		{"scale then rotate", Rotation(-1.3), Scaling(Sz(2.0, 3.0))},
		{"mixed chain", Translation(Pt(1.0, 2.0)).Mul(Rotation(0.5)), Scaling(Sz(0.5, 4.0)).Mul(Translation(Pt(-7.0, 0.25)))},
	}
	points := []Point[float64]{Pt(0.0, 0.0), Pt(1.0, 0.0), Pt(-2.5, 3.75), Pt(100.0, -40.0)}
	for _, tc := range transforms {
		t.Run(tc.name, func(t *testing.T) {
			composed := tc.t1.Mul(tc.t2)
			for _, p := range points {
				want := tc.t1.Apply(tc.t2.Apply(p))
				if got := composed.Apply(p); !pointsClose(got, want) {
					t.Errorf("t1.Mul(t2).Apply(%v) = %v, want %v", p, got, want)
				}
			}
		})
	}
}

func TestMulIdentityIsNeutral(t *testing.T) {
	tr := Translation(Pt(3.0, -2.0)).Mul(Rotation(0.7)).Mul(Scaling(Sz(2.0, 0.5)))
	id := Identity[float64]()
	if got := tr.Mul(id); !got.Eq(tr) {
		t.Errorf("t.Mul(identity) = %v, want %v", got, tr)
	}
	if got := id.Mul(tr); !got.Eq(tr) {
		t.Errorf("identity.Mul(t) = %v, want %v", got, tr)
	}
}

func TestMulSize(t *testing.T) {
	tr := Translation(Pt(3.0, -2.0)).Mul(Rotation(0.7))
	s := Sz(2.0, 3.0)
	scaled := tr.MulSize(s)
	if scaled.TX != tr.TX || scaled.TY != tr.TY {
		t.Error("MulSize must leave the translation untouched")
	}
	points := []Point[float64]{Pt(0.0, 0.0), Pt(1.0, 1.0), Pt(-4.0, 2.5)}
	for _, p := range points {
		want := tr.Apply(p.Mul(Pt(s.Width, s.Height)))
		if got := scaled.Apply(p); !pointsClose(got, want) {
			t.Errorf("MulSize mismatch at %v: got %v, want %v", p, got, want)
		}
	}
}

func TestAddTranslation(t *testing.T) {
	tr := Translation(Pt(3.0, -2.0)).Mul(Rotation(0.7))
	d := Pt(5.0, -1.5)
	shifted := tr.AddTranslation(d)
	points := []Point[float64]{Pt(0.0, 0.0), Pt(1.0, 1.0), Pt(-4.0, 2.5)}
	for _, p := range points {
		want := tr.Apply(p.Add(d))
		if got := shifted.Apply(p); !pointsClose(got, want) {
			t.Errorf("AddTranslation mismatch at %v: got %v, want %v", p, got, want)
		}
	}
	if got := tr.AddTranslation(d).SubTranslation(d); !got.Eq(tr) {
		t.Errorf("SubTranslation should invert AddTranslation, got %v", got)
	}
}

func TestWithVariantsMatchOperators(t *testing.T) {
	tr := Translation(Pt(3.0, -2.0)).Mul(Rotation(0.7))
	if got, want := tr.WithTranslation(Pt(1.0, 2.0)), tr.AddTranslation(Pt(1.0, 2.0)); !got.Eq(want) {
		t.Errorf("WithTranslation = %v, want %v", got, want)
	}
	if got, want := tr.WithScale(Sz(2.0, 3.0)), tr.MulSize(Sz(2.0, 3.0)); !got.Eq(want) {
		t.Errorf("WithScale = %v, want %v", got, want)
	}
	if got, want := tr.WithRotation(0.4), tr.Mul(Rotation(0.4)); !got.Eq(want) {
		t.Errorf("WithRotation = %v, want %v", got, want)
	}
}

func TestTransformChaining(t *testing.T) {
	chained := Identity[float64]()
	chained.Translate(Pt(3.0, -2.0)).Rotate(0.7).ScaleBy(Sz(2.0, 3.0))
	want := Identity[float64]().
		AddTranslation(Pt(3.0, -2.0)).
		Mul(Rotation(0.7)).
		MulSize(Sz(2.0, 3.0))
	if !chained.Eq(want) {
		t.Errorf("chained = %v, want %v", chained, want)
	}
}

func TestApplyRect(t *testing.T) {
	tr := Translation(Pt(5.0, 5.0))
	q := tr.ApplyRect(NewRect(0.0, 0.0, 10.0, 10.0))
	want := QuadFromRect(NewRect(5.0, 5.0, 10.0, 10.0))
	if !q.Eq(want) {
		t.Errorf("ApplyRect = %v, want %v", q, want)
	}
}

func TestApplyQuad(t *testing.T) {
	q := QuadFromRect(NewRect(0.0, 0.0, 2.0, 2.0))
	got := Scaling(Sz(3.0, 3.0)).ApplyQuad(q)
	want := QuadFromRect(NewRect(0.0, 0.0, 6.0, 6.0))
	if !got.Eq(want) {
		t.Errorf("ApplyQuad = %v, want %v", got, want)
	}
}

func TestTransformFreeFunctions(t *testing.T) {
	tr := Translation(Pt(1.0, 2.0))
	p := Pt(3.0, 4.0)
	if got := TransformPoint(p, tr); !got.Eq(tr.Apply(p)) {
		t.Errorf("TransformPoint = %v", got)
	}
	r := NewRect(0.0, 0.0, 1.0, 1.0)
	if got := TransformRect(r, tr); !got.Eq(tr.ApplyRect(r)) {
		t.Errorf("TransformRect = %v", got)
	}
	q := QuadFromRect(r)
	if got := TransformQuad(q, tr); !got.Eq(tr.ApplyQuad(q)) {
		t.Errorf("TransformQuad = %v", got)
	}
}

func TestTransformString(t *testing.T) {
	tr := Transform[float64]{A: 1, B: 2, C: 3, D: 4, TX: 5, TY: 6}
	if got := tr.String(); got != "{1,2,3,4,5,6}" {
		t.Errorf("String() = %q, want %q", got, "{1,2,3,4,5,6}")
	}
}

func TestTransformFloat32(t *testing.T) {
	tr := Translation(Pt[float32](10, 20))
	if got := tr.Apply(Pt[float32](1, 2)); !got.Eq(Pt[float32](11, 22)) {
		t.Errorf("float32 Translation.Apply = %v", got)
	}
}

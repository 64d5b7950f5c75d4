package floateq

import (
	"math"
	"testing"

	"github.com/go-quicktest/qt"
)

func TestComplex(t *testing.T) {
	a, b := Complex128(1+2i), Complex128(1.5+2i)

	qt.Assert(t, qt.IsTrue(a.EqAbs(b, Complex[float64]{Re: 0.5})))
	qt.Assert(t, qt.IsFalse(a.EqAbs(b, Complex[float64]{Re: 0.25, Im: 1})))
	qt.Assert(t, qt.IsTrue(a.EqAbsAll(b, 0.5)))
	qt.Assert(t, qt.IsFalse(a.EqAbsAll(b, 0.25)))
	qt.Assert(t, qt.IsFalse(a.EqUlpsAll(b, 0)))
	qt.Assert(t, qt.IsTrue(a.EqUlps(Complex[float64]{Re: 1, Im: 2}, ComplexUlps{})))

	c := Complex[float64]{Re: 1, Im: 1}
	d := Complex[float64]{Re: oneUp, Im: 1}
	qt.Assert(t, qt.IsTrue(c.EqUlps(d, ComplexUlps{Re: 1})))
	qt.Assert(t, qt.IsFalse(c.EqUlps(d, ComplexUlps{Im: 1})))

	qt.Assert(t, qt.Equals(a.DebugAbsDiff(b), Complex[float64]{Re: 0.5}))
	qt.Assert(t, qt.Equals(c.DebugUlpsDiff(d), ComplexUlpsDiff{
		Re: UlpsDiff{Diff: 1, Valid: true},
		Im: UlpsDiff{Diff: 0, Valid: true},
	}))
	qt.Assert(t, qt.Equals(
		Complex[float64]{Re: 2, Im: 1}.DebugRmaxAllEpsilon(Complex[float64]{Re: 4, Im: -1}, 0.5),
		Complex[float64]{Re: 2, Im: 0.5},
	))
	qt.Assert(t, qt.Equals(a.DebugUlpsAllEpsilon(b, 3), ComplexUlps{Re: 3, Im: 3}))
	qt.Assert(t, qt.Equals(a.Complex128(), 1+2i))
}

func TestComplex64(t *testing.T) {
	a, b := Complex64(1+1i), Complex64(1+1.25i)
	qt.Assert(t, qt.IsTrue(a.EqRminAll(b, 0.25)))
	qt.Assert(t, qt.IsFalse(a.EqRminAll(b, 0.125)))
	qt.Assert(t, qt.Equals(a.DebugAbsDiff(b), Complex[float32]{Re: 0, Im: 0.25}))
}

func TestSlice(t *testing.T) {
	a := Slice[float64]{1, 2}
	b := Slice[float64]{1, 2.5}

	qt.Assert(t, qt.IsTrue(a.EqAbs(b, Slice[float64]{0, 0.5})))
	qt.Assert(t, qt.IsFalse(a.EqAbs(b, Slice[float64]{0.5, 0})))
	qt.Assert(t, qt.IsTrue(a.EqAbsAll(b, 0.5)))
	qt.Assert(t, qt.IsTrue(a.EqRmaxAll(b, 0.25)))
	qt.Assert(t, qt.IsFalse(a.EqR1stAll(b, 0.125)))
	qt.Assert(t, qt.IsTrue(a.EqUlps(a, []uint64{0, 0})))

	// Length mismatches never compare equal and have no debug values.
	qt.Assert(t, qt.IsFalse(a.EqAbsAll(Slice[float64]{1}, 10)))
	qt.Assert(t, qt.IsFalse(a.EqAbs(b, Slice[float64]{1})))
	qt.Assert(t, qt.IsNil(a.DebugAbsDiff(Slice[float64]{1})))
	qt.Assert(t, qt.IsNil(a.DebugAbsEpsilon(b, Slice[float64]{1})))

	qt.Assert(t, qt.DeepEquals(a.DebugAbsDiff(b), Slice[float64]{0, 0.5}))
	qt.Assert(t, qt.DeepEquals(a.DebugRmaxAllEpsilon(b, 0.5), Slice[float64]{0.5, 1.25}))
	qt.Assert(t, qt.DeepEquals(a.DebugUlpsDiff(b), []UlpsDiff{
		{Diff: 0, Valid: true},
		{Diff: 1 << 50, Valid: true},
	}))
}

func TestMap(t *testing.T) {
	a := Map[string, float64]{"x": 1, "y": 2}
	b := Map[string, float64]{"x": 1, "y": 2.5}

	qt.Assert(t, qt.IsTrue(a.EqAbsAll(b, 0.5)))
	qt.Assert(t, qt.IsFalse(a.EqAbsAll(b, 0.25)))
	qt.Assert(t, qt.IsTrue(a.EqAbs(b, Map[string, float64]{"x": 0, "y": 0.5})))
	qt.Assert(t, qt.IsFalse(a.EqAbs(b, Map[string, float64]{"y": 0.5})))

	// The epsilon must have exactly the keys of the values, as the debug
	// methods require.
	stray := Map[string, float64]{"x": 0, "y": 0.5, "stray": 0}
	qt.Assert(t, qt.IsFalse(a.EqAbs(b, stray)))
	qt.Assert(t, qt.IsNil(a.DebugAbsEpsilon(b, stray)))
	qt.Assert(t, qt.IsFalse(a.EqUlps(b, map[string]uint64{"x": math.MaxUint64, "y": math.MaxUint64, "stray": 0})))
	qt.Assert(t, qt.IsFalse(Eq(a, b, Abs(stray))))
	qt.Assert(t, qt.IsTrue(a.EqUlps(a, map[string]uint64{"x": 0, "y": 0})))

	qt.Assert(t, qt.IsFalse(a.EqAbsAll(Map[string, float64]{"x": 1, "z": 2}, 10)))
	qt.Assert(t, qt.IsNil(a.DebugAbsDiff(Map[string, float64]{"x": 1})))

	qt.Assert(t, qt.DeepEquals(a.DebugAbsDiff(b), Map[string, float64]{"x": 0, "y": 0.5}))
	qt.Assert(t, qt.DeepEquals(a.DebugUlpsAllEpsilon(b, 2), map[string]uint64{"x": 2, "y": 2}))
}

func TestEachHelpers(t *testing.T) {
	a := []float32{1, 2, 3}
	b := []float32{1, 2, 3.5}

	qt.Assert(t, qt.IsTrue(EqEachAll(a, b, float32(0.5), EqAbs[float32])))
	qt.Assert(t, qt.IsFalse(EqEach(a, b, []float32{0.5, 0.5}, EqAbs[float32])))
	qt.Assert(t, qt.DeepEquals(MapPairs(a, b, DebugAbsDiff[float32]), []float32{0, 0, 0.5}))
	qt.Assert(t, qt.DeepEquals(MapEachAll(a, b, uint64(4), DebugUlpsEpsilon[float32]), []uint64{4, 4, 4}))
	qt.Assert(t, qt.IsNil(MapEach(a, b, []uint64{1}, DebugUlpsEpsilon[float32])))
}

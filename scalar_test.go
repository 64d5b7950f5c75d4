package floateq

import (
	"math"
	"testing"

	"github.com/go-quicktest/qt"
)

type meters float32

var (
	nan    = math.NaN()
	inf    = math.Inf(1)
	negZ   = math.Copysign(0, -1)
	oneUp  = math.Nextafter(1, 2)
	oneUp2 = math.Nextafter(oneUp, 2)
)

func TestEqAbs(t *testing.T) {
	qt.Assert(t, qt.IsTrue(EqAbs(1.0, 1.5, 0.5)))
	qt.Assert(t, qt.IsFalse(EqAbs(1.0, 1.5, 0.25)))
	qt.Assert(t, qt.IsTrue(EqAbs(-1.0, -1.5, 0.5)))
	qt.Assert(t, qt.IsTrue(EqAbs(3.0, 3.0, 0)))
	qt.Assert(t, qt.IsTrue(EqAbs(0, negZ, 0)))
}

func TestRelativeAlgorithms(t *testing.T) {
	// |2-4| = 2, so only checks scaled by 4 pass.
	qt.Assert(t, qt.IsTrue(EqRmax(2.0, 4.0, 0.5)))
	qt.Assert(t, qt.IsTrue(EqRel(2.0, 4.0, 0.5)))
	qt.Assert(t, qt.IsFalse(EqRmin(2.0, 4.0, 0.5)))
	qt.Assert(t, qt.IsFalse(EqR1st(2.0, 4.0, 0.5)))
	qt.Assert(t, qt.IsTrue(EqR2nd(2.0, 4.0, 0.5)))

	qt.Assert(t, qt.IsTrue(EqRmin(2.0, 4.0, 1)))
	qt.Assert(t, qt.IsTrue(EqR1st(4.0, 2.0, 0.5)))
	qt.Assert(t, qt.IsFalse(EqR2nd(4.0, 2.0, 0.5)))
}

func TestEqUlps(t *testing.T) {
	qt.Assert(t, qt.IsTrue(EqUlps(1.0, oneUp, 1)))
	qt.Assert(t, qt.IsFalse(EqUlps(1.0, oneUp, 0)))
	qt.Assert(t, qt.IsTrue(EqUlps(oneUp2, 1.0, 2)))
	qt.Assert(t, qt.IsTrue(EqUlps(-1.0, -oneUp, 1)))
	qt.Assert(t, qt.IsTrue(EqUlps(0, negZ, 0)))
	qt.Assert(t, qt.IsFalse(EqUlps(-1.0, 1.0, math.MaxUint64)))

	one32 := float32(1)
	qt.Assert(t, qt.IsTrue(EqUlps(one32, math.Nextafter32(one32, 2), 1)))
	qt.Assert(t, qt.IsFalse(EqUlps(one32, math.Nextafter32(one32, 2), 0)))
}

func TestSpecialValues(t *testing.T) {
	algorithms := map[string]func(a, b, eps float64) bool{
		"abs":  EqAbs[float64],
		"rmax": EqRmax[float64],
		"rmin": EqRmin[float64],
		"r1st": EqR1st[float64],
		"r2nd": EqR2nd[float64],
		"ulps": func(a, b, eps float64) bool { return EqUlps(a, b, math.MaxUint64) },
	}
	for name, eq := range algorithms {
		t.Run(name, func(t *testing.T) {
			qt.Assert(t, qt.IsFalse(eq(nan, nan, inf)))
			qt.Assert(t, qt.IsFalse(eq(nan, 1, inf)))
			qt.Assert(t, qt.IsFalse(eq(1, nan, inf)))
			qt.Assert(t, qt.IsTrue(eq(inf, inf, 0)))
			qt.Assert(t, qt.IsTrue(eq(-inf, -inf, 0)))
			qt.Assert(t, qt.IsFalse(eq(inf, -inf, 0)))
			qt.Assert(t, qt.IsTrue(eq(0, negZ, 0)))
		})
	}
}

func TestNamedFloatType(t *testing.T) {
	qt.Assert(t, qt.IsTrue(EqAbs(meters(1), meters(1.5), meters(0.5))))
	next := meters(math.Nextafter32(1, 2))
	qt.Assert(t, qt.IsTrue(EqUlps(meters(1), next, 1)))
	qt.Assert(t, qt.Equals(DebugUlpsDiff(meters(1), next), UlpsDiff{Diff: 1, Valid: true}))
}

func TestDebugHelpers(t *testing.T) {
	qt.Assert(t, qt.Equals(DebugAbsDiff(1.0, 1.5), 0.5))
	qt.Assert(t, qt.Equals(DebugAbsDiff(1.5, 1.0), 0.5))

	qt.Assert(t, qt.Equals(DebugUlpsDiff(1.0, oneUp2), UlpsDiff{Diff: 2, Valid: true}))
	qt.Assert(t, qt.Equals(DebugUlpsDiff(1.0, 2.0), UlpsDiff{Diff: 1 << 52, Valid: true}))
	qt.Assert(t, qt.Equals(DebugUlpsDiff(0, negZ), UlpsDiff{Diff: 0, Valid: true}))
	qt.Assert(t, qt.Equals(DebugUlpsDiff(-1.0, 1.0), UlpsDiff{}))
	qt.Assert(t, qt.Equals(DebugUlpsDiff(nan, 1.0), UlpsDiff{}))

	qt.Assert(t, qt.Equals(DebugAbsEpsilon(2.0, 4.0, 0.5), 0.5))
	qt.Assert(t, qt.Equals(DebugRmaxEpsilon(2.0, -4.0, 0.5), 2.0))
	qt.Assert(t, qt.Equals(DebugRelEpsilon(2.0, -4.0, 0.5), 2.0))
	qt.Assert(t, qt.Equals(DebugRminEpsilon(2.0, -4.0, 0.5), 1.0))
	qt.Assert(t, qt.Equals(DebugR1stEpsilon(2.0, -4.0, 0.5), 1.0))
	qt.Assert(t, qt.Equals(DebugR2ndEpsilon(2.0, -4.0, 0.5), 2.0))
	qt.Assert(t, qt.Equals(DebugUlpsEpsilon(2.0, 4.0, 7), uint64(7)))
}

func TestUlpsDiffString(t *testing.T) {
	qt.Assert(t, qt.Equals(UlpsDiff{Diff: 3, Valid: true}.String(), "3"))
	qt.Assert(t, qt.Equals(UlpsDiff{}.String(), "none"))
}

func TestTolerance(t *testing.T) {
	qt.Assert(t, qt.Equals(Abs(0.5).String(), "abs <= 0.5"))
	qt.Assert(t, qt.Equals(UlpsAll(4).String(), "ulps_all <= 4"))
	qt.Assert(t, qt.Equals(Rel(0.5).eqMethod(), "EqRmax"))
	qt.Assert(t, qt.Equals(RelAll(0.5).debugMethod(), "DebugRmaxAllEpsilon"))
	qt.Assert(t, qt.Equals(R2nd(1).debugMethod(), "DebugR2ndEpsilon"))
	qt.Assert(t, qt.Equals(Algorithm(42).String(), "Algorithm(42)"))
	qt.Assert(t, qt.IsFalse(AlgorithmR1st.Symmetric()))
	qt.Assert(t, qt.IsTrue(AlgorithmUlps.Symmetric()))
}

func TestSymmetricAlgorithms(t *testing.T) {
	values := []float64{
		0, negZ, 1, -1, oneUp, 2.5, -1e300,
		math.SmallestNonzeroFloat64, -math.SmallestNonzeroFloat64, 0x1p-1022,
		math.MaxFloat64, -math.MaxFloat64, inf, -inf, nan,
	}
	epsilons := []float64{0, Epsilon64, 0.25, 1, math.MaxFloat64, inf}
	ulps := []uint64{0, 1, 4, 1 << 52, math.MaxUint64}

	algorithms := map[string]func(a, b, eps float64) bool{
		"abs":  EqAbs[float64],
		"rmax": EqRmax[float64],
		"rmin": EqRmin[float64],
	}
	for name, eq := range algorithms {
		t.Run(name, func(t *testing.T) {
			for _, x := range values {
				for _, y := range values {
					for _, eps := range epsilons {
						qt.Assert(t, qt.Equals(eq(x, y, eps), eq(y, x, eps)),
							qt.Commentf("x=%v y=%v eps=%v", x, y, eps))
					}
				}
			}
		})
	}
	t.Run("ulps", func(t *testing.T) {
		for _, x := range values {
			for _, y := range values {
				for _, n := range ulps {
					qt.Assert(t, qt.Equals(EqUlps(x, y, n), EqUlps(y, x, n)),
						qt.Commentf("x=%v y=%v ulps=%d", x, y, n))
					qt.Assert(t, qt.Equals(EqUlps(float32(x), float32(y), n), EqUlps(float32(y), float32(x), n)),
						qt.Commentf("float32 x=%v y=%v ulps=%d", x, y, n))
				}
			}
		}
	})
}

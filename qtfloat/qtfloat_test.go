package qtfloat_test

import (
	"math"
	"testing"

	"github.com/antithesishq/floateq"
	"github.com/antithesishq/floateq/qtfloat"
	"github.com/go-quicktest/qt"
)

type notes map[string]any

func (n notes) note(key string, value any) { n[key] = value }

func TestIsFloatEq(t *testing.T) {
	qt.Assert(t, qtfloat.IsFloatEq(1.0, math.Nextafter(1, 2), floateq.Ulps(1)))
	qt.Assert(t, qtfloat.IsFloatEq(float32(2), float32(2.5), floateq.Abs(0.5)))
	qt.Assert(t, qtfloat.IsFloatEq(floateq.Complex128(1+1i), floateq.Complex128(1.25+1i), floateq.AbsAll(0.25)))
	qt.Check(t, qtfloat.IsFloatNe(1.0, 2.0, floateq.Rmax(0.25)))
	qt.Check(t, qt.Not(qtfloat.IsFloatEq(1.0, 2.0, floateq.Abs(0.5))))
}

func TestFailureNotes(t *testing.T) {
	n := notes{}
	err := qtfloat.IsFloatEq(2.0, 4.0, floateq.Rmin(0.25)).Check(n.note)

	qt.Assert(t, qt.ErrorMatches(err, "values are not equal within tolerance"))
	qt.Assert(t, qt.Equals(n["abs_diff"], any(2.0)))
	qt.Assert(t, qt.Equals(n["ulps_diff"], any(qt.Unquoted("4503599627370496"))))
	qt.Assert(t, qt.Equals(n["[rmin] ε"], any(0.5)))

	n = notes{}
	err = qtfloat.IsFloatNe(-1.0, -1.0, floateq.Ulps(0)).Check(n.note)
	qt.Assert(t, qt.ErrorMatches(err, "values are equal within tolerance"))
	qt.Assert(t, qt.Equals(n["[ulps] ε"], any(uint64(0))))
}

func TestBadCheck(t *testing.T) {
	err := qtfloat.IsFloatEq(1.0, 1.0, floateq.Ulps(-2)).Check(notes{}.note)
	qt.Assert(t, qt.IsTrue(qt.IsBadCheck(err)))
	qt.Assert(t, qt.ErrorMatches(err, "bad check: negative ULPs epsilon -2: floateq: invalid epsilon"))

	err = qtfloat.IsFloatEq("a", "b", floateq.Abs(1)).Check(notes{}.note)
	qt.Assert(t, qt.IsTrue(qt.IsBadCheck(err)))
}

func TestArgs(t *testing.T) {
	args := qtfloat.IsFloatEq(1.0, 2.0, floateq.Abs(1)).Args()
	qt.Assert(t, qt.HasLen(args, 3))
	qt.Assert(t, qt.Equals(args[0].Name, "got"))
	qt.Assert(t, qt.Equals(args[1].Value, any(2.0)))
}

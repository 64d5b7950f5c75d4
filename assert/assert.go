// The assert package reports float comparisons that fail inside tests.
//
// Each function compares left and right with the checks in tols, the same way floateq.Compare does, and on failure reports every value needed to understand why: both operands, their absolute and ULPs differences, and the effective epsilon of each check. For example:
//
//	assertion failed: `FloatEq(left, right, abs <= 0.1)`
//	        left: `1`,
//	       right: `1.5`,
//	    abs_diff: `0.5`,
//	   ulps_diff: `2251799813685248`,
//	     [abs] ε: `0.1`
//
// The functions accept a *testing.T, a *testing.B, or anything else with an Errorf method, such as testify's assert.TestingT. An invalid check (see floateq.ErrEpsilonType and floateq.ErrUnsupportedType) is reported as a failure carrying the error.
package assert

import (
	"fmt"

	"github.com/antithesishq/floateq"
)

// TestingT is the subset of testing.TB the assertions report through.
type TestingT interface {
	Errorf(format string, args ...any)
}

// RequireTestingT is a TestingT that can also stop the running test.
type RequireTestingT interface {
	TestingT
	FailNow()
}

type tHelper interface {
	Helper()
}

const (
	nameEq = "FloatEq"
	nameNe = "FloatNe"
)

// Assert that left and right are equal under at least one of the checks in tols. Returns whether the assertion passed.
func FloatEq[T any](t TestingT, left, right T, tols ...floateq.Tolerance) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return check(t, nameEq, left, right, tols, "", locate(t))
}

// Assert that left and right are not equal under any of the checks in tols. Returns whether the assertion passed.
func FloatNe[T any](t TestingT, left, right T, tols ...floateq.Tolerance) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return check(t, nameNe, left, right, tols, "", locate(t))
}

// FloatEqf is FloatEq with a message appended to the failure report.
func FloatEqf[T any](t TestingT, left, right T, tols []floateq.Tolerance, format string, args ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return check(t, nameEq, left, right, tols, fmt.Sprintf(format, args...), locate(t))
}

// FloatNef is FloatNe with a message appended to the failure report.
func FloatNef[T any](t TestingT, left, right T, tols []floateq.Tolerance, format string, args ...any) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	return check(t, nameNe, left, right, tols, fmt.Sprintf(format, args...), locate(t))
}

// RequireFloatEq is FloatEq followed by t.FailNow on failure.
func RequireFloatEq[T any](t RequireTestingT, left, right T, tols ...floateq.Tolerance) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if !check(t, nameEq, left, right, tols, "", locate(t)) {
		t.FailNow()
	}
}

// RequireFloatNe is FloatNe followed by t.FailNow on failure.
func RequireFloatNe[T any](t RequireTestingT, left, right T, tols ...floateq.Tolerance) {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	if !check(t, nameNe, left, right, tols, "", locate(t)) {
		t.FailNow()
	}
}

func check[T any](t TestingT, name string, left, right T, tols []floateq.Tolerance, message string, loc *locationInfo) bool {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	lines, passed := evaluate(name, left, right, tols)
	if passed {
		return true
	}
	if loc != nil {
		lines = append(lines, line{"at:", loc})
	}
	t.Errorf("%s", failure(name, tols, message, lines))
	return false
}

// evaluate runs the comparison and, if the assertion fails, returns the lines
// of its report.
func evaluate[T any](name string, left, right T, tols []floateq.Tolerance) ([]line, bool) {
	ok, err := floateq.Compare(left, right, tols...)
	if err != nil {
		return errorLines(err), false
	}
	if name == nameNe {
		ok = !ok
	}
	if ok {
		return nil, true
	}

	report, err := floateq.Describe(left, right, tols...)
	if err != nil {
		return errorLines(err), false
	}
	return reportLines(report), false
}

// locate returns where the assertion was called from, for TestingT
// implementations that cannot skip helper frames themselves.
func locate(t TestingT) *locationInfo {
	if _, ok := t.(tHelper); ok {
		return nil
	}
	return newLocationInfo(offsetAPICallersCaller)
}

// Package qtfloat provides quicktest checkers for floats and the composite
// types of the floateq package.
//
//	qt.Assert(t, qtfloat.IsFloatEq(got, 0.3, floateq.Ulps(4)))
//
// When the check fails the report notes the absolute and ULPs differences
// and the effective epsilon of every tolerance.
package qtfloat

import (
	"fmt"

	"github.com/antithesishq/floateq"
	"github.com/go-quicktest/qt"
	"github.com/pkg/errors"
)

// IsFloatEq returns a Checker checking that got and want are equal under at
// least one of tols.
func IsFloatEq[T any](got, want T, tols ...floateq.Tolerance) qt.Checker {
	return &floatChecker[T]{got: got, want: want, tols: tols}
}

// IsFloatNe returns a Checker checking that got and want are not equal under
// any of tols.
func IsFloatNe[T any](got, want T, tols ...floateq.Tolerance) qt.Checker {
	return &floatChecker[T]{got: got, want: want, tols: tols, ne: true}
}

type floatChecker[T any] struct {
	got  T
	want T
	tols []floateq.Tolerance
	ne   bool
}

func (c *floatChecker[T]) Args() []qt.Arg {
	return []qt.Arg{
		{Name: "got", Value: c.got},
		{Name: "want", Value: c.want},
		{Name: "tolerances", Value: c.tols},
	}
}

func (c *floatChecker[T]) Check(note func(key string, value any)) error {
	ok, err := floateq.Compare(c.got, c.want, c.tols...)
	if err != nil {
		return qt.BadCheckf("%v", err)
	}
	if c.ne {
		if !ok {
			return nil
		}
		c.explain(note)
		return errors.New("values are equal within tolerance")
	}
	if ok {
		return nil
	}
	c.explain(note)
	return errors.New("values are not equal within tolerance")
}

func (c *floatChecker[T]) explain(note func(key string, value any)) {
	report, err := floateq.Describe(c.got, c.want, c.tols...)
	if err != nil {
		note("error", err)
		return
	}
	if report.AbsDiff != nil {
		note("abs_diff", report.AbsDiff)
	}
	if report.UlpsDiff != nil {
		note("ulps_diff", qt.Unquoted(fmt.Sprint(report.UlpsDiff)))
	}
	for _, eps := range report.Epsilons {
		note(fmt.Sprintf("[%s] ε", eps.Tolerance.Name()), eps.Value)
	}
}

package floateq

import (
	"reflect"

	"github.com/pkg/errors"
)

// Report explains a comparison: the values compared, how far apart they are, and the epsilon each check effectively used.
type Report struct {
	Left  any
	Right any

	// AbsDiff and UlpsDiff are nil for types that do not implement DebugAbsDiff and DebugUlpsDiff.
	AbsDiff  any
	UlpsDiff any

	Epsilons []EpsilonReport
}

// EpsilonReport is the effective epsilon of one check: for relative checks it is the given epsilon scaled by the magnitudes of the compared values.
type EpsilonReport struct {
	Tolerance Tolerance
	Value     any
}

// Describe builds the Report of comparing a and b with the given checks. Composite types must implement the AssertFloatEq methods, and the AssertFloatEqAll methods for All checks.
func Describe[T any](a, b T, tols ...Tolerance) (*Report, error) {
	if len(tols) == 0 {
		return nil, ErrNoTolerance
	}
	report := &Report{Left: a, Right: b}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	kind := kindOf(va)
	if kind == reflect.Float32 || kind == reflect.Float64 {
		if kindOf(vb) != kind {
			return nil, errors.Wrapf(ErrUnsupportedType, "cannot compare %T with %T", a, b)
		}
		var err error
		if kind == reflect.Float32 {
			err = describeScalar(report, float32(va.Float()), float32(vb.Float()), tols)
		} else {
			err = describeScalar(report, va.Float(), vb.Float(), tols)
		}
		if err != nil {
			return nil, err
		}
		return report, nil
	}

	if out, err := callMethod(va, vb, "DebugAbsDiff"); err == nil {
		report.AbsDiff = out.Interface()
	}
	if out, err := callMethod(va, vb, "DebugUlpsDiff"); err == nil {
		report.UlpsDiff = out.Interface()
	}
	for _, tol := range tols {
		out, err := callMethod(va, vb, tol.debugMethod(), tol.Epsilon)
		if err != nil {
			return nil, err
		}
		report.Epsilons = append(report.Epsilons, EpsilonReport{Tolerance: tol, Value: out.Interface()})
	}
	return report, nil
}

// describeScalar reports scalar values widened to float64 or narrowed to
// float32, whichever their kind is, rather than as their named type.
func describeScalar[F Float](report *Report, a, b F, tols []Tolerance) error {
	report.AbsDiff = DebugAbsDiff(a, b)
	report.UlpsDiff = DebugUlpsDiff(a, b)
	for _, tol := range tols {
		eps, err := scalarEpsilon[F](tol)
		if err != nil {
			return err
		}
		report.Epsilons = append(report.Epsilons, EpsilonReport{
			Tolerance: tol,
			Value:     debugScalarEpsilon(a, b, tol.Algorithm, eps),
		})
	}
	return nil
}

func debugScalarEpsilon[F Float](a, b F, algo Algorithm, eps scalarEps[F]) any {
	switch algo {
	case AlgorithmAbs:
		return DebugAbsEpsilon(a, b, eps.diff)
	case AlgorithmRel, AlgorithmRmax:
		return DebugRmaxEpsilon(a, b, eps.diff)
	case AlgorithmRmin:
		return DebugRminEpsilon(a, b, eps.diff)
	case AlgorithmR1st:
		return DebugR1stEpsilon(a, b, eps.diff)
	case AlgorithmR2nd:
		return DebugR2ndEpsilon(a, b, eps.diff)
	case AlgorithmUlps:
		return DebugUlpsEpsilon(a, b, eps.ulps)
	}
	return nil
}

package floateq

import (
	"math"
	"reflect"

	"github.com/pkg/errors"
)

// Compare reports whether a and b are equal under any of the given checks.
//
// Scalars (float32, float64 and types derived from them) are compared directly. Any other type is compared through the Eq* method the check names, e.g. EqAbs for Abs or EqUlpsAll for UlpsAll, which the type has to implement with a value receiver.
//
// Every check is validated before any is evaluated, so an invalid check is reported whatever the values compared.
func Compare[T any](a, b T, tols ...Tolerance) (bool, error) {
	if len(tols) == 0 {
		return false, ErrNoTolerance
	}
	checks := make([]func() bool, len(tols))
	for i, tol := range tols {
		check, err := prepareCheck(a, b, tol)
		if err != nil {
			return false, err
		}
		checks[i] = check
	}
	for _, check := range checks {
		if check() {
			return true, nil
		}
	}
	return false, nil
}

// Eq is Compare for callers who consider an invalid check a programming error. It panics instead of returning an error.
func Eq[T any](a, b T, tols ...Tolerance) bool {
	ok, err := Compare(a, b, tols...)
	if err != nil {
		panic(err)
	}
	return ok
}

// Ne is the negation of Eq.
func Ne[T any](a, b T, tols ...Tolerance) bool {
	return !Eq(a, b, tols...)
}

// prepareCheck converts the epsilon of tol for comparing a and b, and returns
// the comparison ready to run.
func prepareCheck[T any](a, b T, tol Tolerance) (func() bool, error) {
	if tol.Algorithm.methodStem() == "" {
		return nil, errors.Wrapf(ErrUnsupportedType, "unknown algorithm %v", tol.Algorithm)
	}

	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if kind := kindOf(va); kind == reflect.Float32 || kind == reflect.Float64 {
		if kindOf(vb) != kind {
			return nil, errors.Wrapf(ErrUnsupportedType, "cannot compare %T with %T", a, b)
		}
		if kind == reflect.Float32 {
			eps, err := scalarEpsilon[float32](tol)
			if err != nil {
				return nil, err
			}
			return func() bool {
				return eqScalar(float32(va.Float()), float32(vb.Float()), tol.Algorithm, eps)
			}, nil
		}
		eps, err := scalarEpsilon[float64](tol)
		if err != nil {
			return nil, err
		}
		return func() bool {
			return eqScalar(va.Float(), vb.Float(), tol.Algorithm, eps)
		}, nil
	}

	m, args, err := bindMethod(va, vb, tol.eqMethod(), tol.Epsilon)
	if err != nil {
		return nil, err
	}
	if out := m.Type().Out(0); out.Kind() != reflect.Bool {
		return nil, errors.Wrapf(ErrUnsupportedType, "%s of %T returns %s, not bool", tol.eqMethod(), a, out)
	}
	return func() bool {
		return m.Call(args)[0].Bool()
	}, nil
}

func kindOf(v reflect.Value) reflect.Kind {
	if !v.IsValid() {
		return reflect.Invalid
	}
	return v.Kind()
}

// scalarEps holds a scalar check's epsilon in the shape its algorithm needs.
type scalarEps[F Float] struct {
	diff F
	ulps uint64
}

func eqScalar[F Float](a, b F, algo Algorithm, eps scalarEps[F]) bool {
	switch algo {
	case AlgorithmAbs:
		return EqAbs(a, b, eps.diff)
	case AlgorithmRel, AlgorithmRmax:
		return EqRmax(a, b, eps.diff)
	case AlgorithmRmin:
		return EqRmin(a, b, eps.diff)
	case AlgorithmR1st:
		return EqR1st(a, b, eps.diff)
	case AlgorithmR2nd:
		return EqR2nd(a, b, eps.diff)
	case AlgorithmUlps:
		return EqUlps(a, b, eps.ulps)
	}
	return false
}

func scalarEpsilon[F Float](tol Tolerance) (scalarEps[F], error) {
	var eps scalarEps[F]
	if tol.Algorithm == AlgorithmUlps {
		n, err := toUlps(tol.Epsilon)
		if err != nil {
			return eps, err
		}
		eps.ulps = n
		return eps, nil
	}
	f, err := toFloat(tol.Epsilon)
	if err != nil {
		return eps, err
	}
	eps.diff = F(f)
	return eps, nil
}

func toFloat(v any) (float64, error) {
	rv := reflect.ValueOf(v)
	var f float64
	switch kindOf(rv) {
	case reflect.Float32, reflect.Float64:
		f = rv.Float()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		f = float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		f = float64(rv.Uint())
	default:
		return 0, errors.Wrapf(ErrEpsilonType, "%T is not a number", v)
	}
	if math.IsNaN(f) || f < 0 {
		return 0, errors.Wrapf(ErrEpsilonType, "%v is not a valid epsilon", v)
	}
	return f, nil
}

func toUlps(v any) (uint64, error) {
	rv := reflect.ValueOf(v)
	switch kindOf(rv) {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if rv.Int() < 0 {
			return 0, errors.Wrapf(ErrEpsilonType, "negative ULPs epsilon %d", rv.Int())
		}
		return uint64(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint(), nil
	}
	return 0, errors.Wrapf(ErrEpsilonType, "ULPs epsilon must be an integer, got %T", v)
}

// callMethod invokes recv.name(other, eps...) where eps is converted to the
// method's parameter type if it is a plain number of another type.
func callMethod(recv, other reflect.Value, name string, eps ...any) (reflect.Value, error) {
	m, args, err := bindMethod(recv, other, name, eps...)
	if err != nil {
		return reflect.Value{}, err
	}
	return m.Call(args)[0], nil
}

// bindMethod looks up recv.name and builds its arguments without calling it.
func bindMethod(recv, other reflect.Value, name string, eps ...any) (reflect.Value, []reflect.Value, error) {
	if !recv.IsValid() || !other.IsValid() {
		return reflect.Value{}, nil, errors.Wrap(ErrUnsupportedType, "nil value")
	}
	m := recv.MethodByName(name)
	if !m.IsValid() {
		return reflect.Value{}, nil, errors.Wrapf(ErrUnsupportedType, "%s has no %s method", recv.Type(), name)
	}
	mt := m.Type()
	if mt.NumIn() != 1+len(eps) || mt.NumOut() != 1 {
		return reflect.Value{}, nil, errors.Wrapf(ErrUnsupportedType, "%s.%s has an unexpected signature %s", recv.Type(), name, mt)
	}
	if !other.Type().AssignableTo(mt.In(0)) {
		return reflect.Value{}, nil, errors.Wrapf(ErrUnsupportedType, "%s.%s cannot take a %s", recv.Type(), name, other.Type())
	}

	args := []reflect.Value{other}
	for i, e := range eps {
		arg, err := epsilonValue(e, mt.In(1+i))
		if err != nil {
			return reflect.Value{}, nil, errors.Wrapf(err, "%s.%s", recv.Type(), name)
		}
		args = append(args, arg)
	}
	return m, args, nil
}

func epsilonValue(eps any, want reflect.Type) (reflect.Value, error) {
	if eps == nil {
		return reflect.Value{}, errors.Wrapf(ErrEpsilonType, "nil epsilon, want %s", want)
	}
	v := reflect.ValueOf(eps)
	if v.Type().AssignableTo(want) {
		return v, nil
	}
	switch want.Kind() {
	case reflect.Float32, reflect.Float64:
		f, err := toFloat(eps)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(f).Convert(want), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := toUlps(eps)
		if err != nil {
			return reflect.Value{}, err
		}
		return reflect.ValueOf(n).Convert(want), nil
	}
	return reflect.Value{}, errors.Wrapf(ErrEpsilonType, "epsilon is a %T, want %s", eps, want)
}

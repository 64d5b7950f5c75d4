package floateq

import (
	"fmt"
	"reflect"

	"github.com/google/go-cmp/cmp"
)

// CmpOption returns a go-cmp option that treats every pair of float values as equal when Compare accepts them under tols. Float values are those whose kind is float32 or float64, so named types such as `type Meters float64` are included. Values of different types are left to go-cmp.
//
// go-cmp requires comparers to be symmetric, so CmpOption panics if given an r1st or r2nd check. It also panics if tols is empty or an epsilon is not a valid scalar epsilon.
func CmpOption(tols ...Tolerance) cmp.Option {
	if len(tols) == 0 {
		panic(ErrNoTolerance)
	}
	for _, tol := range tols {
		if !tol.Algorithm.Symmetric() {
			panic(fmt.Sprintf("floateq: %s is not symmetric and cannot be used with go-cmp", tol.Name()))
		}
		if _, err := Compare(0.0, 0.0, tol); err != nil {
			panic(err)
		}
	}

	return cmp.FilterValues(sameFloatType, cmp.Comparer(func(x, y any) bool {
		vx, vy := reflect.ValueOf(x), reflect.ValueOf(y)
		if vx.Kind() == reflect.Float32 {
			return Eq(float32(vx.Float()), float32(vy.Float()), tols...)
		}
		return Eq(vx.Float(), vy.Float(), tols...)
	}))
}

func sameFloatType(x, y any) bool {
	tx, ty := reflect.TypeOf(x), reflect.TypeOf(y)
	if tx == nil || tx != ty {
		return false
	}
	return tx.Kind() == reflect.Float32 || tx.Kind() == reflect.Float64
}

package floateq

// Map is a keyed collection of floats compared value by value. Two maps are only equal if they have the same keys and the epsilon map has exactly those keys too. Debug methods return nil when the key sets differ.
type Map[K comparable, T Float] map[K]T

var (
	_ FloatEq[Map[string, float64], map[string]uint64]                            = Map[string, float64]{}
	_ FloatEqAll[Map[string, float64], float64]                                   = Map[string, float64]{}
	_ AssertFloatEq[Map[string, float64], map[string]uint64, map[string]UlpsDiff] = Map[string, float64]{}
	_ AssertFloatEqAll[Map[string, float64], float64, map[string]uint64]          = Map[string, float64]{}
)

func sameKeys[K comparable, A, B any](a map[K]A, b map[K]B) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}

func eqMap[K comparable, T Float, E any](a, b map[K]T, maxDiff map[K]E, eq func(T, T, E) bool) bool {
	if !sameKeys(a, b) || !sameKeys(a, maxDiff) {
		return false
	}
	for k, x := range a {
		if !eq(x, b[k], maxDiff[k]) {
			return false
		}
	}
	return true
}

func eqMapAll[K comparable, T Float, E any](a, b map[K]T, maxDiff E, eq func(T, T, E) bool) bool {
	if !sameKeys(a, b) {
		return false
	}
	for k, x := range a {
		if !eq(x, b[k], maxDiff) {
			return false
		}
	}
	return true
}

func mapPairs[K comparable, T Float, R any](a, b map[K]T, f func(T, T) R) map[K]R {
	if !sameKeys(a, b) {
		return nil
	}
	out := make(map[K]R, len(a))
	for k, x := range a {
		out[k] = f(x, b[k])
	}
	return out
}

func mapEach[K comparable, T Float, E, R any](a, b map[K]T, maxDiff map[K]E, f func(T, T, E) R) map[K]R {
	if !sameKeys(a, b) || !sameKeys(a, maxDiff) {
		return nil
	}
	out := make(map[K]R, len(a))
	for k, x := range a {
		out[k] = f(x, b[k], maxDiff[k])
	}
	return out
}

func mapEachAll[K comparable, T Float, E, R any](a, b map[K]T, maxDiff E, f func(T, T, E) R) map[K]R {
	if !sameKeys(a, b) {
		return nil
	}
	out := make(map[K]R, len(a))
	for k, x := range a {
		out[k] = f(x, b[k], maxDiff)
	}
	return out
}

func (m Map[K, T]) EqAbs(other, maxDiff Map[K, T]) bool {
	return eqMap(map[K]T(m), map[K]T(other), map[K]T(maxDiff), EqAbs[T])
}

func (m Map[K, T]) EqRmax(other, maxDiff Map[K, T]) bool {
	return eqMap(map[K]T(m), map[K]T(other), map[K]T(maxDiff), EqRmax[T])
}

func (m Map[K, T]) EqRmin(other, maxDiff Map[K, T]) bool {
	return eqMap(map[K]T(m), map[K]T(other), map[K]T(maxDiff), EqRmin[T])
}

func (m Map[K, T]) EqR1st(other, maxDiff Map[K, T]) bool {
	return eqMap(map[K]T(m), map[K]T(other), map[K]T(maxDiff), EqR1st[T])
}

func (m Map[K, T]) EqR2nd(other, maxDiff Map[K, T]) bool {
	return eqMap(map[K]T(m), map[K]T(other), map[K]T(maxDiff), EqR2nd[T])
}

func (m Map[K, T]) EqUlps(other Map[K, T], maxDiff map[K]uint64) bool {
	return eqMap(map[K]T(m), map[K]T(other), maxDiff, EqUlps[T])
}

func (m Map[K, T]) EqAbsAll(other Map[K, T], maxDiff T) bool {
	return eqMapAll(map[K]T(m), map[K]T(other), maxDiff, EqAbs[T])
}

func (m Map[K, T]) EqRmaxAll(other Map[K, T], maxDiff T) bool {
	return eqMapAll(map[K]T(m), map[K]T(other), maxDiff, EqRmax[T])
}

func (m Map[K, T]) EqRminAll(other Map[K, T], maxDiff T) bool {
	return eqMapAll(map[K]T(m), map[K]T(other), maxDiff, EqRmin[T])
}

func (m Map[K, T]) EqR1stAll(other Map[K, T], maxDiff T) bool {
	return eqMapAll(map[K]T(m), map[K]T(other), maxDiff, EqR1st[T])
}

func (m Map[K, T]) EqR2ndAll(other Map[K, T], maxDiff T) bool {
	return eqMapAll(map[K]T(m), map[K]T(other), maxDiff, EqR2nd[T])
}

func (m Map[K, T]) EqUlpsAll(other Map[K, T], maxDiff uint64) bool {
	return eqMapAll(map[K]T(m), map[K]T(other), maxDiff, EqUlps[T])
}

func (m Map[K, T]) DebugAbsDiff(other Map[K, T]) Map[K, T] {
	return mapPairs(map[K]T(m), map[K]T(other), DebugAbsDiff[T])
}

func (m Map[K, T]) DebugUlpsDiff(other Map[K, T]) map[K]UlpsDiff {
	return mapPairs(map[K]T(m), map[K]T(other), DebugUlpsDiff[T])
}

func (m Map[K, T]) DebugAbsEpsilon(other, maxDiff Map[K, T]) Map[K, T] {
	return mapEach(map[K]T(m), map[K]T(other), map[K]T(maxDiff), DebugAbsEpsilon[T])
}

func (m Map[K, T]) DebugRmaxEpsilon(other, maxDiff Map[K, T]) Map[K, T] {
	return mapEach(map[K]T(m), map[K]T(other), map[K]T(maxDiff), DebugRmaxEpsilon[T])
}

func (m Map[K, T]) DebugRminEpsilon(other, maxDiff Map[K, T]) Map[K, T] {
	return mapEach(map[K]T(m), map[K]T(other), map[K]T(maxDiff), DebugRminEpsilon[T])
}

func (m Map[K, T]) DebugR1stEpsilon(other, maxDiff Map[K, T]) Map[K, T] {
	return mapEach(map[K]T(m), map[K]T(other), map[K]T(maxDiff), DebugR1stEpsilon[T])
}

func (m Map[K, T]) DebugR2ndEpsilon(other, maxDiff Map[K, T]) Map[K, T] {
	return mapEach(map[K]T(m), map[K]T(other), map[K]T(maxDiff), DebugR2ndEpsilon[T])
}

func (m Map[K, T]) DebugUlpsEpsilon(other Map[K, T], maxDiff map[K]uint64) map[K]uint64 {
	return mapEach(map[K]T(m), map[K]T(other), maxDiff, DebugUlpsEpsilon[T])
}

func (m Map[K, T]) DebugAbsAllEpsilon(other Map[K, T], maxDiff T) Map[K, T] {
	return mapEachAll(map[K]T(m), map[K]T(other), maxDiff, DebugAbsEpsilon[T])
}

func (m Map[K, T]) DebugRmaxAllEpsilon(other Map[K, T], maxDiff T) Map[K, T] {
	return mapEachAll(map[K]T(m), map[K]T(other), maxDiff, DebugRmaxEpsilon[T])
}

func (m Map[K, T]) DebugRminAllEpsilon(other Map[K, T], maxDiff T) Map[K, T] {
	return mapEachAll(map[K]T(m), map[K]T(other), maxDiff, DebugRminEpsilon[T])
}

func (m Map[K, T]) DebugR1stAllEpsilon(other Map[K, T], maxDiff T) Map[K, T] {
	return mapEachAll(map[K]T(m), map[K]T(other), maxDiff, DebugR1stEpsilon[T])
}

func (m Map[K, T]) DebugR2ndAllEpsilon(other Map[K, T], maxDiff T) Map[K, T] {
	return mapEachAll(map[K]T(m), map[K]T(other), maxDiff, DebugR2ndEpsilon[T])
}

func (m Map[K, T]) DebugUlpsAllEpsilon(other Map[K, T], maxDiff uint64) map[K]uint64 {
	return mapEachAll(map[K]T(m), map[K]T(other), maxDiff, DebugUlpsEpsilon[T])
}

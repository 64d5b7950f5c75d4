package floateq

// --------------------------------------------------------------------------------
// Element-wise helpers. The comparison and debug methods of Slice and of
// derived types are built from these, with a scalar function such as
// EqAbs[float64] or a method expression such as Point.EqAbs as the element
// operation.
// --------------------------------------------------------------------------------

// EqEach reports whether a, b and maxDiff have the same length and eq holds for every element.
func EqEach[T, E any](a, b []T, maxDiff []E, eq func(T, T, E) bool) bool {
	if len(a) != len(b) || len(a) != len(maxDiff) {
		return false
	}
	for i := range a {
		if !eq(a[i], b[i], maxDiff[i]) {
			return false
		}
	}
	return true
}

// EqEachAll reports whether a and b have the same length and eq holds for every element with the shared maxDiff.
func EqEachAll[T, E any](a, b []T, maxDiff E, eq func(T, T, E) bool) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !eq(a[i], b[i], maxDiff) {
			return false
		}
	}
	return true
}

// MapPairs applies f to every pair of elements. It returns nil if the lengths differ.
func MapPairs[T, R any](a, b []T, f func(T, T) R) []R {
	if len(a) != len(b) {
		return nil
	}
	out := make([]R, len(a))
	for i := range a {
		out[i] = f(a[i], b[i])
	}
	return out
}

// MapEach applies f to every pair of elements and their epsilon. It returns nil if the lengths differ.
func MapEach[T, E, R any](a, b []T, maxDiff []E, f func(T, T, E) R) []R {
	if len(a) != len(b) || len(a) != len(maxDiff) {
		return nil
	}
	out := make([]R, len(a))
	for i := range a {
		out[i] = f(a[i], b[i], maxDiff[i])
	}
	return out
}

// MapEachAll applies f to every pair of elements with the shared maxDiff. It returns nil if the lengths differ.
func MapEachAll[T, E, R any](a, b []T, maxDiff E, f func(T, T, E) R) []R {
	if len(a) != len(b) {
		return nil
	}
	out := make([]R, len(a))
	for i := range a {
		out[i] = f(a[i], b[i], maxDiff)
	}
	return out
}

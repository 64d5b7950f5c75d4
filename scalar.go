package floateq

// EqAbs reports whether a and b are equal, or their absolute difference is at most maxDiff.
func EqAbs[T Float](a, b, maxDiff T) bool {
	return a == b || abs(a-b) <= maxDiff
}

// EqRmax reports whether a and b are equal, or their difference is at most maxDiff scaled by the larger of their magnitudes.
func EqRmax[T Float](a, b, maxDiff T) bool {
	return a == b || abs(a-b) <= max(abs(a), abs(b))*maxDiff
}

// EqRel is EqRmax.
func EqRel[T Float](a, b, maxDiff T) bool {
	return EqRmax(a, b, maxDiff)
}

// EqRmin reports whether a and b are equal, or their difference is at most maxDiff scaled by the smaller of their magnitudes.
func EqRmin[T Float](a, b, maxDiff T) bool {
	return a == b || abs(a-b) <= min(abs(a), abs(b))*maxDiff
}

// EqR1st reports whether a and b are equal, or their difference is at most maxDiff scaled by the magnitude of a.
func EqR1st[T Float](a, b, maxDiff T) bool {
	return a == b || abs(a-b) <= abs(a)*maxDiff
}

// EqR2nd reports whether a and b are equal, or their difference is at most maxDiff scaled by the magnitude of b.
func EqR2nd[T Float](a, b, maxDiff T) bool {
	return a == b || abs(a-b) <= abs(b)*maxDiff
}

// EqUlps reports whether a and b are at most maxDiff representable values apart. Values of different signs are only equal if they are both zero.
func EqUlps[T Float](a, b T, maxDiff uint64) bool {
	if isNaN(a) || isNaN(b) {
		return false
	}
	if signbit(a) != signbit(b) {
		return a == b
	}
	return bitsDistance(a, b) <= maxDiff
}

package floateq

// --------------------------------------------------------------------------------
// Debug helpers explain a comparison: the observed differences, and the
// effective epsilon each algorithm compared them against.
// --------------------------------------------------------------------------------

// DebugAbsDiff returns the absolute difference between a and b.
func DebugAbsDiff[T Float](a, b T) T {
	return abs(a - b)
}

// DebugUlpsDiff returns the ULPs distance between a and b.
func DebugUlpsDiff[T Float](a, b T) UlpsDiff {
	switch {
	case a == b:
		return UlpsDiff{Diff: 0, Valid: true}
	case isNaN(a) || isNaN(b):
		return UlpsDiff{}
	case signbit(a) != signbit(b):
		return UlpsDiff{}
	}
	return UlpsDiff{Diff: bitsDistance(a, b), Valid: true}
}

func DebugAbsEpsilon[T Float](a, b, maxDiff T) T {
	return maxDiff
}

func DebugRmaxEpsilon[T Float](a, b, maxDiff T) T {
	return max(abs(a), abs(b)) * maxDiff
}

func DebugRelEpsilon[T Float](a, b, maxDiff T) T {
	return DebugRmaxEpsilon(a, b, maxDiff)
}

func DebugRminEpsilon[T Float](a, b, maxDiff T) T {
	return min(abs(a), abs(b)) * maxDiff
}

func DebugR1stEpsilon[T Float](a, b, maxDiff T) T {
	return abs(a) * maxDiff
}

func DebugR2ndEpsilon[T Float](a, b, maxDiff T) T {
	return abs(b) * maxDiff
}

func DebugUlpsEpsilon[T Float](a, b T, maxDiff uint64) uint64 {
	return maxDiff
}

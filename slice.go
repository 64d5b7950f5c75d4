package floateq

// Slice is a sequence of floats compared element by element. Two slices are only equal if they, and the epsilon slice, have the same length. Debug methods return nil when the lengths differ.
type Slice[T Float] []T

var (
	_ FloatEq[Slice[float64], []uint64]                   = Slice[float64]{}
	_ FloatEqAll[Slice[float64], float64]                 = Slice[float64]{}
	_ AssertFloatEq[Slice[float64], []uint64, []UlpsDiff] = Slice[float64]{}
	_ AssertFloatEqAll[Slice[float64], float64, []uint64] = Slice[float64]{}
)

func (s Slice[T]) EqAbs(other, maxDiff Slice[T]) bool {
	return EqEach([]T(s), []T(other), []T(maxDiff), EqAbs[T])
}

func (s Slice[T]) EqRmax(other, maxDiff Slice[T]) bool {
	return EqEach([]T(s), []T(other), []T(maxDiff), EqRmax[T])
}

func (s Slice[T]) EqRmin(other, maxDiff Slice[T]) bool {
	return EqEach([]T(s), []T(other), []T(maxDiff), EqRmin[T])
}

func (s Slice[T]) EqR1st(other, maxDiff Slice[T]) bool {
	return EqEach([]T(s), []T(other), []T(maxDiff), EqR1st[T])
}

func (s Slice[T]) EqR2nd(other, maxDiff Slice[T]) bool {
	return EqEach([]T(s), []T(other), []T(maxDiff), EqR2nd[T])
}

func (s Slice[T]) EqUlps(other Slice[T], maxDiff []uint64) bool {
	return EqEach([]T(s), []T(other), maxDiff, EqUlps[T])
}

func (s Slice[T]) EqAbsAll(other Slice[T], maxDiff T) bool {
	return EqEachAll([]T(s), []T(other), maxDiff, EqAbs[T])
}

func (s Slice[T]) EqRmaxAll(other Slice[T], maxDiff T) bool {
	return EqEachAll([]T(s), []T(other), maxDiff, EqRmax[T])
}

func (s Slice[T]) EqRminAll(other Slice[T], maxDiff T) bool {
	return EqEachAll([]T(s), []T(other), maxDiff, EqRmin[T])
}

func (s Slice[T]) EqR1stAll(other Slice[T], maxDiff T) bool {
	return EqEachAll([]T(s), []T(other), maxDiff, EqR1st[T])
}

func (s Slice[T]) EqR2ndAll(other Slice[T], maxDiff T) bool {
	return EqEachAll([]T(s), []T(other), maxDiff, EqR2nd[T])
}

func (s Slice[T]) EqUlpsAll(other Slice[T], maxDiff uint64) bool {
	return EqEachAll([]T(s), []T(other), maxDiff, EqUlps[T])
}

func (s Slice[T]) DebugAbsDiff(other Slice[T]) Slice[T] {
	return MapPairs([]T(s), []T(other), DebugAbsDiff[T])
}

func (s Slice[T]) DebugUlpsDiff(other Slice[T]) []UlpsDiff {
	return MapPairs([]T(s), []T(other), DebugUlpsDiff[T])
}

func (s Slice[T]) DebugAbsEpsilon(other, maxDiff Slice[T]) Slice[T] {
	return MapEach([]T(s), []T(other), []T(maxDiff), DebugAbsEpsilon[T])
}

func (s Slice[T]) DebugRmaxEpsilon(other, maxDiff Slice[T]) Slice[T] {
	return MapEach([]T(s), []T(other), []T(maxDiff), DebugRmaxEpsilon[T])
}

func (s Slice[T]) DebugRminEpsilon(other, maxDiff Slice[T]) Slice[T] {
	return MapEach([]T(s), []T(other), []T(maxDiff), DebugRminEpsilon[T])
}

func (s Slice[T]) DebugR1stEpsilon(other, maxDiff Slice[T]) Slice[T] {
	return MapEach([]T(s), []T(other), []T(maxDiff), DebugR1stEpsilon[T])
}

func (s Slice[T]) DebugR2ndEpsilon(other, maxDiff Slice[T]) Slice[T] {
	return MapEach([]T(s), []T(other), []T(maxDiff), DebugR2ndEpsilon[T])
}

func (s Slice[T]) DebugUlpsEpsilon(other Slice[T], maxDiff []uint64) []uint64 {
	return MapEach([]T(s), []T(other), maxDiff, DebugUlpsEpsilon[T])
}

func (s Slice[T]) DebugAbsAllEpsilon(other Slice[T], maxDiff T) Slice[T] {
	return MapEachAll([]T(s), []T(other), maxDiff, DebugAbsEpsilon[T])
}

func (s Slice[T]) DebugRmaxAllEpsilon(other Slice[T], maxDiff T) Slice[T] {
	return MapEachAll([]T(s), []T(other), maxDiff, DebugRmaxEpsilon[T])
}

func (s Slice[T]) DebugRminAllEpsilon(other Slice[T], maxDiff T) Slice[T] {
	return MapEachAll([]T(s), []T(other), maxDiff, DebugRminEpsilon[T])
}

func (s Slice[T]) DebugR1stAllEpsilon(other Slice[T], maxDiff T) Slice[T] {
	return MapEachAll([]T(s), []T(other), maxDiff, DebugR1stEpsilon[T])
}

func (s Slice[T]) DebugR2ndAllEpsilon(other Slice[T], maxDiff T) Slice[T] {
	return MapEachAll([]T(s), []T(other), maxDiff, DebugR2ndEpsilon[T])
}

func (s Slice[T]) DebugUlpsAllEpsilon(other Slice[T], maxDiff uint64) []uint64 {
	return MapEachAll([]T(s), []T(other), maxDiff, DebugUlpsEpsilon[T])
}

package floateq

// FloatEq is implemented by composite types that compare with a per-float epsilon. T is the implementing type, which also serves as its own epsilon type, and U its ULPs epsilon type.
type FloatEq[T, U any] interface {
	EqAbs(other, maxDiff T) bool
	EqRmax(other, maxDiff T) bool
	EqRmin(other, maxDiff T) bool
	EqR1st(other, maxDiff T) bool
	EqR2nd(other, maxDiff T) bool
	EqUlps(other T, maxDiff U) bool
}

// FloatEqAll is implemented by composite types that compare every float they contain against one epsilon of type E.
type FloatEqAll[T, E any] interface {
	EqAbsAll(other T, maxDiff E) bool
	EqRmaxAll(other T, maxDiff E) bool
	EqRminAll(other T, maxDiff E) bool
	EqR1stAll(other T, maxDiff E) bool
	EqR2ndAll(other T, maxDiff E) bool
	EqUlpsAll(other T, maxDiff uint64) bool
}

// AssertFloatEq is implemented by types that can explain a FloatEq comparison. D is the debug ULPs difference type.
type AssertFloatEq[T, U, D any] interface {
	DebugAbsDiff(other T) T
	DebugUlpsDiff(other T) D
	DebugAbsEpsilon(other, maxDiff T) T
	DebugRmaxEpsilon(other, maxDiff T) T
	DebugRminEpsilon(other, maxDiff T) T
	DebugR1stEpsilon(other, maxDiff T) T
	DebugR2ndEpsilon(other, maxDiff T) T
	DebugUlpsEpsilon(other T, maxDiff U) U
}

// AssertFloatEqAll is implemented by types that can explain a FloatEqAll comparison.
type AssertFloatEqAll[T, E, U any] interface {
	DebugAbsAllEpsilon(other T, maxDiff E) T
	DebugRmaxAllEpsilon(other T, maxDiff E) T
	DebugRminAllEpsilon(other T, maxDiff E) T
	DebugR1stAllEpsilon(other T, maxDiff E) T
	DebugR2ndAllEpsilon(other T, maxDiff E) T
	DebugUlpsAllEpsilon(other T, maxDiff uint64) U
}

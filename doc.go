// Package floateq compares floating point values, and values composed of them, for approximate equality.
//
// Exact comparison of floating point results is rarely what a program wants: rounding error accumulates differently depending on the order of operations, the compiler and the hardware. This package makes the comparison explicit. Every check names an algorithm and a maximum difference, and a comparison expression is made of one or more checks, any one of which passing means the values are considered equal.
//
//	floateq.Eq(a, b, floateq.Abs(0.0001))
//	floateq.Eq(a, b, floateq.Rmax(4*floateq.Epsilon64), floateq.Ulps(4))
//	floateq.Ne(a, b, floateq.Abs(0.5))
//
// The available algorithms are:
//
//   - abs: the absolute difference is at most the epsilon.
//   - rmax (alias rel): the difference is at most epsilon scaled by the larger magnitude of the two values.
//   - rmin: as rmax, scaled by the smaller magnitude.
//   - r1st, r2nd: as rmax, scaled by the magnitude of the first or second value.
//   - ulps: the values are at most epsilon representable values apart.
//
// NaN is never equal to anything, including itself. Infinities are equal to themselves under every algorithm. Positive and negative zero are always equal.
//
// Composite values are compared through methods. The [FloatEq] and [FloatEqAll] interfaces describe the comparison methods and [AssertFloatEq] and [AssertFloatEqAll] the debug methods used to explain a failed comparison. The [Complex], [Slice] and [Map] types implement them, and the floateq-gen tool derives them for struct types annotated with a
//
//	//floateq:derive ulps_epsilon=PointUlps debug_ulps_diff=PointDebugUlpsDiff all_epsilon=float64
//
// directive. Checks created with the All variants ([AbsAll], [UlpsAll], ...) apply one epsilon to every float contained in a composite value. The plain variants take an epsilon of the same shape as the values compared.
//
// The assert and qtfloat subpackages report failed comparisons in tests, and [CmpOption] plugs the comparison into github.com/google/go-cmp.
package floateq

package floateq

import (
	"math"
	"strconv"
	"unsafe"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Float is satisfied by float32, float64 and every type derived from them.
type Float interface {
	constraints.Float
}

// Machine epsilon of the two float widths, handy as a relative epsilon.
const (
	Epsilon32 = 0x1p-23
	Epsilon64 = 0x1p-52
)

// UlpsDiff is the distance between two floats in units of least precision.
// It is not Valid when the distance cannot be expressed: the values have
// different signs, or one of them is NaN.
type UlpsDiff struct {
	Diff  uint64
	Valid bool
}

func (d UlpsDiff) String() string {
	if !d.Valid {
		return "none"
	}
	return strconv.FormatUint(d.Diff, 10)
}

// --------------------------------------------------------------------------------
// Width dispatch. Named float types defeat a type switch, so the width of T
// is read from its size instead.
// --------------------------------------------------------------------------------
func is32[T Float]() bool {
	var zero T
	return unsafe.Sizeof(zero) == 4
}

func abs[T Float](x T) T {
	if is32[T]() {
		return T(math32.Abs(float32(x)))
	}
	return T(math.Abs(float64(x)))
}

func isNaN[T Float](x T) bool {
	return x != x
}

func signbit[T Float](x T) bool {
	if is32[T]() {
		return math32.Signbit(float32(x))
	}
	return math.Signbit(float64(x))
}

func toBits[T Float](x T) uint64 {
	if is32[T]() {
		return uint64(math32.Float32bits(float32(x)))
	}
	return math.Float64bits(float64(x))
}

// bitsDistance assumes a and b share a sign, so their bit patterns are
// ordered like their magnitudes.
func bitsDistance[T Float](a, b T) uint64 {
	x, y := toBits(a), toBits(b)
	if x < y {
		return y - x
	}
	return x - y
}

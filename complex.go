package floateq

// Complex is a complex number with components of float type T. The real and imaginary parts are compared independently, each against its own epsilon.
type Complex[T Float] struct {
	Re T
	Im T
}

// ComplexUlps is the ULPs epsilon of a Complex.
type ComplexUlps struct {
	Re uint64
	Im uint64
}

// ComplexUlpsDiff is the debug ULPs difference of two Complex values.
type ComplexUlpsDiff struct {
	Re UlpsDiff
	Im UlpsDiff
}

func Complex128(c complex128) Complex[float64] {
	return Complex[float64]{Re: real(c), Im: imag(c)}
}

func Complex64(c complex64) Complex[float32] {
	return Complex[float32]{Re: real(c), Im: imag(c)}
}

// Complex128 widens c to a builtin complex value.
func (c Complex[T]) Complex128() complex128 {
	return complex(float64(c.Re), float64(c.Im))
}

var (
	_ FloatEq[Complex[float64], ComplexUlps]                        = Complex[float64]{}
	_ FloatEqAll[Complex[float64], float64]                         = Complex[float64]{}
	_ AssertFloatEq[Complex[float64], ComplexUlps, ComplexUlpsDiff] = Complex[float64]{}
	_ AssertFloatEqAll[Complex[float32], float32, ComplexUlps]      = Complex[float32]{}
)

func (c Complex[T]) EqAbs(other, maxDiff Complex[T]) bool {
	return EqAbs(c.Re, other.Re, maxDiff.Re) && EqAbs(c.Im, other.Im, maxDiff.Im)
}

func (c Complex[T]) EqRmax(other, maxDiff Complex[T]) bool {
	return EqRmax(c.Re, other.Re, maxDiff.Re) && EqRmax(c.Im, other.Im, maxDiff.Im)
}

func (c Complex[T]) EqRmin(other, maxDiff Complex[T]) bool {
	return EqRmin(c.Re, other.Re, maxDiff.Re) && EqRmin(c.Im, other.Im, maxDiff.Im)
}

func (c Complex[T]) EqR1st(other, maxDiff Complex[T]) bool {
	return EqR1st(c.Re, other.Re, maxDiff.Re) && EqR1st(c.Im, other.Im, maxDiff.Im)
}

func (c Complex[T]) EqR2nd(other, maxDiff Complex[T]) bool {
	return EqR2nd(c.Re, other.Re, maxDiff.Re) && EqR2nd(c.Im, other.Im, maxDiff.Im)
}

func (c Complex[T]) EqUlps(other Complex[T], maxDiff ComplexUlps) bool {
	return EqUlps(c.Re, other.Re, maxDiff.Re) && EqUlps(c.Im, other.Im, maxDiff.Im)
}

func (c Complex[T]) EqAbsAll(other Complex[T], maxDiff T) bool {
	return EqAbs(c.Re, other.Re, maxDiff) && EqAbs(c.Im, other.Im, maxDiff)
}

func (c Complex[T]) EqRmaxAll(other Complex[T], maxDiff T) bool {
	return EqRmax(c.Re, other.Re, maxDiff) && EqRmax(c.Im, other.Im, maxDiff)
}

func (c Complex[T]) EqRminAll(other Complex[T], maxDiff T) bool {
	return EqRmin(c.Re, other.Re, maxDiff) && EqRmin(c.Im, other.Im, maxDiff)
}

func (c Complex[T]) EqR1stAll(other Complex[T], maxDiff T) bool {
	return EqR1st(c.Re, other.Re, maxDiff) && EqR1st(c.Im, other.Im, maxDiff)
}

func (c Complex[T]) EqR2ndAll(other Complex[T], maxDiff T) bool {
	return EqR2nd(c.Re, other.Re, maxDiff) && EqR2nd(c.Im, other.Im, maxDiff)
}

func (c Complex[T]) EqUlpsAll(other Complex[T], maxDiff uint64) bool {
	return EqUlps(c.Re, other.Re, maxDiff) && EqUlps(c.Im, other.Im, maxDiff)
}

func (c Complex[T]) DebugAbsDiff(other Complex[T]) Complex[T] {
	return Complex[T]{Re: DebugAbsDiff(c.Re, other.Re), Im: DebugAbsDiff(c.Im, other.Im)}
}

func (c Complex[T]) DebugUlpsDiff(other Complex[T]) ComplexUlpsDiff {
	return ComplexUlpsDiff{Re: DebugUlpsDiff(c.Re, other.Re), Im: DebugUlpsDiff(c.Im, other.Im)}
}

func (c Complex[T]) DebugAbsEpsilon(other, maxDiff Complex[T]) Complex[T] {
	return Complex[T]{
		Re: DebugAbsEpsilon(c.Re, other.Re, maxDiff.Re),
		Im: DebugAbsEpsilon(c.Im, other.Im, maxDiff.Im),
	}
}

func (c Complex[T]) DebugRmaxEpsilon(other, maxDiff Complex[T]) Complex[T] {
	return Complex[T]{
		Re: DebugRmaxEpsilon(c.Re, other.Re, maxDiff.Re),
		Im: DebugRmaxEpsilon(c.Im, other.Im, maxDiff.Im),
	}
}

func (c Complex[T]) DebugRminEpsilon(other, maxDiff Complex[T]) Complex[T] {
	return Complex[T]{
		Re: DebugRminEpsilon(c.Re, other.Re, maxDiff.Re),
		Im: DebugRminEpsilon(c.Im, other.Im, maxDiff.Im),
	}
}

func (c Complex[T]) DebugR1stEpsilon(other, maxDiff Complex[T]) Complex[T] {
	return Complex[T]{
		Re: DebugR1stEpsilon(c.Re, other.Re, maxDiff.Re),
		Im: DebugR1stEpsilon(c.Im, other.Im, maxDiff.Im),
	}
}

func (c Complex[T]) DebugR2ndEpsilon(other, maxDiff Complex[T]) Complex[T] {
	return Complex[T]{
		Re: DebugR2ndEpsilon(c.Re, other.Re, maxDiff.Re),
		Im: DebugR2ndEpsilon(c.Im, other.Im, maxDiff.Im),
	}
}

func (c Complex[T]) DebugUlpsEpsilon(other Complex[T], maxDiff ComplexUlps) ComplexUlps {
	return maxDiff
}

func (c Complex[T]) DebugAbsAllEpsilon(other Complex[T], maxDiff T) Complex[T] {
	return Complex[T]{Re: maxDiff, Im: maxDiff}
}

func (c Complex[T]) DebugRmaxAllEpsilon(other Complex[T], maxDiff T) Complex[T] {
	return Complex[T]{
		Re: DebugRmaxEpsilon(c.Re, other.Re, maxDiff),
		Im: DebugRmaxEpsilon(c.Im, other.Im, maxDiff),
	}
}

func (c Complex[T]) DebugRminAllEpsilon(other Complex[T], maxDiff T) Complex[T] {
	return Complex[T]{
		Re: DebugRminEpsilon(c.Re, other.Re, maxDiff),
		Im: DebugRminEpsilon(c.Im, other.Im, maxDiff),
	}
}

func (c Complex[T]) DebugR1stAllEpsilon(other Complex[T], maxDiff T) Complex[T] {
	return Complex[T]{
		Re: DebugR1stEpsilon(c.Re, other.Re, maxDiff),
		Im: DebugR1stEpsilon(c.Im, other.Im, maxDiff),
	}
}

func (c Complex[T]) DebugR2ndAllEpsilon(other Complex[T], maxDiff T) Complex[T] {
	return Complex[T]{
		Re: DebugR2ndEpsilon(c.Re, other.Re, maxDiff),
		Im: DebugR2ndEpsilon(c.Im, other.Im, maxDiff),
	}
}

func (c Complex[T]) DebugUlpsAllEpsilon(other Complex[T], maxDiff uint64) ComplexUlps {
	return ComplexUlps{Re: maxDiff, Im: maxDiff}
}

package floateq

import "fmt"

// Algorithm selects how a check measures the difference between two values.
type Algorithm int

const (
	AlgorithmAbs Algorithm = iota
	AlgorithmRel
	AlgorithmRmax
	AlgorithmRmin
	AlgorithmR1st
	AlgorithmR2nd
	AlgorithmUlps
)

var algorithmNames = [...]string{
	AlgorithmAbs:  "abs",
	AlgorithmRel:  "rel",
	AlgorithmRmax: "rmax",
	AlgorithmRmin: "rmin",
	AlgorithmR1st: "r1st",
	AlgorithmR2nd: "r2nd",
	AlgorithmUlps: "ulps",
}

func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// Symmetric reports whether swapping the compared values can never change the result.
func (a Algorithm) Symmetric() bool {
	return a != AlgorithmR1st && a != AlgorithmR2nd
}

// methodStem is the part of the comparison and debug method names that
// identifies the algorithm. rel is spelled rmax in method names.
func (a Algorithm) methodStem() string {
	switch a {
	case AlgorithmAbs:
		return "Abs"
	case AlgorithmRel, AlgorithmRmax:
		return "Rmax"
	case AlgorithmRmin:
		return "Rmin"
	case AlgorithmR1st:
		return "R1st"
	case AlgorithmR2nd:
		return "R2nd"
	case AlgorithmUlps:
		return "Ulps"
	}
	return ""
}

// Tolerance is a single check of a comparison expression.
//
// Epsilon is the maximum difference allowed. For scalars it may be any Go number; ulps checks need a non-negative integer. For composite values it must have the type the matching method expects: the value's own type for abs and relative checks, its ULPs type for ulps checks. All checks take a single float (or, for ulps, an integer) that is applied to every float inside the value.
type Tolerance struct {
	Algorithm Algorithm
	All       bool
	Epsilon   any
}

// Name is the check's name as it appears in failure reports, e.g. "rmax" or "ulps_all".
func (t Tolerance) Name() string {
	if t.All {
		return t.Algorithm.String() + "_all"
	}
	return t.Algorithm.String()
}

func (t Tolerance) String() string {
	return fmt.Sprintf("%s <= %v", t.Name(), t.Epsilon)
}

func (t Tolerance) eqMethod() string {
	if t.All {
		return "Eq" + t.Algorithm.methodStem() + "All"
	}
	return "Eq" + t.Algorithm.methodStem()
}

func (t Tolerance) debugMethod() string {
	if t.All {
		return "Debug" + t.Algorithm.methodStem() + "AllEpsilon"
	}
	return "Debug" + t.Algorithm.methodStem() + "Epsilon"
}

func Abs(maxDiff any) Tolerance  { return Tolerance{Algorithm: AlgorithmAbs, Epsilon: maxDiff} }
func Rel(maxDiff any) Tolerance  { return Tolerance{Algorithm: AlgorithmRel, Epsilon: maxDiff} }
func Rmax(maxDiff any) Tolerance { return Tolerance{Algorithm: AlgorithmRmax, Epsilon: maxDiff} }
func Rmin(maxDiff any) Tolerance { return Tolerance{Algorithm: AlgorithmRmin, Epsilon: maxDiff} }
func R1st(maxDiff any) Tolerance { return Tolerance{Algorithm: AlgorithmR1st, Epsilon: maxDiff} }
func R2nd(maxDiff any) Tolerance { return Tolerance{Algorithm: AlgorithmR2nd, Epsilon: maxDiff} }
func Ulps(maxDiff any) Tolerance { return Tolerance{Algorithm: AlgorithmUlps, Epsilon: maxDiff} }

func AbsAll(maxDiff any) Tolerance {
	return Tolerance{Algorithm: AlgorithmAbs, All: true, Epsilon: maxDiff}
}

func RelAll(maxDiff any) Tolerance {
	return Tolerance{Algorithm: AlgorithmRel, All: true, Epsilon: maxDiff}
}

func RmaxAll(maxDiff any) Tolerance {
	return Tolerance{Algorithm: AlgorithmRmax, All: true, Epsilon: maxDiff}
}

func RminAll(maxDiff any) Tolerance {
	return Tolerance{Algorithm: AlgorithmRmin, All: true, Epsilon: maxDiff}
}

func R1stAll(maxDiff any) Tolerance {
	return Tolerance{Algorithm: AlgorithmR1st, All: true, Epsilon: maxDiff}
}

func R2ndAll(maxDiff any) Tolerance {
	return Tolerance{Algorithm: AlgorithmR2nd, All: true, Epsilon: maxDiff}
}

func UlpsAll(maxDiff any) Tolerance {
	return Tolerance{Algorithm: AlgorithmUlps, All: true, Epsilon: maxDiff}
}

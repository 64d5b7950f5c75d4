package derive

import (
	"fmt"
	"strings"

	"github.com/antithesishq/floateq/tools/floateq-gen/common"
)

var algorithms = []string{"Abs", "Rmax", "Rmin", "R1st", "R2nd"}

type epsilonMode int

const (
	epsilonNone epsilonMode = iota
	epsilonField
	epsilonShared
)

// Method is one generated method of a derived struct.
type Method struct {
	Name   string
	Params string
	Result string
	Body   []string
}

// operation describes how a method is applied to each field.
type operation struct {
	name string
	// scalar is the root package function used for float elements.
	scalar string
	// method is the method called on complex and derived elements.
	method  string
	epsilon epsilonMode
	ulps    bool
}

func pkg(name string) string {
	return common.FLOATEQ_PACKAGE + "." + name
}

// UlpsType is the type of the field in the ULPs epsilon struct.
func (f *Field) UlpsType() string {
	var elem string
	switch f.Kind {
	case FieldFloat:
		elem = "uint64"
	case FieldComplex:
		elem = pkg("ComplexUlps")
	case FieldDerived:
		elem = f.Derived.UlpsEpsilon
	}
	return f.shapePrefix() + elem
}

// DiffType is the type of the field in the debug ULPs diff struct.
func (f *Field) DiffType() string {
	var elem string
	switch f.Kind {
	case FieldFloat:
		elem = pkg("UlpsDiff")
	case FieldComplex:
		elem = pkg("ComplexUlpsDiff")
	case FieldDerived:
		elem = f.Derived.DebugUlpsDiff
	}
	return f.shapePrefix() + elem
}

func (f *Field) shapePrefix() string {
	switch f.Shape {
	case ShapeArray:
		return "[" + f.Len + "]"
	case ShapeSlice:
		return "[]"
	}
	return ""
}

// allEpsilonType is the type a shared epsilon is converted to for this field.
func (f *Field) allEpsilonType() string {
	switch f.Kind {
	case FieldDerived:
		return f.Derived.AllEpsilon
	default:
		return f.Float
	}
}

func (f *Field) sliced(recv string) string {
	expr := recv + "." + f.Name
	if f.Shape == ShapeArray {
		return expr + "[:]"
	}
	return expr
}

// elementFunc names the function applied to each element of an array or
// slice field.
func (f *Field) elementFunc(op operation) string {
	if f.Kind == FieldFloat {
		return fmt.Sprintf("%s[%s]", pkg(op.scalar), f.Float)
	}
	return f.Elem + "." + op.method
}

func (st *Struct) sharedEpsilon(f *Field, op operation) string {
	if op.ulps || f.allEpsilonType() == st.AllEpsilon {
		return "maxDiff"
	}
	return f.allEpsilonType() + "(maxDiff)"
}

// fieldExpr is the expression applying op to one field.
func (st *Struct) fieldExpr(f *Field, op operation) string {
	var eps string
	switch op.epsilon {
	case epsilonField:
		eps = "maxDiff." + f.Name
	case epsilonShared:
		eps = st.sharedEpsilon(f, op)
	}

	if f.Shape == ShapeScalar {
		args := []string{"other." + f.Name}
		if eps != "" {
			args = append(args, eps)
		}
		if f.Kind == FieldFloat {
			return fmt.Sprintf("%s(a.%s, %s)", pkg(op.scalar), f.Name, strings.Join(args, ", "))
		}
		return fmt.Sprintf("a.%s.%s(%s)", f.Name, op.method, strings.Join(args, ", "))
	}

	isEq := strings.HasPrefix(op.name, "Eq")
	var helper string
	args := []string{f.sliced("a"), f.sliced("other")}
	switch op.epsilon {
	case epsilonNone:
		helper = "MapPairs"
	case epsilonField:
		helper = map[bool]string{true: "EqEach", false: "MapEach"}[isEq]
		args = append(args, f.sliced("maxDiff"))
	case epsilonShared:
		helper = map[bool]string{true: "EqEachAll", false: "MapEachAll"}[isEq]
		args = append(args, eps)
	}
	args = append(args, f.elementFunc(op))
	return fmt.Sprintf("%s(%s)", pkg(helper), strings.Join(args, ", "))
}

func (st *Struct) eqMethod(op operation, params string) Method {
	terms := make([]string, 0, len(st.Fields))
	for _, f := range st.Fields {
		terms = append(terms, st.fieldExpr(f, op))
	}
	body := "return true"
	if len(terms) > 0 {
		body = "return " + strings.Join(terms, " &&\n")
	}
	return Method{Name: op.name, Params: params, Result: "bool", Body: []string{body}}
}

func (st *Struct) debugMethod(op operation, params, result string) Method {
	body := []string{"var r " + result}
	for _, f := range st.Fields {
		expr := st.fieldExpr(f, op)
		if f.Shape == ShapeArray {
			body = append(body, fmt.Sprintf("copy(r.%s[:], %s)", f.Name, expr))
		} else {
			body = append(body, fmt.Sprintf("r.%s = %s", f.Name, expr))
		}
	}
	body = append(body, "return r")
	return Method{Name: op.name, Params: params, Result: result, Body: body}
}

// Methods lists every method generated for the struct: the per-field
// comparisons and their debug counterparts, followed by the shared epsilon
// variants when all_epsilon is set.
func (st *Struct) Methods() []Method {
	self := st.Name
	var methods []Method

	for _, alg := range algorithms {
		name := "Eq" + alg
		methods = append(methods, st.eqMethod(
			operation{name: name, scalar: name, method: name, epsilon: epsilonField},
			fmt.Sprintf("other, maxDiff %s", self)))
	}
	methods = append(methods, st.eqMethod(
		operation{name: "EqUlps", scalar: "EqUlps", method: "EqUlps", epsilon: epsilonField, ulps: true},
		fmt.Sprintf("other %s, maxDiff %s", self, st.UlpsEpsilon)))

	if st.AllEpsilon != "" {
		for _, alg := range algorithms {
			name := "Eq" + alg + "All"
			methods = append(methods, st.eqMethod(
				operation{name: name, scalar: "Eq" + alg, method: name, epsilon: epsilonShared},
				fmt.Sprintf("other %s, maxDiff %s", self, st.AllEpsilon)))
		}
		methods = append(methods, st.eqMethod(
			operation{name: "EqUlpsAll", scalar: "EqUlps", method: "EqUlpsAll", epsilon: epsilonShared, ulps: true},
			fmt.Sprintf("other %s, maxDiff uint64", self)))
	}

	methods = append(methods,
		st.debugMethod(
			operation{name: "DebugAbsDiff", scalar: "DebugAbsDiff", method: "DebugAbsDiff"},
			"other "+self, self),
		st.debugMethod(
			operation{name: "DebugUlpsDiff", scalar: "DebugUlpsDiff", method: "DebugUlpsDiff"},
			"other "+self, st.DebugUlpsDiff))
	for _, alg := range algorithms {
		name := "Debug" + alg + "Epsilon"
		methods = append(methods, st.debugMethod(
			operation{name: name, scalar: name, method: name, epsilon: epsilonField},
			fmt.Sprintf("other, maxDiff %s", self), self))
	}
	methods = append(methods, st.debugMethod(
		operation{name: "DebugUlpsEpsilon", scalar: "DebugUlpsEpsilon", method: "DebugUlpsEpsilon", epsilon: epsilonField, ulps: true},
		fmt.Sprintf("other %s, maxDiff %s", self, st.UlpsEpsilon), st.UlpsEpsilon))

	if st.AllEpsilon != "" {
		for _, alg := range algorithms {
			name := "Debug" + alg + "AllEpsilon"
			methods = append(methods, st.debugMethod(
				operation{name: name, scalar: "Debug" + alg + "Epsilon", method: name, epsilon: epsilonShared},
				fmt.Sprintf("other %s, maxDiff %s", self, st.AllEpsilon), self))
		}
		methods = append(methods, st.debugMethod(
			operation{name: "DebugUlpsAllEpsilon", scalar: "DebugUlpsEpsilon", method: "DebugUlpsAllEpsilon", epsilon: epsilonShared, ulps: true},
			fmt.Sprintf("other %s, maxDiff uint64", self), st.UlpsEpsilon))
	}
	return methods
}

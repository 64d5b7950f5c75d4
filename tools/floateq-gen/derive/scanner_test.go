package derive

import (
	"io"
	"testing"

	"github.com/antithesishq/floateq/tools/floateq-gen/common"
	"github.com/go-quicktest/qt"
)

func newTestScanner() *Scanner {
	return NewScanner(common.NewLogWriterTo(io.Discard, 0))
}

func resolve(t *testing.T, src string) ([]*Struct, error) {
	t.Helper()
	s := newTestScanner()
	qt.Assert(t, qt.IsNil(s.ScanSource("shapes.go", src)))
	return s.Resolve()
}

const shapesSource = `package shapes

import "github.com/antithesishq/floateq"

type Meters float32

type Distance Meters

// Point is a position on a plane.
//
//floateq:derive ulps_epsilon=PointUlps debug_ulps_diff=PointDebugUlpsDiff all_epsilon=float64
type Point struct {
	X, Y float64
}

type (
	Plain struct {
		Name string
	}

	//floateq:derive ulps_epsilon=SignalUlps debug_ulps_diff=SignalDebugUlpsDiff all_epsilon=float64
	Signal struct {
		Gain    Distance
		Taps    [3]float64
		Samples []float32
		Phasor  floateq.Complex[float64]
		Path    []Point
		Point
	}
)
`

func TestResolve(t *testing.T) {
	structs, err := resolve(t, shapesSource)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.HasLen(structs, 2))

	point, signal := structs[0], structs[1]
	qt.Assert(t, qt.Equals(point.Name, "Point"))
	qt.Assert(t, qt.Equals(point.UlpsEpsilon, "PointUlps"))
	qt.Assert(t, qt.Equals(point.AllEpsilon, "float64"))
	qt.Assert(t, qt.Equals(point.Position.Line, 12))
	qt.Assert(t, qt.DeepEquals(point.Fields, []*Field{
		{Name: "X", Kind: FieldFloat, Elem: "float64", Float: "float64"},
		{Name: "Y", Kind: FieldFloat, Elem: "float64", Float: "float64"},
	}))

	qt.Assert(t, qt.Equals(signal.Name, "Signal"))
	qt.Assert(t, qt.HasLen(signal.Fields, 6))
	qt.Assert(t, qt.DeepEquals(signal.Fields[:4], []*Field{
		{Name: "Gain", Kind: FieldFloat, Elem: "Distance", Float: "Distance"},
		{Name: "Taps", Kind: FieldFloat, Shape: ShapeArray, Len: "3", Elem: "float64", Float: "float64"},
		{Name: "Samples", Kind: FieldFloat, Shape: ShapeSlice, Elem: "float32", Float: "float32"},
		{Name: "Phasor", Kind: FieldComplex, Elem: "floateq.Complex[float64]", Float: "float64"},
	}))

	path, embedded := signal.Fields[4], signal.Fields[5]
	qt.Assert(t, qt.Equals(path.Name, "Path"))
	qt.Assert(t, qt.Equals(path.Kind, FieldDerived))
	qt.Assert(t, qt.Equals(path.Shape, ShapeSlice))
	qt.Assert(t, qt.Equals(path.Derived, point))
	qt.Assert(t, qt.Equals(embedded.Name, "Point"))
	qt.Assert(t, qt.Equals(embedded.Shape, ShapeScalar))
	qt.Assert(t, qt.Equals(embedded.Derived, point))
}

func TestResolveAcrossFiles(t *testing.T) {
	s := newTestScanner()
	qt.Assert(t, qt.IsNil(s.ScanSource("segment.go", `package shapes

//floateq:derive ulps_epsilon=SegmentUlps debug_ulps_diff=SegmentDebugUlpsDiff
type Segment struct {
	Start, End Point
	Width      Meters
}
`)))
	qt.Assert(t, qt.IsNil(s.ScanSource("point.go", `package shapes

type Meters float32

//floateq:derive ulps_epsilon=PointUlps debug_ulps_diff=PointDebugUlpsDiff
type Point struct{ X, Y float64 }
`)))
	qt.Assert(t, qt.IsNil(s.ScanSource("shapes_floateq.go", "this is not go")))
	qt.Assert(t, qt.IsNil(s.ScanSource("derived.go", "// Code generated by floateq-gen. DO NOT EDIT.\n\npackage shapes\n\ntype PointUlps struct{}\n")))
	qt.Assert(t, qt.Equals(s.FilesScanned, 2))
	qt.Assert(t, qt.Equals(s.PackageName, "shapes"))

	structs, err := s.Resolve()
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.HasLen(structs, 2))
	qt.Assert(t, qt.Equals(structs[0].Name, "Segment"))
	qt.Assert(t, qt.HasLen(structs[0].Fields, 3))
	qt.Assert(t, qt.Equals(structs[0].Fields[1].Derived, structs[1]))
	qt.Assert(t, qt.Equals(structs[0].Fields[2].Float, "Meters"))
}

func TestResolveImportAlias(t *testing.T) {
	structs, err := resolve(t, `package shapes

import fq "github.com/antithesishq/floateq"

//floateq:derive ulps_epsilon=WaveUlps debug_ulps_diff=WaveDebugUlpsDiff
type Wave struct {
	Phasors [2]fq.Complex[float32]
}
`)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.DeepEquals(structs[0].Fields, []*Field{
		{Name: "Phasors", Kind: FieldComplex, Shape: ShapeArray, Len: "2", Elem: "floateq.Complex[float32]", Float: "float32"},
	}))
}

func TestResolveEmptyStruct(t *testing.T) {
	structs, err := resolve(t, `package shapes

//floateq:derive ulps_epsilon=UnitUlps debug_ulps_diff=UnitDebugUlpsDiff
type Unit struct{}
`)
	qt.Assert(t, qt.IsNil(err))
	qt.Assert(t, qt.HasLen(structs, 1))
	qt.Assert(t, qt.HasLen(structs[0].Fields, 0))
}

func TestResolveErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{{
		name: "map field",
		src: `//floateq:derive ulps_epsilon=BadUlps debug_ulps_diff=BadDiff
type Bad struct{ M map[string]float64 }`,
		want: `shapes.go:4:18: field M of Bad: unsupported type map\[string\]float64`,
	}, {
		name: "pointer field",
		src: `//floateq:derive ulps_epsilon=BadUlps debug_ulps_diff=BadDiff
type Bad struct{ P *float64 }`,
		want: `.*field P of Bad: unsupported type \*float64`,
	}, {
		name: "nested array",
		src: `//floateq:derive ulps_epsilon=BadUlps debug_ulps_diff=BadDiff
type Bad struct{ Grid [2][2]float64 }`,
		want: `.*field Grid of Bad: unsupported type \[2\]float64`,
	}, {
		name: "complex without import",
		src: `//floateq:derive ulps_epsilon=BadUlps debug_ulps_diff=BadDiff
type Bad struct{ C floateq.Complex[float64] }`,
		want: `.*field C of Bad: unsupported type floateq.Complex\[float64\]`,
	}, {
		name: "builtin complex",
		src: `//floateq:derive ulps_epsilon=BadUlps debug_ulps_diff=BadDiff
type Bad struct{ C complex128 }`,
		want: `.*unsupported type complex128`,
	}, {
		name: "generic",
		src: `//floateq:derive ulps_epsilon=BadUlps debug_ulps_diff=BadDiff
type Bad[T any] struct{ V T }`,
		want: `shapes.go:3:1: Bad is generic, only non-generic structs can be derived`,
	}, {
		name: "not a struct",
		src: `//floateq:derive ulps_epsilon=BadUlps debug_ulps_diff=BadDiff
type Bad float64`,
		want: `.*Bad is not a struct, only structs can be derived`,
	}, {
		name: "alias",
		src: `type Other struct{}

//floateq:derive ulps_epsilon=BadUlps debug_ulps_diff=BadDiff
type Bad = Other`,
		want: `.*Bad is an alias, only struct declarations can be derived`,
	}, {
		name: "bad directive",
		src: `//floateq:derive debug_ulps_diff=BadDiff
type Bad struct{}`,
		want: "(?s)shapes.go:3:1: Bad: Missing epsilon ULPs type name.*`ulps_epsilon=BadUlps`.*",
	}, {
		name: "two directives",
		src: `//floateq:derive ulps_epsilon=BadUlps debug_ulps_diff=BadDiff
//floateq:derive ulps_epsilon=BadUlps debug_ulps_diff=BadDiff
type Bad struct{}`,
		want: ".*more than one `floateq:derive` directive on Bad",
	}, {
		name: "all epsilon not a float",
		src: `//floateq:derive ulps_epsilon=BadUlps debug_ulps_diff=BadDiff all_epsilon=int
type Bad struct{ X float64 }`,
		want: `.*all_epsilon of Bad must be a float type, found int`,
	}, {
		name: "nested without all epsilon",
		src: `//floateq:derive ulps_epsilon=InnerUlps debug_ulps_diff=InnerDiff
type Inner struct{ X float64 }

//floateq:derive ulps_epsilon=BadUlps debug_ulps_diff=BadDiff all_epsilon=float64
type Bad struct{ In Inner }`,
		want: `.*field In of Bad needs Inner to declare all_epsilon`,
	}, {
		name: "recursive",
		src: `//floateq:derive ulps_epsilon=BadUlps debug_ulps_diff=BadDiff
type Bad struct{ Next []Bad }`,
		want: `.*field Next of Bad is recursive`,
	}, {
		name: "same ULPs names",
		src: `//floateq:derive ulps_epsilon=BadUlps debug_ulps_diff=BadUlps
type Bad struct{}`,
		want: `.*Bad uses BadUlps for both ULPs types`,
	}, {
		name: "generated name declared",
		src: `type BadUlps struct{}

//floateq:derive ulps_epsilon=BadUlps debug_ulps_diff=BadDiff
type Bad struct{}`,
		want: `.*BadUlps is already declared in package shapes`,
	}, {
		name: "generated name shared",
		src: `//floateq:derive ulps_epsilon=SharedUlps debug_ulps_diff=ADiff
type A struct{}

//floateq:derive ulps_epsilon=SharedUlps debug_ulps_diff=BDiff
type B struct{}`,
		want: `.*SharedUlps is also generated for [AB]`,
	}}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			structs, err := resolve(t, "package shapes\n\n"+test.src+"\n")
			qt.Assert(t, qt.IsNil(structs))
			qt.Assert(t, qt.ErrorMatches(err, test.want))
		})
	}
}

func TestScanErrors(t *testing.T) {
	s := newTestScanner()
	err := s.ScanSource("broken.go", "package shapes\n\ntype struct{")
	qt.Assert(t, qt.ErrorMatches(err, `unable to parse broken.go: .*`))

	s = newTestScanner()
	qt.Assert(t, qt.IsNil(s.ScanSource("a.go", "package shapes\n")))
	err = s.ScanSource("b.go", "package other\n")
	qt.Assert(t, qt.ErrorMatches(err, `b.go: found package other, expected shapes`))

	s = newTestScanner()
	qt.Assert(t, qt.IsNil(s.ScanSource("a.go", "package shapes\n\ntype Point struct{}\n")))
	err = s.ScanSource("b.go", "package shapes\n\ntype Point struct{}\n")
	qt.Assert(t, qt.ErrorMatches(err, `b.go:3:6: Point redeclared, previous declaration at a.go:3:6`))
}

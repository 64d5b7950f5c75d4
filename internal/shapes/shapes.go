// Package shapes holds the geometry and signal types floateq-gen derives
// comparison methods for. It doubles as the tool's end-to-end fixture: the
// checked-in shapes_floateq.go must match what the generator produces.
package shapes

//go:generate go run ../../tools/floateq-gen

import (
	"math"

	"github.com/antithesishq/floateq"
)

type Meters float32

// Point is a position on a plane.
//
//floateq:derive ulps_epsilon=PointUlps debug_ulps_diff=PointDebugUlpsDiff all_epsilon=float64
type Point struct {
	X, Y float64
}

func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Segment is a stroke between two points.
//
//floateq:derive ulps_epsilon=SegmentUlps debug_ulps_diff=SegmentDebugUlpsDiff
type Segment struct {
	Start, End Point
	Width      Meters
}

func (s Segment) Length() float64 {
	d := s.End.Sub(s.Start)
	return math.Hypot(d.X, d.Y)
}

// Signal is a sampled waveform and the path it was traced along.
//
//floateq:derive ulps_epsilon=SignalUlps debug_ulps_diff=SignalDebugUlpsDiff all_epsilon=float64
type Signal struct {
	Gain    float64
	Taps    [3]float64
	Samples []float32
	Phasor  floateq.Complex[float64]
	Path    []Point
}

//floateq:derive ulps_epsilon=UnitUlps debug_ulps_diff=UnitDebugUlpsDiff
type Unit struct{}

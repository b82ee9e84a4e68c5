// Package projection maps the six logical pipe directions onto the 2D
// isometric drawing plane.
package projection

import (
	"math"

	"github.com/philipparndt/isopipe/pkg/geometry"
	"github.com/philipparndt/isopipe/pkg/pipe"
)

// Scale is the fixed number of world units per centimeter of pipe
const Scale = 2.5

// TiltDegrees is the fixed isometric tilt angle. The four compass
// directions are drawn at this angle from the horizontal axis.
const TiltDegrees = 30.0

var (
	cosTilt = math.Cos(TiltDegrees * math.Pi / 180)
	sinTilt = math.Sin(TiltDegrees * math.Pi / 180)
)

// VectorFor converts a length in centimeters and a direction into a 2D
// displacement in world units. Y grows downward, so UP means negative Y.
//
// The six cases are enumerated individually; the sign pattern per direction
// is part of the drawing convention (NORTH runs up-right, WEST up-left) and
// must not be derived from a formula that could reorder it. The function is
// pure: the resolver relies on bit-identical results for repeated calls.
func VectorFor(length float64, direction pipe.Direction) geometry.Point {
	run := length * Scale

	switch direction {
	case pipe.Up:
		return geometry.Point{X: 0, Y: -run}
	case pipe.Down:
		return geometry.Point{X: 0, Y: run}
	case pipe.North:
		return geometry.Point{X: run * cosTilt, Y: -run * sinTilt}
	case pipe.South:
		return geometry.Point{X: -run * cosTilt, Y: run * sinTilt}
	case pipe.East:
		return geometry.Point{X: run * cosTilt, Y: run * sinTilt}
	case pipe.West:
		return geometry.Point{X: -run * cosTilt, Y: -run * sinTilt}
	}
	return geometry.Point{}
}

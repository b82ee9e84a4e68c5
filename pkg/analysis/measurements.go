package analysis

import (
	"fmt"
	"sort"

	"github.com/philipparndt/isopipe/pkg/geometry"
	"github.com/philipparndt/isopipe/pkg/pipe"
	"github.com/philipparndt/isopipe/pkg/resolve"
)

// SizeTotal is the aggregated pipe length for one nominal size
type SizeTotal struct {
	Size     string
	Count    int
	LengthCm float64
}

// Extents is the bounding rectangle of all resolved coordinates, in world
// units
type Extents struct {
	Min geometry.Point
	Max geometry.Point
}

// Size returns the width and height of the extents
func (e Extents) Size() geometry.Point {
	return e.Max.Sub(e.Min)
}

// MeasurementResult contains various measurements of a piping plan
type MeasurementResult struct {
	SegmentCount  int
	FittingCount  int // zero-length segments: valves, fittings
	TotalLengthCm float64
	SizeTotals    []SizeTotal // sorted by size
	Extents       Extents
	Unresolvable  int // segments excluded by the resolver
}

// AnalyzePlan measures the plan: run lengths per nominal size, total length,
// and the drawing extents of the resolved coordinates.
func AnalyzePlan(plan *pipe.Plan) *MeasurementResult {
	segments := plan.Segments()
	coords, diag := resolve.ResolveAll(segments)

	result := &MeasurementResult{
		SegmentCount: len(segments),
		Unresolvable: len(diag.Orphans) + len(diag.Cycles),
	}

	bySize := make(map[string]*SizeTotal)
	for _, s := range segments {
		if s.Length == 0 {
			result.FittingCount++
		}
		result.TotalLengthCm += s.Length

		total, ok := bySize[s.Size]
		if !ok {
			total = &SizeTotal{Size: s.Size}
			bySize[s.Size] = total
		}
		total.Count++
		total.LengthCm += s.Length
	}

	for _, total := range bySize {
		result.SizeTotals = append(result.SizeTotals, *total)
	}
	sort.Slice(result.SizeTotals, func(i, j int) bool {
		return result.SizeTotals[i].Size < result.SizeTotals[j].Size
	})

	result.Extents = extentsOf(coords)
	return result
}

// extentsOf computes the bounding rectangle over every resolved start and
// end point. The origin is always included: an empty drawing still has a
// root.
func extentsOf(coords resolve.CoordinateMap) Extents {
	var e Extents
	for _, pos := range coords {
		for _, p := range []geometry.Point{pos.Start, pos.End} {
			if p.X < e.Min.X {
				e.Min.X = p.X
			}
			if p.Y < e.Min.Y {
				e.Min.Y = p.Y
			}
			if p.X > e.Max.X {
				e.Max.X = p.X
			}
			if p.Y > e.Max.Y {
				e.Max.Y = p.Y
			}
		}
	}
	return e
}

// FormatPoint formats a point for display
func FormatPoint(p geometry.Point) string {
	return fmt.Sprintf("(%.3f, %.3f)", p.X, p.Y)
}

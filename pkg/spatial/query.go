// Package spatial answers read-only proximity queries over a resolved
// coordinate map: snapping the cursor to endpoints and hit-testing segments.
// Callers convert on-screen pixel thresholds to world units (pixels divided
// by zoom) before calling.
package spatial

import (
	"sort"

	"github.com/philipparndt/isopipe/pkg/geometry"
	"github.com/philipparndt/isopipe/pkg/pipe"
	"github.com/philipparndt/isopipe/pkg/resolve"
)

// NearestSnapPoint returns the snap point nearest to p, if any lies strictly
// within threshold. Snap candidates are the root origin and the end point of
// every resolved segment; start points always coincide with some end point
// or the origin, so they are not offered separately.
//
// Ties are deterministic: the origin is considered first, then segments in
// ascending id order, and a candidate only replaces the current best on a
// strictly smaller distance.
func NearestSnapPoint(p geometry.Point, coords resolve.CoordinateMap, threshold float64) (geometry.Point, bool) {
	best := geometry.Point{}
	bestDist := p.Length()

	for _, id := range sortedIDs(coords) {
		end := coords[id].End
		if d := p.Distance(end); d < bestDist {
			best = end
			bestDist = d
		}
	}

	if bestDist < threshold {
		return best, true
	}
	return geometry.Point{}, false
}

// ClosestSegment returns the id of the segment geometrically closest to p,
// measured by clamped point-to-segment distance. The root is always a
// candidate at its distance from the origin.
//
// When nothing lies strictly within threshold the root id is returned: the
// editing surface always needs an active anchor for the next operation, so
// "nothing hit" falls back to the root rather than reporting no selection.
func ClosestSegment(p geometry.Point, coords resolve.CoordinateMap, threshold float64) string {
	best := pipe.RootID
	bestDist := p.Length()

	for _, id := range sortedIDs(coords) {
		pos := coords[id]
		d := geometry.DistancePointToSegment(p.X, p.Y, pos.Start.X, pos.Start.Y, pos.End.X, pos.End.Y)
		if d < bestDist {
			best = id
			bestDist = d
		}
	}

	if bestDist < threshold {
		return best
	}
	return pipe.RootID
}

// sortedIDs returns the map keys in ascending order. Map iteration order is
// random in Go; queries must not depend on it.
func sortedIDs(coords resolve.CoordinateMap) []string {
	ids := make([]string, 0, len(coords))
	for id := range coords {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Package resolve turns the logical segment tree into absolute 2D
// coordinates. Each segment only knows its parent and a direction plus
// length; the resolver walks parent chains back to the root origin and
// memoizes, so every position is computed exactly once per pass.
package resolve

import (
	"sort"

	"github.com/philipparndt/isopipe/pkg/geometry"
	"github.com/philipparndt/isopipe/pkg/pipe"
	"github.com/philipparndt/isopipe/pkg/projection"
)

// Position is the absolute location of one segment. Start always equals the
// parent's End, or the origin when the parent is the root.
type Position struct {
	Start geometry.Point `json:"start"`
	End   geometry.Point `json:"end"`
}

// CoordinateMap holds the resolved position of every resolvable segment,
// keyed by segment id. It is a throwaway derived value: recompute it after
// any change to the segment collection, never patch it in place.
type CoordinateMap map[string]Position

// Diagnostics reports segments that were excluded from the coordinate map.
// An excluded segment never fails the pass; the rest of the tree still
// resolves.
type Diagnostics struct {
	// Orphans are segments whose ancestor chain hits a missing parent id
	Orphans []string
	// Cycles are segments that are part of, or descend from, a parent cycle
	Cycles []string
}

// Clean reports whether every segment resolved
func (d Diagnostics) Clean() bool {
	return len(d.Orphans) == 0 && len(d.Cycles) == 0
}

type resolveState int

const (
	unseen resolveState = iota
	visiting
	done
	failedOrphan
	failedCycle
)

type resolver struct {
	byID   map[string]pipe.Segment
	coords CoordinateMap
	state  map[string]resolveState
}

// ResolveAll computes the absolute start and end position of every segment
// whose ancestor chain terminates at the root. Input order does not matter
// and the input is never mutated.
//
// Segments with a missing or cyclic ancestry produce no entry in the map;
// they are listed in the returned Diagnostics instead. Duplicate ids keep
// the first occurrence. The pass never fails and never loops: a segment
// reached twice while its own chain is still being walked marks the whole
// branch as cyclic.
func ResolveAll(segments []pipe.Segment) (CoordinateMap, Diagnostics) {
	r := &resolver{
		byID:   make(map[string]pipe.Segment, len(segments)),
		coords: make(CoordinateMap, len(segments)),
		state:  make(map[string]resolveState, len(segments)),
	}

	for _, s := range segments {
		if _, dup := r.byID[s.ID]; !dup {
			r.byID[s.ID] = s
		}
	}

	for _, s := range segments {
		r.resolve(s.ID)
	}

	var diag Diagnostics
	for id, st := range r.state {
		switch st {
		case failedOrphan:
			diag.Orphans = append(diag.Orphans, id)
		case failedCycle:
			diag.Cycles = append(diag.Cycles, id)
		}
	}
	sort.Strings(diag.Orphans)
	sort.Strings(diag.Cycles)

	return r.coords, diag
}

// resolve computes the absolute end position of one segment, depth-first,
// parent before child. Returns the terminal state of the segment so callers
// can propagate the failure cause down the branch.
func (r *resolver) resolve(id string) (geometry.Point, resolveState) {
	switch r.state[id] {
	case done:
		return r.coords[id].End, done
	case visiting:
		// reached again while its own chain is still open: parent cycle
		r.state[id] = failedCycle
		return geometry.Point{}, failedCycle
	case failedOrphan, failedCycle:
		return geometry.Point{}, r.state[id]
	}

	seg := r.byID[id]
	r.state[id] = visiting

	var parentEnd geometry.Point
	if seg.ParentID != pipe.RootID {
		if _, ok := r.byID[seg.ParentID]; !ok {
			r.state[id] = failedOrphan
			return geometry.Point{}, failedOrphan
		}
		end, st := r.resolve(seg.ParentID)
		if st != done {
			r.state[id] = st
			return geometry.Point{}, st
		}
		parentEnd = end
	}

	end := parentEnd.Add(projection.VectorFor(seg.Length, seg.Direction))
	r.coords[id] = Position{Start: parentEnd, End: end}
	r.state[id] = done
	return end, done
}

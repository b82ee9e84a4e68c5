// Package editor is the headless editing surface around a piping plan: it
// owns the segment collection, keeps the derived coordinate map fresh after
// every mutation, and translates cursor interactions (selection, snapping,
// ruler measurements) into spatial queries.
package editor

import (
	"fmt"

	"github.com/philipparndt/isopipe/pkg/geometry"
	"github.com/philipparndt/isopipe/pkg/pipe"
	"github.com/philipparndt/isopipe/pkg/projection"
	"github.com/philipparndt/isopipe/pkg/resolve"
	"github.com/philipparndt/isopipe/pkg/spatial"
)

// DefaultSnapThresholdPx is the on-screen snap radius in pixels
const DefaultSnapThresholdPx = 15.0

// DefaultHitThresholdPx is the on-screen hit-test radius for selecting
// segments, in pixels
const DefaultHitThresholdPx = 10.0

// Editor holds one plan being edited. The coordinate map is recomputed
// after every mutation and must never be reused across one: all query
// methods read the current map.
type Editor struct {
	plan     *pipe.Plan
	coords   resolve.CoordinateMap
	diag     resolve.Diagnostics
	zoom     float64
	selected string
	history  *history
}

// Measurement is the result of a free-form ruler measurement
type Measurement struct {
	Start       geometry.Point
	End         geometry.Point
	WorldUnits  float64
	Centimeters float64
}

// New creates an editor around an existing plan
func New(plan *pipe.Plan) *Editor {
	e := &Editor{
		plan:     plan,
		zoom:     1.0,
		selected: pipe.RootID,
		history:  newHistory(50),
	}
	e.refresh()
	e.history.save(plan)
	return e
}

// Plan returns the plan being edited
func (e *Editor) Plan() *pipe.Plan {
	return e.plan
}

// Coordinates returns the current coordinate map
func (e *Editor) Coordinates() resolve.CoordinateMap {
	return e.coords
}

// Diagnostics returns the resolver diagnostics of the last refresh
func (e *Editor) Diagnostics() resolve.Diagnostics {
	return e.diag
}

// Selected returns the id of the active segment, or pipe.RootID
func (e *Editor) Selected() string {
	return e.selected
}

// Zoom returns the current zoom factor
func (e *Editor) Zoom() float64 {
	return e.zoom
}

// SetZoom sets the zoom factor used to convert pixel thresholds into world
// distances. Non-positive values are ignored.
func (e *Editor) SetZoom(zoom float64) {
	if zoom > 0 {
		e.zoom = zoom
	}
}

// AddSegment adds a segment extending from the given parent. An empty id is
// filled with a generated one; an empty parent id attaches to the currently
// selected segment. The new segment becomes the selection.
func (e *Editor) AddSegment(s pipe.Segment) (string, error) {
	if s.ID == "" {
		s.ID = pipe.NewSegmentID()
	}
	if s.ParentID == "" {
		s.ParentID = e.selected
	}
	if err := e.plan.Add(s); err != nil {
		return "", err
	}
	e.selected = s.ID
	e.commit()
	return s.ID, nil
}

// UpdateSegment replaces an existing segment
func (e *Editor) UpdateSegment(s pipe.Segment) error {
	if err := e.plan.Update(s); err != nil {
		return err
	}
	e.commit()
	return nil
}

// RemoveSegment deletes a segment. Descendants become orphans and drop out
// of the coordinate map until re-parented or removed themselves.
func (e *Editor) RemoveSegment(id string) error {
	if err := e.plan.Remove(id); err != nil {
		return err
	}
	if e.selected == id {
		e.selected = pipe.RootID
	}
	e.commit()
	return nil
}

// SelectAt hit-tests the world-space cursor position and makes the closest
// segment the active selection. Falls back to the root when nothing is
// within the pixel threshold, so there is always an active anchor.
func (e *Editor) SelectAt(p geometry.Point) string {
	threshold := DefaultHitThresholdPx / e.zoom
	e.selected = spatial.ClosestSegment(p, e.coords, threshold)
	return e.selected
}

// SnapAt returns the snap point nearest to the world-space cursor position,
// if one is within the pixel snap radius.
func (e *Editor) SnapAt(p geometry.Point) (geometry.Point, bool) {
	threshold := DefaultSnapThresholdPx / e.zoom
	return spatial.NearestSnapPoint(p, e.coords, threshold)
}

// Measure runs the free-form ruler between two world-space points. When
// snap is set, each endpoint is magnetized to the nearest snap point within
// the snap radius before measuring.
func (e *Editor) Measure(a, b geometry.Point, snap bool) Measurement {
	if snap {
		if snapped, ok := e.SnapAt(a); ok {
			a = snapped
		}
		if snapped, ok := e.SnapAt(b); ok {
			b = snapped
		}
	}
	world := a.Distance(b)
	return Measurement{
		Start:       a,
		End:         b,
		WorldUnits:  world,
		Centimeters: world / projection.Scale,
	}
}

// Undo reverts the last mutation. Returns false when at the oldest state.
func (e *Editor) Undo() (bool, error) {
	plan, ok, err := e.history.undo()
	if err != nil {
		return false, fmt.Errorf("undo failed: %w", err)
	}
	if !ok {
		return false, nil
	}
	e.restore(plan)
	return true, nil
}

// Redo re-applies an undone mutation. Returns false when at the newest
// state.
func (e *Editor) Redo() (bool, error) {
	plan, ok, err := e.history.redo()
	if err != nil {
		return false, fmt.Errorf("redo failed: %w", err)
	}
	if !ok {
		return false, nil
	}
	e.restore(plan)
	return true, nil
}

// commit refreshes derived state and records an undo snapshot
func (e *Editor) commit() {
	e.refresh()
	e.history.save(e.plan)
}

// restore swaps in a plan from history without recording a new snapshot
func (e *Editor) restore(plan *pipe.Plan) {
	e.plan = plan
	if _, ok := plan.Get(e.selected); !ok && e.selected != pipe.RootID {
		e.selected = pipe.RootID
	}
	e.refresh()
}

// refresh discards and recomputes the coordinate map
func (e *Editor) refresh() {
	e.coords, e.diag = resolve.ResolveAll(e.plan.Segments())
}

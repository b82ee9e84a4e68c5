package resolve

import (
	"fmt"
	"math"
	"reflect"
	"testing"

	"github.com/philipparndt/isopipe/pkg/pipe"
)

func segment(id, parent string, length float64, dir pipe.Direction) pipe.Segment {
	return pipe.Segment{
		ID:        id,
		ParentID:  parent,
		Length:    length,
		Direction: dir,
		Size:      "1/2\"",
	}
}

func TestResolveSingleSegment(t *testing.T) {
	coords, diag := ResolveAll([]pipe.Segment{
		segment("s1", pipe.RootID, 100, pipe.North),
	})

	if !diag.Clean() {
		t.Fatalf("expected clean diagnostics, got %+v", diag)
	}

	pos, ok := coords["s1"]
	if !ok {
		t.Fatal("s1 missing from coordinate map")
	}
	if pos.Start.X != 0 || pos.Start.Y != 0 {
		t.Errorf("start should be origin, got %v", pos.Start)
	}
	// 100cm at scale 2.5, 30 degrees: (216.506, -125)
	if math.Abs(pos.End.X-216.50635094610965) > 1e-9 {
		t.Errorf("end X: expected about 216.506, got %v", pos.End.X)
	}
	if math.Abs(pos.End.Y+125) > 1e-9 {
		t.Errorf("end Y: expected -125, got %v", pos.End.Y)
	}
}

func TestResolveChildStartsAtParentEnd(t *testing.T) {
	coords, diag := ResolveAll([]pipe.Segment{
		segment("s1", pipe.RootID, 100, pipe.North),
		segment("s2", "s1", 50, pipe.Up),
	})

	if !diag.Clean() {
		t.Fatalf("expected clean diagnostics, got %+v", diag)
	}

	s1 := coords["s1"]
	s2 := coords["s2"]
	if s2.Start != s1.End {
		t.Errorf("child start %v does not equal parent end %v", s2.Start, s1.End)
	}
	if s2.End.X != s1.End.X {
		t.Errorf("UP segment must not move in X: %v vs %v", s2.End.X, s1.End.X)
	}
	if math.Abs(s2.End.Y-(s1.End.Y-125)) > 1e-10 {
		t.Errorf("UP 50cm should rise 125 world units, got end Y %v from start Y %v", s2.End.Y, s1.End.Y)
	}
}

func TestResolveInputOrderIndependent(t *testing.T) {
	// Children listed before their parents still resolve
	coords, diag := ResolveAll([]pipe.Segment{
		segment("c", "b", 10, pipe.East),
		segment("b", "a", 10, pipe.Up),
		segment("a", pipe.RootID, 10, pipe.North),
	})

	if !diag.Clean() {
		t.Fatalf("expected clean diagnostics, got %+v", diag)
	}
	if len(coords) != 3 {
		t.Fatalf("expected 3 resolved segments, got %d", len(coords))
	}
	if coords["b"].Start != coords["a"].End || coords["c"].Start != coords["b"].End {
		t.Error("parent-before-child chaining broken for out-of-order input")
	}
}

func TestResolveZeroLengthSegment(t *testing.T) {
	// A zero-length segment is a fitting at the parent's endpoint; its
	// children continue from the same point
	coords, diag := ResolveAll([]pipe.Segment{
		segment("run", pipe.RootID, 100, pipe.East),
		segment("valve", "run", 0, pipe.East),
		segment("riser", "valve", 40, pipe.Up),
	})

	if !diag.Clean() {
		t.Fatalf("expected clean diagnostics, got %+v", diag)
	}

	valve := coords["valve"]
	if valve.Start != valve.End {
		t.Errorf("zero-length segment should have start == end, got %+v", valve)
	}
	if coords["riser"].Start != coords["run"].End {
		t.Error("child of zero-length segment should start at grandparent end")
	}
}

func TestResolveOrphanExcluded(t *testing.T) {
	coords, diag := ResolveAll([]pipe.Segment{
		segment("ok", pipe.RootID, 10, pipe.North),
		segment("lost", "missing", 10, pipe.East),
		segment("lost-child", "lost", 10, pipe.Up),
	})

	if _, ok := coords["ok"]; !ok {
		t.Error("unrelated segment should still resolve")
	}
	if _, ok := coords["lost"]; ok {
		t.Error("orphan must not appear in coordinate map")
	}
	if _, ok := coords["lost-child"]; ok {
		t.Error("descendant of orphan must not appear in coordinate map")
	}

	expected := []string{"lost", "lost-child"}
	if !reflect.DeepEqual(diag.Orphans, expected) {
		t.Errorf("expected orphans %v, got %v", expected, diag.Orphans)
	}
}

func TestResolveCycleDoesNotHang(t *testing.T) {
	coords, diag := ResolveAll([]pipe.Segment{
		segment("a", "b", 10, pipe.North),
		segment("b", "a", 10, pipe.South),
		segment("ok", pipe.RootID, 10, pipe.East),
	})

	if len(coords) != 1 {
		t.Errorf("only the acyclic segment should resolve, got %d entries", len(coords))
	}
	if _, ok := coords["ok"]; !ok {
		t.Error("segment outside the cycle should resolve")
	}

	expected := []string{"a", "b"}
	if !reflect.DeepEqual(diag.Cycles, expected) {
		t.Errorf("expected cycles %v, got %v", expected, diag.Cycles)
	}
}

func TestResolveSelfParentCycle(t *testing.T) {
	coords, diag := ResolveAll([]pipe.Segment{
		segment("loop", "loop", 10, pipe.North),
	})

	if len(coords) != 0 {
		t.Errorf("self-parented segment must not resolve, got %v", coords)
	}
	if !reflect.DeepEqual(diag.Cycles, []string{"loop"}) {
		t.Errorf("expected cycle diagnostic for loop, got %+v", diag)
	}
}

func TestResolveDescendantOfCycle(t *testing.T) {
	_, diag := ResolveAll([]pipe.Segment{
		segment("a", "b", 10, pipe.North),
		segment("b", "a", 10, pipe.South),
		segment("child", "a", 10, pipe.Up),
	})

	expected := []string{"a", "b", "child"}
	if !reflect.DeepEqual(diag.Cycles, expected) {
		t.Errorf("expected cycles %v, got %v", expected, diag.Cycles)
	}
}

func TestResolveDuplicateIDKeepsFirst(t *testing.T) {
	coords, _ := ResolveAll([]pipe.Segment{
		segment("dup", pipe.RootID, 100, pipe.East),
		segment("dup", pipe.RootID, 999, pipe.West),
	})

	pos, ok := coords["dup"]
	if !ok {
		t.Fatal("duplicated id should still resolve once")
	}
	if pos.End.X <= 0 {
		t.Errorf("first occurrence (EAST) should win, got end %v", pos.End)
	}
}

func TestResolveIdempotent(t *testing.T) {
	segments := []pipe.Segment{
		segment("a", pipe.RootID, 100, pipe.North),
		segment("b", "a", 50, pipe.Up),
		segment("c", "b", 25, pipe.West),
	}

	first, _ := ResolveAll(segments)
	second, _ := ResolveAll(segments)

	if !reflect.DeepEqual(first, second) {
		t.Error("ResolveAll is not idempotent for an unchanged segment list")
	}
}

func TestResolveLinearComplexity(t *testing.T) {
	// A deep chain must resolve every segment exactly once; with memoization
	// 10000 segments resolve instantly, without it this test would blow the
	// stack or time out
	const n = 10000
	segments := make([]pipe.Segment, 0, n)
	parent := pipe.RootID
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("s%05d", i)
		segments = append(segments, segment(id, parent, 1, pipe.East))
		parent = id
	}

	coords, diag := ResolveAll(segments)
	if !diag.Clean() {
		t.Fatalf("expected clean diagnostics, got %d orphans %d cycles", len(diag.Orphans), len(diag.Cycles))
	}
	if len(coords) != n {
		t.Errorf("expected %d resolved segments, got %d", n, len(coords))
	}
}

package geometry

import (
	"math"
	"testing"
)

func TestPointAdd(t *testing.T) {
	p1 := NewPoint(1, 2)
	p2 := NewPoint(3, 4)
	result := p1.Add(p2)

	expected := NewPoint(4, 6)
	if result != expected {
		t.Errorf("Add failed: expected %v, got %v", expected, result)
	}
}

func TestPointSub(t *testing.T) {
	p1 := NewPoint(4, 6)
	p2 := NewPoint(1, 2)
	result := p1.Sub(p2)

	expected := NewPoint(3, 4)
	if result != expected {
		t.Errorf("Sub failed: expected %v, got %v", expected, result)
	}
}

func TestPointMul(t *testing.T) {
	p := NewPoint(3, -4)
	result := p.Mul(2.5)

	expected := NewPoint(7.5, -10)
	if result != expected {
		t.Errorf("Mul failed: expected %v, got %v", expected, result)
	}
}

func TestPointLength(t *testing.T) {
	p := NewPoint(3, 4)
	length := p.Length()

	expected := 5.0
	if math.Abs(length-expected) > 1e-10 {
		t.Errorf("Length failed: expected %v, got %v", expected, length)
	}
}

func TestPointDistance(t *testing.T) {
	p1 := NewPoint(0, 0)
	p2 := NewPoint(3, 4)
	distance := p1.Distance(p2)

	expected := 5.0
	if math.Abs(distance-expected) > 1e-10 {
		t.Errorf("Distance failed: expected %v, got %v", expected, distance)
	}
}

func TestDistancePointToSegmentProjectionInside(t *testing.T) {
	// Point above the middle of a horizontal segment
	distance := DistancePointToSegment(5, 3, 0, 0, 10, 0)

	expected := 3.0
	if math.Abs(distance-expected) > 1e-10 {
		t.Errorf("expected %v, got %v", expected, distance)
	}
}

func TestDistancePointToSegmentClampedToEndpoint(t *testing.T) {
	// Point beyond the end of the segment: nearest point is the endpoint,
	// not the extension of the line
	distance := DistancePointToSegment(13, 4, 0, 0, 10, 0)

	expected := 5.0
	if math.Abs(distance-expected) > 1e-10 {
		t.Errorf("expected %v, got %v", expected, distance)
	}
}

func TestDistancePointToSegmentBeforeStart(t *testing.T) {
	distance := DistancePointToSegment(-3, -4, 0, 0, 10, 0)

	expected := 5.0
	if math.Abs(distance-expected) > 1e-10 {
		t.Errorf("expected %v, got %v", expected, distance)
	}
}

func TestDistancePointToSegmentZeroLength(t *testing.T) {
	// Zero-length segment degrades to point-to-point distance
	distance := DistancePointToSegment(3, 4, 0, 0, 0, 0)

	expected := 5.0
	if math.Abs(distance-expected) > 1e-10 {
		t.Errorf("expected %v, got %v", expected, distance)
	}
}

func TestDistancePointToSegmentOnSegment(t *testing.T) {
	distance := DistancePointToSegment(5, 5, 0, 0, 10, 10)

	if math.Abs(distance) > 1e-10 {
		t.Errorf("expected 0, got %v", distance)
	}
}

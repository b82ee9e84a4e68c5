package geometry

// DistancePointToSegment returns the minimum Euclidean distance from point
// (px, py) to the line segment from (x1, y1) to (x2, y2).
//
// The point is projected onto the infinite line through the endpoints and the
// projection parameter is clamped to [0, 1], so the nearest point is confined
// to the segment itself. A zero-length segment degrades to the plain
// point-to-point distance.
func DistancePointToSegment(px, py, x1, y1, x2, y2 float64) float64 {
	p := Point{X: px, Y: py}
	a := Point{X: x1, Y: y1}
	b := Point{X: x2, Y: y2}

	ab := b.Sub(a)
	lengthSq := ab.Dot(ab)
	if lengthSq == 0 {
		return p.Distance(a)
	}

	t := p.Sub(a).Dot(ab) / lengthSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	closest := a.Add(ab.Mul(t))
	return p.Distance(closest)
}

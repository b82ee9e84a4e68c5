package geometry

import "math"

// Point represents a 2D point or displacement in world units
type Point struct {
	X, Y float64
}

// NewPoint creates a new 2D point
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points
func (p Point) Add(other Point) Point {
	return Point{
		X: p.X + other.X,
		Y: p.Y + other.Y,
	}
}

// Sub returns the difference between two points
func (p Point) Sub(other Point) Point {
	return Point{
		X: p.X - other.X,
		Y: p.Y - other.Y,
	}
}

// Mul multiplies the point by a scalar
func (p Point) Mul(scalar float64) Point {
	return Point{
		X: p.X * scalar,
		Y: p.Y * scalar,
	}
}

// Dot returns the dot product of two displacement vectors
func (p Point) Dot(other Point) float64 {
	return p.X*other.X + p.Y*other.Y
}

// Length returns the magnitude of the point as a vector from the origin
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Distance returns the Euclidean distance between two points
func (p Point) Distance(other Point) float64 {
	return p.Sub(other).Length()
}

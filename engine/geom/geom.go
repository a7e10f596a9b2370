package geom

import "math"

// Point is a position in world space. Values are never mutated; moving a
// point means building a new one.
type Point struct {
	X, Y, Z float64
}

func P(x, y, z float64) Point { return Point{x, y, z} }

// Offset returns p moved by (dx, dy, dz).
func (p Point) Offset(dx, dy, dz float64) Point { return Point{p.X + dx, p.Y + dy, p.Z + dz} }

// Vector is the directed offset from P1 to P2 with its Euclidean length.
// Build it with NewVector so the components stay consistent with the points.
type Vector struct {
	P1, P2  Point
	X, Y, Z float64
	Len     float64
}

func NewVector(p1, p2 Point) Vector {
	x, y, z := p2.X-p1.X, p2.Y-p1.Y, p2.Z-p1.Z
	return Vector{
		P1:  p1,
		P2:  p2,
		X:   x,
		Y:   y,
		Z:   z,
		Len: math.Sqrt(x*x + y*y + z*z),
	}
}

func (v Vector) Dot(o Vector) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Lerp returns the point at fraction t along the vector, starting at P1.
// t is not clamped.
func (v Vector) Lerp(t float64) Point {
	return Point{v.P1.X + v.X*t, v.P1.Y + v.Y*t, v.P1.Z + v.Z*t}
}

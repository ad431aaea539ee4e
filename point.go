package piechart

import (
	"math"
	"strconv"
)

// Point represents a 2D point or vector.
type Point struct {
	X, Y float64
}

// Pt is a convenience function to create a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns the sum of two points (vector addition).
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns the difference of two points (vector subtraction).
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Mul returns the point scaled by a scalar.
func (p Point) Mul(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Length returns the length of the vector.
func (p Point) Length() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Distance returns the distance between two points.
func (p Point) Distance(q Point) float64 {
	return p.Sub(q).Length()
}

// Lerp performs linear interpolation between two points.
// t=0 returns p, t=1 returns q, intermediate values interpolate.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// String formats the point as "x,y" using the shortest decimal
// representation that round-trips. This is the form embedded in SVG
// path data, so it must be deterministic.
func (p Point) String() string {
	return formatFloat(p.X) + "," + formatFloat(p.Y)
}

// formatFloat is the single float-to-text conversion used in path data.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

package piechart

import "math"

// PolarToCartesian converts a polar coordinate around center to a
// cartesian point. The angle is in degrees, 0 at twelve o'clock,
// increasing clockwise in screen coordinates (Y grows downward). The
// same convention is applied uniformly to slice boundaries and label
// anchors.
//
// Non-finite inputs propagate into the result; callers are expected to
// supply finite values.
func PolarToCartesian(center Point, radius, angleDegrees float64) Point {
	rad := angleDegrees * math.Pi / 180
	return Point{
		X: center.X + radius*math.Sin(rad),
		Y: center.Y - radius*math.Cos(rad),
	}
}

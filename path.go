package piechart

import (
	"math"
	"strings"
)

// PathElement represents a single drawing instruction in a slice path.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// ArcTo draws an elliptical arc to a point, with the semantics of the
// SVG "A" path command (x-axis rotation is always zero here; slice arcs
// are circular). LargeArc selects the arc spanning more than 180 degrees,
// Sweep selects the clockwise direction.
type ArcTo struct {
	Radius   Point
	LargeArc bool
	Sweep    bool
	Point    Point
}

func (ArcTo) isPathElement() {}

// CubicTo draws a cubic Bézier curve. Slice paths never contain cubics
// directly; they appear only in flattened paths.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path represents the outline of one chart slice as a sequence of
// drawing instructions. Renderers can either walk Elements directly or
// use String for ready-made SVG path data.
type Path struct {
	elements []PathElement
	start    Point // Starting point of current subpath
	current  Point // Current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 8),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(pt Point) {
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start = pt
	p.current = pt
}

// LineTo draws a line to a point.
func (p *Path) LineTo(pt Point) {
	p.elements = append(p.elements, LineTo{Point: pt})
	p.current = pt
}

// ArcTo draws a circular arc of the given radius to pt.
func (p *Path) ArcTo(radius float64, largeArc, sweep bool, pt Point) {
	p.elements = append(p.elements, ArcTo{
		Radius:   Pt(radius, radius),
		LargeArc: largeArc,
		Sweep:    sweep,
		Point:    pt,
	})
	p.current = pt
}

// CubicTo draws a cubic Bézier curve.
func (p *Path) CubicTo(c1, c2, pt Point) {
	p.elements = append(p.elements, CubicTo{
		Control1: c1,
		Control2: c2,
		Point:    pt,
	})
	p.current = pt
}

// Close closes the current subpath by drawing a line to the start point.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// Elements returns the path elements.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// CurrentPoint returns the current point.
func (p *Path) CurrentPoint() Point {
	return p.current
}

// String returns the path as SVG path data (M/A/L/C/Z commands). The
// output is deterministic: identical paths serialize byte-for-byte
// identically.
func (p *Path) String() string {
	var b strings.Builder
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			b.WriteByte('M')
			b.WriteString(e.Point.String())
		case LineTo:
			b.WriteByte('L')
			b.WriteString(e.Point.String())
		case ArcTo:
			b.WriteByte('A')
			b.WriteString(formatFloat(e.Radius.X))
			b.WriteByte(',')
			b.WriteString(formatFloat(e.Radius.Y))
			b.WriteString(",0,")
			b.WriteString(flag(e.LargeArc))
			b.WriteByte(',')
			b.WriteString(flag(e.Sweep))
			b.WriteByte(',')
			b.WriteString(e.Point.String())
		case CubicTo:
			b.WriteByte('C')
			b.WriteString(e.Control1.String())
			b.WriteByte(' ')
			b.WriteString(e.Control2.String())
			b.WriteByte(' ')
			b.WriteString(e.Point.String())
		case Close:
			b.WriteByte('Z')
		}
	}
	return b.String()
}

func flag(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

// Flatten returns a copy of the path with every arc approximated by
// cubic Bézier segments of at most 90 degrees each. The result contains
// only MoveTo, LineTo, CubicTo and Close elements, for renderers whose
// path primitives lack elliptical arcs.
func (p *Path) Flatten() *Path {
	result := NewPath()
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			result.MoveTo(e.Point)
		case LineTo:
			result.LineTo(e.Point)
		case ArcTo:
			flattenArc(result, result.current, e)
		case CubicTo:
			result.CubicTo(e.Control1, e.Control2, e.Point)
		case Close:
			result.Close()
		}
	}
	return result
}

// flattenArc appends cubic segments approximating the SVG arc from the
// current point to e.Point. Uses the standard endpoint-to-center
// conversion (SVG 1.1 appendix F.6), specialized to zero x-axis rotation.
func flattenArc(dst *Path, from Point, e ArcTo) {
	rx := math.Abs(e.Radius.X)
	ry := math.Abs(e.Radius.Y)
	if rx == 0 || ry == 0 || from == e.Point {
		dst.LineTo(e.Point)
		return
	}

	// Transform to the arc's local frame.
	px := (from.X - e.Point.X) / 2
	py := (from.Y - e.Point.Y) / 2

	// Scale radii up if the endpoints are too far apart.
	lambda := px*px/(rx*rx) + py*py/(ry*ry)
	if lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	rxsq := rx * rx
	rysq := ry * ry
	pxsq := px * px
	pysq := py * py

	radicand := rxsq*rysq - rxsq*pysq - rysq*pxsq
	if radicand < 0 {
		radicand = 0
	} else {
		radicand /= rxsq*pysq + rysq*pxsq
	}
	coef := math.Sqrt(radicand)
	if e.LargeArc == e.Sweep {
		coef = -coef
	}

	cxp := coef * rx / ry * py
	cyp := coef * -ry / rx * px
	cx := cxp + (from.X+e.Point.X)/2
	cy := cyp + (from.Y+e.Point.Y)/2

	theta1 := vectorAngle(1, 0, (px-cxp)/rx, (py-cyp)/ry)
	dtheta := vectorAngle((px-cxp)/rx, (py-cyp)/ry, (-px-cxp)/rx, (-py-cyp)/ry)
	if !e.Sweep && dtheta > 0 {
		dtheta -= 2 * math.Pi
	}
	if e.Sweep && dtheta < 0 {
		dtheta += 2 * math.Pi
	}

	// Split into segments of at most 90 degrees.
	segments := int(math.Ceil(math.Abs(dtheta) / (math.Pi / 2)))
	if segments == 0 {
		segments = 1
	}
	step := dtheta / float64(segments)

	for i := 0; i < segments; i++ {
		a1 := theta1 + float64(i)*step
		a2 := a1 + step
		arcSegment(dst, cx, cy, rx, ry, a1, a2)
	}
}

// arcSegment appends one cubic Bézier approximating an elliptical arc
// segment of at most 90 degrees.
func arcSegment(dst *Path, cx, cy, rx, ry, a1, a2 float64) {
	// Control point distance for the cubic approximation.
	alpha := math.Sin(a2-a1) * (math.Sqrt(4+3*math.Tan((a2-a1)/2)*math.Tan((a2-a1)/2)) - 1) / 3

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)

	p1 := Pt(cx+rx*cos1, cy+ry*sin1)
	p2 := Pt(cx+rx*cos2, cy+ry*sin2)

	c1 := Pt(p1.X-alpha*rx*sin1, p1.Y+alpha*ry*cos1)
	c2 := Pt(p2.X+alpha*rx*sin2, p2.Y-alpha*ry*cos2)

	dst.CubicTo(c1, c2, p2)
}

// vectorAngle returns the signed angle between two vectors.
func vectorAngle(ux, uy, vx, vy float64) float64 {
	sign := 1.0
	if ux*vy-uy*vx < 0 {
		sign = -1
	}
	dot := ux*vx + uy*vy
	norm := math.Sqrt((ux*ux + uy*uy) * (vx*vx + vy*vy))
	if norm == 0 {
		return 0
	}
	cos := dot / norm
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return sign * math.Acos(cos)
}

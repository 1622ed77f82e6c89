// Package chart turns ordered sample sequences into drawable 2D geometry: a
// plain polyline and a smooth Catmull-Rom-style curve fitted inside a padded
// rectangle. The output is pure geometry; rendering targets (terminal grid,
// SVG) consume it.
package chart

import (
	"fmt"
	"strconv"
	"strings"
)

// Point is a 2D coordinate in the chart rectangle.
type Point struct {
	X float64
	Y float64
}

// LinePoints maps samples onto the rectangle: index i goes linearly to x in
// [padding, width-padding] (a single sample collapses to x=padding), and
// value goes to y in [height-padding, padding], inverted so higher values sit
// higher, scaled by value/maxVal.
func LinePoints(samples []float64, maxVal, width, height, padding float64) []Point {
	if len(samples) == 0 {
		return nil
	}
	graphWidth := width - padding*2
	graphHeight := height - padding*2
	step := graphWidth
	if len(samples) > 1 {
		step = graphWidth / float64(len(samples)-1)
	}
	points := make([]Point, len(samples))
	for i, val := range samples {
		points[i] = Point{
			X: padding + float64(i)*step,
			Y: height - padding - (val/maxVal)*graphHeight,
		}
	}
	return points
}

// Segment is one cubic Bezier piece of a Curve.
type Segment struct {
	Ctrl1 Point
	Ctrl2 Point
	End   Point
}

// Curve is a smooth interpolating curve through a point sequence. An empty
// curve has no start; a single-sample curve is anchored at Start with no
// segments.
type Curve struct {
	Start    Point
	Segments []Segment
	empty    bool
}

// Empty reports whether the curve was built from zero samples.
func (c Curve) Empty() bool {
	return c.empty
}

// SmoothCurve interpolates the sample sequence with one cubic Bezier per
// consecutive point pair. Control points follow the Catmull-Rom construction:
// for the pair p1,p2 the neighbors p0 (previous, clamped to p1 at the start)
// and p3 (next-next, clamped to p2 at the end) give
//
//	cp1 = p1 + (p2-p0)/6
//	cp2 = p2 - (p3-p1)/6
func SmoothCurve(samples []float64, maxVal, width, height, padding float64) Curve {
	points := LinePoints(samples, maxVal, width, height, padding)
	if len(points) == 0 {
		return Curve{empty: true}
	}
	curve := Curve{Start: points[0]}
	for i := 0; i < len(points)-1; i++ {
		p0 := points[i]
		if i > 0 {
			p0 = points[i-1]
		}
		p1 := points[i]
		p2 := points[i+1]
		p3 := p2
		if i+2 < len(points) {
			p3 = points[i+2]
		}
		curve.Segments = append(curve.Segments, Segment{
			Ctrl1: Point{X: p1.X + (p2.X-p0.X)/6, Y: p1.Y + (p2.Y-p0.Y)/6},
			Ctrl2: Point{X: p2.X - (p3.X-p1.X)/6, Y: p2.Y - (p3.Y-p1.Y)/6},
			End:   p2,
		})
	}
	return curve
}

// PathData renders the curve as an SVG path command string ("M x y C ...").
// Empty curves produce an empty string.
func (c Curve) PathData() string {
	if c.empty {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "M %s %s", fnum(c.Start.X), fnum(c.Start.Y))
	for _, s := range c.Segments {
		fmt.Fprintf(&b, " C %s %s, %s %s, %s %s",
			fnum(s.Ctrl1.X), fnum(s.Ctrl1.Y),
			fnum(s.Ctrl2.X), fnum(s.Ctrl2.Y),
			fnum(s.End.X), fnum(s.End.Y))
	}
	return b.String()
}

// Flatten samples the curve into a polyline with perSegment points per Bezier
// piece, for renderers that cannot draw cubics directly.
func (c Curve) Flatten(perSegment int) []Point {
	if c.empty {
		return nil
	}
	if perSegment < 1 {
		perSegment = 1
	}
	out := []Point{c.Start}
	prev := c.Start
	for _, s := range c.Segments {
		for i := 1; i <= perSegment; i++ {
			t := float64(i) / float64(perSegment)
			out = append(out, bezierAt(prev, s.Ctrl1, s.Ctrl2, s.End, t))
		}
		prev = s.End
	}
	return out
}

func bezierAt(p0, p1, p2, p3 Point, t float64) Point {
	u := 1 - t
	a := u * u * u
	b := 3 * u * u * t
	c := 3 * u * t * t
	d := t * t * t
	return Point{
		X: a*p0.X + b*p1.X + c*p2.X + d*p3.X,
		Y: a*p0.Y + b*p1.Y + c*p2.Y + d*p3.Y,
	}
}

func fnum(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

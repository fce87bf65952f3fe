package microcharts

import (
	"math"

	"github.com/gogpu/gg"
)

// appendPath replays a prebuilt path onto the context's current path.
// Geometry is constructed as standalone gg.Path values so it can be
// computed (and tested) without a canvas, then replayed here.
func appendPath(dc *gg.Context, path *gg.Path) {
	path.Iterate(func(verb gg.PathVerb, coords []float64) {
		switch verb {
		case gg.MoveTo:
			dc.MoveTo(coords[0], coords[1])
		case gg.LineTo:
			dc.LineTo(coords[0], coords[1])
		case gg.QuadTo:
			dc.QuadraticTo(coords[0], coords[1], coords[2], coords[3])
		case gg.CubicTo:
			dc.CubicTo(coords[0], coords[1], coords[2], coords[3], coords[4], coords[5])
		case gg.Close:
			dc.ClosePath()
		}
	})
}

// sectorPath builds a closed ring sector between two radii, from angle
// a1 to a2 in radians. An inner radius of 0 produces a plain pie wedge.
// The sweep may run in either direction.
func sectorPath(cx, cy, outerR, innerR, a1, a2 float64) *gg.Path {
	path := gg.NewPath()
	path.MoveTo(cx+outerR*math.Cos(a1), cy+outerR*math.Sin(a1))
	appendArc(path, cx, cy, outerR, a1, a2)
	if innerR > 0 {
		path.LineTo(cx+innerR*math.Cos(a2), cy+innerR*math.Sin(a2))
		appendArc(path, cx, cy, innerR, a2, a1)
	} else {
		path.LineTo(cx, cy)
	}
	path.Close()
	return path
}

// appendArc appends a circular arc running from a1 to a2, splitting it
// into segments no wider than a quarter turn. The path must already have
// a current point at the arc start. Unlike Path.Arc, the sweep may be
// negative.
func appendArc(path *gg.Path, cx, cy, r, a1, a2 float64) {
	const maxStep = math.Pi / 2
	span := a2 - a1
	segments := int(math.Ceil(math.Abs(span) / maxStep))
	if segments == 0 {
		segments = 1
	}
	step := span / float64(segments)
	for i := 0; i < segments; i++ {
		s := a1 + float64(i)*step
		appendArcSegment(path, cx, cy, r, s, s+step)
	}
}

// appendArcSegment appends one cubic Bezier approximation of an arc no
// wider than a quarter turn. The control-point distance formula follows
// the standard arc approximation; it is sign-correct for reversed sweeps.
func appendArcSegment(path *gg.Path, cx, cy, r, a1, a2 float64) {
	alpha := math.Sin(a2-a1) * (math.Sqrt(4+3*math.Tan((a2-a1)/2)*math.Tan((a2-a1)/2)) - 1) / 3

	cos1, sin1 := math.Cos(a1), math.Sin(a1)
	cos2, sin2 := math.Cos(a2), math.Sin(a2)

	x1 := cx + r*cos1
	y1 := cy + r*sin1
	x2 := cx + r*cos2
	y2 := cy + r*sin2

	path.CubicTo(
		x1-alpha*r*sin1, y1+alpha*r*cos1,
		x2+alpha*r*sin2, y2-alpha*r*cos2,
		x2, y2,
	)
}

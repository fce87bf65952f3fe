package microcharts

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

// LineMode selects how consecutive points are joined.
type LineMode int

const (
	// LineModeNone suppresses the line stroke. The area fill may still
	// render when LineAreaAlpha is above zero.
	LineModeNone LineMode = iota
	// LineModeStraight joins points with straight segments.
	LineModeStraight
	// LineModeSpline joins points with cubic Bezier segments.
	LineModeSpline
)

// splineControlRatio is the horizontal control-point offset of spline
// segments, as a fraction of the item slot width. The tangents are flat
// and symmetric: an aesthetic smoothing choice, not an interpolating
// spline.
const splineControlRatio = 0.8

// LineChart joins the plotted points with a line and an optional
// gradient-shaded area down to the value origin.
type LineChart struct {
	PointChart

	// LineMode selects the path interpolation style.
	LineMode LineMode

	// LineSize is the stroke width of the line.
	LineSize float64

	// LineAreaAlpha is the base opacity (0-255) of the area under the
	// line. Zero disables the area fill.
	LineAreaAlpha uint8

	// EnableYFadeOutGradient fades the area fill out toward the top of
	// the canvas. Ignored when EnableYSolidGradient is set.
	EnableYFadeOutGradient bool

	// EnableYSolidGradient fills the area with a vertical gradient from
	// GradientYColorStart at the origin row to GradientYColorEnd at the
	// topmost plotted point. Takes precedence over EnableYFadeOutGradient.
	EnableYSolidGradient bool

	// GradientYColorStart is the origin-row color of the solid Y gradient.
	GradientYColorStart gg.RGBA

	// GradientYColorEnd is the top color of the solid Y gradient.
	GradientYColorEnd gg.RGBA
}

// NewLineChart creates a line chart with default styling: spline
// interpolation, circle markers and a translucent area fill.
func NewLineChart(entries []Entry, opts ...Option) *LineChart {
	return &LineChart{
		PointChart:          *NewPointChart(entries, opts...),
		LineMode:            LineModeSpline,
		LineSize:            DefaultLineSize,
		LineAreaAlpha:       DefaultLineAreaAlpha,
		GradientYColorStart: gg.White,
		GradientYColorEnd:   gg.White,
	}
}

// Draw renders the chart into the given region: area fill first, then
// the line, the point markers and finally the label rows.
func (c *LineChart) Draw(dc *gg.Context, width, height int) error {
	c.drawBackground(dc)
	if len(c.Entries) == 0 {
		Logger().Debug("line chart draw skipped", "reason", "no entries")
		return nil
	}
	lay := c.layout(float64(width), float64(height))
	if err := c.drawArea(dc, lay, float64(height)); err != nil {
		return err
	}
	if err := c.drawLine(dc, lay); err != nil {
		return err
	}
	if err := c.drawPoints(dc, lay.points); err != nil {
		return err
	}
	c.drawHeader(dc, lay)
	c.drawFooter(dc, lay, float64(height))
	return nil
}

// drawLine strokes the line joining the points. No-op for fewer than two
// points or LineModeNone.
func (c *LineChart) drawLine(dc *gg.Context, lay chartLayout) error {
	if c.LineSize <= 0 {
		return nil
	}
	path := linePath(lay.points, c.LineMode, lay.itemSize.Width)
	if path == nil {
		return nil
	}
	dc.SetStrokeBrush(entryGradient(c.Entries, lay.points, 1))
	dc.SetLineWidth(c.LineSize)
	dc.SetLineCap(gg.LineCapRound)
	dc.SetLineJoin(gg.LineJoinRound)
	appendPath(dc, path)
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("stroke line: %w", err)
	}
	return nil
}

// drawArea fills the region between the line and the value origin.
// No-op when LineAreaAlpha is zero or fewer than two points exist.
func (c *LineChart) drawArea(dc *gg.Context, lay chartLayout, height float64) error {
	brush := c.areaBrush(lay, height)
	if brush == nil {
		return nil
	}
	path := areaPath(lay.points, c.LineMode, lay.itemSize.Width, lay.origin)
	if path == nil {
		return nil
	}
	dc.SetFillBrush(brush)
	appendPath(dc, path)
	if err := dc.Fill(); err != nil {
		return fmt.Errorf("fill line area: %w", err)
	}
	return nil
}

// areaBrush selects the fill brush for the area under the line, or nil
// when the area is disabled. The solid Y gradient takes precedence over
// the fade-out gradient; otherwise the per-entry X gradient is used.
// Every variant scales its alpha by LineAreaAlpha and animation progress.
func (c *LineChart) areaBrush(lay chartLayout, height float64) gg.Brush {
	if c.LineAreaAlpha == 0 || len(lay.points) < 2 {
		return nil
	}
	alpha := float64(c.LineAreaAlpha) / 255 * c.progress()
	switch {
	case c.EnableYSolidGradient:
		top := lay.points[0].Y
		for _, p := range lay.points[1:] {
			top = math.Min(top, p.Y)
		}
		start := c.GradientYColorStart
		start.A *= alpha
		end := c.GradientYColorEnd
		end.A *= alpha
		return gg.NewLinearGradientBrush(0, lay.origin, 0, top).
			AddColorStop(0, start).
			AddColorStop(1, end)
	case c.EnableYFadeOutGradient:
		horizontal := entryGradient(c.Entries, lay.points, alpha)
		return gg.CustomBrush{
			Func: func(x, y float64) gg.RGBA {
				col := horizontal.ColorAt(x, y)
				col.A *= clamp01(y / height)
				return col
			},
			Name: "y_fadeout_gradient",
		}
	default:
		return entryGradient(c.Entries, lay.points, alpha)
	}
}

// entryGradient builds the X-axis gradient sampling each entry's color
// at its plotted X position, so color transitions follow the data's own
// colors. alpha scales every stop.
func entryGradient(entries []Entry, points []gg.Point, alpha float64) *gg.LinearGradientBrush {
	first := points[0]
	last := points[len(points)-1]
	g := gg.NewLinearGradientBrush(first.X, 0, last.X, 0)
	span := last.X - first.X
	for i, e := range entries {
		var offset float64
		if span != 0 {
			offset = (points[i].X - first.X) / span
		}
		col := e.Color
		col.A *= alpha
		g.AddColorStop(offset, col)
	}
	return g
}

// linePath builds the open path joining the points according to mode.
// Returns nil for fewer than two points or LineModeNone.
func linePath(points []gg.Point, mode LineMode, itemWidth float64) *gg.Path {
	if len(points) < 2 || mode == LineModeNone {
		return nil
	}
	path := gg.NewPath()
	path.MoveTo(points[0].X, points[0].Y)
	offset := itemWidth * splineControlRatio
	for i := 1; i < len(points); i++ {
		p := points[i]
		switch mode {
		case LineModeSpline:
			prev := points[i-1]
			path.CubicTo(prev.X+offset, prev.Y, p.X-offset, p.Y, p.X, p.Y)
		case LineModeStraight:
			path.LineTo(p.X, p.Y)
		default:
			// Unknown modes contribute no segment for this index.
		}
	}
	return path
}

// areaPath builds the closed path tracing the line and dropping to the
// origin row at both ends. LineModeNone traces straight segments so the
// area can render while the line itself is suppressed. Returns nil for
// fewer than two points.
func areaPath(points []gg.Point, mode LineMode, itemWidth, origin float64) *gg.Path {
	if len(points) < 2 {
		return nil
	}
	first := points[0]
	last := points[len(points)-1]
	path := gg.NewPath()
	path.MoveTo(first.X, origin)
	path.LineTo(first.X, first.Y)
	offset := itemWidth * splineControlRatio
	for i := 1; i < len(points); i++ {
		p := points[i]
		if mode == LineModeSpline {
			prev := points[i-1]
			path.CubicTo(prev.X+offset, prev.Y, p.X-offset, p.Y, p.X, p.Y)
		} else {
			path.LineTo(p.X, p.Y)
		}
	}
	path.LineTo(last.X, origin)
	path.Close()
	return path
}

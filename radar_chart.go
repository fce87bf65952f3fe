package microcharts

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

// radarWebAlpha is the opacity of the axis web behind the value polygon.
const radarWebAlpha = 0.3

// radarFillAlpha is the opacity of the filled segments of the value
// polygon.
const radarFillAlpha = 0.25

// RadarChart plots entries on radial axes spread evenly around the
// center, joining the value points into a polygon with per-entry
// translucent fill and markers.
type RadarChart struct {
	ChartBase

	// BorderLineSize is the stroke width of the polygon border.
	BorderLineSize float64

	// PointSize is the marker diameter at full animation progress.
	PointSize float64

	// PointMode selects the marker shape.
	PointMode PointMode
}

// NewRadarChart creates a radar chart with default styling.
func NewRadarChart(entries []Entry, opts ...Option) *RadarChart {
	return &RadarChart{
		ChartBase:      newChartBase(entries, opts...),
		BorderLineSize: DefaultLineSize,
		PointSize:      DefaultPointSize,
		PointMode:      PointModeCircle,
	}
}

// Draw renders the chart into the given region. Value radii scale with
// animation progress.
func (c *RadarChart) Draw(dc *gg.Context, width, height int) error {
	c.drawBackground(dc)
	n := len(c.Entries)
	if n == 0 {
		Logger().Debug("radar chart draw skipped", "reason", "no entries")
		return nil
	}
	absMax := c.absoluteMax()
	if absMax <= 0 {
		Logger().Debug("radar chart draw skipped", "reason", "zero maximum")
		return nil
	}
	w := float64(width)
	h := float64(height)
	cx, cy := w/2, h/2
	reserve := c.Margin
	if c.LabelTextSize > reserve {
		reserve = c.LabelTextSize
	}
	radius := (math.Min(w, h))/2 - c.Margin - reserve
	if radius <= 0 {
		return nil
	}

	tips := make([]gg.Point, n)
	values := make([]gg.Point, n)
	progress := c.progress()
	for i, e := range c.Entries {
		angle := -math.Pi/2 + float64(i)*2*math.Pi/float64(n)
		r := math.Abs(e.Value) / absMax * radius * progress
		tips[i] = gg.Pt(cx+radius*math.Cos(angle), cy+radius*math.Sin(angle))
		values[i] = gg.Pt(cx+r*math.Cos(angle), cy+r*math.Sin(angle))
	}

	if err := c.drawWeb(dc, cx, cy, tips); err != nil {
		return err
	}
	if err := c.drawSegments(dc, cx, cy, values); err != nil {
		return err
	}
	if err := c.drawMarkers(dc, values); err != nil {
		return err
	}
	c.drawLabels(dc, cx, cy, tips)
	return nil
}

// drawWeb strokes the axis lines from the center to each tip and the
// outer polygon joining the tips.
func (c *RadarChart) drawWeb(dc *gg.Context, cx, cy float64, tips []gg.Point) error {
	webColor := c.LabelColor
	webColor.A *= radarWebAlpha
	dc.SetStrokeBrush(gg.Solid(webColor))
	dc.SetLineWidth(1)
	for _, tip := range tips {
		dc.DrawLine(cx, cy, tip.X, tip.Y)
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("stroke radar axis: %w", err)
		}
	}
	dc.MoveTo(tips[0].X, tips[0].Y)
	for _, tip := range tips[1:] {
		dc.LineTo(tip.X, tip.Y)
	}
	dc.ClosePath()
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("stroke radar web: %w", err)
	}
	return nil
}

// drawSegments fills the triangle between the center and each pair of
// consecutive value points in the leading entry's color, then strokes
// the polygon edge between them.
func (c *RadarChart) drawSegments(dc *gg.Context, cx, cy float64, values []gg.Point) error {
	n := len(values)
	for i := 0; i < n; i++ {
		next := values[(i+1)%n]
		p := values[i]

		fill := c.Entries[i].Color
		fill.A *= radarFillAlpha * c.progress()
		dc.SetFillBrush(gg.Solid(fill))
		dc.MoveTo(cx, cy)
		dc.LineTo(p.X, p.Y)
		dc.LineTo(next.X, next.Y)
		dc.ClosePath()
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("fill radar segment %d: %w", i, err)
		}

		if c.BorderLineSize > 0 {
			dc.SetStrokeBrush(gg.Solid(c.Entries[i].Color))
			dc.SetLineWidth(c.BorderLineSize)
			dc.SetLineCap(gg.LineCapRound)
			dc.DrawLine(p.X, p.Y, next.X, next.Y)
			if err := dc.Stroke(); err != nil {
				return fmt.Errorf("stroke radar border %d: %w", i, err)
			}
		}
	}
	return nil
}

// drawMarkers draws a marker at each value point, scaled by animation
// progress.
func (c *RadarChart) drawMarkers(dc *gg.Context, values []gg.Point) error {
	if c.PointMode == PointModeNone {
		return nil
	}
	radius := c.PointSize / 2 * c.progress()
	if radius <= 0 {
		return nil
	}
	for i, p := range values {
		dc.SetFillBrush(gg.Solid(c.Entries[i].Color))
		switch c.PointMode {
		case PointModeCircle:
			dc.DrawCircle(p.X, p.Y, radius)
		case PointModeSquare:
			dc.DrawRectangle(p.X-radius, p.Y-radius, 2*radius, 2*radius)
		}
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("fill radar marker %d: %w", i, err)
		}
	}
	return nil
}

// drawLabels draws each entry's label just beyond its axis tip.
func (c *RadarChart) drawLabels(dc *gg.Context, cx, cy float64, tips []gg.Point) {
	face := c.labelFace()
	if face == nil {
		return
	}
	dc.SetFont(face)
	dc.SetColor(c.LabelColor.Color())
	for i, e := range c.Entries {
		if e.Label == "" {
			continue
		}
		tip := tips[i]
		// Push the label outward along the axis direction.
		dx := tip.X - cx
		dy := tip.Y - cy
		norm := math.Hypot(dx, dy)
		if norm == 0 {
			continue
		}
		x := tip.X + dx/norm*c.Margin
		y := tip.Y + dy/norm*c.Margin
		dc.DrawStringAnchored(e.Label, x, y, 0.5, 0.5)
	}
}

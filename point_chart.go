package microcharts

import (
	"fmt"

	"github.com/gogpu/gg"
)

// PointMode selects the marker drawn at each plotted point.
type PointMode int

const (
	// PointModeNone draws no marker.
	PointModeNone PointMode = iota
	// PointModeCircle draws a filled circle.
	PointModeCircle
	// PointModeSquare draws a filled square.
	PointModeSquare
)

// PointChart plots one marker per entry, with value labels in the header
// row and labels in the footer row.
type PointChart struct {
	ChartBase

	// PointSize is the marker diameter at full animation progress.
	PointSize float64

	// PointMode selects the marker shape.
	PointMode PointMode
}

// NewPointChart creates a point chart with default styling.
func NewPointChart(entries []Entry, opts ...Option) *PointChart {
	return &PointChart{
		ChartBase: newChartBase(entries, opts...),
		PointSize: DefaultPointSize,
		PointMode: PointModeCircle,
	}
}

// chartLayout is the per-draw geometry of a point-based chart. It is
// recomputed from scratch on every Draw and handed to each drawing step,
// so no step mutates state another step reads.
type chartLayout struct {
	itemSize     Size
	headerHeight float64
	footerHeight float64
	origin       float64
	points       []gg.Point
}

// layout computes the full geometry for the given canvas size.
func (c *PointChart) layout(width, height float64) chartLayout {
	labels := c.entryLabels()
	valueLabels := c.entryValueLabels()
	footerHeight := c.CalculateFooterHeaderHeight(c.MeasureLabels(labels), Horizontal, labels)
	headerHeight := c.CalculateFooterHeaderHeight(c.MeasureLabels(valueLabels), Horizontal, valueLabels)
	itemSize := c.CalculateItemSize(width, height, footerHeight, headerHeight)
	origin := c.CalculateYOrigin(itemSize.Height, headerHeight)
	return chartLayout{
		itemSize:     itemSize,
		headerHeight: headerHeight,
		footerHeight: footerHeight,
		origin:       origin,
		points:       c.CalculatePoints(itemSize, origin, headerHeight),
	}
}

// CalculateYOrigin returns the pixel row used as the baseline for areas
// and bars: the row of value zero when zero lies inside the value range,
// otherwise the nearest plot edge. The origin does not depend on
// animation progress.
func (c *PointChart) CalculateYOrigin(itemHeight, headerHeight float64) float64 {
	minV, maxV := c.bounds()
	if maxV <= 0 {
		return headerHeight
	}
	if minV > 0 {
		return headerHeight + itemHeight
	}
	return headerHeight + maxV/(maxV-minV)*itemHeight
}

// CalculatePoints maps each entry to its pixel position: X at the center
// of the entry's item slot, Y linear in the value between the top and
// bottom of the plot area. The result has one point per entry, in entry
// order; downstream drawing steps rely on that ordering.
func (c *PointChart) CalculatePoints(itemSize Size, _, headerHeight float64) []gg.Point {
	minV, maxV := c.bounds()
	points := make([]gg.Point, len(c.Entries))
	for i, e := range c.Entries {
		x := c.Margin + itemSize.Width/2 + float64(i)*(itemSize.Width+c.Margin)
		y := headerHeight + normalize(e.Value, minV, maxV)*itemSize.Height
		points[i] = gg.Pt(x, y)
	}
	return points
}

// Draw renders the chart into the given region.
func (c *PointChart) Draw(dc *gg.Context, width, height int) error {
	c.drawBackground(dc)
	if len(c.Entries) == 0 {
		Logger().Debug("point chart draw skipped", "reason", "no entries")
		return nil
	}
	lay := c.layout(float64(width), float64(height))
	if err := c.drawPoints(dc, lay.points); err != nil {
		return err
	}
	c.drawHeader(dc, lay)
	c.drawFooter(dc, lay, float64(height))
	return nil
}

// drawPoints draws a marker at each computed point, scaled by animation
// progress. Zero progress collapses the markers entirely.
func (c *PointChart) drawPoints(dc *gg.Context, points []gg.Point) error {
	if c.PointMode == PointModeNone {
		return nil
	}
	radius := c.PointSize / 2 * c.progress()
	if radius <= 0 {
		return nil
	}
	for i, p := range points {
		dc.SetFillBrush(gg.Solid(c.Entries[i].Color))
		switch c.PointMode {
		case PointModeCircle:
			dc.DrawCircle(p.X, p.Y, radius)
		case PointModeSquare:
			dc.DrawRectangle(p.X-radius, p.Y-radius, 2*radius, 2*radius)
		}
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("fill point %d: %w", i, err)
		}
	}
	return nil
}

// drawHeader draws each entry's value label above its point, in the
// entry color.
func (c *PointChart) drawHeader(dc *gg.Context, lay chartLayout) {
	if lay.headerHeight <= 0 {
		return
	}
	face := c.labelFace()
	if face == nil {
		return
	}
	dc.SetFont(face)
	for i, e := range c.Entries {
		if e.ValueLabel == "" {
			continue
		}
		dc.SetColor(e.Color.Color())
		dc.DrawStringAnchored(e.ValueLabel, lay.points[i].X, lay.headerHeight-c.Margin/2, 0.5, 0)
	}
}

// drawFooter draws each entry's label below the plot area, in the label
// color.
func (c *PointChart) drawFooter(dc *gg.Context, lay chartLayout, height float64) {
	if lay.footerHeight <= 0 {
		return
	}
	face := c.labelFace()
	if face == nil {
		return
	}
	dc.SetFont(face)
	dc.SetColor(c.LabelColor.Color())
	y := height - lay.footerHeight/2
	for i, e := range c.Entries {
		if e.Label == "" {
			continue
		}
		dc.DrawStringAnchored(e.Label, lay.points[i].X, y, 0.5, 0.5)
	}
}

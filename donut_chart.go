package microcharts

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

// DonutChart draws one ring sector per entry, proportional to the
// entry's absolute value, with caption labels on the left and right
// flanks.
type DonutChart struct {
	ChartBase

	// HoleRadius is the inner hole radius as a fraction of the outer
	// radius, in [0, 1]. Zero produces a pie.
	HoleRadius float64
}

// NewDonutChart creates a donut chart with default styling.
func NewDonutChart(entries []Entry, opts ...Option) *DonutChart {
	return &DonutChart{
		ChartBase:  newChartBase(entries, opts...),
		HoleRadius: DefaultHoleRadius,
	}
}

// Draw renders the chart into the given region. Sector sweeps scale with
// animation progress, growing clockwise from the top.
func (c *DonutChart) Draw(dc *gg.Context, width, height int) error {
	c.drawBackground(dc)
	if len(c.Entries) == 0 {
		Logger().Debug("donut chart draw skipped", "reason", "no entries")
		return nil
	}
	total := c.absoluteSum()
	if total <= 0 {
		Logger().Debug("donut chart draw skipped", "reason", "zero total")
		return nil
	}
	w := float64(width)
	h := float64(height)
	cx, cy := w/2, h/2
	radius := (math.Min(w, h) - 2*c.Margin) / 2
	if radius <= 0 {
		return nil
	}
	hole := clamp01(c.HoleRadius) * radius
	progress := c.progress()

	angle := -math.Pi / 2
	for i, e := range c.Entries {
		sweep := math.Abs(e.Value) / total * 2 * math.Pi * progress
		if sweep <= 0 {
			continue
		}
		dc.SetFillBrush(gg.Solid(e.Color))
		appendPath(dc, sectorPath(cx, cy, radius, hole, angle, angle+sweep))
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("fill sector %d: %w", i, err)
		}
		angle += sweep
	}

	c.drawCaptions(dc, cy, radius, hole, w, total)
	return nil
}

// drawCaptions draws each labeled entry's captions at the canvas edge on
// the side its sector faces: the label in the entry color with the value
// label below it in the label color.
func (c *DonutChart) drawCaptions(dc *gg.Context, cy, radius, hole, width, total float64) {
	face := c.labelFace()
	if face == nil {
		return
	}
	dc.SetFont(face)
	progress := c.progress()
	captionRadius := (radius + hole) / 2

	angle := -math.Pi / 2
	for _, e := range c.Entries {
		sweep := math.Abs(e.Value) / total * 2 * math.Pi * progress
		mid := angle + sweep/2
		angle += sweep
		if e.Label == "" && e.ValueLabel == "" {
			continue
		}
		x := c.Margin
		anchor := 0.0
		if math.Cos(mid) >= 0 {
			x = width - c.Margin
			anchor = 1.0
		}
		y := cy + math.Sin(mid)*captionRadius
		if e.Label != "" {
			dc.SetColor(e.Color.Color())
			dc.DrawStringAnchored(e.Label, x, y, anchor, 0.5)
			y += c.LabelTextSize
		}
		if e.ValueLabel != "" {
			dc.SetColor(c.LabelColor.Color())
			dc.DrawStringAnchored(e.ValueLabel, x, y, anchor, 0.5)
		}
	}
}

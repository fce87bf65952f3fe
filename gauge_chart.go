package microcharts

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

// RadialGaugeChart draws one concentric ring per entry: a translucent
// full-circle track in the entry color and a value arc sweeping
// clockwise from the top, proportional to the entry's share of the
// largest absolute value.
type RadialGaugeChart struct {
	ChartBase

	// LineSize is the ring thickness. When zero or negative the
	// thickness is derived from the available radius.
	LineSize float64

	// LineAreaAlpha is the opacity (0-255) of the background track.
	LineAreaAlpha uint8
}

// NewRadialGaugeChart creates a radial gauge chart with default styling.
func NewRadialGaugeChart(entries []Entry, opts ...Option) *RadialGaugeChart {
	return &RadialGaugeChart{
		ChartBase:     newChartBase(entries, opts...),
		LineAreaAlpha: DefaultLineAreaAlpha,
	}
}

// Draw renders the chart into the given region. Arc sweeps scale with
// animation progress.
func (c *RadialGaugeChart) Draw(dc *gg.Context, width, height int) error {
	c.drawBackground(dc)
	n := len(c.Entries)
	if n == 0 {
		Logger().Debug("gauge chart draw skipped", "reason", "no entries")
		return nil
	}
	absMax := c.absoluteMax()
	if absMax <= 0 {
		Logger().Debug("gauge chart draw skipped", "reason", "zero maximum")
		return nil
	}
	w := float64(width)
	h := float64(height)
	cx, cy := w/2, h/2
	radius := (math.Min(w, h) - 2*c.Margin) / 2
	if radius <= 0 {
		return nil
	}

	ringSpace := radius / float64(n+1)
	lineWidth := c.LineSize
	if lineWidth <= 0 {
		lineWidth = ringSpace * 0.75
	}
	trackAlpha := float64(c.LineAreaAlpha) / 255
	progress := c.progress()

	dc.SetLineCap(gg.LineCapRound)
	for i, e := range c.Entries {
		ringRadius := float64(i+1) * ringSpace

		track := e.Color
		track.A *= trackAlpha
		dc.SetStrokeBrush(gg.Solid(track))
		dc.SetLineWidth(lineWidth)
		dc.DrawCircle(cx, cy, ringRadius)
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("stroke gauge track %d: %w", i, err)
		}

		sweep := 2 * math.Pi * math.Abs(e.Value) / absMax * progress
		if sweep <= 0 {
			continue
		}
		// A full turn closes on itself; stay a hair short so the round
		// caps do not overlap.
		if sweep >= 2*math.Pi {
			sweep = 2*math.Pi - 1e-3
		}
		dc.SetStrokeBrush(gg.Solid(e.Color))
		dc.DrawArc(cx, cy, ringRadius, -math.Pi/2, -math.Pi/2+sweep)
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("stroke gauge arc %d: %w", i, err)
		}
	}
	return nil
}

package microcharts

import (
	"fmt"
	"math"

	"github.com/gogpu/gg"
)

// minBarHeight keeps bars of near-zero values visible.
const minBarHeight = 4.0

// BarChart draws one vertical bar per entry, from the value origin to
// the entry's plotted point, over a translucent full-column backing area.
type BarChart struct {
	PointChart

	// BarAreaAlpha is the opacity (0-255) of the backing area behind
	// each bar. Zero disables the backing areas.
	BarAreaAlpha uint8

	// CornerRadius rounds the bar corners when above zero.
	CornerRadius float64
}

// NewBarChart creates a bar chart with default styling. Point markers
// are disabled; the bars themselves carry the entry colors.
func NewBarChart(entries []Entry, opts ...Option) *BarChart {
	chart := &BarChart{
		PointChart:   *NewPointChart(entries, opts...),
		BarAreaAlpha: DefaultBarAreaAlpha,
	}
	chart.PointMode = PointModeNone
	return chart
}

// Draw renders the chart into the given region.
func (c *BarChart) Draw(dc *gg.Context, width, height int) error {
	c.drawBackground(dc)
	if len(c.Entries) == 0 {
		Logger().Debug("bar chart draw skipped", "reason", "no entries")
		return nil
	}
	lay := c.layout(float64(width), float64(height))
	if err := c.drawBarAreas(dc, lay); err != nil {
		return err
	}
	if err := c.drawBars(dc, lay); err != nil {
		return err
	}
	if err := c.drawPoints(dc, lay.points); err != nil {
		return err
	}
	c.drawHeader(dc, lay)
	c.drawFooter(dc, lay, float64(height))
	return nil
}

// drawBarAreas fills the translucent column behind each bar, spanning
// from the plot edge on the entry's side of the origin down to the
// origin row.
func (c *BarChart) drawBarAreas(dc *gg.Context, lay chartLayout) error {
	if c.BarAreaAlpha == 0 {
		return nil
	}
	alpha := float64(c.BarAreaAlpha) / 255 * c.progress()
	if alpha <= 0 {
		return nil
	}
	for i, p := range lay.points {
		col := c.Entries[i].Color
		col.A *= alpha
		top := lay.headerHeight
		bottom := lay.origin
		if c.Entries[i].Value < 0 {
			top = lay.origin
			bottom = lay.headerHeight + lay.itemSize.Height
		}
		dc.SetFillBrush(gg.Solid(col))
		dc.DrawRectangle(p.X-lay.itemSize.Width/2, top, lay.itemSize.Width, bottom-top)
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("fill bar area %d: %w", i, err)
		}
	}
	return nil
}

// drawBars fills the value bar of each entry. Bar height grows with
// animation progress from the origin row outward.
func (c *BarChart) drawBars(dc *gg.Context, lay chartLayout) error {
	progress := c.progress()
	for i, p := range lay.points {
		y := lay.origin + (p.Y-lay.origin)*progress
		top := math.Min(y, lay.origin)
		bottom := math.Max(y, lay.origin)
		h := bottom - top
		if h < minBarHeight {
			h = minBarHeight
			if c.Entries[i].Value >= 0 {
				top = lay.origin - h
			} else {
				top = lay.origin
			}
		}
		x := p.X - lay.itemSize.Width/2
		dc.SetFillBrush(gg.Solid(c.Entries[i].Color))
		if c.CornerRadius > 0 {
			dc.DrawRoundedRectangle(x, top, lay.itemSize.Width, h, c.CornerRadius)
		} else {
			dc.DrawRectangle(x, top, lay.itemSize.Width, h)
		}
		if err := dc.Fill(); err != nil {
			return fmt.Errorf("fill bar %d: %w", i, err)
		}
	}
	return nil
}

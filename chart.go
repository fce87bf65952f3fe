package microcharts

import (
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Chart is the contract implemented by every chart type.
//
// Draw issues drawing primitives for the current state against the given
// context region and returns when rendering is complete. It must not
// retain a reference to dc past the call. Draw never fails on data input;
// an error is returned only when the underlying canvas reports a
// rendering failure.
type Chart interface {
	Draw(dc *gg.Context, width, height int) error
}

// Orientation selects how a row of labels is laid out.
type Orientation int

const (
	// Horizontal lays labels out upright; the row height follows the
	// tallest label.
	Horizontal Orientation = iota
	// Vertical lays labels out rotated a quarter turn; the row height
	// follows the widest label.
	Vertical
)

// Size is a measured width/height pair in pixels.
type Size struct {
	Width  float64
	Height float64
}

// Defaults applied by the chart constructors.
const (
	DefaultMargin        = 20.0
	DefaultLabelTextSize = 16.0
	DefaultPointSize     = 14.0
	DefaultLineSize      = 3.0
	DefaultLineAreaAlpha = 32
	DefaultBarAreaAlpha  = 32
	DefaultHoleRadius    = 0.5
)

// DefaultLabelColor is the color used for footer labels unless overridden.
var DefaultLabelColor = gg.Hex("#808080")

// ChartBase carries the configuration shared by every chart type.
// Concrete charts embed it; all per-draw geometry is computed into a
// layout value on each Draw rather than cached on the struct.
type ChartBase struct {
	// Entries is the ordered data to plot. A nil or empty slice makes
	// Draw a no-op.
	Entries []Entry

	// MinValue pins the lower bound of the value range. When nil the
	// bound is min(0, smallest entry value) so a zero baseline stays
	// representable. An explicit bound is widened to cover the data.
	MinValue *float64

	// MaxValue pins the upper bound of the value range. When nil the
	// bound is the largest entry value. An explicit bound is widened to
	// cover the data.
	MaxValue *float64

	// Margin is the spacing between items and around the plot, in pixels.
	Margin float64

	// LabelTextSize is the text size used for header and footer labels.
	LabelTextSize float64

	// LabelColor paints footer labels.
	LabelColor gg.RGBA

	// Typeface resolves label glyphs. When nil, labels measure as zero
	// and are not drawn.
	Typeface *text.FontSource

	// BackgroundColor clears the canvas before drawing when its alpha is
	// above zero.
	BackgroundColor gg.RGBA

	// AnimationProgress scales visual emphasis in [0, 1]: 0 collapses
	// markers and fills, 1 draws them fully. The host drives it by
	// repeated Draw calls; charts own no clock. Charts built with the
	// New* constructors start at full progress.
	AnimationProgress float64
}

// MeasureLabels returns the rendered bounding size of each label using
// the configured typeface. Empty labels, and every label when no
// typeface is set, yield a zero size. The result has one element per
// input label, in input order.
func (c *ChartBase) MeasureLabels(labels []string) []Size {
	sizes := make([]Size, len(labels))
	face := c.labelFace()
	if face == nil {
		return sizes
	}
	for i, label := range labels {
		if label == "" {
			continue
		}
		w, h := text.Measure(label, face)
		sizes[i] = Size{Width: w, Height: h}
	}
	return sizes
}

// CalculateFooterHeaderHeight returns the vertical space needed for a
// row of labels: the maximum label extent for the given orientation plus
// a margin on each side. Returns 0 when no label measures above zero.
func (c *ChartBase) CalculateFooterHeaderHeight(sizes []Size, orientation Orientation, labels []string) float64 {
	if !anyLabel(labels) {
		return 0
	}
	var extent float64
	for _, s := range sizes {
		if orientation == Vertical {
			extent = math.Max(extent, s.Width)
		} else {
			extent = math.Max(extent, s.Height)
		}
	}
	if extent == 0 {
		return 0
	}
	return extent + 2*c.Margin
}

// CalculateItemSize divides the plotting rectangle left after margins,
// footer and header evenly across the entries. The width accounts for a
// margin between and around the item slots.
func (c *ChartBase) CalculateItemSize(width, height, footerHeight, headerHeight float64) Size {
	n := len(c.Entries)
	if n == 0 {
		return Size{}
	}
	return Size{
		Width:  (width - float64(n+1)*c.Margin) / float64(n),
		Height: height - c.Margin - footerHeight - headerHeight,
	}
}

// bounds returns the effective minimum and maximum of the value range.
func (c *ChartBase) bounds() (minV, maxV float64) {
	if len(c.Entries) == 0 {
		return 0, 0
	}
	dataMin := c.Entries[0].Value
	dataMax := c.Entries[0].Value
	for _, e := range c.Entries[1:] {
		dataMin = math.Min(dataMin, e.Value)
		dataMax = math.Max(dataMax, e.Value)
	}
	if c.MinValue != nil {
		minV = math.Min(*c.MinValue, dataMin)
	} else {
		minV = math.Min(0, dataMin)
	}
	if c.MaxValue != nil {
		maxV = math.Max(*c.MaxValue, dataMax)
	} else {
		maxV = dataMax
	}
	return minV, maxV
}

// absoluteMax returns the largest absolute entry value.
func (c *ChartBase) absoluteMax() float64 {
	var m float64
	for _, e := range c.Entries {
		m = math.Max(m, math.Abs(e.Value))
	}
	return m
}

// absoluteSum returns the sum of the absolute entry values.
func (c *ChartBase) absoluteSum() float64 {
	var sum float64
	for _, e := range c.Entries {
		sum += math.Abs(e.Value)
	}
	return sum
}

// progress returns the animation progress clamped to [0, 1].
func (c *ChartBase) progress() float64 {
	return clamp01(c.AnimationProgress)
}

// labelFace returns the face used for label measurement and drawing, or
// nil when no typeface is configured.
func (c *ChartBase) labelFace() text.Face {
	if c.Typeface == nil {
		return nil
	}
	size := c.LabelTextSize
	if size <= 0 {
		size = DefaultLabelTextSize
	}
	return c.Typeface.Face(size)
}

// drawBackground clears the canvas with the background color when it is
// not fully transparent.
func (c *ChartBase) drawBackground(dc *gg.Context) {
	if c.BackgroundColor.A <= 0 {
		return
	}
	dc.ClearWithColor(c.BackgroundColor)
}

// entryLabels returns the footer labels of the entries, in order.
func (c *ChartBase) entryLabels() []string {
	labels := make([]string, len(c.Entries))
	for i, e := range c.Entries {
		labels[i] = e.Label
	}
	return labels
}

// entryValueLabels returns the header labels of the entries, in order.
func (c *ChartBase) entryValueLabels() []string {
	labels := make([]string, len(c.Entries))
	for i, e := range c.Entries {
		labels[i] = e.ValueLabel
	}
	return labels
}

// normalize maps a value onto [0, 1] measured from the top of the plot
// area: 0 for the maximum value, 1 for the minimum. A zero value range
// maps every value to the midpoint instead of dividing by zero.
func normalize(v, minV, maxV float64) float64 {
	if maxV == minV {
		return 0.5
	}
	return (maxV - v) / (maxV - minV)
}

// anyLabel reports whether at least one label is non-empty.
func anyLabel(labels []string) bool {
	for _, l := range labels {
		if l != "" {
			return true
		}
	}
	return false
}

// clamp01 clamps a value to [0, 1].
func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

package microcharts

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Option configures the shared chart state at construction time.
// Chart-specific fields (line mode, hole radius, ...) are set directly
// on the chart struct after construction.
//
// Example:
//
//	chart := microcharts.NewLineChart(entries,
//	    microcharts.WithTypeface(source),
//	    microcharts.WithMargin(16),
//	)
type Option func(*ChartBase)

// WithMinValue pins the lower bound of the value range.
func WithMinValue(v float64) Option {
	return func(c *ChartBase) {
		c.MinValue = &v
	}
}

// WithMaxValue pins the upper bound of the value range.
func WithMaxValue(v float64) Option {
	return func(c *ChartBase) {
		c.MaxValue = &v
	}
}

// WithMargin sets the spacing between items and around the plot.
func WithMargin(m float64) Option {
	return func(c *ChartBase) {
		c.Margin = m
	}
}

// WithLabelTextSize sets the text size for header and footer labels.
func WithLabelTextSize(s float64) Option {
	return func(c *ChartBase) {
		c.LabelTextSize = s
	}
}

// WithLabelColor sets the color of footer labels.
func WithLabelColor(col gg.RGBA) Option {
	return func(c *ChartBase) {
		c.LabelColor = col
	}
}

// WithTypeface sets the font source used to measure and draw labels.
func WithTypeface(source *text.FontSource) Option {
	return func(c *ChartBase) {
		c.Typeface = source
	}
}

// WithBackground sets the canvas clear color.
func WithBackground(col gg.RGBA) Option {
	return func(c *ChartBase) {
		c.BackgroundColor = col
	}
}

// WithAnimationProgress sets the initial animation progress in [0, 1].
func WithAnimationProgress(p float64) Option {
	return func(c *ChartBase) {
		c.AnimationProgress = p
	}
}

// newChartBase builds the shared chart state with defaults applied.
func newChartBase(entries []Entry, opts ...Option) ChartBase {
	base := ChartBase{
		Entries:           entries,
		Margin:            DefaultMargin,
		LabelTextSize:     DefaultLabelTextSize,
		LabelColor:        DefaultLabelColor,
		BackgroundColor:   gg.White,
		AnimationProgress: 1,
	}
	for _, opt := range opts {
		opt(&base)
	}
	return base
}

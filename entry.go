package microcharts

import "github.com/gogpu/gg"

// Entry holds a single labeled data point of a chart.
//
// Entries are plain values owned by the chart for the duration of a draw
// call. Replace the chart's Entries slice wholesale instead of mutating
// entries in place.
//
// Example:
//
//	entry := microcharts.Entry{
//	    Value:      42,
//	    Label:      "Jan",
//	    ValueLabel: "42",
//	    Color:      gg.Hex("#2c3e50"),
//	}
type Entry struct {
	// Value is the numeric value plotted by the chart.
	Value float64

	// Label is the caption drawn in the footer row. Empty labels occupy
	// no footer space.
	Label string

	// ValueLabel is the caption drawn in the header row. Empty value
	// labels occupy no header space.
	ValueLabel string

	// Color paints the entry's marker, bar, sector or gauge ring.
	Color gg.RGBA
}

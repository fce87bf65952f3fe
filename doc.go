// Package microcharts renders small animated charts onto a 2D canvas.
//
// # Overview
//
// microcharts is a Go port of the Microcharts mobile charting component.
// It turns a slice of labeled [Entry] values into pixel-space geometry and
// draws it onto a [github.com/gogpu/gg] drawing context: bar, line, point,
// donut, pie, radar and radial-gauge charts all implement the same [Chart]
// contract.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/gg"
//	    microcharts "github.com/sonnt1012/Microcharts"
//	)
//
//	entries := []microcharts.Entry{
//	    {Value: 200, Label: "Jan", ValueLabel: "200", Color: gg.Hex("#2c3e50")},
//	    {Value: 400, Label: "Feb", ValueLabel: "400", Color: gg.Hex("#77d065")},
//	}
//
//	chart := microcharts.NewLineChart(entries)
//	dc := gg.NewContext(600, 300)
//	defer dc.Close()
//	if err := chart.Draw(dc, 600, 300); err != nil {
//	    log.Fatal(err)
//	}
//	dc.SavePNG("line.png")
//
// # Animation
//
// Charts own no clock. The host drives animation by setting
// AnimationProgress in [0, 1] and calling Draw once per frame; progress
// scales marker sizes and fill alphas. Layout is recomputed from scratch
// on every Draw, so two calls with identical state produce identical
// geometry.
//
// # Concurrency
//
// Distinct chart instances are independent and may be drawn in parallel.
// A single instance performs no internal locking: the caller must
// serialize Draw against concurrent mutation of its fields.
package microcharts

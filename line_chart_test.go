package microcharts

import (
	"testing"

	"github.com/gogpu/gg"
	"github.com/google/go-cmp/cmp"
)

func TestLinePathNoOp(t *testing.T) {
	tests := []struct {
		name   string
		points []gg.Point
		mode   LineMode
	}{
		{"no points", nil, LineModeStraight},
		{"single point", []gg.Point{gg.Pt(10, 10)}, LineModeStraight},
		{"mode none", []gg.Point{gg.Pt(10, 10), gg.Pt(20, 20)}, LineModeNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if path := linePath(tt.points, tt.mode, 50); path != nil {
				t.Errorf("linePath = %v, want nil", pathElements(path))
			}
		})
	}
}

func TestLinePathStraight(t *testing.T) {
	points := []gg.Point{gg.Pt(10, 80), gg.Pt(60, 20), gg.Pt(110, 50)}
	path := linePath(points, LineModeStraight, 40)
	if path == nil {
		t.Fatal("linePath = nil, want path")
	}
	elements := pathElements(path)
	if len(elements) != 3 {
		t.Fatalf("path has %d elements, want 3", len(elements))
	}
	if elements[0].verb != gg.MoveTo {
		t.Errorf("element 0 = %v, want gg.MoveTo", elements[0].verb)
	}
	for i, el := range elements[1:] {
		if el.verb != gg.LineTo {
			t.Fatalf("element %d = %v, want gg.LineTo", i+1, el.verb)
		}
		if end := gg.Pt(el.coords[0], el.coords[1]); end != points[i+1] {
			t.Errorf("segment %d ends at %+v, want %+v", i+1, end, points[i+1])
		}
	}
}

func TestLinePathSplineControls(t *testing.T) {
	points := []gg.Point{gg.Pt(10, 80), gg.Pt(110, 20)}
	const itemWidth = 50.0
	path := linePath(points, LineModeSpline, itemWidth)
	if path == nil {
		t.Fatal("linePath = nil, want path")
	}
	elements := pathElements(path)
	if len(elements) != 2 {
		t.Fatalf("path has %d elements, want 2", len(elements))
	}
	cubic := elements[1]
	if cubic.verb != gg.CubicTo {
		t.Fatalf("element 1 = %v, want gg.CubicTo", elements[1].verb)
	}
	offset := itemWidth * splineControlRatio
	wantControl1 := gg.Pt(points[0].X+offset, points[0].Y)
	wantControl2 := gg.Pt(points[1].X-offset, points[1].Y)
	if control1 := gg.Pt(cubic.coords[0], cubic.coords[1]); control1 != wantControl1 {
		t.Errorf("control 1 = %+v, want %+v", control1, wantControl1)
	}
	if control2 := gg.Pt(cubic.coords[2], cubic.coords[3]); control2 != wantControl2 {
		t.Errorf("control 2 = %+v, want %+v", control2, wantControl2)
	}
	if end := gg.Pt(cubic.coords[4], cubic.coords[5]); end != points[1] {
		t.Errorf("end point = %+v, want %+v", end, points[1])
	}
}

func TestAreaPathClosedToOrigin(t *testing.T) {
	points := []gg.Point{gg.Pt(10, 30), gg.Pt(60, 70), gg.Pt(110, 50)}
	const origin = 90.0
	path := areaPath(points, LineModeStraight, 40, origin)
	if path == nil {
		t.Fatal("areaPath = nil, want path")
	}
	elements := pathElements(path)

	moveTo := elements[0]
	if moveTo.verb != gg.MoveTo || gg.Pt(moveTo.coords[0], moveTo.coords[1]) != gg.Pt(points[0].X, origin) {
		t.Errorf("element 0 = %+v, want MoveTo(%v, %v)", elements[0], points[0].X, origin)
	}
	if elements[len(elements)-1].verb != gg.Close {
		t.Errorf("last element = %v, want gg.Close", elements[len(elements)-1].verb)
	}
	drop := elements[len(elements)-2]
	if drop.verb != gg.LineTo || gg.Pt(drop.coords[0], drop.coords[1]) != gg.Pt(points[2].X, origin) {
		t.Errorf("element before close = %+v, want LineTo(%v, %v)", elements[len(elements)-2], points[2].X, origin)
	}
}

func TestAreaPathWithModeNone(t *testing.T) {
	// The area may render while the line is suppressed; segments fall
	// back to straight.
	points := []gg.Point{gg.Pt(10, 30), gg.Pt(60, 70)}
	path := areaPath(points, LineModeNone, 40, 90)
	if path == nil {
		t.Fatal("areaPath = nil, want path")
	}
	for _, el := range pathElements(path) {
		if el.verb == gg.CubicTo {
			t.Errorf("mode none produced a cubic segment: %+v", el)
		}
	}
}

func TestAreaBrushNoOp(t *testing.T) {
	points := []gg.Point{gg.Pt(10, 30), gg.Pt(60, 70)}

	t.Run("zero alpha", func(t *testing.T) {
		chart := NewLineChart(sampleEntries())
		chart.LineAreaAlpha = 0
		if brush := chart.areaBrush(chartLayout{points: points}, 100); brush != nil {
			t.Errorf("areaBrush = %T, want nil", brush)
		}
	})

	t.Run("single point", func(t *testing.T) {
		chart := NewLineChart(sampleEntries())
		if brush := chart.areaBrush(chartLayout{points: points[:1]}, 100); brush != nil {
			t.Errorf("areaBrush = %T, want nil", brush)
		}
	})
}

func TestAreaBrushPrecedence(t *testing.T) {
	t.Run("solid gradient wins over fade-out", func(t *testing.T) {
		chart := NewLineChart(sampleEntries())
		chart.EnableYSolidGradient = true
		chart.EnableYFadeOutGradient = true
		chart.GradientYColorStart = gg.Red
		chart.GradientYColorEnd = gg.Blue
		lay := chart.layout(300, 200)

		brush := chart.areaBrush(lay, 200)
		gradient, ok := brush.(*gg.LinearGradientBrush)
		if !ok {
			t.Fatalf("areaBrush = %T, want *gg.LinearGradientBrush", brush)
		}
		if gradient.Start.X != 0 || gradient.End.X != 0 {
			t.Errorf("solid gradient runs from %+v to %+v, want a vertical axis", gradient.Start, gradient.End)
		}
		if gradient.Start.Y != lay.origin {
			t.Errorf("solid gradient starts at Y=%v, want origin row %v", gradient.Start.Y, lay.origin)
		}
		if len(gradient.Stops) != 2 {
			t.Errorf("solid gradient has %d stops, want 2", len(gradient.Stops))
		}
	})

	t.Run("fade-out gradient", func(t *testing.T) {
		chart := NewLineChart(sampleEntries())
		chart.EnableYFadeOutGradient = true
		lay := chart.layout(300, 200)

		brush := chart.areaBrush(lay, 200)
		custom, ok := brush.(gg.CustomBrush)
		if !ok {
			t.Fatalf("areaBrush = %T, want gg.CustomBrush", brush)
		}
		if custom.Name != "y_fadeout_gradient" {
			t.Errorf("brush name = %q, want %q", custom.Name, "y_fadeout_gradient")
		}
		// Alpha attenuates toward row 0.
		x := lay.points[0].X
		low := custom.ColorAt(x, 190)
		high := custom.ColorAt(x, 10)
		if high.A >= low.A {
			t.Errorf("alpha at top = %v, at bottom = %v: fade must attenuate with height", high.A, low.A)
		}
	})

	t.Run("default per-entry gradient", func(t *testing.T) {
		chart := NewLineChart(sampleEntries())
		lay := chart.layout(300, 200)

		brush := chart.areaBrush(lay, 200)
		gradient, ok := brush.(*gg.LinearGradientBrush)
		if !ok {
			t.Fatalf("areaBrush = %T, want *gg.LinearGradientBrush", brush)
		}
		if gradient.Start.Y != 0 || gradient.End.Y != 0 {
			t.Errorf("entry gradient runs from %+v to %+v, want a horizontal axis", gradient.Start, gradient.End)
		}
		if len(gradient.Stops) != len(chart.Entries) {
			t.Errorf("entry gradient has %d stops, want one per entry (%d)", len(gradient.Stops), len(chart.Entries))
		}
	})
}

func TestAreaBrushAlphaScalesWithProgress(t *testing.T) {
	chart := NewLineChart(sampleEntries())
	chart.LineAreaAlpha = 255
	chart.AnimationProgress = 0.5
	lay := chart.layout(300, 200)

	gradient, ok := chart.areaBrush(lay, 200).(*gg.LinearGradientBrush)
	if !ok {
		t.Fatal("areaBrush did not return the entry gradient")
	}
	for i, stop := range gradient.Stops {
		want := chart.Entries[i].Color.A * 0.5
		if !almostEqual(stop.Color.A, want, chartEpsilon) {
			t.Errorf("stop %d alpha = %v, want %v", i, stop.Color.A, want)
		}
	}
}

func TestLayoutIdempotent(t *testing.T) {
	chart := NewLineChart(sampleEntries())
	first := chart.layout(300, 200)
	second := chart.layout(300, 200)
	if diff := cmp.Diff(first.points, second.points); diff != "" {
		t.Errorf("points differ between identical layouts (-first +second):\n%s", diff)
	}
	if first.origin != second.origin {
		t.Errorf("origin differs between identical layouts: %v vs %v", first.origin, second.origin)
	}
}

func TestLineChartDraw(t *testing.T) {
	tests := []struct {
		name string
		mode LineMode
	}{
		{"spline", LineModeSpline},
		{"straight", LineModeStraight},
		{"none", LineModeNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dc := gg.NewContext(300, 200)
			defer dc.Close()

			chart := NewLineChart(sampleEntries(), WithTypeface(testTypeface(t)))
			chart.LineMode = tt.mode
			if err := chart.Draw(dc, 300, 200); err != nil {
				t.Fatalf("Draw = %v, want nil", err)
			}
		})
	}
}

func TestLineChartDrawEmpty(t *testing.T) {
	dc := gg.NewContext(50, 50)
	defer dc.Close()

	chart := NewLineChart(nil)
	if err := chart.Draw(dc, 50, 50); err != nil {
		t.Errorf("Draw = %v, want nil", err)
	}
}

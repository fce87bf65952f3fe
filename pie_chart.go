package microcharts

// PieChart is a donut chart without a hole.
type PieChart struct {
	DonutChart
}

// NewPieChart creates a pie chart with default styling.
func NewPieChart(entries []Entry, opts ...Option) *PieChart {
	chart := &PieChart{
		DonutChart: *NewDonutChart(entries, opts...),
	}
	chart.HoleRadius = 0
	return chart
}

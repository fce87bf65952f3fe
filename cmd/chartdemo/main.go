// Command chartdemo renders one sample PNG per chart type.
package main

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/spf13/cobra"
	"golang.org/x/image/font/gofont/goregular"

	microcharts "github.com/sonnt1012/Microcharts"
)

var palette = []gg.RGBA{
	gg.Hex("#2c3e50"),
	gg.Hex("#77d065"),
	gg.Hex("#b455b6"),
	gg.Hex("#3498db"),
	gg.Hex("#e67e22"),
	gg.Hex("#e74c3c"),
}

var months = []string{"Jan", "Feb", "Mar", "Apr", "May", "Jun"}

type options struct {
	width    int
	height   int
	outDir   string
	progress float64
	seed     uint64
}

func main() {
	opts := options{}
	cmd := &cobra.Command{
		Use:           "chartdemo",
		Short:         "Render sample charts to PNG files",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(opts)
		},
	}
	cmd.Flags().IntVar(&opts.width, "width", 600, "canvas width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", 400, "canvas height in pixels")
	cmd.Flags().StringVar(&opts.outDir, "out", ".", "output directory")
	cmd.Flags().Float64Var(&opts.progress, "progress", 1, "animation progress in [0,1]")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 1, "seed for the demo data generator")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "chartdemo:", err)
		os.Exit(1)
	}
}

func run(opts options) error {
	source, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return fmt.Errorf("load font: %w", err)
	}
	defer source.Close()

	entries := demoEntries(rand.New(rand.NewPCG(opts.seed, 0)))
	base := []microcharts.Option{
		microcharts.WithTypeface(source),
		microcharts.WithAnimationProgress(opts.progress),
	}

	charts := []struct {
		name  string
		chart microcharts.Chart
	}{
		{"point", microcharts.NewPointChart(entries, base...)},
		{"line", microcharts.NewLineChart(entries, base...)},
		{"bar", microcharts.NewBarChart(entries, base...)},
		{"donut", microcharts.NewDonutChart(entries, base...)},
		{"pie", microcharts.NewPieChart(entries, base...)},
		{"radar", microcharts.NewRadarChart(entries, base...)},
		{"gauge", microcharts.NewRadialGaugeChart(entries, base...)},
	}

	for _, item := range charts {
		if err := render(item.chart, item.name, opts); err != nil {
			return err
		}
	}
	return nil
}

func render(chart microcharts.Chart, name string, opts options) error {
	dc := gg.NewContext(opts.width, opts.height)
	defer dc.Close()

	if err := chart.Draw(dc, opts.width, opts.height); err != nil {
		return fmt.Errorf("render %s chart: %w", name, err)
	}
	out := filepath.Join(opts.outDir, name+".png")
	if err := dc.SavePNG(out); err != nil {
		return fmt.Errorf("save %s: %w", out, err)
	}
	fmt.Println("wrote", out)
	return nil
}

// demoEntries generates one random-valued entry per month.
func demoEntries(r *rand.Rand) []microcharts.Entry {
	entries := make([]microcharts.Entry, len(months))
	for i, month := range months {
		value := 100 + r.Float64()*900
		entries[i] = microcharts.Entry{
			Value:      value,
			Label:      month,
			ValueLabel: fmt.Sprintf("%.0f", value),
			Color:      palette[i%len(palette)],
		}
	}
	return entries
}

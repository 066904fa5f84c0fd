// Package chart renders the dashboard's bar charts as PNG images using
// gonum/plot. Charts are fully recomputed on every call; nothing is cached.
package chart

import (
	"bytes"
	"image/color"
	"slices"
	"strconv"

	"github.com/emberops/firedesk/internal/errors"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
)

const (
	chartWidth  = 5 * vg.Inch
	chartHeight = 3 * vg.Inch
)

var barWidth = vg.Points(30)

var (
	tomato = color.RGBA{R: 0xff, G: 0x63, B: 0x47, A: 0xff}
	blue   = color.RGBA{R: 0x00, G: 0x00, B: 0xff, A: 0xff}
)

// Equipment renders a bar chart of per-equipment unit counts, one bar per
// label in sorted order. An empty input renders an empty-axes chart.
func Equipment(counts map[string]int) ([]byte, error) {
	p := plot.New()
	p.Title.Text = "Equipment Usage"
	p.Y.Label.Text = "Units Used"

	if len(counts) == 0 {
		p.X.Min, p.X.Max = 0, 1
		p.Y.Min, p.Y.Max = 0, 1
		return renderPNG(p)
	}

	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	slices.Sort(labels)

	values := make(plotter.Values, len(labels))
	for i, label := range labels {
		values[i] = float64(counts[label])
	}

	bars, err := plotter.NewBarChart(values, barWidth)
	if err != nil {
		return nil, errors.Wrap(err, "new equipment bar chart")
	}
	bars.Color = tomato
	bars.LineStyle.Width = 0

	p.Add(bars)
	p.NominalX(labels...)

	return renderPNG(p)
}

// Water renders a bar chart of water usage per historical incident, one bar
// per incident index in dispatch order. An empty history renders a
// placeholder image with a centered "No Incidents Yet" text instead of axes.
func Water(liters []float64) ([]byte, error) {
	if len(liters) == 0 {
		return placeholder("No Incidents Yet")
	}

	p := plot.New()
	p.Title.Text = "Water Usage per Incident"
	p.Y.Label.Text = "Liters"
	p.X.Label.Text = "Incident #"

	bars, err := plotter.NewBarChart(plotter.Values(liters), barWidth)
	if err != nil {
		return nil, errors.Wrap(err, "new water bar chart")
	}
	bars.Color = blue
	bars.LineStyle.Width = 0

	p.Add(bars)

	indices := make([]string, len(liters))
	for i := range liters {
		indices[i] = strconv.Itoa(i)
	}
	p.NominalX(indices...)

	return renderPNG(p)
}

// placeholder renders an axis-less chart with a single centered text.
func placeholder(msg string) ([]byte, error) {
	p := plot.New()
	p.HideAxes()
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs:    []plotter.XY{{X: 0.5, Y: 0.5}},
		Labels: []string{msg},
	})
	if err != nil {
		return nil, errors.Wrap(err, "new placeholder label")
	}
	for i := range labels.TextStyle {
		labels.TextStyle[i].XAlign = text.XCenter
		labels.TextStyle[i].YAlign = text.YCenter
	}
	p.Add(labels)

	return renderPNG(p)
}

func renderPNG(p *plot.Plot) ([]byte, error) {
	w, err := p.WriterTo(chartWidth, chartHeight, "png")
	if err != nil {
		return nil, errors.Wrap(err, "chart writer")
	}
	buf := new(bytes.Buffer)
	if _, err = w.WriteTo(buf); err != nil {
		return nil, errors.Wrap(err, "write chart PNG")
	}
	return buf.Bytes(), nil
}

// Package chart renders bar series as PNG charts: the close-price line
// with optional moving-average overlays, and the underwater drawdown
// plot.
package chart

import (
	"fmt"
	"io"
	"math"
	"time"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/stalking-stocks/stalker"
)

const (
	width  = 1024
	height = 420
)

// overlayPalette colors the moving-average overlays, in window order.
var overlayPalette = []drawing.Color{
	chart.ColorOrange,
	chart.ColorGreen,
	chart.ColorRed,
	chart.ColorCyan,
}

// Price builds the close-price chart with one overlay per SMA window.
// Windows that do not fit the series are skipped.
func Price(series *stalker.Series, windows []int, title string) (*chart.Chart, error) {
	if series.Len() == 0 {
		return nil, fmt.Errorf("no bars to chart for %s", series.Symbol)
	}

	times := series.Times()
	closes := series.Closes()

	all := []chart.Series{lineSeries("Close", times, closes, chart.ColorBlue)}
	for i, w := range windows {
		if w <= 0 || w > series.Len() {
			continue
		}
		all = append(all, lineSeries(
			fmt.Sprintf("SMA %d", w),
			times,
			stalker.SMA(closes, w),
			overlayPalette[i%len(overlayPalette)],
		))
	}

	c := newChart(title, series.Interval, all)
	c.YAxis.Name = yAxisName(series)
	c.Elements = []chart.Renderable{chart.Legend(c)}
	return c, nil
}

// Drawdown builds the underwater plot: percent below the running maximum
// close, zero along the top whenever the series sets a new high.
func Drawdown(series *stalker.Series, title string) (*chart.Chart, error) {
	if series.Len() == 0 {
		return nil, fmt.Errorf("no bars to chart for %s", series.Symbol)
	}

	down := stalker.Drawdowns(series.Closes())
	for i, v := range down {
		down[i] = v * 100
	}

	style := chart.Style{
		StrokeWidth: 1.5,
		StrokeColor: chart.ColorRed,
		FillColor:   chart.ColorRed.WithAlpha(64),
	}
	xs, ys := padded(series.Times(), down)
	c := newChart(title, series.Interval, []chart.Series{
		chart.TimeSeries{Name: "Drawdown", XValues: xs, YValues: ys, Style: style},
	})
	c.YAxis.Name = "% below high"
	return c, nil
}

// Render writes the chart as PNG.
func Render(c *chart.Chart, w io.Writer) error {
	return c.Render(chart.PNG, w)
}

func lineSeries(name string, times []time.Time, values []float64, color drawing.Color) chart.TimeSeries {
	xs, ys := padded(times, values)
	return chart.TimeSeries{
		Name:    name,
		XValues: xs,
		YValues: ys,
		Style:   chart.Style{StrokeWidth: 1.5, StrokeColor: color},
	}
}

// padded drops undefined points and guarantees at least two X values,
// which the render pipeline requires.
func padded(times []time.Time, values []float64) ([]time.Time, []float64) {
	xs := make([]time.Time, 0, len(times))
	ys := make([]float64, 0, len(values))
	for i, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			continue
		}
		xs = append(xs, times[i])
		ys = append(ys, v)
	}
	if len(xs) == 1 {
		xs = append(xs, xs[0].Add(time.Second))
		ys = append(ys, ys[0])
	}
	return xs, ys
}

func newChart(title string, interval stalker.Interval, series []chart.Series) *chart.Chart {
	format := time.DateOnly
	if interval.Intraday() {
		format = "01-02 15:04"
	}
	return &chart.Chart{
		Title:      title,
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: 24}},
		XAxis:      chart.XAxis{ValueFormatter: chart.TimeValueFormatterWithFormat(format)},
		Series:     series,
	}
}

func yAxisName(series *stalker.Series) string {
	if series.Currency != "" {
		return series.Currency
	}
	return "Price"
}

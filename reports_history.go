package stalker

import (
	"context"
	"fmt"

	"github.com/stalking-stocks/stalker/timeseries"
)

// HistoryReport is a bar table for one symbol, with optional moving
// average columns alongside the closes.
type HistoryReport struct {
	Symbol     Symbol           `json:"symbol"`
	Currency   string           `json:"currency,omitempty"`
	Interval   Interval         `json:"interval"`
	Range      timeseries.Range `json:"range"`
	SMAWindows []int            `json:"sma_windows,omitempty"`
	Rows       []HistoryRow     `json:"rows"`
}

// HistoryRow is one bar plus its moving average values, aligned with the
// report's SMAWindows.
type HistoryRow struct {
	Bar Bar
	SMA []float64
}

func (r HistoryRow) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.EmbedFrom(r.Bar)
	if len(r.SMA) > 0 {
		vals := make([]any, len(r.SMA))
		for i, v := range r.SMA {
			vals[i] = finite(v)
		}
		w.Append("sma", vals)
	}
	return w.MarshalJSON()
}

// NewHistoryReport fetches a live bar history over a horizon. An empty
// interval means the horizon's default; windows may be nil for a plain
// bar table.
func NewHistoryReport(ctx context.Context, p BarProvider, symbol Symbol, horizon Horizon, interval Interval, windows []int) (*HistoryReport, error) {
	if interval == "" {
		interval = horizon.DefaultInterval()
	}
	if err := horizon.Validate(interval); err != nil {
		return nil, err
	}
	series, err := p.Bars(ctx, symbol, horizon, interval)
	if err != nil {
		return nil, fmt.Errorf("fetching %s bars: %w", symbol, err)
	}
	Clean(series)
	return buildHistory(series, windows), nil
}

// NewStoredHistoryReport builds the bar table from the local store. The
// averages are computed over the full stored history, so the first rows
// of the range keep their trailing windows, then rows are trimmed to the
// range.
func NewStoredHistoryReport(store *Store, symbol Symbol, r timeseries.Range, windows []int) (*HistoryReport, error) {
	series, err := store.History(symbol)
	if err != nil {
		return nil, err
	}
	report := buildHistory(series, windows)
	rows := make([]HistoryRow, 0, len(report.Rows))
	for _, row := range report.Rows {
		if r.Contains(row.Bar.Date()) {
			rows = append(rows, row)
		}
	}
	report.Rows = rows
	report.Range = r
	return report, nil
}

func buildHistory(series *Series, windows []int) *HistoryReport {
	report := &HistoryReport{
		Symbol:     series.Symbol,
		Currency:   series.Currency,
		Interval:   series.Interval,
		SMAWindows: windows,
	}
	closes := series.Closes()
	smas := make([][]float64, len(windows))
	for i, w := range windows {
		smas[i] = SMA(closes, w)
	}
	for i, b := range series.Bars {
		row := HistoryRow{Bar: b}
		for _, sma := range smas {
			row.SMA = append(row.SMA, sma[i])
		}
		report.Rows = append(report.Rows, row)
	}
	if len(series.Bars) > 0 {
		report.Range = timeseries.NewRange(series.Bars[0].Date(), series.LatestDate())
	}
	return report
}

package stalker

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"
)

// ScreenCriteria are the thresholds a symbol must clear to pass the
// screen. A zero threshold is not applied.
type ScreenCriteria struct {
	MinPrice        float64 `json:"min_price,omitempty"`
	MinDollarVolume float64 `json:"min_dollar_volume,omitempty"`
	MinADR          Percent `json:"min_adr,omitempty"`
	MinGrowth       Percent `json:"min_growth,omitempty"`
	Window          int     `json:"window,omitempty"` // trading days for the averages, default 20
}

func (c ScreenCriteria) window() int {
	if c.Window <= 0 {
		return 20
	}
	return c.Window
}

func (c ScreenCriteria) match(r ScreenRow) bool {
	if c.MinPrice > 0 && !(r.Price >= c.MinPrice) {
		return false
	}
	if c.MinDollarVolume > 0 && !(r.DollarVolume >= c.MinDollarVolume) {
		return false
	}
	if c.MinADR > 0 && !(r.ADR >= c.MinADR) {
		return false
	}
	if c.MinGrowth != 0 && !(r.Growth >= c.MinGrowth) {
		return false
	}
	return true
}

// ScreenRow is one symbol with its measured values.
type ScreenRow struct {
	Symbol       Symbol  `json:"symbol"`
	Price        float64 `json:"price"`
	DollarVolume float64 `json:"dollar_volume"`
	ADR          Percent `json:"adr"`
	Growth       Percent `json:"growth"`
	Bars         int     `json:"bars"`
}

func (r ScreenRow) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("symbol", r.Symbol)
	w.Append("price", finite(r.Price))
	w.Append("dollar_volume", finite(r.DollarVolume))
	w.Append("adr", finite(r.ADR))
	w.Append("growth", finite(r.Growth))
	w.Append("bars", r.Bars)
	return w.MarshalJSON()
}

// ScreenReport lists the symbols of a universe that cleared every
// threshold, sorted by growth, best first.
type ScreenReport struct {
	Horizon  Horizon        `json:"horizon"`
	Criteria ScreenCriteria `json:"criteria"`
	Universe int            `json:"universe"`
	Rows     []ScreenRow    `json:"rows"`
}

// NewScreenReport measures every symbol of the universe over the horizon
// and keeps those that clear the criteria. Symbols that fail to fetch
// are skipped; their errors come back joined beside the report.
func NewScreenReport(ctx context.Context, p BarProvider, symbols []Symbol, horizon Horizon, criteria ScreenCriteria) (*ScreenReport, error) {
	report := &ScreenReport{
		Horizon:  horizon,
		Criteria: criteria,
		Universe: len(symbols),
	}

	var errs error
	for _, symbol := range symbols {
		series, err := p.Bars(ctx, symbol, horizon, Interval1d)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("screening %s: %w", symbol, err))
			continue
		}
		Clean(series)
		row := measure(series, criteria.window())
		if criteria.match(row) {
			report.Rows = append(report.Rows, row)
		}
	}

	sort.SliceStable(report.Rows, func(i, j int) bool {
		gi, gj := float64(report.Rows[i].Growth), float64(report.Rows[j].Growth)
		if math.IsNaN(gj) {
			return !math.IsNaN(gi)
		}
		if math.IsNaN(gi) {
			return false
		}
		return gi > gj
	})
	return report, errs
}

func measure(series *Series, window int) ScreenRow {
	closes := series.Closes()
	row := ScreenRow{Symbol: series.Symbol, Bars: len(closes)}
	if len(closes) == 0 {
		row.Price = math.NaN()
		row.DollarVolume = math.NaN()
		row.ADR = Percent(math.NaN())
		row.Growth = Percent(math.NaN())
		return row
	}
	row.Price = closes[len(closes)-1]
	row.DollarVolume = AverageDollarVolume(series.Bars, window)
	row.ADR = Percent(AverageDailyRange(series.Bars, window))
	row.Growth = AsPercent(Growth(closes))
	return row
}

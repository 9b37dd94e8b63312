package stalker

import (
	"context"
	"fmt"
)

// TickerReport is the full dashboard block for one symbol: who it is,
// where the price stands, and how the series behaved over the horizon.
type TickerReport struct {
	Info     *TickerInfo   `json:"info"`
	Price    PriceSummary  `json:"price"`
	Horizon  Horizon       `json:"horizon"`
	Interval Interval      `json:"interval"`
	Metrics  SeriesMetrics `json:"metrics"`

	// Series is the cleaned history the metrics were computed from. It is
	// kept for chart rendering, not serialized with the report.
	Series *Series `json:"-"`
}

// NewTickerReport fetches everything the ticker dashboard needs: the
// profile, the latest quote, and a cleaned bar history with its
// analytics. An empty interval means the horizon's default.
func NewTickerReport(ctx context.Context, p MarketProvider, symbol Symbol, horizon Horizon, interval Interval) (*TickerReport, error) {
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

	report := &TickerReport{
		Horizon:  horizon,
		Interval: interval,
		Series:   series,
		Metrics:  ComputeMetrics(series),
	}

	report.Info, err = p.Profile(ctx, symbol)
	if err != nil {
		return nil, fmt.Errorf("fetching %s profile: %w", symbol, err)
	}

	quotes, err := p.Quote(ctx, symbol)
	switch {
	case err != nil:
		return nil, fmt.Errorf("fetching %s quote: %w", symbol, err)
	case len(quotes) > 0:
		report.Price = NewPriceSummary(quotes[0])
	default:
		// Markets without a live quote still have yesterday's bars.
		if sum, ok := PriceSummaryOf(series); ok {
			report.Price = sum
		}
	}
	return report, nil
}

package stalker

import (
	"context"
	"errors"
	"fmt"
)

// MetricsRow is one symbol with its analytics block.
type MetricsRow struct {
	Symbol   Symbol        `json:"symbol"`
	Currency string        `json:"currency,omitempty"`
	Metrics  SeriesMetrics `json:"metrics"`
}

// MetricsReport lays the analytics of several symbols side by side over
// one horizon, in the order they were asked for.
type MetricsReport struct {
	Horizon Horizon      `json:"horizon"`
	Rows    []MetricsRow `json:"rows"`
}

// NewMetricsReport computes the analytics battery for every symbol over
// the horizon at daily interval. Symbols that fail to fetch are skipped;
// their errors come back joined beside the report.
func NewMetricsReport(ctx context.Context, p BarProvider, symbols []Symbol, horizon Horizon) (*MetricsReport, error) {
	report := &MetricsReport{Horizon: horizon}

	var errs error
	for _, symbol := range symbols {
		series, err := p.Bars(ctx, symbol, horizon, Interval1d)
		if err != nil {
			errs = errors.Join(errs, fmt.Errorf("measuring %s: %w", symbol, err))
			continue
		}
		Clean(series)
		report.Rows = append(report.Rows, MetricsRow{
			Symbol:   series.Symbol,
			Currency: series.Currency,
			Metrics:  ComputeMetrics(series),
		})
	}
	return report, errs
}

package stalker

import "math"

// Reports are the dashboard surface as plain data. They are computed
// here from providers and the store, rendered to markdown by the
// renderer package, and served as JSON by the server package.

// SMAValue is the latest value of one simple moving average.
type SMAValue struct {
	Window int     `json:"window"`
	Value  float64 `json:"value"` // NaN when the window does not fit the series
}

// Defined reports whether the average could be computed.
func (v SMAValue) Defined() bool { return !math.IsNaN(v.Value) }

func (v SMAValue) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("window", v.Window)
	w.Append("value", finite(v.Value))
	return w.MarshalJSON()
}

// SeriesMetrics is the analytics block computed over one cleaned close
// series.
type SeriesMetrics struct {
	Bars                 int        `json:"bars"`
	First                float64    `json:"first"`
	Last                 float64    `json:"last"`
	Growth               Percent    `json:"growth"`
	Volatility           Percent    `json:"volatility"` // of daily returns
	AnnualizedVolatility Percent    `json:"annualized_volatility"`
	MaxDrawdown          Percent    `json:"max_drawdown"`
	MaxProfit            float64    `json:"max_profit"` // in price units, one unit traded
	LongestUp            int        `json:"longest_up"`
	LongestDown          int        `json:"longest_down"`
	SMA                  []SMAValue `json:"sma,omitempty"`
}

// finite converts a float to a JSON-able value, nil when it is NaN or
// infinite. encoding/json rejects non-finite numbers, and a series too
// short for a metric is not an error worth failing a response over.
func finite[T ~float64](v T) any {
	f := float64(v)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return f
}

func (m SeriesMetrics) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("bars", m.Bars)
	w.Append("first", finite(m.First))
	w.Append("last", finite(m.Last))
	w.Append("growth", finite(m.Growth))
	w.Append("volatility", finite(m.Volatility))
	w.Append("annualized_volatility", finite(m.AnnualizedVolatility))
	w.Append("max_drawdown", finite(m.MaxDrawdown))
	w.Append("max_profit", finite(m.MaxProfit))
	w.Append("longest_up", m.LongestUp)
	w.Append("longest_down", m.LongestDown)
	w.Optional("sma", m.SMA)
	return w.MarshalJSON()
}

// ComputeMetrics runs the full analytics battery over the series closes.
// NaN metric values mean the series was too short to compute them.
func ComputeMetrics(series *Series) SeriesMetrics {
	closes := series.Closes()
	m := SeriesMetrics{Bars: len(closes)}
	if len(closes) == 0 {
		return m
	}
	m.First, m.Last = closes[0], closes[len(closes)-1]
	m.Growth = AsPercent(Growth(closes))
	m.Volatility = AsPercent(Volatility(closes))
	m.AnnualizedVolatility = AsPercent(AnnualizedVolatility(closes))
	m.MaxDrawdown = AsPercent(MaxDrawdown(closes))
	m.MaxProfit = MaxProfit(closes)
	m.LongestUp, m.LongestDown, _ = Streaks(closes)
	for _, window := range SMAWindows {
		sma := SMA(closes, window)
		m.SMA = append(m.SMA, SMAValue{Window: window, Value: sma[len(sma)-1]})
	}
	return m
}

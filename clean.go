package stalker

import (
	"math"
	"slices"
	"sort"
	"time"

	"github.com/stalking-stocks/stalker/timeseries"
)

// Series hygiene. Raw vendor data has gaps, phantom weekend rows and the
// occasional fat-fingered print; every report cleans before it computes.

// FillMissing forward-fills NaN gaps, then back-fills a leading NaN run.
// An all-NaN input stays all-NaN.
func FillMissing(values []float64) []float64 {
	out := slices.Clone(values)
	last := math.NaN()
	for i, v := range out {
		if math.IsNaN(v) {
			out[i] = last
		} else {
			last = v
		}
	}
	// back-fill the leading run
	first := math.NaN()
	for _, v := range out {
		if !math.IsNaN(v) {
			first = v
			break
		}
	}
	for i := range out {
		if math.IsNaN(out[i]) {
			out[i] = first
		} else {
			break
		}
	}
	return out
}

// DropNonTrading removes Saturday and Sunday bars. Vendors sometimes emit
// them on half-open sessions and they would skew the daily metrics.
func DropNonTrading(bars []Bar) []Bar {
	out := make([]Bar, 0, len(bars))
	for _, b := range bars {
		switch b.Time.UTC().Weekday() {
		case time.Saturday, time.Sunday:
			continue
		}
		out = append(out, b)
	}
	return out
}

// DefaultIQRFactor is the fence multiplier used by the cleaning helpers:
// k=3 keeps ordinary earnings-day moves and only rejects data errors.
const DefaultIQRFactor = 3.0

// IQRBounds returns the Tukey fences Q1-k*IQR and Q3+k*IQR over the
// defined values. Quantiles use linear interpolation between order
// statistics. Fewer than 4 defined points yields (-Inf, +Inf): too little
// data to call anything an outlier.
func IQRBounds(values []float64, k float64) (lower, upper float64) {
	vals := defined(values)
	if len(vals) < 4 {
		return math.Inf(-1), math.Inf(1)
	}
	sort.Float64s(vals)
	q1 := quantile(vals, 0.25)
	q3 := quantile(vals, 0.75)
	iqr := q3 - q1
	return q1 - k*iqr, q3 + k*iqr
}

// MaskOutliersIQR replaces values outside the Tukey fences with NaN.
func MaskOutliersIQR(values []float64, k float64) []float64 {
	lower, upper := IQRBounds(values, k)
	out := slices.Clone(values)
	for i, v := range out {
		if v < lower || v > upper {
			out[i] = math.NaN()
		}
	}
	return out
}

// ClampOutliersIQR clips values outside the Tukey fences to the fences.
func ClampOutliersIQR(values []float64, k float64) []float64 {
	lower, upper := IQRBounds(values, k)
	out := slices.Clone(values)
	for i, v := range out {
		if v < lower {
			out[i] = lower
		} else if v > upper {
			out[i] = upper
		}
	}
	return out
}

// FlagReturnOutliers flags the returns whose z-score exceeds 3 in absolute
// value. The z-score uses the population standard deviation; a zero or
// undefined deviation flags nothing.
func FlagReturnOutliers(returns []float64) []bool {
	flags := make([]bool, len(returns))
	vals := defined(returns)
	if len(vals) == 0 {
		return flags
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	mean := sum / float64(len(vals))
	std := stddev(vals, 0)
	if std == 0 || math.IsNaN(std) {
		return flags
	}
	for i, r := range returns {
		if math.IsNaN(r) {
			continue
		}
		if z := (r - mean) / std; z > 3 || z < -3 {
			flags[i] = true
		}
	}
	return flags
}

// quantile computes the q-quantile of sorted values by linear
// interpolation between the two nearest order statistics.
func quantile(sorted []float64, q float64) float64 {
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	frac := pos - float64(lo)
	if lo+1 >= len(sorted) {
		return sorted[lo]
	}
	return sorted[lo]*(1-frac) + sorted[lo+1]*frac
}

// Clean is the standard hygiene pass applied to a series before metrics:
// weekend bars are dropped (daily data only), close gaps are filled, and
// fence-breaking closes are masked then re-filled. The series is cleaned
// in place and returned.
func Clean(s *Series) *Series {
	bars := s.Bars
	if !s.Interval.Intraday() {
		bars = DropNonTrading(bars)
	}
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	closes = FillMissing(closes)
	closes = MaskOutliersIQR(closes, DefaultIQRFactor)
	closes = FillMissing(closes)

	for i := range bars {
		if !math.IsNaN(closes[i]) {
			bars[i].Close = closes[i]
		}
	}
	s.Bars = bars
	return s
}

// Table aligns several symbols' daily closes on a shared date axis: the
// long records (date, symbol, close) pivoted wide.
type Table struct {
	columns map[Symbol]*timeseries.History[float64]
}

func NewTable() *Table {
	return &Table{columns: make(map[Symbol]*timeseries.History[float64])}
}

// Add records one close. A duplicate (date, symbol) keeps the last value.
func (t *Table) Add(symbol Symbol, on timeseries.Date, close float64) {
	h, ok := t.columns[symbol]
	if !ok {
		h = new(timeseries.History[float64])
		t.columns[symbol] = h
	}
	h.Append(on, close)
}

// AddSeries records every bar of the series.
func (t *Table) AddSeries(s *Series) {
	for _, b := range s.Bars {
		t.Add(s.Symbol, b.Date(), b.Close)
	}
}

// Symbols returns the column symbols in lexical order.
func (t *Table) Symbols() []Symbol {
	symbols := make([]Symbol, 0, len(t.columns))
	for s := range t.columns {
		symbols = append(symbols, s)
	}
	slices.Sort(symbols)
	return symbols
}

// Dates returns the union of all column dates, ascending.
func (t *Table) Dates() []timeseries.Date {
	histories := make([]*timeseries.History[float64], 0, len(t.columns))
	for _, h := range t.columns {
		histories = append(histories, h)
	}
	var dates []timeseries.Date
	for d := range timeseries.Iterate(histories...) {
		dates = append(dates, d)
	}
	return dates
}

// Column returns the symbol's closes aligned on the given date axis,
// with NaN where the symbol has no value.
func (t *Table) Column(symbol Symbol, dates []timeseries.Date) []float64 {
	out := nans(len(dates))
	h, ok := t.columns[symbol]
	if !ok {
		return out
	}
	for i, d := range dates {
		if v, found := h.Get(d); found {
			out[i] = v
		}
	}
	return out
}

// Normalize aligns every column on the union date axis and fills the gaps:
// interior gaps are linearly interpolated, the trailing gap is
// forward-filled, and a leading gap stays NaN (the symbol did not trade yet).
func (t *Table) Normalize() (dates []timeseries.Date, columns map[Symbol][]float64) {
	dates = t.Dates()
	columns = make(map[Symbol][]float64, len(t.columns))
	for _, symbol := range t.Symbols() {
		col := t.Column(symbol, dates)
		interpolate(col)
		forwardFill(col)
		columns[symbol] = col
	}
	return dates, columns
}

// interpolate fills interior NaN runs linearly between their defined neighbors.
func interpolate(values []float64) {
	prev := -1
	for i, v := range values {
		if math.IsNaN(v) {
			continue
		}
		if prev >= 0 && i-prev > 1 {
			step := (values[i] - values[prev]) / float64(i-prev)
			for j := prev + 1; j < i; j++ {
				values[j] = values[prev] + step*float64(j-prev)
			}
		}
		prev = i
	}
}

// forwardFill extends the last defined value over NaN runs; a leading run
// has no prior value and stays NaN.
func forwardFill(values []float64) {
	last := math.NaN()
	for i, v := range values {
		if math.IsNaN(v) {
			values[i] = last
		} else {
			last = v
		}
	}
}

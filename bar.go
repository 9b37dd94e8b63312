package stalker

import (
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/stalking-stocks/stalker/timeseries"
)

// Bar is a single OHLCV observation for one symbol at one instant.
//
// Daily bars carry the session date at midnight UTC; intraday bars carry
// the exact opening time of their slot.
type Bar struct {
	Time     time.Time
	Open     float64
	High     float64
	Low      float64
	Close    float64
	AdjClose float64
	Volume   int64
}

// Date returns the civil date of the bar.
func (b Bar) Date() timeseries.Date { return timeseries.DateOf(b.Time.UTC()) }

// Valid reports whether the bar is internally consistent.
func (b Bar) Valid() bool {
	return b.Low <= b.High &&
		b.Open >= b.Low && b.Open <= b.High &&
		b.Close >= b.Low && b.Close <= b.High &&
		b.Volume >= 0
}

func (b Bar) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("date", b.Date())
	if !isMidnightUTC(b.Time) {
		w.Append("time", b.Time.UTC().Format(time.RFC3339))
	}
	w.Append("open", b.Open)
	w.Append("high", b.High)
	w.Append("low", b.Low)
	w.Append("close", b.Close)
	w.Optional("adjclose", b.AdjClose)
	w.Append("volume", b.Volume)
	return w.MarshalJSON()
}

func (b *Bar) UnmarshalJSON(data []byte) error {
	var raw struct {
		Date     timeseries.Date `json:"date"`
		Time     string          `json:"time"`
		Open     float64         `json:"open"`
		High     float64         `json:"high"`
		Low      float64         `json:"low"`
		Close    float64         `json:"close"`
		AdjClose float64         `json:"adjclose"`
		Volume   int64           `json:"volume"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	b.Time = raw.Date.Time()
	if raw.Time != "" {
		t, err := time.Parse(time.RFC3339, raw.Time)
		if err != nil {
			return fmt.Errorf("invalid bar time %q: %w", raw.Time, err)
		}
		b.Time = t.UTC()
	}
	b.Open, b.High, b.Low, b.Close = raw.Open, raw.High, raw.Low, raw.Close
	b.AdjClose = raw.AdjClose
	if b.AdjClose == 0 {
		b.AdjClose = raw.Close
	}
	b.Volume = raw.Volume
	return nil
}

func isMidnightUTC(t time.Time) bool {
	u := t.UTC()
	return u.Hour() == 0 && u.Minute() == 0 && u.Second() == 0 && u.Nanosecond() == 0
}

// Series is the bar history of one symbol at one interval.
//
// Bars are kept strictly ascending by time and unique per instant; Append
// overwrites an existing bar so that the freshest data wins.
type Series struct {
	Symbol   Symbol
	Currency string
	Interval Interval
	Bars     []Bar
}

// NewSeries returns an empty series for the symbol at the given interval.
func NewSeries(symbol Symbol, interval Interval) *Series {
	return &Series{Symbol: symbol, Interval: interval}
}

func searchBar(bars []Bar, on time.Time) (int, bool) {
	return slices.BinarySearchFunc(bars, on, func(b Bar, t time.Time) int {
		return b.Time.Compare(t)
	})
}

// Append inserts the bar in time order, overwriting any bar at the same instant.
func (s *Series) Append(b Bar) *Series {
	i, found := searchBar(s.Bars, b.Time)
	if found {
		s.Bars[i] = b
		return s
	}
	s.Bars = slices.Insert(s.Bars, i, b)
	return s
}

// Merge appends every bar of the other series.
func (s *Series) Merge(other *Series) *Series {
	for _, b := range other.Bars {
		s.Append(b)
	}
	return s
}

// Len returns the number of bars.
func (s *Series) Len() int { return len(s.Bars) }

// Last returns the most recent bar, or false when the series is empty.
func (s *Series) Last() (Bar, bool) {
	if len(s.Bars) == 0 {
		return Bar{}, false
	}
	return s.Bars[len(s.Bars)-1], true
}

// Prev returns the bar before the most recent one, or false.
func (s *Series) Prev() (Bar, bool) {
	if len(s.Bars) < 2 {
		return Bar{}, false
	}
	return s.Bars[len(s.Bars)-2], true
}

// Closes returns the close prices in time order.
func (s *Series) Closes() []float64 {
	closes := make([]float64, len(s.Bars))
	for i, b := range s.Bars {
		closes[i] = b.Close
	}
	return closes
}

// Times returns the bar times in order.
func (s *Series) Times() []time.Time {
	times := make([]time.Time, len(s.Bars))
	for i, b := range s.Bars {
		times[i] = b.Time
	}
	return times
}

// Slice returns the sub-series of bars within [from, to], boundaries included.
func (s *Series) Slice(from, to time.Time) *Series {
	lo, _ := searchBar(s.Bars, from)
	hi, found := searchBar(s.Bars, to)
	if found {
		hi++
	}
	out := &Series{Symbol: s.Symbol, Currency: s.Currency, Interval: s.Interval}
	out.Bars = append(out.Bars, s.Bars[lo:hi]...)
	return out
}

// Between returns the sub-series of bars whose civil date lies in the range.
func (s *Series) Between(r timeseries.Range) *Series {
	return s.Slice(r.From.Time(), r.To.Time().Add(timeseries.Day-time.Nanosecond))
}

// LatestDate returns the civil date of the last bar, or a zero date.
func (s *Series) LatestDate() timeseries.Date {
	last, ok := s.Last()
	if !ok {
		return timeseries.Date{}
	}
	return last.Date()
}

// CloseHistory projects the series onto a daily close history.
// For intraday series the last bar of each session wins.
func (s *Series) CloseHistory() *timeseries.History[float64] {
	h := new(timeseries.History[float64])
	for _, b := range s.Bars {
		h.Append(b.Date(), b.Close)
	}
	return h
}

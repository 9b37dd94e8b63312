package stalker

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stalking-stocks/stalker/timeseries"
)

func dailyBar(y int, m time.Month, d int, close float64) Bar {
	return Bar{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), Close: close}
}

func TestSeriesAppend(t *testing.T) {
	s := NewSeries("AAPL", Interval1d)
	s.Append(dailyBar(2024, 1, 3, 3))
	s.Append(dailyBar(2024, 1, 1, 1))
	s.Append(dailyBar(2024, 1, 2, 2))

	if got := s.Closes(); !sameFloats(got, []float64{1, 2, 3}) {
		t.Errorf("Append() out of order closes = %v, want [1 2 3]", got)
	}

	// same instant overwrites
	s.Append(dailyBar(2024, 1, 2, 20))
	if got := s.Closes(); !sameFloats(got, []float64{1, 20, 3}) {
		t.Errorf("Append() overwrite closes = %v, want [1 20 3]", got)
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
}

func TestSeriesMerge(t *testing.T) {
	a := NewSeries("AAPL", Interval1d)
	a.Append(dailyBar(2024, 1, 1, 1))
	a.Append(dailyBar(2024, 1, 2, 2))

	b := NewSeries("AAPL", Interval1d)
	b.Append(dailyBar(2024, 1, 2, 20)) // fresher print for the 2nd
	b.Append(dailyBar(2024, 1, 3, 3))

	a.Merge(b)
	if got := a.Closes(); !sameFloats(got, []float64{1, 20, 3}) {
		t.Errorf("Merge() closes = %v, want [1 20 3]", got)
	}
}

func TestSeriesBetween(t *testing.T) {
	s := NewSeries("AAPL", Interval1d)
	for d := 1; d <= 10; d++ {
		s.Append(dailyBar(2024, 1, d, float64(d)))
	}

	r := timeseries.NewRange(timeseries.NewDate(2024, 1, 3), timeseries.NewDate(2024, 1, 5))
	got := s.Between(r)
	if !sameFloats(got.Closes(), []float64{3, 4, 5}) {
		t.Errorf("Between() closes = %v, want [3 4 5]", got.Closes())
	}

	// boundaries out of the series clamp to what exists
	r = timeseries.NewRange(timeseries.NewDate(2023, 12, 1), timeseries.NewDate(2024, 1, 2))
	got = s.Between(r)
	if !sameFloats(got.Closes(), []float64{1, 2}) {
		t.Errorf("Between() closes = %v, want [1 2]", got.Closes())
	}
}

func TestSeriesLastPrev(t *testing.T) {
	s := NewSeries("AAPL", Interval1d)
	if _, ok := s.Last(); ok {
		t.Errorf("Last() on empty series = ok")
	}
	if !s.LatestDate().IsZero() {
		t.Errorf("LatestDate() on empty series = %v, want zero", s.LatestDate())
	}

	s.Append(dailyBar(2024, 1, 1, 1))
	if _, ok := s.Prev(); ok {
		t.Errorf("Prev() on a single bar = ok")
	}

	s.Append(dailyBar(2024, 1, 2, 2))
	last, _ := s.Last()
	prev, _ := s.Prev()
	if last.Close != 2 || prev.Close != 1 {
		t.Errorf("Last()/Prev() = %v/%v, want closes 2/1", last.Close, prev.Close)
	}
	if got := s.LatestDate().String(); got != "2024-01-02" {
		t.Errorf("LatestDate() = %s, want 2024-01-02", got)
	}
}

func TestSeriesCloseHistory(t *testing.T) {
	s := NewSeries("AAPL", Interval30m)
	s.Append(Bar{Time: time.Date(2024, 1, 2, 14, 30, 0, 0, time.UTC), Close: 10})
	s.Append(Bar{Time: time.Date(2024, 1, 2, 15, 0, 0, 0, time.UTC), Close: 11})
	s.Append(Bar{Time: time.Date(2024, 1, 3, 14, 30, 0, 0, time.UTC), Close: 12})

	h := s.CloseHistory()
	if h.Len() != 2 {
		t.Fatalf("CloseHistory() has %d days, want 2", h.Len())
	}
	// the last bar of the session wins
	if v, _ := h.Get(timeseries.NewDate(2024, 1, 2)); v != 11 {
		t.Errorf("CloseHistory() Jan 2 = %v, want 11", v)
	}
}

func TestBarValid(t *testing.T) {
	good := Bar{Open: 10, High: 11, Low: 9, Close: 10.5, Volume: 100}
	if !good.Valid() {
		t.Errorf("Valid() = false on a consistent bar")
	}
	bad := Bar{Open: 10, High: 9, Low: 11, Close: 10}
	if bad.Valid() {
		t.Errorf("Valid() = true on an inverted high/low")
	}
	negVolume := Bar{Open: 10, High: 11, Low: 9, Close: 10, Volume: -1}
	if negVolume.Valid() {
		t.Errorf("Valid() = true on a negative volume")
	}
}

func TestBarJSON(t *testing.T) {
	daily := Bar{
		Time: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
		Open: 187.15, High: 188.44, Low: 183.89, Close: 185.64, AdjClose: 185.64,
		Volume: 82488700,
	}
	got, err := json.Marshal(daily)
	if err != nil {
		t.Fatalf("Marshal() unexpected error = %v", err)
	}
	want := `{"date":"2024-01-02","open":187.15,"high":188.44,"low":183.89,"close":185.64,"adjclose":185.64,"volume":82488700}`
	if string(got) != want {
		t.Errorf("Marshal() = %s, want %s", got, want)
	}

	// intraday bars carry their wall-clock time
	intraday := daily
	intraday.Time = time.Date(2024, 1, 2, 14, 30, 0, 0, time.UTC)
	got, err = json.Marshal(intraday)
	if err != nil {
		t.Fatalf("Marshal() unexpected error = %v", err)
	}
	var back Bar
	if err := json.Unmarshal(got, &back); err != nil {
		t.Fatalf("Unmarshal() unexpected error = %v", err)
	}
	if !back.Time.Equal(intraday.Time) {
		t.Errorf("round trip time = %v, want %v", back.Time, intraday.Time)
	}

	// a missing adjclose defaults to the close
	var b Bar
	if err := json.Unmarshal([]byte(`{"date":"2024-01-02","open":1,"high":2,"low":0.5,"close":1.5,"volume":10}`), &b); err != nil {
		t.Fatalf("Unmarshal() unexpected error = %v", err)
	}
	if b.AdjClose != 1.5 {
		t.Errorf("AdjClose defaulted to %v, want 1.5", b.AdjClose)
	}
}

package stalker

import (
	"fmt"
	"slices"
	"strings"
	"time"
)

// Horizon is a named lookback window for fetching and analyzing a series.
//
// The literals double as the upstream chart API `range` parameter, so a
// Horizon goes on the wire unchanged.
type Horizon string

const (
	Horizon1D Horizon = "1d"
	Horizon5D Horizon = "5d"
	Horizon1M Horizon = "1mo"
	Horizon6M Horizon = "6mo"
	Horizon1Y Horizon = "1y"
	Horizon3Y Horizon = "3y"
	Horizon5Y Horizon = "5y"
)

// Horizons lists all horizons from shortest to longest.
func Horizons() []Horizon {
	return []Horizon{Horizon1D, Horizon5D, Horizon1M, Horizon6M, Horizon1Y, Horizon3Y, Horizon5Y}
}

// ParseHorizon accepts both the wire spelling ("1mo") and the display
// spelling ("1M"), case-insensitive.
func ParseHorizon(s string) (Horizon, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1d":
		return Horizon1D, nil
	case "5d":
		return Horizon5D, nil
	case "1m", "1mo":
		return Horizon1M, nil
	case "6m", "6mo":
		return Horizon6M, nil
	case "1y":
		return Horizon1Y, nil
	case "3y":
		return Horizon3Y, nil
	case "5y":
		return Horizon5Y, nil
	default:
		return "", fmt.Errorf("unknown horizon %q (want one of 1d 5d 1mo 6mo 1y 3y 5y)", s)
	}
}

func (h Horizon) String() string { return string(h) }

// Name returns the display spelling (1D, 5D, 1M, 6M, 1Y, 3Y, 5Y).
func (h Horizon) Name() string {
	return strings.ToUpper(strings.TrimSuffix(string(h), "o"))
}

// Intraday reports whether the horizon is measured in days and therefore
// carries intraday bars.
func (h Horizon) Intraday() bool { return h == Horizon1D || h == Horizon5D }

// Intervals returns the bar granularities valid for this horizon.
// Day-scale horizons only admit intraday slots; longer horizons only
// admit day-or-coarser slots, mirroring what the upstream API accepts.
func (h Horizon) Intervals() []Interval {
	if h.Intraday() {
		return []Interval{Interval1m, Interval2m, Interval5m, Interval15m, Interval30m, Interval1h}
	}
	return []Interval{Interval1d, Interval5d, Interval1wk, Interval1mo, Interval3mo}
}

// DefaultInterval returns the granularity used when the caller does not pick one.
func (h Horizon) DefaultInterval() Interval {
	switch h {
	case Horizon1D:
		return Interval5m
	case Horizon5D:
		return Interval30m
	default:
		return Interval1d
	}
}

// Validate checks that the interval is admissible for this horizon.
func (h Horizon) Validate(i Interval) error {
	if slices.Contains(h.Intervals(), i) {
		return nil
	}
	return fmt.Errorf("interval %s is not valid for horizon %s (want one of %v)", i, h.Name(), h.Intervals())
}

// Window returns the [from, to] time window ending at now.
// Months and years follow the calendar; days are calendar days.
func (h Horizon) Window(now time.Time) (from, to time.Time) {
	to = now
	switch h {
	case Horizon1D:
		from = now.AddDate(0, 0, -1)
	case Horizon5D:
		from = now.AddDate(0, 0, -5)
	case Horizon1M:
		from = now.AddDate(0, -1, 0)
	case Horizon6M:
		from = now.AddDate(0, -6, 0)
	case Horizon1Y:
		from = now.AddDate(-1, 0, 0)
	case Horizon3Y:
		from = now.AddDate(-3, 0, 0)
	case Horizon5Y:
		from = now.AddDate(-5, 0, 0)
	default:
		from = now.AddDate(-1, 0, 0)
	}
	return from, to
}

// Interval is the bar granularity, spelled the way the upstream chart API
// spells its `interval` parameter.
type Interval string

const (
	Interval1m  Interval = "1m"
	Interval2m  Interval = "2m"
	Interval5m  Interval = "5m"
	Interval15m Interval = "15m"
	Interval30m Interval = "30m"
	Interval1h  Interval = "1h"
	Interval1d  Interval = "1d"
	Interval5d  Interval = "5d"
	Interval1wk Interval = "1wk"
	Interval1mo Interval = "1mo"
	Interval3mo Interval = "3mo"
)

func ParseInterval(s string) (Interval, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1m":
		return Interval1m, nil
	case "2m":
		return Interval2m, nil
	case "5m":
		return Interval5m, nil
	case "15m":
		return Interval15m, nil
	case "30m":
		return Interval30m, nil
	case "1h", "60m":
		return Interval1h, nil
	case "1d":
		return Interval1d, nil
	case "5d":
		return Interval5d, nil
	case "1wk":
		return Interval1wk, nil
	case "1mo":
		return Interval1mo, nil
	case "3mo":
		return Interval3mo, nil
	default:
		return "", fmt.Errorf("unknown interval %q", s)
	}
}

func (i Interval) String() string { return string(i) }

// Intraday reports whether the interval is finer than a day.
func (i Interval) Intraday() bool {
	switch i {
	case Interval1m, Interval2m, Interval5m, Interval15m, Interval30m, Interval1h:
		return true
	}
	return false
}

// SMA windows surfaced by the reports and charts.
var SMAWindows = []int{5, 20, 50}

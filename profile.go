package stalker

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// TickerInfo is the company profile of one symbol: identity, taxonomy
// placement, and the handful of fundamentals the dashboard shows.
type TickerInfo struct {
	Symbol          Symbol  `json:"symbol"`
	ShortName       string  `json:"short_name,omitempty"`
	LongName        string  `json:"long_name,omitempty"`
	Currency        string  `json:"currency,omitempty"`
	Sector          string  `json:"sector,omitempty"`
	Industry        string  `json:"industry,omitempty"`
	Summary         string  `json:"summary,omitempty"` // long business summary
	Employees       int64   `json:"employees,omitempty"`
	MarketCap       Money   `json:"market_cap"`
	CurrentPrice    float64 `json:"current_price"`
	DividendRate    float64 `json:"dividend_rate,omitempty"` // currency per share per year
	DividendYield   Percent `json:"dividend_yield,omitempty"`
	Volume          int64   `json:"volume"`
	AverageVolume   int64   `json:"average_volume"`
	FiftyTwoWeekLow float64 `json:"fifty_two_week_low"`
	FiftyTwoWeekHi  float64 `json:"fifty_two_week_high"`
	Website         string  `json:"website,omitempty"`
}

// DisplayName returns the best available human name: long name, short
// name, then the bare symbol.
func (i *TickerInfo) DisplayName() string {
	if i.LongName != "" {
		return i.LongName
	}
	if i.ShortName != "" {
		return i.ShortName
	}
	return string(i.Symbol)
}

// SectorKey returns the taxonomy key of the profile's sector.
func (i *TickerInfo) SectorKey() string { return KeyOf(i.Sector) }

// IndustryKey returns the taxonomy key of the profile's industry.
func (i *TickerInfo) IndustryKey() string { return KeyOf(i.Industry) }

// Quote is a flat real-time quote for one symbol.
type Quote struct {
	Symbol        Symbol  `json:"symbol"`
	ShortName     string  `json:"short_name,omitempty"`
	LongName      string  `json:"long_name,omitempty"`
	Currency      string  `json:"currency,omitempty"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent Percent `json:"change_percent"`
	Open          float64 `json:"open"`
	DayLow        float64 `json:"day_low"`
	DayHigh       float64 `json:"day_high"`
	PrevClose     float64 `json:"prev_close"`
	Volume        int64   `json:"volume"`
	MarketCap     float64 `json:"market_cap,omitempty"`
}

// Mover is one row of a market movers table.
type Mover struct {
	Symbol        Symbol  `json:"symbol"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	ChangePercent Percent `json:"change_percent"`
	Volume        int64   `json:"volume"`
	MarketCap     float64 `json:"market_cap,omitempty"`
}

// PriceSummary is the at-a-glance price block of the dashboard: where the
// price is now and how it moved over the last session.
type PriceSummary struct {
	Symbol    Symbol  `json:"symbol"`
	Currency  string  `json:"currency,omitempty"`
	Latest    float64 `json:"latest"`
	PrevClose float64 `json:"prev_close"`
	Open      float64 `json:"open"`
	DayLow    float64 `json:"day_low"`
	DayHigh   float64 `json:"day_high"`
	Volume    int64   `json:"volume"`
}

// NewPriceSummary builds the summary from a live quote.
func NewPriceSummary(q Quote) PriceSummary {
	return PriceSummary{
		Symbol:    q.Symbol,
		Currency:  q.Currency,
		Latest:    q.Price,
		PrevClose: q.PrevClose,
		Open:      q.Open,
		DayLow:    q.DayLow,
		DayHigh:   q.DayHigh,
		Volume:    q.Volume,
	}
}

// PriceSummaryOf builds the summary from the last two bars of a series,
// for when no live quote is available.
func PriceSummaryOf(s *Series) (PriceSummary, bool) {
	last, ok := s.Last()
	if !ok {
		return PriceSummary{}, false
	}
	sum := PriceSummary{
		Symbol:   s.Symbol,
		Currency: s.Currency,
		Latest:   last.Close,
		Open:     last.Open,
		DayLow:   last.Low,
		DayHigh:  last.High,
		Volume:   last.Volume,
	}
	if prev, ok := s.Prev(); ok {
		sum.PrevClose = prev.Close
	}
	return sum, true
}

// Change returns the absolute move versus the previous close.
func (p PriceSummary) Change() float64 {
	if p.PrevClose == 0 {
		return 0
	}
	return p.Latest - p.PrevClose
}

// DayReturn returns the move versus the previous close as a percentage.
func (p PriceSummary) DayReturn() Percent {
	if p.PrevClose == 0 {
		return 0
	}
	return AsPercent((p.Latest - p.PrevClose) / p.PrevClose)
}

// DayRange renders the session's low-high span.
func (p PriceSummary) DayRange() string {
	return fmt.Sprintf("%.2f - %.2f", p.DayLow, p.DayHigh)
}

// FormatLargeNumber abbreviates a value with K/M/B/T suffixes and two
// decimals: 1234 -> "1.23K", 2.41e9 -> "2.41B".
func FormatLargeNumber(v float64) string {
	abs := math.Abs(v)
	switch {
	case abs >= 1e12:
		return fmt.Sprintf("%.2fT", v/1e12)
	case abs >= 1e9:
		return fmt.Sprintf("%.2fB", v/1e9)
	case abs >= 1e6:
		return fmt.Sprintf("%.2fM", v/1e6)
	case abs >= 1e3:
		return fmt.Sprintf("%.2fK", v/1e3)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}

// ParseLargeNumber reads an abbreviated value back into a float:
// "1.23K" -> 1230, "26.54T" -> 2.654e13. Thousands separators are
// tolerated.
func ParseLargeNumber(s string) (float64, error) {
	trimmed := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if trimmed == "" || trimmed == "-" || trimmed == "--" {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	mult := 1.0
	switch trimmed[len(trimmed)-1] {
	case 'K', 'k':
		mult, trimmed = 1e3, trimmed[:len(trimmed)-1]
	case 'M':
		mult, trimmed = 1e6, trimmed[:len(trimmed)-1]
	case 'B':
		mult, trimmed = 1e9, trimmed[:len(trimmed)-1]
	case 'T':
		mult, trimmed = 1e12, trimmed[:len(trimmed)-1]
	}
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return v * mult, nil
}

package stalker

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/stalking-stocks/stalker/timeseries"
)

// This file contains functions to exchange bar histories with the rest
// of the world. CSV is the lingua franca of price data: it is what
// vendors hand out and what spreadsheets ingest.

var csvHeader = []string{"Date", "Open", "High", "Low", "Close", "Adj Close", "Volume"}

// ImportCSV reads daily bars for a symbol from a CSV stream.
//
// The first row must be a header containing at least Date, Open, High,
// Low and Close, in any order and case. Adj Close and Volume are
// optional; a missing Adj Close defaults to Close. Rows may come in any
// date order.
func ImportCSV(r io.Reader, symbol Symbol) (*Series, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read CSV header: %w", err)
	}
	col := make(map[string]int)
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, required := range []string{"date", "open", "high", "low", "close"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("CSV header is missing column %q", required)
		}
	}
	adjCol, hasAdj := col["adj close"]
	if !hasAdj {
		adjCol, hasAdj = col["adjclose"]
	}
	volCol, hasVol := col["volume"]

	series := NewSeries(symbol, Interval1d)
	for line := 2; ; line++ {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read CSV line %d: %w", line, err)
		}

		day, err := timeseries.ParseDate(record[col["date"]])
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		b := Bar{Time: day.Time()}
		if b.Open, err = parsePrice(record[col["open"]]); err != nil {
			return nil, fmt.Errorf("line %d: open: %w", line, err)
		}
		if b.High, err = parsePrice(record[col["high"]]); err != nil {
			return nil, fmt.Errorf("line %d: high: %w", line, err)
		}
		if b.Low, err = parsePrice(record[col["low"]]); err != nil {
			return nil, fmt.Errorf("line %d: low: %w", line, err)
		}
		if b.Close, err = parsePrice(record[col["close"]]); err != nil {
			return nil, fmt.Errorf("line %d: close: %w", line, err)
		}
		b.AdjClose = b.Close
		if hasAdj && strings.TrimSpace(record[adjCol]) != "" {
			if b.AdjClose, err = parsePrice(record[adjCol]); err != nil {
				return nil, fmt.Errorf("line %d: adj close: %w", line, err)
			}
		}
		if hasVol && strings.TrimSpace(record[volCol]) != "" {
			if b.Volume, err = strconv.ParseInt(strings.TrimSpace(record[volCol]), 10, 64); err != nil {
				return nil, fmt.Errorf("line %d: volume: %w", line, err)
			}
		}
		series.Append(b)
	}
	return series, nil
}

func parsePrice(s string) (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

// ExportCSV writes the series as CSV, one bar per row, oldest first.
// The format round-trips through ImportCSV.
func ExportCSV(w io.Writer, series *Series) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}
	for _, b := range series.Bars {
		record := []string{
			b.Date().String(),
			formatPrice(b.Open),
			formatPrice(b.High),
			formatPrice(b.Low),
			formatPrice(b.Close),
			formatPrice(b.AdjClose),
			strconv.FormatInt(b.Volume, 10),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("cannot write CSV row for %s: %w", b.Date(), err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

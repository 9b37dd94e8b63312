package yahoo

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/stalking-stocks/stalker"
	"github.com/stalking-stocks/stalker/timeseries"
)

// chartResponse is the v8 chart payload.
//
//	{ "chart": { "result": [ {
//	    "meta": { "currency": "USD", "symbol": "AAPL",
//	              "exchangeTimezoneName": "America/New_York", ... },
//	    "timestamp": [ 1724246400, ... ],
//	    "indicators": {
//	      "quote": [ { "open": [...], "high": [...], "low": [...],
//	                   "close": [...], "volume": [...] } ],
//	      "adjclose": [ { "adjclose": [...] } ] } } ],
//	  "error": null } }
//
// On an unknown symbol, "result" is null and "error" carries
// {"code":"Not Found","description":"No data found, symbol may be delisted"}.
type chartResponse struct {
	Chart struct {
		Result []chartResult `json:"result"`
		Error  *apiError     `json:"error"`
	} `json:"chart"`
}

type chartResult struct {
	Meta struct {
		Currency             string `json:"currency"`
		Symbol               string `json:"symbol"`
		ExchangeTimezoneName string `json:"exchangeTimezoneName"`
	} `json:"meta"`
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []struct {
			Open   []*float64 `json:"open"`
			High   []*float64 `json:"high"`
			Low    []*float64 `json:"low"`
			Close  []*float64 `json:"close"`
			Volume []*int64   `json:"volume"`
		} `json:"quote"`
		AdjClose []struct {
			AdjClose []*float64 `json:"adjclose"`
		} `json:"adjclose"`
	} `json:"indicators"`
}

// Bars fetches the symbol's bars over a horizon. An empty interval means
// the horizon's default.
func (c *Client) Bars(ctx context.Context, symbol stalker.Symbol, horizon stalker.Horizon, interval stalker.Interval) (*stalker.Series, error) {
	if interval == "" {
		interval = horizon.DefaultInterval()
	}
	if err := horizon.Validate(interval); err != nil {
		return nil, err
	}
	q := url.Values{}
	q.Set("range", horizon.String())
	q.Set("interval", interval.String())
	return c.chart(ctx, symbol, interval, q)
}

// BarsBetween fetches daily bars between two dates, inclusive.
func (c *Client) BarsBetween(ctx context.Context, symbol stalker.Symbol, from, to timeseries.Date) (*stalker.Series, error) {
	q := url.Values{}
	q.Set("period1", strconv.FormatInt(from.Time().Unix(), 10))
	// period2 is exclusive, push it past the last requested day.
	q.Set("period2", strconv.FormatInt(to.Add(1).Time().Unix(), 10))
	q.Set("interval", stalker.Interval1d.String())
	return c.chart(ctx, symbol, stalker.Interval1d, q)
}

func (c *Client) chart(ctx context.Context, symbol stalker.Symbol, interval stalker.Interval, q url.Values) (*stalker.Series, error) {
	q.Set("events", "div,split")
	addr := fmt.Sprintf("%s/v8/finance/chart/%s?%s", c.QueryURL, url.PathEscape(string(symbol)), q.Encode())

	var payload chartResponse
	if err := c.getJSON(ctx, addr, &payload); err != nil {
		return nil, err
	}
	if apiErr := payload.Chart.Error; apiErr != nil {
		if apiErr.notFound() {
			return nil, fmt.Errorf("%s: %w", symbol, stalker.ErrNotFound)
		}
		return nil, fmt.Errorf("chart %s: %w", symbol, apiErr)
	}
	if len(payload.Chart.Result) == 0 {
		return nil, fmt.Errorf("%s: %w", symbol, stalker.ErrNotFound)
	}

	res := payload.Chart.Result[0]
	series := stalker.NewSeries(symbol, interval)
	series.Currency = res.Meta.Currency

	// Daily candles are stamped at the exchange's market open; resolve
	// them to a calendar day in the exchange's own timezone.
	loc := time.UTC
	if res.Meta.ExchangeTimezoneName != "" {
		if l, err := time.LoadLocation(res.Meta.ExchangeTimezoneName); err == nil {
			loc = l
		}
	}

	if len(res.Indicators.Quote) == 0 {
		return series, nil
	}
	quote := res.Indicators.Quote[0]
	var adj []*float64
	if len(res.Indicators.AdjClose) > 0 {
		adj = res.Indicators.AdjClose[0].AdjClose
	}

	for i, ts := range res.Timestamp {
		if i >= len(quote.Open) || i >= len(quote.High) || i >= len(quote.Low) || i >= len(quote.Close) {
			break
		}
		// Halted or not-yet-traded slots come through as null rows.
		if quote.Open[i] == nil || quote.High[i] == nil || quote.Low[i] == nil || quote.Close[i] == nil {
			continue
		}
		t := time.Unix(ts, 0).In(loc)
		if interval.Intraday() {
			t = t.UTC()
		} else {
			t = timeseries.DateOf(t).Time()
		}
		b := stalker.Bar{
			Time:  t,
			Open:  *quote.Open[i],
			High:  *quote.High[i],
			Low:   *quote.Low[i],
			Close: *quote.Close[i],
		}
		b.AdjClose = b.Close
		if i < len(adj) && adj[i] != nil {
			b.AdjClose = *adj[i]
		}
		if i < len(quote.Volume) && quote.Volume[i] != nil {
			b.Volume = *quote.Volume[i]
		}
		series.Append(b)
	}
	return series, nil
}

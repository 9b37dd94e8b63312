// Package stooq fetches daily bar histories from stooq.com, a free CSV
// endpoint that needs no API key. It is the fallback source for
// backfilling a store when the primary chart API is unreachable, and
// responses go through the shared daily disk cache like every other
// provider.
package stooq

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/stalking-stocks/stalker"
	"github.com/stalking-stocks/stalker/timeseries"
)

const defaultBaseURL = "https://stooq.com"

// Client fetches daily histories from stooq.
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New returns a client backed by the shared daily cache.
func New() *Client {
	return &Client{
		BaseURL: defaultBaseURL,
		HTTP:    stalker.NewDailyClient(),
	}
}

var _ stalker.BarRangeProvider = (*Client)(nil)

// BarsBetween fetches the daily bars of [from, to], both inclusive.
func (c *Client) BarsBetween(ctx context.Context, symbol stalker.Symbol, from, to timeseries.Date) (*stalker.Series, error) {
	sym := StooqSymbol(symbol)
	q := url.Values{}
	q.Set("s", sym)
	q.Set("d1", from.Format("20060102"))
	q.Set("d2", to.Format("20060102"))
	q.Set("i", "d")
	addr := fmt.Sprintf("%s/q/d/l/?%s", c.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	series, err := parseDaily(body, symbol)
	if err != nil {
		return nil, fmt.Errorf("fetching %s from stooq: %w", sym, err)
	}
	return series, nil
}

// parseDaily turns a response body into a series. The body carries the
// plain `Date,Open,High,Low,Close,Volume` header, so the CSV importer
// does the parsing; problems come back as short plain-text bodies
// rather than HTTP errors.
func parseDaily(body []byte, symbol stalker.Symbol) (*stalker.Series, error) {
	switch {
	case bytes.HasPrefix(body, []byte("No data")):
		return nil, stalker.ErrNotFound
	case bytes.HasPrefix(body, []byte("Exceeded")):
		return nil, fmt.Errorf("daily request limit reached")
	}
	series, err := stalker.ImportCSV(bytes.NewReader(body), symbol)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(StooqSymbol(symbol), ".us") {
		series.Currency = "USD"
	}
	return series, nil
}

// StooqSymbol maps a symbol to stooq's spelling: lowercase, and a ".us"
// market suffix when the symbol does not already carry one.
func StooqSymbol(symbol stalker.Symbol) string {
	s := strings.ToLower(string(symbol))
	if !strings.Contains(s, ".") {
		s += ".us"
	}
	return s
}

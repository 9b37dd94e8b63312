// Package yahoo fetches market data from the public Yahoo Finance
// endpoints: chart bars, batch quotes, company profiles, the sector and
// industry pages, and the predefined screeners.
//
// None of these endpoints need an API key, but they all reject Go's
// default User-Agent, so requests go through the root package's caching
// client which presents a browser one and keeps responses on disk for
// the day.
package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/PuerkitoBio/goquery"
	"github.com/stalking-stocks/stalker"
)

const (
	defaultQueryURL  = "https://query1.finance.yahoo.com"
	defaultScrapeURL = "https://finance.yahoo.com"
)

// Client talks to Yahoo Finance.
type Client struct {
	// QueryURL serves the JSON API, ScrapeURL the HTML pages. Tests point
	// them at a local server.
	QueryURL  string
	ScrapeURL string
	// HTTP carries every request.
	HTTP *http.Client
}

// New returns a client hitting the public endpoints through a
// day-caching HTTP client.
func New() *Client {
	return &Client{
		QueryURL:  defaultQueryURL,
		ScrapeURL: defaultScrapeURL,
		HTTP:      stalker.NewDailyClient(),
	}
}

var _ stalker.MarketProvider = (*Client)(nil)

// apiError is the error object every Yahoo JSON endpoint shares.
type apiError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

func (e *apiError) Error() string {
	if e.Description != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Description)
	}
	return e.Code
}

// notFound reports whether the API error means the symbol does not exist.
func (e *apiError) notFound() bool { return e.Code == "Not Found" }

// getJSON GETs addr and decodes the body into data. Yahoo serves its
// structured errors with 4xx statuses, so the body is decoded first and
// the status only reported when the body is not the expected JSON.
func (c *Client) getJSON(ctx context.Context, addr string, data any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if jsonErr := json.Unmarshal(body, data); jsonErr != nil {
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("cannot http GET %v/%v: %v", req.URL.Host, req.URL.Path, resp.Status)
		}
		return jsonErr
	}
	return nil
}

// getHTML GETs addr and parses the body as an HTML document.
func (c *Client) getHTML(ctx context.Context, addr string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return nil, stalker.ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("cannot http GET %v/%v: %v", req.URL.Host, req.URL.Path, resp.Status)
	}
	return goquery.NewDocumentFromReader(resp.Body)
}

package yahoo

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/stalking-stocks/stalker"
)

// quoteResponse is the v7 quote payload.
//
//	{ "quoteResponse": { "result": [ {
//	    "symbol": "AAPL", "shortName": "Apple Inc.", "longName": "Apple Inc.",
//	    "currency": "USD",
//	    "regularMarketPrice": 226.05, "regularMarketChange": 1.52,
//	    "regularMarketChangePercent": 0.677,
//	    "regularMarketOpen": 224.70, "regularMarketDayLow": 224.33,
//	    "regularMarketDayHigh": 227.89, "regularMarketPreviousClose": 224.53,
//	    "regularMarketVolume": 38677250, "marketCap": 3437831258112 } ],
//	  "error": null } }
//
// Unknown symbols are simply absent from "result".
type quoteResponse struct {
	QuoteResponse struct {
		Result []apiQuote `json:"result"`
		Error  *apiError  `json:"error"`
	} `json:"quoteResponse"`
}

type apiQuote struct {
	Symbol                     string  `json:"symbol"`
	ShortName                  string  `json:"shortName"`
	LongName                   string  `json:"longName"`
	Currency                   string  `json:"currency"`
	RegularMarketPrice         float64 `json:"regularMarketPrice"`
	RegularMarketChange        float64 `json:"regularMarketChange"`
	RegularMarketChangePercent float64 `json:"regularMarketChangePercent"`
	RegularMarketOpen          float64 `json:"regularMarketOpen"`
	RegularMarketDayLow        float64 `json:"regularMarketDayLow"`
	RegularMarketDayHigh       float64 `json:"regularMarketDayHigh"`
	RegularMarketPreviousClose float64 `json:"regularMarketPreviousClose"`
	RegularMarketVolume        int64   `json:"regularMarketVolume"`
	MarketCap                  float64 `json:"marketCap"`
}

// Quote fetches real-time quotes for a batch of symbols in one request.
// Symbols Yahoo does not know are silently absent from the result.
func (c *Client) Quote(ctx context.Context, symbols ...stalker.Symbol) ([]stalker.Quote, error) {
	if len(symbols) == 0 {
		return nil, nil
	}
	list := make([]string, 0, len(symbols))
	for _, s := range symbols {
		list = append(list, string(s))
	}
	q := url.Values{}
	q.Set("symbols", strings.Join(list, ","))
	addr := fmt.Sprintf("%s/v7/finance/quote?%s", c.QueryURL, q.Encode())

	var payload quoteResponse
	if err := c.getJSON(ctx, addr, &payload); err != nil {
		return nil, err
	}
	if apiErr := payload.QuoteResponse.Error; apiErr != nil {
		return nil, fmt.Errorf("quote %s: %w", strings.Join(list, ","), apiErr)
	}

	quotes := make([]stalker.Quote, 0, len(payload.QuoteResponse.Result))
	for _, r := range payload.QuoteResponse.Result {
		symbol, err := stalker.ParseSymbol(r.Symbol)
		if err != nil {
			continue
		}
		quotes = append(quotes, stalker.Quote{
			Symbol:        symbol,
			ShortName:     r.ShortName,
			LongName:      r.LongName,
			Currency:      r.Currency,
			Price:         r.RegularMarketPrice,
			Change:        r.RegularMarketChange,
			ChangePercent: stalker.Percent(r.RegularMarketChangePercent),
			Open:          r.RegularMarketOpen,
			DayLow:        r.RegularMarketDayLow,
			DayHigh:       r.RegularMarketDayHigh,
			PrevClose:     r.RegularMarketPreviousClose,
			Volume:        r.RegularMarketVolume,
			MarketCap:     r.MarketCap,
		})
	}
	return quotes, nil
}

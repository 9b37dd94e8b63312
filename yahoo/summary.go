package yahoo

import (
	"context"
	"fmt"
	"net/url"

	"github.com/PaesslerAG/jsonpath"
	"github.com/stalking-stocks/stalker"
)

// The v10 quoteSummary payload nests every numeric field in a
// {"raw": 1.23, "fmt": "1.23"} wrapper:
//
//	{ "quoteSummary": { "result": [ {
//	    "assetProfile": { "sector": "Technology",
//	      "industry": "Consumer Electronics",
//	      "longBusinessSummary": "Apple Inc. designs...",
//	      "fullTimeEmployees": 161000,
//	      "website": "https://www.apple.com" },
//	    "summaryDetail": { "marketCap": {"raw": 3437831258112},
//	      "dividendRate": {"raw": 1.0}, "dividendYield": {"raw": 0.0044},
//	      "volume": {"raw": 38677250}, "averageVolume": {"raw": 64885241},
//	      "fiftyTwoWeekLow": {"raw": 164.08},
//	      "fiftyTwoWeekHigh": {"raw": 237.23} },
//	    "price": { "shortName": "Apple Inc.", "longName": "Apple Inc.",
//	      "currency": "USD", "regularMarketPrice": {"raw": 226.05} } } ],
//	  "error": null } }
//
// Rather than mirror that shape in structs, the handful of fields the
// profile needs are plucked with JSONPath expressions.

// Profile fetches the company profile of a symbol.
func (c *Client) Profile(ctx context.Context, symbol stalker.Symbol) (*stalker.TickerInfo, error) {
	q := url.Values{}
	q.Set("modules", "assetProfile,summaryDetail,price")
	addr := fmt.Sprintf("%s/v10/finance/quoteSummary/%s?%s", c.QueryURL, url.PathEscape(string(symbol)), q.Encode())

	var doc any
	if err := c.getJSON(ctx, addr, &doc); err != nil {
		return nil, err
	}
	if code := pluckString(doc, "$.quoteSummary.error.code"); code != "" {
		if code == "Not Found" {
			return nil, fmt.Errorf("%s: %w", symbol, stalker.ErrNotFound)
		}
		return nil, fmt.Errorf("profile %s: %s: %s", symbol, code, pluckString(doc, "$.quoteSummary.error.description"))
	}
	if _, err := jsonpath.Get("$.quoteSummary.result[0]", doc); err != nil {
		return nil, fmt.Errorf("%s: %w", symbol, stalker.ErrNotFound)
	}

	currency := pluckString(doc, "$.quoteSummary.result[0].price.currency")
	info := &stalker.TickerInfo{
		Symbol:          symbol,
		ShortName:       pluckString(doc, "$.quoteSummary.result[0].price.shortName"),
		LongName:        pluckString(doc, "$.quoteSummary.result[0].price.longName"),
		Currency:        currency,
		Sector:          pluckString(doc, "$.quoteSummary.result[0].assetProfile.sector"),
		Industry:        pluckString(doc, "$.quoteSummary.result[0].assetProfile.industry"),
		Summary:         pluckString(doc, "$.quoteSummary.result[0].assetProfile.longBusinessSummary"),
		Employees:       int64(pluckFloat(doc, "$.quoteSummary.result[0].assetProfile.fullTimeEmployees")),
		CurrentPrice:    pluckFloat(doc, "$.quoteSummary.result[0].price.regularMarketPrice.raw"),
		DividendRate:    pluckFloat(doc, "$.quoteSummary.result[0].summaryDetail.dividendRate.raw"),
		DividendYield:   stalker.AsPercent(pluckFloat(doc, "$.quoteSummary.result[0].summaryDetail.dividendYield.raw")),
		Volume:          int64(pluckFloat(doc, "$.quoteSummary.result[0].summaryDetail.volume.raw")),
		AverageVolume:   int64(pluckFloat(doc, "$.quoteSummary.result[0].summaryDetail.averageVolume.raw")),
		FiftyTwoWeekLow: pluckFloat(doc, "$.quoteSummary.result[0].summaryDetail.fiftyTwoWeekLow.raw"),
		FiftyTwoWeekHi:  pluckFloat(doc, "$.quoteSummary.result[0].summaryDetail.fiftyTwoWeekHigh.raw"),
		Website:         pluckString(doc, "$.quoteSummary.result[0].assetProfile.website"),
	}
	if mcap := pluckFloat(doc, "$.quoteSummary.result[0].summaryDetail.marketCap.raw"); mcap > 0 && currency != "" {
		info.MarketCap = stalker.M(mcap, currency)
	}
	return info, nil
}

// pluck evaluates a JSONPath expression, nil when the path does not
// resolve.
func pluck(doc any, path string) any {
	v, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil
	}
	return v
}

func pluckString(doc any, path string) string {
	s, _ := pluck(doc, path).(string)
	return s
}

func pluckFloat(doc any, path string) float64 {
	f, _ := pluck(doc, path).(float64)
	return f
}

package yahoo

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/stalking-stocks/stalker"
)

// screenerResponse is the predefined screener payload.
//
//	{ "finance": { "result": [ { "count": 5, "quotes": [ {
//	    "symbol": "OPEN", "shortName": "Opendoor Technologies Inc",
//	    "regularMarketPrice": 2.54, "regularMarketChangePercent": 34.92,
//	    "regularMarketVolume": 232847194, "marketCap": 1858039680 } ] } ],
//	  "error": null } }
type screenerResponse struct {
	Finance struct {
		Result []struct {
			Quotes []apiQuote `json:"quotes"`
		} `json:"result"`
		Error *apiError `json:"error"`
	} `json:"finance"`
}

// DayGainers fetches the day's biggest gainers from the predefined
// day_gainers screener, at most count of them.
func (c *Client) DayGainers(ctx context.Context, count int) ([]stalker.Mover, error) {
	if count <= 0 {
		count = 5
	}
	q := url.Values{}
	q.Set("scrIds", "day_gainers")
	q.Set("count", strconv.Itoa(count))
	q.Set("formatted", "false")
	addr := fmt.Sprintf("%s/v1/finance/screener/predefined/saved?%s", c.QueryURL, q.Encode())

	var payload screenerResponse
	if err := c.getJSON(ctx, addr, &payload); err != nil {
		return nil, err
	}
	if apiErr := payload.Finance.Error; apiErr != nil {
		return nil, fmt.Errorf("day gainers: %w", apiErr)
	}
	if len(payload.Finance.Result) == 0 {
		return nil, nil
	}

	var movers []stalker.Mover
	for _, r := range payload.Finance.Result[0].Quotes {
		symbol, err := stalker.ParseSymbol(r.Symbol)
		if err != nil {
			continue
		}
		name := r.LongName
		if name == "" {
			name = r.ShortName
		}
		movers = append(movers, stalker.Mover{
			Symbol:        symbol,
			Name:          name,
			Price:         r.RegularMarketPrice,
			ChangePercent: stalker.Percent(r.RegularMarketChangePercent),
			Volume:        r.RegularMarketVolume,
			MarketCap:     r.MarketCap,
		})
		if len(movers) == count {
			break
		}
	}
	return movers, nil
}

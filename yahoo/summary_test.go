package yahoo

import (
	"context"
	"errors"
	"testing"

	"github.com/stalking-stocks/stalker"
)

const summaryJSON = `{"quoteSummary":{"result":[{
  "assetProfile":{"sector":"Technology","industry":"Consumer Electronics",
    "longBusinessSummary":"Apple Inc. designs, manufactures and markets smartphones.",
    "fullTimeEmployees":161000,"website":"https://www.apple.com"},
  "summaryDetail":{"marketCap":{"raw":3437831258112,"fmt":"3.44T"},
    "dividendRate":{"raw":1.0,"fmt":"1.00"},"dividendYield":{"raw":0.0044,"fmt":"0.44%"},
    "volume":{"raw":38677250,"fmt":"38.68M"},"averageVolume":{"raw":64885241,"fmt":"64.89M"},
    "fiftyTwoWeekLow":{"raw":164.08,"fmt":"164.08"},"fiftyTwoWeekHigh":{"raw":237.23,"fmt":"237.23"}},
  "price":{"shortName":"Apple Inc.","longName":"Apple Inc.","currency":"USD",
    "regularMarketPrice":{"raw":226.05,"fmt":"226.05"}}}],
 "error":null}}`

const summaryNotFoundJSON = `{"quoteSummary":{"result":null,
 "error":{"code":"Not Found","description":"Quote not found for ticker symbol: NOSUCH"}}}`

func TestProfile(t *testing.T) {
	c, req := chartServer(t, summaryJSON)

	info, err := c.Profile(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("Profile() unexpected error = %v", err)
	}
	if req.URL.Path != "/v10/finance/quoteSummary/AAPL" {
		t.Errorf("Profile() path = %q, want the quoteSummary endpoint", req.URL.Path)
	}
	if got := req.URL.Query().Get("modules"); got != "assetProfile,summaryDetail,price" {
		t.Errorf("Profile() modules = %q, want the three profile modules", got)
	}

	if info.LongName != "Apple Inc." || info.Currency != "USD" {
		t.Errorf("profile = %s in %s, want Apple Inc. in USD", info.LongName, info.Currency)
	}
	if info.Sector != "Technology" || info.Industry != "Consumer Electronics" {
		t.Errorf("taxonomy = %s/%s, want Technology/Consumer Electronics", info.Sector, info.Industry)
	}
	if info.SectorKey() != "technology" || info.IndustryKey() != "consumer-electronics" {
		t.Errorf("taxonomy keys = %s/%s, misformatted", info.SectorKey(), info.IndustryKey())
	}
	if info.Employees != 161000 {
		t.Errorf("Employees = %d, want 161000", info.Employees)
	}
	if info.CurrentPrice != 226.05 || info.FiftyTwoWeekLow != 164.08 || info.FiftyTwoWeekHi != 237.23 {
		t.Errorf("prices = %v/%v/%v, lost the raw values", info.CurrentPrice, info.FiftyTwoWeekLow, info.FiftyTwoWeekHi)
	}
	if !info.DividendYield.Equal(0.44) {
		t.Errorf("DividendYield = %v, want 0.44%%", info.DividendYield)
	}
	if !info.MarketCap.Equal(stalker.M(3437831258112.0, "USD")) {
		t.Errorf("MarketCap = %v, want $3.44T", info.MarketCap)
	}
	if info.Volume != 38677250 || info.AverageVolume != 64885241 {
		t.Errorf("volumes = %d/%d, lost the raw values", info.Volume, info.AverageVolume)
	}
}

func TestProfileNotFound(t *testing.T) {
	c, _ := chartServer(t, summaryNotFoundJSON)

	_, err := c.Profile(context.Background(), "NOSUCH")
	if !errors.Is(err, stalker.ErrNotFound) {
		t.Errorf("Profile() error = %v, want ErrNotFound", err)
	}
}

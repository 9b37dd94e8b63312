package yahoo

import (
	"context"
	"errors"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stalking-stocks/stalker"
)

const sectorHTML = `<html><body>
<h1>Technology</h1>
<p>Companies in the technology sector develop and market devices, software and services.</p>
<div><span>Market Weight</span><span>29.81%</span></div>
<div><span>Companies</span><span>815</span></div>
<div><span>Market Cap</span><span>26.54T</span></div>
<div><span>Employees</span><span>9.2M</span></div>
<table>
<thead><tr><th>Industry</th><th>Market Weight</th></tr></thead>
<tbody>
<tr><td><a href="/sectors/technology/semiconductors/">Semiconductors</a></td><td>29.04%</td></tr>
<tr><td><a href="/sectors/technology/consumer-electronics/">Consumer Electronics</a></td><td>21.06%</td></tr>
</tbody>
</table>
<table>
<thead><tr><th>Symbol</th><th>Name</th><th>Last Price</th><th>Change %</th><th>Market Weight</th></tr></thead>
<tbody>
<tr><td>NVDA NVIDIA Corporation</td><td>NVIDIA Corporation</td><td>175.51</td><td>+1.72%</td><td>16.38%</td></tr>
<tr><td>MSFT Microsoft Corporation</td><td>Microsoft Corporation</td><td>507.23</td><td>-0.31%</td><td>14.19%</td></tr>
</tbody>
</table>
</body></html>`

const industryHTML = `<html><body>
<h1>Semiconductors</h1>
<div><span>Market Weight</span><span>29.04%</span></div>
<div><span>Day Return</span><span>+1.21%</span></div>
<div><span>Companies</span><span>62</span></div>
<div><span>Market Cap</span><span>7.70T</span></div>
<table>
<thead><tr><th>Symbol</th><th>Name</th><th>Last Price</th><th>Change %</th></tr></thead>
<tbody>
<tr><td>NVDA</td><td>NVIDIA Corporation</td><td>175.51</td><td>+1.72%</td></tr>
<tr><td>AVGO</td><td>Broadcom Inc.</td><td>298.67</td><td>+0.95%</td></tr>
<tr><td>TSM</td><td>Taiwan Semiconductor</td><td>240.32</td><td>+0.61%</td></tr>
<tr><td>AMD</td><td>Advanced Micro Devices, Inc.</td><td>177.13</td><td>-0.27%</td></tr>
<tr><td>TXN</td><td>Texas Instruments Incorporated</td><td>194.84</td><td>+0.12%</td></tr>
<tr><td>QCOM</td><td>QUALCOMM Incorporated</td><td>158.29</td><td>+0.40%</td></tr>
</tbody>
</table>
</body></html>`

func TestSector(t *testing.T) {
	c, req := chartServer(t, sectorHTML)

	o, err := c.Sector(context.Background(), stalker.Technology)
	if err != nil {
		t.Fatalf("Sector() unexpected error = %v", err)
	}
	if req.URL.Path != "/sectors/technology/" {
		t.Errorf("Sector() path = %q, want the sector page", req.URL.Path)
	}

	if o.Name != "Technology" {
		t.Errorf("Name = %q, want Technology", o.Name)
	}
	if o.Description == "" {
		t.Errorf("Description is empty, want the lead paragraph")
	}
	if o.Companies != 815 {
		t.Errorf("Companies = %d, want 815", o.Companies)
	}
	if !o.MarketWeight.Equal(29.81) {
		t.Errorf("MarketWeight = %v, want 29.81%%", o.MarketWeight)
	}
	if o.Employees != 9_200_000 {
		t.Errorf("Employees = %d, want 9.2M", o.Employees)
	}
	if got := o.MarketCap.AsFloat(); math.Abs(got/2.654e13-1) > 1e-9 {
		t.Errorf("MarketCap = %v, want 26.54T", got)
	}

	if o.IndustriesCount() != 2 {
		t.Fatalf("IndustriesCount() = %d, want 2", o.IndustriesCount())
	}
	semis := o.Industries[0]
	if semis.Name != "Semiconductors" || semis.Key != "semiconductors" {
		t.Errorf("Industries[0] = %s/%s, want Semiconductors keyed from its link", semis.Name, semis.Key)
	}
	if !semis.MarketWeight.Equal(29.04) {
		t.Errorf("Industries[0].MarketWeight = %v, want 29.04%%", semis.MarketWeight)
	}

	if len(o.TopCompanies) != 2 {
		t.Fatalf("TopCompanies = %d rows, want 2", len(o.TopCompanies))
	}
	nvda := o.TopCompanies[0]
	if nvda.Symbol != "NVDA" || nvda.Name != "NVIDIA Corporation" {
		t.Errorf("TopCompanies[0] = %s/%s, want NVDA", nvda.Symbol, nvda.Name)
	}
	if nvda.LastPrice != 175.51 || !nvda.DayChange.Equal(1.72) || !nvda.Weight.Equal(16.38) {
		t.Errorf("TopCompanies[0] = %+v, lost columns", nvda)
	}
}

func TestIndustry(t *testing.T) {
	c, req := chartServer(t, industryHTML)

	// a display name is keyed before the request
	o, err := c.Industry(context.Background(), stalker.Technology, "Semiconductors")
	if err != nil {
		t.Fatalf("Industry() unexpected error = %v", err)
	}
	if req.URL.Path != "/sectors/technology/semiconductors/" {
		t.Errorf("Industry() path = %q, want the industry page", req.URL.Path)
	}

	if o.Name != "Semiconductors" || o.Sector != stalker.Technology || o.Key != "semiconductors" {
		t.Errorf("overview = %s in %s keyed %s, misplaced", o.Name, o.Sector, o.Key)
	}
	if !o.DayChange.Equal(1.21) {
		t.Errorf("DayChange = %v, want 1.21%%", o.DayChange)
	}
	if o.Companies != 62 {
		t.Errorf("Companies = %d, want 62", o.Companies)
	}
	// the performers table is capped at five rows
	if len(o.TopPerformers) != 5 {
		t.Fatalf("TopPerformers = %d rows, want 5", len(o.TopPerformers))
	}
	if o.TopPerformers[0].Symbol != "NVDA" || o.TopPerformers[4].Symbol != "TXN" {
		t.Errorf("TopPerformers = %v, rows out of order or miscapped", o.TopPerformers)
	}
}

func TestSectorNotFound(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	c := &Client{ScrapeURL: srv.URL, HTTP: srv.Client()}
	_, err := c.Sector(context.Background(), "technology")
	if !errors.Is(err, stalker.ErrNotFound) {
		t.Errorf("Sector() error = %v, want ErrNotFound", err)
	}
}

func TestSectorEmptyPage(t *testing.T) {
	c, _ := chartServer(t, "<html><body></body></html>")

	_, err := c.Sector(context.Background(), "technology")
	if !errors.Is(err, stalker.ErrNotFound) {
		t.Errorf("Sector() error = %v on a page with no title, want ErrNotFound", err)
	}
}

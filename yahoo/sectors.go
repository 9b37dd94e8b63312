package yahoo

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/stalking-stocks/stalker"
)

// The sector and industry pages are plain HTML. The scraper keys on
// structure, not styling: the title is the first <h1>, the header stats
// are label/value pairs, and the tables are recognized by their column
// headers. The relevant skeleton of a sector page:
//
//	<h1>Technology</h1>
//	<p>Companies in the technology sector develop...</p>
//	<div><span>Market Weight</span><span>29.81%</span></div>
//	<div><span>Companies</span><span>815</span></div>
//	<div><span>Market Cap</span><span>26.54T</span></div>
//	<div><span>Employees</span><span>9.2M</span></div>
//	<table><thead><tr><th>Industry</th><th>Market Weight</th></tr></thead>...</table>
//	<table><thead><tr><th>Symbol</th><th>Name</th><th>Last Price</th>
//	       <th>Change %</th><th>Market Weight</th></tr></thead>...</table>
//
// An industry page has the same skeleton, with a Day Return stat and the
// company tables only.

// Sector fetches and parses one sector page.
func (c *Client) Sector(ctx context.Context, key stalker.SectorKey) (*stalker.SectorOverview, error) {
	doc, err := c.getHTML(ctx, fmt.Sprintf("%s/sectors/%s/", c.ScrapeURL, key))
	if err != nil {
		return nil, fmt.Errorf("sector %s: %w", key, err)
	}
	return parseSector(doc, key)
}

// Industry fetches and parses one industry page. The industry may be
// given as a key or a display name.
func (c *Client) Industry(ctx context.Context, sector stalker.SectorKey, industry string) (*stalker.IndustryOverview, error) {
	key := stalker.KeyOf(industry)
	doc, err := c.getHTML(ctx, fmt.Sprintf("%s/sectors/%s/%s/", c.ScrapeURL, sector, key))
	if err != nil {
		return nil, fmt.Errorf("industry %s/%s: %w", sector, key, err)
	}
	return parseIndustry(doc, sector, key)
}

func parseSector(doc *goquery.Document, key stalker.SectorKey) (*stalker.SectorOverview, error) {
	name := cleanText(doc.Find("h1").First().Text())
	if name == "" {
		return nil, fmt.Errorf("sector %s: %w", key, stalker.ErrNotFound)
	}
	o := &stalker.SectorOverview{Key: key, Name: name}
	o.Description = cleanText(doc.Find("p").First().Text())

	stats := scrapeStats(doc)
	if v, ok := stats["Companies"]; ok {
		o.Companies, _ = strconv.Atoi(strings.ReplaceAll(v, ",", ""))
	}
	if v, ok := stats["Employees"]; ok {
		if n, err := stalker.ParseLargeNumber(v); err == nil {
			o.Employees = int64(n)
		}
	}
	if v, ok := stats["Market Cap"]; ok {
		if n, err := stalker.ParseLargeNumber(v); err == nil {
			o.MarketCap = stalker.M(n, "USD")
		}
	}
	if v, ok := stats["Market Weight"]; ok {
		if p, err := stalker.ParsePercent(v); err == nil {
			o.MarketWeight = p
		}
	}

	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		headers := tableHeaders(table)
		switch {
		case headerIndex(headers, "Industry") >= 0 && headerIndex(headers, "Market Weight") >= 0:
			if len(o.Industries) == 0 {
				o.Industries = industryRows(table, headers)
			}
		case headerIndex(headers, "Symbol") >= 0:
			if len(o.TopCompanies) == 0 {
				o.TopCompanies = companyRows(table, headers, 0)
			}
		}
	})
	return o, nil
}

func parseIndustry(doc *goquery.Document, sector stalker.SectorKey, key string) (*stalker.IndustryOverview, error) {
	name := cleanText(doc.Find("h1").First().Text())
	if name == "" {
		return nil, fmt.Errorf("industry %s/%s: %w", sector, key, stalker.ErrNotFound)
	}
	o := &stalker.IndustryOverview{Key: key, Name: name, Sector: sector}

	stats := scrapeStats(doc)
	if v, ok := stats["Companies"]; ok {
		o.Companies, _ = strconv.Atoi(strings.ReplaceAll(v, ",", ""))
	}
	if v, ok := stats["Employees"]; ok {
		if n, err := stalker.ParseLargeNumber(v); err == nil {
			o.Employees = int64(n)
		}
	}
	if v, ok := stats["Market Cap"]; ok {
		if n, err := stalker.ParseLargeNumber(v); err == nil {
			o.MarketCap = stalker.M(n, "USD")
		}
	}
	if v, ok := stats["Market Weight"]; ok {
		if p, err := stalker.ParsePercent(v); err == nil {
			o.MarketWeight = p
		}
	}
	if v, ok := stats["Day Return"]; ok {
		if p, err := stalker.ParsePercent(v); err == nil {
			o.DayChange = p
		}
	}

	doc.Find("table").Each(func(_ int, table *goquery.Selection) {
		headers := tableHeaders(table)
		if headerIndex(headers, "Symbol") >= 0 && len(o.TopPerformers) == 0 {
			o.TopPerformers = companyRows(table, headers, 5)
		}
	})
	return o, nil
}

// scrapeStats collects the label/value pairs of the page header: any
// element with exactly two inline children, the first naming the stat.
// The first occurrence of a label wins.
func scrapeStats(doc *goquery.Document) map[string]string {
	stats := make(map[string]string)
	doc.Find("div, li").Each(func(_ int, s *goquery.Selection) {
		children := s.ChildrenFiltered("span, div, dt, dd")
		if children.Length() != 2 {
			return
		}
		label := cleanText(children.Eq(0).Text())
		value := cleanText(children.Eq(1).Text())
		if label == "" || value == "" {
			return
		}
		if _, ok := stats[label]; !ok {
			stats[label] = value
		}
	})
	return stats
}

func tableHeaders(table *goquery.Selection) []string {
	var headers []string
	table.Find("thead th").Each(func(_ int, th *goquery.Selection) {
		headers = append(headers, cleanText(th.Text()))
	})
	return headers
}

// headerIndex finds the column whose header starts with name, -1 when
// absent.
func headerIndex(headers []string, name string) int {
	for i, h := range headers {
		if strings.HasPrefix(h, name) {
			return i
		}
	}
	return -1
}

func industryRows(table *goquery.Selection, headers []string) []stalker.IndustryWeight {
	nameCol := headerIndex(headers, "Industry")
	weightCol := headerIndex(headers, "Market Weight")

	var rows []stalker.IndustryWeight
	table.Find("tbody tr").Each(func(_ int, tr *goquery.Selection) {
		cells := tr.Find("td")
		if cells.Length() <= nameCol || cells.Length() <= weightCol {
			return
		}
		name := cleanText(cells.Eq(nameCol).Text())
		if name == "" {
			return
		}
		w := stalker.IndustryWeight{Name: name, Key: stalker.KeyOf(name)}
		if href, ok := cells.Eq(nameCol).Find("a").Attr("href"); ok {
			if k := lastPathSegment(href); k != "" {
				w.Key = k
			}
		}
		if p, err := stalker.ParsePercent(cells.Eq(weightCol).Text()); err == nil {
			w.MarketWeight = p
		}
		rows = append(rows, w)
	})
	return rows
}

// companyRows reads a Symbol-keyed table, at most limit rows when limit
// is positive.
func companyRows(table *goquery.Selection, headers []string, limit int) []stalker.CompanyRef {
	symbolCol := headerIndex(headers, "Symbol")
	nameCol := headerIndex(headers, "Name")
	priceCol := headerIndex(headers, "Last Price")
	if priceCol < 0 {
		priceCol = headerIndex(headers, "Price")
	}
	changeCol := headerIndex(headers, "Change %")
	if changeCol < 0 {
		changeCol = headerIndex(headers, "% Change")
	}
	weightCol := headerIndex(headers, "Market Weight")

	var rows []stalker.CompanyRef
	table.Find("tbody tr").EachWithBreak(func(_ int, tr *goquery.Selection) bool {
		cells := tr.Find("td")
		if cells.Length() <= symbolCol {
			return true
		}
		fields := strings.Fields(cells.Eq(symbolCol).Text())
		if len(fields) == 0 {
			return true
		}
		symbol, err := stalker.ParseSymbol(fields[0])
		if err != nil {
			return true
		}
		ref := stalker.CompanyRef{Symbol: symbol}
		if nameCol >= 0 && cells.Length() > nameCol {
			ref.Name = cleanText(cells.Eq(nameCol).Text())
		}
		if priceCol >= 0 && cells.Length() > priceCol {
			if v, err := stalker.ParseLargeNumber(cells.Eq(priceCol).Text()); err == nil {
				ref.LastPrice = v
			}
		}
		if changeCol >= 0 && cells.Length() > changeCol {
			if p, err := stalker.ParsePercent(cells.Eq(changeCol).Text()); err == nil {
				ref.DayChange = p
			}
		}
		if weightCol >= 0 && cells.Length() > weightCol {
			if p, err := stalker.ParsePercent(cells.Eq(weightCol).Text()); err == nil {
				ref.Weight = p
			}
		}
		rows = append(rows, ref)
		return limit <= 0 || len(rows) < limit
	})
	return rows
}

func lastPathSegment(href string) string {
	trimmed := strings.Trim(href, "/")
	if i := strings.LastIndex(trimmed, "/"); i >= 0 {
		trimmed = trimmed[i+1:]
	}
	return trimmed
}

// cleanText collapses runs of whitespace into single spaces.
func cleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

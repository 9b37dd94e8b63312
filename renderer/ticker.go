package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/stalking-stocks/stalker"
)

// Ticker renders the full dashboard block for one symbol.
func Ticker(r *stalker.TickerReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	tickerHeader(doc, r.Info)
	priceSection(doc, r.Price)

	doc.H2(fmt.Sprintf("Metrics over %s", r.Horizon.Name()))
	doc.Table(metricsTable(r.Metrics, r.Price.Currency))

	profileSection(doc, r.Info)
	return doc.String()
}

// Info renders the company card for one symbol: price and profile,
// without the horizon metrics.
func Info(info *stalker.TickerInfo, p stalker.PriceSummary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	tickerHeader(doc, info)
	priceSection(doc, p)
	profileSection(doc, info)
	return doc.String()
}

func tickerHeader(doc *md.Markdown, info *stalker.TickerInfo) {
	doc.H1(fmt.Sprintf("%s (%s)", info.DisplayName(), info.Symbol))
	if info.Sector != "" {
		doc.PlainText(fmt.Sprintf("%s / %s", info.Sector, info.Industry))
	}
}

func priceSection(doc *md.Markdown, p stalker.PriceSummary) {
	doc.H2("Price")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Last", "Day", "Open", "Day Range", "Volume"},
		Rows: [][]string{{
			price(p.Latest, p.Currency),
			signedPercent(p.DayReturn()),
			price(p.Open, p.Currency),
			p.DayRange(),
			largeNumber(float64(p.Volume)),
		}},
	})
}

func metricsTable(m stalker.SeriesMetrics, currency string) md.TableSet {
	t := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Value"},
		Rows: [][]string{
			{"Bars", fmt.Sprintf("%d", m.Bars)},
			{"Growth", signedPercent(m.Growth)},
			{"Volatility (daily)", percent(m.Volatility)},
			{"Volatility (annualized)", percent(m.AnnualizedVolatility)},
			{"Max Drawdown", percent(m.MaxDrawdown)},
			{"Max Profit", price(m.MaxProfit, currency)},
			{"Longest Up Streak", fmt.Sprintf("%d", m.LongestUp)},
			{"Longest Down Streak", fmt.Sprintf("%d", m.LongestDown)},
		},
	}
	for _, sma := range m.SMA {
		t.Rows = append(t.Rows, []string{
			fmt.Sprintf("SMA %d", sma.Window),
			price(sma.Value, currency),
		})
	}
	return t
}

func profileSection(doc *md.Markdown, info *stalker.TickerInfo) {
	profile := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Field", "Value"},
		Rows:      [][]string{},
	}
	if !info.MarketCap.IsZero() {
		profile.Rows = append(profile.Rows, []string{"Market Cap", info.MarketCap.String()})
	}
	if info.Employees > 0 {
		profile.Rows = append(profile.Rows, []string{"Employees", largeNumber(float64(info.Employees))})
	}
	if info.DividendYield != 0 {
		profile.Rows = append(profile.Rows, []string{"Dividend Yield", percent(info.DividendYield)})
	}
	if info.FiftyTwoWeekLow != 0 || info.FiftyTwoWeekHi != 0 {
		profile.Rows = append(profile.Rows, []string{
			"52 Week Range",
			fmt.Sprintf("%s - %s", number(info.FiftyTwoWeekLow), number(info.FiftyTwoWeekHi)),
		})
	}
	if info.AverageVolume > 0 {
		profile.Rows = append(profile.Rows, []string{"Avg Volume", largeNumber(float64(info.AverageVolume))})
	}
	if info.Website != "" {
		profile.Rows = append(profile.Rows, []string{"Website", info.Website})
	}
	if len(profile.Rows) > 0 {
		doc.H2("Profile")
		doc.Table(profile)
	}

	if info.Summary != "" {
		doc.H2("About")
		doc.PlainText(info.Summary)
	}
}

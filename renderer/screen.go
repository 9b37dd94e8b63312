package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/stalking-stocks/stalker"
)

// Screen renders the screen results, best growth first.
func Screen(r *stalker.ScreenReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Screen Results")
	doc.PlainText(fmt.Sprintf("%d of %d symbols passed over %s.", len(r.Rows), r.Universe, r.Horizon.Name()))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Symbol", "Price", "Avg $ Volume", "ADR", "Growth"},
		Rows:   [][]string{},
	}
	for _, row := range r.Rows {
		table.Rows = append(table.Rows, []string{
			string(row.Symbol),
			number(row.Price),
			largeNumber(row.DollarVolume),
			percent(row.ADR),
			signedPercent(row.Growth),
		})
	}
	doc.Table(table)
	return doc.String()
}

// Movers renders the day gainers table.
func Movers(r *stalker.MoversReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Day Gainers")
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Symbol", "Name", "Price", "Change", "Volume", "Market Cap"},
		Rows:   [][]string{},
	}
	for _, m := range r.Movers {
		table.Rows = append(table.Rows, []string{
			string(m.Symbol),
			m.Name,
			number(m.Price),
			signedPercent(m.ChangePercent),
			largeNumber(float64(m.Volume)),
			largeNumber(m.MarketCap),
		})
	}
	doc.Table(table)
	return doc.String()
}

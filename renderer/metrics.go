package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/stalking-stocks/stalker"
)

// Metrics renders the analytics of several symbols side by side, one row
// per symbol.
func Metrics(r *stalker.MetricsReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Metrics")
	doc.PlainText(fmt.Sprintf("%d symbols over %s, interval 1d.", len(r.Rows), r.Horizon.Name()))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Symbol", "Last", "Growth", "Volatility", "Ann. Vol", "Max DD", "Max Profit", "Up", "Down"},
		Rows:   [][]string{},
	}
	for _, row := range r.Rows {
		m := row.Metrics
		table.Rows = append(table.Rows, []string{
			string(row.Symbol),
			price(m.Last, row.Currency),
			signedPercent(m.Growth),
			percent(m.Volatility),
			percent(m.AnnualizedVolatility),
			percent(m.MaxDrawdown),
			price(m.MaxProfit, row.Currency),
			fmt.Sprintf("%d", m.LongestUp),
			fmt.Sprintf("%d", m.LongestDown),
		})
	}
	doc.Table(table)
	return doc.String()
}

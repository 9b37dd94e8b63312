package renderer

import (
	"bytes"
	"fmt"
	"time"

	md "github.com/nao1215/markdown"
	"github.com/stalking-stocks/stalker"
)

// History renders a bar table, one row per bar, with the report's moving
// average columns appended after the volume.
func History(r *stalker.HistoryReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("History for %s", r.Symbol))
	doc.PlainText(fmt.Sprintf("%s to %s, interval %s.", r.Range.From, r.Range.To, r.Interval))

	header := []string{"Date", "Open", "High", "Low", "Close", "Volume"}
	alignment := []md.TableAlignment{
		md.AlignLeft,
		md.AlignRight,
		md.AlignRight,
		md.AlignRight,
		md.AlignRight,
		md.AlignRight,
	}
	for _, w := range r.SMAWindows {
		header = append(header, fmt.Sprintf("SMA %d", w))
		alignment = append(alignment, md.AlignRight)
	}

	table := md.TableSet{Alignment: alignment, Header: header, Rows: [][]string{}}
	for _, row := range r.Rows {
		cells := []string{
			barTime(row.Bar, r.Interval),
			number(row.Bar.Open),
			number(row.Bar.High),
			number(row.Bar.Low),
			number(row.Bar.Close),
			largeNumber(float64(row.Bar.Volume)),
		}
		for _, v := range row.SMA {
			cells = append(cells, number(v))
		}
		table.Rows = append(table.Rows, cells)
	}
	doc.Table(table)
	return doc.String()
}

// barTime renders the bar's date, or its wall-clock time for intraday
// intervals.
func barTime(b stalker.Bar, interval stalker.Interval) string {
	if interval.Intraday() {
		return b.Time.Format(time.DateTime)
	}
	return b.Date().String()
}

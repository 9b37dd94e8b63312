package renderer

import (
	"bytes"

	md "github.com/nao1215/markdown"
	"github.com/stalking-stocks/stalker"
)

// Watchlist renders the watched symbols.
func Watchlist(w *stalker.Watchlist) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Watchlist")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft, md.AlignLeft},
		Header:    []string{"Symbol", "Added", "Note"},
		Rows:      [][]string{},
	}
	for _, e := range w.Entries() {
		table.Rows = append(table.Rows, []string{string(e.Symbol), e.Added.String(), e.Note})
	}
	doc.Table(table)
	return doc.String()
}

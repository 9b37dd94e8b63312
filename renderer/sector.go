package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"
	"github.com/stalking-stocks/stalker"
)

// Sectors renders the list of browsable sectors.
func Sectors(keys []stalker.SectorKey) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Sectors")
	table := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignLeft},
		Header:    []string{"Key", "Name"},
		Rows:      [][]string{},
	}
	for _, k := range keys {
		table.Rows = append(table.Rows, []string{k.String(), k.Name()})
	}
	doc.Table(table)
	return doc.String()
}

// Sector renders one sector page.
func Sector(r *stalker.SectorReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(r.Name)
	if r.Description != "" {
		doc.PlainText(r.Description)
	}

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Companies", "Industries", "Market Cap", "Market Weight", "Employees"},
		Rows: [][]string{{
			fmt.Sprintf("%d", r.Companies),
			fmt.Sprintf("%d", r.IndustriesCount()),
			moneyOrDash(r.MarketCap),
			percent(r.MarketWeight),
			largeNumber(float64(r.Employees)),
		}},
	})

	if len(r.Industries) > 0 {
		doc.H2("Industries")
		table := md.TableSet{
			Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
			Header:    []string{"Industry", "Market Weight"},
			Rows:      [][]string{},
		}
		for _, ind := range r.Industries {
			table.Rows = append(table.Rows, []string{ind.Name, percent(ind.MarketWeight)})
		}
		doc.Table(table)
	}

	if len(r.TopCompanies) > 0 {
		doc.H2("Largest Companies")
		doc.Table(companiesTable(r.TopCompanies))
	}
	return doc.String()
}

// Industry renders one industry page.
func Industry(r *stalker.IndustryReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(r.Name)
	doc.PlainText(fmt.Sprintf("Part of the %s sector.", r.Sector.Name()))

	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Companies", "Market Cap", "Market Weight", "Day Change", "Employees"},
		Rows: [][]string{{
			fmt.Sprintf("%d", r.Companies),
			moneyOrDash(r.MarketCap),
			percent(r.MarketWeight),
			signedPercent(r.DayChange),
			largeNumber(float64(r.Employees)),
		}},
	})

	if len(r.TopPerformers) > 0 {
		doc.H2("Top Performers")
		doc.Table(companiesTable(r.TopPerformers))
	}
	return doc.String()
}

func companiesTable(companies []stalker.CompanyRef) md.TableSet {
	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Symbol", "Name", "Price", "Change", "Weight"},
		Rows:   [][]string{},
	}
	for _, c := range companies {
		table.Rows = append(table.Rows, []string{
			string(c.Symbol),
			c.Name,
			number(c.LastPrice),
			signedPercent(c.DayChange),
			percent(c.Weight),
		})
	}
	return table
}

func moneyOrDash(m stalker.Money) string {
	if m.IsZero() {
		return "-"
	}
	return m.String()
}

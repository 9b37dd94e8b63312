package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/stalking-stocks/stalker"
	"github.com/stalking-stocks/stalker/renderer"
)

// screenCmd holds the flags for the 'screen' subcommand.
type screenCmd struct {
	horizon      string
	minPrice     float64
	minDollarVol float64
	minADR       float64
	minGrowth    float64
	window       int
}

func (*screenCmd) Name() string     { return "screen" }
func (*screenCmd) Synopsis() string { return "filter symbols on price, liquidity and momentum" }
func (*screenCmd) Usage() string {
	return `stks screen [-z <horizon>] [-min-price p] [-min-dollar-vol v] [-min-adr pct] [-min-growth pct] [symbol]...

  Measures each symbol over the horizon and keeps those clearing every
  threshold, best growth first. A zero threshold is not applied. Without
  symbols, the store's watchlist is screened.
`
}

func (c *screenCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.horizon, "z", "6mo", "Horizon to measure over (1mo, 6mo, 1y, 3y, 5y)")
	f.Float64Var(&c.minPrice, "min-price", 0, "Minimum last close")
	f.Float64Var(&c.minDollarVol, "min-dollar-vol", 0, "Minimum average daily dollar volume")
	f.Float64Var(&c.minADR, "min-adr", 0, "Minimum average daily range, in percent")
	f.Float64Var(&c.minGrowth, "min-growth", 0, "Minimum growth over the horizon, in percent")
	f.IntVar(&c.window, "window", 0, "Trading days for the liquidity averages (default 20)")
}

func (c *screenCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	symbols, err := universe(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	horizon, err := stalker.ParseHorizon(c.horizon)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	criteria := stalker.ScreenCriteria{
		MinPrice:        c.minPrice,
		MinDollarVolume: c.minDollarVol,
		MinADR:          stalker.Percent(c.minADR),
		MinGrowth:       stalker.Percent(c.minGrowth),
		Window:          c.window,
	}
	report, err := stalker.NewScreenReport(ctx, market(), symbols, horizon, criteria)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	printMarkdown(renderer.Screen(report))
	return subcommands.ExitSuccess
}

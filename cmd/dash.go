package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/subcommands"
	"github.com/stalking-stocks/stalker"
	"github.com/stalking-stocks/stalker/renderer"
)

// dashCmd holds the flags for the 'dash' subcommand.
type dashCmd struct {
	horizon  string
	interval string
	watch    int
}

func (*dashCmd) Name() string     { return "dash" }
func (*dashCmd) Synopsis() string { return "display the full dashboard of one or more symbols" }
func (*dashCmd) Usage() string {
	return `stks dash [-z <horizon>] [-i <interval>] [-w n] <symbol>...

  Displays the dashboard of each symbol: profile, latest price, and the
  analytics of the price history over the horizon.
`
}

func (c *dashCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.horizon, "z", "1y", "Horizon to analyze (1d, 5d, 1mo, 6mo, 1y, 3y, 5y)")
	f.StringVar(&c.interval, "i", "", "Bar interval (defaults to the horizon's natural one)")
	f.IntVar(&c.watch, "w", 0, "Re-render every n seconds")
}

func (c *dashCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: expected at least one symbol")
		f.Usage()
		return subcommands.ExitUsageError
	}
	symbols, err := stalker.ParseSymbols(f.Args())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	horizon, interval, err := parseListing(c.horizon, c.interval)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	provider := market()
	for {
		if c.watch > 0 {
			fmt.Println("\033[2J")
		}
		for _, symbol := range symbols {
			report, err := stalker.NewTickerReport(ctx, provider, symbol, horizon, interval)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return subcommands.ExitFailure
			}
			printMarkdown(renderer.Ticker(report))
		}

		if c.watch > 0 {
			time.Sleep(time.Duration(c.watch) * time.Second)
		} else {
			break
		}
	}
	return subcommands.ExitSuccess
}

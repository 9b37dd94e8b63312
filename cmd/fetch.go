package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/stalking-stocks/stalker"
	"github.com/stalking-stocks/stalker/stooq"
	"github.com/stalking-stocks/stalker/timeseries"
)

// fetchCmd holds the flags for the 'fetch' subcommand.
type fetchCmd struct {
	provider string
}

func (*fetchCmd) Name() string     { return "fetch" }
func (*fetchCmd) Synopsis() string { return "refresh the stored daily histories" }
func (*fetchCmd) Usage() string {
	return `stks fetch [-provider yahoo|stooq] [symbol]...

  Brings the stored daily history of each symbol up to today, fetching
  only the bars missing since the last stored one. A brand new symbol is
  backfilled five years. Without symbols, the watchlist is refreshed.

  Supported providers:
    - yahoo: the default, no API key needed.
    - stooq: fallback daily source, also key free.
`
}

func (c *fetchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.provider, "provider", "yahoo", "Data source for daily bars (yahoo, stooq)")
}

func (c *fetchCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	symbols, err := universe(f)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	var provider stalker.BarRangeProvider
	switch c.provider {
	case "yahoo":
		provider = market()
	case "stooq":
		provider = stooq.New()
	default:
		fmt.Fprintf(os.Stderr, "Error: unsupported provider %q\n", c.provider)
		f.Usage()
		return subcommands.ExitUsageError
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := stalker.Refresh(ctx, store, provider, symbols, timeseries.Today()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Refreshed %d symbols in %s\n", len(symbols), store.Path())
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/stalking-stocks/stalker"
	"github.com/stalking-stocks/stalker/renderer"
	"github.com/stalking-stocks/stalker/timeseries"
)

// historyCmd holds the flags for the 'history' subcommand.
type historyCmd struct {
	period   string
	horizon  string
	interval string
	windows  windowsFlag
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "display the bar history of a symbol" }
func (*historyCmd) Usage() string {
	return `stks history [-p <period> | -z <horizon> [-i <interval>]] [-sma 20,50] <symbol>

  Displays the bars of a symbol, one row per bar, with optional moving
  average columns.

  With -p, the bars come from the local store and the period is a
  calendar identifier: 2025, 2025-07, 2025-Q3, 2025-W27 or a single day.
  Otherwise the bars are fetched live over the -z horizon.
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "", "Calendar period to read from the store (year, month, quarter, week or day)")
	f.StringVar(&c.horizon, "z", "1mo", "Horizon to fetch live (1d, 5d, 1mo, 6mo, 1y, 3y, 5y)")
	f.StringVar(&c.interval, "i", "", "Bar interval (defaults to the horizon's natural one)")
	f.Var(&c.windows, "sma", "Comma separated moving average windows to add as columns")
}

func (c *historyCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one symbol")
		f.Usage()
		return subcommands.ExitUsageError
	}
	symbol, err := stalker.ParseSymbol(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	var report *stalker.HistoryReport
	if c.period != "" {
		r, err := timeseries.ParseRange(c.period)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		store, err := OpenStore()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		if report, err = stalker.NewStoredHistoryReport(store, symbol, r, c.windows); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	} else {
		horizon, interval, err := parseListing(c.horizon, c.interval)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		if report, err = stalker.NewHistoryReport(ctx, market(), symbol, horizon, interval, c.windows); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	printMarkdown(renderer.History(report))
	return subcommands.ExitSuccess
}

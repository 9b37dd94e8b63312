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

// metricsCmd holds the flags for the 'metrics' subcommand.
type metricsCmd struct {
	horizon string
}

func (*metricsCmd) Name() string     { return "metrics" }
func (*metricsCmd) Synopsis() string { return "compare the analytics of several symbols" }
func (*metricsCmd) Usage() string {
	return `stks metrics [-z <horizon>] <symbol>...

  Computes growth, volatility, drawdown, best possible single trade and
  streaks for each symbol over the horizon, one row per symbol.
`
}

func (c *metricsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.horizon, "z", "1y", "Horizon to analyze (1mo, 6mo, 1y, 3y, 5y)")
}

func (c *metricsCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	horizon, err := stalker.ParseHorizon(c.horizon)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	report, err := stalker.NewMetricsReport(ctx, market(), symbols, horizon)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	if len(report.Rows) == 0 {
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Metrics(report))
	return subcommands.ExitSuccess
}

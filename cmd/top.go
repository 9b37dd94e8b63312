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

// topCmd holds the flags for the 'top' subcommand.
type topCmd struct {
	count int
}

func (*topCmd) Name() string     { return "top" }
func (*topCmd) Synopsis() string { return "display the day's biggest gainers" }
func (*topCmd) Usage() string {
	return `stks top [-n count]

  Displays the stocks with the largest gain today.
`
}

func (c *topCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.count, "n", 5, "Number of gainers to display")
}

func (c *topCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.count <= 0 {
		fmt.Fprintln(os.Stderr, "Error: -n must be positive")
		return subcommands.ExitUsageError
	}

	report, err := stalker.NewMoversReport(ctx, market(), c.count)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Movers(report))
	return subcommands.ExitSuccess
}

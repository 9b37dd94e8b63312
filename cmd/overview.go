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

type overviewCmd struct{}

func (*overviewCmd) Name() string     { return "overview" }
func (*overviewCmd) Synopsis() string { return "display a sector overview" }
func (*overviewCmd) Usage() string {
	return `stks overview <sector-key>

  Displays one sector: its weight, its industries and its largest
  companies. Run 'stks sectors' for the list of keys.
`
}

func (c *overviewCmd) SetFlags(f *flag.FlagSet) {}

func (c *overviewCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one sector key")
		f.Usage()
		return subcommands.ExitUsageError
	}
	key, err := stalker.ParseSectorKey(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	report, err := stalker.NewSectorReport(ctx, market(), key)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Sector(report))
	return subcommands.ExitSuccess
}

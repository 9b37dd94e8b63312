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

type industryCmd struct{}

func (*industryCmd) Name() string     { return "industry" }
func (*industryCmd) Synopsis() string { return "display an industry overview" }
func (*industryCmd) Usage() string {
	return `stks industry <sector-key> <industry>

  Displays one industry within a sector, with its top performing
  companies. The industry may be given as a key ("consumer-electronics")
  or a display name ("Consumer Electronics").
`
}

func (c *industryCmd) SetFlags(f *flag.FlagSet) {}

func (c *industryCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: expected a sector key and an industry")
		f.Usage()
		return subcommands.ExitUsageError
	}
	key, err := stalker.ParseSectorKey(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	report, err := stalker.NewIndustryReport(ctx, market(), key, f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.Industry(report))
	return subcommands.ExitSuccess
}

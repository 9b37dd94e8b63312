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

type infoCmd struct{}

func (*infoCmd) Name() string     { return "info" }
func (*infoCmd) Synopsis() string { return "display the company card of a symbol" }
func (*infoCmd) Usage() string {
	return `stks info <symbol>

  Displays who a symbol is: name, sector, latest price and profile.
  For the price history analytics, see 'stks dash'.
`
}

func (c *infoCmd) SetFlags(f *flag.FlagSet) {}

func (c *infoCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	provider := market()
	info, err := provider.Profile(ctx, symbol)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	var price stalker.PriceSummary
	quotes, err := provider.Quote(ctx, symbol)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: no live quote for %s: %v\n", symbol, err)
	} else if len(quotes) > 0 {
		price = stalker.NewPriceSummary(quotes[0])
	}

	printMarkdown(renderer.Info(info, price))
	return subcommands.ExitSuccess
}

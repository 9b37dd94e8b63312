package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/stalking-stocks/stalker"
	"github.com/stalking-stocks/stalker/chart"
	gochart "github.com/wcharczuk/go-chart/v2"
)

// chartCmd holds the flags for the 'chart' subcommand.
type chartCmd struct {
	out      string
	horizon  string
	interval string
	windows  windowsFlag
	drawdown bool
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "render the price history of a symbol as a PNG" }
func (*chartCmd) Usage() string {
	return `stks chart [-z <horizon>] [-i <interval>] [-sma 20,50] [-drawdown] [-o out.png] <symbol>

  Renders the close prices of a symbol over the horizon as a PNG image,
  with optional moving average overlays. With -drawdown, renders the
  distance below the running high instead.
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.out, "o", "chart.png", "Output PNG file")
	f.StringVar(&c.horizon, "z", "1y", "Horizon to chart (1d, 5d, 1mo, 6mo, 1y, 3y, 5y)")
	f.StringVar(&c.interval, "i", "", "Bar interval (defaults to the horizon's natural one)")
	f.Var(&c.windows, "sma", "Comma separated moving average windows to overlay")
	f.BoolVar(&c.drawdown, "drawdown", false, "Chart the drawdown under the running high instead of the price")
}

func (c *chartCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	horizon, interval, err := parseListing(c.horizon, c.interval)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	series, err := market().Bars(ctx, symbol, horizon, interval)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	stalker.Clean(series)

	var graph *gochart.Chart
	if c.drawdown {
		graph, err = chart.Drawdown(series, fmt.Sprintf("%s drawdown over %s", symbol, horizon.Name()))
	} else {
		graph, err = chart.Price(series, c.windows, fmt.Sprintf("%s over %s", symbol, horizon.Name()))
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	out, err := os.Create(c.out)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer out.Close()
	if err := chart.Render(graph, out); err != nil {
		fmt.Fprintf(os.Stderr, "Error rendering chart: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Wrote %s\n", c.out)
	return subcommands.ExitSuccess
}

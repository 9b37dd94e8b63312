package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/stalking-stocks/stalker"
)

// exportCmd holds the flags for the 'export' subcommand.
type exportCmd struct {
	out string
}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "export the stored daily bars of a symbol as CSV" }
func (*exportCmd) Usage() string {
	return `stks export [-o file] <symbol>

  Writes the stored daily history of a symbol as CSV, oldest bar first,
  to stdout or to the -o file. The output round-trips through
  'stks import'.
`
}

func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.out, "o", "", "Output file (defaults to stdout)")
}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	series, err := store.History(symbol)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if series.Len() == 0 {
		fmt.Fprintf(os.Stderr, "Error: nothing stored for %s, try 'stks fetch %s' first\n", symbol, symbol)
		return subcommands.ExitFailure
	}

	var w io.Writer = os.Stdout
	if c.out != "" {
		out, err := os.Create(c.out)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		defer out.Close()
		w = out
	}
	if err := stalker.ExportCSV(w, series); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

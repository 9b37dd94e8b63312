package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/stalking-stocks/stalker"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	csvFile string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "import daily bars from a CSV file into the store" }
func (*importCmd) Usage() string {
	return `stks import -csv <file> <symbol>

  Reads daily bars from a CSV file (Date, Open, High, Low, Close, and
  optionally Adj Close and Volume) and merges them into the stored
  history of the symbol. Existing bars on the same dates are replaced.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.csvFile, "csv", "", "CSV file to read bars from")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.csvFile == "" || f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected -csv <file> and exactly one symbol")
		f.Usage()
		return subcommands.ExitUsageError
	}
	symbol, err := stalker.ParseSymbol(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	in, err := os.Open(c.csvFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", c.csvFile, err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	imported, err := stalker.ImportCSV(in, symbol)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error importing %q: %v\n", c.csvFile, err)
		return subcommands.ExitFailure
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
	series.Merge(imported)
	if series.Currency == "" {
		series.Currency = imported.Currency
	}
	if err := store.Save(series); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Imported %d bars for %s, history ends %s\n", imported.Len(), symbol, series.LatestDate())
	return subcommands.ExitSuccess
}

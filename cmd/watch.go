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

// watchCmd holds the flags for the 'watch' subcommand.
type watchCmd struct {
	add  string
	rm   string
	note string
}

func (*watchCmd) Name() string     { return "watch" }
func (*watchCmd) Synopsis() string { return "manage the watchlist" }
func (*watchCmd) Usage() string {
	return `stks watch [-add <symbol> [-note <text>]] [-rm <symbol>]

  Adds or removes a symbol from the store's watchlist. Adding an already
  watched symbol updates its note. Without flags, lists the watchlist.
`
}

func (c *watchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.add, "add", "", "Symbol to add to the watchlist")
	f.StringVar(&c.rm, "rm", "", "Symbol to remove from the watchlist")
	f.StringVar(&c.note, "note", "", "Note to attach to the added symbol")
}

func (c *watchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	list, err := store.Watchlist()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if c.add == "" && c.rm == "" {
		printMarkdown(renderer.Watchlist(list))
		return subcommands.ExitSuccess
	}

	if c.add != "" {
		symbol, err := stalker.ParseSymbol(c.add)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		list.Add(symbol, c.note)
		fmt.Printf("Watching %s\n", symbol)
	}
	if c.rm != "" {
		symbol, err := stalker.ParseSymbol(c.rm)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		if list.Remove(symbol) {
			fmt.Printf("Stopped watching %s\n", symbol)
		} else {
			fmt.Fprintf(os.Stderr, "Warning: %s was not watched\n", symbol)
		}
	}

	if err := store.SaveWatchlist(list); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

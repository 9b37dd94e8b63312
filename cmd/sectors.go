package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/stalking-stocks/stalker"
	"github.com/stalking-stocks/stalker/renderer"
)

type sectorsCmd struct{}

func (*sectorsCmd) Name() string     { return "sectors" }
func (*sectorsCmd) Synopsis() string { return "list the market sectors" }
func (*sectorsCmd) Usage() string {
	return `stks sectors

  Lists the eleven market sectors with the key to use in other commands.
`
}

func (c *sectorsCmd) SetFlags(f *flag.FlagSet) {}

func (c *sectorsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	printMarkdown(renderer.Sectors(stalker.AllSectors()))
	return subcommands.ExitSuccess
}

// Command stks is the stock stalking CLI.
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/stalking-stocks/stalker"
	"github.com/stalking-stocks/stalker/cmd"
)

func main() {
	// A .env next to the store keeps GEMINI_API_KEY and friends out of the
	// shell profile. Missing file is the normal case.
	_ = godotenv.Load()

	// Shell completion runs before anything else: when invoked by the
	// shell it prints candidates and exits.
	completion().Complete("stks")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)
	commander.Register(commander.HelpCommand(), "documentation")
	commander.Register(commander.FlagsCommand(), "documentation")
	commander.Register(commander.CommandsCommand(), "documentation")

	flag.Parse()

	if !*cmd.Verbose {
		log.SetOutput(io.Discard)
	}

	// An unknown subcommand may be an external stks-<name> binary.
	if name := flag.Arg(0); name != "" && !knows(commander, name) {
		if found, code := cmd.RunExtension(name, flag.Args()[1:]); found {
			os.Exit(code)
		}
	}

	os.Exit(int(commander.Execute(context.Background())))
}

func knows(commander *subcommands.Commander, name string) bool {
	known := false
	commander.VisitCommands(func(_ *subcommands.CommandGroup, c subcommands.Command) {
		if c.Name() == name {
			known = true
		}
	})
	return known
}

// completion describes every subcommand and its flags for shell
// completion. COMP_INSTALL=1 stks installs it into the shell rc file.
func completion() *complete.Command {
	horizons := predict.Set{"1d", "5d", "1mo", "6mo", "1y", "3y", "5y"}
	intervals := predict.Set{"1m", "2m", "5m", "15m", "30m", "1h", "1d", "5d", "1wk", "1mo", "3mo"}

	var sectors predict.Set
	for _, key := range stalker.AllSectors() {
		sectors = append(sectors, key.String())
	}

	return &complete.Command{
		Flags: map[string]complete.Predictor{
			"store": predict.Dirs("*"),
			"v":     predict.Nothing,
			"raw":   predict.Nothing,
		},
		Sub: map[string]*complete.Command{
			"sectors":  {},
			"overview": {Args: sectors},
			"industry": {Args: sectors},
			"info":     {},
			"top": {Flags: map[string]complete.Predictor{
				"n": predict.Something,
			}},
			"dash": {Flags: map[string]complete.Predictor{
				"z": horizons,
				"i": intervals,
				"w": predict.Something,
			}},
			"history": {Flags: map[string]complete.Predictor{
				"z":   horizons,
				"i":   intervals,
				"p":   predict.Something,
				"sma": predict.Something,
			}},
			"metrics": {Flags: map[string]complete.Predictor{
				"z": horizons,
			}},
			"chart": {Flags: map[string]complete.Predictor{
				"z":        horizons,
				"i":        intervals,
				"o":        predict.Files("*.png"),
				"sma":      predict.Something,
				"drawdown": predict.Nothing,
			}},
			"screen": {Flags: map[string]complete.Predictor{
				"z":              horizons,
				"min-price":      predict.Something,
				"min-dollar-vol": predict.Something,
				"min-adr":        predict.Something,
				"min-growth":     predict.Something,
				"window":         predict.Something,
			}},
			"fetch": {Flags: map[string]complete.Predictor{
				"provider": predict.Set{"yahoo", "stooq"},
			}},
			"import": {Flags: map[string]complete.Predictor{
				"csv": predict.Files("*.csv"),
			}},
			"export": {Flags: map[string]complete.Predictor{
				"o": predict.Files("*.csv"),
			}},
			"watch": {Flags: map[string]complete.Predictor{
				"add":  predict.Something,
				"rm":   predict.Something,
				"note": predict.Something,
			}},
			"serve": {Flags: map[string]complete.Predictor{
				"addr": predict.Something,
			}},
			"assist": {Flags: map[string]complete.Predictor{
				"api-key": predict.Something,
			}},
			"topic": {Args: predict.Set{"getting-started", "horizons", "metrics", "screening", "store", "*"}},
		},
	}
}

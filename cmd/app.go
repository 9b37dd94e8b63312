// Package cmd implements the CLI application to stalk the stock market.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/stalking-stocks/stalker"
	"github.com/stalking-stocks/stalker/yahoo"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&sectorsCmd{}, "browsing")
	c.Register(&overviewCmd{}, "browsing")
	c.Register(&industryCmd{}, "browsing")
	c.Register(&infoCmd{}, "browsing")
	c.Register(&topCmd{}, "browsing")

	c.Register(&dashCmd{}, "analytics")
	c.Register(&historyCmd{}, "analytics")
	c.Register(&metricsCmd{}, "analytics")
	c.Register(&chartCmd{}, "analytics")
	c.Register(&screenCmd{}, "analytics")

	c.Register(&fetchCmd{}, "store")
	c.Register(&importCmd{}, "store")
	c.Register(&exportCmd{}, "store")
	c.Register(&watchCmd{}, "store")

	c.Register(&serveCmd{}, "services")
	c.Register(&assistCmd{}, "services")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storePath = flag.String("store", "", "Path to the store directory (defaults to $STKS_STORE, then \".\")")
var Verbose = flag.Bool("v", false, "Log fetching and caching details to stderr")
var rawMarkdown = flag.Bool("raw", false, "Print reports as plain markdown, without terminal styling")

// StorePath resolves the store directory: the -store flag first, then
// $STKS_STORE, then the working directory.
func StorePath() string {
	if *storePath != "" {
		return *storePath
	}
	if env := os.Getenv("STKS_STORE"); env != "" {
		return env
	}
	return "."
}

// OpenStore opens the app store. A missing store starts empty and warns,
// nothing is written until the first save.
func OpenStore() (*stalker.Store, error) {
	return stalker.OpenStore(StorePath())
}

// market returns the live data provider shared by every command.
func market() *yahoo.Client { return yahoo.New() }

// printMarkdown renders a markdown report on the terminal. With -raw, or
// when the terminal renderer cannot be built, the markdown goes out as is.
func printMarkdown(md string) {
	if *rawMarkdown {
		fmt.Print(md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(110))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// universe resolves the symbols a batch command operates on: the
// arguments when given, the store's watchlist otherwise.
func universe(f *flag.FlagSet) ([]stalker.Symbol, error) {
	if f.NArg() > 0 {
		return stalker.ParseSymbols(f.Args())
	}
	store, err := OpenStore()
	if err != nil {
		return nil, err
	}
	w, err := store.Watchlist()
	if err != nil {
		return nil, err
	}
	if w.Len() == 0 {
		return nil, fmt.Errorf("no symbols given and the watchlist is empty, try 'watch -add SYMBOL'")
	}
	return w.Symbols(), nil
}

// parseListing resolves the -z and -i flag values into a validated
// horizon and interval pair. An empty interval means the horizon's
// default.
func parseListing(horizon, interval string) (stalker.Horizon, stalker.Interval, error) {
	z, err := stalker.ParseHorizon(horizon)
	if err != nil {
		return "", "", err
	}
	i := z.DefaultInterval()
	if interval != "" {
		if i, err = stalker.ParseInterval(interval); err != nil {
			return "", "", err
		}
	}
	if err := z.Validate(i); err != nil {
		return "", "", err
	}
	return z, i, nil
}

// windowsFlag collects comma separated moving average windows, e.g.
// "-sma 20,50".
type windowsFlag []int

func (w *windowsFlag) String() string {
	parts := make([]string, len(*w))
	for i, n := range *w {
		parts[i] = strconv.Itoa(n)
	}
	return strings.Join(parts, ",")
}

func (w *windowsFlag) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid moving average window %q", part)
		}
		*w = append(*w, n)
	}
	return nil
}

package cmd

import (
	"flag"
	"testing"

	"github.com/stalking-stocks/stalker"
)

func TestStorePath(t *testing.T) {
	defer func(old string) { *storePath = old }(*storePath)

	*storePath = ""
	t.Setenv("STKS_STORE", "")
	if got := StorePath(); got != "." {
		t.Errorf("StorePath() = %q, want %q", got, ".")
	}

	t.Setenv("STKS_STORE", "/tmp/stocks")
	if got := StorePath(); got != "/tmp/stocks" {
		t.Errorf("StorePath() = %q, want %q", got, "/tmp/stocks")
	}

	*storePath = "/home/me/stocks"
	if got := StorePath(); got != "/home/me/stocks" {
		t.Errorf("StorePath() = %q, want %q (flag should win)", got, "/home/me/stocks")
	}
}

func TestWindowsFlag(t *testing.T) {
	var w windowsFlag
	if err := w.Set("20, 50"); err != nil {
		t.Fatalf("Set() unexpected error = %v", err)
	}
	if err := w.Set("200"); err != nil {
		t.Fatalf("Set() unexpected error = %v", err)
	}
	if len(w) != 3 || w[0] != 20 || w[1] != 50 || w[2] != 200 {
		t.Errorf("windowsFlag = %v, want [20 50 200]", w)
	}
	if got := w.String(); got != "20,50,200" {
		t.Errorf("String() = %q, want %q", got, "20,50,200")
	}

	for _, bad := range []string{"abc", "0", "-5", ""} {
		var w windowsFlag
		if err := w.Set(bad); err == nil {
			t.Errorf("Set(%q) expected an error", bad)
		}
	}
}

func TestParseListing(t *testing.T) {
	z, i, err := parseListing("1y", "")
	if err != nil {
		t.Fatalf("parseListing() unexpected error = %v", err)
	}
	if z != stalker.Horizon1Y || i != stalker.Interval1d {
		t.Errorf("parseListing(1y, \"\") = %v, %v, want 1y, 1d", z, i)
	}

	z, i, err = parseListing("5d", "")
	if err != nil {
		t.Fatalf("parseListing() unexpected error = %v", err)
	}
	if z != stalker.Horizon5D || i != stalker.Interval30m {
		t.Errorf("parseListing(5d, \"\") = %v, %v, want 5d, 30m", z, i)
	}

	if _, _, err := parseListing("1y", "5m"); err == nil {
		t.Error("parseListing(1y, 5m) expected an error, intraday bars do not span a year")
	}
	if _, _, err := parseListing("weekly", ""); err == nil {
		t.Error("parseListing(weekly) expected an error for an unknown horizon")
	}
}

func TestUniverse(t *testing.T) {
	defer func(old string) { *storePath = old }(*storePath)
	*storePath = t.TempDir()

	store, err := OpenStore()
	if err != nil {
		t.Fatalf("OpenStore() unexpected error = %v", err)
	}
	var list stalker.Watchlist
	list.Add("NVDA", "")
	list.Add("AAPL", "")
	if err := store.SaveWatchlist(&list); err != nil {
		t.Fatalf("SaveWatchlist() unexpected error = %v", err)
	}

	// Arguments win over the watchlist.
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	if err := f.Parse([]string{"MSFT"}); err != nil {
		t.Fatal(err)
	}
	symbols, err := universe(f)
	if err != nil {
		t.Fatalf("universe() unexpected error = %v", err)
	}
	if len(symbols) != 1 || symbols[0] != "MSFT" {
		t.Errorf("universe(MSFT) = %v, want [MSFT]", symbols)
	}

	// No arguments fall back to the watchlist, sorted.
	f = flag.NewFlagSet("test", flag.ContinueOnError)
	if err := f.Parse(nil); err != nil {
		t.Fatal(err)
	}
	symbols, err = universe(f)
	if err != nil {
		t.Fatalf("universe() unexpected error = %v", err)
	}
	if len(symbols) != 2 || symbols[0] != "AAPL" || symbols[1] != "NVDA" {
		t.Errorf("universe() = %v, want [AAPL NVDA]", symbols)
	}
}

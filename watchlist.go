package stalker

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/stalking-stocks/stalker/timeseries"
)

const watchlistFilename = "watchlist.jsonl"

// WatchEntry is one symbol the owner keeps an eye on.
type WatchEntry struct {
	Symbol Symbol
	Added  timeseries.Date
	Note   string
}

func (e WatchEntry) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("symbol", e.Symbol)
	w.Append("added", e.Added)
	w.Optional("note", e.Note)
	return w.MarshalJSON()
}

func (e *WatchEntry) UnmarshalJSON(data []byte) error {
	var raw struct {
		Symbol string          `json:"symbol"`
		Added  timeseries.Date `json:"added"`
		Note   string          `json:"note"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	symbol, err := ParseSymbol(raw.Symbol)
	if err != nil {
		return err
	}
	e.Symbol, e.Added, e.Note = symbol, raw.Added, raw.Note
	return nil
}

// Watchlist is a set of watched symbols, kept sorted by symbol.
type Watchlist struct {
	entries []WatchEntry
}

func (w *Watchlist) search(symbol Symbol) (int, bool) {
	return slices.BinarySearchFunc(w.entries, symbol, func(e WatchEntry, s Symbol) int {
		return strings.Compare(string(e.Symbol), string(s))
	})
}

// Add inserts a symbol into the watchlist. Adding a symbol already
// present only updates its note, so add is safe to repeat.
func (w *Watchlist) Add(symbol Symbol, note string) {
	idx, found := w.search(symbol)
	if found {
		if note != "" {
			w.entries[idx].Note = note
		}
		return
	}
	w.entries = slices.Insert(w.entries, idx, WatchEntry{Symbol: symbol, Added: timeseries.Today(), Note: note})
}

// Remove deletes a symbol from the watchlist and reports whether it was
// present.
func (w *Watchlist) Remove(symbol Symbol) bool {
	idx, found := w.search(symbol)
	if !found {
		return false
	}
	w.entries = slices.Delete(w.entries, idx, idx+1)
	return true
}

// Has reports whether the symbol is watched.
func (w *Watchlist) Has(symbol Symbol) bool {
	_, found := w.search(symbol)
	return found
}

// Entries returns the watch entries sorted by symbol.
func (w *Watchlist) Entries() []WatchEntry { return w.entries }

// Symbols returns the watched symbols sorted.
func (w *Watchlist) Symbols() []Symbol {
	symbols := make([]Symbol, 0, len(w.entries))
	for _, e := range w.entries {
		symbols = append(symbols, e.Symbol)
	}
	return symbols
}

// Len returns the number of watched symbols.
func (w *Watchlist) Len() int { return len(w.entries) }

// Watchlist reads the store's watchlist. A store without one yields an
// empty list.
func (s *Store) Watchlist() (*Watchlist, error) {
	w := &Watchlist{}

	f, err := os.Open(filepath.Join(s.path, watchlistFilename))
	if errors.Is(err, fs.ErrNotExist) {
		return w, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open watchlist: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var e WatchEntry
		if err := json.Unmarshal(line, &e); err != nil {
			return nil, fmt.Errorf("cannot parse watchlist line %q: %w", string(line), err)
		}
		idx, found := w.search(e.Symbol)
		if found {
			w.entries[idx] = e
			continue
		}
		w.entries = slices.Insert(w.entries, idx, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read watchlist: %w", err)
	}
	return w, nil
}

// SaveWatchlist writes the watchlist back to the store.
func (s *Store) SaveWatchlist(w *Watchlist) error {
	if err := os.MkdirAll(s.path, 0755); err != nil {
		return fmt.Errorf("could not create store directory: %w", err)
	}
	f, err := os.Create(filepath.Join(s.path, watchlistFilename))
	if err != nil {
		return fmt.Errorf("error opening watchlist file: %w", err)
	}
	defer f.Close()

	buf := bufio.NewWriter(f)
	for _, e := range w.entries {
		data, err := json.Marshal(e)
		if err != nil {
			return fmt.Errorf("cannot marshal watch entry %s: %w", e.Symbol, err)
		}
		if _, err := buf.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write watch entry %s: %w", e.Symbol, err)
		}
	}
	return buf.Flush()
}

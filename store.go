package stalker

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/stalking-stocks/stalker/timeseries"
)

// This file contains the code to persist bar histories in a folder, in a
// way that is human readable and git friendly: one JSONL file per symbol,
// one bar per line, plus a small manifest. The main goal for such a store
// is to live in a private repo next to the owner's notes.

const (
	barsDirname      = "bars"
	manifestFilename = "store.json"
	barFileExt       = ".jsonl"
)

// Store is a directory of bar histories.
type Store struct {
	path     string
	manifest manifest
}

// manifest identifies a store and summarizes its content.
type manifest struct {
	ID      string                `json:"id"`
	Created time.Time             `json:"created"`
	Updated time.Time             `json:"updated"`
	Symbols map[string]symbolStat `json:"symbols,omitempty"`
}

// symbolStat is the per-symbol summary kept in the manifest, enough to
// answer "what do we have" without opening the bar files.
type symbolStat struct {
	Last timeseries.Date `json:"last"`
	Bars int             `json:"bars"`
}

func (m manifest) MarshalJSON() ([]byte, error) {
	var w jsonObjectWriter
	w.Append("id", m.ID)
	w.Append("created", m.Created.UTC().Format(time.RFC3339))
	w.Append("updated", m.Updated.UTC().Format(time.RFC3339))
	w.Optional("symbols", m.Symbols)
	return w.MarshalJSON()
}

func (m *manifest) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID      string                `json:"id"`
		Created time.Time             `json:"created"`
		Updated time.Time             `json:"updated"`
		Symbols map[string]symbolStat `json:"symbols"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	m.ID, m.Created, m.Updated, m.Symbols = raw.ID, raw.Created, raw.Updated, raw.Symbols
	return nil
}

// OpenStore opens the store rooted at path. A missing directory or
// manifest yields a fresh empty store with a warning; nothing is written
// until the first save.
func OpenStore(path string) (*Store, error) {
	s := &Store{path: path}

	content, err := os.ReadFile(filepath.Join(path, manifestFilename))
	if errors.Is(err, fs.ErrNotExist) {
		log.Printf("no store found in %q, starting an empty one", path)
		now := time.Now()
		s.manifest = manifest{ID: uuid.NewString(), Created: now, Updated: now}
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open store %q: %w", path, err)
	}
	if err := json.Unmarshal(content, &s.manifest); err != nil {
		return nil, fmt.Errorf("could not decode store manifest in %q: %w", path, err)
	}
	return s, nil
}

// Path returns the store's root directory.
func (s *Store) Path() string { return s.path }

// ID returns the store's unique identifier.
func (s *Store) ID() string { return s.manifest.ID }

func (s *Store) barFile(symbol Symbol) string {
	return filepath.Join(s.path, barsDirname, string(symbol)+barFileExt)
}

// History reads the stored daily series of a symbol. A symbol that was
// never fetched yields an empty series, not an error.
func (s *Store) History(symbol Symbol) (*Series, error) {
	series := NewSeries(symbol, Interval1d)

	f, err := os.Open(s.barFile(symbol))
	if errors.Is(err, fs.ErrNotExist) {
		return series, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open bars for %s: %w", symbol, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(strings.TrimSpace(string(line))) == 0 {
			continue
		}
		var b Bar
		if err := json.Unmarshal(line, &b); err != nil {
			return nil, fmt.Errorf("cannot parse bar line for %s: %q: %w", symbol, string(line), err)
		}
		series.Append(b)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read bars for %s: %w", symbol, err)
	}
	return series, nil
}

// Save writes the series to its bar file and refreshes the manifest.
func (s *Store) Save(series *Series) error {
	if err := os.MkdirAll(filepath.Join(s.path, barsDirname), 0755); err != nil {
		return fmt.Errorf("could not create bars directory: %w", err)
	}

	f, err := os.Create(s.barFile(series.Symbol))
	if err != nil {
		return fmt.Errorf("error opening bar file for %s: %w", series.Symbol, err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, b := range series.Bars {
		data, err := json.Marshal(b)
		if err != nil {
			return fmt.Errorf("cannot marshal bar for %s: %w", series.Symbol, err)
		}
		if _, err := w.Write(append(data, '\n')); err != nil {
			return fmt.Errorf("cannot write bar for %s: %w", series.Symbol, err)
		}
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if s.manifest.Symbols == nil {
		s.manifest.Symbols = make(map[string]symbolStat)
	}
	s.manifest.Symbols[string(series.Symbol)] = symbolStat{
		Last: series.LatestDate(),
		Bars: series.Len(),
	}
	return s.saveManifest()
}

func (s *Store) saveManifest() error {
	s.manifest.Updated = time.Now()
	data, err := json.Marshal(s.manifest)
	if err != nil {
		return fmt.Errorf("cannot marshal store manifest: %w", err)
	}
	return os.WriteFile(filepath.Join(s.path, manifestFilename), append(data, '\n'), 0644)
}

// Symbols lists the symbols present in the store, in lexical order. The
// bar files on disk are the source of truth, not the manifest.
func (s *Store) Symbols() ([]Symbol, error) {
	entries, err := os.ReadDir(filepath.Join(s.path, barsDirname))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not scan store %q: %w", s.path, err)
	}

	var symbols []Symbol
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), barFileExt) {
			continue
		}
		symbols = append(symbols, Symbol(strings.TrimSuffix(e.Name(), barFileExt)))
	}
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })
	return symbols, nil
}

// LastDate returns the date of the most recent stored bar for a symbol,
// according to the manifest. A zero date means nothing is stored.
func (s *Store) LastDate(symbol Symbol) timeseries.Date {
	return s.manifest.Symbols[string(symbol)].Last
}

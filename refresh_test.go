package stalker

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stalking-stocks/stalker/timeseries"
)

// rangeStub records the requested range and serves canned bars.
type rangeStub struct {
	calls []struct {
		symbol   Symbol
		from, to timeseries.Date
	}
	bars map[Symbol]*Series
	err  error
}

func (s *rangeStub) BarsBetween(_ context.Context, symbol Symbol, from, to timeseries.Date) (*Series, error) {
	s.calls = append(s.calls, struct {
		symbol   Symbol
		from, to timeseries.Date
	}{symbol, from, to})
	if s.err != nil {
		return nil, s.err
	}
	if series, ok := s.bars[symbol]; ok {
		return series, nil
	}
	return NewSeries(symbol, Interval1d), nil
}

func TestRefreshBackfillsNewSymbol(t *testing.T) {
	store, err := OpenStore(t.TempDir())
	if err != nil {
		t.Fatalf("OpenStore() unexpected error = %v", err)
	}

	through := timeseries.NewDate(2024, 6, 14)
	fetched := NewSeries("AAPL", Interval1d)
	fetched.Currency = "USD"
	fetched.Append(Bar{Time: timeseries.NewDate(2024, 6, 13).Time(), Close: 185, AdjClose: 185})
	fetched.Append(Bar{Time: timeseries.NewDate(2024, 6, 14).Time(), Close: 186, AdjClose: 186})
	stub := &rangeStub{bars: map[Symbol]*Series{"AAPL": fetched}}

	if err := Refresh(context.Background(), store, stub, []Symbol{"AAPL"}, through); err != nil {
		t.Fatalf("Refresh() unexpected error = %v", err)
	}

	if len(stub.calls) != 1 {
		t.Fatalf("provider called %d times, want 1", len(stub.calls))
	}
	call := stub.calls[0]
	if want := through.AddDate(-defaultBackfillYears, 0, 0); call.from != want {
		t.Errorf("BarsBetween() from = %s, want %s", call.from, want)
	}
	if call.to != through {
		t.Errorf("BarsBetween() to = %s, want %s", call.to, through)
	}

	stored, err := store.History("AAPL")
	if err != nil {
		t.Fatalf("History() unexpected error = %v", err)
	}
	if stored.Len() != 2 || stored.Currency != "USD" {
		t.Errorf("stored %d bars in %q, want 2 in USD", stored.Len(), stored.Currency)
	}
}

func TestRefreshFetchesOnlyTheGap(t *testing.T) {
	store, err := OpenStore(t.TempDir())
	if err != nil {
		t.Fatalf("OpenStore() unexpected error = %v", err)
	}
	existing := NewSeries("MSFT", Interval1d)
	existing.Append(Bar{Time: timeseries.NewDate(2024, 6, 10).Time(), Close: 420, AdjClose: 420})
	if err := store.Save(existing); err != nil {
		t.Fatalf("Save() unexpected error = %v", err)
	}

	tail := NewSeries("MSFT", Interval1d)
	tail.Append(Bar{Time: timeseries.NewDate(2024, 6, 11).Time(), Close: 425, AdjClose: 425})
	stub := &rangeStub{bars: map[Symbol]*Series{"MSFT": tail}}

	through := timeseries.NewDate(2024, 6, 11)
	if err := Refresh(context.Background(), store, stub, []Symbol{"MSFT"}, through); err != nil {
		t.Fatalf("Refresh() unexpected error = %v", err)
	}

	if want := timeseries.NewDate(2024, 6, 11); stub.calls[0].from != want {
		t.Errorf("BarsBetween() from = %s, want %s", stub.calls[0].from, want)
	}
	stored, _ := store.History("MSFT")
	if !sameFloats(stored.Closes(), []float64{420, 425}) {
		t.Errorf("stored closes = %v, want [420 425]", stored.Closes())
	}
}

func TestRefreshUpToDate(t *testing.T) {
	store, err := OpenStore(t.TempDir())
	if err != nil {
		t.Fatalf("OpenStore() unexpected error = %v", err)
	}
	existing := NewSeries("NVDA", Interval1d)
	existing.Append(Bar{Time: timeseries.NewDate(2024, 6, 14).Time(), Close: 130, AdjClose: 130})
	if err := store.Save(existing); err != nil {
		t.Fatalf("Save() unexpected error = %v", err)
	}

	stub := &rangeStub{}
	if err := Refresh(context.Background(), store, stub, []Symbol{"NVDA"}, timeseries.NewDate(2024, 6, 14)); err != nil {
		t.Fatalf("Refresh() unexpected error = %v", err)
	}
	if len(stub.calls) != 0 {
		t.Errorf("provider called %d times for an up to date symbol, want 0", len(stub.calls))
	}
}

func TestRefreshJoinsErrors(t *testing.T) {
	store, err := OpenStore(t.TempDir())
	if err != nil {
		t.Fatalf("OpenStore() unexpected error = %v", err)
	}

	boom := errors.New("quota exceeded")
	stub := &rangeStub{err: boom}

	got := Refresh(context.Background(), store, stub, []Symbol{"AAPL", "MSFT"}, timeseries.NewDate(2024, 6, 14))
	if got == nil {
		t.Fatalf("Refresh() = nil, want a joined error")
	}
	if !errors.Is(got, boom) {
		t.Errorf("Refresh() error does not wrap the provider error: %v", got)
	}
	for _, symbol := range []string{"AAPL", "MSFT"} {
		if !strings.Contains(got.Error(), "refreshing "+symbol) {
			t.Errorf("Refresh() error misses %s: %v", symbol, got)
		}
	}
	// both symbols were still attempted
	if len(stub.calls) != 2 {
		t.Errorf("provider called %d times, want 2", len(stub.calls))
	}
}

func TestRefreshEmptyFetch(t *testing.T) {
	store, err := OpenStore(t.TempDir())
	if err != nil {
		t.Fatalf("OpenStore() unexpected error = %v", err)
	}

	stub := &rangeStub{}
	if err := Refresh(context.Background(), store, stub, []Symbol{"AAPL"}, timeseries.NewDate(2024, 6, 14)); err != nil {
		t.Fatalf("Refresh() unexpected error = %v", err)
	}
	symbols, err := store.Symbols()
	if err != nil {
		t.Fatalf("Symbols() unexpected error = %v", err)
	}
	if len(symbols) != 0 {
		t.Errorf("Symbols() = %v after an empty fetch, want none", symbols)
	}
}

package stalker

import (
	"context"
	"errors"
	"math"
	"strings"
	"testing"
)

func TestNewScreenReport(t *testing.T) {
	boom := errors.New("timeout")
	stub := &barStub{
		series: map[Symbol]*Series{
			"SLOW": weekSeries("SLOW", 100, 101, 102, 103, 104, 105, 106, 107, 108, 109),
			"FAST": weekSeries("FAST", 100, 102, 104, 106, 108, 110, 112, 114, 116, 118),
			"PENNY": weekSeries("PENNY", 2, 2, 2, 2, 2, 2, 2, 2, 2, 2),
		},
		errs: map[Symbol]error{"BOOM": boom},
	}

	criteria := ScreenCriteria{MinPrice: 50}
	report, err := NewScreenReport(context.Background(), stub,
		[]Symbol{"SLOW", "FAST", "PENNY", "BOOM"}, Horizon6M, criteria)
	if !errors.Is(err, boom) {
		t.Errorf("NewScreenReport() error does not wrap the fetch failure: %v", err)
	}
	if err == nil || !strings.Contains(err.Error(), "screening BOOM") {
		t.Errorf("NewScreenReport() error does not name the symbol: %v", err)
	}

	if report.Universe != 4 {
		t.Errorf("Universe = %d, want 4", report.Universe)
	}
	if len(report.Rows) != 2 {
		t.Fatalf("Rows = %v, want the two symbols above the price floor", report.Rows)
	}
	// sorted by growth, best first
	if report.Rows[0].Symbol != "FAST" || report.Rows[1].Symbol != "SLOW" {
		t.Errorf("Rows order = %s, %s, want FAST, SLOW", report.Rows[0].Symbol, report.Rows[1].Symbol)
	}

	fast := report.Rows[0]
	if fast.Price != 118 || fast.Bars != 10 {
		t.Errorf("FAST price/bars = %v/%d, want 118/10", fast.Price, fast.Bars)
	}
	if !closeTo(float64(fast.Growth), 18) {
		t.Errorf("FAST growth = %v, want 18%%", fast.Growth)
	}
	// ten bars of close*1e6, window 20 clamped to the series
	slow := report.Rows[1]
	if !closeTo(slow.DollarVolume, 104.5e6) {
		t.Errorf("SLOW dollar volume = %v, want 104.5M", slow.DollarVolume)
	}
	if slow.ADR <= 0 {
		t.Errorf("SLOW ADR = %v, want a positive range", slow.ADR)
	}
}

func TestNewScreenReportThresholds(t *testing.T) {
	stub := &barStub{series: map[Symbol]*Series{
		"CALM": weekSeries("CALM", 100, 100.2, 100.1, 100.3, 100.2),
		"WILD": weekSeries("WILD", 100, 104, 99, 106, 103),
	}}

	// a zero threshold is not applied
	report, err := NewScreenReport(context.Background(), stub, []Symbol{"CALM", "WILD"}, Horizon1M, ScreenCriteria{})
	if err != nil {
		t.Fatalf("NewScreenReport() unexpected error = %v", err)
	}
	if len(report.Rows) != 2 {
		t.Errorf("Rows = %d with no thresholds, want the whole universe", len(report.Rows))
	}

	// a growth floor keeps only the strong series
	report, err = NewScreenReport(context.Background(), stub, []Symbol{"CALM", "WILD"}, Horizon1M, ScreenCriteria{MinGrowth: 1})
	if err != nil {
		t.Fatalf("NewScreenReport() unexpected error = %v", err)
	}
	if len(report.Rows) != 1 || report.Rows[0].Symbol != "WILD" {
		t.Errorf("Rows = %v, want only WILD above 1%% growth", report.Rows)
	}
}

func TestNewScreenReportEmptySeries(t *testing.T) {
	stub := &barStub{series: map[Symbol]*Series{
		"OK": weekSeries("OK", 100, 101, 102),
	}}

	// GHOST yields an empty series: measured as NaN, sorted last, kept
	// only because no threshold filters it
	report, err := NewScreenReport(context.Background(), stub, []Symbol{"GHOST", "OK"}, Horizon1M, ScreenCriteria{})
	if err != nil {
		t.Fatalf("NewScreenReport() unexpected error = %v", err)
	}
	if len(report.Rows) != 2 {
		t.Fatalf("Rows = %d, want 2", len(report.Rows))
	}
	if report.Rows[0].Symbol != "OK" || report.Rows[1].Symbol != "GHOST" {
		t.Errorf("Rows order = %s, %s, want the measurable symbol first", report.Rows[0].Symbol, report.Rows[1].Symbol)
	}
	if !math.IsNaN(float64(report.Rows[1].Growth)) {
		t.Errorf("GHOST growth = %v, want NaN", report.Rows[1].Growth)
	}
}

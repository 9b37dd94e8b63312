package stalker

import (
	"testing"
	"time"
)

func TestParseHorizon(t *testing.T) {
	tests := []struct {
		in      string
		want    Horizon
		wantErr bool
	}{
		{"1d", Horizon1D, false},
		{"5d", Horizon5D, false},
		{"1mo", Horizon1M, false},
		{"1M", Horizon1M, false},
		{"6m", Horizon6M, false},
		{" 1Y ", Horizon1Y, false},
		{"3y", Horizon3Y, false},
		{"5y", Horizon5Y, false},
		{"2w", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHorizon(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHorizon(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseHorizon(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestHorizonName(t *testing.T) {
	tests := []struct {
		h    Horizon
		want string
	}{
		{Horizon1D, "1D"},
		{Horizon1M, "1M"},
		{Horizon6M, "6M"},
		{Horizon5Y, "5Y"},
	}
	for _, tt := range tests {
		if got := tt.h.Name(); got != tt.want {
			t.Errorf("Name(%s) = %q, want %q", tt.h, got, tt.want)
		}
	}
}

func TestHorizonDefaultInterval(t *testing.T) {
	tests := []struct {
		h    Horizon
		want Interval
	}{
		{Horizon1D, Interval5m},
		{Horizon5D, Interval30m},
		{Horizon1M, Interval1d},
		{Horizon5Y, Interval1d},
	}
	for _, tt := range tests {
		if got := tt.h.DefaultInterval(); got != tt.want {
			t.Errorf("DefaultInterval(%s) = %s, want %s", tt.h, got, tt.want)
		}
	}
}

func TestHorizonValidate(t *testing.T) {
	tests := []struct {
		name    string
		h       Horizon
		i       Interval
		wantErr bool
	}{
		{"intraday slot on a day horizon", Horizon1D, Interval5m, false},
		{"daily slot on a day horizon", Horizon1D, Interval1d, true},
		{"intraday slot on a year horizon", Horizon1Y, Interval5m, true},
		{"weekly slot on a year horizon", Horizon1Y, Interval1wk, false},
		{"empty interval is never valid", Horizon1Y, "", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.h.Validate(tt.i)
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate(%s, %s) error = %v, wantErr %v", tt.h, tt.i, err, tt.wantErr)
			}
		})
	}
}

func TestHorizonWindow(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		h    Horizon
		want time.Time
	}{
		{Horizon1D, time.Date(2024, 6, 14, 12, 0, 0, 0, time.UTC)},
		{Horizon5D, time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)},
		{Horizon1M, time.Date(2024, 5, 15, 12, 0, 0, 0, time.UTC)},
		{Horizon6M, time.Date(2023, 12, 15, 12, 0, 0, 0, time.UTC)},
		{Horizon1Y, time.Date(2023, 6, 15, 12, 0, 0, 0, time.UTC)},
		{Horizon5Y, time.Date(2019, 6, 15, 12, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		from, to := tt.h.Window(now)
		if !to.Equal(now) {
			t.Errorf("Window(%s) to = %v, want %v", tt.h, to, now)
		}
		if !from.Equal(tt.want) {
			t.Errorf("Window(%s) from = %v, want %v", tt.h, from, tt.want)
		}
	}
}

func TestParseInterval(t *testing.T) {
	tests := []struct {
		in      string
		want    Interval
		wantErr bool
	}{
		{"5m", Interval5m, false},
		{"60m", Interval1h, false},
		{"1h", Interval1h, false},
		{"1D", Interval1d, false},
		{"1wk", Interval1wk, false},
		{"3mo", Interval3mo, false},
		{"7m", "", true},
	}
	for _, tt := range tests {
		got, err := ParseInterval(tt.in)
		if (err != nil) != tt.wantErr {
			t.Fatalf("ParseInterval(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseInterval(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIntervalIntraday(t *testing.T) {
	if !Interval30m.Intraday() {
		t.Errorf("Intraday(30m) = false, want true")
	}
	if Interval1d.Intraday() {
		t.Errorf("Intraday(1d) = true, want false")
	}
}

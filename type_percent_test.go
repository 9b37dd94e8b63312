package stalker

import "testing"

func TestPercentString(t *testing.T) {
	tests := []struct {
		p    Percent
		want string
	}{
		{1.5, "1.50%"},
		{29.812, "29.81%"},
		{-3.2, "-3.20%"},
		{0, "0.00%"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("Percent(%v).String() = %q, want %q", float64(tt.p), got, tt.want)
		}
	}
}

func TestPercentSignedString(t *testing.T) {
	tests := []struct {
		p    Percent
		want string
	}{
		{29.812, "+29.81%"},
		{-3.2, "-3.20%"},
		{0, "-"},
		// a value too small to print is shown as no move at all
		{0.001, "-"},
	}
	for _, tt := range tests {
		if got := tt.p.SignedString(); got != tt.want {
			t.Errorf("Percent(%v).SignedString() = %q, want %q", float64(tt.p), got, tt.want)
		}
	}
}

func TestParsePercent(t *testing.T) {
	tests := []struct {
		s    string
		want Percent
	}{
		{"+29.81%", 29.81},
		{"1,061.42%", 1061.42},
		{" -3.2% ", -3.2},
		{"5", 5},
	}
	for _, tt := range tests {
		got, err := ParsePercent(tt.s)
		if err != nil {
			t.Errorf("ParsePercent(%q) unexpected error = %v", tt.s, err)
			continue
		}
		if !got.Equal(tt.want) {
			t.Errorf("ParsePercent(%q) = %v, want %v", tt.s, got, tt.want)
		}
	}
	if _, err := ParsePercent("n/a"); err == nil {
		t.Errorf("ParsePercent(%q) = nil error, want one", "n/a")
	}
}

func TestAsPercent(t *testing.T) {
	if got := AsPercent(0.05); !closeTo(float64(got), 5) {
		t.Errorf("AsPercent(0.05) = %v, want 5", got)
	}
	if got := AsPercent(-0.0123); !closeTo(float64(got), -1.23) {
		t.Errorf("AsPercent(-0.0123) = %v, want -1.23", got)
	}
}

func TestPercentEqual(t *testing.T) {
	if !Percent(1.00005).Equal(1) {
		t.Errorf("Equal() = false within precision")
	}
	if Percent(1.2).Equal(1) {
		t.Errorf("Equal() = true across a real difference")
	}
}

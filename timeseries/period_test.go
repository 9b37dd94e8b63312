package timeseries

import "testing"

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		give    string
		want    Period
		wantErr bool
	}{
		{"daily", Daily, false},
		{"day", Daily, false},
		{"Week", Weekly, false},
		{"  month ", Monthly, false},
		{"QUARTERLY", Quarterly, false},
		{"year", Yearly, false},
		{"fortnight", Daily, true},
		{"", Daily, true},
	}
	for _, tt := range tests {
		got, err := ParsePeriod(tt.give)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePeriod(%q) error = %v, wantErr %v", tt.give, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParsePeriod(%q) = %v, want %v", tt.give, got, tt.want)
		}
	}
}

func TestPeriodStrings(t *testing.T) {
	tests := []struct {
		p        Period
		want     string
		wantName string
	}{
		{Daily, "daily", "day"},
		{Weekly, "weekly", "week"},
		{Monthly, "monthly", "month"},
		{Quarterly, "quarterly", "quarter"},
		{Yearly, "yearly", "year"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("Period.String() = %q, want %q", got, tt.want)
		}
		if got := tt.p.Name(); got != tt.wantName {
			t.Errorf("Period.Name() = %q, want %q", got, tt.wantName)
		}
	}
}

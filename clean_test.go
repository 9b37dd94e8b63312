package stalker

import (
	"math"
	"testing"
	"time"
)

func TestFillMissing(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   []float64
	}{
		{"interior gap", []float64{1, nan, nan, 4}, []float64{1, 1, 1, 4}},
		{"leading gap is back-filled", []float64{nan, nan, 3, nan, 5}, []float64{3, 3, 3, 3, 5}},
		{"all NaN stays all NaN", []float64{nan, nan}, []float64{nan, nan}},
		{"nothing to fill", []float64{1, 2}, []float64{1, 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FillMissing(tt.values)
			if !sameFloats(got, tt.want) {
				t.Errorf("FillMissing() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDropNonTrading(t *testing.T) {
	day := func(d int) Bar {
		return Bar{Time: time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC)}
	}
	// Jan 5 2024 is a Friday, 6 and 7 the weekend, 8 the Monday.
	bars := []Bar{day(5), day(6), day(7), day(8)}
	got := DropNonTrading(bars)
	if len(got) != 2 || !got[0].Time.Equal(bars[0].Time) || !got[1].Time.Equal(bars[3].Time) {
		t.Errorf("DropNonTrading() kept %v, want Friday and Monday only", got)
	}
}

func TestIQRBounds(t *testing.T) {
	lower, upper := IQRBounds([]float64{1, 2, 3, 4, 100}, 3)
	if !closeTo(lower, -4) || !closeTo(upper, 10) {
		t.Errorf("IQRBounds() = (%v, %v), want (-4, 10)", lower, upper)
	}

	// too few points to call anything an outlier
	lower, upper = IQRBounds([]float64{1, 2, 3}, 3)
	if !math.IsInf(lower, -1) || !math.IsInf(upper, 1) {
		t.Errorf("IQRBounds() on 3 points = (%v, %v), want infinite fences", lower, upper)
	}
}

func TestMaskOutliersIQR(t *testing.T) {
	got := MaskOutliersIQR([]float64{1, 2, 3, 4, 100}, 3)
	want := []float64{1, 2, 3, 4, nan}
	if !sameFloats(got, want) {
		t.Errorf("MaskOutliersIQR() = %v, want %v", got, want)
	}
}

func TestClampOutliersIQR(t *testing.T) {
	got := ClampOutliersIQR([]float64{1, 2, 3, 4, 100}, 3)
	want := []float64{1, 2, 3, 4, 10}
	if !sameFloats(got, want) {
		t.Errorf("ClampOutliersIQR() = %v, want %v", got, want)
	}
}

func TestFlagReturnOutliers(t *testing.T) {
	returns := make([]float64, 0, 21)
	for i := 0; i < 10; i++ {
		returns = append(returns, 0.01)
	}
	for i := 0; i < 10; i++ {
		returns = append(returns, -0.01)
	}
	returns = append(returns, 0.5)

	flags := FlagReturnOutliers(returns)
	for i := 0; i < 20; i++ {
		if flags[i] {
			t.Errorf("FlagReturnOutliers() flagged ordinary return %d", i)
		}
	}
	if !flags[20] {
		t.Errorf("FlagReturnOutliers() missed the 50%% day")
	}

	// a flat series has zero deviation and flags nothing
	flags = FlagReturnOutliers([]float64{0.01, 0.01, 0.01})
	for i, f := range flags {
		if f {
			t.Errorf("FlagReturnOutliers() flagged %d on a flat series", i)
		}
	}
}

func TestClean(t *testing.T) {
	day := func(d int, close float64) Bar {
		return Bar{Time: time.Date(2024, 1, d, 0, 0, 0, 0, time.UTC), Close: close}
	}
	series := NewSeries("TEST", Interval1d)
	// Jan 8..12 is a full trading week, 13 a Saturday.
	for _, b := range []Bar{
		day(8, 100), day(9, 101), day(10, 99), day(11, 100),
		day(12, 1000), // a fat-fingered print
		day(13, 50),   // a phantom weekend row
		day(15, 102), day(16, 101), day(17, 100), day(18, 99),
	} {
		series.Append(b)
	}

	Clean(series)

	if series.Len() != 9 {
		t.Fatalf("Clean() kept %d bars, want 9 (weekend dropped)", series.Len())
	}
	closes := series.Closes()
	// the spike is masked and filled with the previous close
	want := []float64{100, 101, 99, 100, 100, 102, 101, 100, 99}
	if !sameFloats(closes, want) {
		t.Errorf("Clean() closes = %v, want %v", closes, want)
	}
}

func TestTableNormalize(t *testing.T) {
	d := func(day int) time.Time { return time.Date(2024, 3, day, 0, 0, 0, 0, time.UTC) }

	a := NewSeries("AAA", Interval1d)
	a.Append(Bar{Time: d(1), Close: 10})
	a.Append(Bar{Time: d(2), Close: 20})
	a.Append(Bar{Time: d(4), Close: 40}) // gap on the 3rd

	b := NewSeries("BBB", Interval1d)
	b.Append(Bar{Time: d(2), Close: 5}) // starts later
	b.Append(Bar{Time: d(3), Close: 6})

	table := NewTable()
	table.AddSeries(a)
	table.AddSeries(b)

	dates, columns := table.Normalize()
	if len(dates) != 4 {
		t.Fatalf("Normalize() axis has %d dates, want 4", len(dates))
	}

	// AAA's interior gap is interpolated
	wantA := []float64{10, 20, 30, 40}
	if !sameFloats(columns["AAA"], wantA) {
		t.Errorf("Normalize() AAA = %v, want %v", columns["AAA"], wantA)
	}
	// BBB's leading gap stays NaN, its trailing gap is forward-filled
	wantB := []float64{nan, 5, 6, 6}
	if !sameFloats(columns["BBB"], wantB) {
		t.Errorf("Normalize() BBB = %v, want %v", columns["BBB"], wantB)
	}
}

package timeseries

import "testing"

func TestAppend(t *testing.T) {
	h := new(History[string])
	d1, v1 := NewDate(2025, 07, 01), "25 Jul 1"
	d2, v2 := NewDate(2024, 07, 01), "24 Jul 1"

	// Append two values in reverse order and check that everything is
	// as expected at every step of the way.

	if h.Len() != 0 {
		t.Errorf("History.Len() = %v want 0", h.Len())
	}

	h.Append(d1, v1)
	if h.Len() != 1 {
		t.Errorf("Append(d1, v1).Len() = %v want 1", h.Len())
	}

	h.Append(d2, v2)
	if h.Len() != 2 {
		t.Errorf("Append(d2, v2).Len() = %v want 2", h.Len())
	}

	if h.days[1] != d1 {
		t.Errorf("history[1].day = %v want %v", h.days[1], d1)
	}
	if h.days[0] != d2 {
		t.Errorf("history[0].day = %v want %v", h.days[0], d2)
	}
	if h.values[1] != v1 {
		t.Errorf("history[1].value = %v want %v", h.values[1], v1)
	}
	if h.values[0] != v2 {
		t.Errorf("history[0].value = %v want %v", h.values[0], v2)
	}
}

func TestAppend_Overwrite(t *testing.T) {
	h := new(History[float64])
	on := NewDate(2025, 3, 14)
	h.Append(on, 1.0)
	h.Append(on, 2.0)

	if h.Len() != 1 {
		t.Fatalf("History.Len() = %v want 1", h.Len())
	}
	if v, ok := h.Get(on); !ok || v != 2.0 {
		t.Errorf("Get(%v) = %v, %v want 2.0, true", on, v, ok)
	}
}

func TestValueAsOf(t *testing.T) {
	h := new(History[float64])
	h.Append(NewDate(2025, 1, 6), 10)
	h.Append(NewDate(2025, 1, 7), 11)
	h.Append(NewDate(2025, 1, 10), 12)

	tests := []struct {
		name   string
		day    Date
		want   float64
		wantOk bool
	}{
		{"exact match", NewDate(2025, 1, 7), 11, true},
		{"gap falls back to previous", NewDate(2025, 1, 9), 11, true},
		{"after last", NewDate(2025, 2, 1), 12, true},
		{"before first", NewDate(2025, 1, 1), 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := h.ValueAsOf(tt.day)
			if ok != tt.wantOk || got != tt.want {
				t.Errorf("ValueAsOf(%v) = %v, %v want %v, %v", tt.day, got, ok, tt.want, tt.wantOk)
			}
		})
	}
}

func TestLatestOldest(t *testing.T) {
	h := new(History[float64])

	if d, _ := h.Latest(); !d.IsZero() {
		t.Errorf("empty Latest() day = %v want zero", d)
	}

	h.Append(NewDate(2025, 5, 2), 2)
	h.Append(NewDate(2025, 5, 1), 1)

	if d, v := h.Oldest(); d != NewDate(2025, 5, 1) || v != 1 {
		t.Errorf("Oldest() = %v, %v want 2025-05-01, 1", d, v)
	}
	if d, v := h.Latest(); d != NewDate(2025, 5, 2) || v != 2 {
		t.Errorf("Latest() = %v, %v want 2025-05-02, 2", d, v)
	}
}

func TestBetween(t *testing.T) {
	h := new(History[int])
	for day := 1; day <= 10; day++ {
		h.Append(NewDate(2025, 6, day), day)
	}

	var got []int
	for _, v := range h.Between(NewRange(NewDate(2025, 6, 3), NewDate(2025, 6, 5))) {
		got = append(got, v)
	}

	want := []int{3, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("Between() yielded %d values, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Between()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

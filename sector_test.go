package stalker

import "testing"

func TestParseSectorKey(t *testing.T) {
	tests := []struct {
		in      string
		want    SectorKey
		wantErr bool
	}{
		{"technology", Technology, false},
		{"Basic Materials", BasicMaterials, false},
		{"consumer-cyclical", ConsumerCyclical, false},
		{" Real Estate ", RealEstate, false},
		{"finance", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSectorKey(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseSectorKey(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseSectorKey(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestSectorName(t *testing.T) {
	if got := ConsumerDefensive.Name(); got != "Consumer Defensive" {
		t.Errorf("Name() = %q, want %q", got, "Consumer Defensive")
	}
	if got := Energy.Name(); got != "Energy" {
		t.Errorf("Name() = %q, want %q", got, "Energy")
	}
}

func TestKeyOf(t *testing.T) {
	// Name and KeyOf round-trip for every sector
	for _, k := range AllSectors() {
		if got := KeyOf(k.Name()); got != string(k) {
			t.Errorf("KeyOf(Name(%s)) = %q, want %q", k, got, k)
		}
	}
	if got := KeyOf("Aerospace & Defense"); got != "aerospace-&-defense" {
		t.Errorf("KeyOf() = %q, want %q", got, "aerospace-&-defense")
	}
}

func TestAllSectors(t *testing.T) {
	if got := len(AllSectors()); got != 11 {
		t.Errorf("AllSectors() has %d sectors, want 11", got)
	}
}

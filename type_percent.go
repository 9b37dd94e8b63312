package stalker

import (
	"fmt"
	"strconv"
	"strings"
)

// Percent is a percentage value: Percent(1.5) renders as "1.50%".
type Percent float64

// AsPercent converts a ratio (0.05 for 5%) into a Percent.
func AsPercent(ratio float64) Percent { return Percent(ratio * 100) }

// ParsePercent reads a rendered percentage ("+29.81%", "1,061.42%") back
// into a Percent.
func ParsePercent(s string) (Percent, error) {
	trimmed := strings.TrimSuffix(strings.TrimSpace(s), "%")
	trimmed = strings.ReplaceAll(trimmed, ",", "")
	v, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid percent %q", s)
	}
	return Percent(v), nil
}

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

func (p Percent) SignedString() string {
	res := fmt.Sprintf("%+.2f%%", p)
	if res == "+0.00%" {
		return "-"
	}
	return res
}

// Package renderer turns reports into markdown documents, one
// constructor per report.
package renderer

import (
	"fmt"
	"math"

	"github.com/stalking-stocks/stalker"
)

// number renders a float with two decimals, "-" when it is not defined.
func number(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "-"
	}
	return fmt.Sprintf("%.2f", v)
}

// price renders a float as money when the currency is known.
func price(v float64, currency string) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "-"
	}
	if currency == "" {
		return number(v)
	}
	return stalker.M(v, currency).String()
}

func percent(p stalker.Percent) string {
	if math.IsNaN(float64(p)) || math.IsInf(float64(p), 0) {
		return "-"
	}
	return p.String()
}

func signedPercent(p stalker.Percent) string {
	if math.IsNaN(float64(p)) || math.IsInf(float64(p), 0) {
		return "-"
	}
	return p.SignedString()
}

// largeNumber abbreviates volumes and market caps, "-" when unknown.
func largeNumber(v float64) string {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return "-"
	}
	return stalker.FormatLargeNumber(v)
}

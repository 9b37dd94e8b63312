package stalker

import (
	"fmt"
	"regexp"
	"strings"
)

// symbolRegex checks the general shape: starts alphanumeric; class
// shares, indices and pairs are covered by the extra charset.
var symbolRegex = regexp.MustCompile(`^[\^]?[A-Z0-9][A-Z0-9.\-=]{0,11}$`)

// Symbol is the quote-source identifier of a tradeable instrument.
//
// It follows the common vendor convention rather than an ISO standard,
// because that is what every upstream endpoint keys on:
//
//   - Plain equity ticker: "AAPL", "MSFT".
//   - Class shares use a '.' separator: "BRK.B".
//   - Indices carry a '^' prefix: "^GSPC".
//   - FX pairs carry an '=X' suffix: "EURUSD=X".
//   - Crypto pairs use a '-' separator: "BTC-USD".
//
// A Symbol is always upper-case; ParseSymbol normalizes case so that
// "aapl" and "AAPL" name the same instrument and the same data file.
type Symbol string

// ParseSymbol normalizes and validates a ticker symbol.
func ParseSymbol(s string) (Symbol, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return "", fmt.Errorf("empty symbol")
	}
	if !symbolRegex.MatchString(s) {
		return "", fmt.Errorf("invalid symbol %q: must be 1-12 chars of [A-Z0-9.^=-], starting alphanumeric", s)
	}
	return Symbol(s), nil
}

// MustSymbol is like ParseSymbol but panics on error.
func MustSymbol(s string) Symbol {
	sym, err := ParseSymbol(s)
	if err != nil {
		panic(err.Error())
	}
	return sym
}

// ParseSymbols parses a list of symbols, failing on the first invalid one.
func ParseSymbols(args []string) ([]Symbol, error) {
	symbols := make([]Symbol, 0, len(args))
	for _, a := range args {
		s, err := ParseSymbol(a)
		if err != nil {
			return nil, err
		}
		symbols = append(symbols, s)
	}
	return symbols, nil
}

func (s Symbol) String() string { return string(s) }

// IsIndex reports whether the symbol names an index rather than a
// tradeable instrument.
func (s Symbol) IsIndex() bool { return strings.HasPrefix(string(s), "^") }

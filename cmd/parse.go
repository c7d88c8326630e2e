package cmd

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// parseAmount parses a user typed amount like "1200.50", "1,200.50" or "₹1,200.50".
//
// Currency symbols, spaces, thousand separators are ignored. Whether the
// amount is acceptable is left to the domain.
func parseAmount(s string) (decimal.Decimal, error) {
	clean := strings.Map(func(r rune) rune {
		switch {
		case r == ',' || r == '_' || unicode.IsSpace(r) || unicode.Is(unicode.Sc, r):
			return -1
		default:
			return r
		}
	}, s)
	if clean == "" {
		return decimal.Zero, fmt.Errorf("missing amount")
	}
	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%q is not an amount, use a number like 1200.50", strings.TrimSpace(s))
	}
	return d, nil
}

package budget

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencyRates stores exchange rates, expressed as units of a foreign
// currency for one unit of the home currency. Rates are stored, not applied.
type CurrencyRates struct {
	rates map[string]decimal.Decimal
}

// NewCurrencyRates creates an empty table.
func NewCurrencyRates() *CurrencyRates {
	return &CurrencyRates{rates: make(map[string]decimal.Decimal)}
}

// Set records the rate of an ISO 4217 currency code. The latest write wins.
func (c *CurrencyRates) Set(code string, rate decimal.Decimal) error {
	code = strings.ToUpper(strings.TrimSpace(code))
	if !KnownCurrency(code) {
		return fmt.Errorf("cannot set rate for %q: %w", code, ErrUnknownCurrency)
	}
	if err := checkPositive(rate); err != nil {
		return fmt.Errorf("cannot set rate for %s: %w", code, err)
	}
	c.rates[code] = rate
	return nil
}

// Rate returns the rate of code, if any.
func (c *CurrencyRates) Rate(code string) (decimal.Decimal, bool) {
	v, ok := c.rates[strings.ToUpper(strings.TrimSpace(code))]
	return v, ok
}

// CurrencyRate is the exchange rate of a currency.
type CurrencyRate struct {
	Code string          `json:"code"`
	Rate decimal.Decimal `json:"rate"`
}

// All returns every rate sorted by code.
func (c *CurrencyRates) All() []CurrencyRate {
	out := make([]CurrencyRate, 0, len(c.rates))
	for _, code := range slices.Sorted(maps.Keys(c.rates)) {
		out = append(out, CurrencyRate{Code: code, Rate: c.rates[code]})
	}
	return out
}

package budget

import (
	"testing"

	"github.com/shopspring/decimal"
)

// INR is a helper for test to create rupee money from const
func INR(v float64) Money { return M(v, "INR") }

// dec is a helper for test to create a decimal from const
func dec(v float64) decimal.Decimal { return decimal.NewFromFloat(v) }

// mustRecord records a transaction or fails the test.
func mustRecord(t *testing.T, l *Ledger, kind Kind, amount float64, category string) {
	t.Helper()
	if _, err := l.Record(kind, dec(amount), category); err != nil {
		t.Fatalf("Record(%s, %v, %q) failed: %v", kind, amount, category, err)
	}
}

// categories extracts the category names.
func categories(cts []CategoryTotal) []string {
	out := make([]string, len(cts))
	for i, ct := range cts {
		out[i] = ct.Category
	}
	return out
}

package budget

import (
	"fmt"
	"strings"
)

// Kind tells whether a transaction brings money in or takes it out.
type Kind string

const (
	Income  Kind = "income"
	Expense Kind = "expense"
)

// ParseKind parses "income" or "expense", case insensitively.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case Income, Expense:
		return k, nil
	default:
		return "", fmt.Errorf("%q, want %q or %q: %w", s, Income, Expense, ErrInvalidKind)
	}
}

// Transaction is an immutable income or expense record.
type Transaction struct {
	Kind     Kind   `json:"kind"`
	Amount   Money  `json:"amount"`
	Category string `json:"category"`
}

// String returns "EXPENSE of ₹1,200.50 in food".
func (t Transaction) String() string {
	return fmt.Sprintf("%s of %s in %s", strings.ToUpper(string(t.Kind)), t.Amount, t.Category)
}

// normalizeCategory makes "Food " and "food" the same category.
func normalizeCategory(category string) string {
	return strings.ToLower(strings.TrimSpace(category))
}

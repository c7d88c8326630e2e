package budget

import (
	"fmt"
	"maps"
	"slices"

	"github.com/shopspring/decimal"
)

// BudgetLimits holds at most one spending ceiling per category. The latest write wins.
type BudgetLimits struct {
	currency string
	limits   map[string]decimal.Decimal
}

// NewBudgetLimits creates an empty table.
func NewBudgetLimits(currency string) *BudgetLimits {
	return &BudgetLimits{currency: currency, limits: make(map[string]decimal.Decimal)}
}

// Set sets the limit of a category.
func (b *BudgetLimits) Set(category string, limit decimal.Decimal) error {
	category = normalizeCategory(category)
	if category == "" {
		return fmt.Errorf("cannot set budget: %w", ErrMissingCategory)
	}
	if err := checkPositive(limit); err != nil {
		return fmt.Errorf("cannot set budget for %q: %w", category, err)
	}
	b.limits[category] = limit
	return nil
}

// Limit returns the limit of a category, if any.
func (b *BudgetLimits) Limit(category string) (Money, bool) {
	v, ok := b.limits[normalizeCategory(category)]
	return M(v, b.currency), ok
}

// CategoryLimit is the budget limit of a category.
type CategoryLimit struct {
	Category string `json:"category"`
	Limit    Money  `json:"limit"`
}

// All returns every limit sorted by category.
func (b *BudgetLimits) All() []CategoryLimit {
	out := make([]CategoryLimit, 0, len(b.limits))
	for _, category := range slices.Sorted(maps.Keys(b.limits)) {
		out = append(out, CategoryLimit{Category: category, Limit: M(b.limits[category], b.currency)})
	}
	return out
}

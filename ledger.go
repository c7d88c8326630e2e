package budget

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

// Ledger is the append-only list of transactions of a session.
//
// It also maintains, for every category that has at least one expense, the
// list of its expense amounts in recording order. Income never reaches that
// index.
type Ledger struct {
	currency     string
	transactions []Transaction
	expenses     map[string][]decimal.Decimal // by normalized category
	categories   []string                     // expense categories in first-seen order
}

// NewLedger creates an empty ledger in the given currency.
func NewLedger(currency string) *Ledger {
	return &Ledger{
		currency:     currency,
		transactions: make([]Transaction, 0),
		expenses:     make(map[string][]decimal.Decimal),
	}
}

// Currency returns the ledger currency.
func (l *Ledger) Currency() string { return l.currency }

// Record appends a transaction. Expenses are also indexed by category.
//
// The category is trimmed and lower-cased, amount must be strictly positive.
func (l *Ledger) Record(kind Kind, amount decimal.Decimal, category string) (Transaction, error) {
	if kind != Income && kind != Expense {
		return Transaction{}, fmt.Errorf("cannot record %q: %w", kind, ErrInvalidKind)
	}
	if err := checkPositive(amount); err != nil {
		return Transaction{}, fmt.Errorf("cannot record %s: %w", kind, err)
	}
	category = normalizeCategory(category)
	if category == "" {
		return Transaction{}, fmt.Errorf("cannot record %s: %w", kind, ErrMissingCategory)
	}

	tx := Transaction{Kind: kind, Amount: M(amount, l.currency), Category: category}
	l.transactions = append(l.transactions, tx)

	if kind == Expense {
		if _, exists := l.expenses[category]; !exists {
			l.categories = append(l.categories, category)
		}
		l.expenses[category] = append(l.expenses[category], amount)
	}
	return tx, nil
}

// Transactions returns all transactions in recording order.
func (l *Ledger) Transactions() []Transaction { return slices.Clone(l.transactions) }

// Len returns the number of transactions.
func (l *Ledger) Len() int { return len(l.transactions) }

// Expenses returns the expense amounts recorded for category, in recording order.
func (l *Ledger) Expenses(category string) []decimal.Decimal {
	return slices.Clone(l.expenses[normalizeCategory(category)])
}

// CategoryTotal returns the sum of the expenses recorded for category, zero if none.
func (l *Ledger) CategoryTotal(category string) Money {
	return M(decimal.Sum(decimal.Zero, l.expenses[normalizeCategory(category)]...), l.currency)
}

// CategoryTotal is the total spent in a category.
type CategoryTotal struct {
	Category string `json:"category"`
	Total    Money  `json:"total"`
}

// Totals returns the total of every category with at least one expense, in
// the order the categories were first seen.
func (l *Ledger) Totals() []CategoryTotal {
	totals := make([]CategoryTotal, 0, len(l.categories))
	for _, category := range l.categories {
		totals = append(totals, CategoryTotal{Category: category, Total: l.CategoryTotal(category)})
	}
	return totals
}

// TotalIncome returns the sum of all income.
func (l *Ledger) TotalIncome() Money { return l.sum(Income) }

// TotalExpense returns the sum of all expenses.
func (l *Ledger) TotalExpense() Money { return l.sum(Expense) }

// Balance returns income minus expenses.
func (l *Ledger) Balance() Money { return l.TotalIncome().Sub(l.TotalExpense()) }

func (l *Ledger) sum(kind Kind) Money {
	total := M(0, l.currency)
	for _, tx := range l.transactions {
		if tx.Kind == kind {
			total = total.Add(tx.Amount)
		}
	}
	return total
}

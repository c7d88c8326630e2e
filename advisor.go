package budget

import (
	"github.com/shopspring/decimal"
)

// DefaultHighSpendThreshold is the cost-cutting threshold used when the user does not choose one.
var DefaultHighSpendThreshold = decimal.NewFromInt(5000)

// Notice is an informational "no data" outcome of an advisor function. It is not an error.
type Notice string

const (
	NoticeNothingToSuggest Notice = "No expenses recorded yet to provide suggestions."
	NoticeNoneFlagged      Notice = "No major expenses found for cost-cutting. You're managing well!"
	NoticeWithinBudget     Notice = "Every category with a budget is within its limit."
)

// Advice lists categories with their total. Notice is set exactly when Categories is empty.
type Advice struct {
	Categories []CategoryTotal `json:"categories"`
	Notice     Notice          `json:"notice,omitempty"`
}

// Suggest reports the total spent in every category, to base a budget on.
func Suggest(l *Ledger) Advice {
	totals := l.Totals()
	if len(totals) == 0 {
		return Advice{Notice: NoticeNothingToSuggest}
	}
	return Advice{Categories: totals}
}

// FlagHighSpend reports the categories whose total is strictly greater than threshold.
func FlagHighSpend(l *Ledger, threshold decimal.Decimal) Advice {
	var flagged []CategoryTotal
	for _, ct := range l.Totals() {
		if ct.Total.Decimal().GreaterThan(threshold) {
			flagged = append(flagged, ct)
		}
	}
	if len(flagged) == 0 {
		return Advice{Notice: NoticeNoneFlagged}
	}
	return Advice{Categories: flagged}
}

// Overrun is a category that spent more than its budget limit.
type Overrun struct {
	Category string `json:"category"`
	Total    Money  `json:"total"`
	Limit    Money  `json:"limit"`
}

// Excess returns how much was spent above the limit.
func (o Overrun) Excess() Money { return o.Total.Sub(o.Limit) }

// BudgetStatus lists the overruns. Notice is set exactly when Overruns is empty.
type BudgetStatus struct {
	Overruns []Overrun `json:"overruns"`
	Notice   Notice    `json:"notice,omitempty"`
}

// OverBudget compares every category limit with what was spent in that category.
func OverBudget(l *Ledger, limits *BudgetLimits) BudgetStatus {
	var overruns []Overrun
	for _, cl := range limits.All() {
		total := l.CategoryTotal(cl.Category)
		if total.GreaterThan(cl.Limit) {
			overruns = append(overruns, Overrun{Category: cl.Category, Total: total, Limit: cl.Limit})
		}
	}
	if len(overruns) == 0 {
		return BudgetStatus{Notice: NoticeWithinBudget}
	}
	return BudgetStatus{Overruns: overruns}
}

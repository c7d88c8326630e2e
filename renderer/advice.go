package renderer

import (
	"fmt"

	"github.com/etnz/budget"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"
)

func categoryTable(doc *md.Markdown, header string, totals []budget.CategoryTotal) {
	rows := make([][]string, 0, len(totals))
	for _, ct := range totals {
		rows = append(rows, []string{ct.Category, ct.Total.String()})
	}
	doc.Table(md.TableSet{
		Header:    []string{"Category", header},
		Rows:      rows,
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
	})
}

// Suggestions renders the spending of every category as a budget basis.
func Suggestions(a budget.Advice) string {
	doc := newDoc("Smart Budgeting Suggestions")
	if a.Notice != "" {
		return empty(doc, string(a.Notice))
	}
	doc.PlainText("Suggested budget allocation based on your expenses:").LF()
	categoryTable(doc, "Total Spent", a.Categories)
	return doc.String()
}

// CostCutting renders the categories that spent more than threshold.
func CostCutting(a budget.Advice, threshold budget.Money) string {
	doc := newDoc("Cost-Cutting Suggestions")
	if a.Notice != "" {
		return empty(doc, string(a.Notice))
	}
	doc.PlainTextf("Consider cutting costs in these categories, they spent more than %s:", threshold).LF()
	categoryTable(doc, "Total Spent", a.Categories)
	return doc.String()
}

// BudgetStatus renders the categories that went over their limit.
func BudgetStatus(s budget.BudgetStatus) string {
	doc := newDoc("Budget Status")
	if s.Notice != "" {
		return empty(doc, string(s.Notice))
	}
	rows := make([][]string, 0, len(s.Overruns))
	for _, o := range s.Overruns {
		rows = append(rows, []string{o.Category, o.Total.String(), o.Limit.String(), o.Excess().String()})
	}
	doc.Table(md.TableSet{
		Header:    []string{"Category", "Spent", "Limit", "Over by"},
		Rows:      rows,
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
	})
	return doc.String()
}

// Limits renders the budget limit of every category.
func Limits(limits []budget.CategoryLimit) string {
	doc := newDoc("Budget Limits")
	if len(limits) == 0 {
		return empty(doc, "No budget set yet.")
	}
	rows := make([][]string, 0, len(limits))
	for _, cl := range limits {
		rows = append(rows, []string{cl.Category, cl.Limit.String()})
	}
	doc.Table(md.TableSet{
		Header:    []string{"Category", "Limit"},
		Rows:      rows,
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
	})
	return doc.String()
}

// Rates renders the exchange rates as units of foreign currency for one unit of home.
func Rates(home string, rates []budget.CurrencyRate) string {
	doc := newDoc("Currency Rates")
	if len(rates) == 0 {
		return empty(doc, "No currency rate set yet.")
	}
	one := budget.M(1, home)
	rows := make([][]string, 0, len(rates))
	for _, r := range rates {
		rows = append(rows, []string{r.Code, fmt.Sprintf("%s = %s %s", one, rateString(r.Rate), r.Code)})
	}
	doc.Table(md.TableSet{
		Header:    []string{"Currency", "Rate"},
		Rows:      rows,
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
	})
	return doc.String()
}

// rateString keeps every significant digit of a rate, at least two decimals.
func rateString(rate decimal.Decimal) string {
	if rate.Exponent() > -2 {
		return rate.StringFixed(2)
	}
	return rate.String()
}

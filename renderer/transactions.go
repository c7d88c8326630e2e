package renderer

import (
	"strconv"
	"strings"

	"github.com/etnz/budget"
	md "github.com/nao1215/markdown"
)

// Transactions renders the transaction log in recording order, followed by
// the income, expense and balance totals.
func Transactions(l *budget.Ledger) string {
	doc := newDoc("All Transactions")
	txs := l.Transactions()
	if len(txs) == 0 {
		return empty(doc, "No transactions recorded yet.")
	}

	rows := make([][]string, 0, len(txs))
	for i, tx := range txs {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			strings.ToUpper(string(tx.Kind)),
			tx.Amount.String(),
			tx.Category,
		})
	}
	doc.Table(md.TableSet{
		Header:    []string{"#", "Kind", "Amount", "Category"},
		Rows:      rows,
		Alignment: []md.TableAlignment{md.AlignRight, md.AlignLeft, md.AlignRight, md.AlignLeft},
	})
	doc.LF()
	doc.Table(md.TableSet{
		Header: []string{"Total", "Amount"},
		Rows: [][]string{
			{"Income", l.TotalIncome().String()},
			{"Expense", l.TotalExpense().String()},
			{"Balance", l.Balance().String()},
		},
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
	})
	return doc.String()
}

// Recorded confirms a transaction.
func Recorded(tx budget.Transaction) string {
	return "Transaction added: " + tx.String() + "."
}

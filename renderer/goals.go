package renderer

import (
	"github.com/etnz/budget"
)

// Goals renders the savings goals, largest target first.
func Goals(goals []budget.SavingsGoal) string {
	items := make([]string, 0, len(goals))
	for _, g := range goals {
		items = append(items, g.Name+" - "+g.Target.String())
	}
	doc := newDoc("Savings Goals")
	if len(items) == 0 {
		return empty(doc, "No savings goal yet.")
	}
	doc.OrderedList(items...)
	return doc.String()
}

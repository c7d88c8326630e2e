package renderer

import (
	"fmt"

	"github.com/etnz/budget"
	"github.com/etnz/budget/date"
	md "github.com/nao1215/markdown"
)

// Reminders renders the bill reminders, earliest due date first, with their
// status relative to today.
func Reminders(reminders []budget.BillReminder, today date.Date) string {
	doc := newDoc("Bill Reminders")
	if len(reminders) == 0 {
		return empty(doc, "No bill reminder yet.")
	}
	rows := make([][]string, 0, len(reminders))
	for _, r := range reminders {
		rows = append(rows, []string{r.Name, r.Due.String(), dueStatus(today.DaysUntil(r.Due))})
	}
	doc.Table(md.TableSet{
		Header: []string{"Bill", "Due", "Status"},
		Rows:   rows,
	})
	return doc.String()
}

func dueStatus(days int) string {
	switch {
	case days < -1:
		return fmt.Sprintf("**overdue by %d days**", -days)
	case days == -1:
		return "**overdue by 1 day**"
	case days == 0:
		return "due today"
	case days == 1:
		return "due tomorrow"
	default:
		return fmt.Sprintf("in %d days", days)
	}
}

// Package budget provides the in-memory core of a single user personal
// finance manager.
//
// A Session owns every container for the duration of one run:
//   - Ledger: the append-only list of income and expense transactions, and a
//     per-category index of expense amounts used for budgeting.
//   - BudgetLimits and CurrencyRates: latest-write-wins tables.
//   - GoalSet: savings goals ordered by descending target amount.
//   - ReminderSet: bill reminders ordered by ascending due date.
//   - EMIs, recurring expenses and investments: a FIFO queue, a fixed
//     capacity ring that evicts the oldest entry, and a LIFO stack.
//
// The advisor functions (Suggest, FlagHighSpend, OverBudget) are pure reads
// over a Ledger. Nothing in this package prints, logs or persists anything:
// every operation returns its result or an error for the caller to display.
package budget

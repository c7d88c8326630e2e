package budget

import (
	"fmt"
	"strings"

	"github.com/etnz/budget/collection"
	"github.com/etnz/budget/date"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	// DefaultCurrency is the home currency of a session when none is configured.
	DefaultCurrency = "INR"
	// DefaultRecurringCapacity is the number of recurring expenses kept by a session.
	DefaultRecurringCapacity = 10
)

// Options configures a new Session. Zero values select the defaults.
type Options struct {
	Currency          string // home currency ISO code
	RecurringCapacity int    // number of recurring expenses kept
}

// Session owns all the state of one run of the finance manager.
//
// A Session is not safe for concurrent use.
type Session struct {
	id          uuid.UUID
	currency    string
	ledger      *Ledger
	limits      *BudgetLimits
	rates       *CurrencyRates
	goals       *GoalSet
	bills       *ReminderSet
	emis        collection.Queue[string]
	recurring   *collection.Ring[string]
	investments collection.Stack[string]
}

// NewSession creates an empty session.
func NewSession(opts Options) *Session {
	if opts.Currency == "" {
		opts.Currency = DefaultCurrency
	}
	if opts.RecurringCapacity <= 0 {
		opts.RecurringCapacity = DefaultRecurringCapacity
	}
	cur := strings.ToUpper(opts.Currency)
	return &Session{
		id:        uuid.New(),
		currency:  cur,
		ledger:    NewLedger(cur),
		limits:    NewBudgetLimits(cur),
		rates:     NewCurrencyRates(),
		goals:     NewGoalSet(),
		bills:     NewReminderSet(),
		recurring: collection.NewRing[string](opts.RecurringCapacity),
	}
}

// ID identifies the session, e.g. in logs.
func (s *Session) ID() uuid.UUID { return s.id }

// Currency returns the home currency.
func (s *Session) Currency() string { return s.currency }

// Ledger gives read access to the transactions.
func (s *Session) Ledger() *Ledger { return s.ledger }

// RecordTransaction records an income or an expense.
func (s *Session) RecordTransaction(kind Kind, amount decimal.Decimal, category string) (Transaction, error) {
	return s.ledger.Record(kind, amount, category)
}

// Transactions returns all transactions in recording order.
func (s *Session) Transactions() []Transaction { return s.ledger.Transactions() }

// SetBudgetLimit sets the spending limit of a category.
func (s *Session) SetBudgetLimit(category string, limit decimal.Decimal) error {
	return s.limits.Set(category, limit)
}

// BudgetLimits returns every limit sorted by category.
func (s *Session) BudgetLimits() []CategoryLimit { return s.limits.All() }

// AddSavingsGoal adds a goal of target in the home currency.
func (s *Session) AddSavingsGoal(name string, target decimal.Decimal) error {
	return s.goals.Add(SavingsGoal{Name: name, Target: M(target, s.currency)})
}

// SavingsGoals returns the goals, largest target first.
func (s *Session) SavingsGoals() []SavingsGoal { return s.goals.Goals() }

// EnqueueEMI adds an installment obligation at the back of the queue.
func (s *Session) EnqueueEMI(description string) error {
	description = strings.TrimSpace(description)
	if description == "" {
		return fmt.Errorf("cannot add EMI: %w", ErrMissingName)
	}
	s.emis.Enqueue(description)
	return nil
}

// EMIs returns the pending EMIs, oldest first.
func (s *Session) EMIs() []string { return s.emis.Items() }

// AddBillReminder adds a bill due on due.
func (s *Session) AddBillReminder(name string, due date.Date) error {
	return s.bills.Add(BillReminder{Name: name, Due: due})
}

// BillReminders returns the reminders, earliest due date first.
func (s *Session) BillReminders() []BillReminder { return s.bills.Reminders() }

// OverdueBills returns the reminders due before today.
func (s *Session) OverdueBills(today date.Date) []BillReminder { return s.bills.Overdue(today) }

// BillsDue returns the reminders due in r.
func (s *Session) BillsDue(r date.Range) []BillReminder { return s.bills.Within(r) }

// SetCurrencyRate records how many units of code one unit of the home currency buys.
func (s *Session) SetCurrencyRate(code string, rate decimal.Decimal) error {
	return s.rates.Set(code, rate)
}

// CurrencyRates returns every rate sorted by code.
func (s *Session) CurrencyRates() []CurrencyRate { return s.rates.All() }

// SuggestBudget reports the total spent per category.
func (s *Session) SuggestBudget() Advice { return Suggest(s.ledger) }

// FlagHighSpend reports the categories that spent more than threshold.
func (s *Session) FlagHighSpend(threshold decimal.Decimal) Advice {
	return FlagHighSpend(s.ledger, threshold)
}

// OverBudget reports the categories that spent more than their limit.
func (s *Session) OverBudget() BudgetStatus { return OverBudget(s.ledger, s.limits) }

// RecurringLabel renders a recurring expense as "Netflix - ₹499.00".
func RecurringLabel(name string, amount Money) string {
	return fmt.Sprintf("%s - %s", strings.TrimSpace(name), amount)
}

// AddRecurringExpense keeps track of a recurring expense. When the session
// already holds its capacity of recurring expenses, the oldest is dropped.
func (s *Session) AddRecurringExpense(name string, amount decimal.Decimal) (string, error) {
	if strings.TrimSpace(name) == "" {
		return "", fmt.Errorf("cannot add recurring expense: %w", ErrMissingName)
	}
	if err := checkPositive(amount); err != nil {
		return "", fmt.Errorf("cannot add recurring expense %q: %w", name, err)
	}
	label := RecurringLabel(name, M(amount, s.currency))
	s.recurring.Enqueue(label)
	return label, nil
}

// RecurringExpenses returns the recurring expenses kept, oldest first.
func (s *Session) RecurringExpenses() []string { return s.recurring.Items() }

// RecurringCapacity returns how many recurring expenses are kept.
func (s *Session) RecurringCapacity() int { return s.recurring.Cap() }

// PushInvestment records an investment name. Duplicates are kept.
func (s *Session) PushInvestment(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("cannot add investment: %w", ErrMissingName)
	}
	s.investments.Push(name)
	return nil
}

// Investments returns the investments, most recent first.
func (s *Session) Investments() []string { return s.investments.Items() }

package cmd

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/etnz/budget"
	"github.com/etnz/budget/agent"
	"github.com/etnz/budget/date"
	"github.com/etnz/budget/renderer"
	"github.com/google/subcommands"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

type menuCmd struct{}

func (*menuCmd) Name() string     { return "menu" }
func (*menuCmd) Synopsis() string { return "run the interactive finance manager" }
func (*menuCmd) Usage() string {
	return `menu

Run the interactive finance manager. Options are chosen by number, one per
line, on the standard input. The session ends with option 0 or at the end of
the input. Nothing is saved.

See 'topic menu' for the list of options.
`
}

func (c *menuCmd) SetFlags(f *flag.FlagSet) {}

func (c *menuCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing logger:", err)
		return subcommands.ExitFailure
	}
	defer logger.Sync()

	s := budget.NewSession(cfg.SessionOptions())
	m := NewMenu(s, cfg, os.Stdin, os.Stdout, logger)
	if err := m.Run(ctx); err != nil {
		logger.Error("menu failed", zap.Error(err))
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// Menu is the interactive text menu over a session.
type Menu struct {
	session *budget.Session
	cfg     Config
	in      *bufio.Reader
	out     io.Writer
	log     *zap.Logger
	options []option

	// Today tells the current date, to read relative due dates and mark overdue bills.
	Today func() date.Date

	client  *genai.Client
	advisor *agent.Expert
}

// option is a numbered menu entry.
type option struct {
	key   int
	label string
	run   func(ctx context.Context) error
}

// NewMenu creates a menu reading the user's answers from in and printing to out.
func NewMenu(s *budget.Session, cfg Config, in io.Reader, out io.Writer, logger *zap.Logger) *Menu {
	m := &Menu{
		session: s,
		cfg:     cfg,
		in:      bufio.NewReader(in),
		out:     out,
		log:     logger.With(zap.String("session_id", s.ID().String())),
		Today:   date.Today,
	}
	m.options = []option{
		{1, "Add Income or Expense", m.addTransaction},
		{2, "View All Transactions", m.viewTransactions},
		{3, "Set Budget for a Category", m.setBudget},
		{4, "Track Savings Goal", m.addGoal},
		{5, "Manage EMI", m.addEMI},
		{6, "Bill Payment Reminder", m.addBill},
		{7, "Multi-Currency Budgeting", m.setRate},
		{8, "Smart Budgeting Suggestions", m.suggest},
		{9, "Cost-Cutting Suggestions", m.costCutting},
		{10, "Recurring Expenses", m.addRecurring},
		{11, "Investment Tracker", m.addInvestment},
		{12, "Budget Status", m.budgetStatus},
	}
	if cfg.AssistantEnabled() {
		m.options = append(m.options, option{13, "Ask the Assistant", m.assist})
	}
	return m
}

// Run shows the menu and runs the chosen options until the user exits or
// the input ends.
func (m *Menu) Run(ctx context.Context) error {
	items := make([]renderer.MenuItem, 0, len(m.options)+1)
	for _, o := range m.options {
		items = append(items, renderer.MenuItem{Key: o.key, Label: o.label})
	}
	items = append(items, renderer.MenuItem{Key: 0, Label: "Exit"})
	last := m.options[len(m.options)-1].key

	m.log.Debug("menu started", zap.String("currency", m.session.Currency()))
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		m.print(renderer.Menu(items))
		answer, err := m.ask(fmt.Sprintf("Choose an option (0-%d): ", last))
		if errors.Is(err, io.EOF) {
			m.log.Debug("end of input")
			return nil
		}
		if err != nil {
			return err
		}

		key, err := strconv.Atoi(answer)
		if err == nil && key == 0 {
			m.print("Exiting the application. Stay financially smart!")
			m.log.Debug("menu exited")
			return nil
		}
		o, found := m.option(key)
		if err != nil || !found {
			m.log.Info("invalid option", zap.String("answer", answer))
			m.print("❌ Invalid option. Try again.")
			continue
		}

		err = o.run(ctx)
		m.log.Debug("menu action", zap.Int("option", o.key), zap.String("action", o.label), zap.Error(err))
		switch {
		case errors.Is(err, io.EOF):
			return nil
		case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
			return err
		case err != nil:
			m.log.Info("input rejected", zap.Int("option", o.key), zap.Error(err))
			m.print("❌ " + err.Error())
		}
	}
}

func (m *Menu) option(key int) (option, bool) {
	for _, o := range m.options {
		if o.key == key {
			return o, true
		}
	}
	return option{}, false
}

// print writes markdown to the output.
func (m *Menu) print(markdown string) { printMarkdown(m.out, m.cfg.Style, markdown) }

// ask prints the prompt and reads a line. It returns io.EOF when the input has ended.
func (m *Menu) ask(prompt string) (string, error) {
	fmt.Fprint(m.out, prompt)
	line, err := m.in.ReadString('\n')
	if errors.Is(err, io.EOF) && line != "" {
		err = nil
	}
	if err != nil {
		fmt.Fprintln(m.out)
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// askAmount asks for an amount in the home currency.
func (m *Menu) askAmount(prompt string) (budget.Money, error) {
	answer, err := m.ask(fmt.Sprintf("%s in %s: ", prompt, m.session.Currency()))
	if err != nil {
		return budget.Money{}, err
	}
	d, err := parseAmount(answer)
	if err != nil {
		return budget.Money{}, err
	}
	return budget.M(d, m.session.Currency()), nil
}

func (m *Menu) addTransaction(ctx context.Context) error {
	answer, err := m.ask("Is this an income or expense? (Enter 'income' or 'expense'): ")
	if err != nil {
		return err
	}
	kind, err := budget.ParseKind(answer)
	if err != nil {
		return err
	}
	amount, err := m.askAmount("Enter amount (e.g., 1200.50)")
	if err != nil {
		return err
	}
	hint := "'food', 'travel', 'utilities'"
	if kind == budget.Income {
		hint = "'freelance', 'job'"
	}
	category, err := m.ask(fmt.Sprintf("Enter category (e.g., %s): ", hint))
	if err != nil {
		return err
	}
	tx, err := m.session.RecordTransaction(kind, amount.Decimal(), category)
	if err != nil {
		return err
	}
	m.print("✅ " + renderer.Recorded(tx))
	return nil
}

func (m *Menu) viewTransactions(ctx context.Context) error {
	m.print(renderer.Transactions(m.session.Ledger()))
	return nil
}

func (m *Menu) setBudget(ctx context.Context) error {
	category, err := m.ask("Enter expense category name (e.g., 'food', 'rent', 'utilities'): ")
	if err != nil {
		return err
	}
	limit, err := m.askAmount("Enter monthly budget limit")
	if err != nil {
		return err
	}
	if err := m.session.SetBudgetLimit(category, limit.Decimal()); err != nil {
		return err
	}
	m.print(fmt.Sprintf("✅ Budget set for %s: %s.", strings.ToLower(strings.TrimSpace(category)), limit))
	m.print(renderer.Limits(m.session.BudgetLimits()))
	return nil
}

func (m *Menu) addGoal(ctx context.Context) error {
	name, err := m.ask("Enter goal name (e.g., 'Vacation to Goa'): ")
	if err != nil {
		return err
	}
	target, err := m.askAmount("Enter target amount (e.g., 100000)")
	if err != nil {
		return err
	}
	if err := m.session.AddSavingsGoal(name, target.Decimal()); err != nil {
		return err
	}
	m.print("✅ Savings goal added.")
	m.print(renderer.Goals(m.session.SavingsGoals()))
	return nil
}

func (m *Menu) addEMI(ctx context.Context) error {
	description, err := m.ask("Enter EMI description (e.g., 'Home Loan'): ")
	if err != nil {
		return err
	}
	if err := m.session.EnqueueEMI(description); err != nil {
		return err
	}
	m.print("✅ EMI added: " + description)
	m.print(renderer.EMIs(m.session.EMIs()))
	return nil
}

func (m *Menu) addBill(ctx context.Context) error {
	name, err := m.ask("Enter bill name (e.g., 'Electricity Bill'): ")
	if err != nil {
		return err
	}
	answer, err := m.ask("Enter due date (yyyy-mm-dd, or +3d, +2w, +1m): ")
	if err != nil {
		return err
	}
	today := m.Today()
	due, err := date.ParseFrom(today, answer)
	if err != nil {
		return err
	}
	if err := m.session.AddBillReminder(name, due); err != nil {
		return err
	}
	m.print(fmt.Sprintf("✅ Bill reminder set for %s on %s.", strings.TrimSpace(name), due))
	m.print(renderer.Reminders(m.session.BillReminders(), today))
	return nil
}

func (m *Menu) setRate(ctx context.Context) error {
	code, err := m.ask("Enter currency code (e.g., 'USD', 'EUR'): ")
	if err != nil {
		return err
	}
	answer, err := m.ask(fmt.Sprintf("Enter exchange rate for %s: ", budget.M(1, m.session.Currency())))
	if err != nil {
		return err
	}
	rate, err := parseAmount(answer)
	if err != nil {
		return err
	}
	if err := m.session.SetCurrencyRate(code, rate); err != nil {
		return err
	}
	m.print(fmt.Sprintf("✅ Currency rate for %s set to %s.", strings.ToUpper(strings.TrimSpace(code)), rate))
	m.print(renderer.Rates(m.session.Currency(), m.session.CurrencyRates()))
	return nil
}

func (m *Menu) suggest(ctx context.Context) error {
	m.print(renderer.Suggestions(m.session.SuggestBudget()))
	return nil
}

func (m *Menu) costCutting(ctx context.Context) error {
	threshold := budget.M(m.cfg.HighSpendThreshold, m.session.Currency())
	answer, err := m.ask(fmt.Sprintf("Flag categories that spent more than (press enter for %s): ", threshold))
	if err != nil {
		return err
	}
	if answer != "" {
		d, err := parseAmount(answer)
		if err != nil {
			return err
		}
		if d.IsNegative() {
			return fmt.Errorf("%s must not be negative: %w", d, budget.ErrInvalidAmount)
		}
		threshold = budget.M(d, m.session.Currency())
	}
	m.print(renderer.CostCutting(m.session.FlagHighSpend(threshold.Decimal()), threshold))
	return nil
}

func (m *Menu) addRecurring(ctx context.Context) error {
	name, err := m.ask("Enter recurring expense name (e.g., 'Netflix Subscription'): ")
	if err != nil {
		return err
	}
	amount, err := m.askAmount("Enter amount for the recurring expense")
	if err != nil {
		return err
	}
	label, err := m.session.AddRecurringExpense(name, amount.Decimal())
	if err != nil {
		return err
	}
	m.print("✅ Recurring expense added: " + label + ".")
	m.print(renderer.Recurring(m.session.RecurringExpenses(), m.session.RecurringCapacity()))
	return nil
}

func (m *Menu) addInvestment(ctx context.Context) error {
	name, err := m.ask("Enter investment name (e.g., 'Stocks', 'Mutual Funds'): ")
	if err != nil {
		return err
	}
	if err := m.session.PushInvestment(name); err != nil {
		return err
	}
	m.print("✅ Investment added: " + strings.TrimSpace(name) + ".")
	m.print(renderer.Investments(m.session.Investments()))
	return nil
}

func (m *Menu) budgetStatus(ctx context.Context) error {
	m.print(renderer.BudgetStatus(m.session.OverBudget()))
	return nil
}

// assist runs the assistant until the user says bye. The conversation goes
// on where it stopped the next time.
func (m *Menu) assist(ctx context.Context) error {
	if m.client == nil {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: m.cfg.APIKey, Backend: genai.BackendGeminiAPI})
		if err != nil {
			return fmt.Errorf("cannot initialize the assistant: %w", err)
		}
		m.client = client
		m.advisor = agent.NewAdvisor(m.session, m.cfg.Model, m.Today, m.cfg.HighSpendThreshold, m.log)
	}
	a := agent.NewFromReader(m.out, m.in, m.advisor)
	a.Print = func(w io.Writer, markdown string) { printMarkdown(w, m.cfg.Style, markdown) }
	if err := a.Run(ctx, m.client); err != nil {
		return fmt.Errorf("assistant failed: %w", err)
	}
	return nil
}

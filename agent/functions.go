package agent

import (
	"context"
	"fmt"

	"github.com/etnz/budget"
	"github.com/etnz/budget/date"
	"github.com/etnz/budget/docs"
	"github.com/etnz/budget/renderer"
	"github.com/shopspring/decimal"
	"google.golang.org/genai"
)

// Func implements a simple Function
type Func struct {
	Decl *genai.FunctionDeclaration
	Func func(ctx context.Context, args map[string]any) (map[string]any, error)
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }

// Call runs the function and wraps its result or error in a response.
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	out, err := f.Func(ctx, args)
	if err != nil {
		return errorResponse(id, f.Decl.Name, err)
	}
	return &genai.FunctionResponse{ID: id, Name: f.Decl.Name, Response: out}
}

// markdown is the schema of a markdown report response.
func markdown(description string) *genai.Schema {
	return &genai.Schema{Type: genai.TypeString, Description: description}
}

// noArgs is the parameters schema of a function without arguments.
var noArgs = &genai.Schema{Type: genai.TypeObject, Properties: map[string]*genai.Schema{}}

// SessionFunctions returns the read only functions on s. today tells the
// current date, threshold is the default cost-cutting threshold.
func SessionFunctions(s *budget.Session, today func() date.Date, threshold decimal.Decimal) []Function {
	return []Function{
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "Transactions",
				Description: "Transactions lists every income and expense recorded in this session, in recording order, with the total income, total expense and balance.",
				Parameters:  noArgs,
				Response:    markdown("A markdown table of the transactions followed by the totals."),
			},
			Func: func(ctx context.Context, args map[string]any) (map[string]any, error) {
				return map[string]any{
					"output": renderer.Transactions(s.Ledger()),
					"data": map[string]any{
						"transactions": s.Transactions(),
						"income":       s.Ledger().TotalIncome(),
						"expense":      s.Ledger().TotalExpense(),
						"balance":      s.Ledger().Balance(),
					},
				}, nil
			},
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "Spending",
				Description: "Spending reports the total spent in every expense category. Income is not spending.",
				Parameters:  noArgs,
				Response:    markdown("A markdown table of the total spent per category."),
			},
			Func: func(ctx context.Context, args map[string]any) (map[string]any, error) {
				a := s.SuggestBudget()
				return map[string]any{"output": renderer.Suggestions(a), "data": a}, nil
			},
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "HighSpend",
				Description: "HighSpend lists the expense categories whose total is strictly greater than a threshold, candidates for cost cutting.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"threshold": {
							Type:        genai.TypeNumber,
							Description: fmt.Sprintf("The amount in %s above which a category is flagged. Defaults to %s.", s.Currency(), threshold),
						},
					},
				},
				Response: markdown("A markdown table of the flagged categories, or a notice when none is flagged."),
			},
			Func: func(ctx context.Context, args map[string]any) (map[string]any, error) {
				t, err := parseThreshold(args, threshold)
				if err != nil {
					return nil, err
				}
				a := s.FlagHighSpend(t)
				return map[string]any{
					"output": renderer.CostCutting(a, budget.M(t, s.Currency())),
					"data":   a,
				}, nil
			},
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "BudgetStatus",
				Description: "BudgetStatus lists the budget limit of every category and the categories that spent more than their limit.",
				Parameters:  noArgs,
				Response:    markdown("Two markdown tables: the limits and the overruns."),
			},
			Func: func(ctx context.Context, args map[string]any) (map[string]any, error) {
				status := s.OverBudget()
				return map[string]any{
					"output": renderer.Limits(s.BudgetLimits()) + "\n\n" + renderer.BudgetStatus(status),
					"data": map[string]any{
						"limits": s.BudgetLimits(),
						"status": status,
					},
				}, nil
			},
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "SavingsGoals",
				Description: "SavingsGoals lists the savings goals, largest target first.",
				Parameters:  noArgs,
				Response:    markdown("A markdown list of the goals."),
			},
			Func: func(ctx context.Context, args map[string]any) (map[string]any, error) {
				goals := s.SavingsGoals()
				return map[string]any{"output": renderer.Goals(goals), "data": goals}, nil
			},
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "Bills",
				Description: "Bills lists the bill reminders, earliest due date first, with their status: overdue, due today or due in some days.",
				Parameters: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"period": {
							Type:        genai.TypeString,
							Description: "Only list bills due in the current day, week, month, quarter or year. 'from' and 'to' take precedence over it.",
							Enum:        []string{"day", "week", "month", "quarter", "year"},
						},
						"from": {
							Type:        genai.TypeString,
							Description: "Only list bills due on or after this date.\n\n" + must(docs.GetTopic("dates")),
						},
						"to": {
							Type:        genai.TypeString,
							Description: "Only list bills due on or before this date, same format as 'from'.",
						},
					},
				},
				Response: markdown("A markdown table of the bills."),
			},
			Func: func(ctx context.Context, args map[string]any) (map[string]any, error) {
				r, err := parseRange(args, today())
				if err != nil {
					return nil, err
				}
				bills := s.BillsDue(r)
				return map[string]any{"output": renderer.Reminders(bills, today()), "data": bills}, nil
			},
		},
		&Func{
			Decl: &genai.FunctionDeclaration{
				Name:        "Commitments",
				Description: "Commitments lists the pending EMIs (oldest first), the recurring expenses (oldest first), the investments (latest first) and the currency exchange rates.",
				Parameters:  noArgs,
				Response:    markdown("Markdown lists of EMIs, recurring expenses, investments and a table of rates."),
			},
			Func: func(ctx context.Context, args map[string]any) (map[string]any, error) {
				return map[string]any{
					"output": renderer.EMIs(s.EMIs()) + "\n\n" +
						renderer.Recurring(s.RecurringExpenses(), s.RecurringCapacity()) + "\n\n" +
						renderer.Investments(s.Investments()) + "\n\n" +
						renderer.Rates(s.Currency(), s.CurrencyRates()),
					"data": map[string]any{
						"emis":        s.EMIs(),
						"recurring":   s.RecurringExpenses(),
						"investments": s.Investments(),
						"rates":       s.CurrencyRates(),
					},
				}, nil
			},
		},
	}
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

// parseThreshold reads the optional 'threshold', def when missing.
func parseThreshold(args map[string]any, def decimal.Decimal) (decimal.Decimal, error) {
	v, ok := args["threshold"]
	if !ok || v == nil {
		return def, nil
	}
	f, ok := v.(float64)
	if !ok {
		return decimal.Zero, fmt.Errorf("argument 'threshold' is not a number as expected but %T", v)
	}
	if f < 0 {
		return decimal.Zero, fmt.Errorf("argument 'threshold' must not be negative, got %v", f)
	}
	return decimal.NewFromFloat(f), nil
}

// parseRange reads the optional 'period', 'from' and 'to' arguments. Missing bounds are open.
func parseRange(args map[string]any, today date.Date) (date.Range, error) {
	r := date.Range{From: date.New(1, 1, 1), To: date.New(9999, 12, 31)}
	if v, ok := args["period"]; ok && v != nil {
		str, ok := v.(string)
		if !ok {
			return r, fmt.Errorf("argument 'period' is not a string as expected but %T", v)
		}
		p, err := date.ParsePeriod(str)
		if err != nil {
			return r, fmt.Errorf("argument 'period' is invalid: %w", err)
		}
		r = date.NewRange(today, p)
	}
	for name, bound := range map[string]*date.Date{"from": &r.From, "to": &r.To} {
		v, ok := args[name]
		if !ok || v == nil {
			continue
		}
		str, ok := v.(string)
		if !ok {
			return r, fmt.Errorf("argument '%s' is not a string as expected but %T", name, v)
		}
		d, err := date.ParseFrom(today, str)
		if err != nil {
			return r, fmt.Errorf("argument '%s' must be a valid date got %q: %w", name, str, err)
		}
		*bound = d
	}
	return r, nil
}

package agent

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/budget"
	"github.com/etnz/budget/date"
	"github.com/shopspring/decimal"
	"google.golang.org/genai"
)

var today = date.New(2025, 7, 10)

func newSession(t *testing.T) *budget.Session {
	t.Helper()
	s := budget.NewSession(budget.Options{})
	must := func(err error) {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
	}
	for _, tx := range []struct {
		kind     budget.Kind
		amount   int64
		category string
	}{
		{budget.Expense, 1200, "food"},
		{budget.Expense, 4000, "food"},
		{budget.Income, 50000, "job"},
		{budget.Expense, 800, "travel"},
	} {
		_, err := s.RecordTransaction(tx.kind, decimal.NewFromInt(tx.amount), tx.category)
		must(err)
	}
	must(s.SetBudgetLimit("travel", decimal.NewFromInt(500)))
	must(s.AddSavingsGoal("Laptop", decimal.NewFromInt(60000)))
	must(s.AddSavingsGoal("Vacation", decimal.NewFromInt(100000)))
	must(s.AddBillReminder("Rent", date.New(2025, 7, 1)))
	must(s.AddBillReminder("Internet", date.New(2025, 8, 2)))
	must(s.EnqueueEMI("Home Loan"))
	must(s.PushInvestment("Gold"))
	must(s.PushInvestment("Stocks"))
	must(s.SetCurrencyRate("USD", decimal.RequireFromString("0.012")))
	return s
}

// call invokes a function through the library and returns its response as decoded JSON.
func call(t *testing.T, lib Library, name string, args map[string]any) any {
	t.Helper()
	resp := lib(context.Background(), &genai.FunctionCall{ID: "1", Name: name, Args: args})
	if resp.ID != "1" || resp.Name != name {
		t.Errorf("%s response id/name = %q/%q", name, resp.ID, resp.Name)
	}
	raw, err := json.Marshal(resp.Response)
	if err != nil {
		t.Fatalf("%s response cannot be marshalled: %v", name, err)
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		t.Fatal(err)
	}
	return v
}

func TestSessionFunctions(t *testing.T) {
	s := newSession(t)
	lib := NewLibrary(SessionFunctions(s, func() date.Date { return today }, budget.DefaultHighSpendThreshold))

	testCases := []struct {
		function string
		args     map[string]any
		path     string
		want     any
	}{
		{"Transactions", nil, "$.data.balance.amount", "44000"},
		{"Transactions", nil, "$.data.transactions[2].kind", "income"},
		{"Spending", nil, "$.data.categories[0].total.amount", "5200"},
		{"Spending", nil, "$.data.categories[1].category", "travel"},
		{"HighSpend", nil, "$.data.categories[0].category", "food"},
		{"HighSpend", map[string]any{"threshold": 500.0}, "$.data.categories[1].category", "travel"},
		{"HighSpend", map[string]any{"threshold": 10000.0}, "$.data.notice", string(budget.NoticeNoneFlagged)},
		{"BudgetStatus", nil, "$.data.status.overruns[0].limit.amount", "500"},
		{"SavingsGoals", nil, "$.data[0].name", "Vacation"},
		{"Bills", nil, "$.data[0].name", "Rent"},
		{"Bills", map[string]any{"from": "today"}, "$.data[0].name", "Internet"},
		{"Bills", map[string]any{"to": "+1w"}, "$.data[0].due", "2025-07-01"},
		{"Bills", map[string]any{"period": "quarter"}, "$.data[1].name", "Internet"},
		{"Bills", map[string]any{"period": "year", "from": "today"}, "$.data[0].name", "Internet"},
		{"Commitments", nil, "$.data.investments[0]", "Stocks"},
		{"Commitments", nil, "$.data.rates[0].code", "USD"},
	}
	for _, tc := range testCases {
		t.Run(tc.function+tc.path, func(t *testing.T) {
			v := call(t, lib, tc.function, tc.args)
			got, err := jsonpath.Get(tc.path, v)
			if err != nil {
				t.Fatalf("jsonpath.Get(%q) failed: %v\nresponse: %v", tc.path, err, v)
			}
			if got != tc.want {
				t.Errorf("%s %s = %v, want %v", tc.function, tc.path, got, tc.want)
			}
			output, err := jsonpath.Get("$.output", v)
			if err != nil {
				t.Fatalf("%s has no output: %v", tc.function, err)
			}
			if md, _ := output.(string); !strings.HasPrefix(md, "## ") {
				t.Errorf("%s output is not a markdown report: %q", tc.function, output)
			}
		})
	}
}

func TestSessionFunctions_Threshold(t *testing.T) {
	lib := NewLibrary(SessionFunctions(newSession(t), func() date.Date { return today }, decimal.NewFromInt(500)))

	testCases := []struct {
		args map[string]any
		path string
		want any
	}{
		{nil, "$.data.categories[1].category", "travel"},
		{nil, "$.data.categories[1].total.amount", "800"},
		{map[string]any{"threshold": 10000.0}, "$.data.notice", string(budget.NoticeNoneFlagged)},
	}
	for _, tc := range testCases {
		t.Run(tc.path, func(t *testing.T) {
			v := call(t, lib, "HighSpend", tc.args)
			got, err := jsonpath.Get(tc.path, v)
			if err != nil {
				t.Fatalf("jsonpath.Get(%q) failed: %v\nresponse: %v", tc.path, err, v)
			}
			if got != tc.want {
				t.Errorf("HighSpend %s = %v, want %v", tc.path, got, tc.want)
			}
		})
	}
}

func TestSessionFunctions_Errors(t *testing.T) {
	lib := NewLibrary(SessionFunctions(newSession(t), func() date.Date { return today }, budget.DefaultHighSpendThreshold))

	testCases := []struct {
		function string
		args     map[string]any
	}{
		{"Unknown", nil},
		{"HighSpend", map[string]any{"threshold": "a lot"}},
		{"HighSpend", map[string]any{"threshold": -1.0}},
		{"Bills", map[string]any{"from": "someday"}},
		{"Bills", map[string]any{"to": 42.0}},
		{"Bills", map[string]any{"period": "fortnight"}},
	}
	for _, tc := range testCases {
		t.Run(tc.function, func(t *testing.T) {
			v := call(t, lib, tc.function, tc.args)
			got, err := jsonpath.Get("$.error", v)
			if err != nil {
				t.Fatalf("response has no error: %v", v)
			}
			if msg, _ := got.(string); msg == "" {
				t.Errorf("error = %v, want a message", got)
			}
		})
	}
}

func TestSessionFunctions_Declarations(t *testing.T) {
	decls := NewDeclaration(SessionFunctions(budget.NewSession(budget.Options{}), date.Today, budget.DefaultHighSpendThreshold))
	seen := make(map[string]bool)
	for _, d := range decls {
		if seen[d.Name] {
			t.Errorf("function %q is declared twice", d.Name)
		}
		seen[d.Name] = true
		if d.Description == "" || d.Parameters == nil || d.Response == nil {
			t.Errorf("function %q is not fully declared", d.Name)
		}
	}
	if len(decls) != 7 {
		t.Errorf("len(declarations) = %d, want 7", len(decls))
	}
}

func TestNewAdvisor(t *testing.T) {
	s := budget.NewSession(budget.Options{Currency: "USD"})
	a := NewAdvisor(s, "", func() date.Date { return today }, budget.DefaultHighSpendThreshold, nil)
	if a.ModelName != DefaultModel {
		t.Errorf("ModelName = %q, want %q", a.ModelName, DefaultModel)
	}
	if a.Started() {
		t.Errorf("Started() = true before Start")
	}
	instructions := a.Config.SystemInstruction.Parts[0].Text
	if !strings.Contains(instructions, "Amounts are in USD") {
		t.Errorf("system instruction does not state the currency:\n%s", instructions)
	}
	if !strings.Contains(instructions, "Today is 2025-07-10.") {
		t.Errorf("system instruction does not state the injected date:\n%s", instructions)
	}
}

package agent

import (
	"github.com/etnz/budget"
	"github.com/etnz/budget/date"
	"github.com/etnz/budget/docs"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// DefaultModel is the model used when none is configured.
const DefaultModel = "gemini-2.5-flash"

// NewAdvisor creates the budgeting expert reading s. today tells the current
// date and threshold is the default cost-cutting threshold, as in the menu.
func NewAdvisor(s *budget.Session, model string, today func() date.Date, threshold decimal.Decimal, logger *zap.Logger) *Expert {
	if model == "" {
		model = DefaultModel
	}
	lib := SessionFunctions(s, today, threshold)
	return &Expert{
		Name: "Advisor",
		Description: `This is the budget advisor. It reads the user's session: transactions,
		spending per category, budgets, savings goals, bills and commitments.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a personal budgeting advisor. The user keeps track of income, expenses,
				budgets, savings goals, EMIs, bills, recurring expenses and investments in a
				session that you can read with the Tools. You cannot change it.

				Ground every figure you give in the Tools' responses, never guess amounts.
				Amounts are in ` + s.Currency() + ` unless stated otherwise. Today is ` + today().String() + `.
				Answer in markdown, briefly, and suggest concrete actions when the user overspends.

				Here is how the user's application works:

				` + must(docs.GetTopics("menu", "budgeting")),
			}}},
		},
		Library: NewLibrary(lib),
		Logger:  logger,
	}
}

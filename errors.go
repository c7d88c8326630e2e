package budget

import "errors"

var (
	// ErrInvalidAmount reports a monetary amount that is not strictly positive or not finite.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrMissingCategory reports a blank category.
	ErrMissingCategory = errors.New("missing category")
	// ErrMissingName reports a blank goal, bill, EMI, recurring expense or investment name.
	ErrMissingName = errors.New("missing name")
	// ErrMissingDate reports a bill reminder without a due date.
	ErrMissingDate = errors.New("missing due date")
	// ErrUnknownCurrency reports a currency code that is not an ISO 4217 code.
	ErrUnknownCurrency = errors.New("unknown currency")
	// ErrInvalidKind reports a transaction kind other than income or expense.
	ErrInvalidKind = errors.New("invalid transaction kind")
)

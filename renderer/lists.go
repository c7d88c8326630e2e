package renderer

// EMIs renders the EMI queue, oldest first.
func EMIs(emis []string) string {
	return bullets("Current EMI Queue", "No EMI yet.", emis)
}

// Investments renders the investments, most recent first.
func Investments(investments []string) string {
	return bullets("Investment Portfolio", "No investment yet.", investments)
}

// Recurring renders the recurring expenses kept, oldest first.
func Recurring(items []string, capacity int) string {
	doc := newDoc("Recurring Expenses")
	if len(items) == 0 {
		return empty(doc, "No recurring expense yet.")
	}
	doc.BulletList(items...).LF()
	doc.PlainTextf("_Keeping the last %d of at most %d recurring expenses._", len(items), capacity)
	return doc.String()
}

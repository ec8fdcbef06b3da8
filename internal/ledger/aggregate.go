package ledger

import "github.com/jayakosta/Personal-Finance-Tracker/internal/models"

// CategoryTotals groups expense transactions by category and sums their
// amounts. Income rows never contribute; categories absent from the
// input never appear in the result. Map order is unspecified.
func CategoryTotals(txs []models.Transaction) map[string]float64 {
	totals := make(map[string]float64)
	for _, t := range txs {
		if t.Kind == models.KindExpense {
			totals[t.Category] += t.Amount
		}
	}
	return totals
}

// IncomeExpenseTotals sums amounts by kind. Rows whose kind is neither
// income nor expense are excluded from both sums.
func IncomeExpenseTotals(txs []models.Transaction) (income, expense float64) {
	for _, t := range txs {
		switch t.Kind {
		case models.KindIncome:
			income += t.Amount
		case models.KindExpense:
			expense += t.Amount
		}
	}
	return income, expense
}

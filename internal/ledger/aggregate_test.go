package ledger

import (
	"math"
	"testing"
	"time"

	"github.com/jayakosta/Personal-Finance-Tracker/internal/models"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestCategoryTotals_ExpensesOnly(t *testing.T) {
	txs := []models.Transaction{
		{Amount: 100, Category: "food", Kind: "expense", Date: day("2024-01-01")},
		{Amount: 500, Category: "", Kind: "income", Date: day("2024-01-02")},
	}

	totals := CategoryTotals(txs)

	if len(totals) != 1 {
		t.Fatalf("CategoryTotals len = %d, want 1: %v", len(totals), totals)
	}
	if totals["food"] != 100 {
		t.Errorf("totals[food] = %f, want 100", totals["food"])
	}
}

func TestCategoryTotals_SumsPerCategory(t *testing.T) {
	txs := []models.Transaction{
		{Amount: 10.50, Category: "food", Kind: "expense"},
		{Amount: 4.50, Category: "food", Kind: "expense"},
		{Amount: 30, Category: "rent", Kind: "expense"},
		{Amount: 99, Category: "food", Kind: "income"}, // income never in breakdown
	}

	totals := CategoryTotals(txs)

	if got := totals["food"]; got != 15 {
		t.Errorf("totals[food] = %f, want 15", got)
	}
	if got := totals["rent"]; got != 30 {
		t.Errorf("totals[rent] = %f, want 30", got)
	}
	if len(totals) != 2 {
		t.Errorf("CategoryTotals len = %d, want 2", len(totals))
	}
}

func TestCategoryTotals_Empty(t *testing.T) {
	totals := CategoryTotals(nil)
	if len(totals) != 0 {
		t.Errorf("CategoryTotals(nil) = %v, want empty map", totals)
	}
}

func TestCategoryTotals_UnknownKindExcluded(t *testing.T) {
	txs := []models.Transaction{
		{Amount: 42, Category: "misc", Kind: "transfer"},
	}
	totals := CategoryTotals(txs)
	if len(totals) != 0 {
		t.Errorf("unknown kind leaked into breakdown: %v", totals)
	}
}

func TestIncomeExpenseTotals(t *testing.T) {
	txs := []models.Transaction{
		{Amount: 100, Category: "food", Kind: "expense", Date: day("2024-01-01")},
		{Amount: 500, Category: "", Kind: "income", Date: day("2024-01-02")},
	}

	income, expense := IncomeExpenseTotals(txs)

	if income != 500 {
		t.Errorf("income = %f, want 500", income)
	}
	if expense != 100 {
		t.Errorf("expense = %f, want 100", expense)
	}
}

func TestIncomeExpenseTotals_Empty(t *testing.T) {
	income, expense := IncomeExpenseTotals(nil)
	if income != 0 || expense != 0 {
		t.Errorf("IncomeExpenseTotals(nil) = (%f, %f), want (0, 0)", income, expense)
	}
}

func TestIncomeExpenseTotals_UnknownKindExcluded(t *testing.T) {
	txs := []models.Transaction{
		{Amount: 10, Kind: "income"},
		{Amount: 20, Kind: "expense"},
		{Amount: 1000, Kind: "refund"},
	}

	income, expense := IncomeExpenseTotals(txs)

	if income != 10 || expense != 20 {
		t.Errorf("got (%f, %f), want (10, 20)", income, expense)
	}
}

// income + expense must equal the sum over recognized kinds, whatever
// the mix of rows.
func TestTotals_SumConsistency(t *testing.T) {
	txs := []models.Transaction{
		{Amount: 12.34, Category: "a", Kind: "expense"},
		{Amount: 56.78, Category: "b", Kind: "expense"},
		{Amount: 90.12, Category: "c", Kind: "income"},
		{Amount: -5, Category: "a", Kind: "expense"},
		{Amount: 77, Category: "d", Kind: "weird"},
	}

	income, expense := IncomeExpenseTotals(txs)

	var want float64
	for _, tx := range txs {
		if tx.Kind == "income" || tx.Kind == "expense" {
			want += tx.Amount
		}
	}
	if math.Abs((income+expense)-want) > 1e-9 {
		t.Errorf("income+expense = %f, want %f", income+expense, want)
	}

	var catSum float64
	for _, v := range CategoryTotals(txs) {
		catSum += v
	}
	if math.Abs(catSum-expense) > 1e-9 {
		t.Errorf("sum of category totals = %f, want expense total %f", catSum, expense)
	}
}

package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/jayakosta/Personal-Finance-Tracker/internal/models"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func sampleTxs() []models.Transaction {
	return []models.Transaction{
		{Amount: 100, Category: "food", Kind: "expense", Date: day("2024-01-01")},
		{Amount: 500, Category: "", Kind: "income", Date: day("2024-01-02")},
		{Amount: 42.50, Category: "transport", Kind: "expense", Date: day("2024-01-03")},
	}
}

func TestCategoryPieChart(t *testing.T) {
	png, err := CategoryPieChart(map[string]float64{"food": 100, "transport": 42.5})
	if err != nil {
		t.Fatalf("CategoryPieChart: %v", err)
	}
	if !bytes.HasPrefix(png, pngMagic) {
		t.Errorf("output is not a PNG (%d bytes)", len(png))
	}
}

func TestCategoryPieChart_EmptyRendersPlaceholder(t *testing.T) {
	png, err := CategoryPieChart(map[string]float64{})
	if err != nil {
		t.Fatalf("CategoryPieChart(empty) must render a placeholder, got error: %v", err)
	}
	if !bytes.HasPrefix(png, pngMagic) {
		t.Errorf("placeholder is not a PNG")
	}
}

func TestCategoryPieChart_NonPositiveOnlyRendersPlaceholder(t *testing.T) {
	png, err := CategoryPieChart(map[string]float64{"refunds": -12})
	if err != nil {
		t.Fatalf("CategoryPieChart(negative only): %v", err)
	}
	if !bytes.HasPrefix(png, pngMagic) {
		t.Errorf("placeholder is not a PNG")
	}
}

func TestFinancialReport(t *testing.T) {
	pdf, err := FinancialReport(sampleTxs(), 500, 142.50)
	if err != nil {
		t.Fatalf("FinancialReport: %v", err)
	}
	if !bytes.HasPrefix(pdf, []byte("%PDF")) {
		t.Errorf("output is not a PDF")
	}
}

func TestFinancialReport_Paginates(t *testing.T) {
	var txs []models.Transaction
	for i := 0; i < 200; i++ {
		txs = append(txs, models.Transaction{
			Amount: 1, Category: "food", Kind: "expense", Date: day("2024-01-01"),
		})
	}

	short, err := FinancialReport(nil, 0, 0)
	if err != nil {
		t.Fatalf("FinancialReport(empty): %v", err)
	}
	long, err := FinancialReport(txs, 0, 200)
	if err != nil {
		t.Fatalf("FinancialReport(200 rows): %v", err)
	}
	// 200 lines cannot fit one Letter page; the document must have grown
	// by whole pages, not been truncated.
	if len(long) <= len(short) {
		t.Errorf("long report (%d bytes) not larger than empty report (%d bytes)", len(long), len(short))
	}
	if !bytes.Contains(long, []byte("/Count")) {
		t.Errorf("long report has no page tree")
	}
}

func TestTransactionsCSV(t *testing.T) {
	out, err := TransactionsCSV(sampleTxs(), 500, 142.50)
	if err != nil {
		t.Fatalf("TransactionsCSV: %v", err)
	}
	body := string(out)

	for _, want := range []string{
		"Date,Type,Category,Amount",
		"2024-01-01,expense,food,100.00",
		"2024-01-02,income,,500.00",
		"Total Income,500.00",
		"Total Expenses,142.50",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("csv missing %q:\n%s", want, body)
		}
	}
}

func TestTransactionsXLSX(t *testing.T) {
	out, err := TransactionsXLSX(sampleTxs(), 500, 142.50)
	if err != nil {
		t.Fatalf("TransactionsXLSX: %v", err)
	}
	// xlsx is a zip archive
	if !bytes.HasPrefix(out, []byte{'P', 'K'}) {
		t.Errorf("output is not an xlsx archive")
	}
}

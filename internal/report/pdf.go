package report

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/jayakosta/Personal-Finance-Tracker/internal/models"
)

// FinancialReport renders the transaction list plus income/expense
// totals as an in-memory PDF. The transaction lines continue onto
// additional pages with the same layout when they pass the bottom
// margin. Nothing touches the filesystem, so concurrent exports cannot
// collide.
func FinancialReport(txs []models.Transaction, totalIncome, totalExpense float64) ([]byte, error) {
	pdf := fpdf.New("P", "pt", "Letter", "")
	pdf.SetAutoPageBreak(true, 50)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.CellFormat(0, 22, "Monthly Financial Report", "", 1, "C", false, 0, "")
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(0, 16, fmt.Sprintf("Total Income: %.2f", totalIncome), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 16, fmt.Sprintf("Total Expenses: %.2f", totalExpense), "", 1, "L", false, 0, "")
	pdf.Ln(20)

	pdf.CellFormat(0, 16, "Transactions:", "", 1, "L", false, 0, "")
	pdf.Ln(4)

	for _, t := range txs {
		line := fmt.Sprintf("%s - %s - %.2f (%s)",
			t.Date.Format("2006-01-02"), t.Category, t.Amount, t.Kind)
		pdf.CellFormat(0, 16, line, "", 1, "L", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

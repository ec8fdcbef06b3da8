package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"

	"github.com/jayakosta/Personal-Finance-Tracker/internal/models"
)

var exportHeader = []string{"Date", "Type", "Category", "Amount"}

func amountString(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

// TransactionsCSV renders the transaction table with a totals footer.
func TransactionsCSV(txs []models.Transaction, totalIncome, totalExpense float64) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, t := range txs {
		row := []string{
			t.Date.Format("2006-01-02"),
			t.Kind,
			t.Category,
			amountString(t.Amount),
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row: %w", err)
		}
	}
	_ = w.Write([]string{})
	_ = w.Write([]string{"", "", "Total Income", amountString(totalIncome)})
	_ = w.Write([]string{"", "", "Total Expenses", amountString(totalExpense)})

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}

// TransactionsXLSX renders the same table as an xlsx workbook.
func TransactionsXLSX(txs []models.Transaction, totalIncome, totalExpense float64) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	for i, h := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, fmt.Errorf("header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, fmt.Errorf("write header: %w", err)
		}
	}

	row := 2
	for _, t := range txs {
		_ = f.SetCellValue(sheet, fmt.Sprintf("A%d", row), t.Date.Format("2006-01-02"))
		_ = f.SetCellValue(sheet, fmt.Sprintf("B%d", row), t.Kind)
		_ = f.SetCellValue(sheet, fmt.Sprintf("C%d", row), t.Category)
		_ = f.SetCellValue(sheet, fmt.Sprintf("D%d", row), t.Amount)
		row++
	}

	row++ // blank spacer line
	_ = f.SetCellValue(sheet, fmt.Sprintf("C%d", row), "Total Income")
	_ = f.SetCellValue(sheet, fmt.Sprintf("D%d", row), totalIncome)
	row++
	_ = f.SetCellValue(sheet, fmt.Sprintf("C%d", row), "Total Expenses")
	_ = f.SetCellValue(sheet, fmt.Sprintf("D%d", row), totalExpense)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/jayakosta/Personal-Finance-Tracker/internal/ledger"
	"github.com/jayakosta/Personal-Finance-Tracker/internal/models"
	"github.com/jayakosta/Personal-Finance-Tracker/internal/report"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ExportHandler streams per-request report artifacts. Everything is
// generated in memory; nothing is shared between requests.
type ExportHandler struct {
	Store *ledger.Store
	Log   zerolog.Logger
}

func NewExportHandler(store *ledger.Store, log zerolog.Logger) *ExportHandler {
	return &ExportHandler{Store: store, Log: log}
}

func (h *ExportHandler) load(c *gin.Context) ([]models.Transaction, float64, float64, bool) {
	user, ok := currentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return nil, 0, 0, false
	}
	txs, err := h.Store.ListForUser(c.Request.Context(), user.ID)
	if err != nil {
		h.Log.Error().Err(err).Uint("user_id", user.ID).Msg("list transactions failed")
		c.String(http.StatusInternalServerError, "Failed to load transactions")
		return nil, 0, 0, false
	}
	income, expense := ledger.IncomeExpenseTotals(txs)
	return txs, income, expense, true
}

func attachment(c *gin.Context, name string) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name))
}

// ExportPDF streams the financial report as a PDF attachment.
func (h *ExportHandler) ExportPDF(c *gin.Context) {
	txs, income, expense, ok := h.load(c)
	if !ok {
		return
	}

	out, err := report.FinancialReport(txs, income, expense)
	if err != nil {
		h.Log.Error().Err(err).Msg("render pdf failed")
		c.String(http.StatusInternalServerError, "Failed to generate report")
		return
	}

	attachment(c, "financial_report.pdf")
	c.Data(http.StatusOK, "application/pdf", out)
}

// ExportCSV streams the transaction table as CSV.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	txs, income, expense, ok := h.load(c)
	if !ok {
		return
	}

	out, err := report.TransactionsCSV(txs, income, expense)
	if err != nil {
		h.Log.Error().Err(err).Msg("render csv failed")
		c.String(http.StatusInternalServerError, "Failed to generate report")
		return
	}

	attachment(c, fmt.Sprintf("transactions_%s.csv", time.Now().Format("20060102")))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", out)
}

// ExportXLSX streams the transaction table as an Excel workbook.
func (h *ExportHandler) ExportXLSX(c *gin.Context) {
	txs, income, expense, ok := h.load(c)
	if !ok {
		return
	}

	out, err := report.TransactionsXLSX(txs, income, expense)
	if err != nil {
		h.Log.Error().Err(err).Msg("render xlsx failed")
		c.String(http.StatusInternalServerError, "Failed to generate report")
		return
	}

	attachment(c, fmt.Sprintf("transactions_%s.xlsx", time.Now().Format("20060102")))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", out)
}

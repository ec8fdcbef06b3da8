package handler

import (
	"encoding/base64"
	"errors"
	"net/http"
	"strconv"

	"github.com/jayakosta/Personal-Finance-Tracker/internal/ledger"
	"github.com/jayakosta/Personal-Finance-Tracker/internal/models"
	"github.com/jayakosta/Personal-Finance-Tracker/internal/report"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// TransactionHandler serves the dashboard and transaction entry.
type TransactionHandler struct {
	Store *ledger.Store
	Log   zerolog.Logger
}

func NewTransactionHandler(store *ledger.Store, log zerolog.Logger) *TransactionHandler {
	return &TransactionHandler{Store: store, Log: log}
}

// transactionRow is the template-facing view of one ledger record.
type transactionRow struct {
	Date     string
	Category string
	Kind     string
	Amount   string
}

func toRows(txs []models.Transaction) []transactionRow {
	rows := make([]transactionRow, 0, len(txs))
	for _, t := range txs {
		rows = append(rows, transactionRow{
			Date:     t.Date.Format("2006-01-02"),
			Category: t.Category,
			Kind:     t.Kind,
			Amount:   strconv.FormatFloat(t.Amount, 'f', 2, 64),
		})
	}
	return rows
}

// Dashboard lists the user's transactions and renders the spending
// breakdown chart inline as a base64 PNG.
func (h *TransactionHandler) Dashboard(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	txs, err := h.Store.ListForUser(c.Request.Context(), user.ID)
	if err != nil {
		h.Log.Error().Err(err).Uint("user_id", user.ID).Msg("list transactions failed")
		c.String(http.StatusInternalServerError, "Failed to load transactions")
		return
	}

	var chartB64 string
	png, err := report.CategoryPieChart(ledger.CategoryTotals(txs))
	if err != nil {
		// dashboard still renders without the chart
		h.Log.Error().Err(err).Uint("user_id", user.ID).Msg("render chart failed")
	} else {
		chartB64 = base64.StdEncoding.EncodeToString(png)
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"email":        user.Email,
		"chart":        chartB64,
		"transactions": toRows(txs),
	})
}

// AddTransaction records one transaction from the entry form. Bad input
// surfaces as a 400 with a plain message; success redirects back to the
// dashboard.
func (h *TransactionHandler) AddTransaction(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	in := ledger.Input{
		Amount:   c.PostForm("amount"),
		Category: c.PostForm("category"),
		Kind:     c.PostForm("type"),
		Date:     c.PostForm("date"),
	}

	if _, err := h.Store.Record(c.Request.Context(), user.ID, in); err != nil {
		var verr *ledger.ValidationError
		if errors.As(err, &verr) {
			c.String(http.StatusBadRequest, verr.Msg)
			return
		}
		h.Log.Error().Err(err).Uint("user_id", user.ID).Msg("record transaction failed")
		c.String(http.StatusInternalServerError, "Failed to save transaction")
		return
	}

	c.Redirect(http.StatusFound, "/dashboard")
}

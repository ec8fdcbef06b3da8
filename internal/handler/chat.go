package handler

import (
	"net/http"
	"strings"

	"github.com/jayakosta/Personal-Finance-Tracker/internal/chat"
	"github.com/jayakosta/Personal-Finance-Tracker/internal/ledger"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ChatHandler serves the spending-question form and its answers.
type ChatHandler struct {
	Store  *ledger.Store
	Bridge *chat.Bridge
	Log    zerolog.Logger
}

func NewChatHandler(store *ledger.Store, bridge *chat.Bridge, log zerolog.Logger) *ChatHandler {
	return &ChatHandler{Store: store, Bridge: bridge, Log: log}
}

// Show renders the empty question form.
func (h *ChatHandler) Show(c *gin.Context) {
	c.HTML(http.StatusOK, "chatbot.html", gin.H{"response": ""})
}

// Ask forwards the question together with the user's expense total and
// renders whatever the bridge returns. The bridge never fails outward,
// so neither does this handler.
func (h *ChatHandler) Ask(c *gin.Context) {
	user, ok := currentUser(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	question := strings.TrimSpace(c.PostForm("question"))

	txs, err := h.Store.ListForUser(c.Request.Context(), user.ID)
	if err != nil {
		h.Log.Error().Err(err).Uint("user_id", user.ID).Msg("list transactions failed")
		c.String(http.StatusInternalServerError, "Failed to load transactions")
		return
	}
	_, totalExpense := ledger.IncomeExpenseTotals(txs)

	answer := h.Bridge.Ask(c.Request.Context(), question, totalExpense)
	c.HTML(http.StatusOK, "chatbot.html", gin.H{"response": answer})
}

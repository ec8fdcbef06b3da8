package ledger

import (
	"context"
	"fmt"

	"github.com/jayakosta/Personal-Finance-Tracker/internal/models"
	"github.com/jayakosta/Personal-Finance-Tracker/internal/util"

	"gorm.io/gorm"
)

// ValidationError marks bad user input on transaction entry.
// Handlers map it to a 400 response.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string { return e.Field + ": " + e.Msg }

// Input carries one /add_transaction form, parsed once at the boundary.
type Input struct {
	Amount   string
	Category string
	Kind     string
	Date     string
}

// Store is the append-only transaction ledger. There is no update or
// delete operation by design.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Record validates the input and appends one transaction for the given
// user. A zero userID means the request never passed the session
// boundary and is rejected.
func (s *Store) Record(ctx context.Context, userID uint, in Input) (*models.Transaction, error) {
	if userID == 0 {
		return nil, &ValidationError{Field: "owner", Msg: "not authenticated"}
	}

	amount, err := util.ParseAmount(in.Amount)
	if err != nil {
		return nil, &ValidationError{Field: "amount", Msg: "enter a valid amount"}
	}
	if err := util.ValidateCategory(in.Category); err != nil {
		return nil, &ValidationError{Field: "category", Msg: err.Error()}
	}
	if err := util.ValidateKind(in.Kind); err != nil {
		return nil, &ValidationError{Field: "type", Msg: err.Error()}
	}
	date, err := util.ParseDate(in.Date)
	if err != nil {
		return nil, &ValidationError{Field: "date", Msg: "enter a date as YYYY-MM-DD"}
	}

	tx := models.Transaction{
		UserID:   userID,
		Amount:   amount,
		Category: in.Category,
		Kind:     in.Kind,
		Date:     date,
	}
	if err := s.db.WithContext(ctx).Create(&tx).Error; err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}
	return &tx, nil
}

// ListForUser returns all transactions owned by userID in insertion
// order. A user with no transactions gets an empty slice, not an error.
func (s *Store) ListForUser(ctx context.Context, userID uint) ([]models.Transaction, error) {
	txs := make([]models.Transaction, 0)
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id ASC").
		Find(&txs).Error; err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return txs, nil
}

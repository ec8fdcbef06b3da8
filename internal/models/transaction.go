package models

import "time"

// Kind values for Transaction. Anything else in the column is a
// data-entry defect and is ignored by the aggregation code.
const (
	KindIncome  = "income"
	KindExpense = "expense"
)

// Transaction is a single ledger record owned by exactly one user.
// The ledger is append-only: rows are never updated or deleted.
type Transaction struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"index;not null"`
	Amount    float64   `gorm:"not null"`
	Category  string    `gorm:"size:50;not null"`
	Kind      string    `gorm:"size:10;index;not null"` // income / expense
	Date      time.Time `gorm:"not null"`
	CreatedAt time.Time

	User User `gorm:"constraint:OnDelete:CASCADE"`
}

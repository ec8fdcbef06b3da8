package models

import "time"

// User represents an application account. Accounts are immutable after
// signup: there is no profile update or delete path.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"size:120;uniqueIndex;not null"`
	PasswordHash string `gorm:"size:120;not null"`
	CreatedAt    time.Time
}

package util

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/jayakosta/Personal-Finance-Tracker/internal/models"
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ParseAmount parses a form amount into a float. The sign is not
// enforced; the type field carries the income/expense meaning.
func ParseAmount(s string) (float64, error) {
	if s == "" {
		return 0, fmt.Errorf("amount is empty")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return f, nil
}

// ParseDate parses a calendar date (must be YYYY-MM-DD).
func ParseDate(dateStr string) (time.Time, error) {
	if dateStr == "" {
		return time.Time{}, fmt.Errorf("date is empty")
	}
	t, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %w", err)
	}
	return t, nil
}

// ValidateCategory checks the category label. The label is free-form
// and may be empty; only its stored length is capped.
func ValidateCategory(category string) error {
	if len(category) > 50 {
		return fmt.Errorf("category too long, max 50 characters")
	}
	return nil
}

// ValidateKind checks the income/expense classification.
func ValidateKind(kind string) error {
	if kind != models.KindIncome && kind != models.KindExpense {
		return fmt.Errorf("type must be %q or %q", models.KindIncome, models.KindExpense)
	}
	return nil
}

// ValidateEmail checks the signup email shape.
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email is empty")
	}
	if len(email) > 120 {
		return fmt.Errorf("email too long, max 120 characters")
	}
	if !emailRe.MatchString(email) {
		return fmt.Errorf("invalid email address")
	}
	return nil
}

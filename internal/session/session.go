package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jayakosta/Personal-Finance-Tracker/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrInvalid covers every way a presented session can be unusable:
// unknown, revoked or expired. Callers treat all three the same way.
var ErrInvalid = errors.New("session invalid or expired")

// Manager owns the server-side session records behind the cookie token.
type Manager struct {
	db  *gorm.DB
	ttl time.Duration
}

func NewManager(db *gorm.DB, ttl time.Duration) *Manager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Manager{db: db, ttl: ttl}
}

// TTL returns the configured session lifetime.
func (m *Manager) TTL() time.Duration { return m.ttl }

// Create opens a new session for the user.
func (m *Manager) Create(ctx context.Context, userID uint) (*models.Session, error) {
	s := models.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(m.ttl),
	}
	if err := m.db.WithContext(ctx).Create(&s).Error; err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	return &s, nil
}

// Resolve returns the owning user for a live session ID.
func (m *Manager) Resolve(ctx context.Context, id string) (*models.User, error) {
	if id == "" {
		return nil, ErrInvalid
	}

	var s models.Session
	if err := m.db.WithContext(ctx).First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalid
		}
		return nil, fmt.Errorf("load session: %w", err)
	}
	if s.Revoked || time.Now().After(s.ExpiresAt) {
		return nil, ErrInvalid
	}

	var u models.User
	if err := m.db.WithContext(ctx).First(&u, s.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalid
		}
		return nil, fmt.Errorf("load user: %w", err)
	}
	return &u, nil
}

// Revoke invalidates a session. Revoking an unknown or already revoked
// session is not an error.
func (m *Manager) Revoke(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	if err := m.db.WithContext(ctx).Model(&models.Session{}).
		Where("id = ?", id).
		Update("revoked", true).Error; err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	return nil
}

package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNotFound is returned for unknown or expired tokens
var ErrNotFound = errors.New("session not found")

// DefaultTTL is how long an idle dashboard session lives
const DefaultTTL = 12 * time.Hour

// Session is the state of one dashboard browser session
type Session struct {
	Token     string    `json:"token"`
	LoggedIn  bool      `json:"logged_in"`
	CreatedAt time.Time `json:"created_at"`
}

// New returns an anonymous session with a fresh random token
func New() *Session {
	return &Session{
		Token:     uuid.NewString(),
		CreatedAt: time.Now().UTC(),
	}
}

// Store keeps sessions by token
type Store interface {
	Get(ctx context.Context, token string) (*Session, error)
	Save(ctx context.Context, s *Session) error
	Delete(ctx context.Context, token string) error
}

package domain

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_interfaces.go -package=mocks

// Notifier delivers a plain text message to a chat
type Notifier interface {
	Notify(ctx context.Context, chatID int64, text string) error
}

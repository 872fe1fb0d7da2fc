package notification

import (
	"time"
)

// Type classifies a notification for the receiving client.
type Type string

const (
	TypeInfo    Type = "info"
	TypeSuccess Type = "success"
	TypeWarning Type = "warning"
	TypeError   Type = "error"
)

// Notification is an ephemeral message pushed to a user's channel. It is
// never persisted; undelivered notifications are discarded.
type Notification struct {
	ID        string    `json:"id"`
	Type      Type      `json:"type"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

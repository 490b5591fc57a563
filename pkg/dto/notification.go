package dto

import (
	"time"

	"github.com/google/uuid"
)

// NotificationCreate is the data needed to persist one notification.
type NotificationCreate struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"`
	Kind   string    `json:"kind"`
	Body   string    `json:"body"`
}

// NotificationRead is a read-optimized view of a notification.
type NotificationRead struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Kind      string    `json:"kind"`
	Body      string    `json:"body"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// Package notification models the fire-and-forget notices other features
// dispatch to a user. Delivery is decoupled through the event bus: producers
// emit NotificationRequested and never learn whether persistence succeeded.
package notification

import (
	"time"

	"github.com/google/uuid"
)

// Kinds of notification the platform currently dispatches.
const (
	KindConnectionRequest  = "connection_request"
	KindConnectionAccepted = "connection_accepted"
)

// Notification is one notice shown to a user.
type Notification struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Kind      string    `json:"kind"`
	Body      string    `json:"body"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// Requested is the event emitted on the bus when some flow wants a user
// notified. The registered handler persists it as a Notification row.
type Requested struct {
	EventID   uuid.UUID `json:"event_id"`
	UserID    uuid.UUID `json:"user_id"`
	Kind      string    `json:"kind"`
	Body      string    `json:"body"`
	Timestamp int64     `json:"timestamp"`
}

// NewRequested stamps a Requested event with an ID and emission time.
func NewRequested(userID uuid.UUID, kind, body string) Requested {
	return Requested{
		EventID:   uuid.New(),
		UserID:    userID,
		Kind:      kind,
		Body:      body,
		Timestamp: time.Now().Unix(),
	}
}

func (e Requested) Type() string { return "NotificationRequested" }

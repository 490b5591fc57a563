package dto

import (
	"time"

	"github.com/google/uuid"
)

// ConnectionCreate is the data needed to open a pending request.
type ConnectionCreate struct {
	ID          uuid.UUID `json:"id"`
	RequesterID uuid.UUID `json:"requester_id"`
	ReceiverID  uuid.UUID `json:"receiver_id"`
	PairKey     string    `json:"-"`
}

// ConnectionRead is a read-optimized view of a connection row.
type ConnectionRead struct {
	ID          uuid.UUID `json:"id"`
	RequesterID uuid.UUID `json:"requester_id"`
	ReceiverID  uuid.UUID `json:"receiver_id"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PendingRequest is one entry of a sent/received listing: the pending row
// resolved to the counterpart's display fields.
type PendingRequest struct {
	ConnectionID uuid.UUID `json:"connection_id"`
	Direction    string    `json:"direction"`
	UserID       uuid.UUID `json:"user_id"`
	Username     string    `json:"username"`
	Names        string    `json:"names,omitempty"`
	Area         string    `json:"area,omitempty"`
	City         string    `json:"city,omitempty"`
	Country      string    `json:"country,omitempty"`
	RequestedAt  time.Time `json:"requested_at"`
}

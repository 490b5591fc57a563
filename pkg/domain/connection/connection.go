// Package connection models the bidirectional request network between
// users: a requester sends, a receiver answers, and an accepted pair can see
// each other in their connection lists.
package connection

import (
	"fmt"
	"strings"
	"time"

	"github.com/agrosphere/backend/pkg/domain"
	"github.com/google/uuid"
)

// Each error wraps the taxonomy sentinel so errors.Is resolves both the
// specific failure and its kind.
var (
	// ErrSelfConnection is returned when a user requests a connection with themselves.
	ErrSelfConnection = fmt.Errorf("%w: cannot connect with yourself", domain.ErrValidation)
	// ErrAlreadyRelated is returned when any row already relates the pair,
	// in either direction and in any status. A prior rejection therefore
	// blocks re-requesting; that is the documented behavior.
	ErrAlreadyRelated = fmt.Errorf("%w: connection already exists between these users", domain.ErrConflict)
	// ErrNotAnswerable is returned when a response targets a request that is
	// absent, already answered, or not addressed to the responder. The three
	// cases are deliberately indistinguishable to the caller.
	ErrNotAnswerable = fmt.Errorf("%w: request not found or not yours to answer", domain.ErrNotFound)
	// ErrInvalidDecision is returned for a decision outside accepted/rejected.
	ErrInvalidDecision = fmt.Errorf("%w: decision must be accepted or rejected", domain.ErrValidation)
	// ErrInvalidDirection is returned for a request-listing direction outside sent/received.
	ErrInvalidDirection = fmt.Errorf("%w: direction must be sent or received", domain.ErrValidation)
)

// Status is the lifecycle state of a connection request.
type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusRejected Status = "rejected"
)

// ParseDecision validates a response decision. Pending is never a valid
// decision: requests move out of pending exactly once.
func ParseDecision(s string) (Status, error) {
	switch Status(strings.ToLower(strings.TrimSpace(s))) {
	case StatusAccepted:
		return StatusAccepted, nil
	case StatusRejected:
		return StatusRejected, nil
	default:
		return "", ErrInvalidDecision
	}
}

// Connection is one row of the request network. Exactly one row exists per
// unordered user pair, enforced by the PairKey unique index.
type Connection struct {
	ID          uuid.UUID `json:"id"`
	RequesterID uuid.UUID `json:"requester_id"`
	ReceiverID  uuid.UUID `json:"receiver_id"`
	Status      Status    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PairKey builds the deterministic key for an unordered user pair: the two
// IDs sorted lexicographically and joined with a colon. Both (a,b) and (b,a)
// map to the same key, which is what lets a unique index guarantee at most
// one row per pair.
func PairKey(a, b uuid.UUID) string {
	as, bs := a.String(), b.String()
	if as > bs {
		as, bs = bs, as
	}
	return as + ":" + bs
}

// OtherParty returns the counterpart of viewerID in the connection,
// regardless of which side originated the request.
func (c *Connection) OtherParty(viewerID uuid.UUID) uuid.UUID {
	if c.RequesterID == viewerID {
		return c.ReceiverID
	}
	return c.RequesterID
}

// Direction of a pending request relative to a viewer.
type Direction string

const (
	DirectionSent     Direction = "sent"
	DirectionReceived Direction = "received"
	DirectionNone     Direction = ""
)

// ParseDirection validates a request-listing direction.
func ParseDirection(s string) (Direction, error) {
	switch Direction(strings.ToLower(strings.TrimSpace(s))) {
	case DirectionSent:
		return DirectionSent, nil
	case DirectionReceived:
		return DirectionReceived, nil
	default:
		return DirectionNone, ErrInvalidDirection
	}
}

// DirectionFor reports how the connection relates to the viewer: sent when
// the viewer originated it, received otherwise. A viewer outside the pair
// gets DirectionNone.
func (c *Connection) DirectionFor(viewerID uuid.UUID) Direction {
	switch viewerID {
	case c.RequesterID:
		return DirectionSent
	case c.ReceiverID:
		return DirectionReceived
	default:
		return DirectionNone
	}
}

package connection

import (
	"context"

	"github.com/agrosphere/backend/pkg/domain/connection"
	"github.com/agrosphere/backend/pkg/dto"
	"github.com/google/uuid"
)

// Repository defines the interface for connection data access operations.
type Repository interface {
	// Create inserts a pending connection row. A unique violation on the
	// pair key surfaces as domain.ErrConflict.
	Create(ctx context.Context, create *dto.ConnectionCreate) error

	// Get retrieves a connection by ID, nil when absent.
	Get(ctx context.Context, id uuid.UUID) (*dto.ConnectionRead, error)

	// GetByPair retrieves the row relating the unordered pair in either
	// direction and any status, nil when the users are unrelated.
	GetByPair(ctx context.Context, a, b uuid.UUID) (*dto.ConnectionRead, error)

	// UpdateStatusIfPending atomically moves the row out of pending:
	// a single conditional UPDATE on (id, receiver, status=pending).
	// Returns false when zero rows matched (absent, already answered, or
	// a different receiver); the caller cannot tell which.
	UpdateStatusIfPending(ctx context.Context, id, receiverID uuid.UUID, status connection.Status) (bool, error)

	// ListAcceptedPairRows returns accepted rows for the user with both
	// sides' display fields joined, for counterpart resolution.
	ListAcceptedPairRows(ctx context.Context, userID uuid.UUID) ([]connection.PairRow, error)

	// ListPendingPairRows returns pending rows where the user is requester
	// (sent) or receiver (received).
	ListPendingPairRows(ctx context.Context, userID uuid.UUID, direction connection.Direction) ([]connection.PairRow, error)
}

package notification

import (
	"context"

	"github.com/agrosphere/backend/pkg/dto"
	"github.com/google/uuid"
)

// Repository defines the interface for notification persistence.
type Repository interface {
	// Create inserts one notification row.
	Create(ctx context.Context, create *dto.NotificationCreate) error

	// List returns the user's notifications newest-first.
	List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*dto.NotificationRead, error)

	// MarkAllRead flips read=true on the user's unread notifications and
	// returns how many rows changed.
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
}

package user

import (
	"context"

	"github.com/agrosphere/backend/pkg/dto"
	"github.com/google/uuid"
)

// Repository defines the interface for user data access operations.
type Repository interface {
	// Create inserts a new user record from a DTO.
	Create(ctx context.Context, create *dto.UserCreate) error

	// Update updates an existing user by its ID using a DTO.
	Update(ctx context.Context, id uuid.UUID, update *dto.UserUpdate) error

	// Get retrieves a user by its ID as a read-optimized DTO, nil when absent.
	Get(ctx context.Context, id uuid.UUID) (*dto.UserRead, error)

	// GetByEmail retrieves a user by email, nil when absent.
	GetByEmail(ctx context.Context, email string) (*dto.UserRead, error)

	// GetByUsername retrieves a user by username, nil when absent.
	GetByUsername(ctx context.Context, username string) (*dto.UserRead, error)

	// Exists checks if a user with the given ID exists.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	// MatchByLocation returns non-banned users (excluding the viewer)
	// whose area or city equals the given values case-insensitively, each
	// annotated with connection state relative to the viewer. Empty area
	// and city yield no matches.
	MatchByLocation(ctx context.Context, viewerID uuid.UUID, area, city string) ([]*dto.MatchedUser, error)

	// Search returns non-banned users (excluding the viewer) whose
	// city, area or country (plus names when includeNames is set) contain
	// the query case-insensitively, annotated like MatchByLocation.
	Search(ctx context.Context, viewerID uuid.UUID, query string, includeNames bool) ([]*dto.MatchedUser, error)
}

package ledger

import (
	"context"
	"time"

	"github.com/agrosphere/backend/pkg/domain/ledger"
	"github.com/agrosphere/backend/pkg/dto"
	"github.com/google/uuid"
)

// Repository defines the interface for expense/earning record access and the
// dashboard aggregations.
type Repository interface {
	// Create inserts a validated record.
	Create(ctx context.Context, rec *ledger.Record) error

	// Get retrieves a record by ID, nil when absent.
	Get(ctx context.Context, id uuid.UUID) (*dto.RecordRead, error)

	// List returns the user's records newest-first, narrowed by the filter.
	List(ctx context.Context, userID uuid.UUID, filter dto.RecordFilter, limit, offset int) ([]*dto.RecordRead, error)

	// SumByTypeSince sums amounts per type for records with occurred_on in
	// [since, until).
	SumByTypeSince(ctx context.Context, userID uuid.UUID, since, until time.Time) ([]dto.TypeSum, error)

	// MonthlySums groups per (year, month, type) for occurred_on >= since.
	MonthlySums(ctx context.Context, userID uuid.UUID, since time.Time) ([]dto.MonthlySum, error)

	// YearlySums groups per (year, type) for year >= fromYear.
	YearlySums(ctx context.Context, userID uuid.UUID, fromYear int) ([]dto.YearlySum, error)

	// Recent returns the most recent records by occurred_on.
	Recent(ctx context.Context, userID uuid.UUID, limit int) ([]*dto.RecordRead, error)

	// Years returns the distinct years with data, descending.
	Years(ctx context.Context, userID uuid.UUID) ([]int, error)
}

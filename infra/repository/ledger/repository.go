package ledger

import (
	"context"
	"errors"
	"time"

	"github.com/agrosphere/backend/pkg/domain/ledger"
	"github.com/agrosphere/backend/pkg/dto"
	ledgerrepo "github.com/agrosphere/backend/pkg/repository/ledger"
	"github.com/agrosphere/backend/pkg/repository/predicate"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) ledgerrepo.Repository {
	return &repository{db: db}
}

func (r *repository) Create(
	ctx context.Context,
	rec *ledger.Record,
) error {
	model := &Record{
		ID:          rec.ID,
		UserID:      rec.UserID,
		Type:        string(rec.Type),
		Category:    rec.Category,
		Amount:      rec.Amount,
		Description: rec.Description,
		OccurredOn:  rec.OccurredOn,
		Year:        rec.Year,
		Month:       rec.Month,
		CreatedAt:   rec.CreatedAt,
	}
	return r.db.WithContext(ctx).Create(model).Error
}

func (r *repository) Get(
	ctx context.Context,
	id uuid.UUID,
) (*dto.RecordRead, error) {
	var rec Record
	if err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDTO(&rec), nil
}

func (r *repository) List(
	ctx context.Context,
	userID uuid.UUID,
	filter dto.RecordFilter,
	limit, offset int,
) ([]*dto.RecordRead, error) {
	b := predicate.New().Add("user_id = ?", userID)
	if filter.Type != nil {
		b.Add("type = ?", *filter.Type)
	}
	if filter.Category != nil {
		b.Add("category = ?", *filter.Category)
	}
	if filter.Year != nil {
		b.Add("year = ?", *filter.Year)
	}
	if filter.Month != nil {
		b.Add("month = ?", *filter.Month)
	}

	var recs []Record
	err := r.db.WithContext(ctx).Model(&Record{}).
		Where(b.SQL(), b.Args()...).
		Order("occurred_on DESC, created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&recs).Error
	if err != nil {
		return nil, err
	}

	result := make([]*dto.RecordRead, 0, len(recs))
	for i := range recs {
		result = append(result, mapModelToDTO(&recs[i]))
	}
	return result, nil
}

func (r *repository) SumByTypeSince(
	ctx context.Context,
	userID uuid.UUID,
	since, until time.Time,
) ([]dto.TypeSum, error) {
	var sums []dto.TypeSum
	err := r.db.WithContext(ctx).Model(&Record{}).
		Select("type, COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ? AND occurred_on >= ? AND occurred_on < ?",
			userID, since, until).
		Group("type").
		Order("type").
		Scan(&sums).Error
	if err != nil {
		return nil, err
	}
	return sums, nil
}

func (r *repository) MonthlySums(
	ctx context.Context,
	userID uuid.UUID,
	since time.Time,
) ([]dto.MonthlySum, error) {
	var sums []dto.MonthlySum
	err := r.db.WithContext(ctx).Model(&Record{}).
		Select("year, month, type, COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ? AND occurred_on >= ?", userID, since).
		Group("year, month, type").
		Order("year ASC, month ASC, type ASC").
		Scan(&sums).Error
	if err != nil {
		return nil, err
	}
	return sums, nil
}

func (r *repository) YearlySums(
	ctx context.Context,
	userID uuid.UUID,
	fromYear int,
) ([]dto.YearlySum, error) {
	var sums []dto.YearlySum
	err := r.db.WithContext(ctx).Model(&Record{}).
		Select("year, type, COALESCE(SUM(amount), 0) AS total").
		Where("user_id = ? AND year >= ?", userID, fromYear).
		Group("year, type").
		Order("year ASC, type ASC").
		Scan(&sums).Error
	if err != nil {
		return nil, err
	}
	return sums, nil
}

func (r *repository) Recent(
	ctx context.Context,
	userID uuid.UUID,
	limit int,
) ([]*dto.RecordRead, error) {
	var recs []Record
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("occurred_on DESC, created_at DESC").
		Limit(limit).
		Find(&recs).Error
	if err != nil {
		return nil, err
	}

	result := make([]*dto.RecordRead, 0, len(recs))
	for i := range recs {
		result = append(result, mapModelToDTO(&recs[i]))
	}
	return result, nil
}

func (r *repository) Years(
	ctx context.Context,
	userID uuid.UUID,
) ([]int, error) {
	var years []int
	err := r.db.WithContext(ctx).Model(&Record{}).
		Distinct("year").
		Where("user_id = ?", userID).
		Order("year DESC").
		Pluck("year", &years).Error
	if err != nil {
		return nil, err
	}
	return years, nil
}

func mapModelToDTO(rec *Record) *dto.RecordRead {
	return &dto.RecordRead{
		ID:          rec.ID,
		UserID:      rec.UserID,
		Type:        rec.Type,
		Category:    rec.Category,
		Amount:      rec.Amount,
		Description: rec.Description,
		OccurredOn:  rec.OccurredOn,
		Year:        rec.Year,
		Month:       rec.Month,
		CreatedAt:   rec.CreatedAt,
	}
}

var _ ledgerrepo.Repository = (*repository)(nil)

// Package ledger provides business logic for expense/earning records and
// the dashboard aggregations built over them.
package ledger

import (
	"context"
	"log/slog"
	"time"

	"github.com/agrosphere/backend/pkg/config"
	"github.com/agrosphere/backend/pkg/domain/ledger"
	"github.com/agrosphere/backend/pkg/dto"
	"github.com/agrosphere/backend/pkg/repository"
	"github.com/google/uuid"
)

// Service provides business logic for ledger operations.
type Service struct {
	uow    repository.UnitOfWork
	cfg    *config.Dashboard
	logger *slog.Logger
	// now is swappable so window arithmetic is testable.
	now func() time.Time
}

// New creates a Service with a UnitOfWork, dashboard config and a logger.
func New(
	uow repository.UnitOfWork,
	cfg *config.Dashboard,
	logger *slog.Logger,
) *Service {
	return &Service{uow: uow, cfg: cfg, logger: logger, now: time.Now}
}

// CreateRecord validates and stores one expense or earning.
func (s *Service) CreateRecord(
	ctx context.Context,
	userID uuid.UUID,
	typ, category string,
	amount float64,
	description string,
	occurredOn time.Time,
) (rec *dto.RecordRead, err error) {
	log := s.logger.With("context", "CreateRecord", "userID", userID)
	log.Debug("CreateRecord called", "type", typ, "category", category)
	r, err := ledger.NewRecord(userID, typ, category, amount, description, occurredOn)
	if err != nil {
		log.Error("CreateRecord validation failed", "error", err)
		return nil, err
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		records, err := uow.RecordRepository()
		if err != nil {
			return err
		}
		if err := records.Create(ctx, r); err != nil {
			return err
		}
		rec, err = records.Get(ctx, r.ID)
		return err
	})
	if err != nil {
		log.Error("CreateRecord failed", "error", err)
		return nil, err
	}
	log.Info("CreateRecord successful", "recordID", rec.ID)
	return rec, nil
}

// ListRecords returns the user's records newest-first, narrowed by the
// filter.
func (s *Service) ListRecords(
	ctx context.Context,
	userID uuid.UUID,
	filter dto.RecordFilter,
	limit, offset int,
) (recs []*dto.RecordRead, err error) {
	log := s.logger.With("context", "ListRecords", "userID", userID)
	if filter.Type != nil {
		if _, err := ledger.ParseType(*filter.Type); err != nil {
			return nil, err
		}
	}
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		records, err := uow.RecordRepository()
		if err != nil {
			return err
		}
		recs, err = records.List(ctx, userID, filter, limit, offset)
		return err
	})
	if err != nil {
		log.Error("ListRecords failed", "error", err)
		return nil, err
	}
	return
}

// DashboardSummary aggregates the user's ledger over the dashboard windows:
// current month, trailing seven days, trailing twelve calendar months,
// trailing config-bound years and the current calendar year, plus the most
// recent raw records and the distinct years holding data.
func (s *Service) DashboardSummary(
	ctx context.Context,
	userID uuid.UUID,
) (summary *dto.DashboardSummary, err error) {
	log := s.logger.With("context", "DashboardSummary", "userID", userID)
	log.Debug("DashboardSummary called")

	now := s.now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	tomorrow := today.AddDate(0, 0, 1)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	weekStart := today.AddDate(0, 0, -6)
	// Twelve calendar months including the current one.
	trendStart := monthStart.AddDate(0, -11, 0)
	yearStart := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, time.UTC)
	fromYear := now.Year() - (s.cfg.TrailingYears - 1)

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		records, err := uow.RecordRepository()
		if err != nil {
			return err
		}

		currentMonth, err := records.SumByTypeSince(ctx, userID, monthStart, tomorrow)
		if err != nil {
			return err
		}
		last7, err := records.SumByTypeSince(ctx, userID, weekStart, tomorrow)
		if err != nil {
			return err
		}
		monthly, err := records.MonthlySums(ctx, userID, trendStart)
		if err != nil {
			return err
		}
		yearly, err := records.YearlySums(ctx, userID, fromYear)
		if err != nil {
			return err
		}
		currentYear, err := records.SumByTypeSince(ctx, userID, yearStart, tomorrow)
		if err != nil {
			return err
		}
		recent, err := records.Recent(ctx, userID, s.cfg.RecentLimit)
		if err != nil {
			return err
		}
		years, err := records.Years(ctx, userID)
		if err != nil {
			return err
		}

		recentRecords := make([]dto.RecordRead, 0, len(recent))
		for _, r := range recent {
			recentRecords = append(recentRecords, *r)
		}
		summary = &dto.DashboardSummary{
			CurrentMonth:   currentMonth,
			Last7Days:      last7,
			MonthlyTrend:   monthly,
			YearlyTrend:    yearly,
			CurrentYear:    currentYear,
			RecentRecords:  recentRecords,
			AvailableYears: years,
		}
		return nil
	})
	if err != nil {
		log.Error("DashboardSummary failed", "error", err)
		return nil, err
	}
	return
}

// Categories returns the fixed category vocabulary per record type, for
// clients rendering entry forms.
func (s *Service) Categories() map[string][]string {
	return map[string][]string{
		string(ledger.TypeExpense): ledger.ExpenseCategories,
		string(ledger.TypeEarning): ledger.EarningCategories,
	}
}

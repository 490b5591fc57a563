// Package discovery provides location-based matching and free-text search
// over the user base, with each result annotated by the viewer's connection
// state.
package discovery

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/agrosphere/backend/pkg/domain"
	"github.com/agrosphere/backend/pkg/domain/user"
	"github.com/agrosphere/backend/pkg/dto"
	"github.com/agrosphere/backend/pkg/repository"
	"github.com/google/uuid"
)

// ErrEmptyQuery is returned when a search is attempted without a query.
var ErrEmptyQuery = fmt.Errorf("%w: search query cannot be empty", domain.ErrValidation)

// Service provides business logic for discovery operations.
type Service struct {
	uow    repository.UnitOfWork
	logger *slog.Logger
}

// New creates a Service with a UnitOfWork and logger.
func New(
	uow repository.UnitOfWork,
	logger *slog.Logger,
) *Service {
	return &Service{uow: uow, logger: logger}
}

// MatchByLocation returns other users in the viewer's area or city. A viewer
// without location data gets an empty result, never a broader fallback.
func (s *Service) MatchByLocation(
	ctx context.Context,
	viewerID uuid.UUID,
) (matches []*dto.MatchedUser, err error) {
	log := s.logger.With("context", "MatchByLocation", "viewerID", viewerID)
	log.Debug("MatchByLocation called")
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		users, err := uow.UserRepository()
		if err != nil {
			return err
		}
		viewer, err := users.Get(ctx, viewerID)
		if err != nil {
			return err
		}
		if viewer == nil {
			return user.ErrUserNotFound
		}
		if strings.TrimSpace(viewer.Area) == "" && strings.TrimSpace(viewer.City) == "" {
			log.Debug("viewer has no location data")
			matches = []*dto.MatchedUser{}
			return nil
		}
		matches, err = users.MatchByLocation(ctx, viewerID, viewer.Area, viewer.City)
		return err
	})
	if err != nil {
		log.Error("MatchByLocation failed", "error", err)
		return nil, err
	}
	log.Debug("MatchByLocation done", "count", len(matches))
	return
}

// Search returns users whose city, area or country contain the query,
// case-insensitively; includeNames widens the match to display names.
func (s *Service) Search(
	ctx context.Context,
	viewerID uuid.UUID,
	query string,
	includeNames bool,
) (matches []*dto.MatchedUser, err error) {
	log := s.logger.With("context", "Search", "viewerID", viewerID)
	log.Debug("Search called", "includeNames", includeNames)
	if strings.TrimSpace(query) == "" {
		return nil, ErrEmptyQuery
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		users, err := uow.UserRepository()
		if err != nil {
			return err
		}
		matches, err = users.Search(ctx, viewerID, query, includeNames)
		return err
	})
	if err != nil {
		log.Error("Search failed", "error", err)
		return nil, err
	}
	log.Debug("Search done", "count", len(matches))
	return
}

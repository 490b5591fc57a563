package discovery_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/agrosphere/backend/internal/fixtures/mocks"
	"github.com/agrosphere/backend/pkg/domain"
	"github.com/agrosphere/backend/pkg/domain/connection"
	"github.com/agrosphere/backend/pkg/domain/user"
	"github.com/agrosphere/backend/pkg/dto"
	"github.com/agrosphere/backend/pkg/repository"
	discoverysvc "github.com/agrosphere/backend/pkg/service/discovery"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newDiscoveryServiceWithMocks(t interface {
	mock.TestingT
	Cleanup(func())
}) (*discoverysvc.Service, *mocks.MockUserRepository) {
	userRepo := mocks.NewMockUserRepository(t)
	uow := mocks.NewMockUnitOfWork(t)
	uow.EXPECT().UserRepository().Return(userRepo, nil).Maybe()
	uow.EXPECT().Do(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, fn func(repository.UnitOfWork) error) error {
			return fn(uow)
		},
	).Maybe()
	svc := discoverysvc.New(uow, slog.Default())
	return svc, userRepo
}

func TestMatchByLocation_Success(t *testing.T) {
	t.Parallel()
	svc, userRepo := newDiscoveryServiceWithMocks(t)
	viewer := uuid.New()
	connID := uuid.New()

	userRepo.EXPECT().Get(mock.Anything, viewer).
		Return(&dto.UserRead{ID: viewer, Area: "north", City: "nakuru"}, nil).Once()
	userRepo.EXPECT().MatchByLocation(mock.Anything, viewer, "north", "nakuru").
		Return([]*dto.MatchedUser{
			{ID: uuid.New(), Username: "joseph", City: "nakuru"},
			{
				ID:           uuid.New(),
				Username:     "wanjiru",
				Area:         "north",
				Status:       string(connection.StatusPending),
				Direction:    string(connection.DirectionSent),
				ConnectionID: &connID,
			},
		}, nil).Once()

	matches, err := svc.MatchByLocation(context.Background(), viewer)
	require.NoError(t, err)
	require.Len(t, matches, 2)
	assert.Equal(t, "joseph", matches[0].Username)
	assert.Empty(t, matches[0].Status)
	assert.Equal(t, string(connection.StatusPending), matches[1].Status)
	assert.Equal(t, string(connection.DirectionSent), matches[1].Direction)
}

func TestMatchByLocation_NoLocationShortCircuits(t *testing.T) {
	t.Parallel()
	svc, userRepo := newDiscoveryServiceWithMocks(t)
	viewer := uuid.New()

	// No MatchByLocation expectation: the query must never run.
	userRepo.EXPECT().Get(mock.Anything, viewer).
		Return(&dto.UserRead{ID: viewer, Area: "  ", City: ""}, nil).Once()

	matches, err := svc.MatchByLocation(context.Background(), viewer)
	require.NoError(t, err)
	assert.NotNil(t, matches)
	assert.Empty(t, matches)
}

func TestMatchByLocation_ViewerMissing(t *testing.T) {
	t.Parallel()
	svc, userRepo := newDiscoveryServiceWithMocks(t)
	viewer := uuid.New()

	userRepo.EXPECT().Get(mock.Anything, viewer).Return(nil, nil).Once()

	matches, err := svc.MatchByLocation(context.Background(), viewer)
	require.Error(t, err)
	assert.ErrorIs(t, err, user.ErrUserNotFound)
	assert.Nil(t, matches)
}

func TestSearch_Delegates(t *testing.T) {
	t.Parallel()
	svc, userRepo := newDiscoveryServiceWithMocks(t)
	viewer := uuid.New()

	userRepo.EXPECT().Search(mock.Anything, viewer, "naku", true).
		Return([]*dto.MatchedUser{{ID: uuid.New(), Username: "joseph", City: "nakuru"}}, nil).Once()

	matches, err := svc.Search(context.Background(), viewer, "naku", true)
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "nakuru", matches[0].City)
}

func TestSearch_EmptyQuery(t *testing.T) {
	t.Parallel()
	svc, _ := newDiscoveryServiceWithMocks(t)

	matches, err := svc.Search(context.Background(), uuid.New(), "   ", false)
	require.Error(t, err)
	assert.ErrorIs(t, err, discoverysvc.ErrEmptyQuery)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Nil(t, matches)
}

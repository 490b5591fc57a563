package connection_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/agrosphere/backend/internal/fixtures/mocks"
	"github.com/agrosphere/backend/pkg/domain"
	"github.com/agrosphere/backend/pkg/domain/connection"
	"github.com/agrosphere/backend/pkg/domain/notification"
	"github.com/agrosphere/backend/pkg/domain/user"
	"github.com/agrosphere/backend/pkg/dto"
	"github.com/agrosphere/backend/pkg/repository"
	connsvc "github.com/agrosphere/backend/pkg/service/connection"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newConnectionServiceWithMocks(t interface {
	mock.TestingT
	Cleanup(func())
}) (*connsvc.Service, *mocks.MockConnectionRepository, *mocks.MockUserRepository, *mocks.MockNotifier) {
	connRepo := mocks.NewMockConnectionRepository(t)
	userRepo := mocks.NewMockUserRepository(t)
	notifier := mocks.NewMockNotifier(t)
	uow := mocks.NewMockUnitOfWork(t)
	uow.EXPECT().ConnectionRepository().Return(connRepo, nil).Maybe()
	uow.EXPECT().UserRepository().Return(userRepo, nil).Maybe()
	uow.EXPECT().Do(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, fn func(repository.UnitOfWork) error) error {
			return fn(uow)
		},
	).Maybe()
	svc := connsvc.New(uow, notifier, slog.Default())
	return svc, connRepo, userRepo, notifier
}

func TestSendRequest_Success(t *testing.T) {
	t.Parallel()
	svc, connRepo, userRepo, notifier := newConnectionServiceWithMocks(t)
	requester, receiver := uuid.New(), uuid.New()

	userRepo.EXPECT().Get(mock.Anything, requester).
		Return(&dto.UserRead{ID: requester, Username: "amina"}, nil).Once()
	userRepo.EXPECT().Exists(mock.Anything, receiver).Return(true, nil).Once()
	connRepo.EXPECT().GetByPair(mock.Anything, requester, receiver).Return(nil, nil).Once()

	var inserted *dto.ConnectionCreate
	connRepo.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, create *dto.ConnectionCreate) error {
			inserted = create
			return nil
		},
	).Once()
	connRepo.EXPECT().Get(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, id uuid.UUID) (*dto.ConnectionRead, error) {
			return &dto.ConnectionRead{
				ID:          id,
				RequesterID: requester,
				ReceiverID:  receiver,
				Status:      string(connection.StatusPending),
			}, nil
		},
	).Once()
	notifier.EXPECT().Notify(
		mock.Anything, receiver, notification.KindConnectionRequest,
		"amina sent you a connection request",
	).Return(nil).Once()

	conn, err := svc.SendRequest(context.Background(), requester, receiver)
	require.NoError(t, err)
	require.NotNil(t, conn)
	assert.Equal(t, string(connection.StatusPending), conn.Status)
	require.NotNil(t, inserted)
	assert.Equal(t, connection.PairKey(requester, receiver), inserted.PairKey)
}

func TestSendRequest_Self(t *testing.T) {
	t.Parallel()
	svc, _, _, _ := newConnectionServiceWithMocks(t)
	id := uuid.New()

	conn, err := svc.SendRequest(context.Background(), id, id)
	require.Error(t, err)
	assert.ErrorIs(t, err, connection.ErrSelfConnection)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Nil(t, conn)
}

func TestSendRequest_PairAlreadyRelated(t *testing.T) {
	t.Parallel()
	svc, connRepo, userRepo, _ := newConnectionServiceWithMocks(t)
	requester, receiver := uuid.New(), uuid.New()

	userRepo.EXPECT().Get(mock.Anything, requester).
		Return(&dto.UserRead{ID: requester, Username: "amina"}, nil).Once()
	userRepo.EXPECT().Exists(mock.Anything, receiver).Return(true, nil).Once()
	// A rejected row still blocks: any row for the pair does.
	connRepo.EXPECT().GetByPair(mock.Anything, requester, receiver).
		Return(&dto.ConnectionRead{ID: uuid.New(), Status: string(connection.StatusRejected)}, nil).Once()

	conn, err := svc.SendRequest(context.Background(), requester, receiver)
	require.Error(t, err)
	assert.ErrorIs(t, err, connection.ErrAlreadyRelated)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Nil(t, conn)
}

func TestSendRequest_ReceiverMissing(t *testing.T) {
	t.Parallel()
	svc, _, userRepo, _ := newConnectionServiceWithMocks(t)
	requester, receiver := uuid.New(), uuid.New()

	userRepo.EXPECT().Get(mock.Anything, requester).
		Return(&dto.UserRead{ID: requester, Username: "amina"}, nil).Once()
	userRepo.EXPECT().Exists(mock.Anything, receiver).Return(false, nil).Once()

	conn, err := svc.SendRequest(context.Background(), requester, receiver)
	require.Error(t, err)
	assert.ErrorIs(t, err, user.ErrUserNotFound)
	assert.Nil(t, conn)
}

func TestSendRequest_NotifierFailureIsNotFatal(t *testing.T) {
	t.Parallel()
	svc, connRepo, userRepo, notifier := newConnectionServiceWithMocks(t)
	requester, receiver := uuid.New(), uuid.New()

	userRepo.EXPECT().Get(mock.Anything, requester).
		Return(&dto.UserRead{ID: requester, Username: "amina"}, nil).Once()
	userRepo.EXPECT().Exists(mock.Anything, receiver).Return(true, nil).Once()
	connRepo.EXPECT().GetByPair(mock.Anything, requester, receiver).Return(nil, nil).Once()
	connRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil).Once()
	connRepo.EXPECT().Get(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, id uuid.UUID) (*dto.ConnectionRead, error) {
			return &dto.ConnectionRead{ID: id, RequesterID: requester, ReceiverID: receiver}, nil
		},
	).Once()
	notifier.EXPECT().Notify(mock.Anything, receiver, mock.Anything, mock.Anything).
		Return(errors.New("bus down")).Once()

	conn, err := svc.SendRequest(context.Background(), requester, receiver)
	require.NoError(t, err)
	assert.NotNil(t, conn)
}

func TestRespond_Accepted(t *testing.T) {
	t.Parallel()
	svc, connRepo, userRepo, notifier := newConnectionServiceWithMocks(t)
	connID, requester, responder := uuid.New(), uuid.New(), uuid.New()

	connRepo.EXPECT().UpdateStatusIfPending(mock.Anything, connID, responder, connection.StatusAccepted).
		Return(true, nil).Once()
	connRepo.EXPECT().Get(mock.Anything, connID).Return(&dto.ConnectionRead{
		ID:          connID,
		RequesterID: requester,
		ReceiverID:  responder,
		Status:      string(connection.StatusAccepted),
	}, nil).Once()
	userRepo.EXPECT().Get(mock.Anything, responder).
		Return(&dto.UserRead{ID: responder, Username: "joseph"}, nil).Once()
	notifier.EXPECT().Notify(
		mock.Anything, requester, notification.KindConnectionAccepted,
		"joseph accepted your connection request",
	).Return(nil).Once()

	conn, err := svc.Respond(context.Background(), connID, responder, "accepted")
	require.NoError(t, err)
	require.NotNil(t, conn)
	assert.Equal(t, string(connection.StatusAccepted), conn.Status)
}

func TestRespond_RejectedSkipsNotification(t *testing.T) {
	t.Parallel()
	svc, connRepo, _, _ := newConnectionServiceWithMocks(t)
	connID, responder := uuid.New(), uuid.New()

	connRepo.EXPECT().UpdateStatusIfPending(mock.Anything, connID, responder, connection.StatusRejected).
		Return(true, nil).Once()
	connRepo.EXPECT().Get(mock.Anything, connID).Return(&dto.ConnectionRead{
		ID:         connID,
		ReceiverID: responder,
		Status:     string(connection.StatusRejected),
	}, nil).Once()

	conn, err := svc.Respond(context.Background(), connID, responder, "REJECTED")
	require.NoError(t, err)
	assert.Equal(t, string(connection.StatusRejected), conn.Status)
}

func TestRespond_NotAnswerable(t *testing.T) {
	t.Parallel()
	svc, connRepo, _, _ := newConnectionServiceWithMocks(t)
	connID, responder := uuid.New(), uuid.New()

	connRepo.EXPECT().UpdateStatusIfPending(mock.Anything, connID, responder, connection.StatusAccepted).
		Return(false, nil).Once()

	conn, err := svc.Respond(context.Background(), connID, responder, "accepted")
	require.Error(t, err)
	assert.ErrorIs(t, err, connection.ErrNotAnswerable)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Nil(t, conn)
}

func TestRespond_InvalidDecision(t *testing.T) {
	t.Parallel()
	svc, _, _, _ := newConnectionServiceWithMocks(t)

	conn, err := svc.Respond(context.Background(), uuid.New(), uuid.New(), "maybe")
	require.Error(t, err)
	assert.ErrorIs(t, err, connection.ErrInvalidDecision)
	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Nil(t, conn)
}

func TestListConnections_ResolvesCounterpart(t *testing.T) {
	t.Parallel()
	svc, connRepo, _, _ := newConnectionServiceWithMocks(t)
	viewer, other := uuid.New(), uuid.New()
	now := time.Now().UTC()

	connRepo.EXPECT().ListAcceptedPairRows(mock.Anything, viewer).Return([]connection.PairRow{
		{
			ConnectionID:      uuid.New(),
			Status:            connection.StatusAccepted,
			UpdatedAt:         now,
			RequesterID:       viewer,
			RequesterUsername: "me",
			ReceiverID:        other,
			ReceiverUsername:  "joseph",
			ReceiverCity:      "nakuru",
		},
		{
			ConnectionID:      uuid.New(),
			Status:            connection.StatusAccepted,
			UpdatedAt:         now,
			RequesterID:       other,
			RequesterUsername: "joseph",
			ReceiverID:        viewer,
			ReceiverUsername:  "me",
		},
	}, nil).Once()

	friends, err := svc.ListConnections(context.Background(), viewer)
	require.NoError(t, err)
	require.Len(t, friends, 2)
	// Always the other party, never the viewer, whichever side sent.
	assert.Equal(t, "joseph", friends[0].Username)
	assert.Equal(t, connection.DirectionSent, friends[0].Direction)
	assert.Equal(t, "nakuru", friends[0].City)
	assert.Equal(t, "joseph", friends[1].Username)
	assert.Equal(t, connection.DirectionReceived, friends[1].Direction)
}

func TestListRequests_Received(t *testing.T) {
	t.Parallel()
	svc, connRepo, _, _ := newConnectionServiceWithMocks(t)
	viewer, sender := uuid.New(), uuid.New()
	created := time.Now().UTC().Add(-time.Hour)

	connRepo.EXPECT().ListPendingPairRows(mock.Anything, viewer, connection.DirectionReceived).
		Return([]connection.PairRow{
			{
				ConnectionID:      uuid.New(),
				Status:            connection.StatusPending,
				CreatedAt:         created,
				RequesterID:       sender,
				RequesterUsername: "wanjiru",
				ReceiverID:        viewer,
			},
		}, nil).Once()

	requests, err := svc.ListRequests(context.Background(), viewer, "received")
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, "wanjiru", requests[0].Username)
	assert.Equal(t, string(connection.DirectionReceived), requests[0].Direction)
	assert.Equal(t, created, requests[0].RequestedAt)
}

func TestListRequests_InvalidDirection(t *testing.T) {
	t.Parallel()
	svc, _, _, _ := newConnectionServiceWithMocks(t)

	requests, err := svc.ListRequests(context.Background(), uuid.New(), "sideways")
	require.Error(t, err)
	assert.ErrorIs(t, err, connection.ErrInvalidDirection)
	assert.Nil(t, requests)
}

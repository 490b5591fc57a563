package notification_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	infra_eventbus "github.com/agrosphere/backend/infra/eventbus"
	"github.com/agrosphere/backend/internal/fixtures/mocks"
	"github.com/agrosphere/backend/pkg/domain/notification"
	"github.com/agrosphere/backend/pkg/dto"
	"github.com/agrosphere/backend/pkg/eventbus"
	"github.com/agrosphere/backend/pkg/repository"
	notificationsvc "github.com/agrosphere/backend/pkg/service/notification"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newNotificationServiceWithBus(t interface {
	mock.TestingT
	Cleanup(func())
}, bus eventbus.Bus) (*notificationsvc.Service, *mocks.MockNotificationRepository) {
	notifRepo := mocks.NewMockNotificationRepository(t)
	uow := mocks.NewMockUnitOfWork(t)
	uow.EXPECT().NotificationRepository().Return(notifRepo, nil).Maybe()
	uow.EXPECT().Do(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, fn func(repository.UnitOfWork) error) error {
			return fn(uow)
		},
	).Maybe()
	svc := notificationsvc.New(uow, bus, testLogger())
	return svc, notifRepo
}

func TestNotify_EmitsRequested(t *testing.T) {
	t.Parallel()
	bus := infra_eventbus.NewWithMemory(testLogger())
	svc, _ := newNotificationServiceWithBus(t, bus)
	userID := uuid.New()

	err := svc.Notify(context.Background(), userID, notification.KindConnectionRequest, "amina sent you a connection request")
	require.NoError(t, err)

	published := bus.Published()
	require.Len(t, published, 1)
	req, ok := published[0].(notification.Requested)
	require.True(t, ok)
	assert.Equal(t, userID, req.UserID)
	assert.Equal(t, notification.KindConnectionRequest, req.Kind)
	assert.Equal(t, "amina sent you a connection request", req.Body)
	assert.NotEqual(t, uuid.Nil, req.EventID)
}

func TestNotify_BusErrorPropagates(t *testing.T) {
	t.Parallel()
	bus := mocks.NewMockBus(t)
	bus.EXPECT().Emit(mock.Anything, mock.Anything).Return(errors.New("stream unavailable")).Once()
	svc, _ := newNotificationServiceWithBus(t, bus)

	err := svc.Notify(context.Background(), uuid.New(), notification.KindConnectionAccepted, "x")
	assert.Error(t, err)
}

func TestRegister_PersistsThroughBus(t *testing.T) {
	t.Parallel()
	bus := infra_eventbus.NewWithMemory(testLogger())
	svc, notifRepo := newNotificationServiceWithBus(t, bus)
	svc.Register()
	userID := uuid.New()

	var created *dto.NotificationCreate
	notifRepo.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, create *dto.NotificationCreate) error {
			created = create
			return nil
		},
	).Once()

	require.NoError(t, svc.Notify(context.Background(), userID, notification.KindConnectionAccepted, "joseph accepted your connection request"))

	require.NotNil(t, created)
	assert.Equal(t, userID, created.UserID)
	assert.Equal(t, notification.KindConnectionAccepted, created.Kind)
	assert.Equal(t, "joseph accepted your connection request", created.Body)

	// The event ID becomes the row ID, so a redelivery of the same event
	// targets the same primary key instead of inserting a second notice.
	published := bus.Published()
	require.Len(t, published, 1)
	assert.Equal(t, published[0].(notification.Requested).EventID, created.ID)
}

func TestHandler_AcceptsPointerEvents(t *testing.T) {
	t.Parallel()
	bus := infra_eventbus.NewWithMemory(testLogger())
	svc, notifRepo := newNotificationServiceWithBus(t, bus)
	svc.Register()

	req := notification.NewRequested(uuid.New(), notification.KindConnectionRequest, "hello")
	notifRepo.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, create *dto.NotificationCreate) error {
			assert.Equal(t, req.EventID, create.ID)
			return nil
		},
	).Once()

	// Transports that decode from the wire hand the handler a pointer.
	require.NoError(t, bus.Emit(context.Background(), &req))
}

func TestListNotifications_DefaultsPagination(t *testing.T) {
	t.Parallel()
	svc, notifRepo := newNotificationServiceWithBus(t, infra_eventbus.NewWithMemory(testLogger()))
	userID := uuid.New()

	notifRepo.EXPECT().List(mock.Anything, userID, 50, 0).
		Return([]*dto.NotificationRead{{ID: uuid.New(), Kind: notification.KindConnectionRequest}}, nil).Once()

	list, err := svc.ListNotifications(context.Background(), userID, 0, -1)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, notification.KindConnectionRequest, list[0].Kind)
}

func TestMarkNotificationsRead_ReturnsCount(t *testing.T) {
	t.Parallel()
	svc, notifRepo := newNotificationServiceWithBus(t, infra_eventbus.NewWithMemory(testLogger()))
	userID := uuid.New()

	notifRepo.EXPECT().MarkAllRead(mock.Anything, userID).Return(int64(4), nil).Once()

	updated, err := svc.MarkNotificationsRead(context.Background(), userID)
	require.NoError(t, err)
	assert.EqualValues(t, 4, updated)
}

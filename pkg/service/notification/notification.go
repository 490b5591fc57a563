// Package notification provides the notification dispatcher: producers ask
// for a user to be notified, the request travels the event bus, and the
// registered handler persists it. Reads go straight to the store.
package notification

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/agrosphere/backend/pkg/domain/notification"
	"github.com/agrosphere/backend/pkg/dto"
	"github.com/agrosphere/backend/pkg/eventbus"
	"github.com/agrosphere/backend/pkg/repository"
	"github.com/google/uuid"
)

// Service dispatches and lists notifications.
type Service struct {
	uow    repository.UnitOfWork
	bus    eventbus.Bus
	logger *slog.Logger
}

// New creates a Service with a UnitOfWork, an event bus and a logger.
func New(
	uow repository.UnitOfWork,
	bus eventbus.Bus,
	logger *slog.Logger,
) *Service {
	return &Service{uow: uow, bus: bus, logger: logger}
}

// Notify emits a NotificationRequested event for userID. It satisfies the
// Notifier capability other services depend on; whether the notification is
// eventually persisted is invisible to the caller.
func (s *Service) Notify(
	ctx context.Context,
	userID uuid.UUID,
	kind, body string,
) error {
	log := s.logger.With("context", "Notify", "userID", userID, "kind", kind)
	if err := s.bus.Emit(ctx, notification.NewRequested(userID, kind, body)); err != nil {
		log.Error("Notify failed", "error", err)
		return err
	}
	log.Debug("Notify emitted")
	return nil
}

// Register subscribes the persistence handler on the bus. Call once at
// startup.
func (s *Service) Register() {
	s.bus.Register(notification.Requested{}.Type(), s.handleRequested)
}

// handleRequested persists one Requested event as a notification row. The
// event ID doubles as the row ID, so a redelivered event lands on the same
// primary key instead of duplicating the notice.
func (s *Service) handleRequested(ctx context.Context, e eventbus.Event) error {
	log := s.logger.With("context", "handleRequested")
	req, ok := asRequested(e)
	if !ok {
		log.Error("handleRequested got unexpected event", "type", e.Type())
		return fmt.Errorf("unexpected event %T for %s", e, e.Type())
	}
	err := s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.NotificationRepository()
		if err != nil {
			return err
		}
		return repo.Create(ctx, &dto.NotificationCreate{
			ID:     req.EventID,
			UserID: req.UserID,
			Kind:   req.Kind,
			Body:   req.Body,
		})
	})
	if err != nil {
		log.Error("handleRequested failed", "eventID", req.EventID, "error", err)
		return err
	}
	log.Info("notification persisted", "eventID", req.EventID, "userID", req.UserID)
	return nil
}

// asRequested unwraps the event regardless of whether the transport
// delivered it by value or by pointer. The Redis decoder produces pointers;
// the memory bus passes through whatever was emitted.
func asRequested(e eventbus.Event) (notification.Requested, bool) {
	switch v := e.(type) {
	case notification.Requested:
		return v, true
	case *notification.Requested:
		return *v, true
	default:
		return notification.Requested{}, false
	}
}

// ListNotifications returns the user's notifications newest-first.
func (s *Service) ListNotifications(
	ctx context.Context,
	userID uuid.UUID,
	limit, offset int,
) (list []*dto.NotificationRead, err error) {
	log := s.logger.With("context", "ListNotifications", "userID", userID)
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.NotificationRepository()
		if err != nil {
			return err
		}
		list, err = repo.List(ctx, userID, limit, offset)
		return err
	})
	if err != nil {
		log.Error("ListNotifications failed", "error", err)
		list = nil
	}
	return
}

// MarkNotificationsRead flips all the user's unread notifications to read
// and returns how many changed. Idempotent.
func (s *Service) MarkNotificationsRead(
	ctx context.Context,
	userID uuid.UUID,
) (updated int64, err error) {
	log := s.logger.With("context", "MarkNotificationsRead", "userID", userID)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		repo, err := uow.NotificationRepository()
		if err != nil {
			return err
		}
		updated, err = repo.MarkAllRead(ctx, userID)
		return err
	})
	if err != nil {
		log.Error("MarkNotificationsRead failed", "error", err)
		return 0, err
	}
	log.Debug("MarkNotificationsRead done", "updated", updated)
	return
}

// Package connection provides business logic for the request network:
// sending connection requests, answering them and listing the results.
package connection

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/agrosphere/backend/pkg/domain/connection"
	"github.com/agrosphere/backend/pkg/domain/notification"
	"github.com/agrosphere/backend/pkg/domain/user"
	"github.com/agrosphere/backend/pkg/dto"
	"github.com/agrosphere/backend/pkg/repository"
	"github.com/google/uuid"
)

// Notifier is the narrow capability this service needs from the
// notification side. Dispatch failures never fail the triggering operation.
type Notifier interface {
	Notify(ctx context.Context, userID uuid.UUID, kind, body string) error
}

// Service provides business logic for connection operations.
type Service struct {
	uow      repository.UnitOfWork
	notifier Notifier
	logger   *slog.Logger
}

// New creates a Service with a UnitOfWork, a Notifier and a logger.
func New(
	uow repository.UnitOfWork,
	notifier Notifier,
	logger *slog.Logger,
) *Service {
	return &Service{uow: uow, notifier: notifier, logger: logger}
}

// SendRequest opens a pending connection from requester to receiver. Any
// existing row for the pair, in either direction and in any status, blocks
// the request; a past rejection therefore blocks forever. On success the
// receiver is notified best-effort.
func (s *Service) SendRequest(
	ctx context.Context,
	requesterID, receiverID uuid.UUID,
) (conn *dto.ConnectionRead, err error) {
	log := s.logger.With(
		"context", "SendRequest",
		"requesterID", requesterID,
		"receiverID", receiverID,
	)
	log.Debug("SendRequest called")
	if requesterID == receiverID {
		return nil, connection.ErrSelfConnection
	}

	var requesterName string
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		users, err := uow.UserRepository()
		if err != nil {
			return err
		}
		requester, err := users.Get(ctx, requesterID)
		if err != nil {
			return err
		}
		if requester == nil {
			return user.ErrUserNotFound
		}
		requesterName = requester.Username
		if exists, err := users.Exists(ctx, receiverID); err != nil {
			return err
		} else if !exists {
			return user.ErrUserNotFound
		}

		conns, err := uow.ConnectionRepository()
		if err != nil {
			return err
		}
		existing, err := conns.GetByPair(ctx, requesterID, receiverID)
		if err != nil {
			return err
		}
		if existing != nil {
			return connection.ErrAlreadyRelated
		}

		id := uuid.New()
		if err := conns.Create(ctx, &dto.ConnectionCreate{
			ID:          id,
			RequesterID: requesterID,
			ReceiverID:  receiverID,
			PairKey:     connection.PairKey(requesterID, receiverID),
		}); err != nil {
			return err
		}
		conn, err = conns.Get(ctx, id)
		return err
	})
	if err != nil {
		log.Error("SendRequest failed", "error", err)
		return nil, err
	}

	// Best effort: the request succeeded even if the notice does not go out.
	if nerr := s.notifier.Notify(
		ctx,
		receiverID,
		notification.KindConnectionRequest,
		fmt.Sprintf("%s sent you a connection request", requesterName),
	); nerr != nil {
		log.Warn("SendRequest notification dispatch failed", "error", nerr)
	}
	log.Info("SendRequest successful", "connectionID", conn.ID)
	return conn, nil
}

// Respond answers a pending request addressed to responderID. The update is
// a single conditional write: when it matches no row the caller learns only
// that the request was not theirs to answer, not which precondition failed.
// Accepting notifies the requester best-effort.
func (s *Service) Respond(
	ctx context.Context,
	connectionID, responderID uuid.UUID,
	decision string,
) (conn *dto.ConnectionRead, err error) {
	log := s.logger.With(
		"context", "Respond",
		"connectionID", connectionID,
		"responderID", responderID,
	)
	log.Debug("Respond called", "decision", decision)
	status, err := connection.ParseDecision(decision)
	if err != nil {
		return nil, err
	}

	var responderName string
	var requesterID uuid.UUID
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		conns, err := uow.ConnectionRepository()
		if err != nil {
			return err
		}
		ok, err := conns.UpdateStatusIfPending(ctx, connectionID, responderID, status)
		if err != nil {
			return err
		}
		if !ok {
			return connection.ErrNotAnswerable
		}
		conn, err = conns.Get(ctx, connectionID)
		if err != nil {
			return err
		}
		requesterID = conn.RequesterID

		if status != connection.StatusAccepted {
			return nil
		}
		users, err := uow.UserRepository()
		if err != nil {
			return err
		}
		responder, err := users.Get(ctx, responderID)
		if err != nil {
			return err
		}
		if responder != nil {
			responderName = responder.Username
		}
		return nil
	})
	if err != nil {
		log.Error("Respond failed", "error", err)
		return nil, err
	}

	if status == connection.StatusAccepted {
		if nerr := s.notifier.Notify(
			ctx,
			requesterID,
			notification.KindConnectionAccepted,
			fmt.Sprintf("%s accepted your connection request", responderName),
		); nerr != nil {
			log.Warn("Respond notification dispatch failed", "error", nerr)
		}
	}
	log.Info("Respond successful", "status", status)
	return conn, nil
}

// ListConnections returns the user's accepted connections resolved to the
// counterpart, newest first.
func (s *Service) ListConnections(
	ctx context.Context,
	userID uuid.UUID,
) (friends []connection.Friend, err error) {
	log := s.logger.With("context", "ListConnections", "userID", userID)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		conns, err := uow.ConnectionRepository()
		if err != nil {
			return err
		}
		rows, err := conns.ListAcceptedPairRows(ctx, userID)
		if err != nil {
			return err
		}
		friends = make([]connection.Friend, 0, len(rows))
		for _, row := range rows {
			friends = append(friends, connection.ResolveFriend(row, userID))
		}
		return nil
	})
	if err != nil {
		log.Error("ListConnections failed", "error", err)
		return nil, err
	}
	return
}

// ListRequests returns the user's pending requests in the given direction,
// resolved to the counterpart.
func (s *Service) ListRequests(
	ctx context.Context,
	userID uuid.UUID,
	direction string,
) (requests []dto.PendingRequest, err error) {
	log := s.logger.With("context", "ListRequests", "userID", userID)
	dir, err := connection.ParseDirection(direction)
	if err != nil {
		return nil, err
	}
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		conns, err := uow.ConnectionRepository()
		if err != nil {
			return err
		}
		rows, err := conns.ListPendingPairRows(ctx, userID, dir)
		if err != nil {
			return err
		}
		requests = make([]dto.PendingRequest, 0, len(rows))
		for _, row := range rows {
			f := connection.ResolveFriend(row, userID)
			requests = append(requests, dto.PendingRequest{
				ConnectionID: f.ConnectionID,
				Direction:    string(f.Direction),
				UserID:       f.UserID,
				Username:     f.Username,
				Names:        f.Names,
				Area:         f.Area,
				City:         f.City,
				Country:      f.Country,
				RequestedAt:  row.CreatedAt,
			})
		}
		return nil
	})
	if err != nil {
		log.Error("ListRequests failed", "error", err)
		return nil, err
	}
	return
}

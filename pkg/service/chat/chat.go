// Package chat provides business logic for two-party conversations:
// find-or-create, appending messages, listing and read tracking.
package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/agrosphere/backend/pkg/config"
	"github.com/agrosphere/backend/pkg/domain"
	"github.com/agrosphere/backend/pkg/domain/chat"
	"github.com/agrosphere/backend/pkg/domain/user"
	"github.com/agrosphere/backend/pkg/dto"
	"github.com/agrosphere/backend/pkg/repository"
	"github.com/google/uuid"
)

// Service provides business logic for conversation and message operations.
type Service struct {
	uow    repository.UnitOfWork
	cfg    *config.Chat
	logger *slog.Logger
}

// New creates a Service with a UnitOfWork, pagination config and a logger.
func New(
	uow repository.UnitOfWork,
	cfg *config.Chat,
	logger *slog.Logger,
) *Service {
	return &Service{uow: uow, cfg: cfg, logger: logger}
}

// clampPage bounds caller-supplied pagination to the configured window.
func (s *Service) clampPage(limit, offset int) (int, int) {
	if limit <= 0 {
		limit = s.cfg.DefaultPageSize
	}
	if limit > s.cfg.MaxPageSize {
		limit = s.cfg.MaxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// FindOrCreateConversation returns the conversation between the two users,
// creating it together with both participant rows when absent. Repeated and
// concurrent calls converge on one row: the pair-key unique index makes the
// losing inserter's transaction fail with a conflict, after which it reads
// the winner's row. The created flag reports whether this call inserted.
func (s *Service) FindOrCreateConversation(
	ctx context.Context,
	userA, userB uuid.UUID,
) (conv *dto.ConversationRead, created bool, err error) {
	log := s.logger.With(
		"context", "FindOrCreateConversation",
		"userA", userA,
		"userB", userB,
	)
	log.Debug("FindOrCreateConversation called")
	if userA == userB {
		return nil, false, chat.ErrSelfConversation
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		users, err := uow.UserRepository()
		if err != nil {
			return err
		}
		for _, id := range []uuid.UUID{userA, userB} {
			if exists, err := users.Exists(ctx, id); err != nil {
				return err
			} else if !exists {
				return fmt.Errorf("%w: %s", user.ErrUserNotFound, id)
			}
		}
		convs, err := uow.ConversationRepository()
		if err != nil {
			return err
		}
		conv, err = convs.FindByParticipants(ctx, userA, userB)
		return err
	})
	if err != nil {
		log.Error("FindOrCreateConversation lookup failed", "error", err)
		return nil, false, err
	}
	if conv != nil {
		return conv, false, nil
	}

	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		convs, err := uow.ConversationRepository()
		if err != nil {
			return err
		}
		c, err := chat.NewBetween(userA, userB)
		if err != nil {
			return err
		}
		if err := convs.CreateConversation(ctx, c); err != nil {
			return err
		}
		if err := convs.AddParticipant(ctx, c.ID, userA); err != nil {
			return err
		}
		if err := convs.AddParticipant(ctx, c.ID, userB); err != nil {
			return err
		}
		conv, err = convs.GetConversation(ctx, c.ID)
		return err
	})
	if err == nil {
		log.Info("conversation created", "conversationID", conv.ID)
		return conv, true, nil
	}
	if !errors.Is(err, domain.ErrConflict) {
		log.Error("FindOrCreateConversation create failed", "error", err)
		return nil, false, err
	}

	// Lost the race: the winner has committed, so the re-read finds it.
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		convs, err := uow.ConversationRepository()
		if err != nil {
			return err
		}
		conv, err = convs.FindByParticipants(ctx, userA, userB)
		return err
	})
	if err != nil {
		log.Error("FindOrCreateConversation re-read failed", "error", err)
		return nil, false, err
	}
	if conv == nil {
		return nil, false, chat.ErrConversationNotFound
	}
	return conv, false, nil
}

// AppendMessage stores a message from senderID in the conversation. The
// sender must be a participant; the insert and the conversation's
// last-message bump commit together.
func (s *Service) AppendMessage(
	ctx context.Context,
	conversationID, senderID uuid.UUID,
	content string,
) (msg *dto.MessageRead, err error) {
	log := s.logger.With(
		"context", "AppendMessage",
		"conversationID", conversationID,
		"senderID", senderID,
	)
	log.Debug("AppendMessage called")
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		convs, err := uow.ConversationRepository()
		if err != nil {
			return err
		}
		if err := s.requireParticipant(ctx, uow, conversationID, senderID); err != nil {
			return err
		}
		m, err := chat.NewMessage(conversationID, senderID, content)
		if err != nil {
			return err
		}
		if err := convs.CreateMessage(ctx, m); err != nil {
			return err
		}
		msg, err = convs.GetMessage(ctx, m.ID)
		return err
	})
	if err != nil {
		log.Error("AppendMessage failed", "error", err)
		return nil, err
	}
	log.Info("AppendMessage successful", "messageID", msg.ID)
	return msg, nil
}

// ListMessages returns the conversation's messages oldest-first. The
// requester must be a participant.
func (s *Service) ListMessages(
	ctx context.Context,
	conversationID, requesterID uuid.UUID,
	limit, offset int,
) (msgs []*dto.MessageRead, err error) {
	log := s.logger.With(
		"context", "ListMessages",
		"conversationID", conversationID,
		"requesterID", requesterID,
	)
	limit, offset = s.clampPage(limit, offset)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		convs, err := uow.ConversationRepository()
		if err != nil {
			return err
		}
		if err := s.requireParticipant(ctx, uow, conversationID, requesterID); err != nil {
			return err
		}
		msgs, err = convs.ListMessages(ctx, conversationID, limit, offset)
		return err
	})
	if err != nil {
		log.Error("ListMessages failed", "error", err)
		return nil, err
	}
	return
}

// MarkRead marks every message in the conversation not sent by readerID as
// read and returns how many changed. Idempotent; the reader must be a
// participant.
func (s *Service) MarkRead(
	ctx context.Context,
	conversationID, readerID uuid.UUID,
) (updated int64, err error) {
	log := s.logger.With(
		"context", "MarkRead",
		"conversationID", conversationID,
		"readerID", readerID,
	)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		convs, err := uow.ConversationRepository()
		if err != nil {
			return err
		}
		if err := s.requireParticipant(ctx, uow, conversationID, readerID); err != nil {
			return err
		}
		updated, err = convs.MarkRead(ctx, conversationID, readerID)
		return err
	})
	if err != nil {
		log.Error("MarkRead failed", "error", err)
		return 0, err
	}
	log.Debug("MarkRead done", "updated", updated)
	return
}

// ListConversations returns the user's conversation summaries ordered by
// last activity, conversations without messages last.
func (s *Service) ListConversations(
	ctx context.Context,
	userID uuid.UUID,
	limit, offset int,
) (summaries []*dto.ConversationSummary, err error) {
	log := s.logger.With("context", "ListConversations", "userID", userID)
	limit, offset = s.clampPage(limit, offset)
	err = s.uow.Do(ctx, func(uow repository.UnitOfWork) error {
		convs, err := uow.ConversationRepository()
		if err != nil {
			return err
		}
		summaries, err = convs.ListSummaries(ctx, userID, limit, offset)
		return err
	})
	if err != nil {
		log.Error("ListConversations failed", "error", err)
		return nil, err
	}
	return
}

// requireParticipant resolves the two access failures in order: a missing
// conversation reads as not-found, an existing one the actor is outside of
// as forbidden.
func (s *Service) requireParticipant(
	ctx context.Context,
	uow repository.UnitOfWork,
	conversationID, actorID uuid.UUID,
) error {
	convs, err := uow.ConversationRepository()
	if err != nil {
		return err
	}
	conv, err := convs.GetConversation(ctx, conversationID)
	if err != nil {
		return err
	}
	if conv == nil {
		return chat.ErrConversationNotFound
	}
	ok, err := convs.IsParticipant(ctx, conversationID, actorID)
	if err != nil {
		return err
	}
	if !ok {
		return chat.ErrNotParticipant
	}
	return nil
}

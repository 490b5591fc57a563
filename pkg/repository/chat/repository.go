package chat

import (
	"context"

	"github.com/agrosphere/backend/pkg/domain/chat"
	"github.com/agrosphere/backend/pkg/dto"
	"github.com/google/uuid"
)

// Repository defines the interface for conversation, participant and message
// data access.
type Repository interface {
	// FindByParticipants returns the conversation whose participant set is
	// exactly {a, b} (count-based match), nil when none exists.
	FindByParticipants(ctx context.Context, a, b uuid.UUID) (*dto.ConversationRead, error)

	// CreateConversation inserts the conversation row. Key conflicts on the
	// pair key surface as domain.ErrConflict so callers can re-read the
	// winner of a concurrent find-or-create.
	CreateConversation(ctx context.Context, conv *chat.Conversation) error

	// AddParticipant inserts a membership row; inserting an existing
	// member is a no-op.
	AddParticipant(ctx context.Context, conversationID, userID uuid.UUID) error

	// IsParticipant reports whether the user belongs to the conversation.
	IsParticipant(ctx context.Context, conversationID, userID uuid.UUID) (bool, error)

	// GetConversation retrieves a conversation by ID, nil when absent.
	GetConversation(ctx context.Context, id uuid.UUID) (*dto.ConversationRead, error)

	// CreateMessage inserts the message and bumps the conversation's
	// last-message timestamp.
	CreateMessage(ctx context.Context, msg *chat.Message) error

	// GetMessage retrieves one message joined with sender display fields.
	GetMessage(ctx context.Context, id uuid.UUID) (*dto.MessageRead, error)

	// ListMessages returns messages oldest-first, bounded by limit/offset.
	ListMessages(ctx context.Context, conversationID uuid.UUID, limit, offset int) ([]*dto.MessageRead, error)

	// MarkRead flips read=true on unread messages in the conversation not
	// sent by readerID; returns how many rows changed.
	MarkRead(ctx context.Context, conversationID, readerID uuid.UUID) (int64, error)

	// ListSummaries returns the user's conversations with counterpart,
	// last-message fields and unread count, ordered by last activity
	// descending with empty conversations last.
	ListSummaries(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*dto.ConversationSummary, error)
}

// Package chat models two-party conversations and their messages.
// Participancy is the only gate on messaging: whether the two users are
// connected is not checked here, matching the product's open-messaging
// behavior.
package chat

import (
	"fmt"
	"strings"
	"time"

	"github.com/agrosphere/backend/pkg/domain"
	"github.com/agrosphere/backend/pkg/domain/connection"
	"github.com/google/uuid"
)

// Each error wraps the taxonomy sentinel so errors.Is resolves both the
// specific failure and its kind.
var (
	// ErrEmptyContent is returned when a message is empty after trimming.
	ErrEmptyContent = fmt.Errorf("%w: message content cannot be empty", domain.ErrValidation)
	// ErrSelfConversation is returned when both participants are the same user.
	ErrSelfConversation = fmt.Errorf("%w: cannot start a conversation with yourself", domain.ErrValidation)
	// ErrNotParticipant is returned when the actor is not a member of the conversation.
	ErrNotParticipant = fmt.Errorf("%w: not a participant of this conversation", domain.ErrForbidden)
	// ErrConversationNotFound is returned when the conversation does not exist.
	ErrConversationNotFound = fmt.Errorf("%w: conversation not found", domain.ErrNotFound)
)

// Conversation is a two-party thread. PairKey is the deterministic key of
// the unordered participant pair; its unique index is what makes concurrent
// find-or-create calls converge on a single row.
type Conversation struct {
	ID            uuid.UUID  `json:"id"`
	PairKey       string     `json:"-"`
	CreatedAt     time.Time  `json:"created_at"`
	LastMessageAt *time.Time `json:"last_message_at"`
}

// NewBetween builds a conversation for the unordered pair (a, b).
func NewBetween(a, b uuid.UUID) (*Conversation, error) {
	if a == b {
		return nil, ErrSelfConversation
	}
	return &Conversation{
		ID:        uuid.New(),
		PairKey:   connection.PairKey(a, b),
		CreatedAt: time.Now().UTC(),
	}, nil
}

// Participant is a membership row. Unique per (conversation, user);
// re-adding an existing participant is a no-op, not an error.
type Participant struct {
	ConversationID uuid.UUID `json:"conversation_id"`
	UserID         uuid.UUID `json:"user_id"`
	JoinedAt       time.Time `json:"joined_at"`
}

// Message is immutable once created: no edit or delete is modeled.
type Message struct {
	ID             uuid.UUID `json:"id"`
	ConversationID uuid.UUID `json:"conversation_id"`
	SenderID       uuid.UUID `json:"sender_id"`
	Content        string    `json:"content"`
	Read           bool      `json:"read"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewMessage trims the content and rejects whitespace-only input. The stored
// content is always the trimmed form.
func NewMessage(conversationID, senderID uuid.UUID, content string) (*Message, error) {
	trimmed := strings.TrimSpace(content)
	if trimmed == "" {
		return nil, ErrEmptyContent
	}
	return &Message{
		ID:             uuid.New(),
		ConversationID: conversationID,
		SenderID:       senderID,
		Content:        trimmed,
		CreatedAt:      time.Now().UTC(),
	}, nil
}

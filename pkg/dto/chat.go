package dto

import (
	"time"

	"github.com/google/uuid"
)

// ConversationRead is a read-optimized view of a conversation plus the
// participant set.
type ConversationRead struct {
	ID            uuid.UUID   `json:"id"`
	CreatedAt     time.Time   `json:"created_at"`
	LastMessageAt *time.Time  `json:"last_message_at"`
	Participants  []uuid.UUID `json:"participants,omitempty"`
}

// MessageRead is a message joined with the sender's display fields.
type MessageRead struct {
	ID             uuid.UUID `json:"id"`
	ConversationID uuid.UUID `json:"conversation_id"`
	SenderID       uuid.UUID `json:"sender_id"`
	SenderUsername string    `json:"sender_username,omitempty"`
	SenderNames    string    `json:"sender_names,omitempty"`
	Content        string    `json:"content"`
	Read           bool      `json:"read"`
	CreatedAt      time.Time `json:"created_at"`
}

// ConversationSummary is one row of a user's conversation list: the
// counterpart, the most recent message (nil fields when the conversation has
// none yet) and how many messages the viewer has not read.
type ConversationSummary struct {
	ID                 uuid.UUID  `json:"id"`
	CreatedAt          time.Time  `json:"created_at"`
	LastMessageAt      *time.Time `json:"last_message_at"`
	OtherUserID        uuid.UUID  `json:"other_user_id"`
	OtherUsername      string     `json:"other_username"`
	OtherNames         string     `json:"other_names,omitempty"`
	LastMessageContent *string    `json:"last_message_content"`
	UnreadCount        int64      `json:"unread_count"`
}

package chat

import "github.com/google/uuid"

// SendMessageInput is the request body for appending a message.
type SendMessageInput struct {
	ConversationID uuid.UUID `json:"conversation_id" validate:"required"`
	Content        string    `json:"content" validate:"required,max=4000"`
}

// OpenConversationInput is the request body for opening (or finding) the
// conversation with another user.
type OpenConversationInput struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
}

package chat

import (
	"time"

	"github.com/google/uuid"
)

// Conversation represents a two-party thread row. PairKey carries the sorted
// "<small>:<large>" form of the participant IDs; its unique index makes
// concurrent find-or-create calls converge on one row.
type Conversation struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	PairKey       string    `gorm:"uniqueIndex;not null;size:80"`
	CreatedAt     time.Time
	LastMessageAt *time.Time `gorm:"index"`
}

// TableName specifies the table name for the Conversation model.
func (Conversation) TableName() string {
	return "conversations"
}

// Participant represents a conversation membership row, unique per
// (conversation, user).
type Participant struct {
	ConversationID uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID         uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	JoinedAt       time.Time
}

// TableName specifies the table name for the Participant model.
func (Participant) TableName() string {
	return "conversation_participants"
}

// Message represents a message row. Rows are immutable except for the read
// flag.
type Message struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key"`
	ConversationID uuid.UUID `gorm:"type:uuid;not null;index"`
	SenderID       uuid.UUID `gorm:"type:uuid;not null;index"`
	Content        string    `gorm:"not null"`
	Read           bool      `gorm:"not null;default:false"`
	CreatedAt      time.Time `gorm:"index"`
}

// TableName specifies the table name for the Message model.
func (Message) TableName() string {
	return "messages"
}

package connection

import (
	"time"

	"github.com/google/uuid"
)

// Connection represents a connection request row in the database. PairKey is
// the sorted "<small>:<large>" form of the two user IDs; its unique index is
// what guarantees at most one row per unordered pair.
type Connection struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	RequesterID uuid.UUID `gorm:"type:uuid;not null;index"`
	ReceiverID  uuid.UUID `gorm:"type:uuid;not null;index"`
	PairKey     string    `gorm:"uniqueIndex;not null;size:80"`
	Status      string    `gorm:"not null;size:20;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for the Connection model.
func (Connection) TableName() string {
	return "connections"
}

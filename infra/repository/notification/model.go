package notification

import (
	"time"

	"github.com/google/uuid"
)

// Notification represents one notice row shown to a user.
type Notification struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Kind      string    `gorm:"not null;size:50"`
	Body      string    `gorm:"not null"`
	Read      bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
}

// TableName specifies the table name for the Notification model.
func (Notification) TableName() string {
	return "notifications"
}

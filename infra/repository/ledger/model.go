package ledger

import (
	"time"

	"github.com/google/uuid"
)

// Record represents one expense/earning row. Year and Month are denormalized
// from OccurredOn so the dashboard can group on integer columns.
type Record struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index:idx_records_user_date"`
	Type        string    `gorm:"not null;size:20"`
	Category    string    `gorm:"not null;size:50"`
	Amount      float64   `gorm:"not null"`
	Description string
	OccurredOn  time.Time `gorm:"not null;index:idx_records_user_date"`
	Year        int       `gorm:"not null;index"`
	Month       int       `gorm:"not null"`
	CreatedAt   time.Time
}

// TableName specifies the table name for the Record model.
func (Record) TableName() string {
	return "records"
}

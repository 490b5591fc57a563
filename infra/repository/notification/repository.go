package notification

import (
	"context"

	"github.com/agrosphere/backend/pkg/dto"
	notificationrepo "github.com/agrosphere/backend/pkg/repository/notification"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) notificationrepo.Repository {
	return &repository{db: db}
}

// Create inserts the notification. The caller supplies the ID; re-creating
// an existing ID is a no-op, which makes event redeliveries harmless.
func (r *repository) Create(
	ctx context.Context,
	create *dto.NotificationCreate,
) error {
	n := &Notification{
		ID:     create.ID,
		UserID: create.UserID,
		Kind:   create.Kind,
		Body:   create.Body,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(n).Error
}

func (r *repository) List(
	ctx context.Context,
	userID uuid.UUID,
	limit, offset int,
) ([]*dto.NotificationRead, error) {
	var rows []Notification
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make([]*dto.NotificationRead, 0, len(rows))
	for i := range rows {
		result = append(result, mapModelToDTO(&rows[i]))
	}
	return result, nil
}

func (r *repository) MarkAllRead(
	ctx context.Context,
	userID uuid.UUID,
) (int64, error) {
	res := r.db.WithContext(ctx).Model(&Notification{}).
		Where("user_id = ? AND read = false", userID).
		Update("read", true)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func mapModelToDTO(n *Notification) *dto.NotificationRead {
	return &dto.NotificationRead{
		ID:        n.ID,
		UserID:    n.UserID,
		Kind:      n.Kind,
		Body:      n.Body,
		Read:      n.Read,
		CreatedAt: n.CreatedAt,
	}
}

var _ notificationrepo.Repository = (*repository)(nil)

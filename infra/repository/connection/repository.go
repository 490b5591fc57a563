package connection

import (
	"context"
	"errors"

	infrarepo "github.com/agrosphere/backend/infra/repository"
	"github.com/agrosphere/backend/pkg/domain/connection"
	"github.com/agrosphere/backend/pkg/dto"
	connectionrepo "github.com/agrosphere/backend/pkg/repository/connection"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) connectionrepo.Repository {
	return &repository{db: db}
}

func (r *repository) Create(
	ctx context.Context,
	create *dto.ConnectionCreate,
) error {
	conn := &Connection{
		ID:          create.ID,
		RequesterID: create.RequesterID,
		ReceiverID:  create.ReceiverID,
		PairKey:     create.PairKey,
		Status:      string(connection.StatusPending),
	}
	if err := r.db.WithContext(ctx).Create(conn).Error; err != nil {
		return infrarepo.MapGormErrorToDomain(err)
	}
	return nil
}

func (r *repository) Get(
	ctx context.Context,
	id uuid.UUID,
) (*dto.ConnectionRead, error) {
	var conn Connection
	if err := r.db.WithContext(ctx).First(&conn, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDTO(&conn), nil
}

func (r *repository) GetByPair(
	ctx context.Context,
	a, b uuid.UUID,
) (*dto.ConnectionRead, error) {
	var conn Connection
	err := r.db.WithContext(ctx).
		Where("pair_key = ?", connection.PairKey(a, b)).
		First(&conn).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDTO(&conn), nil
}

// UpdateStatusIfPending is a single conditional UPDATE: the row must still
// be pending and addressed to receiverID. Zero rows affected means the
// request is absent, already answered, or someone else's; callers cannot
// distinguish the three and that is intentional.
func (r *repository) UpdateStatusIfPending(
	ctx context.Context,
	id, receiverID uuid.UUID,
	status connection.Status,
) (bool, error) {
	res := r.db.WithContext(ctx).Model(&Connection{}).
		Where("id = ? AND receiver_id = ? AND status = ?",
			id, receiverID, connection.StatusPending).
		Update("status", string(status))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

const pairRowSelect = `c.id AS connection_id, c.status, c.created_at, c.updated_at,
	req.id AS requester_id, req.username AS requester_username,
	req.names AS requester_names, req.area AS requester_area,
	req.city AS requester_city, req.country AS requester_country,
	rec.id AS receiver_id, rec.username AS receiver_username,
	rec.names AS receiver_names, rec.area AS receiver_area,
	rec.city AS receiver_city, rec.country AS receiver_country`

func (r *repository) ListAcceptedPairRows(
	ctx context.Context,
	userID uuid.UUID,
) ([]connection.PairRow, error) {
	var rows []connection.PairRow
	err := r.db.WithContext(ctx).
		Table("connections c").
		Select(pairRowSelect).
		Joins("JOIN users req ON req.id = c.requester_id").
		Joins("JOIN users rec ON rec.id = c.receiver_id").
		Where("c.status = ?", connection.StatusAccepted).
		Where("c.requester_id = ? OR c.receiver_id = ?", userID, userID).
		Order("c.updated_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *repository) ListPendingPairRows(
	ctx context.Context,
	userID uuid.UUID,
	direction connection.Direction,
) ([]connection.PairRow, error) {
	q := r.db.WithContext(ctx).
		Table("connections c").
		Select(pairRowSelect).
		Joins("JOIN users req ON req.id = c.requester_id").
		Joins("JOIN users rec ON rec.id = c.receiver_id").
		Where("c.status = ?", connection.StatusPending)

	switch direction {
	case connection.DirectionSent:
		q = q.Where("c.requester_id = ?", userID)
	case connection.DirectionReceived:
		q = q.Where("c.receiver_id = ?", userID)
	default:
		q = q.Where("c.requester_id = ? OR c.receiver_id = ?", userID, userID)
	}

	var rows []connection.PairRow
	if err := q.Order("c.created_at DESC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func mapModelToDTO(conn *Connection) *dto.ConnectionRead {
	return &dto.ConnectionRead{
		ID:          conn.ID,
		RequesterID: conn.RequesterID,
		ReceiverID:  conn.ReceiverID,
		Status:      conn.Status,
		CreatedAt:   conn.CreatedAt,
		UpdatedAt:   conn.UpdatedAt,
	}
}

var _ connectionrepo.Repository = (*repository)(nil)

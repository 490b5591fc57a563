package user

import (
	"context"
	"errors"
	"strings"

	infrarepo "github.com/agrosphere/backend/infra/repository"
	"github.com/agrosphere/backend/pkg/domain/connection"
	"github.com/agrosphere/backend/pkg/dto"
	"github.com/agrosphere/backend/pkg/repository/predicate"
	"github.com/agrosphere/backend/pkg/repository/user"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) user.Repository {
	return &repository{db: db}
}

func (r *repository) Create(
	ctx context.Context,
	create *dto.UserCreate,
) error {
	user := &User{
		ID:       create.ID,
		Username: create.Username,
		Email:    create.Email,
		Password: create.Password,
		Names:    create.Names,
		Area:     create.Area,
		City:     create.City,
		Country:  create.Country,
	}
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		// Unique violations on username/email surface as domain.ErrConflict.
		return infrarepo.MapGormErrorToDomain(err)
	}
	return nil
}

func (r *repository) Update(
	ctx context.Context,
	id uuid.UUID,
	uu *dto.UserUpdate,
) error {
	updates := make(map[string]interface{})

	// Only include non-nil fields in the update
	if uu.Names != nil {
		updates["names"] = *uu.Names
	}
	if uu.Area != nil {
		updates["area"] = *uu.Area
	}
	if uu.City != nil {
		updates["city"] = *uu.City
	}
	if uu.Country != nil {
		updates["country"] = *uu.Country
	}
	if uu.Banned != nil {
		updates["banned"] = *uu.Banned
	}

	// If no fields to update, return early
	if len(updates) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Model(&User{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (r *repository) Get(
	ctx context.Context,
	id uuid.UUID,
) (*dto.UserRead, error) {
	var user User
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDTO(&user), nil
}

func (r *repository) GetByEmail(
	ctx context.Context,
	email string,
) (*dto.UserRead, error) {
	var user User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDTO(&user), nil
}

func (r *repository) GetByUsername(
	ctx context.Context,
	username string,
) (*dto.UserRead, error) {
	var user User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDTO(&user), nil
}

func (r *repository) Exists(
	ctx context.Context,
	id uuid.UUID,
) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&User{}).Where("id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// matchRow is the scan target for discovery queries: a user row plus the
// connection row relating them to the viewer, when one exists.
type matchRow struct {
	ID           uuid.UUID
	Username     string
	Names        string
	Area         string
	City         string
	Country      string
	ConnectionID *uuid.UUID
	Status       *string
	RequesterID  *uuid.UUID
}

const matchSelect = `u.id, u.username, u.names, u.area, u.city, u.country,
	c.id AS connection_id, c.status, c.requester_id`

const matchJoin = `LEFT JOIN connections c
	ON (c.requester_id = ? AND c.receiver_id = u.id)
	OR (c.requester_id = u.id AND c.receiver_id = ?)`

func (r *repository) MatchByLocation(
	ctx context.Context,
	viewerID uuid.UUID,
	area, city string,
) ([]*dto.MatchedUser, error) {
	area = strings.TrimSpace(area)
	city = strings.TrimSpace(city)

	loc := predicate.New().
		AddIf(area != "", "LOWER(u.area) = LOWER(?)", area).
		AddIf(city != "", "LOWER(u.city) = LOWER(?)", city)
	if loc.Empty() {
		return []*dto.MatchedUser{}, nil
	}
	return r.matched(ctx, viewerID, loc)
}

func (r *repository) Search(
	ctx context.Context,
	viewerID uuid.UUID,
	query string,
	includeNames bool,
) ([]*dto.MatchedUser, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []*dto.MatchedUser{}, nil
	}
	pattern := "%" + strings.ToLower(query) + "%"

	fields := predicate.New().
		Add("LOWER(u.city) LIKE ?", pattern).
		Add("LOWER(u.area) LIKE ?", pattern).
		Add("LOWER(u.country) LIKE ?", pattern).
		AddIf(includeNames, "LOWER(u.names) LIKE ?", pattern)
	return r.matched(ctx, viewerID, fields)
}

// matched runs a discovery query with the given OR group of location
// predicates and annotates each row with the viewer's connection state.
func (r *repository) matched(
	ctx context.Context,
	viewerID uuid.UUID,
	group *predicate.Builder,
) ([]*dto.MatchedUser, error) {
	b := predicate.New().
		Add("u.id <> ?", viewerID).
		Add("u.banned = false").
		Or(group)

	var rows []matchRow
	err := r.db.WithContext(ctx).
		Table("users u").
		Select(matchSelect).
		Joins(matchJoin, viewerID, viewerID).
		Where(b.SQL(), b.Args()...).
		Order("u.username ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return mapMatchRows(rows, viewerID), nil
}

func mapMatchRows(rows []matchRow, viewerID uuid.UUID) []*dto.MatchedUser {
	result := make([]*dto.MatchedUser, 0, len(rows))
	for i := range rows {
		result = append(result, mapMatchRow(&rows[i], viewerID))
	}
	return result
}

func mapMatchRow(row *matchRow, viewerID uuid.UUID) *dto.MatchedUser {
	m := &dto.MatchedUser{
		ID:       row.ID,
		Username: row.Username,
		Names:    row.Names,
		Area:     row.Area,
		City:     row.City,
		Country:  row.Country,
	}
	if row.ConnectionID == nil {
		return m
	}
	m.ConnectionID = row.ConnectionID
	if row.Status != nil {
		m.Status = *row.Status
	}
	if row.RequesterID != nil {
		if *row.RequesterID == viewerID {
			m.Direction = string(connection.DirectionSent)
		} else {
			m.Direction = string(connection.DirectionReceived)
		}
	}
	return m
}

func mapModelToDTO(user *User) *dto.UserRead {
	return &dto.UserRead{
		ID:             user.ID,
		Username:       user.Username,
		Email:          user.Email,
		HashedPassword: user.Password,
		Names:          user.Names,
		Area:           user.Area,
		City:           user.City,
		Country:        user.Country,
		Banned:         user.Banned,
		CreatedAt:      user.CreatedAt,
		UpdatedAt:      user.UpdatedAt,
	}
}

var _ user.Repository = (*repository)(nil)

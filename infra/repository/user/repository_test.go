package user

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/agrosphere/backend/pkg/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	mockDb, mock, err := sqlmock.New()
	require.NoError(t, err)
	dialector := postgres.New(postgres.Config{
		Conn:       mockDb,
		DriverName: "postgres",
	})
	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db, mock
}

func TestUserRepository_Get_NotFound(t *testing.T) {
	assert := assert.New(t)
	db, mock := newMockDB(t)
	repo := repository{db: db}

	mock.ExpectQuery(`SELECT (.+) FROM "users" (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	got, err := repo.Get(context.Background(), uuid.New())
	assert.NoError(err)
	assert.Nil(got)
}

func TestUserRepository_Update_SkipsNilFields(t *testing.T) {
	assert := assert.New(t)
	db, mock := newMockDB(t)
	repo := repository{db: db}

	// Nothing set: no SQL should run at all.
	assert.NoError(repo.Update(context.Background(), uuid.New(), &dto.UserUpdate{}))
	assert.NoError(mock.ExpectationsWereMet())
}

func TestUserRepository_MatchByLocation_EmptyFilters(t *testing.T) {
	assert := assert.New(t)
	db, mock := newMockDB(t)
	repo := repository{db: db}

	// Blank area and city never hit the database.
	got, err := repo.MatchByLocation(context.Background(), uuid.New(), "  ", "")
	assert.NoError(err)
	assert.Empty(got)
	assert.NoError(mock.ExpectationsWereMet())
}

func TestUserRepository_MatchByLocation_AnnotatesConnection(t *testing.T) {
	assert := assert.New(t)
	db, mock := newMockDB(t)
	repo := repository{db: db}

	viewer := uuid.New()
	matched := uuid.New()
	connID := uuid.New()

	rows := sqlmock.NewRows([]string{
		"id", "username", "names", "area", "city", "country",
		"connection_id", "status", "requester_id",
	}).
		AddRow(matched, "neighbour", "N. Farmer", "north", "springfield", "kenya",
			connID, "pending", viewer).
		AddRow(uuid.New(), "stranger", "", "north", "", "kenya",
			nil, nil, nil)

	mock.ExpectQuery(`SELECT u.id, u.username,(.+) FROM users u(.*)`).
		WillReturnRows(rows)

	got, err := repo.MatchByLocation(context.Background(), viewer, "north", "")
	assert.NoError(err)
	require.Len(t, got, 2)

	assert.Equal("pending", got[0].Status)
	assert.Equal("sent", got[0].Direction)
	require.NotNil(t, got[0].ConnectionID)
	assert.Equal(connID, *got[0].ConnectionID)

	assert.Empty(got[1].Status)
	assert.Empty(got[1].Direction)
	assert.Nil(got[1].ConnectionID)
}

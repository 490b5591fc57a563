package connection

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/agrosphere/backend/pkg/domain"
	connectiondomain "github.com/agrosphere/backend/pkg/domain/connection"
	"github.com/agrosphere/backend/pkg/dto"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
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
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	return db, mock
}

func TestConnectionRepository_Create(t *testing.T) {
	assert := assert.New(t)
	db, mock := newMockDB(t)
	repo := repository{db: db}

	a, b := uuid.New(), uuid.New()
	create := &dto.ConnectionCreate{
		ID:          uuid.New(),
		RequesterID: a,
		ReceiverID:  b,
		PairKey:     connectiondomain.PairKey(a, b),
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "connections" (.+) VALUES (.+)`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	assert.NoError(repo.Create(context.Background(), create))
}

func TestConnectionRepository_Create_DuplicatePair(t *testing.T) {
	assert := assert.New(t)
	db, mock := newMockDB(t)
	repo := repository{db: db}

	a, b := uuid.New(), uuid.New()
	create := &dto.ConnectionCreate{
		ID:          uuid.New(),
		RequesterID: a,
		ReceiverID:  b,
		PairKey:     connectiondomain.PairKey(a, b),
	}

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "connections" (.+) VALUES (.+)`).
		WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()

	err := repo.Create(context.Background(), create)
	assert.ErrorIs(err, domain.ErrConflict)
}

func TestConnectionRepository_UpdateStatusIfPending(t *testing.T) {
	assert := assert.New(t)
	db, mock := newMockDB(t)
	repo := repository{db: db}

	id, receiver := uuid.New(), uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "connections" SET (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	ok, err := repo.UpdateStatusIfPending(
		context.Background(), id, receiver, connectiondomain.StatusAccepted)
	assert.NoError(err)
	assert.True(ok)
}

func TestConnectionRepository_UpdateStatusIfPending_NoRows(t *testing.T) {
	assert := assert.New(t)
	db, mock := newMockDB(t)
	repo := repository{db: db}

	id, receiver := uuid.New(), uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "connections" SET (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	ok, err := repo.UpdateStatusIfPending(
		context.Background(), id, receiver, connectiondomain.StatusRejected)
	assert.NoError(err)
	assert.False(ok)
}

func TestConnectionRepository_Get_NotFound(t *testing.T) {
	assert := assert.New(t)
	db, mock := newMockDB(t)
	repo := repository{db: db}

	mock.ExpectQuery(`SELECT (.+) FROM "connections" (.+)`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	conn, err := repo.Get(context.Background(), uuid.New())
	assert.NoError(err)
	assert.Nil(conn)
}

func TestConnectionRepository_ListAcceptedPairRows(t *testing.T) {
	assert := assert.New(t)
	db, mock := newMockDB(t)
	repo := repository{db: db}

	viewer, other := uuid.New(), uuid.New()
	connID := uuid.New()
	rows := sqlmock.NewRows([]string{
		"connection_id", "status",
		"requester_id", "requester_username",
		"receiver_id", "receiver_username",
	}).AddRow(connID, "accepted", viewer, "me", other, "them")

	mock.ExpectQuery(`SELECT (.+) FROM connections c(.*)`).
		WillReturnRows(rows)

	pairRows, err := repo.ListAcceptedPairRows(context.Background(), viewer)
	assert.NoError(err)
	assert.Len(pairRows, 1)
	assert.Equal(connID, pairRows[0].ConnectionID)
	assert.Equal("them", pairRows[0].ReceiverUsername)
}

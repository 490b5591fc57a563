package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	ledgerdomain "github.com/agrosphere/backend/pkg/domain/ledger"
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

func TestRecordRepository_Create(t *testing.T) {
	assert := assert.New(t)
	db, mock := newMockDB(t)
	repo := repository{db: db}

	rec, err := ledgerdomain.NewRecord(
		uuid.New(), "expense", "seeds", 250.0, "maize seeds", time.Now())
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "records" (.+) VALUES (.+)`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	assert.NoError(repo.Create(context.Background(), rec))
}

func TestRecordRepository_SumByTypeSince(t *testing.T) {
	assert := assert.New(t)
	db, mock := newMockDB(t)
	repo := repository{db: db}

	rows := sqlmock.NewRows([]string{"type", "total"}).
		AddRow("earning", 1200.0).
		AddRow("expense", 430.5)

	mock.ExpectQuery(`SELECT type, COALESCE\(SUM\(amount\), 0\) AS total FROM "records" (.+)`).
		WillReturnRows(rows)

	now := time.Now()
	sums, err := repo.SumByTypeSince(
		context.Background(), uuid.New(), now.AddDate(0, -1, 0), now)
	assert.NoError(err)
	require.Len(t, sums, 2)
	assert.Equal(dto.TypeSum{Type: "earning", Total: 1200.0}, sums[0])
	assert.Equal(dto.TypeSum{Type: "expense", Total: 430.5}, sums[1])
}

func TestRecordRepository_List_AppliesFilter(t *testing.T) {
	assert := assert.New(t)
	db, mock := newMockDB(t)
	repo := repository{db: db}

	userID := uuid.New()
	recID := uuid.New()
	year := 2025
	typ := "expense"

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "type", "category", "amount",
		"description", "occurred_on", "year", "month", "created_at",
	}).AddRow(recID, userID, typ, "fertilizer", 75.0,
		"", time.Now(), year, 6, time.Now())

	mock.ExpectQuery(`SELECT (.+) FROM "records" WHERE user_id = (.+) AND type = (.+) AND year = (.+)`).
		WillReturnRows(rows)

	got, err := repo.List(context.Background(), userID,
		dto.RecordFilter{Type: &typ, Year: &year}, 20, 0)
	assert.NoError(err)
	require.Len(t, got, 1)
	assert.Equal(recID, got[0].ID)
	assert.Equal("fertilizer", got[0].Category)
}

func TestRecordRepository_Years(t *testing.T) {
	assert := assert.New(t)
	db, mock := newMockDB(t)
	repo := repository{db: db}

	rows := sqlmock.NewRows([]string{"year"}).
		AddRow(2025).
		AddRow(2024).
		AddRow(2022)

	mock.ExpectQuery(`SELECT DISTINCT (.+) FROM "records" (.+)`).
		WillReturnRows(rows)

	years, err := repo.Years(context.Background(), uuid.New())
	assert.NoError(err)
	assert.Equal([]int{2025, 2024, 2022}, years)
}

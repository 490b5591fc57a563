package chat

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	chatdomain "github.com/agrosphere/backend/pkg/domain/chat"
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
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	return db, mock
}

func TestChatRepository_CreateMessage_BumpsLastMessageAt(t *testing.T) {
	assert := assert.New(t)
	db, mock := newMockDB(t)
	repo := repository{db: db}

	msg, err := chatdomain.NewMessage(uuid.New(), uuid.New(), "hello")
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "messages" (.+) VALUES (.+)`).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "conversations" SET (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(repo.CreateMessage(context.Background(), msg))
	assert.NoError(mock.ExpectationsWereMet())
}

func TestChatRepository_MarkRead_ReturnsRowsAffected(t *testing.T) {
	assert := assert.New(t)
	db, mock := newMockDB(t)
	repo := repository{db: db}

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "messages" SET (.+)`).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	n, err := repo.MarkRead(context.Background(), uuid.New(), uuid.New())
	assert.NoError(err)
	assert.Equal(int64(3), n)
}

func TestChatRepository_AddParticipant_Conflict(t *testing.T) {
	assert := assert.New(t)
	db, mock := newMockDB(t)
	repo := repository{db: db}

	// ON CONFLICT DO NOTHING reports zero rows for an existing member and
	// must not error.
	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "conversation_participants" (.+) ON CONFLICT DO NOTHING`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	assert.NoError(repo.AddParticipant(context.Background(), uuid.New(), uuid.New()))
}

func TestChatRepository_ListSummaries(t *testing.T) {
	assert := assert.New(t)
	db, mock := newMockDB(t)
	repo := repository{db: db}

	me, other := uuid.New(), uuid.New()
	convID := uuid.New()
	lastAt := time.Now().UTC()
	content := "see you at the market"

	rows := sqlmock.NewRows([]string{
		"id", "created_at", "last_message_at",
		"other_user_id", "other_username", "other_names",
		"last_message_content", "unread_count",
	}).AddRow(convID, lastAt.Add(-time.Hour), lastAt, other, "neighbour", "N. Farmer", content, int64(2))

	mock.ExpectQuery(`SELECT c.id, c.created_at, c.last_message_at,(.+)`).
		WillReturnRows(rows)

	summaries, err := repo.ListSummaries(context.Background(), me, 20, 0)
	assert.NoError(err)
	require.Len(t, summaries, 1)
	s := summaries[0]
	assert.Equal(convID, s.ID)
	assert.Equal(other, s.OtherUserID)
	assert.Equal("neighbour", s.OtherUsername)
	require.NotNil(t, s.LastMessageContent)
	assert.Equal(content, *s.LastMessageContent)
	assert.Equal(int64(2), s.UnreadCount)
}

func TestChatRepository_GetMessage_NotFound(t *testing.T) {
	assert := assert.New(t)
	db, mock := newMockDB(t)
	repo := repository{db: db}

	mock.ExpectQuery(`SELECT (.+) FROM messages m(.*)`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	msg, err := repo.GetMessage(context.Background(), uuid.New())
	assert.NoError(err)
	assert.Nil(msg)
}

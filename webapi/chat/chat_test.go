package chat_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/agrosphere/backend/pkg/dto"
	"github.com/agrosphere/backend/webapi/common"
	"github.com/agrosphere/backend/webapi/testutils"
)

func TestSendMessage_Success(t *testing.T) {
	ta := testutils.Setup(t)
	u := testutils.NewUser()
	convID := uuid.New()

	ta.ConversationRepo.EXPECT().GetConversation(mock.Anything, convID).
		Return(&dto.ConversationRead{ID: convID}, nil).Once()
	ta.ConversationRepo.EXPECT().IsParticipant(mock.Anything, convID, u.ID).
		Return(true, nil).Once()
	ta.ConversationRepo.EXPECT().CreateMessage(mock.Anything, mock.Anything).
		Return(nil).Once()
	ta.ConversationRepo.EXPECT().GetMessage(mock.Anything, mock.Anything).
		Return(&dto.MessageRead{
			ID:             uuid.New(),
			ConversationID: convID,
			SenderID:       u.ID,
			Content:        "hello there",
			CreatedAt:      time.Now().UTC(),
		}, nil).Once()

	resp := ta.Request(t, fiber.MethodPost, "/messages",
		`{"conversation_id":"`+convID.String()+`","content":"hello there"}`, ta.Token(t, u))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	defer resp.Body.Close() //nolint: errcheck

	var r common.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&r))
	data, ok := r.Data.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "hello there", data["content"])
}

func TestSendMessage_NotParticipant(t *testing.T) {
	ta := testutils.Setup(t)
	u := testutils.NewUser()
	convID := uuid.New()

	ta.ConversationRepo.EXPECT().GetConversation(mock.Anything, convID).
		Return(&dto.ConversationRead{ID: convID}, nil).Once()
	ta.ConversationRepo.EXPECT().IsParticipant(mock.Anything, convID, u.ID).
		Return(false, nil).Once()

	resp := ta.Request(t, fiber.MethodPost, "/messages",
		`{"conversation_id":"`+convID.String()+`","content":"hello"}`, ta.Token(t, u))
	defer resp.Body.Close() //nolint: errcheck
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestSendMessage_ConversationMissing(t *testing.T) {
	ta := testutils.Setup(t)
	u := testutils.NewUser()
	convID := uuid.New()

	ta.ConversationRepo.EXPECT().GetConversation(mock.Anything, convID).
		Return(nil, nil).Once()

	resp := ta.Request(t, fiber.MethodPost, "/messages",
		`{"conversation_id":"`+convID.String()+`","content":"hello"}`, ta.Token(t, u))
	defer resp.Body.Close() //nolint: errcheck
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestSendMessage_EmptyContent(t *testing.T) {
	ta := testutils.Setup(t)
	u := testutils.NewUser()

	resp := ta.Request(t, fiber.MethodPost, "/messages",
		`{"conversation_id":"`+uuid.New().String()+`","content":""}`, ta.Token(t, u))
	defer resp.Body.Close() //nolint: errcheck
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestOpenConversation_Existing(t *testing.T) {
	ta := testutils.Setup(t)
	u := testutils.NewUser()
	other := uuid.New()
	convID := uuid.New()

	ta.UserRepo.EXPECT().Exists(mock.Anything, u.ID).Return(true, nil).Once()
	ta.UserRepo.EXPECT().Exists(mock.Anything, other).Return(true, nil).Once()
	ta.ConversationRepo.EXPECT().FindByParticipants(mock.Anything, u.ID, other).
		Return(&dto.ConversationRead{ID: convID}, nil).Once()

	resp := ta.Request(t, fiber.MethodPost, "/messages/conversations",
		`{"user_id":"`+other.String()+`"}`, ta.Token(t, u))
	defer resp.Body.Close() //nolint: errcheck
	// Existing conversation comes back 200, not 201.
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestOpenConversation_Created(t *testing.T) {
	ta := testutils.Setup(t)
	u := testutils.NewUser()
	other := uuid.New()

	ta.UserRepo.EXPECT().Exists(mock.Anything, u.ID).Return(true, nil).Once()
	ta.UserRepo.EXPECT().Exists(mock.Anything, other).Return(true, nil).Once()
	ta.ConversationRepo.EXPECT().FindByParticipants(mock.Anything, u.ID, other).
		Return(nil, nil).Once()
	ta.ConversationRepo.EXPECT().CreateConversation(mock.Anything, mock.Anything).
		Return(nil).Once()
	ta.ConversationRepo.EXPECT().AddParticipant(mock.Anything, mock.Anything, u.ID).
		Return(nil).Once()
	ta.ConversationRepo.EXPECT().AddParticipant(mock.Anything, mock.Anything, other).
		Return(nil).Once()
	ta.ConversationRepo.EXPECT().GetConversation(mock.Anything, mock.Anything).
		Return(&dto.ConversationRead{ID: uuid.New()}, nil).Once()

	resp := ta.Request(t, fiber.MethodPost, "/messages/conversations",
		`{"user_id":"`+other.String()+`"}`, ta.Token(t, u))
	defer resp.Body.Close() //nolint: errcheck
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestOpenConversation_WithSelf(t *testing.T) {
	ta := testutils.Setup(t)
	u := testutils.NewUser()

	resp := ta.Request(t, fiber.MethodPost, "/messages/conversations",
		`{"user_id":"`+u.ID.String()+`"}`, ta.Token(t, u))
	defer resp.Body.Close() //nolint: errcheck
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestListConversations_Success(t *testing.T) {
	ta := testutils.Setup(t)
	u := testutils.NewUser()

	ta.ConversationRepo.EXPECT().ListSummaries(mock.Anything, u.ID, 50, 0).
		Return([]*dto.ConversationSummary{
			{ID: uuid.New(), OtherUsername: "joseph", UnreadCount: 2},
		}, nil).Once()

	resp := ta.Request(t, fiber.MethodGet, "/messages/conversations", "", ta.Token(t, u))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	defer resp.Body.Close() //nolint: errcheck

	var r common.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&r))
	data, ok := r.Data.([]any)
	require.True(t, ok)
	assert.Len(t, data, 1)
}

func TestListMessages_Success(t *testing.T) {
	ta := testutils.Setup(t)
	u := testutils.NewUser()
	convID := uuid.New()

	ta.ConversationRepo.EXPECT().GetConversation(mock.Anything, convID).
		Return(&dto.ConversationRead{ID: convID}, nil).Once()
	ta.ConversationRepo.EXPECT().IsParticipant(mock.Anything, convID, u.ID).
		Return(true, nil).Once()
	// Pagination from the query string, clamped by the service.
	ta.ConversationRepo.EXPECT().ListMessages(mock.Anything, convID, 20, 40).
		Return([]*dto.MessageRead{}, nil).Once()

	resp := ta.Request(t, fiber.MethodGet,
		"/messages/conversations/"+convID.String()+"?limit=20&offset=40", "", ta.Token(t, u))
	defer resp.Body.Close() //nolint: errcheck
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestListMessages_BadConversationID(t *testing.T) {
	ta := testutils.Setup(t)
	u := testutils.NewUser()

	resp := ta.Request(t, fiber.MethodGet, "/messages/conversations/not-a-uuid", "", ta.Token(t, u))
	defer resp.Body.Close() //nolint: errcheck
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestMarkRead_Success(t *testing.T) {
	ta := testutils.Setup(t)
	u := testutils.NewUser()
	convID := uuid.New()

	ta.ConversationRepo.EXPECT().GetConversation(mock.Anything, convID).
		Return(&dto.ConversationRead{ID: convID}, nil).Once()
	ta.ConversationRepo.EXPECT().IsParticipant(mock.Anything, convID, u.ID).
		Return(true, nil).Once()
	ta.ConversationRepo.EXPECT().MarkRead(mock.Anything, convID, u.ID).
		Return(int64(3), nil).Once()

	resp := ta.Request(t, fiber.MethodPatch,
		"/messages/conversations/"+convID.String()+"/read", "", ta.Token(t, u))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	defer resp.Body.Close() //nolint: errcheck

	var r common.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&r))
	data, ok := r.Data.(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 3, data["updated"])
}

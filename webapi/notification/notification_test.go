package notification_test

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

func TestListNotifications_Success(t *testing.T) {
	ta := testutils.Setup(t)
	u := testutils.NewUser()

	ta.NotificationRepo.EXPECT().List(mock.Anything, u.ID, 50, 0).
		Return([]*dto.NotificationRead{{
			ID:        uuid.New(),
			UserID:    u.ID,
			Kind:      "connection_request",
			Body:      "joseph sent you a connection request",
			CreatedAt: time.Now().UTC(),
		}}, nil).Once()

	resp := ta.Request(t, fiber.MethodGet, "/notifications", "", ta.Token(t, u))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	defer resp.Body.Close() //nolint: errcheck

	var r common.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&r))
	data, ok := r.Data.([]any)
	require.True(t, ok)
	require.Len(t, data, 1)
	first, ok := data[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "connection_request", first["kind"])
	assert.Equal(t, false, first["read"])
}

func TestListNotifications_PageFromQuery(t *testing.T) {
	ta := testutils.Setup(t)
	u := testutils.NewUser()

	ta.NotificationRepo.EXPECT().List(mock.Anything, u.ID, 5, 10).
		Return([]*dto.NotificationRead{}, nil).Once()

	resp := ta.Request(t, fiber.MethodGet, "/notifications?limit=5&offset=10", "", ta.Token(t, u))
	defer resp.Body.Close() //nolint: errcheck
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestMarkAllRead_Success(t *testing.T) {
	ta := testutils.Setup(t)
	u := testutils.NewUser()

	ta.NotificationRepo.EXPECT().MarkAllRead(mock.Anything, u.ID).
		Return(int64(4), nil).Once()

	resp := ta.Request(t, fiber.MethodPatch, "/notifications/read", "", ta.Token(t, u))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	defer resp.Body.Close() //nolint: errcheck

	var r common.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&r))
	data, ok := r.Data.(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 4, data["updated"])
}

func TestNotifications_RequireToken(t *testing.T) {
	ta := testutils.Setup(t)

	resp := ta.Request(t, fiber.MethodGet, "/notifications", "", "")
	defer resp.Body.Close() //nolint: errcheck
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

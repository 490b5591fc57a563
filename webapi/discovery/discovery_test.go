package discovery_test

import (
	"encoding/json"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/agrosphere/backend/pkg/dto"
	"github.com/agrosphere/backend/webapi/common"
	"github.com/agrosphere/backend/webapi/testutils"
)

func TestMatches_Success(t *testing.T) {
	ta := testutils.Setup(t)
	u := testutils.NewUser()
	u.Area = "Rift Valley"
	u.City = "Eldoret"
	matchID := uuid.New()

	ta.UserRepo.EXPECT().Get(mock.Anything, u.ID).Return(u, nil).Once()
	ta.UserRepo.EXPECT().MatchByLocation(mock.Anything, u.ID, "Rift Valley", "Eldoret").
		Return([]*dto.MatchedUser{
			{ID: matchID, Username: "joseph", City: "Eldoret", Status: "pending", Direction: "sent"},
		}, nil).Once()

	resp := ta.Request(t, fiber.MethodGet, "/discovery/matches", "", ta.Token(t, u))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	defer resp.Body.Close() //nolint: errcheck

	var r common.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&r))
	data, ok := r.Data.([]any)
	require.True(t, ok)
	require.Len(t, data, 1)
	first, ok := data[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "joseph", first["username"])
	assert.Equal(t, "pending", first["connection_status"])
	assert.Equal(t, "sent", first["request_direction"])
}

func TestMatches_ViewerWithoutLocation(t *testing.T) {
	ta := testutils.Setup(t)
	u := testutils.NewUser()
	// No area, no city: the match query must not run at all.
	ta.UserRepo.EXPECT().Get(mock.Anything, u.ID).Return(u, nil).Once()

	resp := ta.Request(t, fiber.MethodGet, "/discovery/matches", "", ta.Token(t, u))
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	defer resp.Body.Close() //nolint: errcheck

	var r common.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&r))
	data, ok := r.Data.([]any)
	require.True(t, ok)
	assert.Empty(t, data)
}

func TestSearch_Success(t *testing.T) {
	ta := testutils.Setup(t)
	u := testutils.NewUser()

	ta.UserRepo.EXPECT().Search(mock.Anything, u.ID, "eldoret", true).
		Return([]*dto.MatchedUser{{ID: uuid.New(), Username: "joseph"}}, nil).Once()

	resp := ta.Request(t, fiber.MethodGet, "/discovery/search?q=eldoret&names=true", "", ta.Token(t, u))
	defer resp.Body.Close() //nolint: errcheck
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestSearch_EmptyQuery(t *testing.T) {
	ta := testutils.Setup(t)
	u := testutils.NewUser()

	resp := ta.Request(t, fiber.MethodGet, "/discovery/search?q=", "", ta.Token(t, u))
	defer resp.Body.Close() //nolint: errcheck
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

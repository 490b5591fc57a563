package main_test

import (
	"net/http"
	"testing"

	"github.com/agrosphere/backend/webapi/testutils"
	"github.com/stretchr/testify/assert"
)

func TestStartServer_HealthRoute(t *testing.T) {
	ta := testutils.Setup(t)

	resp := ta.Request(t, http.MethodGet, "/health", "", "")
	defer resp.Body.Close() //nolint:errcheck

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestProtectedRoute_MissingToken(t *testing.T) {
	ta := testutils.Setup(t)

	resp := ta.Request(t, http.MethodGet, "/user/me", "", "")
	defer resp.Body.Close() //nolint:errcheck

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestNotFoundRoute(t *testing.T) {
	ta := testutils.Setup(t)

	resp := ta.Request(t, http.MethodGet, "/doesnotexist", "", "")
	defer resp.Body.Close() //nolint:errcheck

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestLoginRoute_BadRequest(t *testing.T) {
	ta := testutils.Setup(t)

	resp := ta.Request(t, http.MethodPost, "/auth/login", "", "")
	defer resp.Body.Close() //nolint:errcheck

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// Package testutils builds a fully wired test app over mocked repositories,
// so handler tests exercise the real routing, middleware and services
// without a database.
package testutils

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	infra_eventbus "github.com/agrosphere/backend/infra/eventbus"
	"github.com/agrosphere/backend/internal/fixtures/mocks"
	"github.com/agrosphere/backend/pkg/app"
	"github.com/agrosphere/backend/pkg/config"
	"github.com/agrosphere/backend/pkg/dto"
	"github.com/agrosphere/backend/pkg/repository"
	"github.com/agrosphere/backend/webapi"
)

// TestApp bundles the wired Fiber app with the repository mocks behind it.
// Tests set expectations on the repo mocks; the unit of work passes straight
// through.
type TestApp struct {
	App *fiber.App
	Cfg *config.App

	Uow              *mocks.MockUnitOfWork
	UserRepo         *mocks.MockUserRepository
	ConnectionRepo   *mocks.MockConnectionRepository
	ConversationRepo *mocks.MockConversationRepository
	RecordRepo       *mocks.MockRecordRepository
	NotificationRepo *mocks.MockNotificationRepository

	Services *app.App
}

// Config returns the app configuration used by test apps: a fixed JWT
// secret and a rate limit high enough to never trip.
func Config() *config.App {
	return &config.App{
		Env:       "test",
		Server:    &config.Server{Scheme: "http", Host: "localhost", Port: 3000},
		Log:       &config.Log{},
		DB:        &config.DB{},
		Auth:      &config.Auth{Jwt: &config.Jwt{Secret: "test-secret", Expiry: time.Hour}},
		Redis:     &config.Redis{},
		RateLimit: &config.RateLimit{MaxRequests: 1000, Window: time.Minute},
		Dashboard: &config.Dashboard{RecentLimit: 10, TrailingYears: 5},
		Chat:      &config.Chat{DefaultPageSize: 50, MaxPageSize: 200},
	}
}

// Setup wires mocked repositories under the real services and returns the
// Fiber app built by SetupApp. Every unit-of-work accessor is stubbed with
// Maybe, so tests only declare the repository calls they care about.
func Setup(t *testing.T) *TestApp {
	return SetupWithConfig(t, Config())
}

// SetupWithConfig is Setup with a caller-supplied configuration, for tests
// that exercise config-bound middleware such as the rate limiter.
func SetupWithConfig(t *testing.T, cfg *config.App) *TestApp {
	t.Helper()
	log.SetOutput(io.Discard)

	uow := mocks.NewMockUnitOfWork(t)
	userRepo := mocks.NewMockUserRepository(t)
	connectionRepo := mocks.NewMockConnectionRepository(t)
	conversationRepo := mocks.NewMockConversationRepository(t)
	recordRepo := mocks.NewMockRecordRepository(t)
	notificationRepo := mocks.NewMockNotificationRepository(t)

	uow.EXPECT().Do(mock.Anything, mock.Anything).RunAndReturn(
		func(ctx context.Context, fn func(repository.UnitOfWork) error) error {
			return fn(uow)
		}).Maybe()
	uow.EXPECT().UserRepository().Return(userRepo, nil).Maybe()
	uow.EXPECT().ConnectionRepository().Return(connectionRepo, nil).Maybe()
	uow.EXPECT().ConversationRepository().Return(conversationRepo, nil).Maybe()
	uow.EXPECT().RecordRepository().Return(recordRepo, nil).Maybe()
	uow.EXPECT().NotificationRepository().Return(notificationRepo, nil).Maybe()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	deps := &config.Deps{
		Uow:      uow,
		EventBus: infra_eventbus.NewWithMemory(logger),
		Logger:   logger,
		Config:   cfg,
	}
	services := app.New(deps, cfg)

	return &TestApp{
		App:              webapi.SetupApp(services),
		Cfg:              cfg,
		Uow:              uow,
		UserRepo:         userRepo,
		ConnectionRepo:   connectionRepo,
		ConversationRepo: conversationRepo,
		RecordRepo:       recordRepo,
		NotificationRepo: notificationRepo,
		Services:         services,
	}
}

// NewUser returns a UserRead fixture for token generation and repo stubs.
func NewUser() *dto.UserRead {
	id := uuid.New()
	return &dto.UserRead{
		ID:       id,
		Username: "testuser",
		Email:    "testuser@example.com",
	}
}

// Token issues a signed JWT for the given user, as the login endpoint would.
func (ta *TestApp) Token(t *testing.T, u *dto.UserRead) string {
	t.Helper()
	token, err := ta.Services.AuthService.GenerateToken(context.Background(), u)
	require.NoError(t, err)
	return token
}

// Request performs an in-process request against the app. An empty token
// leaves the Authorization header unset.
func (ta *TestApp) Request(t *testing.T, method, target, body, token string) *http.Response {
	t.Helper()
	return ta.RequestWithHeaders(t, method, target, body, token, nil)
}

// RequestWithHeaders is Request with extra headers, for middleware tests.
func (ta *TestApp) RequestWithHeaders(
	t *testing.T,
	method, target, body, token string,
	headers map[string]string,
) *http.Response {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := ta.App.Test(req, 10000)
	require.NoError(t, err)
	return resp
}

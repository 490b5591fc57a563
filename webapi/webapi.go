// Package webapi provides the HTTP surface of the Agrosphere backend. It is
// organized into sub-packages per feature area:
// - auth: registration and login
// - user: own-profile endpoints
// - chat: two-party messaging
// - connection: the connection-request network
// - discovery: location-based user discovery
// - ledger: expense/earning records and the dashboard
// - notification: the notification feed
package webapi

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/gofiber/swagger"

	"github.com/agrosphere/backend/pkg/app"
	authweb "github.com/agrosphere/backend/webapi/auth"
	chatweb "github.com/agrosphere/backend/webapi/chat"
	"github.com/agrosphere/backend/webapi/common"
	connectionweb "github.com/agrosphere/backend/webapi/connection"
	discoveryweb "github.com/agrosphere/backend/webapi/discovery"
	ledgerweb "github.com/agrosphere/backend/webapi/ledger"
	notificationweb "github.com/agrosphere/backend/webapi/notification"
	userweb "github.com/agrosphere/backend/webapi/user"
)

// SetupApp initializes Fiber with custom configuration and registers every
// route.
func SetupApp(app *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Errors raised by fiber itself (unknown routes, aborted
			// handlers) carry their own status code.
			title := "Internal Server Error"
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				title = utils.StatusMessage(fiberErr.Code)
			}
			return common.ProblemDetailsJSON(c, title, err)
		},
	})
	fiberApp.Get("/swagger/*", swagger.New(swagger.Config{
		TryItOutEnabled:      true,
		WithCredentials:      true,
		PersistAuthorization: true,
		OAuth2RedirectUrl:    "/auth/login",
	}))

	// Rate limiting keyed by client IP. Behind a proxy the X-Forwarded-For
	// chain's first entry identifies the client, then X-Real-IP, then the
	// direct peer.
	fiberApp.Use(limiter.New(limiter.Config{
		Max:        app.Config.RateLimit.MaxRequests,
		Expiration: app.Config.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			if forwardedFor := c.Get("X-Forwarded-For"); forwardedFor != "" {
				if commaIndex := strings.Index(forwardedFor, ","); commaIndex != -1 {
					return strings.TrimSpace(forwardedFor[:commaIndex])
				}
				return strings.TrimSpace(forwardedFor)
			}
			if realIP := c.Get("X-Real-IP"); realIP != "" {
				return realIP
			}
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ProblemDetailsJSON(
				c,
				"Too Many Requests",
				errors.New("rate limit exceeded"),
				fiber.StatusTooManyRequests,
			)
		},
	}))
	fiberApp.Use(recover.New())
	fiberApp.Use(logger.New())

	// Health check endpoint
	fiberApp.Get(
		"/health",
		func(c *fiber.Ctx) error {
			return c.SendString("Agrosphere API is running! 🌱")
		},
	)

	authweb.Routes(fiberApp, app.UserService, app.AuthService)
	userweb.Routes(fiberApp, app.UserService, app.AuthService, app.Config)
	chatweb.Routes(fiberApp, app.ChatService, app.AuthService, app.Config)
	connectionweb.Routes(fiberApp, app.ConnectionService, app.AuthService, app.Config)
	discoveryweb.Routes(fiberApp, app.DiscoveryService, app.AuthService, app.Config)
	ledgerweb.Routes(fiberApp, app.LedgerService, app.AuthService, app.Config)
	notificationweb.Routes(fiberApp, app.NotificationService, app.AuthService, app.Config)
	return fiberApp
}

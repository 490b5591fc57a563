// Package notification exposes the user's notification feed over HTTP.
package notification

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/golang-jwt/jwt/v5"

	"github.com/agrosphere/backend/pkg/config"
	"github.com/agrosphere/backend/pkg/middleware"
	authsvc "github.com/agrosphere/backend/pkg/service/auth"
	notificationsvc "github.com/agrosphere/backend/pkg/service/notification"
	"github.com/agrosphere/backend/webapi/common"
)

// Routes registers the notification endpoints.
func Routes(app *fiber.App, notificationSvc *notificationsvc.Service, authSvc *authsvc.Service, cfg *config.App) {
	app.Get("/notifications", middleware.JwtProtected(cfg.Auth.Jwt), ListNotifications(notificationSvc, authSvc))
	app.Patch("/notifications/read", middleware.JwtProtected(cfg.Auth.Jwt), MarkAllRead(notificationSvc, authSvc))
}

// ListNotifications returns the authenticated user's notifications.
// @Summary List notifications
// @Description List the authenticated user's notifications newest-first
// @Tags notifications
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Router /notifications [get]
// @Security Bearer
func ListNotifications(notificationSvc *notificationsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := c.Locals("user").(*jwt.Token)
		if !ok {
			return common.ProblemDetailsJSON(c, "Unauthorized", nil, "missing user context", fiber.StatusUnauthorized)
		}
		userID, err := authSvc.GetCurrentUserId(token)
		if err != nil {
			log.Errorf("Failed to parse user ID from token: %v", err)
			return common.ProblemDetailsJSON(c, "Unauthorized", nil, fiber.StatusUnauthorized)
		}
		list, err := notificationSvc.ListNotifications(c.Context(), userID, c.QueryInt("limit"), c.QueryInt("offset"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't list notifications", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Notifications found", list)
	}
}

// MarkAllRead flips the authenticated user's unread notifications to read.
// @Summary Mark notifications read
// @Description Mark all of the authenticated user's notifications as read
// @Tags notifications
// @Produce json
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Router /notifications/read [patch]
// @Security Bearer
func MarkAllRead(notificationSvc *notificationsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token, ok := c.Locals("user").(*jwt.Token)
		if !ok {
			return common.ProblemDetailsJSON(c, "Unauthorized", nil, "missing user context", fiber.StatusUnauthorized)
		}
		userID, err := authSvc.GetCurrentUserId(token)
		if err != nil {
			log.Errorf("Failed to parse user ID from token: %v", err)
			return common.ProblemDetailsJSON(c, "Unauthorized", nil, fiber.StatusUnauthorized)
		}
		updated, err := notificationSvc.MarkNotificationsRead(c.Context(), userID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't mark notifications read", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Notifications read", fiber.Map{"updated": updated})
	}
}

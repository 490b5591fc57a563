// Package connection exposes the connection-request network over HTTP.
package connection

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/agrosphere/backend/pkg/config"
	"github.com/agrosphere/backend/pkg/middleware"
	authsvc "github.com/agrosphere/backend/pkg/service/auth"
	connectionsvc "github.com/agrosphere/backend/pkg/service/connection"
	"github.com/agrosphere/backend/webapi/common"
)

// Routes registers the connection endpoints.
func Routes(app *fiber.App, connSvc *connectionsvc.Service, authSvc *authsvc.Service, cfg *config.App) {
	app.Post("/user-connections", middleware.JwtProtected(cfg.Auth.Jwt), SendRequest(connSvc, authSvc))
	app.Get("/user-connections", middleware.JwtProtected(cfg.Auth.Jwt), ListConnections(connSvc, authSvc))
	app.Get("/user-connections/requests", middleware.JwtProtected(cfg.Auth.Jwt), ListRequests(connSvc, authSvc))
	app.Patch("/user-connections/:id", middleware.JwtProtected(cfg.Auth.Jwt), Respond(connSvc, authSvc))
}

// SendRequest opens a pending connection request to another user.
// @Summary Send a connection request
// @Description Open a pending request from the authenticated user to another user
// @Tags connections
// @Accept json
// @Produce json
// @Param request body ConnectInput true "Receiving user"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails
// @Router /user-connections [post]
// @Security Bearer
func SendRequest(connSvc *connectionsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[ConnectInput](c)
		if input == nil {
			return err // error response already written
		}
		token, ok := c.Locals("user").(*jwt.Token)
		if !ok {
			return common.ProblemDetailsJSON(c, "Unauthorized", nil, "missing user context", fiber.StatusUnauthorized)
		}
		userID, err := authSvc.GetCurrentUserId(token)
		if err != nil {
			log.Errorf("Failed to parse user ID from token: %v", err)
			return common.ProblemDetailsJSON(c, "Unauthorized", nil, fiber.StatusUnauthorized)
		}
		conn, err := connSvc.SendRequest(c.Context(), userID, input.UserID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't send connection request", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Connection request sent", conn)
	}
}

// Respond answers a pending request addressed to the authenticated user.
// @Summary Answer a connection request
// @Description Accept or reject a pending request addressed to the authenticated user
// @Tags connections
// @Accept json
// @Produce json
// @Param id path string true "Connection ID"
// @Param request body RespondInput true "Decision"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /user-connections/{id} [patch]
// @Security Bearer
func Respond(connSvc *connectionsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		connectionID, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid connection ID", err, "Connection ID must be a valid UUID", fiber.StatusBadRequest)
		}
		input, err := common.BindAndValidate[RespondInput](c)
		if input == nil {
			return err // error response already written
		}
		token, ok := c.Locals("user").(*jwt.Token)
		if !ok {
			return common.ProblemDetailsJSON(c, "Unauthorized", nil, "missing user context", fiber.StatusUnauthorized)
		}
		userID, err := authSvc.GetCurrentUserId(token)
		if err != nil {
			log.Errorf("Failed to parse user ID from token: %v", err)
			return common.ProblemDetailsJSON(c, "Unauthorized", nil, fiber.StatusUnauthorized)
		}
		conn, err := connSvc.Respond(c.Context(), connectionID, userID, input.Status)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't answer connection request", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Connection request answered", conn)
	}
}

// ListConnections returns the authenticated user's accepted connections.
// @Summary List connections
// @Description List the authenticated user's accepted connections resolved to the counterpart
// @Tags connections
// @Produce json
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Router /user-connections [get]
// @Security Bearer
func ListConnections(connSvc *connectionsvc.Service, authSvc *authsvc.Service) fiber.Handler {
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
		friends, err := connSvc.ListConnections(c.Context(), userID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't list connections", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Connections found", friends)
	}
}

// ListRequests returns the authenticated user's pending requests in one
// direction.
// @Summary List pending requests
// @Description List pending requests the authenticated user sent or received
// @Tags connections
// @Produce json
// @Param direction query string true "sent or received"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Router /user-connections/requests [get]
// @Security Bearer
func ListRequests(connSvc *connectionsvc.Service, authSvc *authsvc.Service) fiber.Handler {
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
		requests, err := connSvc.ListRequests(c.Context(), userID, c.Query("direction"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't list requests", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Requests found", requests)
	}
}

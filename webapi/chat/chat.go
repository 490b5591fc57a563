// Package chat exposes two-party messaging over HTTP.
package chat

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/agrosphere/backend/pkg/config"
	"github.com/agrosphere/backend/pkg/middleware"
	authsvc "github.com/agrosphere/backend/pkg/service/auth"
	chatsvc "github.com/agrosphere/backend/pkg/service/chat"
	"github.com/agrosphere/backend/webapi/common"
)

// Routes registers the messaging endpoints. Every route requires a token;
// the service layer enforces that only participants see a conversation.
func Routes(app *fiber.App, chatSvc *chatsvc.Service, authSvc *authsvc.Service, cfg *config.App) {
	app.Post("/messages", middleware.JwtProtected(cfg.Auth.Jwt), SendMessage(chatSvc, authSvc))
	app.Get("/messages/conversations", middleware.JwtProtected(cfg.Auth.Jwt), ListConversations(chatSvc, authSvc))
	app.Post("/messages/conversations", middleware.JwtProtected(cfg.Auth.Jwt), OpenConversation(chatSvc, authSvc))
	app.Get("/messages/conversations/:id", middleware.JwtProtected(cfg.Auth.Jwt), ListMessages(chatSvc, authSvc))
	app.Patch("/messages/conversations/:id/read", middleware.JwtProtected(cfg.Auth.Jwt), MarkRead(chatSvc, authSvc))
}

// SendMessage appends a message to a conversation the sender participates in.
// @Summary Send a message
// @Description Append a message to a conversation the authenticated user participates in
// @Tags messages
// @Accept json
// @Produce json
// @Param request body SendMessageInput true "Message data"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 403 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /messages [post]
// @Security Bearer
func SendMessage(chatSvc *chatsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[SendMessageInput](c)
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
		msg, err := chatSvc.AppendMessage(c.Context(), input.ConversationID, userID, input.Content)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't send message", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Message sent", msg)
	}
}

// OpenConversation finds or creates the conversation with another user.
// @Summary Open a conversation
// @Description Find the conversation with another user, creating it when absent
// @Tags messages
// @Accept json
// @Produce json
// @Param request body OpenConversationInput true "Counterpart user"
// @Success 200 {object} common.Response "Conversation already existed"
// @Success 201 {object} common.Response "Conversation created"
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /messages/conversations [post]
// @Security Bearer
func OpenConversation(chatSvc *chatsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[OpenConversationInput](c)
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
		conv, created, err := chatSvc.FindOrCreateConversation(c.Context(), userID, input.UserID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't open conversation", err)
		}
		if created {
			return common.SuccessResponseJSON(c, fiber.StatusCreated, "Conversation created", conv)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Conversation found", conv)
	}
}

// ListConversations returns the user's conversation summaries by last
// activity.
// @Summary List conversations
// @Description List the authenticated user's conversations ordered by last activity
// @Tags messages
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Router /messages/conversations [get]
// @Security Bearer
func ListConversations(chatSvc *chatsvc.Service, authSvc *authsvc.Service) fiber.Handler {
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
		summaries, err := chatSvc.ListConversations(c.Context(), userID, c.QueryInt("limit"), c.QueryInt("offset"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't list conversations", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Conversations found", summaries)
	}
}

// ListMessages returns a conversation's messages oldest-first.
// @Summary List messages
// @Description List a conversation's messages oldest-first; the requester must participate
// @Tags messages
// @Produce json
// @Param id path string true "Conversation ID"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 403 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /messages/conversations/{id} [get]
// @Security Bearer
func ListMessages(chatSvc *chatsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		conversationID, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid conversation ID", err, "Conversation ID must be a valid UUID", fiber.StatusBadRequest)
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
		msgs, err := chatSvc.ListMessages(c.Context(), conversationID, userID, c.QueryInt("limit"), c.QueryInt("offset"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't list messages", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Messages found", msgs)
	}
}

// MarkRead marks the counterpart's messages in a conversation as read.
// @Summary Mark conversation read
// @Description Mark every message not sent by the authenticated user as read
// @Tags messages
// @Produce json
// @Param id path string true "Conversation ID"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 403 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /messages/conversations/{id}/read [patch]
// @Security Bearer
func MarkRead(chatSvc *chatsvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		conversationID, err := uuid.Parse(c.Params("id"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid conversation ID", err, "Conversation ID must be a valid UUID", fiber.StatusBadRequest)
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
		updated, err := chatSvc.MarkRead(c.Context(), conversationID, userID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't mark conversation read", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Conversation read", fiber.Map{"updated": updated})
	}
}

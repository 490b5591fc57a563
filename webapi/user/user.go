// Package user exposes the authenticated user's own profile over HTTP.
package user

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/golang-jwt/jwt/v5"

	"github.com/agrosphere/backend/pkg/config"
	"github.com/agrosphere/backend/pkg/dto"
	"github.com/agrosphere/backend/pkg/middleware"
	authsvc "github.com/agrosphere/backend/pkg/service/auth"
	usersvc "github.com/agrosphere/backend/pkg/service/user"
	"github.com/agrosphere/backend/webapi/common"
)

// Routes registers the profile endpoints. Both operate on the token's owner;
// there is no route to read or edit someone else's account.
func Routes(app *fiber.App, userSvc *usersvc.Service, authSvc *authsvc.Service, cfg *config.App) {
	app.Get("/user/me", middleware.JwtProtected(cfg.Auth.Jwt), GetProfile(userSvc, authSvc))
	app.Put("/user/me", middleware.JwtProtected(cfg.Auth.Jwt), UpdateProfile(userSvc, authSvc))
}

// GetProfile returns the authenticated user's own account.
// @Summary Get own profile
// @Description Retrieve the authenticated user's account
// @Tags users
// @Produce json
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /user/me [get]
// @Security Bearer
func GetProfile(userSvc *usersvc.Service, authSvc *authsvc.Service) fiber.Handler {
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
		u, err := userSvc.GetUser(c.Context(), userID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't load profile", err)
		}
		if u == nil {
			return common.ProblemDetailsJSON(c, "Profile not found", nil, fiber.StatusNotFound)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Profile found", u)
	}
}

// UpdateProfile updates the authenticated user's profile fields.
// @Summary Update own profile
// @Description Update display name and location fields of the authenticated user
// @Tags users
// @Accept json
// @Produce json
// @Param request body UpdateProfileInput true "Profile update data"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /user/me [put]
// @Security Bearer
func UpdateProfile(userSvc *usersvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[UpdateProfileInput](c)
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
		err = userSvc.UpdateUser(c.Context(), userID, &dto.UserUpdate{
			Names:   input.Names,
			Area:    input.Area,
			City:    input.City,
			Country: input.Country,
		})
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't update profile", err)
		}
		u, err := userSvc.GetUser(c.Context(), userID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't load profile", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Profile updated", u)
	}
}

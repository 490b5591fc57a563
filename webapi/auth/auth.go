// Package auth exposes registration and login over HTTP.
package auth

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"

	"github.com/agrosphere/backend/pkg/domain"
	"github.com/agrosphere/backend/pkg/dto"
	authsvc "github.com/agrosphere/backend/pkg/service/auth"
	usersvc "github.com/agrosphere/backend/pkg/service/user"
	"github.com/agrosphere/backend/webapi/common"
)

// Routes registers the public authentication endpoints.
func Routes(app *fiber.App, userSvc *usersvc.Service, authSvc *authsvc.Service) {
	app.Post("/auth/register", Register(userSvc))
	app.Post("/auth/login", Login(authSvc))
}

// Register creates a new farmer account.
// @Summary Register a new account
// @Description Create an account with username, email, password and optional location fields
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterInput true "Registration data"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 409 {object} common.ProblemDetails
// @Failure 429 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /auth/register [post]
func Register(userSvc *usersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[RegisterInput](c)
		if input == nil {
			return err // error response already written
		}
		// bcrypt truncates beyond 72 bytes; reject instead of silently losing entropy.
		if len(input.Password) > 72 {
			return common.ProblemDetailsJSON(c, "Invalid request body", nil, "Password too long", fiber.StatusBadRequest)
		}
		u, err := userSvc.CreateUser(c.Context(), &dto.UserCreate{
			Username: input.Username,
			Email:    input.Email,
			Password: input.Password,
			Names:    input.Names,
			Area:     input.Area,
			City:     input.City,
			Country:  input.Country,
		})
		if err != nil {
			log.Errorf("Failed to register user: %v", err)
			return common.ProblemDetailsJSON(c, "Couldn't register", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Account created", u)
	}
}

// Login authenticates an identity (username or email) and returns a JWT.
// @Summary User login
// @Description Authenticate with identity (username or email) and password
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginInput true "Login credentials"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Failure 429 {object} common.ProblemDetails
// @Failure 500 {object} common.ProblemDetails
// @Router /auth/login [post]
func Login(authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[LoginInput](c)
		if input == nil {
			return err // error response already written
		}
		u, err := authSvc.Login(c.Context(), input.Identity, input.Password)
		if err != nil {
			if errors.Is(err, domain.ErrUnauthorized) {
				// One message for every credential failure, so callers cannot
				// probe which accounts exist.
				return common.ProblemDetailsJSON(c, "Invalid identity or password", nil, "Identity or password is incorrect", fiber.StatusUnauthorized)
			}
			return common.ProblemDetailsJSON(c, "Login failed", err)
		}
		token, err := authSvc.GenerateToken(c.Context(), u)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Login failed", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Success login", fiber.Map{"token": token})
	}
}

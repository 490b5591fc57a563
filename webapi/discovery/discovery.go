// Package discovery exposes the location-based user discovery endpoints.
package discovery

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/golang-jwt/jwt/v5"

	"github.com/agrosphere/backend/pkg/config"
	"github.com/agrosphere/backend/pkg/middleware"
	authsvc "github.com/agrosphere/backend/pkg/service/auth"
	discoverysvc "github.com/agrosphere/backend/pkg/service/discovery"
	"github.com/agrosphere/backend/webapi/common"
)

// Routes registers the discovery endpoints.
func Routes(app *fiber.App, discoverySvc *discoverysvc.Service, authSvc *authsvc.Service, cfg *config.App) {
	app.Get("/discovery/matches", middleware.JwtProtected(cfg.Auth.Jwt), Matches(discoverySvc, authSvc))
	app.Get("/discovery/search", middleware.JwtProtected(cfg.Auth.Jwt), Search(discoverySvc, authSvc))
}

// Matches returns users in the authenticated user's area or city.
// @Summary Discover nearby users
// @Description List users sharing the authenticated user's area or city, annotated with connection state
// @Tags discovery
// @Produce json
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Failure 404 {object} common.ProblemDetails
// @Router /discovery/matches [get]
// @Security Bearer
func Matches(discoverySvc *discoverysvc.Service, authSvc *authsvc.Service) fiber.Handler {
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
		matches, err := discoverySvc.MatchByLocation(c.Context(), userID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't load matches", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Matches found", matches)
	}
}

// Search returns users whose location fields contain the query.
// @Summary Search users by location
// @Description Search users by city, area or country; names=true widens the match to display names
// @Tags discovery
// @Produce json
// @Param q query string true "Search text"
// @Param names query bool false "Also match display names"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Router /discovery/search [get]
// @Security Bearer
func Search(discoverySvc *discoverysvc.Service, authSvc *authsvc.Service) fiber.Handler {
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
		matches, err := discoverySvc.Search(c.Context(), userID, c.Query("q"), c.QueryBool("names"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't search users", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Matches found", matches)
	}
}

// Package ledger exposes the expense/earning records and the dashboard over
// HTTP.
package ledger

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/golang-jwt/jwt/v5"

	"github.com/agrosphere/backend/pkg/config"
	"github.com/agrosphere/backend/pkg/dto"
	"github.com/agrosphere/backend/pkg/middleware"
	authsvc "github.com/agrosphere/backend/pkg/service/auth"
	ledgersvc "github.com/agrosphere/backend/pkg/service/ledger"
	"github.com/agrosphere/backend/webapi/common"
)

// Routes registers the ledger endpoints.
func Routes(app *fiber.App, ledgerSvc *ledgersvc.Service, authSvc *authsvc.Service, cfg *config.App) {
	app.Post("/records", middleware.JwtProtected(cfg.Auth.Jwt), CreateRecord(ledgerSvc, authSvc))
	app.Get("/records", middleware.JwtProtected(cfg.Auth.Jwt), ListRecords(ledgerSvc, authSvc))
	app.Get("/records/dashboard", middleware.JwtProtected(cfg.Auth.Jwt), Dashboard(ledgerSvc, authSvc))
	app.Get("/records/categories", middleware.JwtProtected(cfg.Auth.Jwt), Categories(ledgerSvc))
}

// parseDate accepts a calendar date or a full RFC 3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// CreateRecord stores one expense or earning for the authenticated user.
// @Summary Add a record
// @Description Store an expense or earning with a category from the fixed vocabulary
// @Tags records
// @Accept json
// @Produce json
// @Param request body CreateRecordInput true "Record data"
// @Success 201 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Router /records [post]
// @Security Bearer
func CreateRecord(ledgerSvc *ledgersvc.Service, authSvc *authsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, err := common.BindAndValidate[CreateRecordInput](c)
		if input == nil {
			return err // error response already written
		}
		occurredOn, err := parseDate(input.Date)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Invalid date", err, "Date must be YYYY-MM-DD or RFC 3339", fiber.StatusBadRequest)
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
		rec, err := ledgerSvc.CreateRecord(c.Context(), userID, input.Type, input.Category, input.Amount, input.Description, occurredOn)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't add record", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Record added", rec)
	}
}

// ListRecords returns the authenticated user's records newest-first.
// @Summary List records
// @Description List the authenticated user's records, optionally narrowed by type, category, year and month
// @Tags records
// @Produce json
// @Param type query string false "expense or earning"
// @Param category query string false "Category filter"
// @Param year query int false "Calendar year"
// @Param month query int false "Calendar month (1-12)"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} common.Response
// @Failure 400 {object} common.ProblemDetails
// @Failure 401 {object} common.ProblemDetails
// @Router /records [get]
// @Security Bearer
func ListRecords(ledgerSvc *ledgersvc.Service, authSvc *authsvc.Service) fiber.Handler {
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
		var filter dto.RecordFilter
		if v := c.Query("type"); v != "" {
			filter.Type = &v
		}
		if v := c.Query("category"); v != "" {
			filter.Category = &v
		}
		if v := c.QueryInt("year"); v != 0 {
			filter.Year = &v
		}
		if v := c.QueryInt("month"); v != 0 {
			filter.Month = &v
		}
		recs, err := ledgerSvc.ListRecords(c.Context(), userID, filter, c.QueryInt("limit"), c.QueryInt("offset"))
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't list records", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Records found", recs)
	}
}

// Dashboard returns the aggregated ledger summary.
// @Summary Ledger dashboard
// @Description Aggregate the authenticated user's ledger over the dashboard windows
// @Tags records
// @Produce json
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Router /records/dashboard [get]
// @Security Bearer
func Dashboard(ledgerSvc *ledgersvc.Service, authSvc *authsvc.Service) fiber.Handler {
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
		summary, err := ledgerSvc.DashboardSummary(c.Context(), userID)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Couldn't build dashboard", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Dashboard built", summary)
	}
}

// Categories returns the fixed category vocabulary per record type.
// @Summary List record categories
// @Description Return the fixed category vocabulary for expenses and earnings
// @Tags records
// @Produce json
// @Success 200 {object} common.Response
// @Failure 401 {object} common.ProblemDetails
// @Router /records/categories [get]
// @Security Bearer
func Categories(ledgerSvc *ledgersvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Categories found", ledgerSvc.Categories())
	}
}

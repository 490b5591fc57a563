// Package common holds the response envelopes and request plumbing shared by
// every webapi handler package.
package common

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/agrosphere/backend/pkg/domain"
)

// Response is the envelope for successful responses.
type Response struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// ProblemDetails is an RFC 9457 problem document. Every error response the
// API produces has this shape.
type ProblemDetails struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Status   int    `json:"status"`
	Detail   string `json:"detail,omitempty"`
	Instance string `json:"instance,omitempty"`
	Errors   any    `json:"errors,omitempty"`
}

// SuccessResponseJSON writes a Response envelope with the given status.
func SuccessResponseJSON(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

// ProblemDetailsJSON writes an RFC 9457 problem document. The status is taken
// from an int passed in extras when present, otherwise derived from err. A
// string in extras becomes the detail; when absent, err's message is used.
func ProblemDetailsJSON(c *fiber.Ctx, title string, err error, extras ...any) error {
	status := 0
	detail := ""
	for _, extra := range extras {
		switch v := extra.(type) {
		case int:
			status = v
		case string:
			detail = v
		}
	}
	if status == 0 {
		status = ErrorToStatusCode(err)
	}
	if detail == "" && err != nil {
		detail = err.Error()
	}
	c.Set(fiber.HeaderContentType, "application/problem+json")
	return c.Status(status).JSON(ProblemDetails{
		Type:     "about:blank",
		Title:    title,
		Status:   status,
		Detail:   detail,
		Instance: c.OriginalURL(),
	})
}

// ErrorToStatusCode maps errors to HTTP status codes. A *fiber.Error keeps
// its own code; otherwise the domain sentinel wrapped by err decides, and
// anything unrecognized is a 500.
func ErrorToStatusCode(err error) int {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return fiberErr.Code
	}
	switch {
	case errors.Is(err, domain.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

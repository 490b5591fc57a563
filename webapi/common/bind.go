package common

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// BindAndValidate parses the request body into T and validates it with
// go-playground/validator. On failure the 400 problem document is already
// written and the returned error carries the same status code, so callers
// can return it unchanged.
func BindAndValidate[T any](c *fiber.Ctx) (*T, error) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		_ = ProblemDetailsJSON(c, "Invalid request body", nil, err.Error(), fiber.StatusBadRequest)
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	if err := validate.Struct(input); err != nil {
		_ = ProblemDetailsJSON(c, "Validation failed", nil, err.Error(), fiber.StatusBadRequest)
		return nil, fiber.NewError(fiber.StatusBadRequest, err.Error())
	}
	return &input, nil
}

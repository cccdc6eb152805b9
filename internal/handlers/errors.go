package handlers

import (
	"errors"

	"caltrack/internal/services"

	"github.com/gofiber/fiber/v2"
)

// respondError maps a service error onto the HTTP status contract:
// 400 for validation failures, 404 for missing meals, 500 for everything
// else (storage, configuration, upstream AI failures).
func respondError(c *fiber.Ctx, err error, fallbackMessage string) error {
	var validationErr *services.ValidationError
	if errors.As(err, &validationErr) {
		resp := fiber.Map{"message": validationErr.Message}
		if validationErr.Fields != nil {
			resp["errors"] = validationErr.Fields
		}
		return c.Status(fiber.StatusBadRequest).JSON(resp)
	}

	var notFoundErr *services.NotFoundError
	if errors.As(err, &notFoundErr) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": notFoundErr.Error(),
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"message": fallbackMessage,
		"error":   err.Error(),
	})
}

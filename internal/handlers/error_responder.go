package handlers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"catalog/internal/dto"
	"catalog/internal/services"
)

// respondError maps a service error to its one CustomError response. The
// dispatch is total over the service error kinds; anything unrecognized is a
// 500 with a generic message so internals never leak to the client.
func respondError(c *fiber.Ctx, err error) error {
	var vErr *services.ValidationError
	switch {
	case errors.Is(err, services.ErrResourceNotFound):
		body := dto.NewCustomError(fiber.StatusNotFound, err.Error(), c.Path())
		return c.Status(fiber.StatusNotFound).JSON(body)

	case errors.Is(err, services.ErrDatabaseIntegrity):
		body := dto.NewCustomError(fiber.StatusConflict, err.Error(), c.Path())
		return c.Status(fiber.StatusConflict).JSON(body)

	case errors.As(err, &vErr):
		body := dto.NewValidationCustomError(fiber.StatusUnprocessableEntity, vErr.Error(), c.Path())
		for _, f := range vErr.Fields {
			body.AddError(f.Field, f.Message)
		}
		return c.Status(fiber.StatusUnprocessableEntity).JSON(body)

	default:
		log.Printf("Unhandled error on %s: %v", c.Path(), err)
		body := dto.NewCustomError(fiber.StatusInternalServerError, "Internal Server Error", c.Path())
		return c.Status(fiber.StatusInternalServerError).JSON(body)
	}
}

// respondBadRequest reports an unreadable request body in the same error
// shape as the domain failures.
func respondBadRequest(c *fiber.Ctx, message string) error {
	body := dto.NewCustomError(fiber.StatusBadRequest, message, c.Path())
	return c.Status(fiber.StatusBadRequest).JSON(body)
}

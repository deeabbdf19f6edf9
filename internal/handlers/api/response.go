package api

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v3"

	"seoplanner/internal/seo"
)

// jsonSuccess returns a 200 response with data wrapped in the standard envelope.
func jsonSuccess(c fiber.Ctx, data any) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"data":   data,
	})
}

// jsonError returns an error response with the given HTTP status code.
func jsonError(c fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"status": "error",
		"error":  message,
	})
}

// serviceError maps core errors onto HTTP responses: validation failures to
// 400, missing references to 404, lost uniqueness races to 409, and anything
// else to a logged 500.
func serviceError(c fiber.Ctx, err error) error {
	var verr *seo.ValidationError
	if errors.As(err, &verr) {
		return jsonError(c, fiber.StatusBadRequest, verr.Error())
	}
	var nferr *seo.NotFoundError
	if errors.As(err, &nferr) {
		return jsonError(c, fiber.StatusNotFound, nferr.Error())
	}
	if errors.Is(err, seo.ErrDuplicate) {
		return jsonError(c, fiber.StatusConflict, err.Error())
	}
	slog.Error("request failed", "path", c.Path(), "error", err)
	return jsonError(c, fiber.StatusInternalServerError, "internal server error")
}

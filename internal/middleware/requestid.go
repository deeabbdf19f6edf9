// Package middleware contains HTTP middleware shared across routes.
package middleware

import (
	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"
)

// requestIDHeader carries the per-request correlation id.
const requestIDHeader = "X-Request-ID"

// RequestID attaches a unique id to each request for log correlation,
// honoring an id supplied by an upstream proxy.
func RequestID() fiber.Handler {
	return func(c fiber.Ctx) error {
		id := c.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals("request_id", id)
		c.Set(requestIDHeader, id)
		return c.Next()
	}
}

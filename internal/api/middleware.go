package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// TokenRequired gates mutation endpoints behind the access guard. Every
// rejection is an identical 403 with no distinguishing detail.
func (handler *Handler) TokenRequired(c *fiber.Ctx) error {
	if err := handler.guard.Authorize(c.Get(fiber.HeaderAuthorization)); err != nil {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"message": "Unauthorized"})
	}
	return c.Next()
}

// RequestLogger tags each request with an id and logs method, path, status
// and duration after the handler chain completes.
func (handler *Handler) RequestLogger(c *fiber.Ctx) error {
	requestID := c.Get(requestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	c.Set(requestIDHeader, requestID)

	start := time.Now()
	err := c.Next()

	handler.log.Info().
		Str("requestId", requestID).
		Str("method", c.Method()).
		Str("path", c.Path()).
		Int("status", c.Response().StatusCode()).
		Dur("duration", time.Since(start)).
		Send()

	return err
}

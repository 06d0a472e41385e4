// Package handlers contains the HTTP route handler functions for the API server.
// Each exported function follows the "handler factory" pattern: it takes its
// dependencies (the *gorm.DB handle, the config, the roster hub) and returns a
// fiber.Handler. This lets main inject dependencies without global variables.
//
// Error responses follow one policy across every route:
//   - missing/invalid input        → 400 with a human-readable "message"
//   - duplicate identity           → 400 naming the duplicate field
//   - credential mismatch          → 401 "Invalid credentials."
//   - no matching entity           → 404
//   - store failure                → 500 with a generic message; the underlying
//     error is logged server-side and echoed in an "error" field only when the
//     server runs in development mode
package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/Abdul8081/server/internal/config"
)

// storeError logs a data-store failure with request context and writes the
// uniform 500 response. No retries: a failed query surfaces immediately.
func storeError(c *fiber.Ctx, cfg *config.Config, logContext, publicMsg string, err error) error {
	log.Printf("%s: %v", logContext, err)
	body := fiber.Map{"message": publicMsg}
	if cfg.Debug() {
		body["error"] = err.Error()
	}
	return c.Status(fiber.StatusInternalServerError).JSON(body)
}

// badRequest writes the uniform 400 response.
func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"message": msg})
}

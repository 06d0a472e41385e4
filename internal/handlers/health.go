package handlers

import "github.com/gofiber/fiber/v2"

// HealthCheck handles GET /health.
// A lightweight liveness probe — no database query, no authentication. Load
// balancers and container orchestrators use it to decide whether to send traffic.
func HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

// Package middleware contains HTTP middleware functions for the API server.
// Middleware sits between the HTTP server and route handlers — it runs on every
// request that passes through it, making it the right place for cross-cutting
// concerns like authentication.
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Abdul8081/server/internal/config"
	"github.com/Abdul8081/server/internal/models"
	"github.com/Abdul8081/server/internal/token"
)

// Auth returns a Fiber middleware handler that:
//  1. Validates the JWT from the "Authorization: Bearer <token>" header,
//     verifying the HMAC signature against the configured secret and the expiry
//  2. Loads the matching user row (the token's userId claim is the primary key)
//  3. Stores the user's id and role in the request context (c.Locals) so
//     downstream handlers can read them without re-parsing the token
//
// Tokens are only ever minted by POST /initial_login, so a token that verifies
// but references a missing user means the account was removed out-of-band;
// that request is rejected like any other bad token.
func Auth(cfg *config.Config, db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Missing or invalid authorization header.",
			})
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

		claims, err := token.Parse(cfg.JWTSecret, tokenStr)
		if err != nil {
			// Covers bad signatures, expired tokens, and malformed input alike.
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token.",
			})
		}

		var user models.User
		if err := db.First(&user, claims.UserID).Error; err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token.",
			})
		}

		// c.Locals is a key-value store scoped to this single request.
		c.Locals("userID", user.ID)
		c.Locals("userRole", user.Role)

		return c.Next()
	}
}

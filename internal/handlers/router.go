// This file assembles the Fiber application: global middleware plus the full
// route table. Keeping assembly here (instead of inline in main) lets the tests
// exercise the exact app the server runs, wired to a disposable database.
package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"

	"github.com/Abdul8081/server/internal/config"
	"github.com/Abdul8081/server/internal/middleware"
	"github.com/Abdul8081/server/internal/roster"
)

// NewApp builds the Fiber app with all middleware and routes registered.
func NewApp(cfg *config.Config, db *gorm.DB, hub *roster.Hub) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "Team Management API",
	})

	// Global middleware: request logging and permissive CORS so browser
	// frontends on other origins can call the API.
	app.Use(logger.New())
	app.Use(cors.New())

	// Public routes
	app.Get("/health", HealthCheck)
	app.Post("/signup", Signup(db, cfg))
	app.Post("/login", Login(db, cfg))
	app.Post("/initial_login", InitialLogin(db, cfg))
	app.Post("/add-coach", AddCoach(db, cfg, hub))
	app.Post("/add-team", AddTeam(db, cfg, hub))
	app.Post("/add-player", AddPlayer(db, cfg, hub))
	app.Get("/api/coach", GetCoach(db, cfg))
	app.Get("/api/player/:player_name", GetPlayer(db, cfg))

	// Token-protected routes. middleware.Auth verifies the bearer token minted
	// by /initial_login and loads the user for the handlers below it.
	api := app.Group("/api/v1", middleware.Auth(cfg, db))
	api.Get("/me", Me(db))

	return app
}

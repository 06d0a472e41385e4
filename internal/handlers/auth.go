// This file handles the account and credential routes: /signup, /login,
// /initial_login, and the token-protected /api/v1/me.
//
// Passwords are never stored or compared in plaintext. Registration hashes the
// secret with bcrypt (salted, one-way); login fetches the row by identity and
// lets bcrypt compare the hash. The external contract is unchanged — identity
// and secret in, success or 401 out — but a database dump no longer hands out
// every user's password.
package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Abdul8081/server/internal/config"
	"github.com/Abdul8081/server/internal/models"
	"github.com/Abdul8081/server/internal/token"
)

// SignupRequest is the JSON body we expect on POST /signup.
type SignupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest is the JSON body for POST /login — the role-scoped credential check.
// Role selects which identity table is consulted: "coach" matches coaches by
// username, "player" matches players by player_name. The same field carries the
// identity in both cases.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// InitialLoginRequest is the JSON body for POST /initial_login — the token-issuing
// flow, which authenticates against the users table by name.
type InitialLoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// Signup returns the handler for POST /signup.
// Creates a users row with a bcrypt-hashed password. Email uniqueness is
// enforced by the database's unique index, so two concurrent signups with the
// same email can never both succeed — one insert wins, the other surfaces as
// a duplicate-key error and is answered with 400.
func Signup(db *gorm.DB, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req SignupRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body.")
		}

		if req.Name == "" || req.Email == "" || req.Password == "" {
			return badRequest(c, "All fields are required.")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return storeError(c, cfg, "hashing signup password", "An error occurred during signup.", err)
		}

		user := models.User{
			Name:     req.Name,
			Email:    req.Email,
			Password: string(hash),
		}
		if err := db.Create(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return badRequest(c, "Email already exists.")
			}
			return storeError(c, cfg, "inserting user", "An error occurred during signup.", err)
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "Signup successful!",
		})
	}
}

// Login returns the handler for POST /login.
// This flow only answers "are these credentials valid for this role" — it does
// not issue a token. Role strings other than "coach" and "player" are rejected
// before any query runs.
func Login(db *gorm.DB, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req LoginRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body.")
		}

		if req.Username == "" || req.Password == "" || req.Role == "" {
			return badRequest(c, "All fields are required.")
		}

		// Fetch the stored hash for the claimed identity from the role's table.
		// Lookups are ordered by id so a non-unique name deterministically
		// resolves to the oldest row.
		var storedHash string
		var err error
		switch req.Role {
		case models.RoleCoach:
			var coach models.Coach
			err = db.Where("username = ?", req.Username).Order("id").First(&coach).Error
			storedHash = coach.Password
		case models.RolePlayer:
			var player models.Player
			err = db.Where("player_name = ?", req.Username).Order("id").First(&player).Error
			storedHash = player.Password
		default:
			return badRequest(c, "Invalid role.")
		}

		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				// Same response as a wrong password — don't reveal whether
				// the identity exists.
				return invalidCredentials(c)
			}
			return storeError(c, cfg, "querying credentials", "Internal server error.", err)
		}

		if bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(req.Password)) != nil {
			return invalidCredentials(c)
		}

		return c.JSON(fiber.Map{
			"message": "Welcome, " + req.Username + "!",
			"role":    req.Role,
		})
	}
}

// InitialLogin returns the handler for POST /initial_login.
// On success it mints the signed, one-hour token embedding the stored user's
// id and role. This is the only route that issues tokens.
func InitialLogin(db *gorm.DB, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req InitialLoginRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body.")
		}

		if req.Name == "" || req.Password == "" {
			return badRequest(c, "Name and password are required.")
		}

		var user models.User
		if err := db.Where("name = ?", req.Name).Order("id").First(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return invalidCredentials(c)
			}
			return storeError(c, cfg, "querying user for login", "Internal server error.", err)
		}

		if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
			return invalidCredentials(c)
		}

		signed, err := token.Sign(cfg.JWTSecret, user.ID, user.Role)
		if err != nil {
			return storeError(c, cfg, "signing login token", "Internal server error.", err)
		}

		return c.JSON(fiber.Map{
			"message": "Welcome, " + req.Name + "!",
			"token":   signed,
		})
	}
}

// Me returns the handler for GET /api/v1/me.
// It must sit behind middleware.Auth, which verifies the bearer token and
// stores the user's id in the request context.
func Me(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, ok := c.Locals("userID").(uint)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token.",
			})
		}

		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token.",
			})
		}

		// The User model's json tags omit the password hash.
		return c.JSON(user)
	}
}

func invalidCredentials(c *fiber.Ctx) error {
	return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
		"message": "Invalid credentials.",
	})
}

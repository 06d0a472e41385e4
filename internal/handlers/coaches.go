// This file handles the coach routes: POST /add-coach and GET /api/coach.
package handlers

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Abdul8081/server/internal/config"
	"github.com/Abdul8081/server/internal/models"
	"github.com/Abdul8081/server/internal/roster"
)

// AddCoachRequest is the JSON body we expect on POST /add-coach.
// AssociatedWith is the id of the team the coach belongs to — a soft reference
// that is not validated against the teams table.
type AddCoachRequest struct {
	Name           string `json:"name"`
	Age            int    `json:"age"`
	Experience     int    `json:"experience"`
	AssociatedWith int64  `json:"associated_with"`
	Username       string `json:"username"`
	Password       string `json:"password"`
}

// CoachProfile is what GET /api/coach returns: the coach joined to its team.
// Team is a pointer so a dangling associated_with serializes as "team": null
// instead of failing the lookup.
type CoachProfile struct {
	Name           string  `json:"name"`
	Experience     int     `json:"experience"`
	Age            int     `json:"age"`
	Team           *string `json:"team"`
	AssociatedWith int64   `json:"associated_with"`
}

// AddCoach returns the handler for POST /add-coach.
//
// The coach id comes from the table's sequence, so concurrent registrations
// each get their own id — there is no read-max-then-insert step that two
// requests could race through. Likewise username uniqueness is the database's
// unique index, not a pre-check query: a duplicate surfaces as a constraint
// violation and is answered with 400.
func AddCoach(db *gorm.DB, cfg *config.Config, hub *roster.Hub) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req AddCoachRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body.")
		}

		if req.Name == "" || req.Age == 0 || req.Experience == 0 ||
			req.AssociatedWith == 0 || req.Username == "" || req.Password == "" {
			return badRequest(c, "All fields are required.")
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return storeError(c, cfg, "hashing coach password", "An error occurred while adding the coach.", err)
		}

		coach := models.Coach{
			Name:           req.Name,
			Age:            req.Age,
			Experience:     req.Experience,
			AssociatedWith: req.AssociatedWith,
			Username:       req.Username,
			Password:       string(hash),
		}
		if err := db.Create(&coach).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return badRequest(c, "Username already exists.")
			}
			return storeError(c, cfg, "inserting coach", "An error occurred while adding the coach.", err)
		}

		// Notify anyone watching this team's roster feed. The coach references
		// its team by id, so the id (as a string) is the feed key.
		if err := hub.Publish(roster.Event{
			Entity: "coach",
			Name:   coach.Name,
			Team:   strconv.FormatInt(coach.AssociatedWith, 10),
		}); err != nil {
			log.Printf("publishing coach roster event: %v", err)
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "Coach added successfully!",
			"coachId": coach.ID,
		})
	}
}

// GetCoach returns the handler for GET /api/coach?name=<coach name>.
// The lookup left-joins the coach's team so the team name rides along when the
// soft reference resolves, and comes back null when it doesn't. If several
// coaches share the name, the oldest row (lowest id) wins.
func GetCoach(db *gorm.DB, cfg *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		name := c.Query("name")
		if name == "" {
			return badRequest(c, "Coach name is required.")
		}

		var profile CoachProfile
		res := db.Table("coaches").
			Select("coaches.name, coaches.experience, coaches.age, teams.team_name AS team, coaches.associated_with").
			Joins("LEFT JOIN teams ON coaches.associated_with = teams.id").
			Where("coaches.name = ?", name).
			Order("coaches.id").
			Limit(1).
			Scan(&profile)
		if res.Error != nil {
			return storeError(c, cfg, "querying coach", "Internal server error.", res.Error)
		}
		if res.RowsAffected == 0 {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Coach not found",
			})
		}

		return c.JSON(profile)
	}
}

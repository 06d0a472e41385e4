// This file handles the team route: POST /add-team.
package handlers

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Abdul8081/server/internal/config"
	"github.com/Abdul8081/server/internal/models"
	"github.com/Abdul8081/server/internal/roster"
)

// AddTeamRequest is the JSON body we expect on POST /add-team.
// The request field names differ from the column names on purpose — "game"
// lands in game_type and "coached_by" in coach_id — because that is the wire
// contract clients already speak.
type AddTeamRequest struct {
	Name      string `json:"name"`
	Game      string `json:"game"`
	Location  string `json:"location"`
	CoachedBy int64  `json:"coached_by"`
}

// AddTeam returns the handler for POST /add-team.
// Team names are not unique — registering the same name twice creates two teams.
func AddTeam(db *gorm.DB, cfg *config.Config, hub *roster.Hub) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req AddTeamRequest
		if err := c.BodyParser(&req); err != nil {
			return badRequest(c, "Invalid request body.")
		}

		if req.Name == "" || req.Game == "" || req.Location == "" || req.CoachedBy == 0 {
			return badRequest(c, "All fields are required.")
		}

		team := models.Team{
			TeamName: req.Name,
			GameType: req.Game,
			Location: req.Location,
			CoachID:  req.CoachedBy,
		}
		if err := db.Create(&team).Error; err != nil {
			return storeError(c, cfg, "inserting team", "Internal server error.", err)
		}

		if err := hub.Publish(roster.Event{
			Entity: "team",
			Name:   team.TeamName,
			Team:   team.TeamName,
		}); err != nil {
			log.Printf("publishing team roster event: %v", err)
		}

		return c.Status(fiber.StatusCreated).JSON(fiber.Map{
			"message": "Team added successfully!",
			"teamId":  team.ID,
		})
	}
}

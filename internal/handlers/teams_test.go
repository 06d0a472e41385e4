package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abdul8081/server/internal/models"
)

func TestAddTeamReturnsAssignedID(t *testing.T) {
	app, db := newTestApp(t)

	resp := postJSON(t, app, "/add-team", map[string]any{
		"name": "Strikers", "game": "football", "location": "Karachi", "coached_by": 7,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Team added successfully!", body["message"])
	id, ok := body["teamId"].(float64)
	require.True(t, ok, "teamId must be a number")

	// The request's "name"/"game"/"coached_by" land in the team_name/game_type/
	// coach_id columns.
	var team models.Team
	require.NoError(t, db.First(&team, uint(id)).Error)
	assert.Equal(t, "Strikers", team.TeamName)
	assert.Equal(t, "football", team.GameType)
	assert.Equal(t, "Karachi", team.Location)
	assert.EqualValues(t, 7, team.CoachID)
}

func TestAddTeamMissingFieldRejectedWithoutInsert(t *testing.T) {
	app, db := newTestApp(t)

	full := map[string]any{
		"name": "Strikers", "game": "football", "location": "Karachi", "coached_by": 7,
	}
	for field := range full {
		body := map[string]any{}
		for k, v := range full {
			if k != field {
				body[k] = v
			}
		}
		resp := postJSON(t, app, "/add-team", body)
		assert.Equalf(t, http.StatusBadRequest, resp.StatusCode, "missing %q", field)
		assert.Equal(t, "All fields are required.", decodeBody(t, resp)["message"])
	}
	assert.EqualValues(t, 0, countRows(t, db, &models.Team{}))
}

// Team names are not an identity — registering the same name twice is allowed
// and creates two rows.
func TestAddTeamDuplicateNameAllowed(t *testing.T) {
	app, db := newTestApp(t)

	for i := 0; i < 2; i++ {
		resp := postJSON(t, app, "/add-team", map[string]any{
			"name": "Strikers", "game": "football", "location": "Karachi", "coached_by": 7,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}
	assert.EqualValues(t, 2, countRows(t, db, &models.Team{}))
}

package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abdul8081/server/internal/models"
)

func TestAddPlayerReturnsAssignedID(t *testing.T) {
	app, _ := newTestApp(t)

	resp := postJSON(t, app, "/add-player", map[string]any{
		"name": "Pavel", "position": "striker", "age": 22, "team": "Strikers",
		"email": "pavel@example.com", "password": "pw",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Player added successfully!", body["message"])
	id, ok := body["playerId"].(float64)
	require.True(t, ok, "playerId must be a number")
	assert.Greater(t, id, float64(0))
}

func TestAddPlayerMissingFieldRejectedWithoutInsert(t *testing.T) {
	app, db := newTestApp(t)

	full := map[string]any{
		"name": "Pavel", "position": "striker", "age": 22, "team": "Strikers",
		"email": "pavel@example.com", "password": "pw",
	}
	for field := range full {
		body := map[string]any{}
		for k, v := range full {
			if k != field {
				body[k] = v
			}
		}
		resp := postJSON(t, app, "/add-player", body)
		assert.Equalf(t, http.StatusBadRequest, resp.StatusCode, "missing %q", field)
	}
	assert.EqualValues(t, 0, countRows(t, db, &models.Player{}))
}

func TestAddPlayerDuplicateEmail(t *testing.T) {
	app, db := newTestApp(t)

	first := postJSON(t, app, "/add-player", map[string]any{
		"name": "Pavel", "position": "striker", "age": 22, "team": "Strikers",
		"email": "dup@example.com", "password": "pw",
	})
	require.Equal(t, http.StatusCreated, first.StatusCode)

	second := postJSON(t, app, "/add-player", map[string]any{
		"name": "Piotr", "position": "keeper", "age": 25, "team": "Blockers",
		"email": "dup@example.com", "password": "pw2",
	})
	assert.Equal(t, http.StatusBadRequest, second.StatusCode)
	assert.Equal(t, "Email already exists. Please use a different email.",
		decodeBody(t, second)["message"])
	assert.EqualValues(t, 1, countRows(t, db, &models.Player{}))
}

func TestGetPlayerOmitsPasswordHash(t *testing.T) {
	app, _ := newTestApp(t)

	created := postJSON(t, app, "/add-player", map[string]any{
		"name": "Pavel", "position": "striker", "age": 22, "team": "Strikers",
		"email": "pavel@example.com", "password": "pw",
	})
	require.Equal(t, http.StatusCreated, created.StatusCode)

	resp := getPath(t, app, "/api/player/Pavel")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Pavel", body["player_name"])
	assert.Equal(t, "striker", body["position"])
	assert.EqualValues(t, 22, body["age"])
	assert.Equal(t, "Strikers", body["team"])
	assert.Equal(t, "pavel@example.com", body["email"])
	// Stored credentials never leave the server, hashed or not.
	assert.NotContains(t, body, "password")
}

func TestGetPlayerNotFound(t *testing.T) {
	app, _ := newTestApp(t)

	resp := getPath(t, app, "/api/player/Nobody")
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	body := decodeBody(t, resp)
	assert.Equal(t, "Player not found", body["message"])
	assert.Len(t, body, 1, "404 body carries only the message")
}

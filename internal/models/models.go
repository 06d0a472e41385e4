// Package models defines the data structures (models) that map to database tables.
// GORM uses these structs to generate SQL and map rows back to Go values; the struct
// field tags tell it the column name, constraints, and defaults for each field.
//
// The data model represents a sports team management platform:
//   - Users sign up and log in (the token-issuing flow)
//   - Teams are registered with a game type and location
//   - Coaches are registered against a team (AssociatedWith)
//   - Players are registered with a free-text team name
//
// References between tables are deliberately soft: Coach.AssociatedWith points at a
// Team id and Team.CoachID points at a Coach id, but neither is a database-level
// foreign key and neither side is validated against the other. A coach can reference
// a team that does not exist; the coach lookup then simply reports a null team.
package models

import "time"

// Role values accepted by the credential-check login route.
// The route matches the role against one identity table: coaches or players.
const (
	RoleCoach  = "coach"
	RolePlayer = "player"
)

// User is a generic account created via /signup and authenticated via /initial_login.
// The password column stores a bcrypt hash, never the plaintext secret, and is
// excluded from every JSON response via the `json:"-"` tag.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"uniqueIndex;not null" json:"email"`
	Password  string    `gorm:"not null" json:"-"`
	Role      string    `gorm:"not null;default:'user'" json:"role"` // embedded into the login token
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Coach is a team coach with their own login credentials.
// AssociatedWith is a soft reference to Team.ID. The ID is assigned by the
// store's sequence — one registration, one unique id, even under concurrency.
type Coach struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Name           string    `gorm:"not null" json:"name"`
	Age            int       `gorm:"not null" json:"age"`
	Experience     int       `gorm:"not null" json:"experience"` // years of coaching experience
	AssociatedWith int64     `gorm:"column:associated_with;not null" json:"associated_with"`
	Username       string    `gorm:"uniqueIndex;not null" json:"username"`
	Password       string    `gorm:"not null" json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// TableName pins the table name; GORM's default pluralization ("coaches") happens
// to match, but being explicit keeps the model and the migration obviously in sync.
func (Coach) TableName() string { return "coaches" }

// Team is a registered team. CoachID is a soft reference to Coach.ID with no
// reciprocal integrity check against Coach.AssociatedWith.
type Team struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TeamName  string    `gorm:"column:team_name;not null" json:"team_name"`
	GameType  string    `gorm:"column:game_type;not null" json:"game_type"`
	Location  string    `gorm:"not null" json:"location"`
	CoachID   int64     `gorm:"column:coach_id;not null" json:"coach_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Player is a registered player with their own login credentials.
// Team is a free-text team name, not validated against the teams table.
type Player struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	PlayerName string    `gorm:"column:player_name;not null" json:"player_name"`
	Position   string    `gorm:"not null" json:"position"`
	Age        int       `gorm:"not null" json:"age"`
	Team       string    `gorm:"not null" json:"team"`
	Email      string    `gorm:"uniqueIndex;not null" json:"email"`
	Password   string    `gorm:"not null" json:"-"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

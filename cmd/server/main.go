// cmd/server/main.go
// Entry point for the team management API server. The cmd/ folder holds the
// executable; internal/ holds the packages it wires together.
package main

import (
	"log"

	"github.com/Abdul8081/server/internal/config"
	"github.com/Abdul8081/server/internal/database"
	"github.com/Abdul8081/server/internal/handlers"
	"github.com/Abdul8081/server/internal/roster"
)

func main() {
	// Load configuration from environment variables (and optionally a .env file).
	// This fails loudly when the JWT signing secret is unset — there is no
	// insecure fallback key.
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	// Connect to PostgreSQL. The handle owns a pool bounded at 10 connections;
	// when all are busy, queries queue for a free one.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	log.Println("Connected to the database")

	// Run any pending SQL migrations so the schema — including the unique
	// indexes the registration routes rely on — is in place before serving.
	if err := database.RunMigrations(cfg.DSN()); err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	// The roster hub fans out roster-change events to connected feed clients.
	// It runs its event loop in the background for the life of the process.
	hub := roster.NewHub()
	go hub.Run()

	app := handlers.NewApp(cfg, db, hub)

	log.Printf("Server is running on http://localhost:%s", cfg.Port)
	log.Fatal(app.Listen(":" + cfg.Port))
}

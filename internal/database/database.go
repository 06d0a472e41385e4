// Package database provides helpers for connecting to PostgreSQL and running migrations.
// This file has two responsibilities:
//  1. Opening a database connection using GORM (an ORM — Object Relational Mapper)
//  2. Running SQL migration files to keep the database schema up to date
package database

import (
	// The migrate package reads and applies versioned SQL migration files.
	"github.com/golang-migrate/migrate/v4"
	// Blank imports (_) register "side effects" — they register drivers with the migrate
	// library without us needing to use them directly.
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// maxOpenConns bounds the connection pool. When all connections are busy,
// additional queries queue for a free connection instead of failing fast.
const maxOpenConns = 10

// Connect opens a connection to the PostgreSQL database using the given DSN
// (Data Source Name — the connection string) and returns the GORM handle used
// for all queries.
//
// TranslateError makes GORM map driver-specific failures onto its portable
// sentinel errors — most importantly unique-index violations become
// gorm.ErrDuplicatedKey, which the handlers turn into "already exists" responses.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	// GORM wraps a standard *sql.DB; the pool bound lives there.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(maxOpenConns)

	// Fail at startup rather than on the first request if the DSN is wrong.
	if err := sqlDB.Ping(); err != nil {
		return nil, err
	}

	return db, nil
}

// RunMigrations applies any pending "up" migrations from the migrations/ directory.
// Migrations are numbered SQL files (e.g. 000001_initial_schema.up.sql); the migrate
// library tracks applied versions in a schema_migrations table so each file runs once.
func RunMigrations(dsn string) error {
	m, err := migrate.New("file://migrations", dsn)
	if err != nil {
		return err
	}

	// migrate.ErrNoChange just means the schema is already current.
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}

	return nil
}

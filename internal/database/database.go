package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// DB wraps sql.DB with application-specific helpers
type DB struct {
	*sql.DB
}

// New opens the SQLite database at the given path and configures the
// connection pool. The file is created on first use if it does not exist.
func New(path string) (*DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite serializes writers at the file level; a small pool is enough
	// and keeps handle acquisition scoped to a single operation.
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(time.Hour)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &DB{DB: db}, nil
}

// InitSchema creates the four record tables if they are absent. It is
// idempotent and safe to run on every boot. There is no migration or
// schema versioning layer.
func (db *DB) InitSchema() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS games (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			created_at TEXT NOT NULL,
			player1_name TEXT NOT NULL,
			player2_name TEXT NOT NULL,
			player3_name TEXT NOT NULL,
			player4_name TEXT NOT NULL,
			player1_score INTEGER NOT NULL,
			player2_score INTEGER NOT NULL,
			player3_score INTEGER NOT NULL,
			player4_score INTEGER NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS teams (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT UNIQUE NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS team_members (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			team_name TEXT NOT NULL,
			player_name TEXT NOT NULL,
			joined_at TEXT NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS team_games (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			created_at TEXT NOT NULL,
			p1_player_name TEXT NOT NULL,
			p1_team_name   TEXT NOT NULL,
			p1_score       INTEGER NOT NULL,
			p2_player_name TEXT NOT NULL,
			p2_team_name   TEXT NOT NULL,
			p2_score       INTEGER NOT NULL,
			p3_player_name TEXT NOT NULL,
			p3_team_name   TEXT NOT NULL,
			p3_score       INTEGER NOT NULL,
			p4_player_name TEXT NOT NULL,
			p4_team_name   TEXT NOT NULL,
			p4_score       INTEGER NOT NULL
		)`,
	}

	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to initialize schema: %w", err)
		}
	}

	return nil
}

// HealthCheck verifies the database connection is alive
func (db *DB) HealthCheck() error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("database health check failed: %w", err)
	}
	return nil
}

// GetStats returns connection pool statistics
func (db *DB) GetStats() sql.DBStats {
	return db.Stats()
}

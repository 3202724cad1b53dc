package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ajiang05/vibeCheck/config"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

func DSN(cfg *config.DatabaseConfig) string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode,
	)
}

// Open configures the pool without connecting. Connections are made on
// first use, so a database that is down at start can still recover later.
func Open(cfg *config.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", DSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	return db, nil
}

func NewPostgresDB(ctx context.Context, cfg *config.DatabaseConfig) (*sql.DB, error) {
	db, err := Open(cfg)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"host":   cfg.Host,
		"dbname": cfg.DBName,
	}).Info("Successfully connected to PostgreSQL")
	return db, nil
}

// Migrations mirror the hosted backend's schema so a local database can
// stand in for it.
var Migrations = []string{
	`CREATE TABLE IF NOT EXISTS events (
		id TEXT PRIMARY KEY,
		name VARCHAR(255) NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		location TEXT NOT NULL DEFAULT '',
		event_date DATE NOT NULL,
		start_time TIME NOT NULL,
		end_time TIME,
		cost TEXT NOT NULL DEFAULT 'Free',
		age_requirement TEXT NOT NULL DEFAULT '',
		image_url TEXT,
		category TEXT NOT NULL,
		music_genre TEXT,
		dress_code TEXT,
		drinks_available BOOLEAN,
		created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
	)`,

	`CREATE TABLE IF NOT EXISTS profiles (
		id TEXT PRIMARY KEY,
		username TEXT UNIQUE,
		full_name TEXT,
		avatar_url TEXT,
		bio TEXT,
		created_at TIMESTAMPTZ DEFAULT CURRENT_TIMESTAMP
	)`,

	// Indexes
	`CREATE INDEX IF NOT EXISTS idx_events_event_date ON events(event_date)`,
	`CREATE INDEX IF NOT EXISTS idx_events_category ON events(category)`,
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	for i, migration := range Migrations {
		if _, err := db.ExecContext(ctx, migration); err != nil {
			return fmt.Errorf("failed to execute migration %d: %w", i, err)
		}
	}

	logrus.Info("Database migrations completed successfully")
	return nil
}

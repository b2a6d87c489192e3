package database

import (
	"fmt"
	"log"

	"airqual/internal/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL driver
)

func Connect(cfg *config.Config) (*sqlx.DB, error) {

	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	log.Println("Connected to database successfully")
	return db, nil
}

// InitSchema creates the required tables if they don't exist.
func InitSchema(db *sqlx.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			username VARCHAR(50) PRIMARY KEY,
			password VARCHAR(256) NOT NULL,
			created_at TIMESTAMP NOT NULL,
			last_login TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS user_preferences (
			username VARCHAR(50) PRIMARY KEY REFERENCES users(username),
			saved_locations JSONB DEFAULT '[]'::jsonb,
			unit VARCHAR(10) DEFAULT 'metric',
			notification_preferences JSONB DEFAULT '{}'::jsonb
		)`,
		`CREATE TABLE IF NOT EXISTS aqi_readings (
			id SERIAL PRIMARY KEY,
			username VARCHAR(50) REFERENCES users(username),
			location VARCHAR(100) NOT NULL,
			aqi_value FLOAT NOT NULL,
			timestamp TIMESTAMP NOT NULL,
			pollutants JSONB,
			data JSONB
		)`,
		`CREATE TABLE IF NOT EXISTS password_resets (
			username VARCHAR(50) REFERENCES users(username),
			token VARCHAR(64) NOT NULL,
			expiry TIMESTAMP NOT NULL,
			PRIMARY KEY (username, token)
		)`,
		`CREATE TABLE IF NOT EXISTS refresh_tokens (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			username VARCHAR(50) REFERENCES users(username),
			token_hash VARCHAR(64) NOT NULL UNIQUE,
			expires_at TIMESTAMP NOT NULL,
			created_at TIMESTAMP NOT NULL DEFAULT NOW(),
			revoked_at TIMESTAMP,
			replaced_by UUID
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to initialize schema: %w", err)
		}
	}
	return nil
}

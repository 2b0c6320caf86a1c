// Package database provides the database/sql connection used by the
// migration runner. The application itself talks to Postgres through pgx
// (driver/postgres); this package exists only for schema management.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/lib/pq"
)

// Config holds database connection configuration
type Config struct {
	Host        string
	Port        int
	User        string
	Password    string
	Database    string
	SSLMode     string
	ConnTimeout time.Duration
}

// Connection wraps a database/sql connection
type Connection struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewConnection opens and pings a database connection
func NewConnection(config *Config, logger *slog.Logger) (*Connection, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s connect_timeout=%d",
		config.Host,
		config.Port,
		config.User,
		config.Password,
		config.Database,
		config.SSLMode,
		int(config.ConnTimeout.Seconds()),
	)

	logger.Info("connecting to database",
		"host", config.Host,
		"port", config.Port,
		"database", config.Database,
		"ssl_mode", config.SSLMode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), config.ConnTimeout)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("database connection established")

	return &Connection{
		db:     db,
		logger: logger.With("component", "database"),
	}, nil
}

// DB returns the underlying *sql.DB instance
func (c *Connection) DB() *sql.DB {
	return c.db
}

// Close closes the database connection
func (c *Connection) Close() error {
	if c.db != nil {
		c.logger.Info("closing database connection")
		return c.db.Close()
	}
	return nil
}

package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Database type constants
const (
	SqliteDbType   = "sqlite"
	PostgresDbType = "postgres"
)

// DatabaseSettings holds the relational store configuration. SQLite is
// the default store; DBName only applies to PostgreSQL.
type DatabaseSettings struct {
	Type   string `mapstructure:"type" validate:"required,oneof=sqlite postgres"`
	DSN    string `mapstructure:"dsn"`
	DBName string `mapstructure:"db_name"`
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}

	// SQLite falls back to an in-memory store when DSN is empty;
	// PostgreSQL has no such fallback.
	if s.Type == PostgresDbType && s.DSN == "" {
		return fmt.Errorf("dsn is required for postgres")
	}

	return nil
}

package persistence

import (
	"fmt"
	"strings"

	"github.com/Fransisiw/DA-Dolores-FarmersData/internal/infrastructure/persistence/models"
	"github.com/Fransisiw/DA-Dolores-FarmersData/internal/pkg/config"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// NewDBConnection creates a database connection based on settings
// Supports both production and test environments
func NewDBConnection(settings config.DatabaseSettings) (*gorm.DB, error) {
	var db *gorm.DB
	var err error

	switch settings.Type {
	case config.PostgresDbType:
		db, err = connectPostgres(settings)
	case config.SqliteDbType:
		db, err = connectSQLite(settings)
	default:
		return nil, fmt.Errorf("unsupported database type: %s", settings.Type)
	}

	if err != nil {
		return nil, err
	}

	return db, nil
}

// connectPostgres establishes PostgreSQL connection
func connectPostgres(settings config.DatabaseSettings) (*gorm.DB, error) {
	dsn := settings.DSN
	if settings.DBName != "" {
		dsn = fmt.Sprintf("%s dbname=%s", settings.DSN, settings.DBName)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	return db, nil
}

// connectSQLite establishes SQLite connection
func connectSQLite(settings config.DatabaseSettings) (*gorm.DB, error) {
	dsn, inMemory := sqliteDSN(settings.DSN)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite: %w", err)
	}

	if inMemory {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get database instance: %w", err)
		}
		// An in-memory database only lives as long as a connection holds
		// it; a single-connection pool keeps it stable and visible to all
		// callers.
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

// sqliteDSN normalizes a SQLite DSN. Foreign key enforcement is scoped
// to a single SQLite connection, so it must travel in the DSN where
// every pooled connection picks it up on open; a one-off PRAGMA would
// leave later connections with the items cascade disabled. An empty or
// plain ":memory:" DSN maps to a uniquely named shared-cache in-memory
// database so the whole pool of one handle sees the same tables while
// separate handles stay isolated.
func sqliteDSN(dsn string) (string, bool) {
	if dsn == "" || dsn == ":memory:" {
		return fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString()), true
	}
	if !strings.Contains(dsn, "_foreign_keys") {
		if strings.Contains(dsn, "?") {
			dsn += "&_foreign_keys=on"
		} else {
			dsn += "?_foreign_keys=on"
		}
	}
	return dsn, false
}

// MigrateSchema ensures the folders and items tables exist. It is
// idempotent and safe to invoke on every startup; a failure here is
// fatal to startup and must be reported by the caller.
func MigrateSchema(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.FolderModel{}, &models.ItemModel{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// CloseDB closes the database connection
func CloseDB(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("failed to close database connection: %w", err)
	}
	return nil
}

package database

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"snakegame/internal/models"
)

// Config holds database connection details.
type Config struct {
	// Path is the SQLite database file, used when URL is empty.
	Path string
	// URL is an optional PostgreSQL DSN. When set it takes precedence
	// over Path.
	URL string
}

// Connect opens the database selected by cfg and ensures the schema exists.
// The bootstrap is create-if-absent, so repeated startups are safe.
func Connect(cfg Config) (*gorm.DB, error) {
	dialector := dialectorFor(cfg)

	// TranslateError maps driver-specific constraint errors to GORM's
	// sentinel errors (gorm.ErrDuplicatedKey etc.) for both engines.
	db, err := gorm.Open(dialector, &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// dialectorFor picks PostgreSQL when a URL is configured, otherwise the
// local SQLite file. SQLite does not enforce foreign keys by default, so the
// pragma is enabled through the DSN and applies to every pooled connection.
func dialectorFor(cfg Config) gorm.Dialector {
	if cfg.URL != "" {
		return postgres.Open(cfg.URL)
	}
	sep := "?"
	if strings.Contains(cfg.Path, "?") {
		sep = "&"
	}
	return sqlite.Open(fmt.Sprintf("file:%s%s_foreign_keys=on", cfg.Path, sep))
}

// Migrate creates the users, scores and login_logs tables if they are
// missing. There is no migration system; AutoMigrate is idempotent.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.Score{}, &models.LoginLog{}); err != nil {
		return fmt.Errorf("failed to migrate database schema: %w", err)
	}
	return nil
}

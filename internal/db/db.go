package db

import (
	"fmt"
	"log/slog"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"acquisitions/internal/config"
	"acquisitions/internal/user"
)

// Open connects to Postgres and migrates the schema. TranslateError is
// enabled so a violated unique index comes back as gorm.ErrDuplicatedKey
// regardless of driver.
func Open(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{TranslateError: true}
	dbConn, err := gorm.Open(postgres.Open(cfg.DatabaseURL), gormCfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := dbConn.AutoMigrate(&user.User{}); err != nil {
		return nil, fmt.Errorf("migrate schema: %w", err)
	}

	slog.Info("database connected and migrated")
	return dbConn, nil
}

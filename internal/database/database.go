// Package database provides PostgreSQL connection management.
package database

import (
	"context"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	dbConfig "github.com/clubhq/membership/internal/database/config"
	"github.com/clubhq/membership/internal/database/pool"
	"github.com/clubhq/membership/pkg/retry"
)

// New opens a connection using environment configuration, retrying while the
// database comes up, and applies pool settings. The returned handle is meant
// to be constructed once in main and injected into repositories.
func New(ctx context.Context) (*gorm.DB, error) {
	cfg, err := dbConfig.LoadConfigFromEnv()
	if err != nil {
		return nil, err
	}
	return NewWithConfig(ctx, cfg)
}

// NewWithConfig opens a connection with custom configuration.
func NewWithConfig(ctx context.Context, cfg dbConfig.Config) (*gorm.DB, error) {
	dsn := dbConfig.BuildDSN(cfg)

	var db *gorm.DB
	err := retry.Do(ctx, dbConfig.LoadRetryConfigFromEnv(), func() error {
		var openErr error
		db, openErr = gorm.Open(postgres.Open(dsn), &gorm.Config{})
		return openErr
	})
	if err != nil {
		return nil, dbConfig.SanitizeError(err, cfg)
	}

	if err := pool.Setup(db, pool.LoadConfigFromEnv()); err != nil {
		return nil, fmt.Errorf("failed to configure connection pool: %w", err)
	}

	return db, nil
}

// HealthCheck verifies database connection availability.
func HealthCheck(ctx context.Context, db *gorm.DB) error {
	if db == nil {
		return fmt.Errorf("database connection is nil")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Close()
}

// Package db opens the relational database connection for the server.
package db

import (
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"booklog_backend/internal/app/config"
	authentity "booklog_backend/internal/feature/auth/domain/entity"
	bookadapters "booklog_backend/internal/feature/books/adapters"
)

const (
	connectTimeout = 60 * time.Second
	retryInterval  = 3 * time.Second
)

// Open connects to postgres, retrying until the connection succeeds or
// the timeout elapses (the database container may still be starting).
// TranslateError is enabled so unique violations surface as
// gorm.ErrDuplicatedKey instead of driver-specific errors.
func Open(cfg *config.Config) (*gorm.DB, error) {
	var (
		conn *gorm.DB
		err  error
	)

	deadline := time.Now().Add(connectTimeout)
	for {
		conn, err = gorm.Open(postgres.Open(cfg.DSN()), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			return nil, fmt.Errorf("database connect failed after %s: %w", connectTimeout, err)
		}
		slog.Warn("database connect failed, retrying", "error", err)
		time.Sleep(retryInterval)
	}

	if cfg.RunMigrations {
		if err := Migrate(conn); err != nil {
			return nil, err
		}
	}

	return conn, nil
}

// Migrate creates or updates the users and books tables. The books
// table carries the cascade-delete foreign key to users, so users must
// migrate first.
func Migrate(conn *gorm.DB) error {
	if err := conn.AutoMigrate(
		&authentity.User{},
		&bookadapters.BookModel{},
	); err != nil {
		return fmt.Errorf("failed to migrate: %w", err)
	}
	return nil
}

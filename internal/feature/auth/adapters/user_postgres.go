// Package adapters provides the repository implementations for the auth feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"booklog_backend/internal/feature/auth/domain/entity"
	"booklog_backend/internal/feature/auth/usecase"
)

// userPostgres is the GORM implementation of the UserRepository interface.
type userPostgres struct {
	db *gorm.DB
}

// Compile-time check that userPostgres implements UserRepository.
var _ usecase.UserRepository = (*userPostgres)(nil)

// NewUserRepository creates a userPostgres backed by the given gorm.DB.
func NewUserRepository(db *gorm.DB) *userPostgres {
	return &userPostgres{db: db}
}

// Create inserts the user. Unique-index violations are mapped to the
// usecase sentinel for whichever field is already taken. Relies on
// gorm's TranslateError so the same code works against postgres and
// the sqlite test driver.
func (r *userPostgres) Create(ctx context.Context, u *entity.User) error {
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return r.conflictError(ctx, u)
		}
		return err
	}
	return nil
}

// conflictError decides which unique field caused a duplicate-key
// failure by probing for an existing row with the same email.
func (r *userPostgres) conflictError(ctx context.Context, u *entity.User) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entity.User{}).
		Where("email = ?", u.Email).Count(&count).Error; err == nil && count > 0 {
		return usecase.ErrEmailAlreadyExists
	}
	return usecase.ErrUsernameAlreadyExists
}

// FindByEmail retrieves a user by email address.
// Returns usecase.ErrUserNotFound if no such user exists.
func (r *userPostgres) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// FindByID retrieves a user by ID.
// Returns usecase.ErrUserNotFound if no such user exists.
func (r *userPostgres) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// Package usecase implements the business logic for the auth feature.
package usecase

import "errors"

var (
	// ErrUserNotFound is returned when a user cannot be found by email or ID.
	ErrUserNotFound = errors.New("user not found")

	// ErrEmailAlreadyExists is returned when attempting to create a user
	// with an email that is already registered.
	ErrEmailAlreadyExists = errors.New("email is already registered")

	// ErrUsernameAlreadyExists is returned when attempting to create a user
	// with a username that is already taken.
	ErrUsernameAlreadyExists = errors.New("username is already taken")

	// ErrInvalidCredentials is returned for any login failure. The message
	// is identical for unknown email and wrong password so responses cannot
	// be used to enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidToken is returned when a token fails verification.
	ErrInvalidToken = errors.New("invalid or expired token")
)

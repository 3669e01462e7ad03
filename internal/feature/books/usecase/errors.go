// Package usecase implements the business logic for the books feature.
package usecase

import "errors"

var (
	// ErrBookNotFound is returned when no book exists with the given ID.
	ErrBookNotFound = errors.New("book not found")

	// ErrForbidden is returned when a book exists but belongs to a
	// different user than the caller.
	ErrForbidden = errors.New("access denied")
)

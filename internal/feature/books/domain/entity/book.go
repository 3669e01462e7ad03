// Package entity defines the domain entities for the books feature.
package entity

import "time"

// Book is a single entry in a user's collection. Every book belongs to
// exactly one owner; ownership never changes after creation.
type Book struct {
	// ID is the unique identifier for the book.
	ID string

	// Title of the book, 1-200 characters.
	Title string

	// Author of the book, 1-100 characters.
	Author string

	// Genre of the book, 1-50 characters.
	Genre string

	// Rating given by the owner, 0-5 inclusive.
	Rating float64

	// Review is the owner's free-form notes, up to 2000 characters.
	Review string

	// OwnerID identifies the user the book belongs to.
	OwnerID string

	// CreatedAt is the timestamp when the book was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp of the last modification.
	UpdatedAt time.Time
}

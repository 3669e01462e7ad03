package usecase

import (
	"context"

	"booklog_backend/internal/feature/books/domain/entity"
)

// BookRepository abstracts the persistence layer for book entities.
// The store is ownership-agnostic: no method here filters or checks by
// owner except ListByOwner, and access control lives entirely in this
// usecase. Following Go convention, the interface is defined by the
// consumer (usecase), not the provider (adapters).
type BookRepository interface {
	// ListByOwner returns all books owned by the given user, newest first.
	ListByOwner(ctx context.Context, ownerID string) ([]entity.Book, error)

	// FindByID retrieves a book by ID regardless of owner.
	// Returns ErrBookNotFound if no such book exists.
	FindByID(ctx context.Context, id string) (*entity.Book, error)

	// Create persists a new book.
	Create(ctx context.Context, book *entity.Book) error

	// Update applies the given field values to the book with the given ID,
	// refreshing its updated_at timestamp, and returns the updated book.
	// Returns ErrBookNotFound if no such book exists.
	Update(ctx context.Context, id string, changes *entity.Book) (*entity.Book, error)

	// Delete removes the book with the given ID.
	Delete(ctx context.Context, id string) error
}

// booksUsecase implements the book collection business logic, including
// the ownership guard shared by every per-book operation.
type booksUsecase struct {
	books BookRepository
}

// NewBooksUsecase creates a new booksUsecase instance.
func NewBooksUsecase(books BookRepository) *booksUsecase {
	return &booksUsecase{books: books}
}

// verifyOwnership loads the book and enforces that the caller owns it.
// Existence is checked strictly before ownership: a nonexistent ID is
// always ErrBookNotFound no matter whose book the caller guessed, and
// ErrForbidden is only ever returned for books that do exist.
func (bu *booksUsecase) verifyOwnership(ctx context.Context, bookID, callerID string) (*entity.Book, error) {
	book, err := bu.books.FindByID(ctx, bookID)
	if err != nil {
		return nil, err
	}
	if book.OwnerID != callerID {
		return nil, ErrForbidden
	}
	return book, nil
}

// List returns all books owned by the caller, newest first.
func (bu *booksUsecase) List(ctx context.Context, callerID string) ([]entity.Book, error) {
	return bu.books.ListByOwner(ctx, callerID)
}

// Get returns the book with the given ID if the caller owns it.
func (bu *booksUsecase) Get(ctx context.Context, bookID, callerID string) (*entity.Book, error) {
	return bu.verifyOwnership(ctx, bookID, callerID)
}

// Create persists a new book for the caller. The owner is always the
// authenticated caller; any owner value already set on the book is
// overwritten rather than trusted.
func (bu *booksUsecase) Create(ctx context.Context, callerID string, book *entity.Book) (*entity.Book, error) {
	book.OwnerID = callerID
	if err := bu.books.Create(ctx, book); err != nil {
		return nil, err
	}
	return book, nil
}

// Update applies changes to the caller's book. The ownership check runs
// first, then the write; two concurrent updates can both pass the check
// and the later write wins (accepted, see DESIGN.md).
func (bu *booksUsecase) Update(ctx context.Context, bookID, callerID string, changes *entity.Book) (*entity.Book, error) {
	if _, err := bu.verifyOwnership(ctx, bookID, callerID); err != nil {
		return nil, err
	}
	return bu.books.Update(ctx, bookID, changes)
}

// Delete removes the caller's book. Deleting an ID that no longer
// exists fails the ownership check with ErrBookNotFound.
func (bu *booksUsecase) Delete(ctx context.Context, bookID, callerID string) error {
	if _, err := bu.verifyOwnership(ctx, bookID, callerID); err != nil {
		return err
	}
	return bu.books.Delete(ctx, bookID)
}

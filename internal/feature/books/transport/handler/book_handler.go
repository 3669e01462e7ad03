// Package handler provides the HTTP handlers for the books feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"booklog_backend/internal/feature/books/domain/entity"
	"booklog_backend/internal/feature/books/transport/http/dto"
	"booklog_backend/internal/feature/books/usecase"
	jwtmw "booklog_backend/internal/platform/jwt"
	"booklog_backend/internal/shared/apierr"
)

// BooksUsecase defines the book operations the handler needs. All
// per-book methods take the authenticated caller's ID and enforce
// ownership internally. Following Go convention, the interface is
// defined by the consumer (handler), not the provider (usecase).
type BooksUsecase interface {
	List(ctx context.Context, callerID string) ([]entity.Book, error)
	Get(ctx context.Context, bookID, callerID string) (*entity.Book, error)
	Create(ctx context.Context, callerID string, book *entity.Book) (*entity.Book, error)
	Update(ctx context.Context, bookID, callerID string, changes *entity.Book) (*entity.Book, error)
	Delete(ctx context.Context, bookID, callerID string) error
}

// BookHandler handles HTTP requests for the book collection. Every
// route is registered behind the JWT middleware, so the caller ID is
// always present in the request context.
type BookHandler struct {
	books   BooksUsecase
	devMode bool
}

// NewBookHandler creates a new BookHandler. devMode controls whether
// 500 responses include internal error detail.
func NewBookHandler(books BooksUsecase, devMode bool) *BookHandler {
	return &BookHandler{books: books, devMode: devMode}
}

// List handles GET /books and returns the caller's books, newest first.
func (h *BookHandler) List(c *gin.Context) {
	callerID := c.GetString(jwtmw.ContextUserID)

	books, err := h.books.List(c.Request.Context(), callerID)
	if err != nil {
		slog.Error("failed to list books", "error", err, "user_id", callerID)
		c.JSON(http.StatusInternalServerError, h.internal("Failed to fetch books", err))
		return
	}
	c.JSON(http.StatusOK, dto.NewBookListResponse(books))
}

// Get handles GET /books/:id.
// Returns 404 when the ID does not exist and 403 when the book belongs
// to another user.
func (h *BookHandler) Get(c *gin.Context) {
	callerID := c.GetString(jwtmw.ContextUserID)

	book, err := h.books.Get(c.Request.Context(), c.Param("id"), callerID)
	if err != nil {
		h.renderError(c, err, "Failed to fetch book")
		return
	}
	c.JSON(http.StatusOK, dto.NewBookResponse(book))
}

// Create handles POST /books. The owner is always the authenticated
// caller; a client-supplied owner field is not part of the schema and
// would be ignored by binding.
func (h *BookHandler) Create(c *gin.Context) {
	callerID := c.GetString(jwtmw.ContextUserID)

	var req dto.BookReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("book validation failed", "error", err, "user_id", callerID)
		c.JSON(http.StatusBadRequest, apierr.Validation("Invalid book data", err))
		return
	}

	book, err := h.books.Create(c.Request.Context(), callerID, req.ToEntity())
	if err != nil {
		slog.Error("failed to create book", "error", err, "user_id", callerID)
		c.JSON(http.StatusInternalServerError, h.internal("Failed to create book", err))
		return
	}

	slog.Info("book created", "book_id", book.ID, "user_id", callerID)
	c.JSON(http.StatusCreated, dto.NewBookResponse(book))
}

// Update handles PUT /books/:id. Validation runs before any store
// access; the ownership check runs before the write.
func (h *BookHandler) Update(c *gin.Context) {
	callerID := c.GetString(jwtmw.ContextUserID)

	var req dto.BookReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("book validation failed", "error", err, "user_id", callerID)
		c.JSON(http.StatusBadRequest, apierr.Validation("Invalid book data", err))
		return
	}

	book, err := h.books.Update(c.Request.Context(), c.Param("id"), callerID, req.ToEntity())
	if err != nil {
		h.renderError(c, err, "Failed to update book")
		return
	}
	c.JSON(http.StatusOK, dto.NewBookResponse(book))
}

// Delete handles DELETE /books/:id. Deletion is irreversible; a second
// delete of the same ID gets 404 from the ownership check.
func (h *BookHandler) Delete(c *gin.Context) {
	callerID := c.GetString(jwtmw.ContextUserID)

	bookID := c.Param("id")
	if err := h.books.Delete(c.Request.Context(), bookID, callerID); err != nil {
		h.renderError(c, err, "Failed to delete book")
		return
	}

	slog.Info("book deleted", "book_id", bookID, "user_id", callerID)
	c.Status(http.StatusNoContent)
}

// renderError maps ownership-guard sentinels to their HTTP statuses and
// everything else to a generic 500.
func (h *BookHandler) renderError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrBookNotFound):
		c.JSON(http.StatusNotFound, apierr.New("Book not found"))
	case errors.Is(err, usecase.ErrForbidden):
		c.JSON(http.StatusForbidden, apierr.New("Access denied"))
	default:
		slog.Error(fallback, "error", err, "path", c.FullPath())
		c.JSON(http.StatusInternalServerError, h.internal(fallback, err))
	}
}

// internal builds a 500 body, attaching error detail only in
// development mode.
func (h *BookHandler) internal(message string, err error) apierr.Response {
	resp := apierr.New(message)
	if h.devMode {
		resp.Detail = err.Error()
	}
	return resp
}

package dto

import (
	"time"

	"booklog_backend/internal/feature/books/domain/entity"
)

// BookResponse is the JSON shape of a book. Timestamp and owner keys
// are snake_case, matching the relational column names the SPA client
// was written against.
type BookResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Author    string    `json:"author"`
	Genre     string    `json:"genre"`
	Rating    float64   `json:"rating"`
	Review    string    `json:"review"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewBookResponse converts a book entity into its JSON shape.
func NewBookResponse(b *entity.Book) BookResponse {
	return BookResponse{
		ID:        b.ID,
		Title:     b.Title,
		Author:    b.Author,
		Genre:     b.Genre,
		Rating:    b.Rating,
		Review:    b.Review,
		UserID:    b.OwnerID,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

// NewBookListResponse converts a slice of book entities, preserving order.
func NewBookListResponse(books []entity.Book) []BookResponse {
	out := make([]BookResponse, 0, len(books))
	for i := range books {
		out = append(out, NewBookResponse(&books[i]))
	}
	return out
}

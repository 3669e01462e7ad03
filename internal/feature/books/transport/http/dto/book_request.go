// Package dto defines data transfer objects for the books feature's HTTP transport layer.
package dto

import "booklog_backend/internal/feature/books/domain/entity"

// BookReq represents the request body for creating or updating a book.
// Rating is bound as a pointer so that an explicit rating of 0 passes
// the required rule. Owner and ID fields are never accepted from the
// client: the owner is the authenticated caller and the ID comes from
// the URL.
type BookReq struct {
	Title  string   `json:"title" binding:"required,min=1,max=200"`
	Author string   `json:"author" binding:"required,min=1,max=100"`
	Genre  string   `json:"genre" binding:"required,min=1,max=50"`
	Rating *float64 `json:"rating" binding:"required,gte=0,lte=5"`
	Review string   `json:"review" binding:"max=2000"`
}

// ToEntity converts the validated request into a book entity. OwnerID
// is left empty; the usecase forces it to the caller.
func (r *BookReq) ToEntity() *entity.Book {
	return &entity.Book{
		Title:  r.Title,
		Author: r.Author,
		Genre:  r.Genre,
		Rating: *r.Rating,
		Review: r.Review,
	}
}

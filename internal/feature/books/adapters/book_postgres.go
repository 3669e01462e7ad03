// Package adapters provides the repository implementations for the books feature.
package adapters

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	authentity "booklog_backend/internal/feature/auth/domain/entity"
	"booklog_backend/internal/feature/books/domain/entity"
	"booklog_backend/internal/feature/books/usecase"
)

// bookPostgres is the GORM implementation of the BookRepository interface.
type bookPostgres struct {
	db *gorm.DB
}

// Compile-time check that bookPostgres implements BookRepository.
var _ usecase.BookRepository = (*bookPostgres)(nil)

// NewBookRepository creates a bookPostgres backed by the given gorm.DB.
func NewBookRepository(db *gorm.DB) *bookPostgres {
	return &bookPostgres{db: db}
}

// BookModel is the persistence shape of a book. Deleting a user
// cascades to their books through the foreign key constraint.
type BookModel struct {
	ID     string  `gorm:"type:uuid;primaryKey"`
	Title  string  `gorm:"size:200;not null"`
	Author string  `gorm:"size:100;not null"`
	Genre  string  `gorm:"size:50;not null"`
	Rating float64 `gorm:"not null"`
	Review string  `gorm:"size:2000"`

	UserID string          `gorm:"type:uuid;index;not null"`
	Owner  authentity.User `gorm:"foreignKey:UserID;references:ID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName maps the model to the books table.
func (BookModel) TableName() string {
	return "books"
}

// BeforeCreate assigns a UUID primary key when none is set.
func (m *BookModel) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

func toModel(e *entity.Book) BookModel {
	return BookModel{
		ID:     e.ID,
		Title:  e.Title,
		Author: e.Author,
		Genre:  e.Genre,
		Rating: e.Rating,
		Review: e.Review,
		UserID: e.OwnerID,
	}
}

func toEntity(m *BookModel) *entity.Book {
	return &entity.Book{
		ID:        m.ID,
		Title:     m.Title,
		Author:    m.Author,
		Genre:     m.Genre,
		Rating:    m.Rating,
		Review:    m.Review,
		OwnerID:   m.UserID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// ListByOwner returns all books owned by the given user, newest first.
func (r *bookPostgres) ListByOwner(ctx context.Context, ownerID string) ([]entity.Book, error) {
	var rows []BookModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("created_at DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]entity.Book, 0, len(rows))
	for i := range rows {
		out = append(out, *toEntity(&rows[i]))
	}
	return out, nil
}

// FindByID retrieves a book by ID regardless of owner.
// Returns usecase.ErrBookNotFound if no such book exists.
func (r *bookPostgres) FindByID(ctx context.Context, id string) (*entity.Book, error) {
	var m BookModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrBookNotFound
		}
		return nil, err
	}
	return toEntity(&m), nil
}

// Create persists a new book and fills in the generated ID and
// timestamps on the passed entity.
func (r *bookPostgres) Create(ctx context.Context, book *entity.Book) error {
	m := toModel(book)
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	*book = *toEntity(&m)
	return nil
}

// Update applies the given field values to the book with the given ID.
// A map is used so zero values (rating 0, empty review) are written;
// GORM refreshes updated_at as part of the Updates call.
func (r *bookPostgres) Update(ctx context.Context, id string, changes *entity.Book) (*entity.Book, error) {
	res := r.db.WithContext(ctx).Model(&BookModel{}).Where("id = ?", id).Updates(map[string]any{
		"title":  changes.Title,
		"author": changes.Author,
		"genre":  changes.Genre,
		"rating": changes.Rating,
		"review": changes.Review,
	})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, usecase.ErrBookNotFound
	}
	return r.FindByID(ctx, id)
}

// Delete removes the book with the given ID. Deleting an absent ID is
// not an error at this layer; the ownership guard reports 404 first.
func (r *bookPostgres) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&BookModel{}).Error
}

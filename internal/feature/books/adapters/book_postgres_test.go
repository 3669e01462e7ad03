package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	authentity "booklog_backend/internal/feature/auth/domain/entity"
	"booklog_backend/internal/feature/books/domain/entity"
	"booklog_backend/internal/feature/books/usecase"
)

// setupTestDB prepares an in-memory SQLite database with the users and
// books tables and one owner row for foreign keys.
func setupTestDB(t *testing.T) (*gorm.DB, *authentity.User) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	require.NoError(t, db.AutoMigrate(&authentity.User{}, &BookModel{}), "failed to migrate tables")

	owner := &authentity.User{Username: "reader", Email: "reader@example.com", PasswordHash: "h"}
	require.NoError(t, db.Create(owner).Error)

	return db, owner
}

func newTestBook(ownerID string) *entity.Book {
	return &entity.Book{
		Title:   "Dune",
		Author:  "Frank Herbert",
		Genre:   "Science Fiction",
		Rating:  4.5,
		Review:  "Slow start, great payoff.",
		OwnerID: ownerID,
	}
}

func TestBookRepository_Create(t *testing.T) {
	db, owner := setupTestDB(t)
	repo := NewBookRepository(db)

	book := newTestBook(owner.ID)
	err := repo.Create(context.Background(), book)

	require.NoError(t, err)
	assert.NotEmpty(t, book.ID, "ID is not set")
	assert.False(t, book.CreatedAt.IsZero(), "CreatedAt is not set")
	assert.Equal(t, owner.ID, book.OwnerID)
}

func TestBookRepository_FindByID(t *testing.T) {
	t.Run("round-trips all fields", func(t *testing.T) {
		db, owner := setupTestDB(t)
		repo := NewBookRepository(db)

		created := newTestBook(owner.ID)
		require.NoError(t, repo.Create(context.Background(), created))

		got, err := repo.FindByID(context.Background(), created.ID)

		require.NoError(t, err)
		assert.Equal(t, created.Title, got.Title)
		assert.Equal(t, created.Author, got.Author)
		assert.Equal(t, created.Genre, got.Genre)
		assert.Equal(t, created.Rating, got.Rating)
		assert.Equal(t, created.Review, got.Review)
		assert.Equal(t, created.OwnerID, got.OwnerID)
	})

	t.Run("unknown id returns ErrBookNotFound", func(t *testing.T) {
		db, _ := setupTestDB(t)
		repo := NewBookRepository(db)

		_, err := repo.FindByID(context.Background(), "no-such-id")

		assert.ErrorIs(t, err, usecase.ErrBookNotFound)
	})
}

func TestBookRepository_ListByOwner(t *testing.T) {
	t.Run("returns only the owner's books newest first", func(t *testing.T) {
		db, owner := setupTestDB(t)
		repo := NewBookRepository(db)

		other := &authentity.User{Username: "other", Email: "other@example.com", PasswordHash: "h"}
		require.NoError(t, db.Create(other).Error)

		// Insert with explicit timestamps so the expected order is unambiguous.
		base := time.Now().Add(-time.Hour)
		rows := []BookModel{
			{ID: "b-old", Title: "Old", Author: "a", Genre: "g", UserID: owner.ID, CreatedAt: base},
			{ID: "b-new", Title: "New", Author: "a", Genre: "g", UserID: owner.ID, CreatedAt: base.Add(10 * time.Minute)},
			{ID: "b-mid", Title: "Mid", Author: "a", Genre: "g", UserID: owner.ID, CreatedAt: base.Add(5 * time.Minute)},
			{ID: "b-foreign", Title: "Foreign", Author: "a", Genre: "g", UserID: other.ID, CreatedAt: base.Add(20 * time.Minute)},
		}
		for i := range rows {
			require.NoError(t, db.Create(&rows[i]).Error)
		}

		books, err := repo.ListByOwner(context.Background(), owner.ID)

		require.NoError(t, err)
		require.Len(t, books, 3)
		assert.Equal(t, "b-new", books[0].ID)
		assert.Equal(t, "b-mid", books[1].ID)
		assert.Equal(t, "b-old", books[2].ID)
	})

	t.Run("owner with no books gets an empty list", func(t *testing.T) {
		db, owner := setupTestDB(t)
		repo := NewBookRepository(db)

		books, err := repo.ListByOwner(context.Background(), owner.ID)

		require.NoError(t, err)
		assert.Empty(t, books)
	})
}

func TestBookRepository_Update(t *testing.T) {
	t.Run("applies fields and refreshes updated_at", func(t *testing.T) {
		db, owner := setupTestDB(t)
		repo := NewBookRepository(db)

		created := newTestBook(owner.ID)
		require.NoError(t, repo.Create(context.Background(), created))
		firstUpdatedAt := created.UpdatedAt

		time.Sleep(10 * time.Millisecond)

		got, err := repo.Update(context.Background(), created.ID, &entity.Book{
			Title:  "Dune Messiah",
			Author: "Frank Herbert",
			Genre:  "Science Fiction",
			Rating: 0, // zero values must be written, not skipped
			Review: "",
		})

		require.NoError(t, err)
		assert.Equal(t, "Dune Messiah", got.Title)
		assert.Zero(t, got.Rating)
		assert.Empty(t, got.Review)
		assert.True(t, got.UpdatedAt.After(firstUpdatedAt), "updated_at was not refreshed")
		// Owner and creation time are immutable through updates.
		assert.Equal(t, owner.ID, got.OwnerID)
		assert.Equal(t, created.CreatedAt.UTC().Truncate(time.Second), got.CreatedAt.UTC().Truncate(time.Second))
	})

	t.Run("unknown id returns ErrBookNotFound", func(t *testing.T) {
		db, _ := setupTestDB(t)
		repo := NewBookRepository(db)

		_, err := repo.Update(context.Background(), "no-such-id", newTestBook("x"))

		assert.ErrorIs(t, err, usecase.ErrBookNotFound)
	})
}

func TestBookRepository_Delete(t *testing.T) {
	db, owner := setupTestDB(t)
	repo := NewBookRepository(db)

	created := newTestBook(owner.ID)
	require.NoError(t, repo.Create(context.Background(), created))

	require.NoError(t, repo.Delete(context.Background(), created.ID))

	_, err := repo.FindByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, usecase.ErrBookNotFound)
}

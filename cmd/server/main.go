package main

import (
	"log"

	"booklog_backend/internal/app/config"
	"booklog_backend/internal/app/router"
	authadapters "booklog_backend/internal/feature/auth/adapters"
	authhandler "booklog_backend/internal/feature/auth/transport/handler"
	authusecase "booklog_backend/internal/feature/auth/usecase"
	bookadapters "booklog_backend/internal/feature/books/adapters"
	bookhandler "booklog_backend/internal/feature/books/transport/handler"
	bookusecase "booklog_backend/internal/feature/books/usecase"
	"booklog_backend/internal/platform/db"
	platformhandler "booklog_backend/internal/platform/http/handler"
	jwtmw "booklog_backend/internal/platform/jwt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	conn, err := db.Open(cfg)
	if err != nil {
		log.Fatal(err)
	}

	// Tokens
	tokens := jwtmw.NewManager(cfg.JWTSecret, cfg.JWTExpiration)

	// Repositories
	userRepo := authadapters.NewUserRepository(conn)
	bookRepo := bookadapters.NewBookRepository(conn)

	// Usecases
	authUC := authusecase.NewAuthUsecase(userRepo, tokens, tokens)
	booksUC := bookusecase.NewBooksUsecase(bookRepo)

	// Handlers
	authH := authhandler.NewAuthHandler(authUC, cfg.Development())
	booksH := bookhandler.NewBookHandler(booksUC, cfg.Development())
	healthH := platformhandler.NewHealthHandler(conn)

	r := router.NewRouter(authH, booksH, healthH, tokens, cfg.CORSOrigin)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}

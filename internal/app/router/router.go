// Package router wires the HTTP route table.
package router

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	authhandler "booklog_backend/internal/feature/auth/transport/handler"
	bookhandler "booklog_backend/internal/feature/books/transport/handler"
	platformhandler "booklog_backend/internal/platform/http/handler"
	jwtmw "booklog_backend/internal/platform/jwt"
)

// NewRouter builds the Gin engine with all routes registered. The books
// group sits behind the JWT middleware; auth and health routes do not
// require a token.
func NewRouter(
	auth *authhandler.AuthHandler,
	books *bookhandler.BookHandler,
	health *platformhandler.HealthHandler,
	verifier jwtmw.Verifier,
	corsOrigin string,
) *gin.Engine {
	r := gin.Default()

	// The SPA client runs on a different origin.
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowOrigins = []string{corsOrigin}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", "token")
	r.Use(cors.New(corsCfg))

	// Liveness/readiness for load balancers; no auth.
	r.GET("/health", health.Health)

	authGroup := r.Group("/auth")
	{
		authGroup.POST("/signup", auth.Signup)
		authGroup.POST("/login", auth.Login)
		authGroup.GET("/verify", auth.Verify)
	}

	booksGroup := r.Group("/books")
	booksGroup.Use(jwtmw.AuthRequired(verifier))
	{
		booksGroup.GET("", books.List)
		booksGroup.GET("/:id", books.Get)
		booksGroup.POST("", books.Create)
		booksGroup.PUT("/:id", books.Update)
		booksGroup.DELETE("/:id", books.Delete)
	}

	return r
}

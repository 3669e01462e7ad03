// Package handler provides the HTTP handlers for the auth feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"booklog_backend/internal/feature/auth/domain/entity"
	"booklog_backend/internal/feature/auth/transport/http/dto"
	"booklog_backend/internal/feature/auth/usecase"
	"booklog_backend/internal/shared/apierr"
)

// AuthUsecase defines the authentication operations the handler needs.
// Following Go convention, the interface is defined by the consumer
// (handler), not the provider (usecase).
type AuthUsecase interface {
	// Signup registers a new user and returns a signed token with the
	// created user.
	Signup(ctx context.Context, username, email, password string) (string, *entity.User, error)
	// Login authenticates a user and returns a signed token on success.
	Login(ctx context.Context, email, password string) (string, *entity.User, error)
	// Verify checks a bearer token and returns the user it identifies.
	Verify(ctx context.Context, token string) (*entity.User, error)
}

// AuthHandler handles HTTP requests for authentication operations.
type AuthHandler struct {
	auth    AuthUsecase
	devMode bool
}

// NewAuthHandler creates a new AuthHandler. devMode controls whether
// 500 responses include internal error detail.
func NewAuthHandler(auth AuthUsecase, devMode bool) *AuthHandler {
	return &AuthHandler{auth: auth, devMode: devMode}
}

// Signup handles POST /auth/signup.
// - 400 with field issues on validation failure
// - 409 when the email or username is already taken
// - 201 with token and public user on success
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, apierr.Validation("Invalid input", err))
		return
	}

	token, user, err := h.auth.Signup(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrEmailAlreadyExists):
			slog.Warn("signup conflict", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusConflict, apierr.New("Email is already registered"))
		case errors.Is(err, usecase.ErrUsernameAlreadyExists):
			slog.Warn("signup conflict", "username", req.Username, "remote_addr", c.ClientIP())
			c.JSON(http.StatusConflict, apierr.New("Username is already taken"))
		default:
			slog.Error("signup failed", "error", err, "remote_addr", c.ClientIP())
			c.JSON(http.StatusInternalServerError, h.internal("Failed to create user", err))
		}
		return
	}

	slog.Info("user signup successful", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusCreated, dto.AuthResponse{
		Message: "User successfully created",
		Token:   token,
		User:    dto.NewUserResponse(user),
	})
}

// Login handles POST /auth/login.
// Unknown email and wrong password return the same 401 body so the
// response cannot be used to enumerate accounts.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("login validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, apierr.Validation("Invalid input", err))
		return
	}

	token, user, err := h.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			slog.Warn("login failed", "email", req.Email, "remote_addr", c.ClientIP())
			c.JSON(http.StatusUnauthorized, apierr.New("Invalid email or password"))
			return
		}
		slog.Error("login failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, h.internal("Login failed", err))
		return
	}

	slog.Info("user login successful", "user_id", user.ID, "remote_addr", c.ClientIP())
	c.JSON(http.StatusOK, dto.AuthResponse{
		Message: "Login successful",
		Token:   token,
		User:    dto.NewUserResponse(user),
	})
}

// Verify handles GET /auth/verify. The token travels in a bare "token"
// header (the SPA client sends it that way). A missing, invalid or
// expired token yields 401 with valid:false.
func (h *AuthHandler) Verify(c *gin.Context) {
	token := c.GetHeader("token")

	user, err := h.auth.Verify(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidToken) {
			c.JSON(http.StatusUnauthorized, gin.H{"valid": false, "message": "Invalid or expired token"})
			return
		}
		slog.Error("token verification failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusInternalServerError, h.internal("Verification failed", err))
		return
	}

	c.JSON(http.StatusOK, dto.VerifyResponse{Valid: true, User: dto.NewUserResponse(user)})
}

// internal builds a 500 body, attaching error detail only in
// development mode.
func (h *AuthHandler) internal(message string, err error) apierr.Response {
	resp := apierr.New(message)
	if h.devMode {
		resp.Detail = err.Error()
	}
	return resp
}

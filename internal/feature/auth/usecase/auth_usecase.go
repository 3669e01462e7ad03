package usecase

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"booklog_backend/internal/feature/auth/domain/entity"
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention, the interface is defined by the consumer
// (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns ErrEmailAlreadyExists or
	// ErrUsernameAlreadyExists when a unique field is already taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByEmail retrieves a user matching the specified email address.
	// It returns ErrUserNotFound if no such user exists.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user matching the specified ID.
	// It returns ErrUserNotFound if no such user exists.
	FindByID(ctx context.Context, id string) (*entity.User, error)
}

// TokenIssuer generates signed bearer tokens. Defined here (consumer
// side); implemented by platform/jwt.
type TokenIssuer interface {
	GenerateToken(userID string) (string, error)
}

// TokenVerifier checks signed bearer tokens and returns the embedded
// user ID. Verification failure is reported as an error value, never a
// panic.
type TokenVerifier interface {
	VerifyToken(token string) (string, error)
}

// authUsecase implements the authentication business logic.
type authUsecase struct {
	users    UserRepository
	issuer   TokenIssuer
	verifier TokenVerifier
}

// NewAuthUsecase creates a new authUsecase instance.
func NewAuthUsecase(users UserRepository, issuer TokenIssuer, verifier TokenVerifier) *authUsecase {
	return &authUsecase{
		users:    users,
		issuer:   issuer,
		verifier: verifier,
	}
}

// Signup registers a new user with a hashed password and returns a
// signed token together with the created user. The raw password is
// hashed before anything touches the store; the hash never appears in
// the returned entity's serialized form.
func (u *authUsecase) Signup(ctx context.Context, username, email, password string) (string, *entity.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashed),
	}
	if err := u.users.Create(ctx, user); err != nil {
		return "", nil, err
	}

	token, err := u.issuer.GenerateToken(user.ID)
	if err != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", err)
	}
	return token, user, nil
}

// dummyHash is a valid bcrypt hash compared against when the email is
// unknown, so login takes the same time whether or not the user exists.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// Login authenticates a user and returns a signed token on success.
// Unknown email and wrong password both yield ErrInvalidCredentials.
func (u *authUsecase) Login(ctx context.Context, email, password string) (string, *entity.User, error) {
	user, err := u.users.FindByEmail(ctx, email)

	passwordHash := dummyHash
	if err == nil {
		passwordHash = user.PasswordHash
	}

	// Always run the bcrypt comparison to keep timing uniform.
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || compareErr != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, tokenErr := u.issuer.GenerateToken(user.ID)
	if tokenErr != nil {
		return "", nil, fmt.Errorf("failed to generate token: %w", tokenErr)
	}
	return token, user, nil
}

// Verify checks a bearer token and returns the user it identifies.
// Any signature or expiry failure, and a token whose subject no longer
// exists, yield ErrInvalidToken.
func (u *authUsecase) Verify(ctx context.Context, token string) (*entity.User, error) {
	userID, err := u.verifier.VerifyToken(token)
	if err != nil {
		return nil, ErrInvalidToken
	}

	user, err := u.users.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, err
	}
	return user, nil
}

package jwtmw

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"booklog_backend/internal/shared/apierr"
)

// ContextUserID is the Gin context key under which the middleware
// stores the authenticated user's ID.
const ContextUserID = "userID"

// Verifier checks a bearer token and returns the embedded user ID.
type Verifier interface {
	VerifyToken(token string) (string, error)
}

// AuthRequired returns a Gin middleware that restricts access to
// authenticated users. A request without a bearer token gets 401; a
// request with an invalid or expired token gets 403, so clients can
// tell "log in" apart from "your session is bad".
func AuthRequired(verifier Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierr.New("Access token required"))
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		userID, err := verifier.VerifyToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, apierr.New("Invalid or expired token"))
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}

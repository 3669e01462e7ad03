package apierr

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleInput struct {
	Username string  `validate:"required,min=3,max=50"`
	Email    string  `validate:"required,email"`
	Rating   float64 `validate:"gte=0,lte=5"`
}

func TestValidation(t *testing.T) {
	v := validator.New()

	t.Run("expands validator errors into field issues", func(t *testing.T) {
		err := v.Struct(sampleInput{Username: "ab", Email: "not-an-email", Rating: 5.01})
		require.Error(t, err)

		resp := Validation("Invalid input", err)

		assert.Equal(t, "Invalid input", resp.Message)
		require.Len(t, resp.Errors, 3)

		byField := map[string]string{}
		for _, issue := range resp.Errors {
			byField[issue.Field] = issue.Message
		}
		assert.Equal(t, "must be at least 3 characters", byField["username"])
		assert.Equal(t, "must be a valid email address", byField["email"])
		assert.Equal(t, "must be 5 or less", byField["rating"])
	})

	t.Run("non-validator errors yield the bare message", func(t *testing.T) {
		resp := Validation("Invalid input", errors.New("unexpected EOF"))

		assert.Equal(t, "Invalid input", resp.Message)
		assert.Empty(t, resp.Errors)
	})
}

func TestResponseJSON(t *testing.T) {
	t.Run("errors and detail are omitted when empty", func(t *testing.T) {
		b, err := json.Marshal(New("Book not found"))
		require.NoError(t, err)

		assert.JSONEq(t, `{"message":"Book not found"}`, string(b))
	})
}

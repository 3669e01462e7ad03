// Package apierr defines the JSON error envelope shared by all HTTP
// handlers and turns validator failures into field-level issue lists.
package apierr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldIssue describes a single validation failure on one input field.
type FieldIssue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Response is the error body returned by every endpoint:
// {"message": "...", "errors": [...]} with errors present only for
// validation failures. Detail carries internal error text and is only
// populated in development mode.
type Response struct {
	Message string       `json:"message"`
	Errors  []FieldIssue `json:"errors,omitempty"`
	Detail  string       `json:"detail,omitempty"`
}

// New returns a plain error response with the given message.
func New(message string) Response {
	return Response{Message: message}
}

// Validation builds a response for a request-binding failure. When err
// is a validator.ValidationErrors it is expanded into per-field issues;
// other binding errors (malformed JSON, type mismatches) yield the bare
// message.
func Validation(message string, err error) Response {
	resp := Response{Message: message}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			resp.Errors = append(resp.Errors, FieldIssue{
				Field:   strings.ToLower(fe.Field()),
				Message: issueMessage(fe),
			})
		}
	}
	return resp
}

// issueMessage renders a human-readable message for one failed rule.
func issueMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gte":
		return fmt.Sprintf("must be %s or greater", fe.Param())
	case "lte":
		return fmt.Sprintf("must be %s or less", fe.Param())
	default:
		return fmt.Sprintf("failed on the %q rule", fe.Tag())
	}
}

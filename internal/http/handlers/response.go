// Package handlers provides the HTTP handlers of the storefront API.
//
// This file defines the response helpers shared by all endpoints: the error
// envelope, validation-error mapping, and success writers. Every failure goes
// through fail() so that the shape is uniform and 5xx responses are logged
// with the request-scoped logger.
//
// Example error response:
//
//	HTTP/1.1 404 Not Found
//	{
//	  "request_id": "123e4567-e89b-12d3-a456-426614174000",
//	  "code": "not_found",
//	  "message": "Product not found"
//	}
package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"unicode"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/tbourn/go-storefront-backend/internal/http/middleware"
)

// ErrorResponse is the error envelope returned by all endpoints.
type ErrorResponse struct {
	// Correlates server logs and client errors
	RequestID string `json:"request_id,omitempty" example:"123e4567-e89b-12d3-a456-426614174000"`
	// Stable, machine-readable code (see errors.go)
	Code string `json:"code" example:"not_found"`
	// Human-readable message
	Message string `json:"message" example:"Product not found"`
	// Per-field problems, present only on validation failures
	Errors []FieldError `json:"errors,omitempty"`
}

// FieldError describes one rejected input field.
type FieldError struct {
	Field   string `json:"field" example:"email"`
	Tag     string `json:"tag" example:"required"`
	Message string `json:"message" example:"email is required"`
}

// fail aborts with an ErrorResponse; 5xx responses are logged.
func fail(c *gin.Context, status int, code, msg string) {
	failWith(c, status, ErrorResponse{Code: code, Message: msg})
}

// failErr is fail for unexpected errors: the client gets msg, the log gets err.
func failErr(c *gin.Context, code, msg string, err error) {
	_ = c.Error(err)
	fail(c, http.StatusInternalServerError, code, msg)
}

func failWith(c *gin.Context, status int, resp ErrorResponse) {
	resp.RequestID = c.Writer.Header().Get("X-Request-ID")
	if status >= http.StatusInternalServerError {
		ev := middleware.LoggerFrom(c).Error().
			Int("status", status).
			Str("code", resp.Code).
			Str("message", resp.Message)
		if last := c.Errors.Last(); last != nil {
			ev = ev.Err(last.Err)
		}
		ev.Msg("api error")
	}
	c.AbortWithStatusJSON(status, resp)
}

// Fail is the exported variant of fail for the router's fallback handlers.
func Fail(c *gin.Context, status int, code, msg string) { fail(c, status, code, msg) }

// failValidation answers 400 with the field errors found in err, which is
// the result of a gin binding call.
func failValidation(c *gin.Context, msg string, err error) {
	failWith(c, http.StatusBadRequest, ErrorResponse{
		Code:    ErrCodeValidation,
		Message: msg,
		Errors:  fieldErrors(err),
	})
}

// fieldErrors maps validator errors to FieldErrors. Anything else (malformed
// JSON, wrong types) becomes a single error on "body".
func fieldErrors(err error) []FieldError {
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return []FieldError{{Field: "body", Tag: "json", Message: "request body must be a valid JSON object"}}
	}
	out := make([]FieldError, 0, len(ves))
	for _, fe := range ves {
		name := lowerFirst(fe.Field())
		out = append(out, FieldError{Field: name, Tag: fe.Tag(), Message: describe(name, fe)})
	}
	return out
}

func describe(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email address"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
	default:
		return field + " is invalid"
	}
}

// lowerFirst turns a Go field name into its camelCase JSON key.
func lowerFirst(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToLower(r)) + s[n:]
}

// ok writes a JSON success response.
func ok(c *gin.Context, status int, body any) {
	c.JSON(status, body)
}

package response

import (
	"fmt"
	"net/http"
)

// APIError is a domain error carrying the HTTP status it should surface with.
// Usecases return these; the ErrorHandler middleware shapes them into the
// response envelope.
type APIError struct {
	StatusCode int         `json:"statusCode"`
	Message    string      `json:"message"`
	Errors     interface{} `json:"errors,omitempty"`
}

func (e *APIError) Error() string {
	return e.Message
}

// FieldError carries the validation messages collected for a single field.
type FieldError struct {
	Field    string   `json:"field"`
	Messages []string `json:"messages"`
}

func NewConflict(message string) *APIError {
	return &APIError{StatusCode: http.StatusConflict, Message: message}
}

func NewNotFound(message string) *APIError {
	return &APIError{StatusCode: http.StatusNotFound, Message: message}
}

func NewUnauthorized(message string) *APIError {
	return &APIError{StatusCode: http.StatusUnauthorized, Message: message}
}

func NewBadRequest(message string) *APIError {
	return &APIError{StatusCode: http.StatusBadRequest, Message: message}
}

// NewValidation builds the single BadRequest raised for a request body whose
// schema validation failed, with the per-field message map attached.
func NewValidation(fields []FieldError) *APIError {
	return &APIError{
		StatusCode: http.StatusBadRequest,
		Message:    "Validation failed",
		Errors:     fields,
	}
}

// NewConfiguration reports a missing secret or expiry. Surfaced as 500: the
// request cannot be served, but the process keeps running.
func NewConfiguration(message string) *APIError {
	return &APIError{StatusCode: http.StatusInternalServerError, Message: message}
}

// NewInternal wraps an unexpected failure with a generic message.
func NewInternal(err error) *APIError {
	return &APIError{
		StatusCode: http.StatusInternalServerError,
		Message:    "Something went wrong!",
		Errors:     []string{fmt.Sprint(err)},
	}
}

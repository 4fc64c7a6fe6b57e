// Package server provides the HTTP REST API for the resume matcher.
package server

import (
	"fmt"
	"net/http"
)

// ErrNotFound indicates a stored document was not found
type ErrNotFound struct {
	Kind string
	ID   string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrStorageDisabled indicates a persistence endpoint was hit on a server
// running without a database
type ErrStorageDisabled struct{}

func (e *ErrStorageDisabled) Error() string {
	return "storage endpoints require a database; start the server with DATABASE_URL set"
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrNotFound:
		return http.StatusNotFound
	case *ErrValidation:
		return http.StatusBadRequest
	case *ErrStorageDisabled:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Package server provides the HTTP REST API for the ATS evaluation engine.
package server

import (
	"fmt"
	"net/http"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
}

// ErrEmptyInput indicates that an input document was empty after normalization
type ErrEmptyInput struct {
	Input string
}

func (e *ErrEmptyInput) Error() string {
	return fmt.Sprintf("empty input: %s", e.Input)
}

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	switch err.(type) {
	case *ErrValidation, *ErrEmptyInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

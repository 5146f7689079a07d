// AngelaMos | 2026
// errors.go

package core

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrDuplicateKey = errors.New("duplicate key")
	ErrInvalidInput = errors.New("invalid input")
)

// FieldError is a single field-level validation failure. Order matters:
// handlers report errors in the order the rules were evaluated.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
	Details any    `json:"details,omitempty"`
	cause   error
}

func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.cause
}

func NotFoundError(entity, id string) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s %q not found", entity, id),
		Status:  404,
		cause:   ErrNotFound,
	}
}

func DuplicateKeyError(entity, field string) *AppError {
	return &AppError{
		Code:    "DUPLICATE_KEY",
		Message: fmt.Sprintf("a %s with the same %s already exists", entity, field),
		Status:  409,
		cause:   ErrDuplicateKey,
	}
}

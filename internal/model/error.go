package model

import "errors"

// ErrorKind classifies failures so handlers can pick a status code.
type ErrorKind string

// Error kinds returned by the service layer.
const (
	KindValidation ErrorKind = "VALIDATION_ERROR"
	KindNotFound   ErrorKind = "NOT_FOUND"
	KindStorage    ErrorKind = "STORAGE_ERROR"
)

// DomainError is returned by services for every failed operation.
type DomainError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewValidationError creates an error for a missing or malformed field.
func NewValidationError(message string) *DomainError {
	return &DomainError{Kind: KindValidation, Message: message}
}

// NewNotFoundError creates an error for an identifier that matches no row.
func NewNotFoundError(message string) *DomainError {
	return &DomainError{Kind: KindNotFound, Message: message}
}

// NewStorageError wraps a row store failure.
func NewStorageError(message string, err error) *DomainError {
	return &DomainError{Kind: KindStorage, Message: message, Err: err}
}

// Common domain errors
var (
	ErrDishNotFound     = NewNotFoundError("Dish not found")
	ErrCategoryNotFound = NewNotFoundError("Category not found")
)

// KindOf returns the kind of err. Errors that are not domain errors count as storage errors.
func KindOf(err error) ErrorKind {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindStorage
}

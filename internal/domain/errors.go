package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrValidation = errors.New("validation error")

	// Store failures.
	ErrRateLimited      = errors.New("store rate limited")
	ErrStoreUnavailable = errors.New("store unavailable")
	ErrStoreRejected    = errors.New("store rejected request")

	// Attachment failures.
	ErrFileTooLarge        = errors.New("file too large")
	ErrUnsupportedMedia    = errors.New("unsupported media type")
	ErrCorruptImage        = errors.New("corrupt image")
	ErrEncodeTimeout       = errors.New("encoding timed out")
	ErrMalformedAttachment = errors.New("malformed attachment")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// StoreError is a failed call to the external record store. Err is one of
// ErrRateLimited, ErrStoreUnavailable, ErrStoreRejected or, for a fetch by
// id only, ErrNotFound.
type StoreError struct {
	Table   string
	Op      string
	Status  int
	Message string
	Err     error
}

func (e *StoreError) Error() string {
	msg := e.Message
	if msg == "" && e.Err != nil {
		msg = e.Err.Error()
	}
	if e.Status > 0 {
		return fmt.Sprintf("store %s %q: status %d: %s", e.Op, e.Table, e.Status, msg)
	}
	return fmt.Sprintf("store %s %q: %s", e.Op, e.Table, msg)
}

func (e *StoreError) Unwrap() error { return e.Err }

// NotFoundError names the lookup key that matched no record.
type NotFoundError struct {
	Kind string
	Key  string
}

// NewNotFoundError creates a NotFoundError, e.g. NewNotFoundError("expediente", "EXP-1").
func NewNotFoundError(kind, key string) *NotFoundError {
	return &NotFoundError{Kind: kind, Key: key}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.Key)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

// EncodingError reports which file could not be turned into an attachment.
type EncodingError struct {
	Filename string
	Err      error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("encode %q: %v", e.Filename, e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }

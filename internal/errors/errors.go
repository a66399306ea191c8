package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "with this name"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// InvalidPayloadError is returned when an uploaded result file cannot be decoded
// as text or as JSON. Nothing is written to the store when it occurs.
type InvalidPayloadError struct {
	Reason string
	Err    error
}

func (e *InvalidPayloadError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid payload: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid payload: %s", e.Reason)
}

func (e *InvalidPayloadError) Unwrap() error {
	return e.Err
}

// Is matches any InvalidPayloadError, so errors.Is(err, ErrInvalidPayload) works regardless of reason
func (e *InvalidPayloadError) Is(target error) bool {
	_, ok := target.(*InvalidPayloadError)
	return ok
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrTeamNotFound       = &NotFoundError{Entity: "team"}
	ErrDriverNotFound     = &NotFoundError{Entity: "driver"}
	ErrEventNotFound      = &NotFoundError{Entity: "event"}
	ErrRaceResultNotFound = &NotFoundError{Entity: "race result"}
)

// Already Exists Errors
var (
	ErrTeamExists   = &AlreadyExistsError{Entity: "team", Context: "with this name"}
	ErrDriverExists = &AlreadyExistsError{Entity: "driver", Context: "with this full name"}
)

// Ingestion Errors
var (
	ErrInvalidPayload     = &InvalidPayloadError{Reason: "invalid result file"}
	ErrUpsertRetriesSpent = errors.New("upsert retries exhausted")
)

// Authentication Errors
var (
	ErrMissingToken = &AuthenticationError{Message: "missing bearer token"}
	ErrInvalidToken = &AuthenticationError{Message: "invalid or expired token"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsInvalidPayload checks if an error is an InvalidPayloadError
func IsInvalidPayload(err error) bool {
	var payloadErr *InvalidPayloadError
	return errors.As(err, &payloadErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewInvalidPayloadError creates a new InvalidPayloadError wrapping the decode failure
func NewInvalidPayloadError(reason string, err error) error {
	return &InvalidPayloadError{Reason: reason, Err: err}
}

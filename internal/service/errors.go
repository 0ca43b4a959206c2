package service

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput marks a violated precondition on caller supplied data.
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidConfig marks an unusable fee configuration.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrRepositoryNotConfigured is returned when an operation needs the database and none is configured.
	ErrRepositoryNotConfigured = errors.New("repository not configured")
)

// ValidationError describes which field failed validation.
// It unwraps to ErrInvalidInput or ErrInvalidConfig.
type ValidationError struct {
	Kind    error
	Field   string
	Message string
}

// Error returns "<field>: <message>".
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// Unwrap returns the error kind so errors.Is matches the sentinels.
func (e *ValidationError) Unwrap() error {
	return e.Kind
}

func invalidInput(field, format string, args ...interface{}) error {
	return &ValidationError{Kind: ErrInvalidInput, Field: field, Message: fmt.Sprintf(format, args...)}
}

func invalidConfig(field, format string, args ...interface{}) error {
	return &ValidationError{Kind: ErrInvalidConfig, Field: field, Message: fmt.Sprintf(format, args...)}
}

// IsValidationError reports whether err is an input or config validation failure.
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrInvalidConfig)
}

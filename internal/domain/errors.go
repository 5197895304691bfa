// Package domain defines domain-specific errors.
// These errors represent configuration failures and are independent of any rendering host.
package domain

import (
	"errors"
	"fmt"
)

// Common errors that indicators can return.
var (
	// ErrInvalidRange is returned when the minimum value is not below the maximum value.
	ErrInvalidRange = errors.New("invalid range: min must be less than max")

	// ErrInvalidSize is returned when a size, radius or duration is not usable.
	ErrInvalidSize = errors.New("invalid size")

	// ErrInvalidDuration is returned when an animation duration is negative.
	ErrInvalidDuration = fmt.Errorf("%w: animation duration can't be negative", ErrInvalidSize)

	// ErrInvalidPercent is returned when the inner radius percentage is outside [0, 100].
	ErrInvalidPercent = errors.New("invalid percent: must be between 0 and 100")

	// ErrInvalidAngle is returned when a starting angle is outside [0, 360).
	ErrInvalidAngle = errors.New("invalid angle: must be in [0, 360)")

	// ErrUnsupportedDirection is returned when a direction is not valid for a shape.
	ErrUnsupportedDirection = errors.New("unsupported direction")

	// ErrUnsupportedOrientation is returned when an orientation is not valid for a shape.
	ErrUnsupportedOrientation = errors.New("unsupported orientation")

	// ErrUnsupportedShape is returned for an unknown shape kind.
	ErrUnsupportedShape = errors.New("unsupported shape")

	// ErrUnknownCurve is returned when an interpolation curve name is not registered.
	ErrUnknownCurve = errors.New("unknown interpolation curve")
)

// ValidationError represents a validation error for a single configuration field.
type ValidationError struct {
	Field   string      // Field that failed validation
	Value   interface{} // Value that failed validation
	Message string      // Error message
	Err     error       // Sentinel error this failure belongs to
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for %s: %s (value: %v)", e.Field, e.Message, e.Value)
}

// Unwrap returns the sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field string, value interface{}, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
		Err:     err,
	}
}

// ConfigError represents a failure while loading indicator configuration.
type ConfigError struct {
	Source  string // File path or "env"
	Index   int    // Indicator index in the file, -1 when not applicable
	Message string // Error message
	Err     error  // Underlying error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("config %s: indicator %d: %s", e.Source, e.Index, e.Message)
	}
	return fmt.Sprintf("config %s: %s", e.Source, e.Message)
}

// Unwrap returns the underlying error.
func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError.
func NewConfigError(source string, index int, message string, err error) *ConfigError {
	return &ConfigError{
		Source:  source,
		Index:   index,
		Message: message,
		Err:     err,
	}
}

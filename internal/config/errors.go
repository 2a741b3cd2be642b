package config

import "fmt"

// ConfigErrorType represents the type of configuration error.
type ConfigErrorType int

const (
	// ConfigConflict indicates mutually exclusive options were selected.
	ConfigConflict ConfigErrorType = iota
	// ConfigUnknownLicense indicates the license identifier is not in
	// the registry or has no fetchable text source.
	ConfigUnknownLicense
	// ConfigInvalidValue indicates an option value failed validation.
	ConfigInvalidValue
	// ConfigLoadFailed indicates the defaults file could not be read.
	ConfigLoadFailed
)

// ConfigError represents a configuration-related error. Configuration
// errors are reported before any filesystem mutation.
type ConfigError struct {
	// Type is the error type.
	Type ConfigErrorType
	// Message is the error message.
	Message string
	// Field is the option that caused the error.
	Field string
	// Cause is the underlying error if any.
	Cause error
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Field != "" {
		if e.Cause != nil {
			return fmt.Sprintf("configuration error [%s]: %s: %v", e.Field, e.Message, e.Cause)
		}
		return fmt.Sprintf("configuration error [%s]: %s", e.Field, e.Message)
	}
	if e.Cause != nil {
		return fmt.Sprintf("configuration error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("configuration error: %s", e.Message)
}

// Unwrap returns the underlying cause error.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// NewConfigError creates a new ConfigError.
func NewConfigError(typ ConfigErrorType, field, message string) *ConfigError {
	return &ConfigError{
		Type:    typ,
		Field:   field,
		Message: message,
	}
}

// NewConfigErrorWithCause creates a new ConfigError with a cause.
func NewConfigErrorWithCause(typ ConfigErrorType, field, message string, cause error) *ConfigError {
	return &ConfigError{
		Type:    typ,
		Field:   field,
		Message: message,
		Cause:   cause,
	}
}

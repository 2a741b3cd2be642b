package app

import "fmt"

// AppErrorType represents the type of application error.
type AppErrorType int

const (
	// ValidationFailed indicates option validation failed.
	ValidationFailed AppErrorType = iota
	// DirectoryStageFailed indicates project directory creation failed.
	DirectoryStageFailed
	// VenvStageFailed indicates virtual environment creation failed.
	VenvStageFailed
	// GitStageFailed indicates git initialization failed.
	GitStageFailed
	// ReadmeStageFailed indicates readme materialization failed.
	ReadmeStageFailed
	// ScriptStageFailed indicates script stub materialization failed.
	ScriptStageFailed
	// LicenseStageFailed indicates license instantiation failed.
	LicenseStageFailed
	// PackageStageFailed indicates package scaffolding failed.
	PackageStageFailed
)

// AppError represents an application-layer error.
type AppError struct {
	// Type is the error type.
	Type AppErrorType
	// Message is the error message.
	Message string
	// Cause is the underlying error.
	Cause error
}

// Error returns the error message.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// NewAppError creates a new AppError.
func NewAppError(errType AppErrorType, message string, cause error) *AppError {
	return &AppError{
		Type:    errType,
		Message: message,
		Cause:   cause,
	}
}

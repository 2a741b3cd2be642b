package template

import (
	"fmt"
	"strings"
)

// MaterializeErrorType categorizes materializer errors.
type MaterializeErrorType int

const (
	// MissingPlaceholder indicates one or more placeholder tokens had no
	// resolvable value.
	MissingPlaceholder MaterializeErrorType = iota
	// SourceNotFound indicates the template path does not exist or is not
	// readable.
	SourceNotFound
	// TargetWriteFailure indicates the destination directory is not
	// writable.
	TargetWriteFailure
)

// MaterializeError represents a template materialization error.
type MaterializeError struct {
	// Type categorizes the error.
	Type MaterializeErrorType
	// Message is the error message.
	Message string
	// Path is the template or output path related to the error.
	Path string
	// Identifiers lists the unresolved placeholder identifiers in
	// first-seen order (MissingPlaceholder only).
	Identifiers []string
	// Cause is the underlying error (if any).
	Cause error
}

// Error implements the error interface.
func (e *MaterializeError) Error() string {
	if len(e.Identifiers) > 0 {
		return fmt.Sprintf("%s (file: %s): unresolved placeholders: %s",
			e.Message, e.Path, strings.Join(e.Identifiers, ", "))
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s (file: %s): %v", e.Message, e.Path, e.Cause)
	}
	return fmt.Sprintf("%s (file: %s)", e.Message, e.Path)
}

// Unwrap returns the underlying cause error.
func (e *MaterializeError) Unwrap() error {
	return e.Cause
}

// newMissingPlaceholderError creates a MissingPlaceholder error.
func newMissingPlaceholderError(path string, identifiers []string) *MaterializeError {
	return &MaterializeError{
		Type:        MissingPlaceholder,
		Message:     "template has unresolvable placeholders",
		Path:        path,
		Identifiers: identifiers,
	}
}

// newSourceNotFoundError creates a SourceNotFound error.
func newSourceNotFoundError(path string, cause error) *MaterializeError {
	return &MaterializeError{
		Type:    SourceNotFound,
		Message: "template source not readable",
		Path:    path,
		Cause:   cause,
	}
}

// newTargetWriteError creates a TargetWriteFailure error.
func newTargetWriteError(path string, cause error) *MaterializeError {
	return &MaterializeError{
		Type:    TargetWriteFailure,
		Message: "failed to write output",
		Path:    path,
		Cause:   cause,
	}
}

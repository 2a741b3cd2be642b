package fetch

import "fmt"

// FetchErrorType categorizes fetch errors.
type FetchErrorType int

const (
	// FetchRequestFailed indicates the HTTP request could not be made.
	FetchRequestFailed FetchErrorType = iota
	// FetchBadStatus indicates a non-success HTTP response.
	FetchBadStatus
	// FetchWriteFailed indicates the fetched content could not be saved.
	FetchWriteFailed
)

// FetchError represents a remote-fetch error.
type FetchError struct {
	// Type categorizes the error.
	Type FetchErrorType
	// URL is the requested URL.
	URL string
	// StatusCode is the HTTP status code (FetchBadStatus only).
	StatusCode int
	// Message is the error message.
	Message string
	// Cause is the underlying error (if any).
	Cause error
}

// Error implements the error interface.
func (e *FetchError) Error() string {
	if e.Type == FetchBadStatus {
		return fmt.Sprintf("fetch of %s failed with status code %d", e.URL, e.StatusCode)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s (url: %s): %v", e.Message, e.URL, e.Cause)
	}
	return fmt.Sprintf("%s (url: %s)", e.Message, e.URL)
}

// Unwrap returns the underlying cause error.
func (e *FetchError) Unwrap() error {
	return e.Cause
}

// newRequestError creates a FetchRequestFailed error.
func newRequestError(url string, cause error) *FetchError {
	return &FetchError{
		Type:    FetchRequestFailed,
		URL:     url,
		Message: "request failed",
		Cause:   cause,
	}
}

// newBadStatusError creates a FetchBadStatus error.
func newBadStatusError(url string, statusCode int) *FetchError {
	return &FetchError{
		Type:       FetchBadStatus,
		URL:        url,
		StatusCode: statusCode,
	}
}

// newWriteError creates a FetchWriteFailed error.
func newWriteError(url string, cause error) *FetchError {
	return &FetchError{
		Type:    FetchWriteFailed,
		URL:     url,
		Message: "failed to save fetched content",
		Cause:   cause,
	}
}

// Package fetch downloads remote text content into project files,
// optionally aggregating several sources into one file and stripping
// leading YAML front matter.
package fetch

import (
	"context"
	"io"
	"net/http"
	"os"
	"time"
)

// Fetcher downloads remote content into local files.
type Fetcher interface {
	// Fetch downloads one URL and returns its body.
	Fetch(ctx context.Context, url string) ([]byte, error)

	// FetchToFile downloads the URLs in order and appends each body to
	// the file at dest, creating it if needed. A newline boundary is
	// ensured between sources so aggregated entries never merge across
	// a source boundary.
	FetchToFile(ctx context.Context, urls []string, dest string) error
}

// HTTPFetcher implements Fetcher over net/http.
type HTTPFetcher struct {
	// Client is the HTTP client for requests.
	Client *http.Client
}

// NewFetcher creates an HTTPFetcher with a default timeout.
func NewFetcher() *HTTPFetcher {
	return &HTTPFetcher{
		Client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Fetch downloads one URL and returns its body.
// Any non-200 response is a FetchError carrying the status code.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, newRequestError(url, err)
	}

	resp, err := f.Client.Do(req)
	if err != nil {
		return nil, newRequestError(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, newBadStatusError(url, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newRequestError(url, err)
	}
	return body, nil
}

// FetchToFile downloads the URLs in order and appends each body to dest.
// Duplicate entries across sources are permitted; concatenation order is
// request order.
func (f *HTTPFetcher) FetchToFile(ctx context.Context, urls []string, dest string) error {
	for _, url := range urls {
		body, err := f.Fetch(ctx, url)
		if err != nil {
			return err
		}
		if err := appendToFile(dest, body); err != nil {
			return newWriteError(url, err)
		}
	}
	return nil
}

// appendToFile appends content to the file at path, ensuring the content
// ends with a newline so the next appended source starts on its own line.
func appendToFile(path string, content []byte) error {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	defer file.Close()

	if _, err := file.Write(content); err != nil {
		return err
	}
	if len(content) > 0 && content[len(content)-1] != '\n' {
		if _, err := file.Write([]byte{'\n'}); err != nil {
			return err
		}
	}
	return nil
}

// Package download implements single-file fetching and the sequential batch
// downloader for validated subtitle links.
package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"path/filepath"

	"github.com/subgrab-cli/subgrab/filesystem"
	"github.com/subgrab-cli/subgrab/network"
	"github.com/subgrab-cli/subgrab/util"
)

// StatusError reports a download rejected by the remote server.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("download %q: unexpected status %d", e.URL, e.Code)
}

// Fetcher performs blocking HTTP downloads through the shared network client
// and the virtualized filesystem backend.
type Fetcher struct {
	client *http.Client
}

// New returns a Fetcher backed by the application-wide HTTP client.
func New() *Fetcher {
	return &Fetcher{client: network.Client}
}

// NewWithClient returns a Fetcher backed by a caller-supplied HTTP client.
func NewWithClient(client *http.Client) *Fetcher {
	return &Fetcher{client: client}
}

// Fetch downloads url and writes the raw response body to dir/filename.
// A non-200 response writes nothing and returns a *StatusError. An existing
// file at the target path is overwritten without warning.
func (f *Fetcher) Fetch(ctx context.Context, url, dir, filename string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("build request for %q: %w", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch %q: %w", url, err)
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode != http.StatusOK {
		return &StatusError{URL: url, Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body of %q: %w", url, err)
	}

	path := filepath.Join(dir, filename)
	if err := filesystem.API().WriteFile(path, body, 0644); err != nil {
		return fmt.Errorf("write %q: %w", path, err)
	}

	return nil
}

// Package fetch downloads remote templates over HTTP. Requests block until
// the server answers; there is no timeout unless one is configured.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"time"
)

// Sentinel errors for fetch operations.
var (
	// ErrHTTPStatus indicates a non-2xx response.
	ErrHTTPStatus = errors.New("unexpected HTTP status")
	// ErrNoFileName indicates a URL without a usable last path segment.
	ErrNoFileName = errors.New("cannot derive a file name from URL")
)

const defaultUserAgent = "templatesmanager"

// Fetcher performs blocking HTTP GETs.
type Fetcher struct {
	httpClient *http.Client
	userAgent  string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithHTTPClient sets a custom HTTP client (useful for testing).
func WithHTTPClient(c *http.Client) Option {
	return func(f *Fetcher) {
		if c != nil {
			f.httpClient = c
		}
	}
}

// WithTimeout bounds each request. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.httpClient = &http.Client{Timeout: d}
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		if ua != "" {
			f.userAgent = ua
		}
	}
}

// New creates a Fetcher. By default it uses a client without a timeout.
func New(opts ...Option) *Fetcher {
	f := &Fetcher{
		httpClient: &http.Client{},
		userAgent:  defaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FileName derives the local file name for rawURL from its last path
// segment. Query strings and fragments are ignored.
func FileName(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parsing URL %q: %w", rawURL, err)
	}
	name := path.Base(u.Path)
	if name == "." || name == "/" || name == "" || name == ".." {
		return "", fmt.Errorf("%w: %s", ErrNoFileName, rawURL)
	}
	return name, nil
}

// Copy GETs rawURL and streams the body to w verbatim.
func (f *Fetcher) Copy(ctx context.Context, rawURL string, w io.Writer) (int64, error) {
	body, err := f.open(ctx, rawURL)
	if err != nil {
		return 0, err
	}
	defer body.Close()

	n, err := io.Copy(w, body)
	if err != nil {
		return n, fmt.Errorf("reading %s: %w", rawURL, err)
	}
	return n, nil
}

// Download GETs rawURL and writes the body to a file in destDir named after
// the URL's last path segment. It returns the path written. The body is
// staged in a temp file in destDir and renamed into place once complete, so
// a failed request or transfer leaves nothing behind.
func (f *Fetcher) Download(ctx context.Context, rawURL, destDir string) (string, error) {
	name, err := FileName(rawURL)
	if err != nil {
		return "", err
	}

	body, err := f.open(ctx, rawURL)
	if err != nil {
		return "", err
	}
	defer body.Close()

	destPath := filepath.Join(destDir, name)
	tmp, err := os.CreateTemp(destDir, "."+name+".*.part")
	if err != nil {
		return "", fmt.Errorf("creating temp file in %s: %w", destDir, err)
	}
	tmpPath := tmp.Name()

	if _, err := io.Copy(tmp, body); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return "", fmt.Errorf("writing %s: %w", destPath, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("closing %s: %w", destPath, err)
	}
	if err := os.Chmod(tmpPath, 0644); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("setting mode on %s: %w", destPath, err)
	}
	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("moving download to %s: %w", destPath, err)
	}
	return destPath, nil
}

// open issues the request and returns the body of a 2xx response.
func (f *Fetcher) open(ctx context.Context, rawURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request for %s: %w", rawURL, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", rawURL, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		resp.Body.Close()
		return nil, fmt.Errorf("%w: %s returned %d", ErrHTTPStatus, rawURL, resp.StatusCode)
	}
	return resp.Body, nil
}

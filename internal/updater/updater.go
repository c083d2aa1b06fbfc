package updater

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Release is the subset of a GitHub release tm reads.
type Release struct {
	TagName   string    `json:"tag_name"`
	Name      string    `json:"name"`
	Published time.Time `json:"published_at"`
	HTMLURL   string    `json:"html_url"`
}

// Status is the outcome of comparing the running version with the latest release.
type Status struct {
	Current         string
	Latest          *Release
	UpdateAvailable bool
}

// Checker looks up releases for a repository.
type Checker struct {
	currentVersion string
	repo           string
	apiBase        string
	token          string
	httpClient     *http.Client
}

// Option configures a Checker.
type Option func(*Checker)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(u *Checker) {
		u.httpClient = c
	}
}

// WithAPIBase points the checker at another GitHub API endpoint.
func WithAPIBase(base string) Option {
	return func(u *Checker) {
		u.apiBase = base
	}
}

// WithToken authenticates requests for higher rate limits.
func WithToken(token string) Option {
	return func(u *Checker) {
		u.token = token
	}
}

// New creates a Checker for repo ("owner/name").
func New(currentVersion, repo string, opts ...Option) *Checker {
	u := &Checker{
		currentVersion: currentVersion,
		repo:           repo,
		apiBase:        githubAPIBase,
		httpClient:     &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// CurrentVersion returns the version this checker was created with.
func (u *Checker) CurrentVersion() string {
	return u.currentVersion
}

// Check fetches the latest release and compares it with the current version.
func (u *Checker) Check(ctx context.Context) (*Status, error) {
	rel, err := u.CheckLatestVersion(ctx)
	if err != nil {
		return nil, err
	}
	avail, err := IsUpdateAvailable(u.currentVersion, rel.TagName)
	if err != nil {
		return nil, fmt.Errorf("comparing versions: %w", err)
	}
	return &Status{Current: u.currentVersion, Latest: rel, UpdateAvailable: avail}, nil
}

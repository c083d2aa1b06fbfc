package registry

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Remote is the registry of URL templates stored one per line in a text file.
type Remote struct {
	file string
}

// NewRemote returns a Remote registry backed by file.
func NewRemote(file string) *Remote {
	return &Remote{file: file}
}

// File returns the backing file path.
func (r *Remote) File() string {
	return r.file
}

// List returns the non-empty lines of the backing file in file order.
// A missing file is an empty registry.
func (r *Remote) List() ([]string, error) {
	data, err := os.ReadFile(r.file)
	if errors.Is(err, os.ErrNotExist) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading remote templates %s: %w", r.file, err)
	}

	urls := []string{}
	scanner := bufio.NewScanner(bytes.NewReader(data))
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		urls = append(urls, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading remote templates %s: %w", r.file, err)
	}
	return urls, nil
}

// Resolve returns the URL at position in a fresh listing.
func (r *Remote) Resolve(position int) (string, error) {
	urls, err := r.List()
	if err != nil {
		return "", err
	}
	return resolve(urls, position)
}

// Add appends url as a new line unless it is already present.
func (r *Remote) Add(url string) error {
	if strings.TrimSpace(url) == "" || strings.ContainsAny(url, "\r\n") {
		return fmt.Errorf("%w: %q", ErrInvalidURL, url)
	}

	urls, err := r.List()
	if err != nil {
		return err
	}
	if contains(urls, url) {
		return fmt.Errorf("%w: %s", ErrDuplicateURL, url)
	}

	if err := os.MkdirAll(filepath.Dir(r.file), 0755); err != nil {
		return fmt.Errorf("creating remote templates directory: %w", err)
	}

	// Guard against a file whose last line has no terminating newline.
	prefix := ""
	if data, err := os.ReadFile(r.file); err == nil && len(data) > 0 && data[len(data)-1] != '\n' {
		prefix = "\n"
	}

	f, err := os.OpenFile(r.file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening remote templates %s: %w", r.file, err)
	}
	defer f.Close()

	if _, err := f.WriteString(prefix + url + "\n"); err != nil {
		return fmt.Errorf("appending to remote templates: %w", err)
	}
	return f.Close()
}

// Delete removes url and rewrites the file with the remaining URLs in their
// original order.
func (r *Remote) Delete(url string) error {
	urls, err := r.List()
	if err != nil {
		return err
	}

	kept := make([]string, 0, len(urls))
	found := false
	for _, u := range urls {
		if !found && u == url {
			found = true
			continue
		}
		kept = append(kept, u)
	}
	if !found {
		return fmt.Errorf("%w: %s", ErrNotFound, url)
	}

	return r.write(kept)
}

// write replaces the backing file atomically.
func (r *Remote) write(urls []string) error {
	var buf bytes.Buffer
	for _, u := range urls {
		buf.WriteString(u)
		buf.WriteByte('\n')
	}

	tempFile := r.file + ".tmp"
	if err := os.WriteFile(tempFile, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := os.Rename(tempFile, r.file); err != nil {
		os.Remove(tempFile)
		return fmt.Errorf("replacing remote templates: %w", err)
	}
	return nil
}

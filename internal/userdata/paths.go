package userdata

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tm-labs/templatesmanager/internal/branding"
)

// Directory and file name constants for the storage layout.
const (
	DataDir    = "data"
	LocalDir   = "local"
	RemoteFile = "remote"

	// LauncherDataEnv is set by the launcher to the workflow's data folder.
	LauncherDataEnv = "alfred_workflow_data"
)

// Permission constants.
const (
	DirPermNormal  os.FileMode = 0755
	FilePermNormal os.FileMode = 0644
)

// DefaultDataRoot returns the data root used when none is configured.
// It prefers the launcher's workflow data folder and falls back to
// ~/.templatesmanager/data.
func DefaultDataRoot() (string, error) {
	if v := os.Getenv(LauncherDataEnv); v != "" {
		return v, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, branding.HomeDir(), DataDir), nil
}

// Layout locates the registries under a data root.
type Layout struct {
	Root string
}

// LocalDir returns the folder holding local templates.
func (l Layout) LocalDir() string {
	return filepath.Join(l.Root, LocalDir)
}

// RemoteFile returns the file listing remote template URLs.
func (l Layout) RemoteFile() string {
	return filepath.Join(l.Root, RemoteFile)
}

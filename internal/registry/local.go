package registry

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// hiddenNames are OS metadata entries that never count as templates.
var hiddenNames = map[string]bool{
	".DS_Store":  true,
	".localized": true,
}

// Trasher moves a path to the user's trash.
type Trasher interface {
	Trash(ctx context.Context, path string) error
}

// Local is the registry of file and directory templates kept under a
// storage folder.
type Local struct {
	dir     string
	trasher Trasher
}

// NewLocal returns a Local registry rooted at dir. The trasher is used by
// Delete; it may be nil when deletion is not needed.
func NewLocal(dir string, trasher Trasher) *Local {
	return &Local{dir: dir, trasher: trasher}
}

// Dir returns the storage folder.
func (l *Local) Dir() string {
	return l.dir
}

// Path returns the storage path of the template called name.
func (l *Local) Path(name string) string {
	return filepath.Join(l.dir, name)
}

// List returns the template names in directory enumeration order, skipping
// OS metadata entries.
func (l *Local) List() ([]string, error) {
	entries, err := os.ReadDir(l.dir)
	if err != nil {
		return nil, fmt.Errorf("reading local templates %s: %w", l.dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if hiddenNames[e.Name()] {
			continue
		}
		names = append(names, e.Name())
	}
	return names, nil
}

// Resolve returns the name at position in a fresh listing.
func (l *Local) Resolve(position int) (string, error) {
	names, err := l.List()
	if err != nil {
		return "", err
	}
	return resolve(names, position)
}

// Add copies the file or directory at sourcePath into storage, keeping its
// base name. It returns the stored name.
func (l *Local) Add(sourcePath string) (string, error) {
	src, err := filepath.Abs(sourcePath)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", sourcePath, err)
	}
	name := filepath.Base(src)
	if name == "." || name == ".." || name == string(filepath.Separator) || hiddenNames[name] {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, sourcePath)
	}
	inside, err := l.within(src)
	if err != nil {
		return "", err
	}
	if inside {
		return "", fmt.Errorf("%w: %s", ErrContainsStorage, sourcePath)
	}

	names, err := l.List()
	if err != nil {
		return "", err
	}
	if contains(names, name) {
		return "", fmt.Errorf("%w: %s", ErrDuplicateName, name)
	}

	if err := copyTree(src, l.Path(name)); err != nil {
		return "", fmt.Errorf("copying %s into local templates: %w", sourcePath, err)
	}
	return name, nil
}

// within reports whether the storage directory is src or lies below it.
// Symlinks are resolved on both sides when possible.
func (l *Local) within(src string) (bool, error) {
	dir, err := filepath.Abs(l.dir)
	if err != nil {
		return false, fmt.Errorf("resolving %s: %w", l.dir, err)
	}
	if p, err := filepath.EvalSymlinks(dir); err == nil {
		dir = p
	}
	if p, err := filepath.EvalSymlinks(src); err == nil {
		src = p
	}

	rel, err := filepath.Rel(src, dir)
	if err != nil {
		return false, nil
	}
	return rel == "." || (rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))), nil
}

// Delete hands the template called name to the trasher.
func (l *Local) Delete(ctx context.Context, name string) error {
	names, err := l.List()
	if err != nil {
		return err
	}
	if !contains(names, name) {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if l.trasher == nil {
		return fmt.Errorf("no trash command configured")
	}
	if err := l.trasher.Trash(ctx, l.Path(name)); err != nil {
		return fmt.Errorf("trashing %s: %w", name, err)
	}
	return nil
}

// IsDir reports whether the template called name is a directory.
func (l *Local) IsDir(name string) (bool, error) {
	info, err := os.Stat(l.Path(name))
	if err != nil {
		return false, fmt.Errorf("inspecting template %s: %w", name, err)
	}
	return info.IsDir(), nil
}

// Put copies the template called name into targetDir and returns the path
// of the copy. Existing files at the destination are overwritten.
func (l *Local) Put(name, targetDir string) (string, error) {
	dst := filepath.Join(targetDir, name)
	if err := copyTree(l.Path(name), dst); err != nil {
		return "", fmt.Errorf("copying %s to %s: %w", name, targetDir, err)
	}
	return dst, nil
}

// PutContentsOnly copies each immediate child of the directory template
// called name into targetDir. It returns ErrNotADirectory, without copying
// anything, when the template is a file.
func (l *Local) PutContentsOnly(name, targetDir string) ([]string, error) {
	isDir, err := l.IsDir(name)
	if err != nil {
		return nil, err
	}
	if !isDir {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, name)
	}

	src := l.Path(name)
	entries, err := os.ReadDir(src)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", name, err)
	}

	var copied []string
	for _, e := range entries {
		if hiddenNames[e.Name()] {
			continue
		}
		dst := filepath.Join(targetDir, e.Name())
		if err := copyTree(filepath.Join(src, e.Name()), dst); err != nil {
			return copied, fmt.Errorf("copying %s to %s: %w", e.Name(), targetDir, err)
		}
		copied = append(copied, dst)
	}
	return copied, nil
}

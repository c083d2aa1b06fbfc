package userdata

import (
	"fmt"
	"io"
	"os"
)

// Ensure creates the data root, the local/ folder and an empty remote file
// when they are missing. Progress is written to w.
func Ensure(w io.Writer, l Layout) error {
	if err := ensureDir(w, l.Root); err != nil {
		return err
	}
	if err := ensureDir(w, l.LocalDir()); err != nil {
		return err
	}
	return ensureFile(w, l.RemoteFile())
}

// ensureDir creates a directory if it doesn't exist.
func ensureDir(w io.Writer, path string) error {
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			fmt.Fprintf(w, "  [SKIP] %s already exists\n", path)
			return nil
		}
		return fmt.Errorf("%s exists but is not a directory", path)
	}

	if err := os.MkdirAll(path, DirPermNormal); err != nil {
		return fmt.Errorf("creating directory %s: %w", path, err)
	}
	fmt.Fprintf(w, "  [ OK ] Created %s\n", path)
	return nil
}

// ensureFile creates an empty file if it doesn't exist.
func ensureFile(w io.Writer, path string) error {
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("%s exists but is a directory", path)
		}
		fmt.Fprintf(w, "  [SKIP] %s already exists\n", path)
		return nil
	}

	if err := os.WriteFile(path, nil, FilePermNormal); err != nil {
		return fmt.Errorf("creating file %s: %w", path, err)
	}
	fmt.Fprintf(w, "  [ OK ] Created %s\n", path)
	return nil
}

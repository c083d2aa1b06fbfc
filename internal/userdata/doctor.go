package userdata

import (
	"fmt"
	"io"
	"os"
)

// CheckLayout reports on the storage layout. When fix is true, missing
// pieces are created. It returns false if any problem remains.
func CheckLayout(w io.Writer, l Layout, fix bool) bool {
	fmt.Fprintln(w, "Storage check:")

	ok := checkDir(w, l.Root, fix)
	ok = checkDir(w, l.LocalDir(), fix) && ok
	ok = checkFile(w, l.RemoteFile(), fix) && ok
	return ok
}

func checkDir(w io.Writer, path string, fix bool) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		fmt.Fprintf(w, "  [MISS] %s does not exist\n", path)
		if !fix {
			return false
		}
		if mkErr := os.MkdirAll(path, DirPermNormal); mkErr != nil {
			fmt.Fprintf(w, "  [FAIL] Could not create %s: %v\n", path, mkErr)
			return false
		}
		fmt.Fprintf(w, "  [FIX ] Created %s\n", path)
		return true
	}
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", path, err)
		return false
	}
	if !info.IsDir() {
		fmt.Fprintf(w, "  [WARN] %s exists but is not a directory\n", path)
		return false
	}
	fmt.Fprintf(w, "  [ OK ] %s exists\n", path)
	return true
}

func checkFile(w io.Writer, path string, fix bool) bool {
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		fmt.Fprintf(w, "  [MISS] %s does not exist\n", path)
		if !fix {
			return false
		}
		if wErr := os.WriteFile(path, nil, FilePermNormal); wErr != nil {
			fmt.Fprintf(w, "  [FAIL] Could not create %s: %v\n", path, wErr)
			return false
		}
		fmt.Fprintf(w, "  [FIX ] Created %s\n", path)
		return true
	}
	if err != nil {
		fmt.Fprintf(w, "  [FAIL] %s: %v\n", path, err)
		return false
	}
	if info.IsDir() {
		fmt.Fprintf(w, "  [WARN] %s is a directory, expected a file\n", path)
		return false
	}
	fmt.Fprintf(w, "  [ OK ] %s exists\n", path)
	return true
}

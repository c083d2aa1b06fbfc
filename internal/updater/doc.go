// Package updater reports whether a newer tm release is published on GitHub.
package updater

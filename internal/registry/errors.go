package registry

import (
	"errors"
	"fmt"
)

// Sentinel errors for registry operations.
// Callers should use errors.Is to check.
var (
	// ErrDuplicateName indicates a local template with the same name already exists.
	ErrDuplicateName = errors.New("a template with that name already exists")
	// ErrDuplicateURL indicates the URL is already in the remote list.
	ErrDuplicateURL = errors.New("a template with that URL already exists")
	// ErrNotADirectory indicates a contents-only operation was used on a file template.
	ErrNotADirectory = errors.New("this option should only be used on directories")
	// ErrPositionOutOfRange indicates an ordinal that does not address a current entry.
	ErrPositionOutOfRange = errors.New("position out of range")
	// ErrNotFound indicates the key is not present in the registry.
	ErrNotFound = errors.New("template not found")
	// ErrInvalidName indicates a source path whose base name cannot be a template name.
	ErrInvalidName = errors.New("invalid template name")
	// ErrContainsStorage indicates a source directory that holds the template storage itself.
	ErrContainsStorage = errors.New("source contains the local template storage")
	// ErrInvalidURL indicates a URL that cannot be stored as a single line.
	ErrInvalidURL = errors.New("invalid template URL")
)

// resolve returns entries[position] or ErrPositionOutOfRange.
func resolve(entries []string, position int) (string, error) {
	if position < 0 || position >= len(entries) {
		return "", fmt.Errorf("%w: %d (have %d templates)", ErrPositionOutOfRange, position, len(entries))
	}
	return entries[position], nil
}

func contains(entries []string, key string) bool {
	for _, e := range entries {
		if e == key {
			return true
		}
	}
	return false
}

package pathutil

import (
	"fmt"
	"path/filepath"
	"strings"
)

// InvalidPathError is returned when a file is not located beneath the expected root directory.
type InvalidPathError struct {
	Path string
	Root string
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("path %q is not under root %q", e.Path, e.Root)
}

// ExtensionMatches reports whether filename ends with "." + extension.
// The comparison is an exact, case-sensitive suffix match.
func ExtensionMatches(filename, extension string) bool {
	return strings.HasSuffix(filename, "."+extension)
}

// IsConfigExtension reports whether filename has a yml or yaml extension.
func IsConfigExtension(filename string) bool {
	return ExtensionMatches(filename, "yml") || ExtensionMatches(filename, "yaml")
}

// RelativeDirectory returns the directory containing filename relative to root,
// using forward slashes. Files located directly in root yield an empty string.
func RelativeDirectory(filename, root string) (string, error) {
	cleanRoot := filepath.Clean(root)
	dir := filepath.Dir(filepath.Clean(filename))

	if dir == cleanRoot {
		return "", nil
	}

	prefix := strings.TrimSuffix(cleanRoot, string(filepath.Separator)) + string(filepath.Separator)
	if !strings.HasPrefix(dir, prefix) {
		return "", &InvalidPathError{Path: filename, Root: root}
	}

	return filepath.ToSlash(strings.TrimPrefix(dir, prefix)), nil
}

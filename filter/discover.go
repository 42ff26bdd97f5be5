package filter

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/kevinsewell/serverless-plugin-colocate/internal/pathutil"
)

// Discover walks root and returns the root-relative paths of the files selected by patterns.
func Discover(root string, patterns PatternSet) ([]string, error) {
	candidates, err := walk(root)
	if err != nil {
		return nil, err
	}

	return patterns.Select(candidates)
}

// DefaultLegacyExcludes returns the substrings excluded by DiscoverLegacy by default.
// Substrings match anywhere in the path, so they also drop files such as a/vendor-config.yml
// or a nested a/serverless.yml that the default glob patterns keep. The two modes agree only
// on trees without such names.
func DefaultLegacyExcludes() []string {
	return []string{"serverless.yml", "serverless.yaml", "node_modules", "vendor", ".serverless"}
}

// DiscoverLegacy walks root and keeps files with a config extension whose root-relative
// path contains at least one include substring (any path when includes is empty) and
// none of the exclude substrings.
func DiscoverLegacy(root string, includes, excludes []string) ([]string, error) {
	candidates, err := walk(root)
	if err != nil {
		return nil, err
	}

	var selected []string

	for _, candidate := range candidates {
		if pathutil.IsConfigExtension(candidate) &&
			containsAny(candidate, includes, true) &&
			!containsAny(candidate, excludes, false) {
			selected = append(selected, candidate)
		}
	}

	return selected, nil
}

// walk lists regular files beneath root in lexical order. Symlinks are not followed.
func walk(root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !entry.Type().IsRegular() {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			return fmt.Errorf("relative path of %q: %w", path, err)
		}

		files = append(files, filepath.ToSlash(rel))

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %q: %w", root, err)
	}

	return files, nil
}

func containsAny(path string, substrings []string, whenEmpty bool) bool {
	if len(substrings) == 0 {
		return whenEmpty
	}

	for _, substring := range substrings {
		if strings.Contains(path, substring) {
			return true
		}
	}

	return false
}

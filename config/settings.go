package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// SettingsPath locates the colocate block inside the root service file.
const SettingsPath = "custom:colocate"

// ErrInvalidPattern is returned when a configured glob pattern cannot be parsed.
var ErrInvalidPattern = errors.New("invalid glob pattern")

// DefaultIncludePatterns returns the patterns selecting fragment files when defaultInclude is not set.
func DefaultIncludePatterns() []string {
	return []string{"**/*.yml", "**/*.yaml"}
}

// DefaultExcludePatterns returns the patterns removed from the selection when defaultExclude is not set:
// the root service file, dependency directories and the framework state directory.
func DefaultExcludePatterns() []string {
	return []string{
		"serverless.yml",
		"serverless.yaml",
		"**/node_modules/**",
		"**/vendor/**",
		"**/.serverless/**",
	}
}

// Settings is the colocate block of the root service file.
//
//	custom:
//	  colocate:
//	    defaultInclude: ["**/*.yml"]   # replaces the default include patterns
//	    defaultExclude: ["serverless.yml"] # replaces the default exclude patterns
//	    exclude: ["scratch/**"]         # appended after the default excludes
type Settings struct {
	DefaultInclude []string `yaml:"defaultInclude"`
	DefaultExclude []string `yaml:"defaultExclude"`
	Exclude        []string `yaml:"exclude"`
}

// SetDefaults fills the pattern lists that were not configured.
// An explicitly empty list is kept as configured.
func (s *Settings) SetDefaults() bool {
	changed := false

	if s.DefaultInclude == nil {
		s.DefaultInclude = DefaultIncludePatterns()
		changed = true
	}

	if s.DefaultExclude == nil {
		s.DefaultExclude = DefaultExcludePatterns()
		changed = true
	}

	return changed
}

// Validate checks that every pattern is a well-formed glob. A leading "!" is allowed.
func (s *Settings) Validate() error {
	groups := []struct {
		name     string
		patterns []string
	}{
		{"defaultInclude", s.DefaultInclude},
		{"defaultExclude", s.DefaultExclude},
		{"exclude", s.Exclude},
	}

	for _, group := range groups {
		for _, pattern := range group.patterns {
			glob := strings.TrimPrefix(pattern, "!")
			if glob == "" || !doublestar.ValidatePattern(glob) {
				return fmt.Errorf("%s: %w: %q", group.name, ErrInvalidPattern, pattern)
			}
		}
	}

	return nil
}

package filter

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/kevinsewell/serverless-plugin-colocate/config"
)

const negation = "!"

// PatternSet is an ordered list of glob patterns; a leading "!" excludes.
type PatternSet []string

// Build assembles the effective pattern set: the include patterns followed by the
// default excludes and then the user excludes, each turned into exclusions.
func Build(settings config.Settings) PatternSet {
	patterns := make(PatternSet, 0, len(settings.DefaultInclude)+len(settings.DefaultExclude)+len(settings.Exclude))
	patterns = append(patterns, settings.DefaultInclude...)

	for _, pattern := range settings.DefaultExclude {
		patterns = append(patterns, Exclusion(pattern))
	}

	for _, pattern := range settings.Exclude {
		patterns = append(patterns, Exclusion(pattern))
	}

	return patterns
}

// Exclusion turns an exclude pattern into its pattern set entry.
// "p" becomes "!p"; an already negated "!p" becomes "p" and re-includes matches.
func Exclusion(pattern string) string {
	if strings.HasPrefix(pattern, negation) {
		return strings.TrimPrefix(pattern, negation)
	}

	return negation + pattern
}

// Matches reports whether the root-relative path is selected by the pattern set.
func (s PatternSet) Matches(path string) (bool, error) {
	selected := false

	for _, pattern := range s {
		glob, negated := strings.CutPrefix(pattern, negation)

		if negated != selected {
			// a negation can only drop a selected path, a plain pattern only add one
			continue
		}

		matched, err := doublestar.Match(glob, path)
		if err != nil {
			return false, fmt.Errorf("pattern %q: %w", pattern, err)
		}

		if matched {
			selected = !negated
		}
	}

	return selected, nil
}

// Select returns the candidates selected by the pattern set, keeping their order.
func (s PatternSet) Select(candidates []string) ([]string, error) {
	var selected []string

	for _, candidate := range candidates {
		ok, err := s.Matches(candidate)
		if err != nil {
			return nil, err
		}

		if ok {
			selected = append(selected, candidate)
		}
	}

	return selected, nil
}

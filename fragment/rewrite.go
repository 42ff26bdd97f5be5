package fragment

import (
	"fmt"
	"strings"

	"github.com/kevinsewell/serverless-plugin-colocate/tree"
)

// MissingHandlerError is returned when a function definition has no string handler.
type MissingHandlerError struct {
	Function string
	Path     string
}

func (e *MissingHandlerError) Error() string {
	return fmt.Sprintf("function %q in %s has no handler", e.Function, e.Path)
}

// Prefix returns location prefixed with relativeDir unless it already starts with it.
// Locations are logical slash separated paths on every platform.
func Prefix(location, relativeDir string) string {
	if relativeDir == "" || strings.HasPrefix(location, relativeDir+"/") {
		return location
	}

	return relativeDir + "/" + location
}

// Rewrite makes handler and artifact locations relative to the service root.
func (f *Fragment) Rewrite() error {
	err := f.RewriteHandlers()
	if err != nil {
		return err
	}

	return f.RewriteArtifacts()
}

// RewriteHandlers prefixes every functions.*.handler with the fragment directory.
func (f *Fragment) RewriteHandlers() error {
	functions, err := f.section("functions")
	if err != nil || functions == nil {
		return err
	}

	for _, name := range functions.Keys() {
		definition, _ := functions.Map(name)
		if definition == nil {
			return &MissingHandlerError{Function: name, Path: f.Path.Name}
		}

		handler, ok := stringAt(definition, "handler")
		if !ok {
			return &MissingHandlerError{Function: name, Path: f.Path.Name}
		}

		definition.Set("handler", tree.String(Prefix(handler, f.Path.RelativeDir)))
	}

	return nil
}

// RewriteArtifacts prefixes every layers.*.package.artifact with the fragment directory.
// Layers without an artifact are left alone.
func (f *Fragment) RewriteArtifacts() error {
	layers, err := f.section("layers")
	if err != nil || layers == nil {
		return err
	}

	for _, name := range layers.Keys() {
		layer, _ := layers.Map(name)
		if layer == nil {
			continue
		}

		pkg, _ := layer.Map("package")
		if pkg == nil {
			continue
		}

		artifact, ok := stringAt(pkg, "artifact")
		if !ok || artifact == "" {
			continue
		}

		pkg.Set("artifact", tree.String(Prefix(artifact, f.Path.RelativeDir)))
	}

	return nil
}

// section returns a top-level mapping; nil when absent or null.
func (f *Fragment) section(key string) (*tree.Map, error) {
	value, ok := f.Document.Get(key)
	if !ok {
		return nil, nil
	}

	switch typed := value.(type) {
	case tree.Null:
		return nil, nil
	case *tree.Map:
		return typed, nil
	default:
		return nil, fmt.Errorf("%s in %s: %w", key, f.Path.Name, tree.ErrNotMapping)
	}
}

func stringAt(mapping *tree.Map, key string) (string, bool) {
	value, ok := mapping.Get(key)
	if !ok {
		return "", false
	}

	scalar, ok := value.(*tree.Scalar)
	if !ok {
		return "", false
	}

	return scalar.Text()
}

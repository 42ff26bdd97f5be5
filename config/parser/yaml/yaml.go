package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/kevinsewell/serverless-plugin-colocate/tree"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrPathNotFound is returned when the specified path is not found in the YAML document.
var ErrPathNotFound = errors.New("path not found")

// ParseError is returned when a document is not valid YAML or is not a mapping.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %q: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parser reads YAML configuration documents.
// It implements config.Parser and additionally decodes whole documents into tree nodes.
type Parser struct{}

// NewParser creates a new YAML parser instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse parses YAML data and unmarshals it into the target.
// The path parameter specifies a navigation path using colon (:) as separator.
// Empty path parses the entire document.
func (p *Parser) Parse(data []byte, target any, path string) error {
	if len(data) == 0 {
		return ErrEmptyData
	}

	if path == "" {
		err := yaml.Unmarshal(data, target)
		if err != nil {
			return fmt.Errorf("unmarshal error: %w", err)
		}

		return nil
	}

	pathObj, err := yaml.PathString(convertToYAMLPath(path))
	if err != nil {
		return fmt.Errorf("invalid path %q: %w", path, err)
	}

	err = pathObj.Read(bytes.NewReader(data), target)
	if err != nil {
		if yaml.IsNotFoundNodeError(err) {
			return fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}

		return fmt.Errorf("reading path %q: %w", path, err)
	}

	return nil
}

// ParseDocument decodes a whole YAML document into a mapping, preserving key order.
// The name identifies the document in errors. Empty documents yield an empty mapping.
func (p *Parser) ParseDocument(name string, data []byte) (*tree.Map, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return tree.NewMap(), nil
	}

	var value any

	err := yaml.UnmarshalWithOptions(data, &value, yaml.UseOrderedMap())
	if err != nil {
		return nil, &ParseError{Path: name, Err: err}
	}

	document, err := tree.MapFromValue(value)
	if err != nil {
		return nil, &ParseError{Path: name, Err: err}
	}

	return document, nil
}

// convertToYAMLPath converts a colon-separated path to goccy/go-yaml PathString format.
// Examples:
//   - "key" -> "$.key"
//   - "custom:colocate" -> "$.custom.colocate"
func convertToYAMLPath(path string) string {
	return "$." + strings.Join(strings.Split(path, ":"), ".")
}

package fragment

import (
	"fmt"
	"path/filepath"

	filefetcher "github.com/kevinsewell/serverless-plugin-colocate/config/fetcher/file"
	"github.com/kevinsewell/serverless-plugin-colocate/internal/pathutil"
	"github.com/kevinsewell/serverless-plugin-colocate/tree"
)

// IgnoreKey is the top-level key that excludes a fragment from merging.
const IgnoreKey = "ignore"

// Path locates a fragment file.
type Path struct {
	// File is the path of the fragment file.
	File string
	// RelativeDir is the directory holding File relative to the service root,
	// slash separated, empty for the root itself.
	RelativeDir string
	// Name is File relative to the service root, slash separated.
	Name string
}

// NewPath derives the fragment location of file beneath root.
func NewPath(file, root string) (Path, error) {
	relativeDir, err := pathutil.RelativeDirectory(file, root)
	if err != nil {
		return Path{}, err
	}

	name := filepath.Base(file)
	if relativeDir != "" {
		name = relativeDir + "/" + name
	}

	return Path{File: file, RelativeDir: relativeDir, Name: name}, nil
}

// Fragment is a parsed configuration fragment.
type Fragment struct {
	Path     Path
	Document *tree.Map
}

// DocumentParser decodes a whole YAML document.
type DocumentParser interface {
	ParseDocument(name string, data []byte) (*tree.Map, error)
}

// Loader reads fragments from disk.
type Loader struct {
	parser DocumentParser
}

// NewLoader creates a Loader decoding files with parser.
func NewLoader(parser DocumentParser) *Loader {
	return &Loader{parser: parser}
}

// Load reads and parses the fragment at path.
// A file removed since discovery yields *file.NotFoundError, malformed content *yaml.ParseError.
func (l *Loader) Load(path Path) (*Fragment, error) {
	fetcher, err := filefetcher.NewFetcher(path.File)()
	if err != nil {
		return nil, fmt.Errorf("loading fragment %s: %w", path.Name, err)
	}

	data, err := fetcher.Fetch()
	if err != nil {
		return nil, fmt.Errorf("loading fragment %s: %w", path.Name, err)
	}

	document, err := l.parser.ParseDocument(path.File, data)
	if err != nil {
		return nil, fmt.Errorf("loading fragment %s: %w", path.Name, err)
	}

	return &Fragment{Path: path, Document: document}, nil
}

// IsIgnored reports whether the fragment carries a truthy ignore key.
func (f *Fragment) IsIgnored() bool {
	value, ok := f.Document.Get(IgnoreKey)

	return ok && tree.Truthy(value)
}

// StripIgnore removes the ignore key so it never reaches the merged configuration.
func (f *Fragment) StripIgnore() {
	f.Document.Delete(IgnoreKey)
}

package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrPathIsDirectory is returned when the path provided to the Fetcher points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// NotFoundError is returned when the file does not exist at read time.
// Discovery and reading are separate steps, so a file may vanish in between.
type NotFoundError struct {
	Path string
	Err  error
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file %q not found", e.Path)
}

func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// Fetcher implements config.DataFetcher for a single file.
// The file is read once, at construction time.
type Fetcher struct {
	filepath string
	data     []byte
}

// NewFetcher returns a constructor for a Fetcher reading fpath.
// Missing files are reported as *NotFoundError, directories as ErrPathIsDirectory.
func NewFetcher(fpath string) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		cleanPath := filepath.Clean(fpath)

		stat, err := os.Stat(cleanPath)
		if err != nil {
			return nil, wrapReadError(cleanPath, "stat file", err)
		}

		if stat.IsDir() {
			return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
		}

		data, err := os.ReadFile(cleanPath) // #nosec G304 -- discovered beneath the service root
		if err != nil {
			return nil, wrapReadError(cleanPath, "reading file", err)
		}

		return &Fetcher{
			filepath: cleanPath,
			data:     data,
		}, nil
	}
}

// Path returns the cleaned path of the file.
func (f *Fetcher) Path() string {
	return f.filepath
}

// Fetch returns a copy of the file contents read at construction time.
func (f *Fetcher) Fetch() ([]byte, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}

func wrapReadError(path, action string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return &NotFoundError{Path: path, Err: err}
	}

	return fmt.Errorf("%s %q: %w", action, path, err)
}

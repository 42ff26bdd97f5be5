// Package file provides a file-based DataFetcher implementation for the config package.
//
// A Fetcher reads its file once when constructed; Fetch returns copies of that content.
// It is used both for the root service file and for every discovered configuration fragment.
//
// Error Handling:
//   - a missing file is reported as *NotFoundError (errors.Is(err, fs.ErrNotExist) also holds)
//   - a directory path is reported as ErrPathIsDirectory
//   - other errors are wrapped with the file path
package file

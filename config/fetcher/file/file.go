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

// FileMode is the permission used for files written by Write.
const FileMode fs.FileMode = 0o600

// Fetcher implements config.DataFetcher interface for file-based configuration.
// It reads configuration data from a file at construction time and caches the contents.
type Fetcher struct {
	filepath string
	data     []byte
}

// NewFetcher returns a constructor function that creates a new file-based Fetcher
// with the specified filepath. The file is read at construction time and cached.
// This pattern is Fx-friendly, allowing the DI container to control when instantiation happens.
// Returns an error if the file cannot be read or if the path points to a directory.
// A missing file yields an error matching fs.ErrNotExist.
func NewFetcher(fpath string) func() (*Fetcher, error) {
	return func() (*Fetcher, error) {
		cleanPath := filepath.Clean(fpath)

		stat, err := os.Stat(cleanPath)
		if err != nil {
			return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
		}

		if stat.IsDir() {
			return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
		}

		data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned and validated
		if err != nil {
			return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
		}

		return &Fetcher{
			filepath: cleanPath,
			data:     data,
		}, nil
	}
}

// Fetch returns a copy of the cached configuration data that was read at construction time.
// A copy is returned to prevent callers from mutating the cached data.
func (f *Fetcher) Fetch() ([]byte, error) {
	result := make([]byte, len(f.data))
	copy(result, f.data)

	return result, nil
}

// Path returns the cleaned path the data was read from.
func (f *Fetcher) Path() string {
	return f.filepath
}

// Dir returns the directory holding the file. Relative lookups next to the
// configuration file resolve against it.
func (f *Fetcher) Dir() string {
	return filepath.Dir(f.filepath)
}

// IsMissing reports whether err from NewFetcher means there is no regular file at the path.
func IsMissing(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, ErrPathIsDirectory)
}

// Write replaces the file at fpath with data, creating parent directories as needed.
func Write(fpath string, data []byte) error {
	cleanPath := filepath.Clean(fpath)

	stat, err := os.Stat(cleanPath)
	if err == nil && stat.IsDir() {
		return fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
	}

	err = os.MkdirAll(filepath.Dir(cleanPath), 0o750)
	if err != nil {
		return fmt.Errorf("creating directory for %q: %w", cleanPath, err)
	}

	err = os.WriteFile(cleanPath, data, FileMode)
	if err != nil {
		return fmt.Errorf("writing file %q: %w", cleanPath, err)
	}

	return nil
}

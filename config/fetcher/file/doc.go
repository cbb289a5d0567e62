// Package file provides file-based I/O for the config package.
//
// Fetcher reads configuration data from files on the filesystem. It implements
// the config.DataFetcher interface, returning raw bytes for subsequent parsing,
// and exposes the directory the file lives in so relative extern lookups resolve
// next to it.
//
// The file is read at construction time and cached, meaning subsequent calls
// to Fetch() return the same data without re-reading the filesystem.
//
// Usage:
//
//	fetcher, err := file.NewFetcher("/path/to/config.yaml")()
//	if err != nil {
//	    // Handle error: file not found, permission denied, path is directory, etc.
//	}
//	data, err := fetcher.Fetch()
//
//	err = file.Write("/path/to/config.yaml", rendered)
//
// Error Handling:
//   - Construction returns error if file cannot be read or path is a directory
//   - Errors include the filepath for easier debugging
//   - Use errors.Is(err, file.ErrPathIsDirectory) to check for directory errors
//   - Use file.IsMissing(err) to tell "nothing there" apart from real I/O failures
package file

// Package ports defines the core interfaces for the artifact cache.
package ports

// FileSystem abstracts file system access for the cache.
//
//go:generate mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileSystem interface {
	// Exists reports whether the path exists.
	Exists(path string) bool

	// IsDir reports whether the path is a directory.
	IsDir(path string) (bool, error)

	// ModTime returns the path's modification time in UnixNano.
	ModTime(path string) (int64, error)

	// ReadFile reads the entire file at path. A missing file yields an
	// error satisfying errors.Is(err, fs.ErrNotExist).
	ReadFile(path string) ([]byte, error)

	// WriteFile writes data to path, replacing any previous content.
	WriteFile(path string, data []byte) error

	// Remove deletes the file at path. A missing file is not an error.
	Remove(path string) error

	// RemoveAll deletes path and everything below it.
	RemoveAll(path string) error

	// MkdirAll creates the directory at path along with any missing parents.
	MkdirAll(path string) error
}

// Package fs implements the file system adapter backed by the OS.
package fs

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/stash/internal/core/domain"
	"go.trai.ch/stash/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileSystem = (*OSFS)(nil)

// OSFS implements ports.FileSystem using the standard library.
type OSFS struct{}

// New creates a new OSFS instance.
func New() *OSFS {
	return &OSFS{}
}

// Exists reports whether the path exists.
func (o *OSFS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDir reports whether the path is a directory.
func (o *OSFS) IsDir(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, zerr.Wrap(err, domain.ErrSourceStatFailed.Error())
	}
	return info.IsDir(), nil
}

// ModTime returns the path's modification time in UnixNano.
func (o *OSFS) ModTime(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, zerr.Wrap(err, domain.ErrSourceStatFailed.Error())
	}
	return info.ModTime().UnixNano(), nil
}

// ReadFile reads the entire file at path. The raw os error is returned so
// callers can test for fs.ErrNotExist.
func (o *OSFS) ReadFile(path string) ([]byte, error) {
	// #nosec G304 -- paths come from resolved project locations
	return os.ReadFile(path)
}

// WriteFile writes data to path, replacing any previous content.
func (o *OSFS) WriteFile(path string, data []byte) error {
	// #nosec G306 -- cache records are world-readable by design
	return os.WriteFile(path, data, domain.FilePerm)
}

// Remove deletes the file at path. A missing file is not an error.
func (o *OSFS) Remove(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// RemoveAll deletes path and everything below it.
func (o *OSFS) RemoveAll(path string) error {
	return os.RemoveAll(path)
}

// MkdirAll creates the directory at path along with any missing parents.
func (o *OSFS) MkdirAll(path string) error {
	return os.MkdirAll(path, domain.DirPerm)
}

// Package store persists cache records as JSON files, one per source file.
package store

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io/fs"
	"path/filepath"
	"strings"

	"go.trai.ch/stash/internal/core/domain"
	"go.trai.ch/stash/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.RecordStore = (*Store)(nil)

// Store implements ports.RecordStore using a file-per-source-file strategy
// under <root>/.stash/cache. File names are the sha256 of the source file's
// project-relative path, which keeps locations stable across runs and
// collision-free within a project.
type Store struct {
	fs ports.FileSystem
}

// NewStore creates a new RecordStore backed by the given file system.
func NewStore(fsys ports.FileSystem) *Store {
	return &Store{fs: fsys}
}

// Load reads and parses the persisted record for path.
// Returns nil, nil if no record exists.
func (s *Store) Load(root, path string) (*domain.CacheRecord, error) {
	location, err := s.Location(root, path)
	if err != nil {
		return nil, err
	}

	data, err := s.fs.ReadFile(location)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.Wrap(err, domain.ErrRecordReadFailed.Error())
	}

	var rec domain.CacheRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, zerr.Wrap(err, domain.ErrRecordUnmarshalFailed.Error())
	}

	return &rec, nil
}

// Save serializes the record and fully replaces any prior on-disk content.
func (s *Store) Save(root, path string, rec domain.CacheRecord) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrRecordMarshalFailed.Error())
	}

	location, err := s.Location(root, path)
	if err != nil {
		return err
	}

	if err := s.fs.MkdirAll(filepath.Dir(location)); err != nil {
		return zerr.Wrap(err, domain.ErrCacheDirCreateFailed.Error())
	}

	if err := s.fs.WriteFile(location, data); err != nil {
		return zerr.Wrap(err, domain.ErrRecordWriteFailed.Error())
	}

	return nil
}

// Delete removes the persisted record for path. A missing file is not an error.
func (s *Store) Delete(root, path string) error {
	location, err := s.Location(root, path)
	if err != nil {
		return err
	}
	if err := s.fs.Remove(location); err != nil {
		return zerr.Wrap(err, domain.ErrRecordDeleteFailed.Error())
	}
	return nil
}

// Location returns the on-disk cache location for path.
func (s *Store) Location(root, path string) (string, error) {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrPathOutsideProject.Error())
	}
	rel = filepath.ToSlash(rel)
	if rel == ".." || strings.HasPrefix(rel, "../") {
		return "", zerr.With(zerr.With(domain.ErrPathOutsideProject, "path", path), "root", root)
	}

	hash := sha256.Sum256([]byte(rel))
	name := hex.EncodeToString(hash[:]) + domain.RecordFileExt
	return filepath.Join(root, domain.DefaultCachePath(), name), nil
}

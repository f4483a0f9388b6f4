package ports

import "go.trai.ch/stash/internal/core/domain"

// RecordStore persists cache records as pretty-printed JSON text files, one
// file per source file, under a project's cache root.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type RecordStore interface {
	// Load reads and parses the persisted record for path.
	// Returns nil, nil if no record exists. Any read or decode failure
	// returns an error; the caller decides whether to degrade.
	Load(root, path string) (*domain.CacheRecord, error)

	// Save serializes the record and fully replaces any prior content at
	// path's cache location, creating parent directories as needed.
	Save(root, path string, rec domain.CacheRecord) error

	// Delete removes the persisted record for path. Idempotent: a missing
	// file is not an error.
	Delete(root, path string) error

	// Location returns the on-disk cache location for path. It is
	// deterministic and collision-free within a project.
	Location(root, path string) (string, error)
}

package ports

import "go.trai.ch/stash/internal/core/domain"

// ProjectResolver resolves the owning project for a path and provides the
// config fingerprint components the cache depends on.
//
//go:generate mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type ProjectResolver interface {
	// Resolve returns the project that owns the given file or directory.
	// Resolution failure is fatal for cache operations and is never
	// swallowed; it propagates as a domain.ErrProjectNotFound chain.
	Resolve(path string) (*domain.Project, error)
}

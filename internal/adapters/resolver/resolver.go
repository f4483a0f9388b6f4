// Package resolver implements project resolution and config fingerprinting.
package resolver

import (
	"path/filepath"
	"sync"

	"go.trai.ch/stash/internal/core/domain"
	"go.trai.ch/stash/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ProjectResolver = (*Resolver)(nil)

// Resolver implements ports.ProjectResolver by walking up the directory tree
// for a stash.yaml file. Resolved projects are memoized per root for the
// lifetime of the process; config edits are picked up on the next run.
type Resolver struct {
	fs ports.FileSystem

	mu       sync.RWMutex
	projects map[string]*domain.Project // root -> resolved project
}

// NewResolver creates a new Resolver backed by the given file system.
func NewResolver(fsys ports.FileSystem) *Resolver {
	return &Resolver{
		fs:       fsys,
		projects: make(map[string]*domain.Project),
	}
}

// Resolve returns the project owning the given file or directory.
func (r *Resolver) Resolve(path string) (*domain.Project, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrProjectNotFound.Error())
	}

	start := abs
	if isDir, dirErr := r.fs.IsDir(abs); dirErr != nil || !isDir {
		start = filepath.Dir(abs)
	}

	root, err := r.discoverRoot(start)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	project, ok := r.projects[root]
	r.mu.RUnlock()
	if ok {
		return project, nil
	}

	project, err = r.load(root)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	r.projects[root] = project
	r.mu.Unlock()

	return project, nil
}

// Invalidate drops the memoized project for the given root, forcing a fresh
// load on the next Resolve.
func (r *Resolver) Invalidate(root string) {
	r.mu.Lock()
	delete(r.projects, root)
	r.mu.Unlock()
}

// discoverRoot walks up from dir to find the directory containing stash.yaml.
func (r *Resolver) discoverRoot(dir string) (string, error) {
	currentDir := dir
	for {
		if r.fs.Exists(filepath.Join(currentDir, domain.ProjectFileName)) {
			return currentDir, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached the file system root.
			return "", zerr.With(domain.ErrProjectNotFound, "path", dir)
		}
		currentDir = parentDir
	}
}

// load reads the project config at root and computes its fingerprints.
func (r *Resolver) load(root string) (*domain.Project, error) {
	configPath := filepath.Join(root, domain.ProjectFileName)
	data, err := r.fs.ReadFile(configPath)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrProjectConfigReadFailed.Error())
	}

	var cfg projectFile
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, zerr.Wrap(err, domain.ErrProjectConfigParseFailed.Error())
	}

	project := &domain.Project{
		Root:        root,
		Fingerprint: Fingerprint(data),
		Packages:    make(map[string]string, len(cfg.Packages)),
	}

	// A package without its own config file contributes no fingerprint
	// component; its files fall back to the project fingerprint alone.
	for _, dir := range cfg.Packages {
		pkgConfig := filepath.Join(root, filepath.FromSlash(dir), domain.ProjectFileName)
		pkgData, readErr := r.fs.ReadFile(pkgConfig)
		if readErr != nil {
			continue
		}
		project.Packages[filepath.ToSlash(filepath.Clean(dir))] = Fingerprint(pkgData)
	}

	return project, nil
}

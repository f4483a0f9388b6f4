package domain

import (
	"path/filepath"
	"strings"
)

// Project describes the resolved project a source file belongs to.
type Project struct {
	// Root is the absolute path of the project root directory.
	Root string
	// Fingerprint is the project-level config fingerprint.
	Fingerprint string
	// Packages maps a dependency package directory (relative to Root,
	// slash-separated) to that package's config fingerprint.
	Packages map[string]string
}

// PackageFingerprint returns the fingerprint of the dependency package that
// owns path, if any. When package directories nest, the longest match wins.
func (p *Project) PackageFingerprint(path string) (string, bool) {
	rel, err := filepath.Rel(p.Root, path)
	if err != nil {
		return "", false
	}
	rel = filepath.ToSlash(rel)

	best := ""
	found := false
	for dir := range p.Packages {
		if rel != dir && !strings.HasPrefix(rel, dir+"/") {
			continue
		}
		if !found || len(dir) > len(best) {
			best = dir
			found = true
		}
	}
	if !found {
		return "", false
	}
	return p.Packages[best], true
}

// FingerprintFor returns the full config fingerprint for path: the project
// fingerprint, joined with the owning package's fingerprint when the file
// lives inside a declared package directory.
func (p *Project) FingerprintFor(path string) string {
	components := []string{p.Fingerprint}
	if pkg, ok := p.PackageFingerprint(path); ok {
		components = append(components, pkg)
	}
	return strings.Join(components, FingerprintSeparator)
}

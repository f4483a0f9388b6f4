package resolver_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stash/internal/adapters/fs"
	"go.trai.ch/stash/internal/adapters/resolver"
	"go.trai.ch/stash/internal/core/domain"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestResolver_Resolve_WalksUp(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "stash.yaml"), "project: demo\n")
	source := filepath.Join(root, "src", "deep", "main.src")
	writeFile(t, source, "content")

	r := resolver.NewResolver(fs.New())
	project, err := r.Resolve(source)
	require.NoError(t, err)
	assert.Equal(t, root, project.Root)
	assert.NotEmpty(t, project.Fingerprint)
}

func TestResolver_Resolve_NotFound(t *testing.T) {
	dir := t.TempDir()
	source := filepath.Join(dir, "main.src")
	writeFile(t, source, "content")

	r := resolver.NewResolver(fs.New())
	_, err := r.Resolve(source)
	require.ErrorIs(t, err, domain.ErrProjectNotFound)
}

func TestResolver_Resolve_PackageFingerprints(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "stash.yaml"), "project: demo\npackages:\n  - vendor/lib\n")
	writeFile(t, filepath.Join(root, "vendor", "lib", "stash.yaml"), "project: lib\n")

	r := resolver.NewResolver(fs.New())
	project, err := r.Resolve(filepath.Join(root, "vendor", "lib"))
	require.NoError(t, err)
	require.Contains(t, project.Packages, "vendor/lib")

	// A file inside the package carries both fingerprint components.
	inPkg := filepath.Join(root, "vendor", "lib", "a.src")
	fp := project.FingerprintFor(inPkg)
	assert.Contains(t, fp, domain.FingerprintSeparator)

	// A file outside carries only the project component.
	outside := filepath.Join(root, "src", "a.src")
	assert.Equal(t, project.Fingerprint, project.FingerprintFor(outside))
}

func TestResolver_Resolve_FingerprintTracksConfig(t *testing.T) {
	root := t.TempDir()
	configPath := filepath.Join(root, "stash.yaml")
	writeFile(t, configPath, "project: demo\n")
	source := filepath.Join(root, "main.src")
	writeFile(t, source, "content")

	r := resolver.NewResolver(fs.New())
	before, err := r.Resolve(source)
	require.NoError(t, err)

	writeFile(t, configPath, "project: demo\n# changed\n")
	r.Invalidate(root)

	after, err := r.Resolve(source)
	require.NoError(t, err)
	assert.NotEqual(t, before.Fingerprint, after.Fingerprint)
}

func TestResolver_Resolve_Memoized(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "stash.yaml"), "project: demo\n")
	source := filepath.Join(root, "main.src")
	writeFile(t, source, "content")

	r := resolver.NewResolver(fs.New())
	first, err := r.Resolve(source)
	require.NoError(t, err)
	second, err := r.Resolve(source)
	require.NoError(t, err)
	assert.Same(t, first, second)
}

func TestFingerprint_Deterministic(t *testing.T) {
	assert.Equal(t, resolver.Fingerprint([]byte("abc")), resolver.Fingerprint([]byte("abc")))
	assert.NotEqual(t, resolver.Fingerprint([]byte("abc")), resolver.Fingerprint([]byte("abd")))
}

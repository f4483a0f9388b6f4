package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/stash/internal/core/domain"
)

func testProject() *domain.Project {
	return &domain.Project{
		Root:        string(filepath.Separator) + "project",
		Fingerprint: "root-fp",
		Packages: map[string]string{
			"libs":       "libs-fp",
			"libs/inner": "inner-fp",
		},
	}
}

func TestPackageFingerprint(t *testing.T) {
	p := testProject()

	t.Run("file outside any package", func(t *testing.T) {
		_, ok := p.PackageFingerprint(filepath.Join(p.Root, "main.src"))
		assert.False(t, ok)
	})

	t.Run("file inside a package", func(t *testing.T) {
		fp, ok := p.PackageFingerprint(filepath.Join(p.Root, "libs", "a.src"))
		assert.True(t, ok)
		assert.Equal(t, "libs-fp", fp)
	})

	t.Run("longest match wins for nested packages", func(t *testing.T) {
		fp, ok := p.PackageFingerprint(filepath.Join(p.Root, "libs", "inner", "a.src"))
		assert.True(t, ok)
		assert.Equal(t, "inner-fp", fp)
	})

	t.Run("sibling with shared prefix does not match", func(t *testing.T) {
		_, ok := p.PackageFingerprint(filepath.Join(p.Root, "libs-extra", "a.src"))
		assert.False(t, ok)
	})
}

func TestFingerprintFor(t *testing.T) {
	p := testProject()

	assert.Equal(t, "root-fp",
		p.FingerprintFor(filepath.Join(p.Root, "main.src")))

	assert.Equal(t, "root-fp"+domain.FingerprintSeparator+"libs-fp",
		p.FingerprintFor(filepath.Join(p.Root, "libs", "a.src")))
}

package domain

import "path/filepath"

const (
	// StashDirName is the name of the internal metadata directory.
	StashDirName = ".stash"

	// CacheDirName is the name of the artifact cache directory.
	CacheDirName = "cache"

	// ProjectFileName is the name of the project configuration file. The
	// same file name marks dependency package directories.
	ProjectFileName = "stash.yaml"

	// RecordFileExt is the extension of persisted cache records.
	RecordFileExt = ".json"

	// CacheEnabledEnvVar disables disk persistence when set to "0".
	CacheEnabledEnvVar = "STASH_CACHE"

	// DebugEnvVar enables debug logging when set.
	DebugEnvVar = "STASH_DEBUG"

	// TraceEnvVar installs a real tracer provider when set.
	TraceEnvVar = "STASH_TRACE"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// DefaultStashPath returns the default root directory for stash metadata.
func DefaultStashPath() string {
	return StashDirName
}

// DefaultCachePath returns the path of the artifact cache directory
// relative to a project root. It joins .stash and cache.
func DefaultCachePath() string {
	return filepath.Join(StashDirName, CacheDirName)
}

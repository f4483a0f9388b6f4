package domain

import "go.trai.ch/zerr"

var (
	// ErrProjectNotFound is returned when no project configuration can be
	// resolved for a path. The cache cannot operate without one.
	ErrProjectNotFound = zerr.New("could not resolve a project for path")

	// ErrProjectConfigReadFailed is returned when the project config file cannot be read.
	ErrProjectConfigReadFailed = zerr.New("failed to read project config")

	// ErrProjectConfigParseFailed is returned when the project config file cannot be parsed.
	ErrProjectConfigParseFailed = zerr.New("failed to parse project config")

	// ErrSourceStatFailed is returned when the source file's modification time cannot be read.
	ErrSourceStatFailed = zerr.New("failed to stat source file")

	// ErrPathOutsideProject is returned when a path does not resolve relative to its project root.
	ErrPathOutsideProject = zerr.New("path is outside project root")

	// ErrCacheDirCreateFailed is returned when the cache directory cannot be created.
	ErrCacheDirCreateFailed = zerr.New("failed to create cache directory")

	// ErrRecordReadFailed is returned when a persisted cache record cannot be read.
	ErrRecordReadFailed = zerr.New("failed to read cache record")

	// ErrRecordUnmarshalFailed is returned when a persisted cache record cannot be unmarshaled.
	ErrRecordUnmarshalFailed = zerr.New("failed to unmarshal cache record")

	// ErrRecordMarshalFailed is returned when a cache record cannot be marshaled.
	ErrRecordMarshalFailed = zerr.New("failed to marshal cache record")

	// ErrRecordWriteFailed is returned when a cache record cannot be written.
	ErrRecordWriteFailed = zerr.New("failed to write cache record")

	// ErrRecordDeleteFailed is returned when a persisted cache record cannot be removed.
	ErrRecordDeleteFailed = zerr.New("failed to delete cache record")

	// ErrCacheCleanFailed is returned when removing the cache directory fails.
	ErrCacheCleanFailed = zerr.New("failed to clean cache directory")

	// ErrWatcherStartFailed is returned when the file system watcher cannot be started.
	ErrWatcherStartFailed = zerr.New("failed to start file system watcher")
)

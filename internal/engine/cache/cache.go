// Package cache implements the artifact cache façade: it decides whether a
// previously stored result may still be trusted and keeps the in-memory and
// on-disk views of each record consistent.
package cache

import (
	"context"
	"path/filepath"

	"go.trai.ch/stash/internal/core/domain"
	"go.trai.ch/stash/internal/core/ports"
	"go.trai.ch/zerr"
)

// Config carries the process-wide cache settings. It is built once in
// wiring and passed in explicitly; there is no hidden global state.
type Config struct {
	// Enabled controls disk persistence. When false, Get and Update
	// operate purely in memory for the lifetime of the process.
	Enabled bool
	// ToolVersion identifies the running toolchain build. Records written
	// by a different build are never reused.
	ToolVersion string
}

// Cache orchestrates baseline construction, the memory overlay and the disk
// store.
//
// Concurrency: overlay access is internally synchronized, but no lock spans
// the disk I/O of an operation. Two concurrent updates for the same path may
// both read the same current record and the last writer wins; per-file
// writes are expected to originate from a single worker invocation per run.
type Cache struct {
	cfg      Config
	fs       ports.FileSystem
	resolver ports.ProjectResolver
	store    ports.RecordStore
	logger   ports.Logger
	tracer   ports.Tracer
	overlay  *Overlay
}

// New creates a new Cache with the given configuration and collaborators.
func New(
	cfg Config,
	fsys ports.FileSystem,
	resolver ports.ProjectResolver,
	store ports.RecordStore,
	logger ports.Logger,
	tracer ports.Tracer,
) *Cache {
	return &Cache{
		cfg:      cfg,
		fs:       fsys,
		resolver: resolver,
		store:    store,
		logger:   logger,
		tracer:   tracer,
		overlay:  NewOverlay(),
	}
}

// Enabled reports whether disk persistence is active.
func (c *Cache) Enabled() bool {
	return c.cfg.Enabled
}

// buildBaseline synthesizes a fresh, payload-empty record reflecting the
// file's current observed state. Project resolution failure is fatal: the
// cache cannot operate without a config fingerprint for the file.
func (c *Cache) buildBaseline(path string) (domain.CacheRecord, *domain.Project, error) {
	project, err := c.resolver.Resolve(path)
	if err != nil {
		return domain.CacheRecord{}, nil, err
	}

	mtime, err := c.fs.ModTime(path)
	if err != nil {
		return domain.CacheRecord{}, nil, zerr.Wrap(err, domain.ErrSourceStatFailed.Error())
	}

	rec := domain.CacheRecord{
		ToolVersion:       c.cfg.ToolVersion,
		ConfigFingerprint: project.FingerprintFor(path),
		SourceDir:         project.Root,
		ModifiedAt:        mtime,
	}
	return rec, project, nil
}

// Get returns the trusted record for path, falling back progressively from
// memory to disk to a fresh baseline. The result is stored in the overlay.
func (c *Cache) Get(ctx context.Context, path string) (domain.CacheRecord, error) {
	_, span := c.tracer.Start(ctx, "cache.get", ports.WithAttribute("path", path))
	defer span.End()

	baseline, project, err := c.buildBaseline(path)
	if err != nil {
		span.RecordError(err)
		return domain.CacheRecord{}, err
	}

	// A compatible memory record already reflects the latest trusted state
	// including payload; the baseline was only needed for the comparison.
	if mem, ok := c.overlay.Get(path); ok && domain.Compatible(mem, baseline) {
		span.SetAttribute("source", "memory")
		return mem, nil
	}

	if !c.cfg.Enabled {
		span.SetAttribute("source", "baseline")
		c.overlay.Put(path, baseline)
		return baseline, nil
	}

	result := baseline
	onDisk, err := c.store.Load(project.Root, path)
	switch {
	case err != nil:
		// Any read or decode failure degrades to a miss. Observable, not
		// silent: recomputation is transparent but debuggable.
		span.SetAttribute("source", "baseline")
		c.logger.Warn("unreadable cache record for " + path + ", treating as miss: " + err.Error())
	case onDisk == nil:
		span.SetAttribute("source", "baseline")
	case !domain.Compatible(baseline, *onDisk):
		span.SetAttribute("source", "baseline")
		if derr := c.store.Delete(project.Root, path); derr != nil {
			c.logger.Warn("failed to delete stale cache record for " + path + ": " + derr.Error())
		}
	default:
		span.SetAttribute("source", "disk")
		result = baseline.Apply(onDisk.Payload())
	}

	c.overlay.Put(path, result)
	return result, nil
}

// Update merges the partial payload onto the current trusted record, stores
// the new record in memory and, when persistence is enabled, on disk.
func (c *Cache) Update(ctx context.Context, path string, partial domain.Partial) (domain.CacheRecord, error) {
	return c.UpdateWith(ctx, path, func(domain.CacheRecord) domain.Partial {
		return partial
	})
}

// UpdateWith is the read-modify-write variant of Update: fn receives the
// current trusted record and returns the partial to merge, without the
// caller needing a separate Get.
func (c *Cache) UpdateWith(ctx context.Context, path string, fn func(current domain.CacheRecord) domain.Partial) (domain.CacheRecord, error) {
	ctx, span := c.tracer.Start(ctx, "cache.update", ports.WithAttribute("path", path))
	defer span.End()

	current, err := c.Get(ctx, path)
	if err != nil {
		span.RecordError(err)
		return domain.CacheRecord{}, err
	}

	next := current.Apply(fn(current))
	c.overlay.Put(path, next)

	if !c.cfg.Enabled {
		return next, nil
	}

	project, err := c.resolver.Resolve(path)
	if err != nil {
		span.RecordError(err)
		return domain.CacheRecord{}, err
	}

	if err := c.store.Save(project.Root, path, next); err != nil {
		span.RecordError(err)
		return domain.CacheRecord{}, err
	}

	return next, nil
}

// HandleDeleted drops the cached state for a removed file: the overlay entry
// and, when persistence is enabled, the on-disk record. Idempotent.
func (c *Cache) HandleDeleted(path string) error {
	c.overlay.Delete(path)

	if !c.cfg.Enabled {
		return nil
	}

	project, err := c.resolver.Resolve(path)
	if err != nil {
		// The project config may have vanished along with the file. Memory
		// is already purged; there is no disk location left to derive.
		c.logger.Debug("no project for deleted path " + path + ", skipping disk cleanup")
		return nil
	}

	return c.store.Delete(project.Root, path)
}

// Init prepares the on-disk cache root for the given project root. Deletion
// routing is wired separately; see the watcher Router.
func (c *Cache) Init(root string) error {
	if !c.cfg.Enabled {
		return nil
	}
	cacheRoot := filepath.Join(root, domain.DefaultCachePath())
	if err := c.fs.MkdirAll(cacheRoot); err != nil {
		return zerr.Wrap(err, domain.ErrCacheDirCreateFailed.Error())
	}
	return nil
}

package watcher

import (
	"context"

	"go.trai.ch/stash/internal/core/domain"
	"go.trai.ch/stash/internal/core/ports"
	"go.trai.ch/zerr"
)

// Invalidator receives deletion notifications for source files. It is
// satisfied by the cache façade.
type Invalidator interface {
	// HandleDeleted drops the cached state for a removed file.
	HandleDeleted(path string) error
}

// Router subscribes to file system events and routes removals to an
// Invalidator, debounced so event bursts collapse into one invalidation
// pass. Watching starts at the project root, which also covers the cache
// directory underneath it.
type Router struct {
	watcher   ports.Watcher
	logger    ports.Logger
	target    Invalidator
	debouncer *Debouncer
}

// NewRouter creates a Router delivering removals to target.
func NewRouter(w ports.Watcher, logger ports.Logger, target Invalidator) *Router {
	r := &Router{
		watcher: w,
		logger:  logger,
		target:  target,
	}
	r.debouncer = NewDebouncer(DefaultDebounceWindow, r.invalidate)
	return r
}

// Run starts watching root and blocks routing events until ctx is done or
// the watcher's event stream closes.
func (r *Router) Run(ctx context.Context, root string) error {
	if err := r.watcher.Start(ctx, root); err != nil {
		return zerr.Wrap(err, domain.ErrWatcherStartFailed.Error())
	}

	for event := range r.watcher.Events() {
		if event.Operation != ports.OpRemove && event.Operation != ports.OpRename {
			continue
		}
		r.debouncer.Add(event.Path)
	}

	r.debouncer.Flush()
	return nil
}

// Stop stops the underlying watcher, which ends Run.
func (r *Router) Stop() error {
	return r.watcher.Stop()
}

func (r *Router) invalidate(paths []string) {
	for _, path := range paths {
		if err := r.target.HandleDeleted(path); err != nil {
			r.logger.Warn("failed to drop cache entry for " + path + ": " + err.Error())
		}
	}
}

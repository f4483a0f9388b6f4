package cache

import (
	"sync"

	"go.trai.ch/stash/internal/core/domain"
)

// Overlay is the in-memory view of trusted cache records, keyed by absolute
// source path. It holds at most one record per path and is authoritative
// within a single run: an entry is always either absent or no staler than
// the file's state as of the last Get.
type Overlay struct {
	mu      sync.RWMutex
	records map[string]domain.CacheRecord
}

// NewOverlay creates an empty Overlay.
func NewOverlay() *Overlay {
	return &Overlay{
		records: make(map[string]domain.CacheRecord),
	}
}

// Get returns the record for path and whether one is present.
func (o *Overlay) Get(path string) (domain.CacheRecord, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	rec, ok := o.records[path]
	return rec, ok
}

// Put stores the record for path, replacing any previous entry.
func (o *Overlay) Put(path string, rec domain.CacheRecord) {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.records[path] = rec
}

// Delete removes the record for path, if any.
func (o *Overlay) Delete(path string) {
	o.mu.Lock()
	defer o.mu.Unlock()

	delete(o.records, path)
}

// Len returns the number of records held.
func (o *Overlay) Len() int {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return len(o.records)
}

package watcher_test

import (
	"context"
	"iter"
	"sort"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stash/internal/adapters/watcher"
	"go.trai.ch/stash/internal/core/ports"
	"go.trai.ch/stash/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type recordingInvalidator struct {
	mu    sync.Mutex
	paths []string
}

func (r *recordingInvalidator) HandleDeleted(path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.paths = append(r.paths, path)
	return nil
}

func eventSeq(events ...ports.WatchEvent) iter.Seq[ports.WatchEvent] {
	return func(yield func(ports.WatchEvent) bool) {
		for _, ev := range events {
			if !yield(ev) {
				return
			}
		}
	}
}

func TestRouter_RoutesRemovalsOnly(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := mocks.NewMockWatcher(ctrl)
	logger := mocks.NewMockLogger(ctrl)
	target := &recordingInvalidator{}

	w.EXPECT().Start(gomock.Any(), "/project").Return(nil)
	w.EXPECT().Events().Return(eventSeq(
		ports.WatchEvent{Path: "/project/a.src", Operation: ports.OpWrite},
		ports.WatchEvent{Path: "/project/b.src", Operation: ports.OpRemove},
		ports.WatchEvent{Path: "/project/c.src", Operation: ports.OpRename},
		ports.WatchEvent{Path: "/project/d.src", Operation: ports.OpCreate},
	))

	r := watcher.NewRouter(w, logger, target)
	// The event stream is finite, so Run drains it and flushes synchronously.
	require.NoError(t, r.Run(context.Background(), "/project"))

	target.mu.Lock()
	defer target.mu.Unlock()
	got := append([]string(nil), target.paths...)
	sort.Strings(got)
	assert.Equal(t, []string{"/project/b.src", "/project/c.src"}, got)
}

func TestRouter_StartFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	w := mocks.NewMockWatcher(ctrl)
	logger := mocks.NewMockLogger(ctrl)

	w.EXPECT().Start(gomock.Any(), gomock.Any()).Return(assert.AnError)

	r := watcher.NewRouter(w, logger, &recordingInvalidator{})
	err := r.Run(context.Background(), "/project")
	require.Error(t, err)
}

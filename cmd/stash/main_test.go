package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/stash/internal/adapters/fs"
	"go.trai.ch/stash/internal/adapters/logger"
	"go.trai.ch/stash/internal/adapters/resolver"
	"go.trai.ch/stash/internal/adapters/store"
	"go.trai.ch/stash/internal/adapters/telemetry"
	watcheradapter "go.trai.ch/stash/internal/adapters/watcher"
	"go.trai.ch/stash/internal/app"
	"go.trai.ch/stash/internal/engine/cache"
)

// testProvider wires real components without going through graft.
func testProvider(t *testing.T) ComponentProvider {
	t.Helper()
	return func(_ context.Context) (*app.Components, func(), error) {
		fsys := fs.New()
		res := resolver.NewResolver(fsys)
		st := store.NewStore(fsys)

		log := logger.New()
		log.SetOutput(io.Discard)

		c := cache.New(
			cache.Config{Enabled: true, ToolVersion: "test-1"},
			fsys, res, st, log, telemetry.NewNoopTracer(),
		)

		w, err := watcheradapter.NewWatcher()
		if err != nil {
			return nil, nil, err
		}

		return &app.Components{
			App:    app.New(c, fsys, res, st, w, log),
			Logger: log,
		}, func() {}, nil
	}
}

func TestRun_Version(t *testing.T) {
	stderr := &bytes.Buffer{}

	code := run(context.Background(), []string{"version"}, stderr, testProvider(t))

	assert.Equal(t, 0, code)
	assert.Empty(t, stderr.String())
}

func TestRun_ProviderFailure(t *testing.T) {
	stderr := &bytes.Buffer{}
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("wiring failed")
	}

	code := run(context.Background(), []string{"version"}, stderr, provider)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "wiring failed")
}

func TestRun_CommandFailure(t *testing.T) {
	// No stash.yaml anywhere above the temp dir, so status cannot resolve a
	// project and the command fails.
	t.Chdir(t.TempDir())
	stderr := &bytes.Buffer{}

	code := run(context.Background(), []string{"status"}, stderr, testProvider(t))

	assert.Equal(t, 1, code)
}

package watcher_test

import (
	"sort"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/stash/internal/adapters/watcher"
)

func TestDebouncer_CoalescesBurst(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var mu sync.Mutex
		var batches [][]string

		d := watcher.NewDebouncer(50*time.Millisecond, func(paths []string) {
			mu.Lock()
			defer mu.Unlock()
			batches = append(batches, paths)
		})

		d.Add("/p/a.src")
		d.Add("/p/b.src")
		d.Add("/p/a.src")

		time.Sleep(100 * time.Millisecond)
		synctest.Wait()

		mu.Lock()
		defer mu.Unlock()
		require.Len(t, batches, 1)
		got := batches[0]
		sort.Strings(got)
		assert.Equal(t, []string{"/p/a.src", "/p/b.src"}, got)
	})
}

func TestDebouncer_WindowRestartsOnAdd(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var mu sync.Mutex
		fired := 0

		d := watcher.NewDebouncer(50*time.Millisecond, func([]string) {
			mu.Lock()
			defer mu.Unlock()
			fired++
		})

		d.Add("/p/a.src")
		time.Sleep(30 * time.Millisecond)
		d.Add("/p/b.src")
		time.Sleep(30 * time.Millisecond)

		mu.Lock()
		assert.Equal(t, 0, fired)
		mu.Unlock()

		time.Sleep(30 * time.Millisecond)
		synctest.Wait()

		mu.Lock()
		assert.Equal(t, 1, fired)
		mu.Unlock()
	})
}

func TestDebouncer_FlushDeliversPending(t *testing.T) {
	var mu sync.Mutex
	var got []string

	d := watcher.NewDebouncer(time.Hour, func(paths []string) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, paths...)
	})

	d.Add("/p/a.src")
	d.Flush()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"/p/a.src"}, got)
}

func TestDebouncer_FlushEmpty(t *testing.T) {
	called := false
	d := watcher.NewDebouncer(time.Hour, func([]string) { called = true })
	d.Flush()
	assert.False(t, called)
}

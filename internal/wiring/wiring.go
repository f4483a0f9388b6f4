// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/stash/internal/adapters/fs"
	_ "go.trai.ch/stash/internal/adapters/logger"
	_ "go.trai.ch/stash/internal/adapters/resolver"
	_ "go.trai.ch/stash/internal/adapters/store"
	_ "go.trai.ch/stash/internal/adapters/telemetry"
	_ "go.trai.ch/stash/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/stash/internal/app"
	_ "go.trai.ch/stash/internal/engine/cache"
)

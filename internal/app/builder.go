package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stash/internal/adapters/fs"
	"go.trai.ch/stash/internal/adapters/logger"
	"go.trai.ch/stash/internal/adapters/resolver"
	"go.trai.ch/stash/internal/adapters/store"
	"go.trai.ch/stash/internal/adapters/watcher"
	"go.trai.ch/stash/internal/core/ports"
	"go.trai.ch/stash/internal/engine/cache"
)

// NodeID is the unique identifier for the application Graft node.
const NodeID graft.ID = "app"

// Components bundles the fully wired application with the pieces the entry
// point needs directly.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*Components]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			cache.NodeID,
			fs.NodeID,
			resolver.NodeID,
			store.NodeID,
			watcher.NodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			c, err := graft.Dep[*cache.Cache](ctx)
			if err != nil {
				return nil, err
			}
			fsys, err := graft.Dep[ports.FileSystem](ctx)
			if err != nil {
				return nil, err
			}
			res, err := graft.Dep[ports.ProjectResolver](ctx)
			if err != nil {
				return nil, err
			}
			st, err := graft.Dep[ports.RecordStore](ctx)
			if err != nil {
				return nil, err
			}
			w, err := graft.Dep[ports.Watcher](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{
				App:    New(c, fsys, res, st, w, log),
				Logger: log,
			}, nil
		},
	})
}

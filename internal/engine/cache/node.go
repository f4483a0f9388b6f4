package cache

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/stash/internal/adapters/fs"
	"go.trai.ch/stash/internal/adapters/logger"
	"go.trai.ch/stash/internal/adapters/resolver"
	"go.trai.ch/stash/internal/adapters/store"
	"go.trai.ch/stash/internal/adapters/telemetry"
	"go.trai.ch/stash/internal/build"
	"go.trai.ch/stash/internal/core/domain"
	"go.trai.ch/stash/internal/core/ports"
)

// NodeID is the unique identifier for the cache engine Graft node.
const NodeID graft.ID = "engine.cache"

func init() {
	graft.Register(graft.Node[*Cache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.NodeID, resolver.NodeID, store.NodeID, logger.NodeID, telemetry.NodeID},
		Run: func(ctx context.Context) (*Cache, error) {
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
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			cfg := Config{
				Enabled:     os.Getenv(domain.CacheEnabledEnvVar) != "0",
				ToolVersion: build.Version,
			}
			return New(cfg, fsys, res, st, log, tracer), nil
		},
	})
}

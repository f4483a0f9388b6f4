package telemetry

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"go.trai.ch/stash/internal/core/domain"
	"go.trai.ch/stash/internal/core/ports"
)

// NodeID is the unique identifier for the tracer Graft node.
const NodeID graft.ID = "adapter.tracer"

// instrumentationName identifies this module's spans.
const instrumentationName = "go.trai.ch/stash"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Tracer, error) {
			if os.Getenv(domain.TraceEnvVar) != "" {
				// The provider lives for the whole process; shutdown is
				// left to process exit.
				_ = SetupProvider()
			}
			return NewOTelTracer(instrumentationName), nil
		},
	})
}

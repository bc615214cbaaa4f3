package linear

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"github.com/juspay/omnix-sub000/internal/adapters/detector"
	"github.com/juspay/omnix-sub000/internal/core/ports"
)

// NodeID is the unique identifier for the linear renderer Graft node.
const NodeID graft.ID = "adapter.linear"

func init() {
	graft.Register(graft.Node[ports.Renderer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Renderer, error) {
			env := detector.DetectEnvironment()
			return NewRenderer(os.Stderr, env.Grouping()).WithProfile(env.Profile()), nil
		},
	})
}

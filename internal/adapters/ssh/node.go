package ssh

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/juspay/omnix-sub000/internal/adapters/shell"
	"github.com/juspay/omnix-sub000/internal/core/ports"
)

// NodeID is the unique identifier for the ssh transport Graft node.
const NodeID graft.ID = "adapter.ssh"

func init() {
	graft.Register(graft.Node[ports.Transport]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.Transport, error) {
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}
			return NewTransport(runner), nil
		},
	})
}

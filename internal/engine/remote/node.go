package remote

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/juspay/omnix-sub000/internal/adapters/nix"       //nolint:depguard // Wired in engine wiring
	"github.com/juspay/omnix-sub000/internal/adapters/ssh"       //nolint:depguard // Wired in engine wiring
	"github.com/juspay/omnix-sub000/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"github.com/juspay/omnix-sub000/internal/core/ports"
)

// NodeID is the unique identifier for the remote delegator Graft node.
const NodeID graft.ID = "engine.remote"

func init() {
	graft.Register(graft.Node[*Delegator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			nix.FlakeNodeID,
			nix.StoreNodeID,
			ssh.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Delegator, error) {
			flakes, err := graft.Dep[ports.FlakeEvaluator](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.StoreClient](ctx)
			if err != nil {
				return nil, err
			}

			transport, err := graft.Dep[ports.Transport](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return NewDelegator(flakes, store, transport, tracer), nil
		},
	})
}

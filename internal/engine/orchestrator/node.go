package orchestrator

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/juspay/omnix-sub000/internal/adapters/config"    //nolint:depguard // Wired in engine wiring
	"github.com/juspay/omnix-sub000/internal/adapters/nix"       //nolint:depguard // Wired in engine wiring
	"github.com/juspay/omnix-sub000/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"github.com/juspay/omnix-sub000/internal/core/ports"
	"github.com/juspay/omnix-sub000/internal/engine/pipeline"
)

// NodeID is the unique identifier for the orchestrator Graft node.
const NodeID graft.ID = "engine.orchestrator"

func init() {
	graft.Register(graft.Node[*Orchestrator]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			nix.SystemsNodeID,
			config.NodeID,
			pipeline.NodeID,
			nix.StoreNodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Orchestrator, error) {
			systems, err := graft.Dep[ports.SystemsResolver](ctx)
			if err != nil {
				return nil, err
			}

			resolver, err := graft.Dep[ports.ConfigResolver](ctx)
			if err != nil {
				return nil, err
			}

			p, err := graft.Dep[*pipeline.Pipeline](ctx)
			if err != nil {
				return nil, err
			}

			store, err := graft.Dep[ports.StoreClient](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return NewOrchestrator(systems, resolver, p, store, tracer), nil
		},
	})
}

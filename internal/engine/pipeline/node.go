package pipeline

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/juspay/omnix-sub000/internal/adapters/nix"       //nolint:depguard // Wired in engine wiring
	"github.com/juspay/omnix-sub000/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"github.com/juspay/omnix-sub000/internal/core/ports"
)

// NodeID is the unique identifier for the pipeline Graft node.
const NodeID graft.ID = "engine.pipeline"

func init() {
	graft.Register(graft.Node[*Pipeline]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			nix.CommandsNodeID,
			nix.AggregatorNodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Pipeline, error) {
			commands, err := graft.Dep[ports.FlakeCommands](ctx)
			if err != nil {
				return nil, err
			}

			builder, err := graft.Dep[ports.BuildAggregator](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return NewPipeline(commands, builder, tracer), nil
		},
	})
}

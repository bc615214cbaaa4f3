package nix

import (
	"context"
	"os"

	"github.com/grindlemire/graft"
	"github.com/juspay/omnix-sub000/internal/adapters/shell"
	"github.com/juspay/omnix-sub000/internal/build"
	"github.com/juspay/omnix-sub000/internal/core/domain"
	"github.com/juspay/omnix-sub000/internal/core/ports"
)

const (
	// StoreNodeID is the unique identifier for the store client Graft node.
	StoreNodeID graft.ID = "adapter.nix.store"
	// AggregatorNodeID is the unique identifier for the build aggregator Graft node.
	AggregatorNodeID graft.ID = "adapter.nix.aggregator"
	// FlakeNodeID is the unique identifier for the flake evaluator Graft node.
	FlakeNodeID graft.ID = "adapter.nix.flake"
	// CommandsNodeID is the unique identifier for the flake commands Graft node.
	CommandsNodeID graft.ID = "adapter.nix.commands"
	// SystemsNodeID is the unique identifier for the systems resolver Graft node.
	SystemsNodeID graft.ID = "adapter.nix.systems"
)

func init() {
	graft.Register(graft.Node[ports.StoreClient]{
		ID:        StoreNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.StoreClient, error) {
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(runner)
		},
	})

	graft.Register(graft.Node[ports.BuildAggregator]{
		ID:        AggregatorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID, StoreNodeID},
		Run: func(ctx context.Context) (ports.BuildAggregator, error) {
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.StoreClient](ctx)
			if err != nil {
				return nil, err
			}
			return NewAggregator(runner, store, aggregatorSource()), nil
		},
	})

	graft.Register(graft.Node[ports.FlakeEvaluator]{
		ID:        FlakeNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.FlakeEvaluator, error) {
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}
			return NewFlake(runner), nil
		},
	})

	graft.Register(graft.Node[ports.FlakeCommands]{
		ID:        CommandsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.FlakeCommands, error) {
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}
			return NewFlake(runner), nil
		},
	})

	graft.Register(graft.Node[ports.SystemsResolver]{
		ID:        SystemsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.SystemsResolver, error) {
			runner, err := graft.Dep[ports.Runner](ctx)
			if err != nil {
				return nil, err
			}
			return NewSystemsResolver(runner), nil
		},
	})
}

// aggregatorSource returns the aggregator flake, honoring OM_DEVOUR_FLAKE.
func aggregatorSource() domain.FlakeURL {
	if v := os.Getenv("OM_DEVOUR_FLAKE"); v != "" {
		return domain.FlakeURL(v)
	}
	return domain.FlakeURL(build.DevourFlake)
}

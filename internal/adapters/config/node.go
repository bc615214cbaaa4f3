package config

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/juspay/omnix-sub000/internal/adapters/logger"
	"github.com/juspay/omnix-sub000/internal/adapters/nix"
	"github.com/juspay/omnix-sub000/internal/core/ports"
)

// NodeID is the unique identifier for the config resolver Graft node.
const NodeID graft.ID = "adapter.config_resolver"

func init() {
	graft.Register(graft.Node[ports.ConfigResolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{nix.FlakeNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.ConfigResolver, error) {
			evaluator, err := graft.Dep[ports.FlakeEvaluator](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(evaluator, log), nil
		},
	})
}

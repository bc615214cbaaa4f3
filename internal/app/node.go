package app

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/juspay/omnix-sub000/internal/adapters/config" //nolint:depguard // Wired in app layer
	"github.com/juspay/omnix-sub000/internal/adapters/linear" //nolint:depguard // Wired in app layer
	"github.com/juspay/omnix-sub000/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"github.com/juspay/omnix-sub000/internal/adapters/nix"    //nolint:depguard // Wired in app layer
	"github.com/juspay/omnix-sub000/internal/core/ports"
	"github.com/juspay/omnix-sub000/internal/engine/orchestrator"
	"github.com/juspay/omnix-sub000/internal/engine/remote"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components holds what main needs to run the CLI.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			orchestrator.NodeID,
			remote.NodeID,
			nix.SystemsNodeID,
			config.NodeID,
			linear.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	orch, err := graft.Dep[*orchestrator.Orchestrator](ctx)
	if err != nil {
		return nil, err
	}

	delegator, err := graft.Dep[*remote.Delegator](ctx)
	if err != nil {
		return nil, err
	}

	systems, err := graft.Dep[ports.SystemsResolver](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[ports.ConfigResolver](ctx)
	if err != nil {
		return nil, err
	}

	renderer, err := graft.Dep[ports.Renderer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(orch, delegator, systems, resolver, renderer, log), nil
}

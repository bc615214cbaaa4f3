// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/juspay/omnix-sub000/internal/adapters/config"
	_ "github.com/juspay/omnix-sub000/internal/adapters/linear"
	_ "github.com/juspay/omnix-sub000/internal/adapters/logger"
	_ "github.com/juspay/omnix-sub000/internal/adapters/nix"
	_ "github.com/juspay/omnix-sub000/internal/adapters/shell"
	_ "github.com/juspay/omnix-sub000/internal/adapters/ssh"
	_ "github.com/juspay/omnix-sub000/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "github.com/juspay/omnix-sub000/internal/app"
	_ "github.com/juspay/omnix-sub000/internal/engine/orchestrator"
	_ "github.com/juspay/omnix-sub000/internal/engine/pipeline"
	_ "github.com/juspay/omnix-sub000/internal/engine/remote"
)

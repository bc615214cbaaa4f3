package ports

import (
	"context"

	"github.com/juspay/omnix-sub000/internal/core/domain"
)

// ConfigResolver loads the CI configuration of a flake.
//
//go:generate mockgen -source=config_resolver.go -destination=mocks/mock_config_resolver.go -package=mocks
type ConfigResolver interface {
	// Resolve selects the CI variant named by the attribute path of ref.
	Resolve(ctx context.Context, ref domain.FlakeURL) (*domain.ResolvedConfig, error)
}

package ports

import (
	"context"

	"github.com/juspay/omnix-sub000/internal/core/domain"
)

// SystemsResolver turns a systems list reference into concrete systems.
//
//go:generate mockgen -source=systems.go -destination=mocks/mock_systems.go -package=mocks
type SystemsResolver interface {
	// Resolve accepts a comma separated list, a flake URL, or an empty
	// string meaning the current system.
	Resolve(ctx context.Context, ref string) (domain.SystemsList, error)
}

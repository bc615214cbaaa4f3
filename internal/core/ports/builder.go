package ports

import (
	"context"
	"io"

	"github.com/juspay/omnix-sub000/internal/core/domain"
)

// BuildAggregator builds every output of a flake for a set of systems.
//
//go:generate mockgen -source=builder.go -destination=mocks/mock_builder.go -package=mocks
type BuildAggregator interface {
	// Build runs the aggregator for one unit. Output paths in the result
	// are sorted and free of duplicates.
	Build(ctx context.Context, req domain.BuildRequest, log io.Writer) (domain.BuildStepResult, error)
}

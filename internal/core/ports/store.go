package ports

import (
	"context"

	"github.com/juspay/omnix-sub000/internal/core/domain"
)

// StoreClient wraps the query and copy primitives of the nix store.
//
//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type StoreClient interface {
	// QueryDeriver returns the derivation of every output path.
	// It fails with domain.ErrUnknownDeriver when any deriver is unknown.
	QueryDeriver(ctx context.Context, paths []domain.StorePath) ([]domain.StorePath, error)

	// QueryRequisites returns the transitive requisites of paths, including their outputs.
	QueryRequisites(ctx context.Context, paths []domain.StorePath) ([]domain.StorePath, error)

	// Closure returns every store path needed to rebuild or run outputs.
	Closure(ctx context.Context, outputs []domain.StorePath) ([]domain.StorePath, error)

	// Copy copies paths to or from another store.
	Copy(ctx context.Context, paths []domain.StorePath, opts domain.CopyOptions) error

	// AddFile adds a regular file to the store.
	AddFile(ctx context.Context, path string) (domain.StorePath, error)

	// AddRoot registers link as a garbage collection root for paths.
	AddRoot(ctx context.Context, link string, paths []domain.StorePath) error
}

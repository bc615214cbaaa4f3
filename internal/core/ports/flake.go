package ports

import (
	"context"
	"io"

	"github.com/juspay/omnix-sub000/internal/core/domain"
)

// FlakeEvaluator evaluates and locks flakes.
//
//go:generate mockgen -source=flake.go -destination=mocks/mock_flake.go -package=mocks
type FlakeEvaluator interface {
	// EvalJSON evaluates the attribute referenced by ref as JSON.
	// It reports false when the flake does not provide the attribute.
	EvalJSON(ctx context.Context, ref domain.FlakeURL) ([]byte, bool, error)

	// Metadata locks the flake and returns its store-resident source.
	Metadata(ctx context.Context, ref domain.FlakeURL) (domain.FlakeMetadata, error)

	// Archive copies the flake and all of its inputs into the store and
	// returns every resulting store path.
	Archive(ctx context.Context, ref domain.FlakeURL) ([]domain.StorePath, error)
}

// FlakeCommands runs the per-unit verification commands.
type FlakeCommands interface {
	// LockCheck fails when the lock file of flake is missing or stale.
	LockCheck(ctx context.Context, flake domain.FlakeURL, log io.Writer) error

	// Check runs the flake checks with the given input overrides.
	Check(ctx context.Context, flake domain.FlakeURL, overrides []domain.InputOverride, log io.Writer) error

	// RunApp runs a flake app.
	RunApp(ctx context.Context, app domain.FlakeURL, args []string, out io.Writer) error

	// DevelopRun runs command inside a flake devshell.
	DevelopRun(ctx context.Context, shell domain.FlakeURL, command []string, out io.Writer) error
}

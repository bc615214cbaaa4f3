package ports

import (
	"context"
	"io"

	"github.com/juspay/omnix-sub000/internal/core/domain"
)

// Runner executes external programs.
//
//go:generate mockgen -source=runner.go -destination=mocks/mock_runner.go -package=mocks
type Runner interface {
	// Output runs cmd and returns its standard output.
	//
	// Standard error is relayed line by line to stderr while the command runs.
	// The relay is finished before Output returns. The process is killed when
	// ctx is cancelled.
	Output(ctx context.Context, cmd domain.Command, stderr io.Writer) ([]byte, error)

	// Attach runs cmd on a pseudo terminal and copies its combined output to out.
	Attach(ctx context.Context, cmd domain.Command, out io.Writer) error
}

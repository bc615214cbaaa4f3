package ports

import (
	"context"
	"io"
)

// Transport runs commands on a remote host.
//
//go:generate mockgen -source=transport.go -destination=mocks/mock_transport.go -package=mocks
type Transport interface {
	// Exec runs argv on host and returns its standard output. The remote
	// standard error is relayed verbatim to stderr.
	Exec(ctx context.Context, host string, argv []string, stderr io.Writer) ([]byte, error)
}
